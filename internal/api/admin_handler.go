package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-admin/internal/config"
	"github.com/news-admin/internal/models"
	"github.com/news-admin/internal/service"
	"github.com/rs/zerolog"
)

// datetimeLocalLayout matches the value of an HTML datetime-local input
const datetimeLocalLayout = "2006-01-02T15:04"

// AdminHandler renders the HTML admin panel
type AdminHandler struct {
	services *service.Services
	loc      *time.Location
	log      zerolog.Logger
	now      func() time.Time
}

// adminPage is the data passed to admin.html
type adminPage struct {
	Items     []*models.News
	LoadError string
	Form      models.NewsForm
	EditingID int64
	Notice    string
	Error     string
	Timezone  string
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		loc:      cfg.News.Location(),
		log:      log.With().Str("handler", "admin").Logger(),
		now:      time.Now,
	}
}

// Home handles GET /
func (h *AdminHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"AdminPath": AdminPrefix})
}

// Index handles GET /admin. ?edit=<id> loads an article into the form.
func (h *AdminHandler) Index(c *gin.Context) {
	page := h.newPage()
	page.Notice = c.Query("notice")

	if raw := c.Query("edit"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			page.Error = "invalid article id"
		} else {
			n, err := h.services.News.GetByID(c.Request.Context(), id)
			switch {
			case errors.Is(err, service.ErrNotFound):
				page.Error = service.MsgNotFound
			case err != nil:
				page.Error = "failed to load article"
			default:
				page.EditingID = n.ID
				page.Form = h.formFromNews(n)
			}
		}
	}

	h.render(c, http.StatusOK, page)
}

// Create handles POST /admin/news
func (h *AdminHandler) Create(c *gin.Context) {
	form := formFromRequest(c)
	res := h.services.News.Create(c.Request.Context(), &form)
	h.finish(c, res, form, 0)
}

// Update handles POST /admin/news/:id
func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		page := h.newPage()
		page.Error = "invalid article id"
		h.render(c, http.StatusBadRequest, page)
		return
	}

	form := formFromRequest(c)
	res := h.services.News.Update(c.Request.Context(), id, &form)
	h.finish(c, res, form, id)
}

// Delete handles POST /admin/news/:id/delete
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		page := h.newPage()
		page.Error = "invalid article id"
		h.render(c, http.StatusBadRequest, page)
		return
	}

	res := h.services.News.Delete(c.Request.Context(), id)
	h.finish(c, res, h.blankForm(), 0)
}

// finish redirects after a successful mutation and re-renders the submitted form otherwise
func (h *AdminHandler) finish(c *gin.Context, res *models.MutationResult, form models.NewsForm, editingID int64) {
	if res.Success {
		c.Redirect(http.StatusSeeOther, AdminPrefix+"?notice="+url.QueryEscape(res.Message))
		return
	}

	page := h.newPage()
	page.Form = form
	page.EditingID = editingID
	page.Error = res.Message
	h.render(c, statusFor(res, http.StatusOK), page)
}

func (h *AdminHandler) render(c *gin.Context, status int, page adminPage) {
	items, err := h.services.News.List(c.Request.Context())
	if err != nil {
		page.LoadError = "failed to load articles"
	}
	page.Items = items
	c.HTML(status, "admin.html", page)
}

func (h *AdminHandler) newPage() adminPage {
	return adminPage{Form: h.blankForm(), Timezone: h.loc.String()}
}

func (h *AdminHandler) blankForm() models.NewsForm {
	return models.NewsForm{
		TargetSite:  string(models.TargetSiteBoth),
		Status:      string(models.StatusDraft),
		PublishedAt: h.now().In(h.loc).Format(datetimeLocalLayout),
	}
}

func (h *AdminHandler) formFromNews(n *models.News) models.NewsForm {
	return models.NewsForm{
		Title:       n.Title,
		BodyHTML:    n.BodyHTML,
		TargetSite:  string(n.TargetSite),
		Status:      string(n.Status),
		PublishedAt: n.PublishedAt.In(h.loc).Format(datetimeLocalLayout),
	}
}

func formFromRequest(c *gin.Context) models.NewsForm {
	return models.NewsForm{
		Title:       c.PostForm("title"),
		BodyHTML:    c.PostForm("body_html"),
		TargetSite:  c.PostForm("target_site"),
		Status:      c.PostForm("status"),
		PublishedAt: c.PostForm("published_at"),
	}
}
