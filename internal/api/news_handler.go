package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/news-admin/internal/models"
	"github.com/news-admin/internal/service"
	"github.com/rs/zerolog"
)

// NewsHandler serves the admin JSON API
type NewsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(services *service.Services, log zerolog.Logger) *NewsHandler {
	return &NewsHandler{
		services: services,
		log:      log.With().Str("handler", "news").Logger(),
	}
}

// ListNews handles GET /admin/api/news
func (h *NewsHandler) ListNews(c *gin.Context) {
	items, err := h.services.News.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load articles"})
		return
	}
	if items == nil {
		items = []*models.News{}
	}
	c.JSON(http.StatusOK, items)
}

// GetNews handles GET /admin/api/news/:id
func (h *NewsHandler) GetNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	n, err := h.services.News.GetByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": service.MsgNotFound})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load article"})
	default:
		c.JSON(http.StatusOK, n)
	}
}

// CreateNews handles POST /admin/api/news.
// Accepts JSON or form-encoded bodies with string fields.
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var form models.NewsForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Debug().Err(err).Msg("Rejected malformed create body")
		c.JSON(http.StatusBadRequest, models.Failed(models.OutcomeInvalid, "invalid request body"))
		return
	}

	res := h.services.News.Create(c.Request.Context(), &form)
	c.JSON(statusFor(res, http.StatusCreated), res)
}

// UpdateNews handles PUT /admin/api/news/:id
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.Failed(models.OutcomeInvalid, "invalid article id"))
		return
	}

	var form models.NewsForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Debug().Err(err).Int64("id", id).Msg("Rejected malformed update body")
		c.JSON(http.StatusBadRequest, models.Failed(models.OutcomeInvalid, "invalid request body"))
		return
	}

	res := h.services.News.Update(c.Request.Context(), id, &form)
	c.JSON(statusFor(res, http.StatusOK), res)
}

// DeleteNews handles DELETE /admin/api/news/:id
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.Failed(models.OutcomeInvalid, "invalid article id"))
		return
	}

	res := h.services.News.Delete(c.Request.Context(), id)
	c.JSON(statusFor(res, http.StatusOK), res)
}

// statusFor maps a mutation outcome to an HTTP status
func statusFor(res *models.MutationResult, success int) int {
	switch res.Outcome {
	case models.OutcomeOK:
		return success
	case models.OutcomeInvalid:
		return http.StatusUnprocessableEntity
	case models.OutcomeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
