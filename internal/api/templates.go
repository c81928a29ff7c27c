package api

import (
	"embed"
	"html/template"
	"time"

	"github.com/news-admin/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// loadTemplates parses the embedded pages. Times are displayed in loc.
func loadTemplates(loc *time.Location) *template.Template {
	funcs := template.FuncMap{
		"displayTime": func(t time.Time) string {
			return t.In(loc).Format("2006/01/02 15:04")
		},
		"targetSites": func() []models.TargetSite {
			return []models.TargetSite{models.TargetSiteLP, models.TargetSiteHP, models.TargetSiteBoth}
		},
		"statuses": func() []models.Status {
			return []models.Status{models.StatusDraft, models.StatusPublished}
		},
		"statusLabel": func(s models.Status) string {
			if s == models.StatusPublished {
				return "Published"
			}
			return "Draft"
		},
	}

	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}
