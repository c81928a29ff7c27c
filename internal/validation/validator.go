package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/news-admin/internal/models"
)

// Messages returned for each rejected field. They are shown to the admin as-is.
const (
	MsgTitleRequired      = "title is required"
	MsgBodyRequired       = "body_html is required"
	MsgInvalidTargetSite  = "invalid target_site, must be one of: LP, HP, BOTH"
	MsgInvalidStatus      = "invalid status, must be one of: draft, published"
	MsgInvalidPublishedAt = "published_at must be a valid date and time"
)

// publishedAtLayouts are tried in order. Layouts without a zone are read in
// the validator's input location.
var publishedAtLayouts = []struct {
	layout  string
	hasZone bool
}{
	{time.RFC3339Nano, true},
	{time.RFC3339, true},
	{"2006-01-02T15:04Z07:00", true},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02 15:04", false},
	{"2006-01-02", false},
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator checks submitted article fields
type Validator struct {
	loc *time.Location
}

// NewValidator creates a validator that reads offset-less timestamps in loc.
// A nil loc means UTC.
func NewValidator(loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	return &Validator{loc: loc}
}

// ValidateNews checks a submission and returns the normalised input.
// Rules are evaluated in field order and the first violation is returned.
// BodyHTML in the returned input is still raw; sanitizing is the caller's job.
func (v *Validator) ValidateNews(form *models.NewsForm) (*models.NewsInput, *ValidationError) {
	if form == nil {
		form = &models.NewsForm{}
	}

	title := strings.TrimSpace(form.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: MsgTitleRequired}
	}

	// Body length is checked on the raw value, before sanitizing.
	if form.BodyHTML == "" {
		return nil, &ValidationError{Field: "body_html", Message: MsgBodyRequired}
	}

	target := models.TargetSite(form.TargetSite)
	if !models.ValidTargetSites[target] {
		return nil, &ValidationError{Field: "target_site", Message: MsgInvalidTargetSite, Value: form.TargetSite}
	}

	status := models.Status(form.Status)
	if !models.ValidStatuses[status] {
		return nil, &ValidationError{Field: "status", Message: MsgInvalidStatus, Value: form.Status}
	}

	publishedAt, err := v.ParsePublishedAt(form.PublishedAt)
	if err != nil {
		return nil, &ValidationError{Field: "published_at", Message: MsgInvalidPublishedAt, Value: form.PublishedAt}
	}

	return &models.NewsInput{
		Title:       title,
		BodyHTML:    form.BodyHTML,
		TargetSite:  target,
		Status:      status,
		PublishedAt: publishedAt,
	}, nil
}

// ParsePublishedAt parses a submitted timestamp and normalises it to UTC
func (v *Validator) ParsePublishedAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("published_at is empty")
	}

	for _, l := range publishedAtLayouts {
		var (
			t   time.Time
			err error
		)
		if l.hasZone {
			t, err = time.Parse(l.layout, value)
		} else {
			t, err = time.ParseInLocation(l.layout, value, v.loc)
		}
		if err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}
