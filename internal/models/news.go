package models

import (
	"time"
)

// TargetSite selects which public surface an article is shown on
type TargetSite string

const (
	TargetSiteLP   TargetSite = "LP"
	TargetSiteHP   TargetSite = "HP"
	TargetSiteBoth TargetSite = "BOTH"
)

// Status is the publication state of an article
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// ValidTargetSites defines allowed target_site values
var ValidTargetSites = map[TargetSite]bool{
	TargetSiteLP:   true,
	TargetSiteHP:   true,
	TargetSiteBoth: true,
}

// ValidStatuses defines allowed article statuses
var ValidStatuses = map[Status]bool{
	StatusDraft:     true,
	StatusPublished: true,
}

// News represents a row of the news table
type News struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	BodyHTML    string     `json:"body_html" db:"body_html"`
	TargetSite  TargetSite `json:"target_site" db:"target_site"`
	Status      Status     `json:"status" db:"status"`
	PublishedAt time.Time  `json:"published_at" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// NewsForm is the raw, untrusted submission for create and update.
// Every field is a string as posted by the admin form; absent fields are empty.
type NewsForm struct {
	Title       string `json:"title" form:"title"`
	BodyHTML    string `json:"body_html" form:"body_html"`
	TargetSite  string `json:"target_site" form:"target_site"`
	Status      string `json:"status" form:"status"`
	PublishedAt string `json:"published_at" form:"published_at"`
}

// NewsInput holds the editable fields after validation and sanitization
type NewsInput struct {
	Title       string
	BodyHTML    string
	TargetSite  TargetSite
	Status      Status
	PublishedAt time.Time
}
