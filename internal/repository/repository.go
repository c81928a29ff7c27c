package repository

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/news-admin/internal/database"
	"github.com/news-admin/internal/models"
)

// NewsRepository defines the data access operations on the news table
type NewsRepository interface {
	// List returns every article, most recent published_at first.
	List(ctx context.Context) ([]*models.News, error)
	// GetByID returns nil, nil when no row has the given id.
	GetByID(ctx context.Context, id int64) (*models.News, error)
	Create(ctx context.Context, input *models.NewsInput) (*models.News, error)
	// Update replaces every editable field and reports whether a row matched.
	Update(ctx context.Context, id int64, input *models.NewsInput) (bool, error)
	// Delete removes the row and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	News NewsRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		News: NewNewsRepo(db),
	}
}

// PGCode returns the SQLSTATE of a Postgres error, or "" for anything else
func PGCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
