package service

import (
	"context"

	"github.com/news-admin/internal/cache"
	"github.com/news-admin/internal/config"
	"github.com/news-admin/internal/models"
	"github.com/news-admin/internal/repository"
	"github.com/news-admin/internal/sanitize"
	"github.com/news-admin/internal/validation"
	"github.com/rs/zerolog"
)

// NewsService defines the admin operations on articles.
// Mutations never return raw storage errors; they report a MutationResult.
type NewsService interface {
	List(ctx context.Context) ([]*models.News, error)
	GetByID(ctx context.Context, id int64) (*models.News, error)
	Create(ctx context.Context, form *models.NewsForm) *models.MutationResult
	Update(ctx context.Context, id int64, form *models.NewsForm) *models.MutationResult
	Delete(ctx context.Context, id int64) *models.MutationResult
}

// Services holds all service interfaces
type Services struct {
	News NewsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, listing cache.ListingCache, cfg *config.Config, log zerolog.Logger) *Services {
	validator := validation.NewValidator(cfg.News.Location())
	sanitizer := sanitize.New()

	return &Services{
		News: newNewsService(repos.News, listing, validator, sanitizer, log),
	}
}
