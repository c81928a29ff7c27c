package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/news-admin/internal/cache"
	"github.com/news-admin/internal/models"
	"github.com/news-admin/internal/repository"
	"github.com/news-admin/internal/sanitize"
	"github.com/news-admin/internal/validation"
	"github.com/rs/zerolog"
)

var (
	// ErrNotFound is returned by GetByID when no article has the id
	ErrNotFound = errors.New("article not found")
	// ErrStorage wraps every data store failure surfaced by reads
	ErrStorage = errors.New("article storage failure")
)

// Messages shown to the admin
const (
	MsgCreated      = "article created"
	MsgUpdated      = "article updated"
	MsgDeleted      = "article deleted"
	MsgCreateFailed = "failed to create article"
	MsgUpdateFailed = "failed to update article"
	MsgDeleteFailed = "failed to delete article"
	MsgNotFound     = "article not found"
)

// newsService is the concrete implementation of NewsService
type newsService struct {
	repo      repository.NewsRepository
	listing   cache.ListingCache
	validator *validation.Validator
	sanitizer *sanitize.Sanitizer
	log       zerolog.Logger
}

func newNewsService(
	repo repository.NewsRepository,
	listing cache.ListingCache,
	validator *validation.Validator,
	sanitizer *sanitize.Sanitizer,
	log zerolog.Logger,
) *newsService {
	return &newsService{
		repo:      repo,
		listing:   listing,
		validator: validator,
		sanitizer: sanitizer,
		log:       log.With().Str("service", "news").Logger(),
	}
}

// List returns every article ordered by published_at descending.
// A cached listing is served when present; cache failures fall back to the store.
func (s *newsService) List(ctx context.Context) ([]*models.News, error) {
	if items, ok := s.cachedListing(ctx); ok {
		return items, nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("pg_code", repository.PGCode(err)).Msg("Failed to list articles")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.storeListing(ctx, items)
	return items, nil
}

// GetByID returns the article, ErrNotFound, or an ErrStorage-wrapped failure
func (s *newsService) GetByID(ctx context.Context, id int64) (*models.News, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int64("id", id).Str("pg_code", repository.PGCode(err)).Msg("Failed to fetch article")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if n == nil {
		return nil, ErrNotFound
	}
	return n, nil
}

// Create validates, sanitizes and inserts a new article
func (s *newsService) Create(ctx context.Context, form *models.NewsForm) *models.MutationResult {
	input, res := s.prepare(form)
	if res != nil {
		return res
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		s.log.Error().Err(err).Str("pg_code", repository.PGCode(err)).Msg("Failed to create article")
		return models.Failed(models.OutcomeFailed, MsgCreateFailed)
	}

	s.invalidate(ctx)
	s.log.Info().Int64("id", created.ID).Str("status", string(created.Status)).Msg("Article created")

	res = models.Succeeded(MsgCreated)
	res.ID = created.ID
	return res
}

// Update validates, sanitizes and replaces every editable field of an article.
// Concurrent updates are last-write-wins.
func (s *newsService) Update(ctx context.Context, id int64, form *models.NewsForm) *models.MutationResult {
	input, res := s.prepare(form)
	if res != nil {
		return res
	}

	found, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.log.Error().Err(err).Int64("id", id).Str("pg_code", repository.PGCode(err)).Msg("Failed to update article")
		return models.Failed(models.OutcomeFailed, MsgUpdateFailed)
	}
	if !found {
		return models.Failed(models.OutcomeNotFound, MsgNotFound)
	}

	s.invalidate(ctx)
	s.log.Info().Int64("id", id).Msg("Article updated")

	res = models.Succeeded(MsgUpdated)
	res.ID = id
	return res
}

// Delete removes an article. A missing id is reported as an unsuccessful result.
func (s *newsService) Delete(ctx context.Context, id int64) *models.MutationResult {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int64("id", id).Str("pg_code", repository.PGCode(err)).Msg("Failed to delete article")
		return models.Failed(models.OutcomeFailed, MsgDeleteFailed)
	}
	if !found {
		return models.Failed(models.OutcomeNotFound, MsgNotFound)
	}

	s.invalidate(ctx)
	s.log.Info().Int64("id", id).Msg("Article deleted")

	res := models.Succeeded(MsgDeleted)
	res.ID = id
	return res
}

// prepare runs validation then sanitization. A non-nil result means rejection.
func (s *newsService) prepare(form *models.NewsForm) (*models.NewsInput, *models.MutationResult) {
	input, verr := s.validator.ValidateNews(form)
	if verr != nil {
		res := models.Failed(models.OutcomeInvalid, verr.Message)
		res.Field = verr.Field
		return nil, res
	}

	input.BodyHTML = s.sanitizer.Sanitize(input.BodyHTML)
	if strings.TrimSpace(input.BodyHTML) == "" {
		// accepted: the raw body was non-empty, only its markup was disallowed
		s.log.Warn().Str("title", input.Title).Msg("Article body is empty after sanitizing")
	}
	return input, nil
}

func (s *newsService) cachedListing(ctx context.Context) ([]*models.News, bool) {
	raw, err := s.listing.Get(ctx, cache.ListingKey)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn().Err(err).Msg("Listing cache read failed")
		}
		return nil, false
	}

	var items []*models.News
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn().Err(err).Msg("Discarding undecodable cached listing")
		return nil, false
	}
	return items, true
}

func (s *newsService) storeListing(ctx context.Context, items []*models.News) {
	raw, err := json.Marshal(items)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to encode listing for cache")
		return
	}
	if err := s.listing.Set(ctx, cache.ListingKey, raw); err != nil {
		s.log.Warn().Err(err).Msg("Listing cache write failed")
	}
}

// invalidate drops the cached listing after a successful mutation
func (s *newsService) invalidate(ctx context.Context) {
	if err := s.listing.Invalidate(ctx, cache.ListingKey); err != nil {
		s.log.Error().Err(err).Msg("Failed to invalidate listing cache")
	}
}
