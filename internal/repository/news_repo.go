package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/news-admin/internal/database"
	"github.com/news-admin/internal/models"
)

const newsColumns = `id, title, body_html, target_site, status, published_at, created_at, updated_at`

// newsRepo is the concrete implementation of NewsRepository.
// Queries use ? placeholders and are rebound for the active driver.
type newsRepo struct {
	db  *database.DB
	now func() time.Time
}

// NewNewsRepo creates a new news repository
func NewNewsRepo(db *database.DB) NewsRepository {
	return &newsRepo{db: db, now: time.Now}
}

// List retrieves all articles ordered by published_at descending
func (r *newsRepo) List(ctx context.Context) ([]*models.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news ORDER BY published_at DESC, id DESC`

	items := []*models.News{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("select news: %w", err)
	}
	for _, n := range items {
		normalise(n)
	}
	return items, nil
}

// GetByID retrieves an article by ID
func (r *newsRepo) GetByID(ctx context.Context, id int64) (*models.News, error) {
	query := r.db.Rebind(`SELECT ` + newsColumns + ` FROM news WHERE id = ?`)

	var n models.News
	err := r.db.GetContext(ctx, &n, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select news %d: %w", id, err)
	}

	normalise(&n)
	return &n, nil
}

// Create inserts a new article and returns it with its assigned id
func (r *newsRepo) Create(ctx context.Context, input *models.NewsInput) (*models.News, error) {
	now := r.now().UTC()
	n := &models.News{
		Title:       input.Title,
		BodyHTML:    input.BodyHTML,
		TargetSite:  input.TargetSite,
		Status:      input.Status,
		PublishedAt: input.PublishedAt.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := r.db.Rebind(`
		INSERT INTO news (title, body_html, target_site, status, published_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	err := r.db.QueryRowxContext(ctx, query,
		n.Title, n.BodyHTML, n.TargetSite, n.Status, n.PublishedAt,
		n.CreatedAt, n.UpdatedAt,
	).Scan(&n.ID)
	if err != nil {
		return nil, fmt.Errorf("insert news: %w", err)
	}

	return n, nil
}

// Update replaces all editable fields of an article
func (r *newsRepo) Update(ctx context.Context, id int64, input *models.NewsInput) (bool, error) {
	query := r.db.Rebind(`
		UPDATE news
		SET title = ?, body_html = ?, target_site = ?, status = ?, published_at = ?, updated_at = ?
		WHERE id = ?
	`)
	res, err := r.db.ExecContext(ctx, query,
		input.Title, input.BodyHTML, input.TargetSite, input.Status, input.PublishedAt.UTC(),
		r.now().UTC(), id,
	)
	if err != nil {
		return false, fmt.Errorf("update news %d: %w", id, err)
	}
	return affected(res)
}

// Delete removes an article by id
func (r *newsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM news WHERE id = ?`), id)
	if err != nil {
		return false, fmt.Errorf("delete news %d: %w", id, err)
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// normalise puts scanned timestamps in UTC regardless of driver session zone
func normalise(n *models.News) {
	n.PublishedAt = n.PublishedAt.UTC()
	n.CreatedAt = n.CreatedAt.UTC()
	n.UpdatedAt = n.UpdatedAt.UTC()
}
