package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/news-admin/internal/database"
	"github.com/news-admin/internal/models"
	"github.com/rs/zerolog"
)

// sqliteSchema mirrors migrations/000001_create_news.up.sql for an in-memory database
const sqliteSchema = `
CREATE TABLE news (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT      NOT NULL,
	body_html    TEXT      NOT NULL,
	target_site  TEXT      NOT NULL CHECK (target_site IN ('LP', 'HP', 'BOTH')),
	status       TEXT      NOT NULL CHECK (status IN ('draft', 'published')),
	published_at TIMESTAMP NOT NULL,
	created_at   TIMESTAMP NOT NULL,
	updated_at   TIMESTAMP NOT NULL
);`

func setupRepo(t *testing.T) (*newsRepo, *time.Time) {
	t.Helper()

	conn, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// every pooled connection would otherwise get its own empty database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if _, err := conn.Exec(sqliteSchema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &newsRepo{
		db:  database.Wrap(conn, zerolog.Nop()),
		now: func() time.Time { return clock },
	}
	return repo, &clock
}

func input(title string, publishedAt time.Time) *models.NewsInput {
	return &models.NewsInput{
		Title:       title,
		BodyHTML:    "<p>" + title + "</p>",
		TargetSite:  models.TargetSiteBoth,
		Status:      models.StatusDraft,
		PublishedAt: publishedAt,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewsRepo_CreateAndGet(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, input("Launch", day(2025, 1, 1)))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Expected a system-assigned id")
	}

	stored, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored == nil {
		t.Fatal("Created article not found")
	}
	if stored.Title != "Launch" || stored.BodyHTML != "<p>Launch</p>" {
		t.Errorf("Unexpected content: %+v", stored)
	}
	if stored.TargetSite != models.TargetSiteBoth || stored.Status != models.StatusDraft {
		t.Errorf("Unexpected enums: %s %s", stored.TargetSite, stored.Status)
	}
	if !stored.PublishedAt.Equal(day(2025, 1, 1)) {
		t.Errorf("Expected published_at 2025-01-01, got %v", stored.PublishedAt)
	}
	if !stored.CreatedAt.Equal(created.CreatedAt) || !stored.UpdatedAt.Equal(created.UpdatedAt) {
		t.Errorf("Timestamps not persisted: %+v", stored)
	}
}

func TestNewsRepo_CreateIsNotDeduplicated(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	first, _ := repo.Create(ctx, input("Same", day(2025, 1, 1)))
	second, err := repo.Create(ctx, input("Same", day(2025, 1, 1)))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("Expected distinct ids, both are %d", first.ID)
	}
}

func TestNewsRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := setupRepo(t)

	stored, err := repo.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("Missing row must not be an error, got %v", err)
	}
	if stored != nil {
		t.Errorf("Expected nil, got %+v", stored)
	}
}

func TestNewsRepo_ListOrdersByPublishedAtDesc(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	for _, tc := range []struct {
		title string
		at    time.Time
	}{
		{"jan", day(2024, 1, 1)},
		{"jun", day(2024, 6, 1)},
		{"dec", day(2023, 12, 1)},
	} {
		if _, err := repo.Create(ctx, input(tc.title, tc.at)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Expected 3 articles, got %d", len(items))
	}

	want := []time.Time{day(2024, 6, 1), day(2024, 1, 1), day(2023, 12, 1)}
	for i, n := range items {
		if !n.PublishedAt.Equal(want[i]) {
			t.Errorf("Position %d: expected %v, got %v", i, want[i], n.PublishedAt)
		}
	}
}

func TestNewsRepo_ListEmpty(t *testing.T) {
	repo, _ := setupRepo(t)

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", items)
	}
}

func TestNewsRepo_UpdateReplacesAllFields(t *testing.T) {
	repo, clock := setupRepo(t)
	ctx := context.Background()

	created, _ := repo.Create(ctx, input("Before", day(2024, 1, 1)))

	*clock = clock.Add(time.Hour)
	found, err := repo.Update(ctx, created.ID, &models.NewsInput{
		Title:       "After",
		BodyHTML:    "<p>new</p>",
		TargetSite:  models.TargetSiteLP,
		Status:      models.StatusPublished,
		PublishedAt: day(2024, 2, 2),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !found {
		t.Fatal("Update should report the row as found")
	}

	stored, _ := repo.GetByID(ctx, created.ID)
	if stored.Title != "After" || stored.BodyHTML != "<p>new</p>" ||
		stored.TargetSite != models.TargetSiteLP || stored.Status != models.StatusPublished ||
		!stored.PublishedAt.Equal(day(2024, 2, 2)) {
		t.Errorf("Fields not replaced: %+v", stored)
	}
	if !stored.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at must not change, was %v now %v", created.CreatedAt, stored.CreatedAt)
	}
	if !stored.UpdatedAt.Equal(*clock) {
		t.Errorf("Expected updated_at %v, got %v", *clock, stored.UpdatedAt)
	}
}

func TestNewsRepo_UpdateMissing(t *testing.T) {
	repo, _ := setupRepo(t)

	found, err := repo.Update(context.Background(), 42, input("x", day(2024, 1, 1)))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if found {
		t.Error("Update of a missing id should report not found")
	}
}

func TestNewsRepo_Delete(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	created, _ := repo.Create(ctx, input("Gone", day(2024, 1, 1)))

	found, err := repo.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !found {
		t.Error("Delete should report the row as found")
	}

	stored, _ := repo.GetByID(ctx, created.ID)
	if stored != nil {
		t.Error("Article should be gone")
	}

	found, err = repo.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Second delete failed: %v", err)
	}
	if found {
		t.Error("Deleting twice should report not found")
	}
}

func TestNewsRepo_CheckConstraintSurfacesError(t *testing.T) {
	repo, _ := setupRepo(t)

	bad := input("bad", day(2024, 1, 1))
	bad.TargetSite = "ALL"
	if _, err := repo.Create(context.Background(), bad); err == nil {
		t.Error("Expected the store to reject an out-of-range target_site")
	}
}

func TestPGCode(t *testing.T) {
	err := &pq.Error{Code: "23514"}
	if got := PGCode(errors.Join(errors.New("insert news"), err)); got != "23514" {
		t.Errorf("Expected 23514, got %q", got)
	}
	if got := PGCode(errors.New("plain")); got != "" {
		t.Errorf("Expected empty code, got %q", got)
	}
}
