package validation

import (
	"testing"
	"time"

	"github.com/news-admin/internal/models"
)

func validForm() *models.NewsForm {
	return &models.NewsForm{
		Title:       "Launch",
		BodyHTML:    "<p>Hi</p>",
		TargetSite:  "BOTH",
		Status:      "draft",
		PublishedAt: "2025-01-01T10:00",
	}
}

func TestValidateNews(t *testing.T) {
	validator := NewValidator(nil)

	tests := []struct {
		name      string
		mutate    func(f *models.NewsForm)
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid article",
			mutate: func(f *models.NewsForm) {},
		},
		{
			name:      "missing title",
			mutate:    func(f *models.NewsForm) { f.Title = "" },
			wantField: "title",
			wantMsg:   MsgTitleRequired,
		},
		{
			name:      "whitespace title",
			mutate:    func(f *models.NewsForm) { f.Title = "   \t" },
			wantField: "title",
			wantMsg:   MsgTitleRequired,
		},
		{
			name:      "missing body",
			mutate:    func(f *models.NewsForm) { f.BodyHTML = "" },
			wantField: "body_html",
			wantMsg:   MsgBodyRequired,
		},
		{
			name:      "invalid target_site",
			mutate:    func(f *models.NewsForm) { f.TargetSite = "ALL" },
			wantField: "target_site",
			wantMsg:   MsgInvalidTargetSite,
		},
		{
			name:      "lowercase target_site is rejected",
			mutate:    func(f *models.NewsForm) { f.TargetSite = "lp" },
			wantField: "target_site",
			wantMsg:   MsgInvalidTargetSite,
		},
		{
			name:      "invalid status",
			mutate:    func(f *models.NewsForm) { f.Status = "archived" },
			wantField: "status",
			wantMsg:   MsgInvalidStatus,
		},
		{
			name:      "unparseable published_at",
			mutate:    func(f *models.NewsForm) { f.PublishedAt = "not-a-date" },
			wantField: "published_at",
			wantMsg:   MsgInvalidPublishedAt,
		},
		{
			name:      "missing published_at",
			mutate:    func(f *models.NewsForm) { f.PublishedAt = "" },
			wantField: "published_at",
			wantMsg:   MsgInvalidPublishedAt,
		},
		{
			name: "first violation wins",
			mutate: func(f *models.NewsForm) {
				f.Title = ""
				f.BodyHTML = ""
				f.TargetSite = "nope"
				f.Status = "nope"
				f.PublishedAt = "nope"
			},
			wantField: "title",
			wantMsg:   MsgTitleRequired,
		},
		{
			name: "enum checked before date",
			mutate: func(f *models.NewsForm) {
				f.Status = "nope"
				f.PublishedAt = "nope"
			},
			wantField: "status",
			wantMsg:   MsgInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)

			input, verr := validator.ValidateNews(form)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateNews() unexpected error: %v", verr)
				}
				if input == nil {
					t.Fatal("ValidateNews() returned nil input")
				}
				return
			}

			if verr == nil {
				t.Fatalf("ValidateNews() expected error for field '%s'", tt.wantField)
			}
			if input != nil {
				t.Errorf("ValidateNews() returned input alongside error")
			}
			if verr.Field != tt.wantField {
				t.Errorf("Expected field '%s', got '%s'", tt.wantField, verr.Field)
			}
			if verr.Message != tt.wantMsg {
				t.Errorf("Expected message '%s', got '%s'", tt.wantMsg, verr.Message)
			}
		})
	}
}

func TestValidateNews_NilForm(t *testing.T) {
	_, verr := NewValidator(nil).ValidateNews(nil)
	if verr == nil || verr.Field != "title" {
		t.Fatalf("Expected title error for nil form, got %v", verr)
	}
}

func TestValidateNews_Normalises(t *testing.T) {
	form := validForm()
	form.Title = "  Launch  "
	form.BodyHTML = "  <p>Hi</p>"

	input, verr := NewValidator(nil).ValidateNews(form)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if input.Title != "Launch" {
		t.Errorf("Expected trimmed title, got %q", input.Title)
	}
	if input.BodyHTML != "  <p>Hi</p>" {
		t.Errorf("Body must be passed through untouched, got %q", input.BodyHTML)
	}
	if input.TargetSite != models.TargetSiteBoth || input.Status != models.StatusDraft {
		t.Errorf("Unexpected enums: %s %s", input.TargetSite, input.Status)
	}
	want := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	if !input.PublishedAt.Equal(want) || input.PublishedAt.Location() != time.UTC {
		t.Errorf("Expected %v in UTC, got %v", want, input.PublishedAt)
	}
}

func TestValidateNews_BodyThatSanitizesToNothingIsAccepted(t *testing.T) {
	form := validForm()
	form.BodyHTML = "<script>x</script>"

	if _, verr := NewValidator(nil).ValidateNews(form); verr != nil {
		t.Fatalf("raw body is non-empty and must pass validation, got %v", verr)
	}
}

func TestParsePublishedAt(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name    string
		loc     *time.Location
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "RFC3339 with Z",
			value: "2024-06-01T00:00:00Z",
			want:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 with offset is converted",
			value: "2024-06-01T09:00:00+09:00",
			want:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "JavaScript toISOString output",
			value: "2024-06-01T00:00:00.000Z",
			want:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "minutes with Z",
			value: "2025-01-01T10:00Z",
			want:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "minutes with offset is converted",
			value: "2025-01-01T10:00+09:00",
			want:  time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC),
		},
		{
			name:  "minutes with offset ignores configured zone",
			loc:   tokyo,
			value: "2025-01-01T10:00-05:00",
			want:  time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC),
		},
		{
			name:  "datetime-local in UTC",
			value: "2025-01-01T10:00",
			want:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "datetime-local in configured zone",
			loc:   tokyo,
			value: "2025-01-01T10:00",
			want:  time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC),
		},
		{
			name:  "space separated",
			value: "2023-12-01 08:30:00",
			want:  time.Date(2023, 12, 1, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			value: "2024-01-01",
			want:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			value: " 2024-01-01 ",
			want:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "garbage", value: "not-a-date", wantErr: true},
		{name: "impossible date", value: "2024-02-30T10:00", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewValidator(tt.loc).ParsePublishedAt(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParsePublishedAt(%q) expected error, got %v", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePublishedAt(%q) unexpected error: %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParsePublishedAt(%q) = %v, want %v", tt.value, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("ParsePublishedAt(%q) not normalised to UTC: %v", tt.value, got.Location())
			}
		})
	}
}
