package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedBrainstorm creates a brainstorm owned by userID.
func SeedBrainstorm(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string) domain.Brainstorm {
	t.Helper()

	ts := now()
	b := domain.Brainstorm{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Content:   "Notes for " + title,
		Tags:      []string{"seed"},
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO brainstorms (id, user_id, title, content, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.UserID, b.Title, b.Content, b.Tags, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBrainstorm: %v", err)
	}

	return b
}

// SeedContextProfile creates a context profile owned by userID.
func SeedContextProfile(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.ContextProfile {
	t.Helper()

	ts := now()
	p := domain.ContextProfile{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		BusinessType:   "General",
		TargetAudience: "Executives",
		Objectives:     "Inform",
		BrandTone:      "professional",
		Preferences:    []byte(`{"tone":"professional"}`),
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO context_profiles
		   (id, user_id, name, business_type, target_audience, objectives, brand_tone, preferences, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.UserID, p.Name, p.BusinessType, p.TargetAudience, p.Objectives, p.BrandTone,
		[]byte(p.Preferences), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContextProfile: %v", err)
	}

	return p
}

// SeedPresentation creates a brainstorm, a context profile and a PASE
// presentation over them.
func SeedPresentation(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string) domain.Presentation {
	t.Helper()

	b := SeedBrainstorm(t, pool, userID, "Brainstorm for "+title)
	cp := SeedContextProfile(t, pool, userID, "Profile for "+title)

	ts := now()
	p := domain.Presentation{
		ID:               uuid.New(),
		UserID:           userID,
		BrainstormID:     b.ID,
		ContextProfileID: cp.ID,
		Title:            title,
		ContentAngle:     domain.ContentAnglePASE,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO presentations
		   (id, user_id, brainstorm_id, context_profile_id, title, content_angle, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.UserID, p.BrainstormID, p.ContextProfileID, p.Title, string(p.ContentAngle), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPresentation: %v", err)
	}

	return p
}

// SeedSlides adds n FULL_TEXT slides with orders 0..n-1.
func SeedSlides(t *testing.T, pool *pgxpool.Pool, presentationID uuid.UUID, n int) []domain.Slide {
	t.Helper()

	slides := make([]domain.Slide, 0, n)
	for i := 0; i < n; i++ {
		ts := now()
		s := domain.Slide{
			ID:             uuid.New(),
			PresentationID: presentationID,
			Order:          i,
			Template:       domain.SlideTemplateFullText,
			Title:          "Slide " + uniqueSuffix(),
			Content:        "Body",
			CreatedAt:      ts,
			UpdatedAt:      ts,
		}
		_, err := pool.Exec(context.Background(),
			`INSERT INTO slides (id, presentation_id, "order", template, title, content, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			s.ID, s.PresentationID, s.Order, string(s.Template), s.Title, s.Content, s.CreatedAt, s.UpdatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedSlides: %v", err)
		}
		slides = append(slides, s)
	}
	return slides
}
