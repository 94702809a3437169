// Package slide implements the Slide repository using PostgreSQL.
// Slides carry no user_id; callers check presentation ownership first and
// every query here is scoped by presentation_id.
package slide

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

const (
	table    = "slides"
	orderCol = `"order"`
)

var columns = []string{
	"id", "presentation_id", orderCol, "template", "title", "content",
	"narration_segment", "image_url", "canvas_data", "theme_data", "created_at", "updated_at",
}

const returning = `RETURNING id, presentation_id, "order", template, title, content, narration_segment, image_url, canvas_data, theme_data, created_at, updated_at`

type row struct {
	ID               uuid.UUID `db:"id"`
	PresentationID   uuid.UUID `db:"presentation_id"`
	Order            int       `db:"order"`
	Template         string    `db:"template"`
	Title            string    `db:"title"`
	Content          string    `db:"content"`
	NarrationSegment *string   `db:"narration_segment"`
	ImageURL         *string   `db:"image_url"`
	CanvasData       []byte    `db:"canvas_data"`
	ThemeData        []byte    `db:"theme_data"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Slide {
	return domain.Slide{
		ID:               r.ID,
		PresentationID:   r.PresentationID,
		Order:            r.Order,
		Template:         domain.SlideTemplate(r.Template),
		Title:            r.Title,
		Content:          r.Content,
		NarrationSegment: r.NarrationSegment,
		ImageURL:         r.ImageURL,
		CanvasData:       r.CanvasData,
		ThemeData:        r.ThemeData,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// Repo provides slide persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new slide repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a slide of the given presentation.
func (r *Repo) GetByID(ctx context.Context, presentationID, id uuid.UUID) (*domain.Slide, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "presentation_id": presentationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build slide query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "slide", id)
	}
	s := out.toDomain()
	return &s, nil
}

// ListByPresentation returns the presentation's slides in display order.
func (r *Repo) ListByPresentation(ctx context.Context, presentationID uuid.UUID) ([]domain.Slide, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"presentation_id": presentationID}).
		OrderBy(orderCol + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build slide list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}

	out := make([]domain.Slide, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// NextOrder returns the order value that appends a slide to the presentation.
func (r *Repo) NextOrder(ctx context.Context, presentationID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Select(`COALESCE(MAX("order") + 1, 0)`).
		From(table).
		Where(squirrel.Eq{"presentation_id": presentationID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build next order: %w", err)
	}

	var next int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("next slide order: %w", err)
	}
	return next, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a slide. A duplicate order within the presentation maps to
// domain.ErrAlreadyExists at commit time.
func (r *Repo) Create(ctx context.Context, s *domain.Slide) (*domain.Slide, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("presentation_id", orderCol, "template", "title", "content",
			"narration_segment", "image_url", "canvas_data", "theme_data").
		Values(s.PresentationID, s.Order, s.Template.String(), s.Title, s.Content,
			s.NarrationSegment, s.ImageURL, nullableJSON(s.CanvasData), nullableJSON(s.ThemeData)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build slide insert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "slide", uuid.Nil)
	}
	created := out.toDomain()
	return &created, nil
}

// Update applies the non-nil fields of params. Empty narration or image URL
// clears the column; canvas and theme blobs are replaced verbatim.
func (r *Repo) Update(ctx context.Context, presentationID, id uuid.UUID, params domain.SlideUpdateParams) (*domain.Slide, error) {
	q := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "presentation_id": presentationID}).
		Suffix(returning)

	if params.Template != nil {
		q = q.Set("template", params.Template.String())
	}
	if params.Title != nil {
		q = q.Set("title", *params.Title)
	}
	if params.Content != nil {
		q = q.Set("content", *params.Content)
	}
	if params.NarrationSegment != nil {
		q = q.Set("narration_segment", nullIfEmpty(*params.NarrationSegment))
	}
	if params.ImageURL != nil {
		q = q.Set("image_url", nullIfEmpty(*params.ImageURL))
	}
	if params.CanvasData != nil {
		q = q.Set("canvas_data", []byte(params.CanvasData))
	}
	if params.ThemeData != nil {
		q = q.Set("theme_data", []byte(params.ThemeData))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build slide update: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "slide", id)
	}
	updated := out.toDomain()
	return &updated, nil
}

// UpdateOrder moves one slide. Uniqueness is checked at commit, so a whole
// reorder can run inside one transaction.
func (r *Repo) UpdateOrder(ctx context.Context, presentationID, id uuid.UUID, order int) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set(orderCol, order).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "presentation_id": presentationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build slide reorder: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "slide", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ShiftOrdersAfter closes the gap left by a deleted slide: every slide with
// an order greater than order moves up by one.
func (r *Repo) ShiftOrdersAfter(ctx context.Context, presentationID uuid.UUID, order int) (int64, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set(orderCol, squirrel.Expr(`"order" - 1`)).
		Where(squirrel.Eq{"presentation_id": presentationID}).
		Where(squirrel.Gt{orderCol: order}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build slide shift: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("shift slide orders: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes a slide and returns its order so the caller can reindex.
func (r *Repo) Delete(ctx context.Context, presentationID, id uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "presentation_id": presentationID}).
		Suffix(`RETURNING "order"`).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build slide delete: %w", err)
	}

	var order int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&order); err != nil {
		return 0, postgres.MapError(err, "slide", id)
	}
	return order, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableJSON(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}
