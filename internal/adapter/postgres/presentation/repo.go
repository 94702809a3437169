// Package presentation implements the Presentation repository using PostgreSQL.
package presentation

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

const table = "presentations"

var columns = []string{
	"id", "user_id", "brainstorm_id", "context_profile_id", "title",
	"content_angle", "hook_angle", "narration", "created_at", "updated_at",
}

// qualified is columns prefixed with the p alias, for joined queries.
var qualified = func() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = "p." + c
	}
	return out
}()

const returning = "RETURNING id, user_id, brainstorm_id, context_profile_id, title, content_angle, hook_angle, narration, created_at, updated_at"

type row struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	BrainstormID     uuid.UUID `db:"brainstorm_id"`
	ContextProfileID uuid.UUID `db:"context_profile_id"`
	Title            string    `db:"title"`
	ContentAngle     string    `db:"content_angle"`
	HookAngle        *string   `db:"hook_angle"`
	Narration        *string   `db:"narration"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Presentation {
	p := domain.Presentation{
		ID:               r.ID,
		UserID:           r.UserID,
		BrainstormID:     r.BrainstormID,
		ContextProfileID: r.ContextProfileID,
		Title:            r.Title,
		ContentAngle:     domain.ContentAngle(r.ContentAngle),
		Narration:        r.Narration,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.HookAngle != nil {
		h := domain.HookAngle(*r.HookAngle)
		p.HookAngle = &h
	}
	return p
}

// Repo provides presentation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new presentation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a presentation owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Presentation, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build presentation query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "presentation", id)
	}
	p := out.toDomain()
	return &p, nil
}

// ListByUser returns the user's presentations, most recently updated first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Presentation, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC"))
}

// Search matches query against the presentation title, its brainstorm title
// and its context profile name.
func (r *Repo) Search(ctx context.Context, userID uuid.UUID, query string) ([]domain.Presentation, error) {
	pattern := postgres.ContainsPattern(query)
	return r.list(ctx, postgres.Builder().
		Select(qualified...).
		From(table+" p").
		Join("brainstorms b ON b.id = p.brainstorm_id").
		Join("context_profiles cp ON cp.id = p.context_profile_id").
		Where(squirrel.Eq{"p.user_id": userID}).
		Where(squirrel.Or{
			squirrel.ILike{"p.title": pattern},
			squirrel.ILike{"b.title": pattern},
			squirrel.ILike{"cp.name": pattern},
		}).
		OrderBy("p.updated_at DESC"))
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Presentation, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build presentation list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}

	out := make([]domain.Presentation, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a presentation for userID. The brainstorm and context
// profile must exist; a dangling reference maps to domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, p *domain.Presentation) (*domain.Presentation, error) {
	var hook *string
	if p.HookAngle != nil {
		h := p.HookAngle.String()
		hook = &h
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "brainstorm_id", "context_profile_id", "title", "content_angle", "hook_angle", "narration").
		Values(userID, p.BrainstormID, p.ContextProfileID, p.Title, p.ContentAngle.String(), hook, p.Narration).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build presentation insert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "presentation", uuid.Nil)
	}
	created := out.toDomain()
	return &created, nil
}

// Update applies the non-nil fields of params. An empty hook angle or
// narration clears the column.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, params domain.PresentationUpdateParams) (*domain.Presentation, error) {
	q := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning)

	if params.Title != nil {
		q = q.Set("title", *params.Title)
	}
	if params.ContentAngle != nil {
		q = q.Set("content_angle", params.ContentAngle.String())
	}
	if params.HookAngle != nil {
		q = q.Set("hook_angle", nullIfEmpty(params.HookAngle.String()))
	}
	if params.Narration != nil {
		q = q.Set("narration", nullIfEmpty(*params.Narration))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build presentation update: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "presentation", id)
	}
	updated := out.toDomain()
	return &updated, nil
}

// Touch bumps updated_at, used when a child slide changes.
func (r *Repo) Touch(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build presentation touch: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "presentation", id)
	}
	return nil
}

// Delete removes a presentation. Its slides go with it via ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build presentation delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "presentation", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("presentation %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
