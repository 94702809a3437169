// Package brainstorm implements the Brainstorm repository using PostgreSQL.
package brainstorm

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

const table = "brainstorms"

var columns = []string{"id", "user_id", "title", "description", "content", "tags", "created_at", "updated_at"}

const returning = "RETURNING id, user_id, title, description, content, tags, created_at, updated_at"

type row struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Content     string    `db:"content"`
	Tags        []string  `db:"tags"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Brainstorm {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Brainstorm{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		Tags:        tags,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides brainstorm persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new brainstorm repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a brainstorm owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Brainstorm, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build brainstorm query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "brainstorm", id)
	}
	b := out.toDomain()
	return &b, nil
}

// ListByUser returns the user's brainstorms, most recently updated first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Brainstorm, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC"))
}

// Search matches query case-insensitively against title, description and content.
func (r *Repo) Search(ctx context.Context, userID uuid.UUID, query string) ([]domain.Brainstorm, error) {
	pattern := postgres.ContainsPattern(query)
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"content": pattern},
		}).
		OrderBy("updated_at DESC"))
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Brainstorm, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build brainstorm list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list brainstorms: %w", err)
	}

	out := make([]domain.Brainstorm, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a brainstorm for userID.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, b *domain.Brainstorm) (*domain.Brainstorm, error) {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "title", "description", "content", "tags").
		Values(userID, b.Title, b.Description, b.Content, tags).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build brainstorm insert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "brainstorm", uuid.Nil)
	}
	created := out.toDomain()
	return &created, nil
}

// Update applies the non-nil fields of params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, params domain.BrainstormUpdateParams) (*domain.Brainstorm, error) {
	q := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning)

	if params.Title != nil {
		q = q.Set("title", *params.Title)
	}
	if params.Description != nil {
		if *params.Description == "" {
			q = q.Set("description", nil)
		} else {
			q = q.Set("description", *params.Description)
		}
	}
	if params.Content != nil {
		q = q.Set("content", *params.Content)
	}
	if params.Tags != nil {
		tags := *params.Tags
		if tags == nil {
			tags = []string{}
		}
		q = q.Set("tags", tags)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build brainstorm update: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "brainstorm", id)
	}
	updated := out.toDomain()
	return &updated, nil
}

// Delete removes a brainstorm. Presentations built from it are removed by
// the ON DELETE CASCADE foreign key.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build brainstorm delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "brainstorm", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("brainstorm %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
