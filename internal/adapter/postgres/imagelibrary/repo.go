// Package imagelibrary implements the image library repository using PostgreSQL.
package imagelibrary

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

const table = "image_library"

// RecentWindow is the age limit for ImageLibraryStats.RecentCount.
const RecentWindow = 7 * 24 * time.Hour

var columns = []string{"id", "user_id", "url", "prompt", "style", "ai_model", "tags", "is_generated", "created_at"}

const returning = "RETURNING id, user_id, url, prompt, style, ai_model, tags, is_generated, created_at"

type row struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	URL         string    `db:"url"`
	Prompt      string    `db:"prompt"`
	Style       string    `db:"style"`
	AIModel     string    `db:"ai_model"`
	Tags        []string  `db:"tags"`
	IsGenerated bool      `db:"is_generated"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() domain.ImageLibraryEntry {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.ImageLibraryEntry{
		ID:          r.ID,
		UserID:      r.UserID,
		URL:         r.URL,
		Prompt:      r.Prompt,
		Style:       r.Style,
		AIModel:     r.AIModel,
		Tags:        tags,
		IsGenerated: r.IsGenerated,
		CreatedAt:   r.CreatedAt,
	}
}

// Repo provides image library persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new image library repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the user's images matching filter, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.ImageLibraryFilter) ([]domain.ImageLibraryEntry, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if filter.Style != "" {
		q = q.Where(squirrel.Eq{"style": filter.Style})
	}
	if filter.AIModel != "" {
		q = q.Where(squirrel.Eq{"ai_model": filter.AIModel})
	}
	if len(filter.Tags) > 0 {
		q = q.Where("tags && ?", filter.Tags)
	}
	if filter.Search != "" {
		pattern := postgres.ContainsPattern(filter.Search)
		q = q.Where(squirrel.Or{
			squirrel.ILike{"prompt": pattern},
			squirrel.Expr("EXISTS (SELECT 1 FROM unnest(tags) AS t(tag) WHERE t.tag ILIKE ?)", pattern),
		})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build image library list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list image library: %w", err)
	}

	out := make([]domain.ImageLibraryEntry, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

type countRow struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

// Stats aggregates the user's library. RecentCount covers RecentWindow back from now.
func (r *Repo) Stats(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.ImageLibraryStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("count(*)").
		Column(squirrel.Expr("count(*) FILTER (WHERE created_at >= ?)", now.Add(-RecentWindow))).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build image stats: %w", err)
	}

	stats := &domain.ImageLibraryStats{
		ByStyle: map[string]int{},
		ByModel: map[string]int{},
	}
	if err := q.QueryRow(ctx, sql, args...).Scan(&stats.TotalImages, &stats.RecentCount); err != nil {
		return nil, fmt.Errorf("image stats totals: %w", err)
	}

	groups := []struct {
		col string
		dst map[string]int
	}{
		{"style", stats.ByStyle},
		{"ai_model", stats.ByModel},
	}
	for _, g := range groups {
		sql, args, err := postgres.Builder().
			Select(g.col+" AS key", "count(*) AS count").
			From(table).
			Where(squirrel.Eq{"user_id": userID}).
			GroupBy(g.col).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build image stats by %s: %w", g.col, err)
		}

		var rows []countRow
		if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
			return nil, fmt.Errorf("image stats by %s: %w", g.col, err)
		}
		for _, rw := range rows {
			g.dst[rw.Key] = rw.Count
		}
	}

	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create records an image for userID.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, e *domain.ImageLibraryEntry) (*domain.ImageLibraryEntry, error) {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "url", "prompt", "style", "ai_model", "tags", "is_generated").
		Values(userID, e.URL, e.Prompt, e.Style, e.AIModel, tags, e.IsGenerated).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build image library insert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "image", uuid.Nil)
	}
	created := out.toDomain()
	return &created, nil
}

// UpdateTags replaces the tags of an image.
func (r *Repo) UpdateTags(ctx context.Context, userID, id uuid.UUID, tags []string) (*domain.ImageLibraryEntry, error) {
	if tags == nil {
		tags = []string{}
	}

	sql, args, err := postgres.Builder().
		Update(table).
		Set("tags", tags).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build image tags update: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "image", id)
	}
	updated := out.toDomain()
	return &updated, nil
}

// Delete removes an image owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build image delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "image", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("image %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountOlderThan reports how many entries DeleteOlderThan would remove.
func (r *Repo) CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build image retention count: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count old images: %w", err)
	}
	return n, nil
}

// DeleteOlderThan removes entries of every user created before cutoff.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build image retention delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete old images: %w", err)
	}
	return tag.RowsAffected(), nil
}
