// Package contextprofile implements the ContextProfile repository using PostgreSQL.
package contextprofile

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

const table = "context_profiles"

var columns = []string{
	"id", "user_id", "name", "business_type", "target_audience",
	"objectives", "brand_tone", "preferences", "created_at", "updated_at",
}

const returning = "RETURNING id, user_id, name, business_type, target_audience, objectives, brand_tone, preferences, created_at, updated_at"

var emptyPreferences = []byte(`{}`)

type row struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	Name           string    `db:"name"`
	BusinessType   string    `db:"business_type"`
	TargetAudience string    `db:"target_audience"`
	Objectives     string    `db:"objectives"`
	BrandTone      string    `db:"brand_tone"`
	Preferences    []byte    `db:"preferences"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.ContextProfile {
	prefs := r.Preferences
	if len(prefs) == 0 {
		prefs = emptyPreferences
	}
	return domain.ContextProfile{
		ID:             r.ID,
		UserID:         r.UserID,
		Name:           r.Name,
		BusinessType:   r.BusinessType,
		TargetAudience: r.TargetAudience,
		Objectives:     r.Objectives,
		BrandTone:      r.BrandTone,
		Preferences:    prefs,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Repo provides context profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new context profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a context profile owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.ContextProfile, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build context profile query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "context_profile", id)
	}
	p := out.toDomain()
	return &p, nil
}

// ListByUser returns the user's profiles, most recently updated first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ContextProfile, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC"))
}

// Search matches query against name, business type, audience, objectives and tone.
func (r *Repo) Search(ctx context.Context, userID uuid.UUID, query string) ([]domain.ContextProfile, error) {
	pattern := postgres.ContainsPattern(query)
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"business_type": pattern},
			squirrel.ILike{"target_audience": pattern},
			squirrel.ILike{"objectives": pattern},
			squirrel.ILike{"brand_tone": pattern},
		}).
		OrderBy("updated_at DESC"))
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.ContextProfile, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build context profile list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list context profiles: %w", err)
	}

	out := make([]domain.ContextProfile, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a context profile for userID. Empty preferences are stored as {}.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, p *domain.ContextProfile) (*domain.ContextProfile, error) {
	prefs := []byte(p.Preferences)
	if len(prefs) == 0 {
		prefs = emptyPreferences
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "name", "business_type", "target_audience", "objectives", "brand_tone", "preferences").
		Values(userID, p.Name, p.BusinessType, p.TargetAudience, p.Objectives, p.BrandTone, prefs).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build context profile insert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "context_profile", uuid.Nil)
	}
	created := out.toDomain()
	return &created, nil
}

// Update applies the non-nil fields of params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, params domain.ContextProfileUpdateParams) (*domain.ContextProfile, error) {
	q := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning)

	if params.Name != nil {
		q = q.Set("name", *params.Name)
	}
	if params.BusinessType != nil {
		q = q.Set("business_type", *params.BusinessType)
	}
	if params.TargetAudience != nil {
		q = q.Set("target_audience", *params.TargetAudience)
	}
	if params.Objectives != nil {
		q = q.Set("objectives", *params.Objectives)
	}
	if params.BrandTone != nil {
		q = q.Set("brand_tone", *params.BrandTone)
	}
	if params.Preferences != nil {
		q = q.Set("preferences", []byte(params.Preferences))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build context profile update: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "context_profile", id)
	}
	updated := out.toDomain()
	return &updated, nil
}

// Delete removes a context profile and, by cascade, the presentations using it.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build context profile delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "context_profile", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("context_profile %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
