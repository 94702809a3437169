// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at"}

const returning = "RETURNING id, user_id, entity_type, entity_id, action, changes, created_at"

// DefaultLimit caps ListByEntity when the caller passes a non-positive limit.
const DefaultLimit = 50

type row struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (r row) toDomain() (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:         r.ID,
		UserID:     r.UserID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		CreatedAt:  r.CreatedAt,
	}

	if len(r.Changes) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(r.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", r.ID, err)
		}
		record.Changes = changes
	}

	return record, nil
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// A zero ID or CreatedAt is filled in by the database.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	cols := []string{"user_id", "entity_type", "entity_id", "action", "changes"}
	vals := []any{record.UserID, record.EntityType.String(), record.EntityID, record.Action.String(), changesJSON}
	if record.ID != uuid.Nil {
		cols = append(cols, "id")
		vals = append(vals, record.ID)
	}
	if !record.CreatedAt.IsZero() {
		cols = append(cols, "created_at")
		vals = append(vals, record.CreatedAt)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(cols...).
		Values(vals...).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build audit insert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return out.toDomain()
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interface of the CRUD services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the change history for a specific entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"entity_type": entityType.String(), "entity_id": entityID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list audit_records by entity: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, rw := range rows {
		rec, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}
