package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User owns brainstorms, context profiles, presentations and images.
// Without authentication there is a single provisioned demo user.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Brainstorm is free-text raw input capturing ideas before they are structured.
type Brainstorm struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	Content     string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BrainstormUpdateParams holds a partial brainstorm update. Nil fields are left unchanged.
type BrainstormUpdateParams struct {
	Title       *string
	Description *string // ptr("") = clear
	Content     *string
	Tags        *[]string
}

// ContextProfile describes the target audience, objectives and tone of a presentation.
type ContextProfile struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	BusinessType   string
	TargetAudience string
	Objectives     string
	BrandTone      string
	Preferences    json.RawMessage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContextProfileUpdateParams holds a partial context profile update.
type ContextProfileUpdateParams struct {
	Name           *string
	BusinessType   *string
	TargetAudience *string
	Objectives     *string
	BrandTone      *string
	Preferences    json.RawMessage // nil = don't change
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
