package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Presentation is generated from one brainstorm and one context profile
// and exclusively owns its ordered slides.
type Presentation struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	BrainstormID     uuid.UUID
	ContextProfileID uuid.UUID
	Title            string
	ContentAngle     ContentAngle
	HookAngle        *HookAngle
	Narration        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PresentationWithDetails is a presentation with its source records and slides in display order.
type PresentationWithDetails struct {
	Presentation
	Brainstorm     Brainstorm
	ContextProfile ContextProfile
	Slides         []Slide
}

// PresentationUpdateParams holds a partial presentation update.
type PresentationUpdateParams struct {
	Title        *string
	ContentAngle *ContentAngle
	HookAngle    *HookAngle // ptr("") = clear
	Narration    *string    // ptr("") = clear
}

// Slide is one page of a presentation. Order is 0-based and unique within
// the presentation. CanvasData and ThemeData are opaque client snapshots.
type Slide struct {
	ID               uuid.UUID
	PresentationID   uuid.UUID
	Order            int
	Template         SlideTemplate
	Title            string
	Content          string
	NarrationSegment *string
	ImageURL         *string
	CanvasData       json.RawMessage
	ThemeData        json.RawMessage
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SlideUpdateParams holds a partial slide update.
type SlideUpdateParams struct {
	Template         *SlideTemplate
	Title            *string
	Content          *string
	NarrationSegment *string // ptr("") = clear
	ImageURL         *string // ptr("") = clear
	CanvasData       json.RawMessage
	ThemeData        json.RawMessage
}
