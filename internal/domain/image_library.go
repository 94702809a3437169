package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImageLibraryEntry records an image a user generated or uploaded.
type ImageLibraryEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	URL         string
	Prompt      string
	Style       string
	AIModel     string
	Tags        []string
	IsGenerated bool
	CreatedAt   time.Time
}

// ImageLibraryStats aggregates a user's image library.
type ImageLibraryStats struct {
	TotalImages int
	ByStyle     map[string]int
	ByModel     map[string]int
	RecentCount int // created within the last 7 days
}
