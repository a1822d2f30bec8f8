package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Generation statuses.
const (
	GenerationStatusPending   = "pending"
	GenerationStatusCompleted = "completed"
	GenerationStatusFailed    = "failed"
)

type Generation struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Status       string
	Prompt       sql.NullString
	CreditsUsed  int
	ErrorMessage sql.NullString
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type GenerationResult struct {
	ID           uuid.UUID
	GenerationID uuid.UUID
	ImageURL     string
	ThumbnailURL sql.NullString
	IsPurchased  bool
	CreatedAt    time.Time
}

// GenerationWithResults pairs a generation with its result rows for listing.
type GenerationWithResults struct {
	Generation Generation
	Results    []GenerationResult
}
