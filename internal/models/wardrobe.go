package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type WardrobeItem struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	UploadID     string
	CollectionID uuid.NullUUID
	Category     sql.NullString
	StoragePath  string
	ImageURL     string
	IsDeleted    bool
	CreatedAt    time.Time
}
