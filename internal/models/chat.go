package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ChatConversation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     sql.NullString
	Metadata  json.RawMessage
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
