package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID
	Email         sql.NullString
	FullName      sql.NullString
	Phone         sql.NullString
	Credits       int
	CurrentPlanID uuid.NullUUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type SubscriptionPlan struct {
	ID               uuid.UUID
	Slug             string
	Name             string
	MaxWardrobeItems int
	CreatedAt        time.Time
}

type CreditTransaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      int
	Description sql.NullString
	CreatedAt   time.Time
}
