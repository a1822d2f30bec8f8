package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"fotomodel-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := d.db.QueryRow(`
		SELECT id, email, full_name, phone, credits, current_plan_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`, userID).Scan(
		&user.ID, &user.Email, &user.FullName, &user.Phone,
		&user.Credits, &user.CurrentPlanID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// EnsureUser inserts a user row if one does not exist yet. The returned
// bool reports whether a new row was created, which is how the OAuth
// callback distinguishes first-time sign-ins from returning users.
func (d *DatabaseClient) EnsureUser(userID uuid.UUID, email string) (bool, error) {
	var id uuid.UUID
	err := d.db.QueryRow(`
		INSERT INTO users (id, email)
		VALUES ($1, NULLIF($2, ''))
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`, userID, email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to ensure user: %w", err)
	}

	return true, nil
}

func (d *DatabaseClient) UpdateUserName(userID uuid.UUID, fullName string) error {
	_, err := d.db.Exec(`
		UPDATE users
		SET full_name = $1, updated_at = NOW()
		WHERE id = $2
	`, fullName, userID)
	return err
}

func (d *DatabaseClient) UpdateUserPhone(userID uuid.UUID, phone string) error {
	_, err := d.db.Exec(`
		UPDATE users
		SET phone = $1, updated_at = NOW()
		WHERE id = $2
	`, phone, userID)
	return err
}

// GetUserPlan resolves the user's subscription plan. A nil plan with a nil
// error means the user has no plan assigned and defaults apply.
func (d *DatabaseClient) GetUserPlan(userID uuid.UUID) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := d.db.QueryRow(`
		SELECT p.id, p.slug, p.name, p.max_wardrobe_items, p.created_at
		FROM users u
		JOIN subscription_plans p ON p.id = u.current_plan_id
		WHERE u.id = $1
	`, userID).Scan(
		&plan.ID, &plan.Slug, &plan.Name, &plan.MaxWardrobeItems, &plan.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user plan: %w", err)
	}

	return &plan, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
