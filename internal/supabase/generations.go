package supabase

import (
	"fmt"

	"github.com/google/uuid"

	"fotomodel-backend/internal/models"
)

func (d *DatabaseClient) CreateGeneration(userID uuid.UUID, prompt string, creditsUsed int) (*models.Generation, error) {
	var gen models.Generation
	err := d.db.QueryRow(`
		INSERT INTO generations (user_id, status, prompt, credits_used)
		VALUES ($1, 'pending', NULLIF($2, ''), $3)
		RETURNING id, user_id, status, prompt, credits_used, error_message, is_deleted, created_at, updated_at
	`, userID, prompt, creditsUsed).Scan(
		&gen.ID, &gen.UserID, &gen.Status, &gen.Prompt, &gen.CreditsUsed,
		&gen.ErrorMessage, &gen.IsDeleted, &gen.CreatedAt, &gen.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation: %w", err)
	}

	return &gen, nil
}

func (d *DatabaseClient) GetGeneration(generationID, userID uuid.UUID) (*models.GenerationWithResults, error) {
	var gen models.Generation
	err := d.db.QueryRow(`
		SELECT id, user_id, status, prompt, credits_used, error_message, is_deleted, created_at, updated_at
		FROM generations
		WHERE id = $1 AND user_id = $2 AND NOT is_deleted
	`, generationID, userID).Scan(
		&gen.ID, &gen.UserID, &gen.Status, &gen.Prompt, &gen.CreditsUsed,
		&gen.ErrorMessage, &gen.IsDeleted, &gen.CreatedAt, &gen.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get generation: %w", err)
	}

	results, err := d.listResultsForGenerations([]uuid.UUID{gen.ID})
	if err != nil {
		return nil, err
	}

	return &models.GenerationWithResults{Generation: gen, Results: results[gen.ID]}, nil
}

// GetGenerationByID looks up a generation without a user filter. Used by the
// webhook path, which authenticates with a shared token instead of a session.
func (d *DatabaseClient) GetGenerationByID(generationID uuid.UUID) (*models.Generation, error) {
	var gen models.Generation
	err := d.db.QueryRow(`
		SELECT id, user_id, status, prompt, credits_used, error_message, is_deleted, created_at, updated_at
		FROM generations
		WHERE id = $1
	`, generationID).Scan(
		&gen.ID, &gen.UserID, &gen.Status, &gen.Prompt, &gen.CreditsUsed,
		&gen.ErrorMessage, &gen.IsDeleted, &gen.CreatedAt, &gen.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get generation: %w", err)
	}

	return &gen, nil
}

// CompleteGeneration stores the produced results and flips the generation to
// completed in one transaction.
func (d *DatabaseClient) CompleteGeneration(generationID uuid.UUID, results []models.GenerationResult) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, r := range results {
		if _, err := tx.Exec(`
			INSERT INTO generation_results (generation_id, image_url, thumbnail_url)
			VALUES ($1, $2, $3)
		`, generationID, r.ImageURL, r.ThumbnailURL); err != nil {
			return fmt.Errorf("failed to insert generation result: %w", err)
		}
	}

	if _, err := tx.Exec(`
		UPDATE generations
		SET status = 'completed', error_message = NULL, updated_at = NOW()
		WHERE id = $1
	`, generationID); err != nil {
		return fmt.Errorf("failed to complete generation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit generation completion: %w", err)
	}

	return nil
}

func (d *DatabaseClient) FailGeneration(generationID uuid.UUID, errorMsg string) error {
	_, err := d.db.Exec(`
		UPDATE generations
		SET status = 'failed', error_message = $1, updated_at = NOW()
		WHERE id = $2
	`, errorMsg, generationID)
	return err
}
