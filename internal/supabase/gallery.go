package supabase

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fotomodel-backend/internal/models"
)

// InsertGalleryItem performs a single conditional insert keyed on
// (user_id, generation_result_id). The uniqueness constraint makes the
// operation atomic under concurrent duplicate requests; the bool reports
// whether the row was inserted (false means it already existed).
func (d *DatabaseClient) InsertGalleryItem(userID, resultID uuid.UUID, imageURL, thumbnailURL string, savedAt time.Time) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := d.db.QueryRow(`
		INSERT INTO gallery_items (user_id, generation_result_id, image_url, thumbnail_url, metadata)
		VALUES ($1, $2, $3, NULLIF($4, ''), jsonb_build_object('saved_at', $5::timestamptz))
		ON CONFLICT (user_id, generation_result_id) DO NOTHING
		RETURNING id
	`, userID, resultID, imageURL, thumbnailURL, savedAt).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to insert gallery item: %w", err)
	}

	return id, true, nil
}

func (d *DatabaseClient) CountCompletedGenerations(userID uuid.UUID) (int, error) {
	var count int
	err := d.db.QueryRow(`
		SELECT COUNT(*)
		FROM generations
		WHERE user_id = $1 AND status = 'completed' AND NOT is_deleted
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count generations: %w", err)
	}

	return count, nil
}

func (d *DatabaseClient) ListCompletedGenerations(userID uuid.UUID, limit, offset int) ([]models.GenerationWithResults, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, status, prompt, credits_used, error_message, is_deleted, created_at, updated_at
		FROM generations
		WHERE user_id = $1 AND status = 'completed' AND NOT is_deleted
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var page []models.GenerationWithResults
	ids := make([]uuid.UUID, 0, limit)
	for rows.Next() {
		var gen models.Generation
		err := rows.Scan(
			&gen.ID, &gen.UserID, &gen.Status, &gen.Prompt, &gen.CreditsUsed,
			&gen.ErrorMessage, &gen.IsDeleted, &gen.CreatedAt, &gen.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		page = append(page, models.GenerationWithResults{Generation: gen})
		ids = append(ids, gen.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(page) == 0 {
		return page, nil
	}

	results, err := d.listResultsForGenerations(ids)
	if err != nil {
		return nil, err
	}
	for i := range page {
		page[i].Results = results[page[i].Generation.ID]
	}

	return page, nil
}

func (d *DatabaseClient) listResultsForGenerations(ids []uuid.UUID) (map[uuid.UUID][]models.GenerationResult, error) {
	rows, err := d.db.Query(`
		SELECT id, generation_id, image_url, thumbnail_url, is_purchased, created_at
		FROM generation_results
		WHERE generation_id = ANY($1)
		ORDER BY created_at ASC
	`, uuidArray(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list generation results: %w", err)
	}
	defer rows.Close()

	results := make(map[uuid.UUID][]models.GenerationResult)
	for rows.Next() {
		var r models.GenerationResult
		err := rows.Scan(&r.ID, &r.GenerationID, &r.ImageURL, &r.ThumbnailURL, &r.IsPurchased, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation result: %w", err)
		}
		results[r.GenerationID] = append(results[r.GenerationID], r)
	}

	return results, rows.Err()
}
