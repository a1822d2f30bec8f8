package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"fotomodel-backend/internal/models"
)

func (d *DatabaseClient) CountWardrobeItems(userID uuid.UUID) (int, error) {
	var count int
	err := d.db.QueryRow(`
		SELECT COUNT(*)
		FROM wardrobe_items
		WHERE user_id = $1 AND NOT is_deleted
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count wardrobe items: %w", err)
	}

	return count, nil
}

// InsertWardrobeItem records one upload as a wardrobe item. Re-saving an
// upload that is live in the wardrobe is not an error; the bool reports
// whether the item landed. A soft-deleted row for the same upload is
// resurrected with the new attributes, so deletion stays reversible.
func (d *DatabaseClient) InsertWardrobeItem(item *models.WardrobeItem) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := d.db.QueryRow(`
		INSERT INTO wardrobe_items (user_id, upload_id, collection_id, category, storage_path, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, upload_id) DO UPDATE
		SET is_deleted = FALSE,
		    collection_id = EXCLUDED.collection_id,
		    category = EXCLUDED.category,
		    storage_path = EXCLUDED.storage_path,
		    image_url = EXCLUDED.image_url
		WHERE wardrobe_items.is_deleted
		RETURNING id
	`, item.UserID, item.UploadID, item.CollectionID, item.Category,
		item.StoragePath, item.ImageURL).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to insert wardrobe item: %w", err)
	}

	return id, true, nil
}

func (d *DatabaseClient) ListWardrobeItems(userID uuid.UUID) ([]models.WardrobeItem, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, upload_id, collection_id, category, storage_path, image_url, is_deleted, created_at
		FROM wardrobe_items
		WHERE user_id = $1 AND NOT is_deleted
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wardrobe items: %w", err)
	}
	defer rows.Close()

	var items []models.WardrobeItem
	for rows.Next() {
		var item models.WardrobeItem
		err := rows.Scan(
			&item.ID, &item.UserID, &item.UploadID, &item.CollectionID,
			&item.Category, &item.StoragePath, &item.ImageURL,
			&item.IsDeleted, &item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wardrobe item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (d *DatabaseClient) GetWardrobeItem(itemID, userID uuid.UUID) (*models.WardrobeItem, error) {
	var item models.WardrobeItem
	err := d.db.QueryRow(`
		SELECT id, user_id, upload_id, collection_id, category, storage_path, image_url, is_deleted, created_at
		FROM wardrobe_items
		WHERE id = $1 AND user_id = $2 AND NOT is_deleted
	`, itemID, userID).Scan(
		&item.ID, &item.UserID, &item.UploadID, &item.CollectionID,
		&item.Category, &item.StoragePath, &item.ImageURL,
		&item.IsDeleted, &item.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get wardrobe item: %w", err)
	}

	return &item, nil
}

// SoftDeleteWardrobeItem flips the deletion flag; rows are never removed.
func (d *DatabaseClient) SoftDeleteWardrobeItem(itemID, userID uuid.UUID) error {
	result, err := d.db.Exec(`
		UPDATE wardrobe_items
		SET is_deleted = TRUE
		WHERE id = $1 AND user_id = $2 AND NOT is_deleted
	`, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete wardrobe item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
