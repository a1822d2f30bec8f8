package supabase

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"fotomodel-backend/internal/models"
)

func (d *DatabaseClient) ListConversations(userID uuid.UUID) ([]models.ChatConversation, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, title, metadata, is_deleted, created_at, updated_at
		FROM chat_conversations
		WHERE user_id = $1 AND NOT is_deleted
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []models.ChatConversation
	for rows.Next() {
		var conv models.ChatConversation
		err := rows.Scan(
			&conv.ID, &conv.UserID, &conv.Title, &conv.Metadata,
			&conv.IsDeleted, &conv.CreatedAt, &conv.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conversations = append(conversations, conv)
	}

	return conversations, rows.Err()
}

func (d *DatabaseClient) CreateConversation(userID uuid.UUID, title string, metadata map[string]interface{}) (*models.ChatConversation, error) {
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	metadataJSON, _ := json.Marshal(metadata)

	var conv models.ChatConversation
	err := d.db.QueryRow(`
		INSERT INTO chat_conversations (user_id, title, metadata)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id, user_id, title, metadata, is_deleted, created_at, updated_at
	`, userID, title, metadataJSON).Scan(
		&conv.ID, &conv.UserID, &conv.Title, &conv.Metadata,
		&conv.IsDeleted, &conv.CreatedAt, &conv.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	return &conv, nil
}

// SoftDeleteConversation flips the deletion flag; rows are never removed.
func (d *DatabaseClient) SoftDeleteConversation(conversationID, userID uuid.UUID) error {
	result, err := d.db.Exec(`
		UPDATE chat_conversations
		SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND NOT is_deleted
	`, conversationID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
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
