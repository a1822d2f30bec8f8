package supabase

import (
	"fmt"

	"github.com/google/uuid"

	"fotomodel-backend/internal/models"
)

func (d *DatabaseClient) CountCreditTransactions(userID uuid.UUID) (int, error) {
	var count int
	err := d.db.QueryRow(`
		SELECT COUNT(*)
		FROM credit_transactions
		WHERE user_id = $1
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count credit transactions: %w", err)
	}

	return count, nil
}

func (d *DatabaseClient) ListCreditTransactions(userID uuid.UUID, limit, offset int) ([]models.CreditTransaction, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, amount, description, created_at
		FROM credit_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.CreditTransaction
	for rows.Next() {
		var tx models.CreditTransaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Description, &tx.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

// DebitCredits atomically takes amount credits from the user and appends the
// matching ledger entry. The conditional UPDATE is what keeps balances from
// going negative; false means the user did not have enough credits.
func (d *DatabaseClient) DebitCredits(userID uuid.UUID, amount int, description string) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("debit amount must be positive, got %d", amount)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE users
		SET credits = credits - $1, updated_at = NOW()
		WHERE id = $2 AND credits >= $1
	`, amount, userID)
	if err != nil {
		return false, fmt.Errorf("failed to debit credits: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := tx.Exec(`
		INSERT INTO credit_transactions (user_id, amount, description)
		VALUES ($1, $2, $3)
	`, userID, -amount, description); err != nil {
		return false, fmt.Errorf("failed to record credit transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit credit debit: %w", err)
	}

	return true, nil
}
