package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/finseed/finseed/internal/model"
)

// CreateTransaction inserts one transaction and fills in the assigned ID.
// Returns ErrUserNotFound if the owning user does not exist.
func (r *Repository) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, amount, category, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		txn.UserID,
		txn.Amount,
		txn.Category,
		txn.Date,
	).Scan(&txn.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// CreateTransactions bulk-inserts transactions in a single batched round
// trip. The seeder calls this once per user with that user's full history.
func (r *Repository) CreateTransactions(ctx context.Context, txns []model.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	query := `
		INSERT INTO transactions (user_id, amount, category, date)
		VALUES ($1, $2, $3, $4)
	`

	for _, txn := range txns {
		batch.Queue(query,
			txn.UserID,
			txn.Amount,
			txn.Category,
			txn.Date,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range txns {
		if _, err := results.Exec(); err != nil {
			if isForeignKeyViolation(err) {
				return ErrUserNotFound
			}
			return fmt.Errorf("batch insert transaction %d: %w", i, err)
		}
	}

	return nil
}

// ListTransactionsByUser retrieves all transactions owned by a user,
// ordered by date.
func (r *Repository) ListTransactionsByUser(ctx context.Context, userID int64) ([]*model.Transaction, error) {
	query := `
		SELECT id, user_id, amount, category, date
		FROM transactions
		WHERE user_id = $1
		ORDER BY date, id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []*model.Transaction
	for rows.Next() {
		var txn model.Transaction
		if err := rows.Scan(&txn.ID, &txn.UserID, &txn.Amount, &txn.Category, &txn.Date); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, &txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	return txns, nil
}

// CountTransactionsByUser returns the number of transactions a user owns.
func (r *Repository) CountTransactionsByUser(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE user_id = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return count, nil
}
