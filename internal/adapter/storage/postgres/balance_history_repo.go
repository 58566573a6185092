package postgres

import (
	"context"
	"fmt"

	"agenin-transaction/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BalanceHistoryRepo implements ports.BalanceHistoryRepository.
// Rows are append-only; there is no update or delete path.
type BalanceHistoryRepo struct {
	pool Pool
}

// NewBalanceHistoryRepo creates a new BalanceHistoryRepo.
func NewBalanceHistoryRepo(pool Pool) *BalanceHistoryRepo {
	return &BalanceHistoryRepo{pool: pool}
}

// Create appends one history row within the given transaction.
func (r *BalanceHistoryRepo) Create(ctx context.Context, tx pgx.Tx, h *domain.BalanceHistory) error {
	query := `INSERT INTO user_balance_histories (id, user_balance_id, transaction_id, amount, created_date)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, h.ID, h.UserBalanceID, h.TransactionID, h.Amount, h.CreatedDate)
	if err != nil {
		return fmt.Errorf("insert balance history: %w", err)
	}
	return nil
}

// ListByTransactionID fetches the history rows tied to one transaction.
func (r *BalanceHistoryRepo) ListByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]domain.BalanceHistory, error) {
	query := `SELECT id, user_balance_id, transaction_id, amount, created_date
		FROM user_balance_histories WHERE transaction_id = $1 ORDER BY created_date`

	rows, err := r.pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list balance histories: %w", err)
	}
	defer rows.Close()

	var out []domain.BalanceHistory
	for rows.Next() {
		var h domain.BalanceHistory
		if err := rows.Scan(&h.ID, &h.UserBalanceID, &h.TransactionID, &h.Amount, &h.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan balance history row: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate balance history rows: %w", err)
	}
	return out, nil
}
