package postgres

import (
	"context"
	"fmt"

	"agenin-transaction/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletHistoryRepo implements ports.WalletHistoryRepository.
type WalletHistoryRepo struct {
	pool Pool
}

// NewWalletHistoryRepo creates a new WalletHistoryRepo.
func NewWalletHistoryRepo(pool Pool) *WalletHistoryRepo {
	return &WalletHistoryRepo{pool: pool}
}

// Create appends one wallet history row within the given transaction.
func (r *WalletHistoryRepo) Create(ctx context.Context, tx pgx.Tx, h *domain.WalletHistory) error {
	query := `INSERT INTO user_wallet_histories (id, wallet_id, amount, created_date)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, h.ID, h.WalletID, h.Amount, h.CreatedDate)
	if err != nil {
		return fmt.Errorf("insert wallet history: %w", err)
	}
	return nil
}
