package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agenin-transaction/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BalanceRepo implements ports.BalanceRepository.
// Methods taking pgx.Tx MUST be called within a transaction.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

// Create inserts a new balance row within the given transaction.
func (r *BalanceRepo) Create(ctx context.Context, tx pgx.Tx, b *domain.UserBalance) error {
	query := `INSERT INTO user_balances (id, user_id, balance_amount, last_update)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, b.ID, b.UserID, b.BalanceAmount, b.LastUpdate)
	if err != nil {
		return fmt.Errorf("insert user balance: %w", err)
	}
	return nil
}

// GetByUserID fetches a user's balance without locking.
func (r *BalanceRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserBalance, error) {
	query := `SELECT id, user_id, balance_amount, last_update
		FROM user_balances WHERE user_id = $1`

	b := &domain.UserBalance{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(&b.ID, &b.UserID, &b.BalanceAmount, &b.LastUpdate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance by user id: %w", err)
	}
	return b, nil
}

// GetByUserIDForUpdate fetches a user's balance with pessimistic
// locking, serializing concurrent credits and debits per user.
func (r *BalanceRepo) GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.UserBalance, error) {
	query := `SELECT id, user_id, balance_amount, last_update
		FROM user_balances WHERE user_id = $1 FOR UPDATE`

	b := &domain.UserBalance{}
	err := tx.QueryRow(ctx, query, userID).Scan(&b.ID, &b.UserID, &b.BalanceAmount, &b.LastUpdate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return b, nil
}

// UpdateAmount sets a balance to the given amount within a transaction.
func (r *BalanceRepo) UpdateAmount(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount decimal.Decimal, lastUpdate time.Time) error {
	query := `UPDATE user_balances SET balance_amount = $1, last_update = $2 WHERE id = $3`

	tag, err := tx.Exec(ctx, query, amount, lastUpdate, id)
	if err != nil {
		return fmt.Errorf("update balance amount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("balance not found: %s", id)
	}
	return nil
}
