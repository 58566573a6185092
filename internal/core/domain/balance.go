package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserBalance is the internal, non-withdrawable ledger of earned
// commission. One row per user, created lazily on first credit.
// BalanceAmount never goes negative.
type UserBalance struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	BalanceAmount decimal.Decimal `json:"balance_amount"`
	LastUpdate    time.Time       `json:"last_update"`
}

// CanDebit reports whether the balance covers the requested amount.
func (b *UserBalance) CanDebit(amount decimal.Decimal) bool {
	return b.BalanceAmount.GreaterThanOrEqual(amount)
}

// BalanceHistory is the append-only audit trail for balance changes.
// One row per credit or debit event, never mutated or deleted.
type BalanceHistory struct {
	ID            uuid.UUID       `json:"id"`
	UserBalanceID uuid.UUID       `json:"user_balance_id"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedDate   time.Time       `json:"created_date"`
}
