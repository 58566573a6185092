package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is the withdrawable ledger funded by transfers from the
// commission balance. One row per user, created lazily on first
// transfer-in.
type Wallet struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Amount     decimal.Decimal `json:"amount"`
	LastUpdate time.Time       `json:"last_update"`
}

// WalletHistory mirrors BalanceHistory for wallet-side changes.
type WalletHistory struct {
	ID          uuid.UUID       `json:"id"`
	WalletID    uuid.UUID       `json:"wallet_id"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedDate time.Time       `json:"created_date"`
}
