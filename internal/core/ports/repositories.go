package ports

import (
	"context"
	"time"

	"agenin-transaction/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
}

// BankAccountRepository defines persistence for customer bank details
// captured with a transaction.
type BankAccountRepository interface {
	Create(ctx context.Context, tx pgx.Tx, detail *domain.BankAccountDetail) error
	GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.BankAccountDetail, error)
}

// BalanceRepository defines persistence operations for commission
// balances. Methods accepting pgx.Tx are used inside transaction blocks
// for pessimistic locking.
type BalanceRepository interface {
	Create(ctx context.Context, tx pgx.Tx, balance *domain.UserBalance) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserBalance, error)
	GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.UserBalance, error)
	UpdateAmount(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount decimal.Decimal, lastUpdate time.Time) error
}

// BalanceHistoryRepository appends the balance-side ledger rows.
type BalanceHistoryRepository interface {
	Create(ctx context.Context, tx pgx.Tx, history *domain.BalanceHistory) error
	ListByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]domain.BalanceHistory, error)
}

// WalletRepository defines persistence operations for spendable wallets.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error)
	UpdateAmount(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount decimal.Decimal, lastUpdate time.Time) error
}

// WalletHistoryRepository appends the wallet-side ledger rows.
type WalletHistoryRepository interface {
	Create(ctx context.Context, tx pgx.Tx, history *domain.WalletHistory) error
}

// ReferralRepository resolves the referring parent for an invited user.
type ReferralRepository interface {
	GetByInviteeUserID(ctx context.Context, inviteeUserID uuid.UUID) (*domain.Referral, error)
}

// CommissionRepository looks up the commission value owed per product.
type CommissionRepository interface {
	GetByProductID(ctx context.Context, productID uuid.UUID) (*domain.Commission, error)
}

// ProductRepository reads the product catalog.
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// UserRepository reads agent profiles from local storage.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
