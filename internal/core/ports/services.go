package ports

import (
	"context"

	"agenin-transaction/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// HashService handles credential hashing (bcrypt).
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// UserDirectory resolves agent profiles. Implemented locally against
// postgres or remotely over the message bridge; selected by config.
type UserDirectory interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// AuditPublisher emits audit records for every state-changing step.
// Serialization failure is a hard error for the caller: an un-auditable
// mutation is unsafe to commit. Delivery itself is best-effort.
type AuditPublisher interface {
	LogCreate(ctx context.Context, table string, recordID string, newData map[string]any, actor domain.Actor) error
	LogUpdate(ctx context.Context, table string, recordID string, oldData map[string]any, newData map[string]any, actor domain.Actor) error
}

// CommissionService mutates the commission ledger. All methods run
// inside the caller's pgx.Tx so a mid-operation failure rolls back
// every partial write.
type CommissionService interface {
	// CreditCommission adds the product's commission value to the
	// user's balance, creating the balance row lazily. Not idempotent:
	// callers invoke it exactly once per (transaction, beneficiary).
	CreditCommission(ctx context.Context, tx pgx.Tx, userID uuid.UUID, productID uuid.UUID) (uuid.UUID, error)
	// RecordHistory appends one BalanceHistory row for the credit.
	RecordHistory(ctx context.Context, tx pgx.Tx, userBalanceID uuid.UUID, transactionID uuid.UUID, productID uuid.UUID) error
	// DistributeReferral credits the invitee's referring parent. A
	// missing parent is a data-integrity failure that aborts the whole
	// inquiry transaction.
	DistributeReferral(ctx context.Context, tx pgx.Tx, inviteeUserID uuid.UUID, transactionID uuid.UUID, productID uuid.UUID, actor domain.Actor) error
}

// InquiryRequest holds the customer fields submitted with an inquiry.
type InquiryRequest struct {
	CustomerName           string
	CustomerIdentityNumber string
	CustomerPhoneNumber    string
	CustomerEmail          string
	CustomerAddress        string
}

// InquiryResult is assembled from the persisted rows.
type InquiryResult struct {
	Transaction domain.Transaction
	BankAccount domain.BankAccountDetail
}

// TransactionDetail pairs a transaction with its customer record.
type TransactionDetail struct {
	Transaction domain.Transaction        `json:"transaction"`
	BankAccount *domain.BankAccountDetail `json:"bank_account,omitempty"`
}

// ProductListing pairs a catalog entry with its commission value.
type ProductListing struct {
	Product         domain.Product  `json:"product"`
	CommissionValue decimal.Decimal `json:"commission_value"`
}

// InquiryService sequences transaction creation, commission
// distribution, role branching, and audit emission for one inquiry.
type InquiryService interface {
	Inquiry(ctx context.Context, userID uuid.UUID, productID uuid.UUID, req InquiryRequest, actor domain.Actor) (*InquiryResult, error)
	ListProducts(ctx context.Context) ([]ProductListing, error)
	ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]TransactionDetail, error)
}

// TransferRequest holds validated input for a balance-to-wallet move.
type TransferRequest struct {
	Amount decimal.Decimal
	PIN    string
}

// TransferResult reports the ledger state around a successful transfer.
type TransferResult struct {
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	WalletBefore  decimal.Decimal `json:"wallet_before"`
	WalletAfter   decimal.Decimal `json:"wallet_after"`
}

// BalanceAndWallet is the combined read model for an agent's funds.
type BalanceAndWallet struct {
	BalanceAmount decimal.Decimal `json:"balance_amount"`
	WalletAmount  decimal.Decimal `json:"wallet_amount"`
}

// TransferService moves funds from balance to wallet.
type TransferService interface {
	TransferToWallet(ctx context.Context, userID uuid.UUID, req TransferRequest, actor domain.Actor) (*TransferResult, error)
	GetBalanceAndWallet(ctx context.Context, userID uuid.UUID) (*BalanceAndWallet, error)
}
