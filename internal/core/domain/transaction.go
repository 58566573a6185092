package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus represents the terminal state of an inquiry.
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// Transaction records a single sales inquiry. Product name and price are
// snapshotted at creation time so the row stays immutable under later
// catalog changes.
type Transaction struct {
	ID           uuid.UUID         `json:"id"`
	Code         string            `json:"code"`
	UserID       uuid.UUID         `json:"user_id"`
	ProductID    uuid.UUID         `json:"product_id"`
	ProductName  string            `json:"product_name"`
	ProductPrice decimal.Decimal   `json:"product_price"`
	Date         time.Time         `json:"date"`
	Status       TransactionStatus `json:"status"`
}

// TransactionCode derives the human-facing code from the id and date.
func TransactionCode(id uuid.UUID, date time.Time) string {
	return fmt.Sprintf("TRX_%s_%s", id, date.UTC().Format(time.RFC3339))
}

// BankAccountDetail holds the customer fields captured alongside a
// transaction. One row per transaction, read-only after creation.
type BankAccountDetail struct {
	ID                     uuid.UUID `json:"id"`
	TransactionID          uuid.UUID `json:"transaction_id"`
	CustomerName           string    `json:"customer_name"`
	CustomerIdentityNumber string    `json:"customer_identity_number"`
	CustomerPhoneNumber    string    `json:"customer_phone_number"`
	CustomerEmail          string    `json:"customer_email"`
	CustomerAddress        string    `json:"customer_address"`
}
