package postgres

import (
	"context"
	"errors"
	"fmt"

	"agenin-transaction/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BankAccountRepo implements ports.BankAccountRepository.
type BankAccountRepo struct {
	pool Pool
}

// NewBankAccountRepo creates a new BankAccountRepo.
func NewBankAccountRepo(pool Pool) *BankAccountRepo {
	return &BankAccountRepo{pool: pool}
}

// Create inserts the customer detail row alongside its transaction.
func (r *BankAccountRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.BankAccountDetail) error {
	query := `INSERT INTO transaction_bank_accounts
		(id, transaction_id, customer_name, customer_identity_number, customer_phone_number, customer_email, customer_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		d.ID, d.TransactionID, d.CustomerName, d.CustomerIdentityNumber,
		d.CustomerPhoneNumber, d.CustomerEmail, d.CustomerAddress,
	)
	if err != nil {
		return fmt.Errorf("insert bank account detail: %w", err)
	}
	return nil
}

// GetByTransactionID fetches the customer detail for one transaction.
func (r *BankAccountRepo) GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.BankAccountDetail, error) {
	query := `SELECT id, transaction_id, customer_name, customer_identity_number, customer_phone_number, customer_email, customer_address
		FROM transaction_bank_accounts WHERE transaction_id = $1`

	d := &domain.BankAccountDetail{}
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(
		&d.ID, &d.TransactionID, &d.CustomerName, &d.CustomerIdentityNumber,
		&d.CustomerPhoneNumber, &d.CustomerEmail, &d.CustomerAddress,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank account by transaction: %w", err)
	}
	return d, nil
}
