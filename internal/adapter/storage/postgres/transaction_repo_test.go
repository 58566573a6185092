package postgres

import (
	"context"
	"testing"
	"time"

	"agenin-transaction/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(userID uuid.UUID) *domain.Transaction {
	id := uuid.New()
	date := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Transaction{
		ID:           id,
		Code:         domain.TransactionCode(id, date),
		UserID:       userID,
		ProductID:    uuid.New(),
		ProductName:  "Premium Package",
		ProductPrice: decimal.NewFromInt(100000),
		Date:         date,
		Status:       domain.TransactionStatusSuccess,
	}
}

func transactionColumns() []string {
	return []string{"id", "code", "user_id", "product_id", "product_name", "product_price", "date", "status"}
}

func transactionRow(tr *domain.Transaction) *pgxmock.Rows {
	return pgxmock.NewRows(transactionColumns()).AddRow(
		tr.ID, tr.Code, tr.UserID, tr.ProductID,
		tr.ProductName, tr.ProductPrice, tr.Date, tr.Status,
	)
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	tr := newTestTransaction(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(tr.ID, tr.Code, tr.UserID, tr.ProductID,
			tr.ProductName, tr.ProductPrice, tr.Date, tr.Status).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, tr)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	tr := newTestTransaction(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(tr.ID).
		WillReturnRows(transactionRow(tr))

	result, err := repo.GetByID(context.Background(), tr.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, tr.Code, result.Code)
	assert.Equal(t, domain.TransactionStatusSuccess, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(transactionColumns()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	userID := uuid.New()
	tr1 := newTestTransaction(userID)
	tr2 := newTestTransaction(userID)

	rows := pgxmock.NewRows(transactionColumns()).
		AddRow(tr1.ID, tr1.Code, tr1.UserID, tr1.ProductID, tr1.ProductName, tr1.ProductPrice, tr1.Date, tr1.Status).
		AddRow(tr2.ID, tr2.Code, tr2.UserID, tr2.ProductID, tr2.ProductName, tr2.ProductPrice, tr2.Date, tr2.Status)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE user_id").
		WithArgs(userID).
		WillReturnRows(rows)

	result, err := repo.ListByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankAccountRepo_CreateAndGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankAccountRepo(mock)
	d := &domain.BankAccountDetail{
		ID:                     uuid.New(),
		TransactionID:          uuid.New(),
		CustomerName:           "Jane Customer",
		CustomerIdentityNumber: "3174091234560001",
		CustomerPhoneNumber:    "+62811111111",
		CustomerEmail:          "jane@example.com",
		CustomerAddress:        "Jl. Sudirman 1",
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transaction_bank_accounts").
		WithArgs(d.ID, d.TransactionID, d.CustomerName, d.CustomerIdentityNumber,
			d.CustomerPhoneNumber, d.CustomerEmail, d.CustomerAddress).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tx, d))

	mock.ExpectQuery("SELECT .+ FROM transaction_bank_accounts WHERE transaction_id").
		WithArgs(d.TransactionID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "transaction_id", "customer_name", "customer_identity_number",
			"customer_phone_number", "customer_email", "customer_address",
		}).AddRow(d.ID, d.TransactionID, d.CustomerName, d.CustomerIdentityNumber,
			d.CustomerPhoneNumber, d.CustomerEmail, d.CustomerAddress))

	result, err := repo.GetByTransactionID(context.Background(), d.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, d.CustomerName, result.CustomerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
