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

func newTestBalance(userID uuid.UUID) *domain.UserBalance {
	return &domain.UserBalance{
		ID:            uuid.New(),
		UserID:        userID,
		BalanceAmount: decimal.NewFromInt(5000),
		LastUpdate:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func balanceRow(b *domain.UserBalance) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "balance_amount", "last_update"}).
		AddRow(b.ID, b.UserID, b.BalanceAmount, b.LastUpdate)
}

func TestBalanceRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	b := newTestBalance(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO user_balances").
		WithArgs(b.ID, b.UserID, b.BalanceAmount, b.LastUpdate).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_GetByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	b := newTestBalance(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM user_balances WHERE user_id").
		WithArgs(b.UserID).
		WillReturnRows(balanceRow(b))

	result, err := repo.GetByUserID(context.Background(), b.UserID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, b.ID, result.ID)
	assert.True(t, b.BalanceAmount.Equal(result.BalanceAmount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_GetByUserID_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	userID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM user_balances WHERE user_id").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "balance_amount", "last_update"}))

	result, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, result, "missing row maps to nil, not an error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_GetByUserIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	b := newTestBalance(uuid.New())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM user_balances WHERE user_id .+ FOR UPDATE").
		WithArgs(b.UserID).
		WillReturnRows(balanceRow(b))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByUserIDForUpdate(context.Background(), tx, b.UserID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, b.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_UpdateAmount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	id := uuid.New()
	amount := decimal.NewFromInt(10000)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE user_balances SET balance_amount").
		WithArgs(amount, now, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateAmount(context.Background(), tx, id, amount, now)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_UpdateAmount_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE user_balances SET balance_amount").
		WithArgs(decimal.Zero, now, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateAmount(context.Background(), tx, id, decimal.Zero, now)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "balance not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
