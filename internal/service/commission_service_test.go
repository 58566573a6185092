package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agenin-transaction/internal/core/domain"
	"agenin-transaction/internal/core/ports/mocks"
	"agenin-transaction/pkg/apperror"
)

// mockTx satisfies pgx.Tx for services that only Commit and Rollback.
type mockTx struct{ pgx.Tx }

func (mockTx) Commit(context.Context) error   { return nil }
func (mockTx) Rollback(context.Context) error { return nil }

type commissionFixture struct {
	commissionRepo *mocks.MockCommissionRepository
	balanceRepo    *mocks.MockBalanceRepository
	historyRepo    *mocks.MockBalanceHistoryRepository
	referralRepo   *mocks.MockReferralRepository
	audit          *mocks.MockAuditPublisher
	svc            *CommissionServiceImpl
}

func newCommissionFixture(t *testing.T) *commissionFixture {
	ctrl := gomock.NewController(t)
	f := &commissionFixture{
		commissionRepo: mocks.NewMockCommissionRepository(ctrl),
		balanceRepo:    mocks.NewMockBalanceRepository(ctrl),
		historyRepo:    mocks.NewMockBalanceHistoryRepository(ctrl),
		referralRepo:   mocks.NewMockReferralRepository(ctrl),
		audit:          mocks.NewMockAuditPublisher(ctrl),
	}
	f.svc = NewCommissionService(f.commissionRepo, f.balanceRepo, f.historyRepo, f.referralRepo, f.audit, zerolog.Nop())
	return f
}

func TestCreditCommission_ExistingBalance(t *testing.T) {
	f := newCommissionFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	balanceID := uuid.New()

	f.commissionRepo.EXPECT().GetByProductID(ctx, productID).
		Return(&domain.Commission{ID: uuid.New(), ProductID: productID, Value: decimal.NewFromInt(5000)}, nil)
	f.balanceRepo.EXPECT().GetByUserIDForUpdate(ctx, gomock.Any(), userID).
		Return(&domain.UserBalance{ID: balanceID, UserID: userID, BalanceAmount: decimal.NewFromInt(10000)}, nil)
	f.balanceRepo.EXPECT().
		UpdateAmount(ctx, gomock.Any(), balanceID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _ uuid.UUID, amount decimal.Decimal, _ any) error {
			assert.True(t, amount.Equal(decimal.NewFromInt(15000)))
			return nil
		})

	got, err := f.svc.CreditCommission(ctx, mockTx{}, userID, productID)
	require.NoError(t, err)
	assert.Equal(t, balanceID, got)
}

func TestCreditCommission_CreatesBalanceLazily(t *testing.T) {
	f := newCommissionFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	f.commissionRepo.EXPECT().GetByProductID(ctx, productID).
		Return(&domain.Commission{ID: uuid.New(), ProductID: productID, Value: decimal.NewFromInt(5000)}, nil)
	f.balanceRepo.EXPECT().GetByUserIDForUpdate(ctx, gomock.Any(), userID).Return(nil, nil)

	var createdID uuid.UUID
	f.balanceRepo.EXPECT().
		Create(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, balance *domain.UserBalance) error {
			createdID = balance.ID
			assert.Equal(t, userID, balance.UserID)
			assert.True(t, balance.BalanceAmount.IsZero())
			return nil
		})
	f.balanceRepo.EXPECT().
		UpdateAmount(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, id uuid.UUID, amount decimal.Decimal, _ any) error {
			assert.Equal(t, createdID, id)
			assert.True(t, amount.Equal(decimal.NewFromInt(5000)))
			return nil
		})

	got, err := f.svc.CreditCommission(ctx, mockTx{}, userID, productID)
	require.NoError(t, err)
	assert.Equal(t, createdID, got)
}

func TestCreditCommission_MissingCommission(t *testing.T) {
	f := newCommissionFixture(t)
	ctx := context.Background()
	productID := uuid.New()

	f.commissionRepo.EXPECT().GetByProductID(ctx, productID).Return(nil, nil)

	_, err := f.svc.CreditCommission(ctx, mockTx{}, uuid.New(), productID)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCreditCommission_StorageErrorWrapped(t *testing.T) {
	f := newCommissionFixture(t)
	ctx := context.Background()
	productID := uuid.New()

	f.commissionRepo.EXPECT().GetByProductID(ctx, productID).
		Return(nil, errors.New("connection reset"))

	_, err := f.svc.CreditCommission(ctx, mockTx{}, uuid.New(), productID)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE", appErr.Code)
}

func TestRecordHistory(t *testing.T) {
	f := newCommissionFixture(t)
	ctx := context.Background()
	balanceID := uuid.New()
	transactionID := uuid.New()
	productID := uuid.New()

	f.commissionRepo.EXPECT().GetByProductID(ctx, productID).
		Return(&domain.Commission{ID: uuid.New(), ProductID: productID, Value: decimal.NewFromInt(5000)}, nil)
	f.historyRepo.EXPECT().
		Create(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, history *domain.BalanceHistory) error {
			assert.Equal(t, balanceID, history.UserBalanceID)
			assert.Equal(t, transactionID, history.TransactionID)
			assert.True(t, history.Amount.Equal(decimal.NewFromInt(5000)))
			return nil
		})

	err := f.svc.RecordHistory(ctx, mockTx{}, balanceID, transactionID, productID)
	require.NoError(t, err)
}

func TestDistributeReferral_CreditsParent(t *testing.T) {
	f := newCommissionFixture(t)
	ctx := context.Background()
	inviteeID := uuid.New()
	parentID := uuid.New()
	transactionID := uuid.New()
	productID := uuid.New()
	parentBalanceID := uuid.New()

	f.referralRepo.EXPECT().GetByInviteeUserID(ctx, inviteeID).
		Return(&domain.Referral{ID: uuid.New(), InviteeUserID: inviteeID, ReferenceUserID: parentID}, nil)

	// Parent credit path inside CreditCommission + RecordHistory.
	f.commissionRepo.EXPECT().GetByProductID(ctx, productID).
		Return(&domain.Commission{ID: uuid.New(), ProductID: productID, Value: decimal.NewFromInt(5000)}, nil).
		Times(2)
	f.balanceRepo.EXPECT().GetByUserIDForUpdate(ctx, gomock.Any(), parentID).
		Return(&domain.UserBalance{ID: parentBalanceID, UserID: parentID, BalanceAmount: decimal.Zero}, nil)
	f.balanceRepo.EXPECT().UpdateAmount(ctx, gomock.Any(), parentBalanceID, gomock.Any(), gomock.Any()).Return(nil)
	f.historyRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)

	f.audit.EXPECT().
		LogCreate(ctx, "user_balance_histories", transactionID.String(), gomock.Any(), gomock.Any()).
		Return(nil)

	err := f.svc.DistributeReferral(ctx, mockTx{}, inviteeID, transactionID, productID, domain.Actor{})
	require.NoError(t, err)
}

func TestDistributeReferral_MissingParent(t *testing.T) {
	f := newCommissionFixture(t)
	ctx := context.Background()
	inviteeID := uuid.New()
	transactionID := uuid.New()

	f.referralRepo.EXPECT().GetByInviteeUserID(ctx, inviteeID).Return(nil, nil)
	f.audit.EXPECT().
		LogCreate(ctx, "user_referrals", inviteeID.String(), gomock.Any(), gomock.Any()).
		Return(nil)

	err := f.svc.DistributeReferral(ctx, mockTx{}, inviteeID, transactionID, uuid.New(), domain.Actor{})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATA_INTEGRITY", appErr.Code)
}
