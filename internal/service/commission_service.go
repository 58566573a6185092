package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"agenin-transaction/internal/core/domain"
	"agenin-transaction/internal/core/ports"
	"agenin-transaction/pkg/apperror"
)

// asAppError keeps structured errors intact and wraps everything else
// as a storage failure.
func asAppError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.ErrStorage(err)
}

// CommissionServiceImpl implements ports.CommissionService. Every
// method runs inside the caller's database transaction so commission
// rows, balance rows, and history rows commit or roll back together.
type CommissionServiceImpl struct {
	commissionRepo ports.CommissionRepository
	balanceRepo    ports.BalanceRepository
	historyRepo    ports.BalanceHistoryRepository
	referralRepo   ports.ReferralRepository
	audit          ports.AuditPublisher
	log            zerolog.Logger
}

// NewCommissionService creates a new CommissionServiceImpl.
func NewCommissionService(
	commissionRepo ports.CommissionRepository,
	balanceRepo ports.BalanceRepository,
	historyRepo ports.BalanceHistoryRepository,
	referralRepo ports.ReferralRepository,
	audit ports.AuditPublisher,
	log zerolog.Logger,
) *CommissionServiceImpl {
	return &CommissionServiceImpl{
		commissionRepo: commissionRepo,
		balanceRepo:    balanceRepo,
		historyRepo:    historyRepo,
		referralRepo:   referralRepo,
		audit:          audit,
		log:            log,
	}
}

// CreditCommission adds the product's commission value to the user's
// balance, creating the balance row lazily at zero. The balance row is
// locked for the rest of the transaction.
func (s *CommissionServiceImpl) CreditCommission(ctx context.Context, tx pgx.Tx, userID uuid.UUID, productID uuid.UUID) (uuid.UUID, error) {
	commission, err := s.commissionRepo.GetByProductID(ctx, productID)
	if err != nil {
		return uuid.Nil, asAppError(err)
	}
	if commission == nil {
		return uuid.Nil, apperror.ErrNotFound("Commission")
	}

	balance, err := s.balanceRepo.GetByUserIDForUpdate(ctx, tx, userID)
	if err != nil {
		return uuid.Nil, asAppError(err)
	}

	now := time.Now().UTC()
	if balance == nil {
		balance = &domain.UserBalance{
			ID:            uuid.New(),
			UserID:        userID,
			BalanceAmount: decimal.Zero,
			LastUpdate:    now,
		}
		if err := s.balanceRepo.Create(ctx, tx, balance); err != nil {
			return uuid.Nil, asAppError(err)
		}
	}

	newAmount := balance.BalanceAmount.Add(commission.Value)
	if err := s.balanceRepo.UpdateAmount(ctx, tx, balance.ID, newAmount, now); err != nil {
		return uuid.Nil, asAppError(err)
	}

	s.log.Debug().
		Str("user_id", userID.String()).
		Str("commission", commission.Value.String()).
		Str("balance", newAmount.String()).
		Msg("commission credited")

	return balance.ID, nil
}

// RecordHistory appends one BalanceHistory row for a credit. Called
// exactly once per beneficiary, right after CreditCommission.
func (s *CommissionServiceImpl) RecordHistory(ctx context.Context, tx pgx.Tx, userBalanceID uuid.UUID, transactionID uuid.UUID, productID uuid.UUID) error {
	commission, err := s.commissionRepo.GetByProductID(ctx, productID)
	if err != nil {
		return asAppError(err)
	}
	if commission == nil {
		return apperror.ErrNotFound("Commission")
	}

	history := &domain.BalanceHistory{
		ID:            uuid.New(),
		UserBalanceID: userBalanceID,
		TransactionID: transactionID,
		Amount:        commission.Value,
		CreatedDate:   time.Now().UTC(),
	}
	if err := s.historyRepo.Create(ctx, tx, history); err != nil {
		return asAppError(err)
	}
	return nil
}

// DistributeReferral credits the invitee's referring parent with the
// same commission value. A missing parent aborts the caller's whole
// transaction rather than silently dropping the referral leg.
func (s *CommissionServiceImpl) DistributeReferral(ctx context.Context, tx pgx.Tx, inviteeUserID uuid.UUID, transactionID uuid.UUID, productID uuid.UUID, actor domain.Actor) error {
	referral, err := s.referralRepo.GetByInviteeUserID(ctx, inviteeUserID)
	if err != nil {
		return asAppError(err)
	}
	if referral == nil {
		if err := s.audit.LogCreate(ctx, "user_referrals", inviteeUserID.String(), map[string]any{
			"status":         "FAILED",
			"reason":         "referral parent missing for sub agent",
			"transaction_id": transactionID.String(),
		}, actor); err != nil {
			return err
		}
		return apperror.ErrDataIntegrity("Referral parent missing for sub agent")
	}

	balanceID, err := s.CreditCommission(ctx, tx, referral.ReferenceUserID, productID)
	if err != nil {
		return err
	}
	if err := s.RecordHistory(ctx, tx, balanceID, transactionID, productID); err != nil {
		return err
	}

	return s.audit.LogCreate(ctx, "user_balance_histories", transactionID.String(), map[string]any{
		"status":            "SUCCESS",
		"invitee_user_id":   inviteeUserID.String(),
		"reference_user_id": referral.ReferenceUserID.String(),
		"transaction_id":    transactionID.String(),
	}, actor)
}
