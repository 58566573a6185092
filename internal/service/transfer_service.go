package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"agenin-transaction/internal/adapter/storage/redis"
	"agenin-transaction/internal/core/domain"
	"agenin-transaction/internal/core/ports"
	"agenin-transaction/pkg/apperror"
)

const balanceCacheTTL = 5 * time.Minute

// TransferServiceImpl implements ports.TransferService: it moves earned
// commission from the internal balance into the spendable wallet.
type TransferServiceImpl struct {
	users       ports.UserDirectory
	balanceRepo ports.BalanceRepository
	walletRepo  ports.WalletRepository
	historyRepo ports.WalletHistoryRepository
	hash        ports.HashService
	audit       ports.AuditPublisher
	transactor  ports.DBTransactor
	cache       ports.ResponseCache
	log         zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	users ports.UserDirectory,
	balanceRepo ports.BalanceRepository,
	walletRepo ports.WalletRepository,
	historyRepo ports.WalletHistoryRepository,
	hash ports.HashService,
	audit ports.AuditPublisher,
	transactor ports.DBTransactor,
	cache ports.ResponseCache,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		users:       users,
		balanceRepo: balanceRepo,
		walletRepo:  walletRepo,
		historyRepo: historyRepo,
		hash:        hash,
		audit:       audit,
		transactor:  transactor,
		cache:       cache,
		log:         log,
	}
}

// TransferToWallet debits the commission balance and credits the wallet
// as one atomic unit. Credential and amount checks run before any
// ledger row is touched; failures on every branch are audit-logged.
func (s *TransferServiceImpl) TransferToWallet(ctx context.Context, userID uuid.UUID, req ports.TransferRequest, actor domain.Actor) (*ports.TransferResult, error) {
	// The user lookup may be a synchronous cross-service call, so it
	// stays outside the database transaction.
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, asAppError(err)
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}

	actor.UserID = user.ID
	actor.FullName = user.FullName
	actor.RoleID = user.RoleID
	actor.RoleName = user.RoleName

	ok, err := s.hash.Verify(req.PIN, user.PINHash)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("verify credential: %w", err))
	}
	if !ok {
		if err := s.audit.LogCreate(ctx, "user_wallets", userID.String(), map[string]any{
			"status": "FAILED",
			"reason": "invalid credential",
		}, actor); err != nil {
			return nil, err
		}
		return nil, apperror.ErrUnauthorized()
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		if err := s.audit.LogCreate(ctx, "user_wallets", userID.String(), map[string]any{
			"status": "FAILED",
			"reason": "non-positive transfer amount",
			"amount": req.Amount.String(),
		}, actor); err != nil {
			return nil, err
		}
		return nil, apperror.ErrInvalidArgument("Transfer amount must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balance, err := s.balanceRepo.GetByUserIDForUpdate(ctx, dbTx, userID)
	if err != nil {
		return nil, asAppError(err)
	}
	if balance == nil {
		return nil, apperror.ErrNotFound("Balance")
	}

	if !balance.CanDebit(req.Amount) {
		if err := s.audit.LogCreate(ctx, "user_wallets", userID.String(), map[string]any{
			"status":    "FAILED",
			"reason":    "insufficient balance",
			"requested": req.Amount.String(),
			"available": balance.BalanceAmount.String(),
		}, actor); err != nil {
			return nil, err
		}
		return nil, apperror.ErrInsufficientFunds()
	}

	now := time.Now().UTC()
	balanceBefore := balance.BalanceAmount
	balanceAfter := balanceBefore.Sub(req.Amount)
	if err := s.balanceRepo.UpdateAmount(ctx, dbTx, balance.ID, balanceAfter, now); err != nil {
		return nil, asAppError(err)
	}

	wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, dbTx, userID)
	if err != nil {
		return nil, asAppError(err)
	}
	walletBefore := decimal.Zero
	if wallet == nil {
		wallet = &domain.Wallet{
			ID:         uuid.New(),
			UserID:     userID,
			Amount:     decimal.Zero,
			LastUpdate: now,
		}
		if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
			return nil, asAppError(err)
		}
	} else {
		walletBefore = wallet.Amount
	}
	walletAfter := walletBefore.Add(req.Amount)
	if err := s.walletRepo.UpdateAmount(ctx, dbTx, wallet.ID, walletAfter, now); err != nil {
		return nil, asAppError(err)
	}

	if err := s.historyRepo.Create(ctx, dbTx, &domain.WalletHistory{
		ID:          uuid.New(),
		WalletID:    wallet.ID,
		Amount:      req.Amount,
		CreatedDate: now,
	}); err != nil {
		return nil, asAppError(err)
	}

	// Serialize the audit record before committing: a transfer that
	// cannot be audited must roll back.
	if err := s.audit.LogUpdate(ctx, "user_wallets", wallet.ID.String(),
		map[string]any{
			"balance_amount": balanceBefore.String(),
			"wallet_amount":  walletBefore.String(),
		},
		map[string]any{
			"balance_amount": balanceAfter.String(),
			"wallet_amount":  walletAfter.String(),
			"amount":         req.Amount.String(),
		}, actor); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit transfer: %w", err))
	}

	if err := s.cache.Delete(ctx, redis.BalanceKey(userID)); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("balance cache invalidation failed")
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("amount", req.Amount.String()).
		Str("balance_after", balanceAfter.String()).
		Msg("transfer to wallet completed")

	return &ports.TransferResult{
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		WalletBefore:  walletBefore,
		WalletAfter:   walletAfter,
	}, nil
}

// GetBalanceAndWallet returns the combined funds view, cached briefly.
// A missing wallet reads as zero; a missing balance is an error because
// the user has never earned commission.
func (s *TransferServiceImpl) GetBalanceAndWallet(ctx context.Context, userID uuid.UUID) (*ports.BalanceAndWallet, error) {
	cacheKey := redis.BalanceKey(userID)
	if cached, err := s.cache.Get(ctx, cacheKey); err != nil {
		s.log.Warn().Err(err).Msg("balance cache read failed, falling through to storage")
	} else if cached != nil {
		var out ports.BalanceAndWallet
		if err := json.Unmarshal(cached, &out); err == nil {
			return &out, nil
		}
	}

	balance, err := s.balanceRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, asAppError(err)
	}
	if balance == nil {
		return nil, apperror.ErrNotFound("Balance")
	}

	walletAmount := decimal.Zero
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, asAppError(err)
	}
	if wallet != nil {
		walletAmount = wallet.Amount
	}

	out := &ports.BalanceAndWallet{
		BalanceAmount: balance.BalanceAmount,
		WalletAmount:  walletAmount,
	}

	if payload, err := json.Marshal(out); err == nil {
		if err := s.cache.Set(ctx, cacheKey, payload, balanceCacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("balance cache write failed")
		}
	}
	return out, nil
}
