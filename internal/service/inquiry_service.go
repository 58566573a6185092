package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"agenin-transaction/internal/adapter/storage/redis"
	"agenin-transaction/internal/core/domain"
	"agenin-transaction/internal/core/ports"
	"agenin-transaction/pkg/apperror"
)

const listCacheTTL = 30 * time.Minute

// InquiryServiceImpl implements ports.InquiryService: the state machine
// sequencing transaction creation, commission distribution, role
// branching, and audit emission for a single inquiry.
type InquiryServiceImpl struct {
	transactionRepo ports.TransactionRepository
	bankAccountRepo ports.BankAccountRepository
	productRepo     ports.ProductRepository
	commissionRepo  ports.CommissionRepository
	users           ports.UserDirectory
	commissions     ports.CommissionService
	audit           ports.AuditPublisher
	transactor      ports.DBTransactor
	cache           ports.ResponseCache
	log             zerolog.Logger
}

// NewInquiryService creates a new InquiryServiceImpl.
func NewInquiryService(
	transactionRepo ports.TransactionRepository,
	bankAccountRepo ports.BankAccountRepository,
	productRepo ports.ProductRepository,
	commissionRepo ports.CommissionRepository,
	users ports.UserDirectory,
	commissions ports.CommissionService,
	audit ports.AuditPublisher,
	transactor ports.DBTransactor,
	cache ports.ResponseCache,
	log zerolog.Logger,
) *InquiryServiceImpl {
	return &InquiryServiceImpl{
		transactionRepo: transactionRepo,
		bankAccountRepo: bankAccountRepo,
		productRepo:     productRepo,
		commissionRepo:  commissionRepo,
		users:           users,
		commissions:     commissions,
		audit:           audit,
		transactor:      transactor,
		cache:           cache,
		log:             log,
	}
}

// Inquiry opens a transaction, captures the customer's bank details,
// and credits commission according to the acting user's role.
//
// An unrecognized role commits the transaction and customer rows first
// and then fails: the partially persisted rows are kept as evidence of
// the attempted invalid transaction.
func (s *InquiryServiceImpl) Inquiry(ctx context.Context, userID uuid.UUID, productID uuid.UUID, req ports.InquiryRequest, actor domain.Actor) (*ports.InquiryResult, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, asAppError(err)
	}
	if product == nil {
		return nil, apperror.ErrNotFound("Product")
	}

	// User resolution may be a synchronous cross-service call with its
	// own timeout, so it happens before the database transaction opens.
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

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		Date:         now,
		Status:       domain.TransactionStatusSuccess,
	}
	txn.Code = domain.TransactionCode(txn.ID, now)

	detail := &domain.BankAccountDetail{
		ID:                     uuid.New(),
		TransactionID:          txn.ID,
		CustomerName:           req.CustomerName,
		CustomerIdentityNumber: req.CustomerIdentityNumber,
		CustomerPhoneNumber:    req.CustomerPhoneNumber,
		CustomerEmail:          req.CustomerEmail,
		CustomerAddress:        req.CustomerAddress,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.transactionRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, asAppError(err)
	}
	if err := s.bankAccountRepo.Create(ctx, dbTx, detail); err != nil {
		return nil, asAppError(err)
	}

	switch user.RoleName {
	case domain.RoleAgent, domain.RoleSubAgent:
		balanceID, err := s.commissions.CreditCommission(ctx, dbTx, userID, productID)
		if err != nil {
			return nil, err
		}
		if err := s.commissions.RecordHistory(ctx, dbTx, balanceID, txn.ID, productID); err != nil {
			return nil, err
		}
		if user.RoleName == domain.RoleSubAgent {
			if err := s.commissions.DistributeReferral(ctx, dbTx, userID, txn.ID, productID, actor); err != nil {
				return nil, err
			}
		}
	default:
		// Commit the transaction and customer rows, then fail. The
		// rows persist as evidence of the attempted invalid inquiry.
		if err := dbTx.Commit(ctx); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("commit failed inquiry: %w", err))
		}
		if err := s.audit.LogCreate(ctx, "transactions", txn.ID.String(), map[string]any{
			"status": string(domain.TransactionStatusFailed),
			"reason": "unrecognized role " + user.RoleName,
			"code":   txn.Code,
		}, actor); err != nil {
			return nil, err
		}
		return nil, apperror.ErrInvalidState("Transaction FAILED.")
	}

	// Serialize the creation audit before commit: marshal failure
	// rolls back the whole inquiry.
	if err := s.audit.LogCreate(ctx, "transactions", txn.ID.String(), map[string]any{
		"code":          txn.Code,
		"status":        string(txn.Status),
		"product_name":  txn.ProductName,
		"product_price": txn.ProductPrice.String(),
		"customer_name": detail.CustomerName,
	}, actor); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit inquiry: %w", err))
	}

	if err := s.cache.Delete(ctx, redis.CustomersKey(userID), redis.BalanceKey(userID)); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("inquiry cache invalidation failed")
	}

	s.log.Info().
		Str("transaction_code", txn.Code).
		Str("user_id", userID.String()).
		Str("role", user.RoleName).
		Msg("inquiry completed")

	return &ports.InquiryResult{Transaction: *txn, BankAccount: *detail}, nil
}

// ListProducts returns the catalog joined with commission values.
func (s *InquiryServiceImpl) ListProducts(ctx context.Context) ([]ports.ProductListing, error) {
	if cached, err := s.cache.Get(ctx, redis.ProductsKey()); err != nil {
		s.log.Warn().Err(err).Msg("products cache read failed, falling through to storage")
	} else if cached != nil {
		var out []ports.ProductListing
		if err := json.Unmarshal(cached, &out); err == nil {
			return out, nil
		}
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, asAppError(err)
	}

	out := make([]ports.ProductListing, 0, len(products))
	for _, p := range products {
		listing := ports.ProductListing{Product: p}
		commission, err := s.commissionRepo.GetByProductID(ctx, p.ID)
		if err != nil {
			return nil, asAppError(err)
		}
		if commission != nil {
			listing.CommissionValue = commission.Value
		}
		out = append(out, listing)
	}

	s.cacheSet(ctx, redis.ProductsKey(), out)
	return out, nil
}

// ListUserTransactions returns a user's transactions with customer
// details, newest first.
func (s *InquiryServiceImpl) ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]ports.TransactionDetail, error) {
	cacheKey := redis.CustomersKey(userID)
	if cached, err := s.cache.Get(ctx, cacheKey); err != nil {
		s.log.Warn().Err(err).Msg("customers cache read failed, falling through to storage")
	} else if cached != nil {
		var out []ports.TransactionDetail
		if err := json.Unmarshal(cached, &out); err == nil {
			return out, nil
		}
	}

	txns, err := s.transactionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, asAppError(err)
	}

	out := make([]ports.TransactionDetail, 0, len(txns))
	for _, txn := range txns {
		detail, err := s.bankAccountRepo.GetByTransactionID(ctx, txn.ID)
		if err != nil {
			return nil, asAppError(err)
		}
		out = append(out, ports.TransactionDetail{Transaction: txn, BankAccount: detail})
	}

	s.cacheSet(ctx, cacheKey, out)
	return out, nil
}

func (s *InquiryServiceImpl) cacheSet(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, listCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
