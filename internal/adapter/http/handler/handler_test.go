package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agenin-transaction/internal/adapter/http/middleware"
	"agenin-transaction/internal/core/domain"
	"agenin-transaction/internal/core/ports"
	"agenin-transaction/internal/core/ports/mocks"
	"agenin-transaction/pkg/apperror"
	"agenin-transaction/pkg/response"
)

type routerFixture struct {
	inquirySvc  *mocks.MockInquiryService
	transferSvc *mocks.MockTransferService
	router      http.Handler
}

func newRouterFixture(t *testing.T) *routerFixture {
	ctrl := gomock.NewController(t)
	f := &routerFixture{
		inquirySvc:  mocks.NewMockInquiryService(ctrl),
		transferSvc: mocks.NewMockTransferService(ctrl),
	}
	f.router = SetupRouter(RouterDeps{
		InquirySvc:  f.inquirySvc,
		TransferSvc: f.transferSvc,
		Logger:      zerolog.Nop(),
	})
	return f
}

func (f *routerFixture) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func inquiryBody() map[string]string {
	return map[string]string{
		"customerName":           "Budi Santoso",
		"customerIdentityNumber": "3173051234567890",
		"customerPhoneNumber":    "081234567890",
		"customerEmail":          "budi@example.com",
		"customerAddress":        "Jakarta Selatan",
	}
}

func TestInquiryEndpoint_Success(t *testing.T) {
	f := newRouterFixture(t)
	userID := uuid.New()
	productID := uuid.New()
	txnID := uuid.New()

	f.inquirySvc.EXPECT().
		Inquiry(gomock.Any(), userID, productID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, req ports.InquiryRequest, actor domain.Actor) (*ports.InquiryResult, error) {
			assert.Equal(t, "Budi Santoso", req.CustomerName)
			assert.NotEmpty(t, actor.IPAddress)
			return &ports.InquiryResult{
				Transaction: domain.Transaction{
					ID:     txnID,
					Code:   "TRX_" + txnID.String(),
					Status: domain.TransactionStatusSuccess,
				},
				BankAccount: domain.BankAccountDetail{CustomerName: req.CustomerName},
			}, nil
		})

	rec := f.do(http.MethodPost, "/api/v1/transaction/mock-open-bank-account", inquiryBody(), map[string]string{
		middleware.HeaderUserID:    userID.String(),
		middleware.HeaderProductID: productID.String(),
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var body response.Body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusCreated, body.Code)
	assert.Equal(t, "Transaction SUCCESS", body.Message)
}

func TestInquiryEndpoint_MissingUserHeader(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/transaction/mock-open-bank-account", inquiryBody(), map[string]string{
		middleware.HeaderProductID: uuid.NewString(),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInquiryEndpoint_InvalidBody(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/transaction/mock-open-bank-account", map[string]string{
		"customerName": "Budi Santoso",
	}, map[string]string{
		middleware.HeaderUserID:    uuid.NewString(),
		middleware.HeaderProductID: uuid.NewString(),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInquiryEndpoint_InvalidStatePropagates(t *testing.T) {
	f := newRouterFixture(t)
	userID := uuid.New()
	productID := uuid.New()

	f.inquirySvc.EXPECT().
		Inquiry(gomock.Any(), userID, productID, gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInvalidState("Transaction FAILED."))

	rec := f.do(http.MethodPost, "/api/v1/transaction/mock-open-bank-account", inquiryBody(), map[string]string{
		middleware.HeaderUserID:    userID.String(),
		middleware.HeaderProductID: productID.String(),
	})

	require.Equal(t, http.StatusConflict, rec.Code)

	var body response.Body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Transaction FAILED.", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_STATE", body.Error.Details["type"])
}

func TestListCustomersEndpoint(t *testing.T) {
	f := newRouterFixture(t)
	userID := uuid.New()

	f.inquirySvc.EXPECT().
		ListUserTransactions(gomock.Any(), userID).
		Return([]ports.TransactionDetail{
			{
				Transaction: domain.Transaction{ID: uuid.New(), Status: domain.TransactionStatusSuccess},
				BankAccount: &domain.BankAccountDetail{CustomerName: "Budi Santoso"},
			},
		}, nil)

	rec := f.do(http.MethodGet, "/api/v1/transaction/customers", nil, map[string]string{
		middleware.HeaderUserID: userID.String(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Budi Santoso")
}

func TestListProductsEndpoint(t *testing.T) {
	f := newRouterFixture(t)

	f.inquirySvc.EXPECT().
		ListProducts(gomock.Any()).
		Return([]ports.ProductListing{
			{
				Product:         domain.Product{ID: uuid.New(), Code: "BRI-01", Name: "Tabungan BRI", Price: decimal.NewFromInt(50000)},
				CommissionValue: decimal.NewFromInt(5000),
			},
		}, nil)

	rec := f.do(http.MethodGet, "/api/v1/transaction/products", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tabungan BRI")
}

func TestTransferEndpoint_Success(t *testing.T) {
	f := newRouterFixture(t)
	userID := uuid.New()

	f.transferSvc.EXPECT().
		TransferToWallet(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req ports.TransferRequest, _ domain.Actor) (*ports.TransferResult, error) {
			assert.True(t, req.Amount.Equal(decimal.NewFromInt(5000)))
			assert.Equal(t, "123456", req.PIN)
			return &ports.TransferResult{
				BalanceBefore: decimal.NewFromInt(10000),
				BalanceAfter:  decimal.NewFromInt(5000),
				WalletBefore:  decimal.Zero,
				WalletAfter:   decimal.NewFromInt(5000),
			}, nil
		})

	rec := f.do(http.MethodPatch, "/api/v1/transaction/transfer-to-wallet", map[string]any{
		"amountToWallet": 5000,
		"pin":            "123456",
	}, map[string]string{
		middleware.HeaderUserID: userID.String(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "balanceAfter")
}

func TestTransferEndpoint_InsufficientFunds(t *testing.T) {
	f := newRouterFixture(t)
	userID := uuid.New()

	f.transferSvc.EXPECT().
		TransferToWallet(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInsufficientFunds())

	rec := f.do(http.MethodPatch, "/api/v1/transaction/transfer-to-wallet", map[string]any{
		"amountToWallet": 5000,
		"pin":            "123456",
	}, map[string]string{
		middleware.HeaderUserID: userID.String(),
	})

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestBalanceAndWalletEndpoint(t *testing.T) {
	f := newRouterFixture(t)
	userID := uuid.New()

	f.transferSvc.EXPECT().
		GetBalanceAndWallet(gomock.Any(), userID).
		Return(&ports.BalanceAndWallet{
			BalanceAmount: decimal.NewFromInt(7500),
			WalletAmount:  decimal.NewFromInt(2500),
		}, nil)

	rec := f.do(http.MethodGet, "/api/v1/transaction/balance-and-wallet", nil, map[string]string{
		middleware.HeaderUserID: userID.String(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "balanceAmount")
}

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := SetupRouter(RouterDeps{
			InquirySvc:     mocks.NewMockInquiryService(ctrl),
			TransferSvc:    mocks.NewMockTransferService(ctrl),
			HealthCheckers: []ports.HealthChecker{stubChecker{name: "postgresql"}, stubChecker{name: "redis"}},
			Logger:         zerolog.Nop(),
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	})

	t.Run("degraded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := SetupRouter(RouterDeps{
			InquirySvc:  mocks.NewMockInquiryService(ctrl),
			TransferSvc: mocks.NewMockTransferService(ctrl),
			HealthCheckers: []ports.HealthChecker{
				stubChecker{name: "postgresql"},
				stubChecker{name: "kafka", err: errors.New("dial timeout")},
			},
			Logger: zerolog.Nop(),
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
	})
}
