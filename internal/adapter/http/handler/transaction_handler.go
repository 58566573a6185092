package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agenin-transaction/internal/adapter/http/dto"
	"agenin-transaction/internal/adapter/http/middleware"
	"agenin-transaction/internal/core/ports"
	"agenin-transaction/pkg/apperror"
	"agenin-transaction/pkg/response"
)

// TransactionHandler handles the transaction API surface.
type TransactionHandler struct {
	inquirySvc  ports.InquiryService
	transferSvc ports.TransferService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(inquirySvc ports.InquiryService, transferSvc ports.TransferService) *TransactionHandler {
	return &TransactionHandler{inquirySvc: inquirySvc, transferSvc: transferSvc}
}

func headerUUID(c *gin.Context, header string) (uuid.UUID, error) {
	raw := c.GetHeader(header)
	if raw == "" {
		return uuid.Nil, apperror.ErrInvalidArgument(header + " header is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.ErrInvalidArgument(header + " header is not a valid UUID")
	}
	return id, nil
}

// Inquiry handles POST /api/v1/transaction/mock-open-bank-account.
func (h *TransactionHandler) Inquiry(c *gin.Context) {
	userID, err := headerUUID(c, middleware.HeaderUserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	productID, err := headerUUID(c, middleware.HeaderProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidArgument(err.Error()))
		return
	}

	result, err := h.inquirySvc.Inquiry(c.Request.Context(), userID, productID, req.ToPort(), middleware.ActorFromRequest(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, dto.FromInquiryResult(*result), "Transaction SUCCESS")
}

// ListCustomers handles GET /api/v1/transaction/customers.
func (h *TransactionHandler) ListCustomers(c *gin.Context) {
	userID, err := headerUUID(c, middleware.HeaderUserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	details, err := h.inquirySvc.ListUserTransactions(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, dto.FromTransactionDetails(details), "Customers retrieved")
}

// ListProducts handles GET /api/v1/transaction/products.
func (h *TransactionHandler) ListProducts(c *gin.Context) {
	listings, err := h.inquirySvc.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, dto.FromProductListings(listings), "Products retrieved")
}

// Transfer handles PATCH /api/v1/transaction/transfer-to-wallet.
func (h *TransactionHandler) Transfer(c *gin.Context) {
	userID, err := headerUUID(c, middleware.HeaderUserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidArgument(err.Error()))
		return
	}

	result, err := h.transferSvc.TransferToWallet(c.Request.Context(), userID, ports.TransferRequest{
		Amount: req.AmountToWallet,
		PIN:    req.PIN,
	}, middleware.ActorFromRequest(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, dto.TransferResponse{
		BalanceBefore: result.BalanceBefore,
		BalanceAfter:  result.BalanceAfter,
		WalletBefore:  result.WalletBefore,
		WalletAfter:   result.WalletAfter,
	}, "Transfer SUCCESS")
}

// BalanceAndWallet handles GET /api/v1/transaction/balance-and-wallet.
func (h *TransactionHandler) BalanceAndWallet(c *gin.Context) {
	userID, err := headerUUID(c, middleware.HeaderUserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	funds, err := h.transferSvc.GetBalanceAndWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, dto.BalanceAndWalletResponse{
		BalanceAmount: funds.BalanceAmount,
		WalletAmount:  funds.WalletAmount,
	}, "Balance retrieved")
}

// HealthCheck handles GET /health. It pings every dependency and
// reports degraded when any of them is down.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
