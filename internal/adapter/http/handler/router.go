package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"agenin-transaction/internal/adapter/http/middleware"
	"agenin-transaction/internal/core/ports"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	InquirySvc     ports.InquiryService
	TransferSvc    ports.TransferService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	txnHandler := NewTransactionHandler(deps.InquirySvc, deps.TransferSvc)

	v1 := r.Group("/api/v1")
	transaction := v1.Group("/transaction")
	{
		transaction.POST("/mock-open-bank-account", txnHandler.Inquiry)
		transaction.GET("/customers", txnHandler.ListCustomers)
		transaction.GET("/products", txnHandler.ListProducts)
		transaction.PATCH("/transfer-to-wallet", txnHandler.Transfer)
		transaction.GET("/balance-and-wallet", txnHandler.BalanceAndWallet)
	}

	return r
}
