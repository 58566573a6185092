package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"agenin-transaction/config"
	httpHandler "agenin-transaction/internal/adapter/http/handler"
	"agenin-transaction/internal/adapter/messaging/kafka"
	pgStorage "agenin-transaction/internal/adapter/storage/postgres"
	redisStorage "agenin-transaction/internal/adapter/storage/redis"
	"agenin-transaction/internal/bridge"
	"agenin-transaction/internal/core/ports"
	"agenin-transaction/internal/service"
	"agenin-transaction/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("agenin-transaction", cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Agenin Transaction Service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize Kafka transport and request/reply bridge
	writer := kafka.NewWriter(cfg.Kafka.Brokers)
	defer writer.Close()
	transport := kafka.NewTransport(writer, log)
	msgBridge := bridge.New(transport, cfg.Kafka.SyncTimeout, log)

	// Initialize repositories
	txRepo := pgStorage.NewTransactionRepo(pool)
	bankAccountRepo := pgStorage.NewBankAccountRepo(pool)
	balanceRepo := pgStorage.NewBalanceRepo(pool)
	balanceHistoryRepo := pgStorage.NewBalanceHistoryRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	walletHistoryRepo := pgStorage.NewWalletHistoryRepo(pool)
	referralRepo := pgStorage.NewReferralRepo(pool)
	commissionRepo := pgStorage.NewCommissionRepo(pool)
	productRepo := pgStorage.NewProductRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis response cache
	responseCache := redisStorage.NewResponseCache(rdb)

	// User resolution: local reads the users table, remote asks the
	// user service over the bus.
	var users ports.UserDirectory = userRepo
	if cfg.Users.Mode == "remote" {
		users = kafka.NewRemoteUserDirectory(msgBridge, cfg.Kafka.UserLookupTopic, cfg.Kafka.ReplyTopic, log)
		log.Info().Str("topic", cfg.Kafka.UserLookupTopic).Msg("Remote user directory enabled")
	}

	// Initialize core services
	hashSvc := service.NewBcryptHashService(bcrypt.DefaultCost)
	auditPub := service.NewAuditPublisher(msgBridge, cfg.Kafka.AuditTopic, log)
	commissionSvc := service.NewCommissionService(commissionRepo, balanceRepo, balanceHistoryRepo, referralRepo, auditPub, log)
	inquirySvc := service.NewInquiryService(
		txRepo,
		bankAccountRepo,
		productRepo,
		commissionRepo,
		users,
		commissionSvc,
		auditPub,
		transactor,
		responseCache,
		log,
	)
	transferSvc := service.NewTransferService(
		users,
		balanceRepo,
		walletRepo,
		walletHistoryRepo,
		hashSvc,
		auditPub,
		transactor,
		responseCache,
		log,
	)

	// Reply listener: completes pending synchronous calls.
	replyReader := kafka.NewReader(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.ReplyTopic)
	defer replyReader.Close()
	replyListener := kafka.NewReplyListener(replyReader, msgBridge, log)
	go func() {
		if err := replyListener.Run(ctx); err != nil {
			log.Error().Err(err).Msg("reply listener stopped")
		}
	}()

	// Inquiry consumer: serves transaction requests arriving on the bus.
	inquiryReader := kafka.NewReader(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.TransactionTopic)
	defer inquiryReader.Close()
	inquiryConsumer := kafka.NewInquiryConsumer(inquiryReader, transport, inquirySvc, log)
	go func() {
		if err := inquiryConsumer.Run(ctx); err != nil {
			log.Error().Err(err).Msg("inquiry consumer stopped")
		}
	}()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)
	kafkaHealth := kafka.NewHealthChecker(cfg.Kafka.Brokers)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		InquirySvc:     inquirySvc,
		TransferSvc:    transferSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth, kafkaHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
