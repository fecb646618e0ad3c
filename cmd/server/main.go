package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vaultbank/internal/config"
	"vaultbank/internal/database"
	"vaultbank/internal/handlers"
	"vaultbank/internal/middleware"
	"vaultbank/internal/repositories"
	"vaultbank/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	gormDB, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	db := &database.DB{DB: gormDB}
	if _, err := db.SeedVault(cfg.Ledger.DefaultVault); err != nil {
		log.Fatalf("failed to seed default vault: %v", err)
	}

	registry := repositories.NewRegistry(gormDB)
	txRunner := repositories.NewTxRunner(gormDB)

	metrics := services.NewLedgerMetrics(prometheus.DefaultRegisterer)
	calendar := services.NewSystemCalendar()

	ledgerService := services.NewLedgerService(registry, txRunner, metrics, logger)
	amortizationService := services.NewLoanAmortizationService(
		registry.Loans, registry.LoanPayments, calendar, metrics, logger)
	repaymentService := services.NewLoanRepaymentService(registry, txRunner, metrics, logger)

	bankHandler := handlers.NewBankHandler(ledgerService)
	loanHandler := handlers.NewLoanHandler(
		registry.Loans, ledgerService, amortizationService, repaymentService)
	healthHandler := handlers.NewHealthCheckHandler(gormDB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))
	e.Use(middleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/accounts/:accountId/deposits", bankHandler.Deposit)
	e.POST("/accounts/:accountId/withdrawals", bankHandler.Withdraw)
	e.POST("/transfers", bankHandler.SendFunds)

	e.POST("/loans/:loanId/disburse", loanHandler.Disburse)
	e.POST("/loans/:loanId/accrue", loanHandler.Accrue)
	e.GET("/loans/:loanId/next-payment", loanHandler.NextPayment)
	e.POST("/loan-payments/:paymentId/pay", loanHandler.Pay)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err.Error())
	}

	if err := db.Close(); err != nil {
		logger.Error("Failed to close database", "error", err.Error())
	}
}
