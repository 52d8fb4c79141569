package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/adapters/remote"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/config"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/infrastructure/gateway"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"gateway", cfg.Gateway.Host,
	)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	attemptRepo := postgres.NewAttemptRepository(db)
	checkoutRepo := postgres.NewCheckoutRepository(db)

	gatewayClient := gateway.NewGatewayClient(cfg.Gateway, logger)

	orderService := services.NewOrderService(gatewayClient, checkoutRepo, logger)
	paymentService := services.NewPaymentService(
		gatewayClient,
		attemptRepo,
		remote.NewRegistry(),
		services.PaymentServiceConfig{
			RedirectDomain: cfg.Gateway.RedirectDomain,
			AuthTimeout:    cfg.Session.AuthTimeout,
			AttemptTimeout: cfg.Session.AttemptTimeout,
			Retention:      cfg.Session.ResultRetention,
		},
		logger,
	)
	callbackService := services.NewCallbackService(gatewayClient, checkoutRepo, attemptRepo, logger)
	queryService := services.NewQueryService(attemptRepo, checkoutRepo)
	reconcileService := services.NewReconcileService(
		gateway.NewRetryClient(gatewayClient, cfg.Retry),
		attemptRepo,
		logger,
	)

	h := handlers.NewHandlers(
		orderService,
		paymentService,
		callbackService,
		queryService,
		db,
		logger,
	)

	doc, err := api.GetSwagger()
	if err != nil {
		logger.Error("failed to load openapi spec", "error", err)
		os.Exit(1)
	}
	validate, err := middleware.RequestValidator(doc, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	h.Register(mux)

	handler := validate(mux)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	reconciler := worker.NewReconciler(
		attemptRepo,
		reconcileService,
		cfg.Worker.Interval,
		cfg.Worker.BatchSize,
		cfg.Worker.StaleAfter,
		logger,
	)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go reconciler.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if err := paymentService.Shutdown(shutdownCtx); err != nil {
		logger.Error("payments still running at shutdown", "error", err)
	}

	logger.Info("server exited")
}
