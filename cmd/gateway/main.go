package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/psp-gateway/internal/adapters/handler"
	"github.com/DanielPopoola/psp-gateway/internal/adapters/handler/middleware"
	"github.com/DanielPopoola/psp-gateway/internal/adapters/memory"
	"github.com/DanielPopoola/psp-gateway/internal/adapters/postgres"
	"github.com/DanielPopoola/psp-gateway/internal/adapters/system"
	"github.com/DanielPopoola/psp-gateway/internal/api"
	"github.com/DanielPopoola/psp-gateway/internal/config"
	"github.com/DanielPopoola/psp-gateway/internal/core/ports"
	"github.com/DanielPopoola/psp-gateway/internal/core/service"
)

type stores struct {
	transactions ports.TransactionRepository
	requests     ports.PaymentRequestRepository
	close        func()
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"store", cfg.Store.Backend,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	defer st.close()

	httpHandler, err := buildHandler(ctx, cfg.Server, st, logger)
	if err != nil {
		logger.Error("failed to build http handler", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

func openStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*stores, error) {
	if cfg.Store.Backend == config.BackendMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		return &stores{
			transactions: memory.NewTransactionRepository(),
			requests:     memory.NewPaymentRequestRepository(),
			close:        func() {},
		}, nil
	}

	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Store.Migrate {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &stores{
		transactions: postgres.NewTransactionRepository(db),
		requests:     postgres.NewPaymentRequestRepository(db),
		close:        db.Close,
	}, nil
}

func buildHandler(ctx context.Context, cfg config.ServerConfig, st *stores, logger *slog.Logger) (http.Handler, error) {
	clock := system.Clock{}

	authService := service.NewAuthorizationService(st.transactions, clock, system.UUIDGenerator{})
	paymentService := service.NewPaymentService(authService, st.requests, clock)
	transactionQueries := service.NewTransactionQueryService(st.transactions)
	requestQueries := service.NewPaymentRequestQueryService(st.requests)

	h := handler.NewPaymentHandler(paymentService, transactionQueries, requestQueries, logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	h.RegisterRoutes(mux)

	router := http.Handler(mux)

	if cfg.ValidateRequests {
		doc, err := api.Document(ctx)
		if err != nil {
			return nil, err
		}
		validate, err := middleware.OpenAPIValidator(doc, logger)
		if err != nil {
			return nil, err
		}
		router = validate(router)
	}

	httpHandler := middleware.Recovery(logger)(router)
	httpHandler = middleware.Logging(logger)(httpHandler)
	httpHandler = middleware.Timeout(cfg.RequestTimeout)(httpHandler)

	return httpHandler, nil
}
