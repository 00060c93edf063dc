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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/splitledger/backend/docs"
	"github.com/splitledger/backend/internal/activity"
	"github.com/splitledger/backend/internal/balance"
	"github.com/splitledger/backend/internal/cache"
	"github.com/splitledger/backend/internal/config"
	"github.com/splitledger/backend/internal/database"
	"github.com/splitledger/backend/internal/expense"
	expensesplit "github.com/splitledger/backend/internal/expense/split"
	"github.com/splitledger/backend/internal/project"
	"github.com/splitledger/backend/internal/settings"
	"github.com/splitledger/backend/internal/settlement"
	"github.com/splitledger/backend/internal/user"
	"github.com/splitledger/backend/pkg/logging"
	mw "github.com/splitledger/backend/pkg/middleware"
)

// @title        SplitLedger API
// @version      1.0
// @description  Shared-expense ledger with pairwise balances, settlements and lazy interest.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()
	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("Connected to database")

	// Balance cache: Redis when configured, in-process otherwise.
	var balanceCache cache.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, 0)
		if err != nil {
			slog.Error("Failed to connect to redis", "error", err)
			os.Exit(1)
		}
		balanceCache = redisCache
		slog.Info("Connected to redis", "addr", cfg.RedisAddr)
	} else {
		balanceCache = cache.NewMemoryCache()
	}

	splitFactory := expensesplit.NewSplitStrategyFactory()

	// Settings feature
	settingsService := settings.NewService(settings.NewRepository(db))
	settingsHandler := settings.NewHandler(settingsService)

	// Balance feature
	balanceService := balance.NewService(balance.NewSQLStore(db), settingsService, balanceCache)
	balanceHandler := balance.NewHandler(balanceService)

	// User feature
	userService := user.NewService(user.NewRepository(db))
	userHandler := user.NewHandler(userService)

	// Project feature
	projectService := project.NewService(db)
	projectHandler := project.NewHandler(projectService)

	// Expense feature (with split factory injected)
	expenseService := expense.NewService(db, settingsService, balanceService, splitFactory)
	expenseHandler := expense.NewHandler(expenseService)

	// Settlement feature
	settlementService := settlement.NewService(db, settingsService, balanceService)
	settlementHandler := settlement.NewHandler(settlementService)

	// Activity feed
	activityHandler := activity.NewHandler(activity.NewRepository(db))

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.RequestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.DevAuth || cfg.JWTSecret == "" {
			slog.Warn("Running with test-user auth, do not use in production")
			r.Use(mw.TestUserMiddleware)
		} else {
			r.Use(mw.Auth(mw.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)))
		}

		r.Mount("/users", userHandler.Routes())
		r.Mount("/projects", projectHandler.Routes())
		r.Mount("/settings", settingsHandler.Routes())
		r.Mount("/balances", balanceHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/activity", activityHandler.Routes())
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
