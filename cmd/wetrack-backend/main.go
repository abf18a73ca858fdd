package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/wetrack/wetrack-backend/internal/config"
	"github.com/wetrack/wetrack-backend/internal/delivery/httpapi"
	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/fastforex"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/kafka"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/metrics"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/migrate"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/repository"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/token"
	"github.com/wetrack/wetrack-backend/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.TrackerDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.TrackerDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repositories
	userRepo := repository.NewDefaultUserRepository(db)
	categoryRepo := repository.NewDefaultCategoryRepository(db)
	fixedCostRepo := repository.NewDefaultFixedCostRepository(db)
	expenseRepo := repository.NewDefaultExpenseRepository(db)
	conversionRepo := repository.NewDefaultConversionRepository(db)
	rateRepo := repository.NewDefaultExchangeRateRepository(db)

	// Init rate provider client
	provider := fastforex.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Provider.Timeout)

	// Init token manager
	tokenManager, err := token.NewJWTManager(cfg.Auth.SigningSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	if err != nil {
		log.Fatalf("failed to init token manager: %v", err)
	}

	// Conversion events are optional; a nil publisher disables them.
	var publisher domain.Publisher
	if cfg.Kafka.Enabled {
		kafkaPublisher := kafka.NewDefaultKafkaPublisher([]string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)})
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	conversionMetrics := metrics.NewConversionMetrics()

	// Init usecases
	conversionUsecase := usecase.NewDefaultConversionUsecase(
		conversionRepo,
		rateRepo,
		provider,
		publisher,
		cfg.Kafka.Topic,
		conversionMetrics,
	)
	ledgerUsecase := usecase.NewDefaultLedgerUsecase(categoryRepo, fixedCostRepo, expenseRepo)
	userUsecase := usecase.NewDefaultUserUsecase(userRepo, tokenManager)

	mux := httpapi.NewRouter(httpapi.RouterConfig{
		CurrencyHandler: httpapi.NewCurrencyHandler(conversionUsecase),
		TrackerHandler:  httpapi.NewTrackerHandler(ledgerUsecase),
		UserHandler:     httpapi.NewUserHandler(userUsecase),
		TokenManager:    tokenManager,
		Metrics:         conversionMetrics,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      mux,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	go func() {
		slog.Info("http server started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err.Error())
	}
	slog.Info("server stopped")
}
