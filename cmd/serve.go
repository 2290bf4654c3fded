package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/help_hualien/internal/auth"
	"github.com/shenikar/help_hualien/internal/config"
	v1 "github.com/shenikar/help_hualien/internal/handler/http/v1"
	"github.com/shenikar/help_hualien/internal/repository"
	"github.com/shenikar/help_hualien/internal/service"
	"github.com/shenikar/help_hualien/pkg/logger"
	"github.com/shenikar/help_hualien/pkg/postgres"
	redisclient "github.com/shenikar/help_hualien/pkg/redis"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	if err := migrateUp(cfg, log); err != nil {
		log.WithError(err).Error("Failed to run database migrations")
		return err
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("Failed to connect to PostgreSQL")
		return err
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("Failed to connect to Redis")
		return err
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Проверка токенов
	verifier, err := auth.NewVerifier(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Error("Failed to initialize token verifier")
		return err
	}

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool, redisClient, cfg.ProfileCacheTTL)
	reportRepo := repository.NewReportRepository(dbpool)
	onGoingRepo := repository.NewOnGoingRepository(dbpool)

	// Инициализация сервисов
	userService := service.NewUserService(userRepo, log)
	reportService := service.NewReportService(reportRepo, onGoingRepo, userService, log)
	onGoingService := service.NewOnGoingService(onGoingRepo, reportRepo, userService, log)

	// Инициализация хэндлеров и роутера
	handler := v1.NewHandler(reportService, onGoingService, userService, verifier, log)
	router := v1.NewRouter(handler, cfg)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	select {
	case err := <-serveErr:
		if err != nil {
			log.WithError(err).Error("HTTP server failed")
			return err
		}
	case <-ctx.Done():
		log.Info("Received shutdown signal, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return err
	}

	log.Info("Server gracefully stopped")
	return nil
}
