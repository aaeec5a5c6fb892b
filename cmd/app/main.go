package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/bagdasarian/timetrack/internal/auth"
	"github.com/bagdasarian/timetrack/internal/config"
	"github.com/bagdasarian/timetrack/internal/db"
	"github.com/bagdasarian/timetrack/internal/domain"
	"github.com/bagdasarian/timetrack/internal/events"
	"github.com/bagdasarian/timetrack/internal/handler"
	"github.com/bagdasarian/timetrack/internal/handler/server"
	"github.com/bagdasarian/timetrack/internal/repository/postgres"
	"github.com/bagdasarian/timetrack/internal/service"
)

func main() {
	configPath := pflag.String("config", "", "path to YAML config (defaults to $CONFIG_PATH or ./config.yaml)")
	skipMigrations := pflag.Bool("skip-migrations", false, "do not apply database migrations on startup")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database := db.MustLoad(ctx, cfg.Database)
	defer database.Close()
	logger.Info("connected to database", slog.String("host", cfg.Database.Host), slog.String("name", cfg.Database.DBName))

	if !*skipMigrations {
		if err := db.Migrate(ctx, database, logger); err != nil {
			logger.Error("migrations failed", slog.Any("error", err))
			os.Exit(1)
		}
	}

	publisher, closePublisher := newPublisher(cfg.Kafka, logger)
	defer closePublisher()

	txManager := postgres.NewTxManager(database)
	userRepo := postgres.NewUserRepository(database)
	activityRepo := postgres.NewActivityRepository(database)
	workspaceActivityRepo := postgres.NewWorkspaceActivityRepository(database)
	workspaceRepo := postgres.NewWorkspaceRepository(database)
	memberRepo := postgres.NewMemberRepository(database)

	tokens := auth.NewTokenIssuer(cfg.Auth)
	access := service.NewWorkspaceAccess(memberRepo)

	workspaceService := service.NewWorkspaceService(txManager, workspaceRepo, memberRepo, userRepo, access)
	accountService := service.NewAccountService(txManager, userRepo, workspaceService, tokens, cfg.Auth.BcryptCost)
	activityService := service.NewActivityService(
		txManager,
		activityRepo,
		workspaceActivityRepo,
		userRepo,
		access,
		publisher,
		logger,
	)
	categoryService := service.NewCategoryService(
		service.NewCategoryRegistry(postgres.NewUserCategoryRepository(database), domain.DefaultCategories),
		service.NewCategoryRegistry(postgres.NewWorkspaceCategoryRepository(database), domain.DefaultCategories),
		userRepo,
		access,
	)

	h := handler.NewHandler(accountService, activityService, categoryService, workspaceService, logger)
	srv := server.NewServer(h, tokens, cfg.Server, logger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("error", err))
	}
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func newPublisher(cfg config.KafkaConfig, logger *slog.Logger) (events.Publisher, func()) {
	brokers := cfg.BrokerList()
	if len(brokers) == 0 {
		logger.Info("kafka brokers not configured, activity events disabled")
		return events.NopPublisher{}, func() {}
	}

	publisher := events.NewKafkaPublisher(brokers, cfg.Topic)
	logger.Info("publishing activity events", slog.String("topic", cfg.Topic), slog.Any("brokers", brokers))
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("kafka writer close failed", slog.Any("error", err))
		}
	}
}
