// cmd/main.go
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"go_5_flashcard_review/internal/config"
	"go_5_flashcard_review/internal/events"
	"go_5_flashcard_review/internal/flashcard"
	"go_5_flashcard_review/internal/handlers"
	"go_5_flashcard_review/internal/repository"
	"go_5_flashcard_review/internal/scheduler"
	"go_5_flashcard_review/internal/service"
	"go_5_flashcard_review/internal/storage"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// .env があれば環境変数に読み込む (なければ無視)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", slog.Any("error", err))
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}
	if err := config.LoadConfig(configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	logger := newLogger(cfg.Log.Level, tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...")

	// 1. Database (GORM)
	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()
	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Dependency Injection
	tenantRepo := repository.NewGormTenantRepository()
	wordRepo := repository.NewGormWordRepository()
	progressRepo := repository.NewGormProgressRepository()
	streakRepo := repository.NewGormStreakRepository()

	tenantService := service.NewTenantService(db, tenantRepo)
	wordService := service.NewWordService(db, wordRepo, progressRepo)
	reviewService := service.NewReviewService(db, progressRepo, cfg)
	streakService := service.NewStreakService(db, streakRepo)

	mailer, err := service.NewMailer(context.Background(), cfg)
	if err != nil {
		slog.Error("Error initializing mailer", slog.Any("error", err))
		os.Exit(1)
	}
	notifier := service.NewLevelUpNotifier(db, tenantRepo, mailer)

	// 進捗の保存とレベル変化を購読者に伝える
	bus := events.NewBus(logger)
	bus.Subscribe(events.TopicProgressChanged, streakService.HandleProgressChanged)
	bus.Subscribe(events.TopicLevelChanged, notifier.HandleLevelChanged)

	finalizer := flashcard.NewFinalizer(reviewService, reviewService, bus, logger)
	sessionService := service.NewSessionService(db, wordRepo, progressRepo, storage.NewSessionStore(), finalizer, cfg)

	jobs := scheduler.New(sessionService, cfg.App.SweepInterval, logger)
	if err := jobs.Start(); err != nil {
		slog.Error("Error starting scheduler", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Router
	r := handlers.NewRouter(cfg, logger, handlers.Handlers{
		Tenant:  handlers.NewTenantHandler(tenantService, logger),
		Word:    handlers.NewWordHandler(wordService, logger),
		Review:  handlers.NewReviewHandler(reviewService, logger),
		Session: handlers.NewSessionHandler(sessionService, logger),
		Streak:  handlers.NewStreakHandler(streakService, logger),
	}, sqlDB.PingContext)

	// 4. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second, // ファイルのアップロードを考慮
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}
	jobs.Stop()
	// 配信中のイベント (連続学習日数の更新、お祝いメール) を待つ
	bus.Wait()

	log.Println("Server exiting")
}

// newLogger は log.level と APP_ENV に応じて slog ロガーを作ります。
// APP_ENV=dev なら tint で色つき、それ以外は JSON で出力します。
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
