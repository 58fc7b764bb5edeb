// Command seed は学習者を1人作成し、単語ファイル (.xlsx / .csv) を取り込みます。
//
//	go run ./cmd/seed -name Alice -email alice@example.com -file words.xlsx
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"go_5_flashcard_review/internal/config"
	"go_5_flashcard_review/internal/importer"
	"go_5_flashcard_review/internal/middleware"
	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/repository"
	"go_5_flashcard_review/internal/service"
)

func main() {
	name := flag.String("name", "Demo Learner", "learner name")
	email := flag.String("email", "demo@example.com", "learner email")
	file := flag.String("file", "", "word list to import (.xlsx or .csv)")
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo, TimeFormat: time.Kitchen}))
	slog.SetDefault(logger)

	if err := run(*configPath, *name, *email, *file, logger); err != nil {
		logger.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(configPath, name, email, file string, logger *slog.Logger) error {
	if err := config.LoadConfig(configPath); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := &config.Cfg

	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := repository.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	ctx := middleware.WithLogger(context.Background(), logger)
	tenantRepo := repository.NewGormTenantRepository()
	tenantService := service.NewTenantService(db, tenantRepo)
	wordService := service.NewWordService(db, repository.NewGormWordRepository(), repository.NewGormProgressRepository())

	tenant, err := tenantService.CreateTenant(ctx, &model.CreateTenantRequest{Name: name, Email: email})
	if errors.Is(err, model.ErrConflict) {
		// 同じメールアドレスの学習者がいればそのまま使う
		tenant, err = tenantRepo.FindByEmail(ctx, db, strings.ToLower(strings.TrimSpace(email)))
	}
	if err != nil {
		return fmt.Errorf("create learner: %w", err)
	}
	logger.Info("Learner ready", slog.String("tenant_id", tenant.TenantID.String()), slog.String("email", tenant.Email))

	if file == "" {
		logger.Info("No word file given, skipping import")
		return nil
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()

	rows, err := importer.Read(f, file)
	if err != nil {
		return fmt.Errorf("read word file: %w", err)
	}

	result, err := wordService.ImportWords(ctx, tenant.TenantID, rows)
	if err != nil {
		return fmt.Errorf("import words: %w", err)
	}
	logger.Info("Words imported",
		slog.Int("processed", result.TotalProcessed),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
	)
	for _, msg := range result.Errors {
		logger.Warn("Row skipped", slog.String("detail", msg))
	}
	return nil
}
