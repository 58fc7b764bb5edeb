package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"go_5_flashcard_review/internal/middleware"
	"go_5_flashcard_review/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリDBを作ります
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for service testing")
	require.NoError(t, repository.Migrate(db), "failed to migrate database for service testing")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testContext はログを捨てるロガー入りの context を返します
func testContext() context.Context {
	return middleware.WithLogger(context.Background(), discardLogger())
}
