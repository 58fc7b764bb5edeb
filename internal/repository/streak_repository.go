//go:generate mockery --name StreakRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_flashcard_review/internal/middleware"
	"go_5_flashcard_review/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakRepository interface {
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Streak, error)
	// FindByTenantForUpdate は行がなければ作成し、トランザクション終了まで行ロックを取って返します
	FindByTenantForUpdate(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Streak, error)
	Upsert(ctx context.Context, db *gorm.DB, streak *model.Streak) error
}

type gormStreakRepository struct{}

func NewGormStreakRepository() StreakRepository {
	return &gormStreakRepository{}
}

func (r *gormStreakRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Streak, error) {
	var streak model.Streak
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&streak)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding streak in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormStreakRepository.FindByTenant: %w", result.Error)
	}
	return &streak, nil
}

func (r *gormStreakRepository) FindByTenantForUpdate(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Streak, error) {
	logger := middleware.GetLogger(ctx)

	// 初回の同時更新でも同じ行を奪い合うように、ロック前に行を用意する
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}},
		DoNothing: true,
	}).Create(&model.Streak{TenantID: tenantID})
	if result.Error != nil {
		logger.Error("Error creating streak row in DB", "error", result.Error, "tenant_id", tenantID.String())
		return nil, fmt.Errorf("gormStreakRepository.FindByTenantForUpdate: %w", result.Error)
	}

	var streak model.Streak
	result = db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ?", tenantID).
		First(&streak)
	if result.Error != nil {
		logger.Error("Error locking streak in DB", "error", result.Error, "tenant_id", tenantID.String())
		return nil, fmt.Errorf("gormStreakRepository.FindByTenantForUpdate: %w", result.Error)
	}
	return &streak, nil
}

func (r *gormStreakRepository) Upsert(ctx context.Context, db *gorm.DB, streak *model.Streak) error {
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_streak", "longest_streak", "xp", "last_active_date", "updated_at"}),
	}).Create(streak)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error upserting streak in DB",
			"error", result.Error,
			"tenant_id", streak.TenantID.String(),
		)
		return fmt.Errorf("gormStreakRepository.Upsert: %w", result.Error)
	}
	return nil
}
