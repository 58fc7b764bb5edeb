//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/progress_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_flashcard_review/internal/middleware"
	"go_5_flashcard_review/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error // トランザクション対応
	FindByWordID(ctx context.Context, db *gorm.DB, tenantID, wordID uuid.UUID) (*model.LearningProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error // トランザクション対応
	FindReviewableByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, today time.Time, limit int) ([]*model.LearningProgress, error)
	CountByLevel(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]model.LevelCount, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error {
	logger := middleware.GetLogger(ctx)
	// UUIDはService層で設定済み
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating learning progress in DB",
			"error", result.Error,
			"tenant_id", progress.TenantID.String(),
			"word_id", progress.WordID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindByWordID(ctx context.Context, db *gorm.DB, tenantID, wordID uuid.UUID) (*model.LearningProgress, error) {
	var progress model.LearningProgress
	result := db.WithContext(ctx).Preload("Word").Where("tenant_id = ? AND word_id = ?", tenantID, wordID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgressRepository.FindByWordID: %w", result.Error)
	}
	// 単語が論理削除されていれば進捗も無効とみなす
	if progress.Word == nil {
		return nil, model.ErrNotFound
	}
	return &progress, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error {
	result := tx.WithContext(ctx).Omit("Word").Save(progress)
	if result.Error != nil {
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	return nil
}

// FindReviewableByTenant は今日までに復習期限が来た進捗を Word 付きで返します
func (r *gormProgressRepository) FindReviewableByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, today time.Time, limit int) ([]*model.LearningProgress, error) {
	var progresses []*model.LearningProgress
	tomorrow := today.UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)

	// Wordが存在しかつ削除されていないもののみJOIN
	result := db.WithContext(ctx).
		Preload("Word").
		Joins("JOIN words ON words.word_id = learning_progress.word_id AND words.deleted_at IS NULL").
		Where("learning_progress.tenant_id = ? AND learning_progress.next_review_date < ?", tenantID, tomorrow).
		Order("learning_progress.next_review_date ASC, learning_progress.level ASC").
		Limit(limit).
		Find(&progresses)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgressRepository.FindReviewableByTenant: %w", result.Error)
	}
	return progresses, nil
}

// CountByLevel は削除されていない単語の進捗をレベルごとに数えます
func (r *gormProgressRepository) CountByLevel(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]model.LevelCount, error) {
	var counts []model.LevelCount
	result := db.WithContext(ctx).
		Model(&model.LearningProgress{}).
		Select("learning_progress.level AS level, COUNT(*) AS count").
		Joins("JOIN words ON words.word_id = learning_progress.word_id AND words.deleted_at IS NULL").
		Where("learning_progress.tenant_id = ?", tenantID).
		Group("learning_progress.level").
		Scan(&counts)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgressRepository.CountByLevel: %w", result.Error)
	}
	return counts, nil
}
