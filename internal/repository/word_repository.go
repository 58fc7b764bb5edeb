//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_flashcard_review/internal/middleware"
	"go_5_flashcard_review/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, wordID uuid.UUID) (*model.Word, error)
	FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordIDs []uuid.UUID) ([]*model.Word, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Word, error)
	Delete(ctx context.Context, tx *gorm.DB, tenantID, wordID uuid.UUID) error
	CheckTermExists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, term string) (bool, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate key error on create word",
				"error", result.Error,
				"tenant_id", word.TenantID.String(),
				"term", word.Term,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"tenant_id", word.TenantID.String(),
			"term", word.Term,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("tenant_id = ? AND word_id = ?", tenantID, wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

// FindByIDs は指定IDの単語をまとめて取得します。見つからないIDは結果に含まれません。
func (r *gormWordRepository) FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordIDs []uuid.UUID) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	if len(wordIDs) == 0 {
		return words, nil
	}
	result := db.WithContext(ctx).Where("tenant_id = ? AND word_id IN ?", tenantID, wordIDs).Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by IDs in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"count", len(wordIDs),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByIDs: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByTenant: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ? AND word_id = ?", tenantID, wordID).Delete(&model.Word{})
	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) CheckTermExists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, term string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).Where("tenant_id = ? AND term = ?", tenantID, term).Count(&count)
	if result.Error != nil {
		logger.Error("Error checking term existence in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"term", term,
		)
		return false, fmt.Errorf("gormWordRepository.CheckTermExists: %w", result.Error)
	}
	return count > 0, nil
}
