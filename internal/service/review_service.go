//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go_5_flashcard_review/internal/config"
	"go_5_flashcard_review/internal/flashcard"
	"go_5_flashcard_review/internal/middleware"
	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService は復習対象の取得と学習進捗の更新を扱います。
// セッション完了時の ProfileReader / ProgressSubmitter も兼ねます。
type ReviewService interface {
	GetReviewWords(ctx context.Context, tenantID uuid.UUID) ([]*model.ReviewWordResponse, error)
	UpsertLearningProgressBasedOnReview(ctx context.Context, tenantID, wordID uuid.UUID, isCorrect bool) error
	CurrentLevel(ctx context.Context, tenantID uuid.UUID) (flashcard.LevelTag, error)
	SubmitResults(ctx context.Context, tenantID uuid.UUID, results []flashcard.Result) (flashcard.LevelTag, error)
}

type reviewService struct {
	db       *gorm.DB
	progRepo repository.ProgressRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewReviewService(db *gorm.DB, progRepo repository.ProgressRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		db:       db,
		progRepo: progRepo,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *reviewService) GetReviewWords(ctx context.Context, tenantID uuid.UUID) ([]*model.ReviewWordResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	progresses, err := s.progRepo.FindReviewableByTenant(ctx, s.db, tenantID, s.now(), s.cfg.App.ReviewLimit)
	if err != nil {
		logger.Error("Failed to find reviewable words from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load review words.", "", errors.Join(model.ErrInternalServer, err))
	}

	responses := make([]*model.ReviewWordResponse, 0, len(progresses))
	for _, p := range progresses {
		if p.Word == nil {
			logger.Warn("Found progress with nil Word during review generation, skipping", "progress_id", p.ProgressID)
			continue
		}
		responses = append(responses, &model.ReviewWordResponse{
			WordID:     p.WordID,
			Term:       p.Word.Term,
			Definition: p.Word.Definition,
			Level:      p.Level,
		})
	}

	logger.Info("Successfully retrieved review words", "count", len(responses))
	return responses, nil
}

func (s *reviewService) UpsertLearningProgressBasedOnReview(ctx context.Context, tenantID, wordID uuid.UUID, isCorrect bool) error {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "word_id", wordID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.applyResult(ctx, tx, logger, tenantID, wordID, isCorrect)
	})
}

// CurrentLevel は習得済み (Level3) の単語の割合から学習者のレベルを返します
func (s *reviewService) CurrentLevel(ctx context.Context, tenantID uuid.UUID) (flashcard.LevelTag, error) {
	return s.levelOf(ctx, s.db, tenantID)
}

// SubmitResults はセッションの回答結果を1トランザクションで保存し、保存後のレベルを返します
func (s *reviewService) SubmitResults(ctx context.Context, tenantID uuid.UUID, results []flashcard.Result) (flashcard.LevelTag, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "results", len(results))

	var level flashcard.LevelTag
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range results {
			if err := s.applyResult(ctx, tx, logger.With("word_id", r.CardID), tenantID, r.CardID, r.IsCorrect); err != nil {
				return err
			}
		}
		var err error
		level, err = s.levelOf(ctx, tx, tenantID)
		return err
	})
	if err != nil {
		logger.Error("Failed to submit review results", "error", err)
		return flashcard.LevelUnknown, err
	}

	logger.Info("Review results submitted", "level", level)
	return level, nil
}

func (s *reviewService) levelOf(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (flashcard.LevelTag, error) {
	counts, err := s.progRepo.CountByLevel(ctx, db, tenantID)
	if err != nil {
		return flashcard.LevelUnknown, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to compute learner level.", "", errors.Join(model.ErrInternalServer, err))
	}
	var mastered, total int64
	for _, c := range counts {
		total += c.Count
		if c.Level == model.Level3 {
			mastered += c.Count
		}
	}
	return flashcard.LevelForMastery(mastered, total), nil
}

// applyResult は1単語分の回答を進捗に反映します (なければ作成)
func (s *reviewService) applyResult(ctx context.Context, tx *gorm.DB, logger *slog.Logger, tenantID, wordID uuid.UUID, isCorrect bool) error {
	progress, err := s.progRepo.FindByWordID(ctx, tx, tenantID, wordID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Error finding progress in transaction", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load learning progress.", "", errors.Join(model.ErrInternalServer, err))
	}
	isFound := err == nil

	now := s.now()
	newLevel, nextReviewDate := calculateNextProgress(progress, isCorrect, now, logger)

	if !isFound {
		logger.Info("Progress not found, creating new progress.", "is_correct", isCorrect)
		newProgress := &model.LearningProgress{
			ProgressID:     uuid.New(),
			TenantID:       tenantID,
			WordID:         wordID,
			Level:          newLevel,
			NextReviewDate: nextReviewDate,
			LastReviewedAt: &now,
		}
		if createErr := s.progRepo.Create(ctx, tx, newProgress); createErr != nil {
			logger.Error("Error creating new progress", "error", createErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create learning progress.", "", errors.Join(model.ErrInternalServer, createErr))
		}
		return nil
	}

	logger.Debug("Updating existing progress.", "is_correct", isCorrect, "from_level", int(progress.Level), "to_level", int(newLevel))
	progress.Level = newLevel
	progress.NextReviewDate = nextReviewDate
	progress.LastReviewedAt = &now
	if updateErr := s.progRepo.Update(ctx, tx, progress); updateErr != nil {
		logger.Error("Error updating existing progress", "error", updateErr)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update learning progress.", "", errors.Join(model.ErrInternalServer, updateErr))
	}
	return nil
}

// calculateNextProgress は次のレベルと復習日を計算します。
// 不正解はレベル1に戻して翌日、正解は 1→2 (3日後)、2→3 (7日後)、3 は維持 (14日後)。
func calculateNextProgress(progress *model.LearningProgress, isCorrect bool, now time.Time, logger *slog.Logger) (model.ProgressLevel, time.Time) {
	if !isCorrect {
		return model.Level1, now.AddDate(0, 0, 1)
	}

	currentLevel := model.Level1
	if progress != nil {
		currentLevel = progress.Level
	}

	switch currentLevel {
	case model.Level1:
		return model.Level2, now.AddDate(0, 0, 3)
	case model.Level2:
		return model.Level3, now.AddDate(0, 0, 7)
	case model.Level3:
		return model.Level3, now.AddDate(0, 0, 14)
	default:
		logger.Warn("Invalid progress level found, resetting to Level 1", "invalid_level", int(currentLevel))
		return model.Level1, now.AddDate(0, 0, 1)
	}
}
