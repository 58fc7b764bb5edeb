//go:generate mockery --name StreakService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_flashcard_review/internal/events"
	"go_5_flashcard_review/internal/middleware"
	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// XPPerSession は完了したセッション1回あたりの経験値です
const XPPerSession = 10

// StreakService は連続学習日数と経験値を管理します。progress.changed を購読して更新されます。
type StreakService interface {
	GetStreak(ctx context.Context, tenantID uuid.UUID) (*model.Streak, error)
	HandleProgressChanged(ctx context.Context, e events.Event) error
}

type streakService struct {
	db         *gorm.DB
	streakRepo repository.StreakRepository
	now        func() time.Time
}

func NewStreakService(db *gorm.DB, streakRepo repository.StreakRepository) StreakService {
	return &streakService{
		db:         db,
		streakRepo: streakRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *streakService) GetStreak(ctx context.Context, tenantID uuid.UUID) (*model.Streak, error) {
	streak, err := s.streakRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// まだ一度も学習していない
			return &model.Streak{TenantID: tenantID}, nil
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the streak.", "", errors.Join(model.ErrInternalServer, err))
	}
	return streak, nil
}

func (s *streakService) HandleProgressChanged(ctx context.Context, e events.Event) error {
	pc, ok := e.(events.ProgressChanged)
	if !ok {
		return fmt.Errorf("streakService: unexpected event %T", e)
	}
	logger := middleware.GetLogger(ctx).With("tenant_id", pc.LearnerID)
	today := truncateToDay(s.now())

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 同じ学習者のセッションが同時に終わっても XP を取りこぼさないよう行ロックを取る
		streak, err := s.streakRepo.FindByTenantForUpdate(ctx, tx, pc.LearnerID)
		if err != nil {
			return err
		}

		advanceStreak(streak, today)
		streak.XP += XPPerSession
		if err := s.streakRepo.Upsert(ctx, tx, streak); err != nil {
			return err
		}

		logger.Info("Streak updated", "current_streak", streak.CurrentStreak, "xp", streak.XP)
		return nil
	})
}

// advanceStreak は同じ日なら据え置き、翌日なら +1、それ以外は 1 に戻します
func advanceStreak(streak *model.Streak, today time.Time) {
	last := truncateToDay(streak.LastActiveDate)
	switch {
	case streak.CurrentStreak > 0 && last.Equal(today):
	case streak.CurrentStreak > 0 && last.AddDate(0, 0, 1).Equal(today):
		streak.CurrentStreak++
	default:
		streak.CurrentStreak = 1
	}
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastActiveDate = today
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
