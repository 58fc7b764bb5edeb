// Package scheduler は定期実行するバックグラウンドジョブを管理します。
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"go_5_flashcard_review/internal/middleware"
)

// Sweeper は放置されたセッションを片付けます
type Sweeper interface {
	SweepExpired(ctx context.Context) int
}

// Scheduler は gocron のラッパーです
type Scheduler struct {
	scheduler *gocron.Scheduler
	sweeper   Sweeper
	interval  time.Duration
	logger    *slog.Logger
}

func New(sweeper Sweeper, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		sweeper:   sweeper,
		interval:  interval,
		logger:    logger,
	}
}

// Start はジョブを登録して非同期で実行を開始します
func (s *Scheduler) Start() error {
	// 前回の掃除が終わっていなければ次の回はスキップする
	if _, err := s.scheduler.Every(s.interval).SingletonMode().Do(s.sweepSessions); err != nil {
		return fmt.Errorf("scheduler: register session sweep: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started", "sweep_interval", s.interval.String())
	return nil
}

// Stop は実行中のジョブの終了を待って停止します
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) sweepSessions() {
	ctx := middleware.WithLogger(context.Background(), s.logger.With("job", "session_sweep"))
	if n := s.sweeper.SweepExpired(ctx); n > 0 {
		s.logger.Debug("Session sweep finished", "removed", n)
	}
}
