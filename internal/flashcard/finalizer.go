package flashcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"go_5_flashcard_review/internal/events"
)

// WarningSubmitFailed は結果の保存に失敗したときに表示する通知です
const WarningSubmitFailed = "Your results could not be saved. The score below was computed locally."

// ProfileReader は学習者の現在のレベルを返します
type ProfileReader interface {
	CurrentLevel(ctx context.Context, learnerID uuid.UUID) (LevelTag, error)
}

// ProgressSubmitter は回答結果を保存し、保存後のレベルを返します
type ProgressSubmitter interface {
	SubmitResults(ctx context.Context, learnerID uuid.UUID, results []Result) (LevelTag, error)
}

// Notifier は進捗更新の通知先です
type Notifier interface {
	Publish(ctx context.Context, e events.Event)
}

// Report は Finalize の結果です
type Report struct {
	Submitted  bool
	Warning    string
	Transition *LevelTransition
}

// Finalizer は回答結果を外部に送信し、レベル変化を検出します。
// 失敗はすべてここで吸収し、呼び出し元にはエラーを返しません。
type Finalizer struct {
	profiles ProfileReader
	progress ProgressSubmitter
	notifier Notifier
	logger   *slog.Logger
}

func NewFinalizer(profiles ProfileReader, progress ProgressSubmitter, notifier Notifier, logger *slog.Logger) *Finalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Finalizer{
		profiles: profiles,
		progress: progress,
		notifier: notifier,
		logger:   logger,
	}
}

// Finalize は送信前のレベル取得、結果送信、通知を行います。
// nil の Finalizer は何も送信しません (オフライン動作)。
func (f *Finalizer) Finalize(ctx context.Context, learnerID uuid.UUID, results []Result) Report {
	if f == nil || f.progress == nil {
		return Report{}
	}
	logger := f.logger.With("learner_id", learnerID.String(), "results", len(results))

	oldLevel := LevelUnknown
	if f.profiles != nil {
		level, err := f.readLevel(ctx, learnerID)
		if err != nil {
			logger.WarnContext(ctx, "Failed to read current level, treating as unknown", "error", err)
		} else {
			oldLevel = level
		}
	}

	newLevel, err := f.submit(ctx, learnerID, results)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to submit review results", "error", err)
		return Report{Warning: WarningSubmitFailed}
	}

	report := Report{Submitted: true}
	summary := Summarize(results)
	f.publish(ctx, events.ProgressChanged{
		LearnerID: learnerID,
		Answered:  summary.Total,
		Correct:   summary.Correct,
	})

	if transition, ok := DetectTransition(oldLevel, newLevel); ok {
		report.Transition = &transition
		logger.InfoContext(ctx, "Learner level changed", "old", transition.Old, "new", transition.New)
		f.publish(ctx, events.LevelChanged{
			LearnerID: learnerID,
			OldLevel:  string(transition.Old),
			NewLevel:  string(transition.New),
		})
	}
	return report
}

// readLevel と submit は協調先の panic をエラーに変えます。Finalize は panic を外に出しません。
func (f *Finalizer) readLevel(ctx context.Context, learnerID uuid.UUID) (level LevelTag, err error) {
	defer recoverAsError(&err)
	return f.profiles.CurrentLevel(ctx, learnerID)
}

func (f *Finalizer) submit(ctx context.Context, learnerID uuid.UUID, results []Result) (level LevelTag, err error) {
	defer recoverAsError(&err)
	return f.progress.SubmitResults(ctx, learnerID, results)
}

func (f *Finalizer) publish(ctx context.Context, e events.Event) {
	if f.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			f.logger.ErrorContext(ctx, "Notifier panicked", "topic", e.Topic(), "panic", r)
		}
	}()
	f.notifier.Publish(ctx, e)
}

func recoverAsError(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("collaborator panic: %v", r)
	}
}
