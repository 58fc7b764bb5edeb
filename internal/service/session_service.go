//go:generate mockery --name SessionService --output ./mocks --outpkg mocks --case=underscore
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
	"go_5_flashcard_review/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService はフラッシュカードの復習セッションを管理します。
// 操作が受け付けられない状態 (完了後など) でもエラーにはせず、その時点の状態を返します。
type SessionService interface {
	// Start はデッキを組み立ててセッションを開始します。デッキが空なら (nil, nil) を返します。
	Start(ctx context.Context, tenantID uuid.UUID, req *model.StartSessionRequest) (*flashcard.State, error)
	Get(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error)
	Flip(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error)
	Click(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error)
	ToggleDirection(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error)
	Answer(ctx context.Context, tenantID, sessionID uuid.UUID, isCorrect bool) (*flashcard.State, error)
	PressKey(ctx context.Context, tenantID, sessionID uuid.UUID, key flashcard.Key) (*flashcard.State, error)
	Restart(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error)
	Close(ctx context.Context, tenantID, sessionID uuid.UUID) error
	// SweepExpired は一定時間操作のないセッションを閉じて破棄し、その件数を返します
	SweepExpired(ctx context.Context) int
}

type sessionService struct {
	db        *gorm.DB
	wordRepo  repository.WordRepository
	progRepo  repository.ProgressRepository
	store     *storage.SessionStore
	finalizer *flashcard.Finalizer
	cfg       *config.Config
	now       func() time.Time
}

func NewSessionService(
	db *gorm.DB,
	wordRepo repository.WordRepository,
	progRepo repository.ProgressRepository,
	store *storage.SessionStore,
	finalizer *flashcard.Finalizer,
	cfg *config.Config,
) SessionService {
	return &sessionService{
		db:        db,
		wordRepo:  wordRepo,
		progRepo:  progRepo,
		store:     store,
		finalizer: finalizer,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *sessionService) Start(ctx context.Context, tenantID uuid.UUID, req *model.StartSessionRequest) (*flashcard.State, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	var deck []flashcard.Card
	var err error
	if req != nil && len(req.WordIDs) > 0 {
		deck, err = s.deckFromWords(ctx, tenantID, req.WordIDs)
	} else {
		deck, err = s.deckFromDueWords(ctx, logger, tenantID)
	}
	if err != nil {
		return nil, err
	}
	if len(deck) == 0 {
		logger.Info("No cards to review, session not started")
		return nil, nil
	}

	session := flashcard.Open(deck, flashcard.Options{
		LearnerID: tenantID,
		Finalizer: s.finalizer,
	})
	s.store.Save(session)

	logger.Info("Review session started", "session_id", session.ID, "cards", len(deck))
	st := session.Snapshot()
	return &st, nil
}

func (s *sessionService) deckFromWords(ctx context.Context, tenantID uuid.UUID, wordIDs []uuid.UUID) ([]flashcard.Card, error) {
	words, err := s.wordRepo.FindByIDs(ctx, s.db, tenantID, wordIDs)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load words for the session.", "", errors.Join(model.ErrInternalServer, err))
	}
	if len(words) != len(wordIDs) {
		return nil, model.NewAppError("WORD_NOT_FOUND", "Some of the requested words do not exist.", "word_ids", model.ErrNotFound)
	}

	// リクエストの並び順でデッキを作る (シャッフルはセッション側で行う)
	byID := make(map[uuid.UUID]*model.Word, len(words))
	for _, w := range words {
		byID[w.WordID] = w
	}
	deck := make([]flashcard.Card, 0, len(wordIDs))
	for _, id := range wordIDs {
		deck = append(deck, toCard(byID[id]))
	}
	return deck, nil
}

func (s *sessionService) deckFromDueWords(ctx context.Context, logger *slog.Logger, tenantID uuid.UUID) ([]flashcard.Card, error) {
	progresses, err := s.progRepo.FindReviewableByTenant(ctx, s.db, tenantID, s.now(), s.cfg.App.ReviewLimit)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load review words.", "", errors.Join(model.ErrInternalServer, err))
	}
	deck := make([]flashcard.Card, 0, len(progresses))
	for _, p := range progresses {
		if p.Word == nil {
			logger.Warn("Found progress with nil Word while building deck, skipping", "progress_id", p.ProgressID)
			continue
		}
		deck = append(deck, toCard(p.Word))
	}
	return deck, nil
}

func toCard(w *model.Word) flashcard.Card {
	return flashcard.Card{
		ID:           w.WordID,
		Term:         w.Term,
		Meaning:      w.Definition,
		Phonetic:     w.Phonetic,
		PartOfSpeech: w.PartOfSpeech,
		Example:      w.Example,
	}
}

// lookup は学習者本人のセッションだけを返します
func (s *sessionService) lookup(tenantID, sessionID uuid.UUID) (*flashcard.Session, error) {
	session, ok := s.store.Peek(sessionID)
	if !ok || session.LearnerID != tenantID {
		return nil, model.NewAppError("SESSION_NOT_FOUND", "Review session not found.", "session_id", model.ErrNotFound)
	}
	// 本人のアクセスだけが期限を延長する
	s.store.Touch(sessionID)
	return session, nil
}

func (s *sessionService) apply(tenantID, sessionID uuid.UUID, op func(*flashcard.Session)) (*flashcard.State, error) {
	session, err := s.lookup(tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	op(session)
	st := session.Snapshot()
	return &st, nil
}

func (s *sessionService) Get(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error) {
	return s.apply(tenantID, sessionID, func(*flashcard.Session) {})
}

func (s *sessionService) Flip(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error) {
	return s.apply(tenantID, sessionID, func(session *flashcard.Session) { session.Flip() })
}

func (s *sessionService) Click(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error) {
	return s.apply(tenantID, sessionID, func(session *flashcard.Session) { session.Click() })
}

func (s *sessionService) ToggleDirection(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error) {
	return s.apply(tenantID, sessionID, func(session *flashcard.Session) { session.ToggleDirection() })
}

// Answer は回答を記録します。最後のカードならこの呼び出しの中で結果送信まで行います。
// 送信はクライアントの切断で中断しません。
func (s *sessionService) Answer(ctx context.Context, tenantID, sessionID uuid.UUID, isCorrect bool) (*flashcard.State, error) {
	submitCtx := context.WithoutCancel(ctx)
	return s.apply(tenantID, sessionID, func(session *flashcard.Session) {
		if !session.RecordAnswer(submitCtx, isCorrect) {
			middleware.GetLogger(ctx).Debug("Answer ignored", "session_id", sessionID, "phase", session.Phase())
		}
	})
}

func (s *sessionService) PressKey(ctx context.Context, tenantID, sessionID uuid.UUID, key flashcard.Key) (*flashcard.State, error) {
	submitCtx := context.WithoutCancel(ctx)
	return s.apply(tenantID, sessionID, func(session *flashcard.Session) { session.HandleKey(submitCtx, key) })
}

func (s *sessionService) Restart(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error) {
	return s.apply(tenantID, sessionID, func(session *flashcard.Session) {
		if session.Restart() {
			middleware.GetLogger(ctx).Info("Review session restarted", "session_id", sessionID)
		}
	})
}

func (s *sessionService) Close(ctx context.Context, tenantID, sessionID uuid.UUID) error {
	session, err := s.lookup(tenantID, sessionID)
	if err != nil {
		return err
	}
	session.Close()
	s.store.Delete(sessionID)
	middleware.GetLogger(ctx).Info("Review session closed", "session_id", sessionID, "phase", session.Phase())
	return nil
}

func (s *sessionService) SweepExpired(ctx context.Context) int {
	expired := s.store.Expired(s.now(), s.cfg.App.SessionTTL)
	for _, id := range expired {
		if session, ok := s.store.Delete(id); ok {
			session.Close()
		}
	}
	if len(expired) > 0 {
		middleware.GetLogger(ctx).Info("Expired review sessions swept", "count", len(expired))
	}
	return len(expired)
}
