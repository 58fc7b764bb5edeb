package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"go_5_flashcard_review/internal/config"
	"go_5_flashcard_review/internal/events"
	"go_5_flashcard_review/internal/flashcard"
	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/repository"
	"go_5_flashcard_review/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sessionFixture struct {
	db      *gorm.DB
	svc     SessionService
	streaks StreakService
	store   *storage.SessionStore
	bus     *events.Bus

	mu     sync.Mutex
	levels []events.LevelChanged
}

func (f *sessionFixture) levelEvents() []events.LevelChanged {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]events.LevelChanged(nil), f.levels...)
}

// newSessionFixture はSQLite上で本物のリポジトリとイベントバスを組み立てます
func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	db := setupTestDB(t)
	cfg := &config.Config{App: config.AppConfig{ReviewLimit: 20, SessionTTL: 30 * time.Minute}}

	wordRepo := repository.NewGormWordRepository()
	progRepo := repository.NewGormProgressRepository()
	reviewService := NewReviewService(db, progRepo, cfg)
	streakService := NewStreakService(db, repository.NewGormStreakRepository())

	f := &sessionFixture{db: db, streaks: streakService, store: storage.NewSessionStore()}

	bus := events.NewBus(discardLogger())
	f.bus = bus
	t.Cleanup(bus.Wait)
	bus.Subscribe(events.TopicProgressChanged, streakService.HandleProgressChanged)
	bus.Subscribe(events.TopicLevelChanged, func(ctx context.Context, e events.Event) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.levels = append(f.levels, e.(events.LevelChanged))
		return nil
	})

	finalizer := flashcard.NewFinalizer(reviewService, reviewService, bus, discardLogger())
	f.svc = NewSessionService(db, wordRepo, progRepo, f.store, finalizer, cfg)
	return f
}

func Test_sessionService_FullSession(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	tenantID := uuid.New()
	seedWords(t, f.db, tenantID, time.Now().UTC().Add(-time.Hour), model.Level2, model.Level2)

	st, err := f.svc.Start(ctx, tenantID, nil)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, flashcard.PhaseInProgress, st.Phase)
	assert.Equal(t, 2, st.Total)
	require.NotNil(t, st.Card)
	sessionID := st.SessionID

	st, err = f.svc.Flip(ctx, tenantID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, flashcard.SideBack, st.Side)

	st, err = f.svc.Answer(ctx, tenantID, sessionID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Index)
	assert.Equal(t, flashcard.SideFront, st.Side, "next card starts on the front")

	st, err = f.svc.PressKey(ctx, tenantID, sessionID, flashcard.KeyRight)
	require.NoError(t, err)
	assert.Equal(t, flashcard.PhaseFinished, st.Phase)
	require.NotNil(t, st.Summary)
	assert.Equal(t, flashcard.Summary{Total: 2, Correct: 2, NeedReview: 0, Percentage: 100}, *st.Summary)
	assert.Empty(t, st.Warning)

	// 2語とも Level3 になり Low -> Great
	require.NotNil(t, st.LevelTransition)
	assert.Equal(t, flashcard.LevelTransition{Old: flashcard.LevelLow, New: flashcard.LevelGreat}, *st.LevelTransition)

	// 購読者はセッションの完了後に非同期で動く
	f.bus.Wait()
	require.Len(t, f.levelEvents(), 1)
	assert.Equal(t, "Great", f.levelEvents()[0].NewLevel)

	streak, err := f.streaks.GetStreak(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, XPPerSession, streak.XP)

	// 完了後の回答は無視される
	st, err = f.svc.Answer(ctx, tenantID, sessionID, false)
	require.NoError(t, err)
	assert.Equal(t, 2, st.ResultsCount)
}

func Test_sessionService_Start(t *testing.T) {
	ctx := testContext()

	t.Run("正常系: 復習対象がなければセッションを作らない", func(t *testing.T) {
		f := newSessionFixture(t)
		tenantID := uuid.New()
		seedWords(t, f.db, tenantID, time.Now().UTC().AddDate(0, 0, 5), model.Level1)

		st, err := f.svc.Start(ctx, tenantID, nil)
		require.NoError(t, err)
		assert.Nil(t, st)
		assert.Zero(t, f.store.Len())
	})

	t.Run("正常系: 指定した単語でデッキを作る (期限前でも可)", func(t *testing.T) {
		f := newSessionFixture(t)
		tenantID := uuid.New()
		ids := seedWords(t, f.db, tenantID, time.Now().UTC().AddDate(0, 0, 5), model.Level1, model.Level1, model.Level1)

		st, err := f.svc.Start(ctx, tenantID, &model.StartSessionRequest{WordIDs: ids[:2]})
		require.NoError(t, err)
		require.NotNil(t, st)
		assert.Equal(t, 2, st.Total)
	})

	t.Run("異常系: 他の学習者の単語は指定できない", func(t *testing.T) {
		f := newSessionFixture(t)
		ids := seedWords(t, f.db, uuid.New(), time.Now().UTC(), model.Level1)

		st, err := f.svc.Start(ctx, uuid.New(), &model.StartSessionRequest{WordIDs: ids})
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, st)
	})
}

func Test_sessionService_Ownership(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	tenantID := uuid.New()
	seedWords(t, f.db, tenantID, time.Now().UTC(), model.Level1)

	st, err := f.svc.Start(ctx, tenantID, nil)
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, uuid.New(), st.SessionID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = f.svc.Get(ctx, tenantID, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.ErrorIs(t, f.svc.Close(ctx, uuid.New(), st.SessionID), model.ErrNotFound)
}

func Test_sessionService_RestartAndClose(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	tenantID := uuid.New()
	seedWords(t, f.db, tenantID, time.Now().UTC(), model.Level1, model.Level1)

	st, err := f.svc.Start(ctx, tenantID, nil)
	require.NoError(t, err)
	sessionID := st.SessionID

	st, err = f.svc.ToggleDirection(ctx, tenantID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, flashcard.DirectionMeaningFirst, st.Direction)

	_, err = f.svc.Answer(ctx, tenantID, sessionID, false)
	require.NoError(t, err)

	st, err = f.svc.Restart(ctx, tenantID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, flashcard.PhaseInProgress, st.Phase)
	assert.Zero(t, st.Index)
	assert.Zero(t, st.ResultsCount)

	st, err = f.svc.Click(ctx, tenantID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, flashcard.SideBack, st.Side)

	require.NoError(t, f.svc.Close(ctx, tenantID, sessionID))
	_, err = f.svc.Get(ctx, tenantID, sessionID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func Test_sessionService_SweepExpired(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	tenantID := uuid.New()
	seedWords(t, f.db, tenantID, time.Now().UTC(), model.Level1)

	_, err := f.svc.Start(ctx, tenantID, nil)
	require.NoError(t, err)
	require.Equal(t, 1, f.store.Len())

	assert.Zero(t, f.svc.SweepExpired(ctx), "fresh sessions are kept")

	f.svc.(*sessionService).now = func() time.Time { return time.Now().Add(time.Hour) }
	assert.Equal(t, 1, f.svc.SweepExpired(ctx))
	assert.Zero(t, f.store.Len())
}

func Test_sessionService_ForeignAccessDoesNotExtendSession(t *testing.T) {
	ctx := testContext()
	ttl := 30 * time.Minute
	tenantID := uuid.New()

	tests := []struct {
		name        string
		accessBy    func() uuid.UUID
		wantExpired int
	}{
		{"正常系: 本人のアクセスは期限を延長する", func() uuid.UUID { return tenantID }, 0},
		{"異常系: 他の学習者のアクセスは期限を延長しない", func() uuid.UUID { return uuid.New() }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			seedWords(t, f.db, tenantID, time.Now().UTC(), model.Level1)

			st, err := f.svc.Start(ctx, tenantID, nil)
			require.NoError(t, err)
			started := time.Now()

			time.Sleep(200 * time.Millisecond)
			_, _ = f.svc.Get(ctx, tt.accessBy(), st.SessionID)

			// 開始時刻から見ると期限切れ、アクセス時刻から見るとまだ有効な時点
			f.svc.(*sessionService).now = func() time.Time { return started.Add(ttl).Add(100 * time.Millisecond) }
			assert.Equal(t, tt.wantExpired, f.svc.SweepExpired(ctx))
		})
	}
}
