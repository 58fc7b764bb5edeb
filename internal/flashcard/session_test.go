package flashcard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_5_flashcard_review/internal/events"
)

type fakeProfiles struct {
	level LevelTag
	err   error
}

func (f *fakeProfiles) CurrentLevel(ctx context.Context, learnerID uuid.UUID) (LevelTag, error) {
	return f.level, f.err
}

type fakeSubmitter struct {
	level   LevelTag
	err     error
	calls   atomic.Int32
	results []Result
	// block が nil でなければ、SubmitResults は release されるまで待ちます
	block   chan struct{}
	release chan struct{}
}

func (f *fakeSubmitter) SubmitResults(ctx context.Context, learnerID uuid.UUID, results []Result) (LevelTag, error) {
	f.calls.Add(1)
	f.results = results
	if f.block != nil {
		close(f.block)
		<-f.release
	}
	return f.level, f.err
}

type panickingProfiles struct{}

func (panickingProfiles) CurrentLevel(ctx context.Context, learnerID uuid.UUID) (LevelTag, error) {
	panic("profile store unavailable")
}

type panickingSubmitter struct{}

func (panickingSubmitter) SubmitResults(ctx context.Context, learnerID uuid.UUID, results []Result) (LevelTag, error) {
	panic("progress store unavailable")
}

type panickingNotifier struct{}

func (panickingNotifier) Publish(ctx context.Context, e events.Event) {
	panic("bus closed")
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []events.Event
}

func (n *recordingNotifier) Publish(ctx context.Context, e events.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openSession(deck []Card, fin *Finalizer) *Session {
	return Open(deck, Options{LearnerID: uuid.New(), Finalizer: fin, Rand: rand.New(rand.NewSource(1))})
}

func TestSession_Scenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 3枚のデッキを最後まで回答する", func(t *testing.T) {
		deck := makeDeck(3)
		submitter := &fakeSubmitter{level: LevelMid}
		notifier := &recordingNotifier{}
		fin := NewFinalizer(&fakeProfiles{level: LevelMid}, submitter, notifier, discardLogger())
		s := openSession(deck, fin)
		queue := s.Queue()

		st := s.Snapshot()
		assert.Equal(t, PhaseInProgress, st.Phase)
		assert.Equal(t, 0, st.Index)
		assert.Equal(t, SideFront, st.Side)
		assert.ElementsMatch(t, cardIDs(deck), cardIDs(queue))

		require.True(t, s.Flip())
		assert.Equal(t, SideBack, s.Snapshot().Side)

		require.True(t, s.RecordAnswer(ctx, true))
		st = s.Snapshot()
		assert.Equal(t, 1, st.Index)
		assert.Equal(t, SideFront, st.Side)
		assert.Equal(t, []Result{{CardID: queue[0].ID, IsCorrect: true}}, s.Results())

		require.True(t, s.RecordAnswer(ctx, false))
		require.True(t, s.RecordAnswer(ctx, true))

		st = s.Snapshot()
		assert.Equal(t, PhaseFinished, st.Phase)
		assert.Equal(t, 3, st.ResultsCount)
		require.NotNil(t, st.Summary)
		assert.Equal(t, 67, st.Summary.Percentage)
		assert.Nil(t, st.Card)
		assert.Nil(t, st.LevelTransition, "レベルが同じなら変化なし")
		assert.Empty(t, st.Warning)

		assert.Equal(t, int32(1), submitter.calls.Load())
		assert.Equal(t, s.Results(), submitter.results)
		require.Len(t, notifier.events, 1)
		assert.Equal(t, events.TopicProgressChanged, notifier.events[0].Topic())
	})

	t.Run("正常系: 空のデッキは何もしない", func(t *testing.T) {
		s := openSession(nil, nil)

		assert.Equal(t, PhaseIdle, s.Phase())
		assert.Empty(t, s.Queue())
		_, ok := s.Current()
		assert.False(t, ok)
		assert.False(t, s.Flip())
		assert.False(t, s.RecordAnswer(ctx, true))
		assert.False(t, s.HandleKey(ctx, KeyRight))
		assert.Equal(t, PhaseIdle, s.Phase())
	})

	t.Run("正常系: 1枚のデッキは1回の回答で完了する", func(t *testing.T) {
		s := openSession(makeDeck(1), nil)

		require.True(t, s.RecordAnswer(ctx, false))

		st := s.Snapshot()
		assert.Equal(t, PhaseFinished, st.Phase)
		assert.Equal(t, &Summary{Total: 1, Correct: 0, NeedReview: 1, Percentage: 0}, st.Summary)
	})

	t.Run("異常系: 送信失敗でも完了し警告が残る", func(t *testing.T) {
		submitter := &fakeSubmitter{err: errors.New("network down")}
		notifier := &recordingNotifier{}
		fin := NewFinalizer(&fakeProfiles{level: LevelLow}, submitter, notifier, discardLogger())
		s := openSession(makeDeck(2), fin)

		s.RecordAnswer(ctx, true)
		s.RecordAnswer(ctx, false)

		st := s.Snapshot()
		assert.Equal(t, PhaseFinished, st.Phase)
		assert.Equal(t, 50, st.Summary.Percentage)
		assert.Equal(t, WarningSubmitFailed, st.Warning)
		assert.Nil(t, st.LevelTransition)
		assert.Empty(t, notifier.events, "失敗時は通知しない")
	})

	t.Run("正常系: レベルが上がると変化が記録される", func(t *testing.T) {
		notifier := &recordingNotifier{}
		fin := NewFinalizer(&fakeProfiles{level: LevelMid}, &fakeSubmitter{level: LevelHigh}, notifier, discardLogger())
		s := openSession(makeDeck(1), fin)

		s.RecordAnswer(ctx, true)

		st := s.Snapshot()
		assert.Equal(t, &LevelTransition{Old: LevelMid, New: LevelHigh}, st.LevelTransition)
		require.Len(t, notifier.events, 2)
		lc, ok := notifier.events[1].(events.LevelChanged)
		require.True(t, ok)
		assert.Equal(t, "Mid", lc.OldLevel)
		assert.Equal(t, "High", lc.NewLevel)
	})

	t.Run("正常系: 旧レベルの取得失敗は不明として扱う", func(t *testing.T) {
		submitter := &fakeSubmitter{level: LevelHigh}
		fin := NewFinalizer(&fakeProfiles{err: errors.New("timeout")}, submitter, nil, discardLogger())
		s := openSession(makeDeck(1), fin)

		s.RecordAnswer(ctx, true)

		st := s.Snapshot()
		assert.Equal(t, PhaseFinished, st.Phase)
		assert.Nil(t, st.LevelTransition)
		assert.Empty(t, st.Warning)
		assert.Equal(t, int32(1), submitter.calls.Load())
	})
}

func TestSession_CollaboratorPanics(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		profiles    ProfileReader
		progress    ProgressSubmitter
		notifier    Notifier
		wantWarning string
	}{
		{
			name:     "異常系: 旧レベル取得のpanicは不明として扱い送信は続ける",
			profiles: panickingProfiles{},
			progress: &fakeSubmitter{level: LevelHigh},
		},
		{
			name:        "異常系: 送信のpanicは送信失敗として扱う",
			profiles:    &fakeProfiles{level: LevelLow},
			progress:    panickingSubmitter{},
			wantWarning: WarningSubmitFailed,
		},
		{
			name:     "異常系: 通知先のpanicは結果に影響しない",
			profiles: &fakeProfiles{level: LevelLow},
			progress: &fakeSubmitter{level: LevelHigh},
			notifier: panickingNotifier{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fin := NewFinalizer(tt.profiles, tt.progress, tt.notifier, discardLogger())
			s := openSession(makeDeck(1), fin)

			var accepted bool
			require.NotPanics(t, func() { accepted = s.RecordAnswer(ctx, true) })
			assert.True(t, accepted)

			st := s.Snapshot()
			assert.Equal(t, PhaseFinished, st.Phase)
			assert.Equal(t, tt.wantWarning, st.Warning)
			require.NotNil(t, st.Summary)
			assert.Equal(t, 100, st.Summary.Percentage)
			assert.True(t, s.Restart(), "finished sessions can be restarted")
		})
	}
}

func TestSession_Properties(t *testing.T) {
	ctx := context.Background()

	t.Run("回答ごとに結果が1件ずつ増え、完了後は増えない", func(t *testing.T) {
		for n := 1; n <= 6; n++ {
			s := openSession(makeDeck(n), nil)
			for i := 0; i < n; i++ {
				require.True(t, s.RecordAnswer(ctx, i%2 == 0))
				assert.Len(t, s.Results(), i+1)
			}
			assert.Equal(t, PhaseFinished, s.Phase())
			assert.False(t, s.RecordAnswer(ctx, true))
			assert.Len(t, s.Results(), n)
		}
	})

	t.Run("出題方向の切り替えは位置と結果を変えない", func(t *testing.T) {
		s := openSession(makeDeck(4), nil)
		s.RecordAnswer(ctx, true)
		s.Flip()

		for i := 0; i < 5; i++ {
			require.True(t, s.ToggleDirection())
			st := s.Snapshot()
			assert.Equal(t, 1, st.Index)
			assert.Equal(t, 1, st.ResultsCount)
			assert.Equal(t, SideFront, st.Side)
		}
		assert.Equal(t, DirectionMeaningFirst, s.Snapshot().Direction)
	})

	t.Run("最後のカードへの連打でも送信は1回だけ", func(t *testing.T) {
		submitter := &fakeSubmitter{
			level:   LevelLow,
			block:   make(chan struct{}),
			release: make(chan struct{}),
		}
		fin := NewFinalizer(&fakeProfiles{level: LevelLow}, submitter, nil, discardLogger())
		s := openSession(makeDeck(1), fin)

		done := make(chan bool)
		go func() { done <- s.HandleKey(ctx, KeyRight) }()
		<-submitter.block

		assert.Equal(t, PhaseFinalizing, s.Phase())
		assert.False(t, s.HandleKey(ctx, KeyRight))
		assert.False(t, s.RecordAnswer(ctx, true))
		assert.False(t, s.Flip())
		assert.False(t, s.Restart(), "送信中はやり直せない")

		close(submitter.release)
		assert.True(t, <-done)

		assert.Equal(t, int32(1), submitter.calls.Load())
		assert.Equal(t, PhaseFinished, s.Phase())
		assert.Len(t, s.Results(), 1)
	})

	t.Run("送信中に閉じたセッションは結果が届いても変わらない", func(t *testing.T) {
		submitter := &fakeSubmitter{
			level:   LevelHigh,
			block:   make(chan struct{}),
			release: make(chan struct{}),
		}
		fin := NewFinalizer(&fakeProfiles{level: LevelMid}, submitter, nil, discardLogger())
		s := openSession(makeDeck(1), fin)

		done := make(chan struct{})
		go func() {
			s.RecordAnswer(ctx, true)
			close(done)
		}()
		<-submitter.block
		s.Close()
		close(submitter.release)
		<-done

		st := s.Snapshot()
		assert.Equal(t, PhaseFinalizing, st.Phase)
		assert.Nil(t, st.LevelTransition)
		assert.True(t, s.Closed())
	})
}

func TestSession_Input(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: キー操作", func(t *testing.T) {
		s := openSession(makeDeck(3), nil)
		queue := s.Queue()

		assert.True(t, s.HandleKey(ctx, KeySpace))
		assert.Equal(t, SideBack, s.Snapshot().Side)
		assert.True(t, s.HandleKey(ctx, KeyLeft))
		assert.True(t, s.HandleKey(ctx, KeyRight))
		assert.False(t, s.HandleKey(ctx, KeyUnknown))

		assert.Equal(t, []Result{
			{CardID: queue[0].ID, IsCorrect: false},
			{CardID: queue[1].ID, IsCorrect: true},
		}, s.Results())
	})

	t.Run("正常系: クリックでめくる", func(t *testing.T) {
		s := openSession(makeDeck(2), nil)
		assert.True(t, s.Click())
		assert.Equal(t, SideBack, s.Snapshot().Side)
		assert.True(t, s.Click())
		assert.Equal(t, SideFront, s.Snapshot().Side)
	})

	t.Run("正常系: 完了後と Close 後は入力を無視する", func(t *testing.T) {
		s := openSession(makeDeck(1), nil)
		s.HandleKey(ctx, KeyRight)
		assert.False(t, s.HandleKey(ctx, KeySpace))
		assert.False(t, s.Click())

		closed := openSession(makeDeck(2), nil)
		closed.Close()
		assert.False(t, closed.HandleKey(ctx, KeySpace))
		assert.False(t, closed.Click())
		assert.False(t, closed.ToggleDirection())
		assert.Empty(t, closed.Results())
	})
}

func TestSession_Restart(t *testing.T) {
	ctx := context.Background()
	deck := makeDeck(3)
	s := openSession(deck, nil)
	for i := 0; i < 3; i++ {
		s.RecordAnswer(ctx, true)
	}
	require.Equal(t, PhaseFinished, s.Phase())

	require.True(t, s.Restart())

	st := s.Snapshot()
	assert.Equal(t, PhaseInProgress, st.Phase)
	assert.Equal(t, 0, st.Index)
	assert.Equal(t, 0, st.ResultsCount)
	assert.Nil(t, st.Summary)
	assert.ElementsMatch(t, cardIDs(deck), cardIDs(s.Queue()))
	assert.True(t, s.HandleKey(ctx, KeySpace), "やり直し後はキー入力を受け付ける")

	s.Close()
	assert.False(t, s.Restart())
}
