package flashcard

import (
	"context"
	"math/rand"
	"sync"

	"github.com/google/uuid"
)

// Options はセッション生成時の依存です
type Options struct {
	LearnerID uuid.UUID
	Finalizer *Finalizer
	Rand      *rand.Rand // nil ならグローバルな乱数源
}

// Session は1回分の復習セッションです。複数の goroutine から安全に使えます。
// 結果送信中はロックを保持せず、PhaseFinalizing が二重送信を防ぎます。
type Session struct {
	ID        uuid.UUID
	LearnerID uuid.UUID

	mu         sync.Mutex
	deck       []Card
	queue      []Card
	index      int
	side       Side
	direction  Direction
	results    []Result
	phase      Phase
	attached   bool // キー入力を受け付けるか
	closed     bool
	warning    string
	transition *LevelTransition

	rnd       *rand.Rand
	finalizer *Finalizer
}

// State はセッションの読み取り専用スナップショットです
type State struct {
	SessionID       uuid.UUID        `json:"session_id"`
	Phase           Phase            `json:"phase"`
	Index           int              `json:"index"`
	Total           int              `json:"total"`
	Side            Side             `json:"side"`
	Direction       Direction        `json:"direction"`
	Card            *Card            `json:"card,omitempty"`
	ResultsCount    int              `json:"results_count"`
	Summary         *Summary         `json:"summary,omitempty"`
	LevelTransition *LevelTransition `json:"level_transition,omitempty"`
	Warning         string           `json:"warning,omitempty"`
}

// Open はデッキからセッションを作ります。デッキが空ならセッションは PhaseIdle のままです。
func Open(deck []Card, opts Options) *Session {
	s := &Session{
		ID:        uuid.New(),
		LearnerID: opts.LearnerID,
		deck:      append([]Card(nil), deck...),
		rnd:       opts.Rand,
		finalizer: opts.Finalizer,
	}
	s.reset()
	return s
}

// reset はキューを作り直して状態を初期化します。s.mu を保持して呼ぶこと。
func (s *Session) reset() {
	s.index = 0
	s.side = SideFront
	s.results = nil
	s.warning = ""
	s.transition = nil
	if len(s.deck) == 0 {
		s.queue = nil
		s.phase = PhaseIdle
		s.attached = false
		return
	}
	s.queue = Shuffle(s.deck, s.rnd)
	s.results = make([]Result, 0, len(s.queue))
	s.phase = PhaseInProgress
	s.attached = true
}

// Restart は元のデッキで最初からやり直します。送信中や Close 後は何もしません。
func (s *Session) Restart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.phase == PhaseFinalizing {
		return false
	}
	s.reset()
	return true
}

// Close はセッションを終了します。送信中の結果が後から届いてもセッションは変更されません。
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.attached = false
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Current は表示中のカードを返します
func (s *Session) Current() (Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

func (s *Session) current() (Card, bool) {
	if s.phase != PhaseInProgress && s.phase != PhaseFinalizing {
		return Card{}, false
	}
	return s.queue[s.index], true
}

// Queue はシャッフル済みキューのコピーを返します
func (s *Session) Queue() []Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Card(nil), s.queue...)
}

// Results は記録済みの回答結果のコピーを返します
func (s *Session) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Result(nil), s.results...)
}

// Flip はカードをめくります。回答受付中以外は何もしません。
func (s *Session) Flip() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flip()
}

func (s *Session) flip() bool {
	if s.closed || s.phase != PhaseInProgress {
		return false
	}
	if s.side == SideFront {
		s.side = SideBack
	} else {
		s.side = SideFront
	}
	return true
}

// ToggleDirection は出題方向を切り替えて表面に戻します。位置と回答結果は変えません。
func (s *Session) ToggleDirection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.phase != PhaseInProgress {
		return false
	}
	if s.direction == DirectionTermFirst {
		s.direction = DirectionMeaningFirst
	} else {
		s.direction = DirectionTermFirst
	}
	s.side = SideFront
	return true
}

// advance は次のカードへ進みます。s.mu を保持して呼ぶこと。
func (s *Session) advance() {
	s.side = SideFront
	s.index++
}

// RecordAnswer は表示中のカードの回答を記録します。
// 最後のカードなら結果を送信して PhaseFinished に移ります。受け付けなかった場合は false。
func (s *Session) RecordAnswer(ctx context.Context, isCorrect bool) bool {
	s.mu.Lock()
	if s.closed || s.phase != PhaseInProgress {
		s.mu.Unlock()
		return false
	}

	card := s.queue[s.index]
	s.results = append(s.results, Result{CardID: card.ID, IsCorrect: isCorrect})
	if s.index < len(s.queue)-1 {
		s.advance()
		s.mu.Unlock()
		return true
	}

	s.phase = PhaseFinalizing
	s.attached = false
	results := append([]Result(nil), s.results...)
	s.mu.Unlock()

	report := s.finalizer.Finalize(ctx, s.LearnerID, results)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}
	s.phase = PhaseFinished
	s.side = SideFront
	s.warning = report.Warning
	s.transition = report.Transition
	return true
}

// Snapshot は現在の状態を返します
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		SessionID:    s.ID,
		Phase:        s.phase,
		Index:        s.index,
		Total:        len(s.queue),
		Side:         s.side,
		Direction:    s.direction,
		ResultsCount: len(s.results),
		Warning:      s.warning,
	}
	if card, ok := s.current(); ok {
		st.Card = &card
	}
	if s.phase == PhaseFinished {
		summary := Summarize(s.results)
		st.Summary = &summary
	}
	if s.transition != nil {
		t := *s.transition
		st.LevelTransition = &t
	}
	return st
}
