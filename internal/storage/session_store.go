// Package storage は進行中の復習セッションをメモリ上に保持します。
package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"go_5_flashcard_review/internal/flashcard"
)

type entry struct {
	session  *flashcard.Session
	lastSeen time.Time
}

// SessionStore はセッションIDをキーにしたスレッドセーフなマップです
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*entry),
		now:      time.Now,
	}
}

// Save はセッションを登録します (同じIDは上書き)
func (s *SessionStore) Save(session *flashcard.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = &entry{session: session, lastSeen: s.now()}
}

// Get はセッションを返し、最終アクセス時刻を更新します
func (s *SessionStore) Get(id uuid.UUID) (*flashcard.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.session, true
}

// Peek は最終アクセス時刻を変えずにセッションを返します
func (s *SessionStore) Peek(id uuid.UUID) (*flashcard.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	return e.session, true
}

// Touch は最終アクセス時刻だけを更新します
func (s *SessionStore) Touch(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[id]; ok {
		e.lastSeen = s.now()
	}
}

// Delete はセッションを取り除いて返します
func (s *SessionStore) Delete(id uuid.UUID) (*flashcard.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	delete(s.sessions, id)
	return e.session, true
}

// Expired は ttl 以上アクセスのないセッションのIDを返します
func (s *SessionStore) Expired(now time.Time, ttl time.Duration) []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []uuid.UUID
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) >= ttl {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
