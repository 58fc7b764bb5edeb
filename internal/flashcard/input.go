package flashcard

import "context"

// HandleKey はキー入力をセッション操作に変換します。
// Space でめくる、← で「覚えていない」、→ で「覚えた」。Close 後や完了後は無視します。
func (s *Session) HandleKey(ctx context.Context, key Key) bool {
	s.mu.Lock()
	attached := s.attached
	s.mu.Unlock()
	if !attached {
		return false
	}

	switch key {
	case KeySpace:
		return s.Flip()
	case KeyLeft:
		return s.RecordAnswer(ctx, false)
	case KeyRight:
		return s.RecordAnswer(ctx, true)
	}
	return false
}

// Click はカード本体のクリックです。完了していなければめくります。
func (s *Session) Click() bool {
	return s.Flip()
}
