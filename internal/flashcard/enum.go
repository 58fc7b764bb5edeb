package flashcard

import (
	"fmt"
	"strings"
)

// Phase はセッションの進行状態です
type Phase int

const (
	PhaseIdle       Phase = iota // デッキが空
	PhaseInProgress              // 回答受付中
	PhaseFinalizing              // 結果送信中
	PhaseFinished                // 集計表示
)

var phaseNames = [...]string{"idle", "in_progress", "finalizing", "finished"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(phaseNames) {
		return nil, fmt.Errorf("flashcard: invalid phase %d", int(p))
	}
	return []byte(phaseNames[p]), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for i, name := range phaseNames {
		if name == string(text) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("flashcard: unknown phase %q", string(text))
}

// Side はカードのどちらの面を表示しているかです
type Side int

const (
	SideFront Side = iota
	SideBack
)

func (s Side) String() string {
	if s == SideBack {
		return "back"
	}
	return "front"
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Direction は表面に単語と意味のどちらを出すかです
type Direction int

const (
	DirectionTermFirst Direction = iota
	DirectionMeaningFirst
)

func (d Direction) String() string {
	if d == DirectionMeaningFirst {
		return "meaning_first"
	}
	return "term_first"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Key はキーボード入力です
type Key int

const (
	KeyUnknown Key = iota
	KeySpace       // めくる
	KeyLeft        // 覚えていない
	KeyRight       // 覚えた
)

// ParseKey は "space" / "left" / "right" を Key に変換します
func ParseKey(s string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "space", " ":
		return KeySpace, nil
	case "left", "arrowleft":
		return KeyLeft, nil
	case "right", "arrowright":
		return KeyRight, nil
	}
	return KeyUnknown, fmt.Errorf("flashcard: unknown key %q", s)
}
