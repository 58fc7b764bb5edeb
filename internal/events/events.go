// Package events はプロセス内の通知バスです。
// 学習進捗の更新を、互いに依存しないコンポーネント (ストリーク、メール通知など) に伝えます。
package events

import "github.com/google/uuid"

const (
	TopicProgressChanged = "progress.changed"
	TopicLevelChanged    = "level.changed"
)

// Event はバスに流れるメッセージです
type Event interface {
	Topic() string
}

// ProgressChanged は学習者の進捗が保存されたことを表します
type ProgressChanged struct {
	LearnerID uuid.UUID
	Answered  int
	Correct   int
}

func (ProgressChanged) Topic() string { return TopicProgressChanged }

// LevelChanged は学習者のレベルが変わったことを表します
type LevelChanged struct {
	LearnerID uuid.UUID
	OldLevel  string
	NewLevel  string
}

func (LevelChanged) Topic() string { return TopicLevelChanged }
