// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Word は単語カード1枚分の情報を表します
type Word struct {
	WordID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"word_id"`
	TenantID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Term         string         `gorm:"not null" json:"term"`       // 単語
	Definition   string         `gorm:"not null" json:"definition"` // 意味・訳
	Phonetic     string         `json:"phonetic"`                   // 発音記号
	PartOfSpeech string         `json:"part_of_speech"`             // 品詞
	Example      string         `json:"example,omitempty"`          // 例文 (任意)
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (Word) TableName() string {
	return "words"
}

// 単語作成リクエストDTO
type PostWordRequest struct {
	Term         string `json:"term" validate:"required,max=200"`
	Definition   string `json:"definition" validate:"required,max=1000"`
	Phonetic     string `json:"phonetic" validate:"omitempty,max=200"`
	PartOfSpeech string `json:"part_of_speech" validate:"omitempty,max=50"`
	Example      string `json:"example" validate:"omitempty,max=2000"`
}

// ImportResult は単語一括インポートの結果です
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	Created        int      `json:"created"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors"`
}
