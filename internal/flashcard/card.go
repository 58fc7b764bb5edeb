// Package flashcard は単語カードの復習セッション (シャッフル → めくる → 回答 → 次へ → 集計) を扱います。
package flashcard

import "github.com/google/uuid"

// Card は復習する単語1枚です。セッション中は変更されません。
type Card struct {
	ID           uuid.UUID `json:"id"`
	Term         string    `json:"term"`
	Meaning      string    `json:"meaning"`
	Phonetic     string    `json:"phonetic"`
	PartOfSpeech string    `json:"part_of_speech"`
	Example      string    `json:"example,omitempty"`
}

// Result は1枚分の回答結果です
type Result struct {
	CardID    uuid.UUID `json:"card_id"`
	IsCorrect bool      `json:"is_correct"`
}
