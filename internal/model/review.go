// internal/model/review.go
package model

import "github.com/google/uuid"

// ReviewWordResponse は復習単語リストのレスポンスDTO
type ReviewWordResponse struct {
	WordID     uuid.UUID     `json:"word_id"`
	Term       string        `json:"term"`
	Definition string        `json:"definition"` // 正解表示用に含める
	Level      ProgressLevel `json:"level"`
}

// SubmitReviewRequest は復習結果送信リクエストのDTO
type SubmitReviewRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
}

// StartSessionRequest はフラッシュカードセッション開始リクエストのDTO。
// WordIDs が空の場合は復習期限の来た単語でデッキを作ります。
type StartSessionRequest struct {
	WordIDs []uuid.UUID `json:"word_ids" validate:"omitempty,max=200,unique"`
}

// AnswerRequest はカードへの回答 (覚えていた/覚えていなかった) のDTO
type AnswerRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
}

// KeyRequest はキーボード操作のDTO
type KeyRequest struct {
	Key string `json:"key" validate:"required,oneof=space left right"`
}
