// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/service"
	"go_5_flashcard_review/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{service: s, logger: logger}
}

// GetReviewWords は今日復習する単語の一覧を返します
func (h *ReviewHandler) GetReviewWords(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetReviewWords")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	reviewWords, err := h.service.GetReviewWords(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if reviewWords == nil {
		reviewWords = []*model.ReviewWordResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, reviewWords)
}

// SubmitReviewResult は1単語分の復習結果を保存します
func (h *ReviewHandler) SubmitReviewResult(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "SubmitReviewResult")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := uuidParam(w, r, logger, "word_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("word_id", wordID.String()))

	var req model.SubmitReviewRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.UpsertLearningProgressBasedOnReview(r.Context(), tenantID, wordID, *req.IsCorrect); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review result submitted", slog.Bool("is_correct", *req.IsCorrect))
	w.WriteHeader(http.StatusNoContent)
}
