package handlers

import (
	"log/slog"
	"net/http"

	"go_5_flashcard_review/internal/service"
	"go_5_flashcard_review/internal/webutil"
)

type StreakHandler struct {
	service service.StreakService
	logger  *slog.Logger
}

func NewStreakHandler(s service.StreakService, logger *slog.Logger) *StreakHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StreakHandler{service: s, logger: logger}
}

// GetStreak は連続学習日数と経験値を返します
func (h *StreakHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetStreak")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	streak, err := h.service.GetStreak(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, streak)
}
