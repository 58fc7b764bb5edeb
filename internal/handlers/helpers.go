// Package handlers は HTTP リクエストを受け取り、サービス層を呼び出してレスポンスを返します。
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_flashcard_review/internal/middleware"
	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// tenantFromRequest はコンテキストの学習者IDを取り出します。なければエラーレスポンスを書いて false を返します。
func tenantFromRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication information is missing.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return tenantID, true
}

// uuidParam は URL パラメータを UUID として読み取ります
func uuidParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID format in URL", slog.String("param", name), slog.String("value", raw))
		appErr := model.NewAppError("INVALID_URL_PARAM", "The "+name+" must be a UUID.", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}

// requestLogger はリクエストスコープのロガーに handler 名を付けて返します
func requestLogger(r *http.Request, fallback *slog.Logger, handler string) *slog.Logger {
	logger := middleware.GetLogger(r.Context())
	if logger == slog.Default() && fallback != nil {
		logger = fallback
	}
	return logger.With(slog.String("handler", handler))
}
