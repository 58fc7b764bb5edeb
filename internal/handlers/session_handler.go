package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"go_5_flashcard_review/internal/flashcard"
	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/service"
	"go_5_flashcard_review/internal/webutil"

	"github.com/google/uuid"
)

// SessionHandler はフラッシュカード復習セッションのAPIです
type SessionHandler struct {
	service service.SessionService
	logger  *slog.Logger
}

func NewSessionHandler(s service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		service: s,
		logger:  logger,
	}
}

// StartSession はセッションを開始します。ボディは省略可能で、省略時は復習期限の来た単語を使います。
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "StartSession")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	// chunked 転送では ContentLength が -1 になるため、空かどうかはデコード結果で判定する
	var req model.StartSessionRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil && !errors.Is(err, webutil.ErrEmptyBody) {
		logger.Warn("Invalid start session request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	state, err := h.service.Start(r.Context(), tenantID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if state == nil {
		logger.Info("Empty deck, no session started")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	logger.Info("Session started", slog.String("session_id", state.SessionID.String()), slog.Int("total", state.Total))
	webutil.RespondWithJSON(w, http.StatusCreated, state)
}

// sessionOp はセッションIDを読み取ってサービスを呼び、状態を 200 で返す共通処理です
func (h *SessionHandler) sessionOp(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	op func(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error),
) {
	logger := requestLogger(r, h.logger, name)

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	state, err := op(r.Context(), tenantID, sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Debug("Session state returned", slog.String("phase", state.Phase.String()), slog.Int("index", state.Index))
	webutil.RespondWithJSON(w, http.StatusOK, state)
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, "GetSession", h.service.Get)
}

func (h *SessionHandler) Flip(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, "Flip", h.service.Flip)
}

func (h *SessionHandler) Click(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, "Click", h.service.Click)
}

func (h *SessionHandler) ToggleDirection(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, "ToggleDirection", h.service.ToggleDirection)
}

func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, "Restart", h.service.Restart)
}

// Answer は {"is_correct": bool} を受け取り、表示中のカードの回答を記録します
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req model.AnswerRequest
	h.sessionOp(w, r, "Answer", func(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error) {
		if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
			return nil, err
		}
		return h.service.Answer(ctx, tenantID, sessionID, *req.IsCorrect)
	})
}

// PressKey は {"key": "space"|"left"|"right"} を受け取ります
func (h *SessionHandler) PressKey(w http.ResponseWriter, r *http.Request) {
	var req model.KeyRequest
	h.sessionOp(w, r, "PressKey", func(ctx context.Context, tenantID, sessionID uuid.UUID) (*flashcard.State, error) {
		if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
			return nil, err
		}
		key, err := flashcard.ParseKey(req.Key)
		if err != nil {
			return nil, model.NewAppError("VALIDATION_ERROR", "key must be one of [space left right].", "key", model.ErrInvalidInput)
		}
		return h.service.PressKey(ctx, tenantID, sessionID, key)
	})
}

// CloseSession はセッションを終了します
func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "CloseSession")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	if err := h.service.Close(r.Context(), tenantID, sessionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session closed", slog.String("session_id", sessionID.String()))
	w.WriteHeader(http.StatusNoContent)
}
