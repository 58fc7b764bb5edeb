// internal/handlers/word_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_flashcard_review/internal/importer"
	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/service"
	"go_5_flashcard_review/internal/webutil"
)

// maxImportBytes はインポートファイルの上限です
const maxImportBytes = 10 << 20

type WordHandler struct {
	service service.WordService
	logger  *slog.Logger
}

func NewWordHandler(s service.WordService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// PostWord は新しい単語リソースを作成するためのハンドラ
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostWord")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	var req model.PostWordRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid word request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.CreateWord(r.Context(), tenantID, &req)
	if err != nil {
		logger.Warn("Error creating word in service", slog.Any("error", err), slog.String("term", req.Term))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word posted successfully", slog.String("word_id", word.WordID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, word)
}

// GetWords は単語リソースの一覧を取得するためのハンドラ
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetWords")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	words, err := h.service.ListWords(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.Word{}
	}
	logger.Info("Words listed successfully", slog.Int("count", len(words)))
	webutil.RespondWithJSON(w, http.StatusOK, words)
}

// GetWord は特定の単語リソースを取得するためのハンドラ
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetWord")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := uuidParam(w, r, logger, "word_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("word_id", wordID.String()))

	word, err := h.service.GetWord(r.Context(), tenantID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Word not found in service")
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word)
}

// DeleteWord は特定の単語リソースを論理削除するためのハンドラ
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "DeleteWord")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := uuidParam(w, r, logger, "word_id")
	if !ok {
		return
	}

	if err := h.service.DeleteWord(r.Context(), tenantID, wordID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted successfully", slog.String("word_id", wordID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// ImportWords は multipart の file フィールドで受け取った .xlsx / .csv から単語を一括登録します
func (h *WordHandler) ImportWords(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "ImportWords")

	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "Request must be multipart/form-data within 10MB.", "file", model.ErrInvalidInput))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn("File field missing", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("VALIDATION_ERROR", "file is required.", "file", model.ErrInvalidInput))
		return
	}
	defer file.Close()
	logger = logger.With(slog.String("filename", header.Filename), slog.Int64("size", header.Size))

	rows, err := importer.Read(file, header.Filename)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFormat) {
			webutil.HandleError(w, logger, model.NewAppError("UNSUPPORTED_FILE_FORMAT", "Only .xlsx and .csv files are supported.", "file", model.ErrInvalidInput))
			return
		}
		logger.Warn("Failed to read import file", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_FILE", "The file could not be read.", "file", model.ErrInvalidInput))
		return
	}

	result, err := h.service.ImportWords(r.Context(), tenantID, rows)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Words imported", slog.Int("created", result.Created), slog.Int("skipped", result.Skipped))
	webutil.RespondWithJSON(w, http.StatusOK, result)
}
