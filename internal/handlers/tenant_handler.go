package handlers

import (
	"log/slog"
	"net/http"

	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/service"
	"go_5_flashcard_review/internal/webutil"
)

// TenantHandler は学習者 (テナント) 関連のHTTPリクエストを処理します
type TenantHandler struct {
	service service.TenantService
	logger  *slog.Logger
}

func NewTenantHandler(s service.TenantService, logger *slog.Logger) *TenantHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TenantHandler{
		service: s,
		logger:  logger,
	}
}

// CreateTenant は POST /tenants で新しい学習者を作成します
func (h *TenantHandler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "CreateTenant")

	var req model.CreateTenantRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid create tenant request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	tenant, err := h.service.CreateTenant(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.TenantID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.TenantResponse{
		TenantID:  tenant.TenantID,
		Name:      tenant.Name,
		Email:     tenant.Email,
		IsActive:  tenant.IsActive,
		CreatedAt: tenant.CreatedAt,
	})
}
