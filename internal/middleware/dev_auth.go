// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/webutil"

	"github.com/google/uuid"
)

// DevTenantContextMiddleware は開発時用ミドルウェアです。
// X-Tenant-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// DBでの存在チェックは行いません。
func DevTenantContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		tenantIDStr := r.Header.Get("X-Tenant-ID")
		if tenantIDStr == "" {
			logger.Warn("[DEV AUTH] X-Tenant-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Tenant-ID header is required.", "X-Tenant-ID", model.ErrForbidden))
			return
		}

		tenantID, err := uuid.Parse(tenantIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-Tenant-ID format", "value", tenantIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Tenant-ID must be a UUID.", "X-Tenant-ID", model.ErrForbidden))
			return
		}

		logger.Debug("[DEV AUTH] Tenant ID set to context (no validation)", "tenant_id", tenantID.String())
		next.ServeHTTP(w, r.WithContext(withTenant(r.Context(), tenantID)))
	})
}
