package middleware

import (
	"context"
	"net/http"
	"strings"

	"go_5_flashcard_review/internal/config"
	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークン (HS256) を検証し、
// sub クレームの学習者IDをコンテキストに格納します。トークンの発行はこのサービスの外で行います。
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	secret := []byte(cfg.Auth.JWTSecret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrForbidden))
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header must be 'Bearer {token}'.", "", model.ErrForbidden))
				return
			}

			// 署名と有効期限(exp)を検証
			token, err := parser.Parse(headerParts[1], func(token *jwt.Token) (interface{}, error) {
				return secret, nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token is invalid.", "", model.ErrForbidden))
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token has no subject.", "", model.ErrForbidden))
				return
			}

			learnerID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token subject is malformed.", "", model.ErrForbidden))
				return
			}

			next.ServeHTTP(w, r.WithContext(withTenant(r.Context(), learnerID)))
		})
	}
}

// withTenant は学習者IDとそれを属性に持つロガーをコンテキストに格納します
func withTenant(ctx context.Context, tenantID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, model.TenantIDKey, tenantID)
	return WithLogger(ctx, GetLogger(ctx).With("tenant_id", tenantID.String()))
}

func GetTenantIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.TenantIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		return uuid.Nil, model.NewAppError("TENANT_NOT_FOUND", "Learner ID is missing from the request context.", "", model.ErrTenantNotFound)
	}
	return value, nil
}
