package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"go_5_flashcard_review/internal/config"
	"go_5_flashcard_review/internal/middleware"
)

// Handlers はルーターに登録するハンドラ一式です
type Handlers struct {
	Tenant  *TenantHandler
	Word    *WordHandler
	Review  *ReviewHandler
	Session *SessionHandler
	Streak  *StreakHandler
}

// HealthCheck は依存先 (DBなど) の疎通を確認します
type HealthCheck func(ctx context.Context) error

// NewRouter は /api/v1 以下のルートとミドルウェアを組み立てます
func NewRouter(cfg *config.Config, logger *slog.Logger, h Handlers, health HealthCheck) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Tenant-ID"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/tenants", h.Tenant.CreateTenant)

		// --- Protected routes (require learner ID) ---
		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				logger.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(cfg))
			} else {
				logger.Warn("Authentication disabled, using X-Tenant-ID header")
				r.Use(middleware.DevTenantContextMiddleware)
			}

			r.Route("/words", func(r chi.Router) {
				r.Post("/", h.Word.PostWord)
				r.Get("/", h.Word.GetWords)
				r.Post("/import", h.Word.ImportWords)
				r.Get("/{word_id}", h.Word.GetWord)
				r.Delete("/{word_id}", h.Word.DeleteWord)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.Review.GetReviewWords)
				r.Put("/{word_id}/result", h.Review.SubmitReviewResult)
			})

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", h.Session.StartSession)
				r.Route("/{session_id}", func(r chi.Router) {
					r.Get("/", h.Session.GetSession)
					r.Delete("/", h.Session.CloseSession)
					r.Post("/flip", h.Session.Flip)
					r.Post("/click", h.Session.Click)
					r.Post("/direction", h.Session.ToggleDirection)
					r.Post("/answer", h.Session.Answer)
					r.Post("/keys", h.Session.PressKey)
					r.Post("/restart", h.Session.Restart)
				})
			})

			r.Get("/streak", h.Streak.GetStreak)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health(r.Context()); err != nil {
				middleware.GetLogger(r.Context()).Error("Health check failed", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
