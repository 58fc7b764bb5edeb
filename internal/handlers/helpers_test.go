// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"go_5_flashcard_review/internal/middleware"
	"go_5_flashcard_review/internal/model"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter は開発用認証ミドルウェアつきのルーターを作ります
func newTestRouter(register func(r chi.Router)) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.DevTenantContextMiddleware)
	register(router)
	return router
}

// createRequest はテスト用のHTTPリクエストを作成します。
// tenantID が指定されていれば X-Tenant-ID ヘッダーを追加します。
func createRequest(t *testing.T, method, url string, body interface{}, tenantID *uuid.UUID) *http.Request {
	t.Helper()

	var reqBodyBytes []byte
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBodyBytes = []byte(b)
		case []byte:
			reqBodyBytes = b
		default:
			var err error
			reqBodyBytes, err = json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBodyBytes))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tenantID != nil {
		req.Header.Set("X-Tenant-ID", tenantID.String())
	}
	return req
}

// serve はリクエストを実行してレコーダーを返します
func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeError はエラーレスポンスのボディを読み取ります
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "error body must be JSON: %s", rr.Body.String())
	return resp.Error
}
