package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_5_flashcard_review/internal/handlers"
	"go_5_flashcard_review/internal/importer"
	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/service/mocks"
)

func newWordRouter(svc *mocks.WordService) *chi.Mux {
	h := handlers.NewWordHandler(svc, newTestLogger())
	return newTestRouter(func(r chi.Router) {
		r.Post("/words", h.PostWord)
		r.Get("/words", h.GetWords)
		r.Post("/words/import", h.ImportWords)
		r.Get("/words/{word_id}", h.GetWord)
		r.Delete("/words/{word_id}", h.DeleteWord)
	})
}

func TestWordHandler_PostWord(t *testing.T) {
	tenantID := uuid.New()
	validReq := model.PostWordRequest{Term: "apple", Definition: "りんご", PartOfSpeech: "noun"}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.WordService)
		expectedStatus int
		expectedCode   string
		expectedField  string
	}{
		{
			name: "正常系: 単語を作成",
			body: validReq,
			setupMock: func(m *mocks.WordService) {
				m.On("CreateWord", mock.Anything, tenantID, &validReq).
					Return(&model.Word{WordID: uuid.New(), TenantID: tenantID, Term: "apple", Definition: "りんご"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: termがない",
			body:           map[string]string{"definition": "りんご"},
			setupMock:      func(m *mocks.WordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
			expectedField:  "term",
		},
		{
			name:           "異常系: 未知のフィールド",
			body:           `{"term":"apple","definition":"りんご","level":3}`,
			setupMock:      func(m *mocks.WordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: 単語が重複",
			body: validReq,
			setupMock: func(m *mocks.WordService) {
				m.On("CreateWord", mock.Anything, tenantID, &validReq).
					Return(nil, model.NewAppError("DUPLICATE_TERM", "This term is already registered.", "term", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_TERM",
			expectedField:  "term",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewWordService(t)
			tt.setupMock(svc)

			rr := serve(newWordRouter(svc), createRequest(t, http.MethodPost, "/words", tt.body, &tenantID))

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				detail := decodeError(t, rr)
				assert.Equal(t, tt.expectedCode, detail.Code)
				assert.Equal(t, tt.expectedField, detail.Field)
			} else {
				var word model.Word
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &word))
				assert.Equal(t, "apple", word.Term)
			}
		})
	}
}

func TestWordHandler_GetWords(t *testing.T) {
	tenantID := uuid.New()

	t.Run("正常系: 単語がなければ空配列", func(t *testing.T) {
		svc := mocks.NewWordService(t)
		svc.On("ListWords", mock.Anything, tenantID).Return(nil, nil).Once()

		rr := serve(newWordRouter(svc), createRequest(t, http.MethodGet, "/words", nil, &tenantID))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("正常系: 一覧を返す", func(t *testing.T) {
		svc := mocks.NewWordService(t)
		svc.On("ListWords", mock.Anything, tenantID).Return([]*model.Word{
			{WordID: uuid.New(), Term: "apple"},
			{WordID: uuid.New(), Term: "banana"},
		}, nil).Once()

		rr := serve(newWordRouter(svc), createRequest(t, http.MethodGet, "/words", nil, &tenantID))

		require.Equal(t, http.StatusOK, rr.Code)
		var words []model.Word
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &words))
		assert.Len(t, words, 2)
	})

	t.Run("異常系: サービスエラー", func(t *testing.T) {
		svc := mocks.NewWordService(t)
		svc.On("ListWords", mock.Anything, tenantID).Return(nil, errors.New("db down")).Once()

		rr := serve(newWordRouter(svc), createRequest(t, http.MethodGet, "/words", nil, &tenantID))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "db down")
	})
}

func TestWordHandler_GetWord(t *testing.T) {
	tenantID := uuid.New()
	wordID := uuid.New()

	tests := []struct {
		name           string
		path           string
		setupMock      func(m *mocks.WordService)
		expectedStatus int
	}{
		{
			name: "正常系: 取得",
			path: "/words/" + wordID.String(),
			setupMock: func(m *mocks.WordService) {
				m.On("GetWord", mock.Anything, tenantID, wordID).Return(&model.Word{WordID: wordID, Term: "apple"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "異常系: 見つからない",
			path: "/words/" + wordID.String(),
			setupMock: func(m *mocks.WordService) {
				m.On("GetWord", mock.Anything, tenantID, wordID).
					Return(nil, model.NewAppError("WORD_NOT_FOUND", "Word not found.", "word_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "異常系: word_idがUUIDでない",
			path:           "/words/apple",
			setupMock:      func(m *mocks.WordService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewWordService(t)
			tt.setupMock(svc)
			rr := serve(newWordRouter(svc), createRequest(t, http.MethodGet, tt.path, nil, &tenantID))
			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestWordHandler_DeleteWord(t *testing.T) {
	tenantID := uuid.New()
	wordID := uuid.New()

	svc := mocks.NewWordService(t)
	svc.On("DeleteWord", mock.Anything, tenantID, wordID).Return(nil).Once()

	rr := serve(newWordRouter(svc), createRequest(t, http.MethodDelete, "/words/"+wordID.String(), nil, &tenantID))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

// newUploadRequest は file フィールドにファイルを添付した multipart リクエストを作ります
func newUploadRequest(t *testing.T, filename string, content []byte, tenantID uuid.UUID) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/words/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Tenant-ID", tenantID.String())
	return req
}

func TestWordHandler_ImportWords(t *testing.T) {
	tenantID := uuid.New()
	csvContent := []byte("term,meaning,phonetic,part_of_speech,example\napple,りんご,ˈæpəl,noun,I ate an apple.\n\nbanana,バナナ,,noun,\n")

	t.Run("正常系: CSVを取り込む", func(t *testing.T) {
		svc := mocks.NewWordService(t)
		svc.On("ImportWords", mock.Anything, tenantID, mock.MatchedBy(func(rows []importer.Row) bool {
			return len(rows) == 2 &&
				rows[0].Term == "apple" && rows[0].Meaning == "りんご" && rows[0].Line == 2 &&
				rows[1].Term == "banana" && rows[1].Line == 4
		})).Return(&model.ImportResult{TotalProcessed: 2, Created: 2, Errors: []string{}}, nil).Once()

		rr := serve(newWordRouter(svc), newUploadRequest(t, "words.csv", csvContent, tenantID))

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var result model.ImportResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 0, result.Skipped)
	})

	t.Run("異常系: 未対応の拡張子", func(t *testing.T) {
		rr := serve(newWordRouter(mocks.NewWordService(t)), newUploadRequest(t, "words.txt", csvContent, tenantID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "UNSUPPORTED_FILE_FORMAT", decodeError(t, rr).Code)
	})

	t.Run("異常系: 壊れたExcelファイル", func(t *testing.T) {
		rr := serve(newWordRouter(mocks.NewWordService(t)), newUploadRequest(t, "words.xlsx", []byte("not a zip"), tenantID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_FILE", decodeError(t, rr).Code)
	})

	t.Run("異常系: multipartでない", func(t *testing.T) {
		rr := serve(newWordRouter(mocks.NewWordService(t)), createRequest(t, http.MethodPost, "/words/import", `{"file":"x"}`, &tenantID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_REQUEST_BODY", decodeError(t, rr).Code)
	})
}
