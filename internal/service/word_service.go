//go:generate mockery --name WordService --output ./mocks --outpkg mocks --case=underscore
// internal/service/word_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go_5_flashcard_review/internal/importer"
	"go_5_flashcard_review/internal/middleware"
	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordService interface {
	CreateWord(ctx context.Context, tenantID uuid.UUID, req *model.PostWordRequest) (*model.Word, error)
	GetWord(ctx context.Context, tenantID, wordID uuid.UUID) (*model.Word, error)
	ListWords(ctx context.Context, tenantID uuid.UUID) ([]*model.Word, error)
	DeleteWord(ctx context.Context, tenantID, wordID uuid.UUID) error
	ImportWords(ctx context.Context, tenantID uuid.UUID, rows []importer.Row) (*model.ImportResult, error)
}

type wordService struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo repository.WordRepository
	progRepo repository.ProgressRepository
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, progRepo repository.ProgressRepository) WordService {
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
		progRepo: progRepo,
	}
}

func (s *wordService) CreateWord(ctx context.Context, tenantID uuid.UUID, req *model.PostWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	var createdWord *model.Word
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		word, err := s.createWithProgress(ctx, tx, tenantID, req)
		if err != nil {
			return err
		}
		createdWord = word
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("DUPLICATE_TERM", fmt.Sprintf("The term '%s' is already registered.", req.Term), "term", model.ErrConflict)
		}
		logger.Error("Transaction failed for CreateWord", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the word.", "", errors.Join(model.ErrInternalServer, err))
	}

	logger.Info("Word created", "word_id", createdWord.WordID)
	return createdWord, nil
}

// createWithProgress は単語と初期進捗 (レベル1、すぐに復習可能) を作成します
func (s *wordService) createWithProgress(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, req *model.PostWordRequest) (*model.Word, error) {
	exists, err := s.wordRepo.CheckTermExists(ctx, tx, tenantID, req.Term)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrConflict
	}

	word := &model.Word{
		WordID:       uuid.New(),
		TenantID:     tenantID,
		Term:         req.Term,
		Definition:   req.Definition,
		Phonetic:     req.Phonetic,
		PartOfSpeech: req.PartOfSpeech,
		Example:      req.Example,
	}
	if err := s.wordRepo.Create(ctx, tx, word); err != nil {
		return nil, err
	}

	progress := &model.LearningProgress{
		ProgressID:     uuid.New(),
		TenantID:       tenantID,
		WordID:         word.WordID,
		Level:          model.Level1,
		NextReviewDate: time.Now().UTC(),
	}
	if err := s.progRepo.Create(ctx, tx, progress); err != nil {
		return nil, err
	}
	return word, nil
}

func (s *wordService) GetWord(ctx context.Context, tenantID, wordID uuid.UUID) (*model.Word, error) {
	word, err := s.wordRepo.FindByID(ctx, s.db, tenantID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "Word not found.", "word_id", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the word.", "", errors.Join(model.ErrInternalServer, err))
	}
	return word, nil
}

func (s *wordService) ListWords(ctx context.Context, tenantID uuid.UUID) ([]*model.Word, error) {
	words, err := s.wordRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list words.", "", errors.Join(model.ErrInternalServer, err))
	}
	return words, nil
}

func (s *wordService) DeleteWord(ctx context.Context, tenantID, wordID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.wordRepo.Delete(ctx, tx, tenantID, wordID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("WORD_NOT_FOUND", "Word not found.", "word_id", model.ErrNotFound)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete the word.", "", errors.Join(model.ErrInternalServer, err))
	}
	middleware.GetLogger(ctx).Info("Word deleted", "tenant_id", tenantID, "word_id", wordID)
	return nil
}

// ImportWords はファイルから読み込んだ行を1件ずつ登録します。
// 既に登録済みの単語はスキップし、不正な行はエラーとして結果に含めます。
func (s *wordService) ImportWords(ctx context.Context, tenantID uuid.UUID, rows []importer.Row) (*model.ImportResult, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)
	result := &model.ImportResult{Errors: []string{}}

	for _, row := range rows {
		result.TotalProcessed++
		req := &model.PostWordRequest{
			Term:         strings.TrimSpace(row.Term),
			Definition:   strings.TrimSpace(row.Meaning),
			Phonetic:     strings.TrimSpace(row.Phonetic),
			PartOfSpeech: strings.TrimSpace(row.PartOfSpeech),
			Example:      strings.TrimSpace(row.Example),
		}
		if req.Term == "" || req.Definition == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: term and meaning are required", row.Line))
			continue
		}

		// 1行ごとに独立したトランザクションにする
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			_, err := s.createWithProgress(ctx, tx, tenantID, req)
			return err
		})
		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, model.ErrConflict):
			result.Skipped++
		default:
			logger.Error("Failed to import word", "line", row.Line, "term", req.Term, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: failed to save '%s'", row.Line, req.Term))
		}
	}

	logger.Info("Word import finished",
		"processed", result.TotalProcessed,
		"created", result.Created,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	return result, nil
}
