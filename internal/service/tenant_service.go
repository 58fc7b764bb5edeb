//go:generate mockery --name TenantService --output ./mocks --outpkg mocks --case=underscore
// internal/service/tenant_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"go_5_flashcard_review/internal/middleware"
	"go_5_flashcard_review/internal/model"
	"go_5_flashcard_review/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantService interface {
	CreateTenant(ctx context.Context, req *model.CreateTenantRequest) (*model.Tenant, error)
	GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error)
}

type tenantService struct {
	db         *gorm.DB
	tenantRepo repository.TenantRepository
}

func NewTenantService(db *gorm.DB, repo repository.TenantRepository) TenantService {
	return &tenantService{db: db, tenantRepo: repo}
}

func (s *tenantService) CreateTenant(ctx context.Context, req *model.CreateTenantRequest) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)

	tenant := &model.Tenant{
		TenantID: uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		IsActive: true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.tenantRepo.FindByEmail(ctx, tx, tenant.Email); err == nil {
			return model.ErrConflict
		} else if !errors.Is(err, model.ErrNotFound) {
			return err
		}
		return s.tenantRepo.Create(ctx, tx, tenant)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("EMAIL_ALREADY_EXISTS", "This email address is already registered.", "email", model.ErrConflict)
		}
		logger.Error("Failed to create tenant", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the learner.", "", errors.Join(model.ErrInternalServer, err))
	}

	logger.Info("Tenant created", "tenant_id", tenant.TenantID)
	return tenant, nil
}

// GetTenant は指定されたIDの学習者を取得します
func (s *tenantService) GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, s.db, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TENANT_NOT_FOUND", "Learner not found.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the learner.", "", errors.Join(model.ErrInternalServer, err))
	}
	return tenant, nil
}
