package service

import (
	"context"
	"fmt"

	"go_5_flashcard_review/internal/events"
	"go_5_flashcard_review/internal/middleware"
	"go_5_flashcard_review/internal/repository"

	"gorm.io/gorm"
)

// LevelUpNotifier は level.changed を購読し、学習者にお祝いメールを送ります
type LevelUpNotifier struct {
	db         *gorm.DB
	tenantRepo repository.TenantRepository
	mailer     Mailer
}

func NewLevelUpNotifier(db *gorm.DB, tenantRepo repository.TenantRepository, mailer Mailer) *LevelUpNotifier {
	return &LevelUpNotifier{db: db, tenantRepo: tenantRepo, mailer: mailer}
}

func (n *LevelUpNotifier) HandleLevelChanged(ctx context.Context, e events.Event) error {
	lc, ok := e.(events.LevelChanged)
	if !ok {
		return fmt.Errorf("LevelUpNotifier: unexpected event %T", e)
	}
	logger := middleware.GetLogger(ctx).With("tenant_id", lc.LearnerID)

	tenant, err := n.tenantRepo.FindByID(ctx, n.db, lc.LearnerID)
	if err != nil {
		return fmt.Errorf("LevelUpNotifier: find learner: %w", err)
	}
	if tenant.Email == "" {
		logger.Debug("Learner has no email address, skipping level mail")
		return nil
	}

	subject := fmt.Sprintf("Your level changed: %s → %s", lc.OldLevel, lc.NewLevel)
	body := fmt.Sprintf("Hi %s,\n\nYour vocabulary level moved from %s to %s. Keep reviewing to stay sharp!\n",
		tenant.Name, lc.OldLevel, lc.NewLevel)
	if err := n.mailer.Send(ctx, tenant.Email, subject, body); err != nil {
		return fmt.Errorf("LevelUpNotifier: send mail: %w", err)
	}
	return nil
}
