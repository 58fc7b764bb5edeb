package model

import (
	"time"

	"github.com/google/uuid"
)

// Streak は学習者の連続学習日数と経験値です
type Streak struct {
	TenantID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	CurrentStreak  int       `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak  int       `gorm:"not null;default:0" json:"longest_streak"`
	XP             int       `gorm:"not null;default:0" json:"xp"`
	LastActiveDate time.Time `json:"last_active_date"`
	UpdatedAt      time.Time `json:"-"`
}

func (Streak) TableName() string {
	return "streaks"
}
