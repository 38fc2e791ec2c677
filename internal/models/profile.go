package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the persisted gamification progress of a user.
//
// UnlockedBadges maps badge identifiers to the time they were unlocked.
type Profile struct {
	DefaultModel
	UserID         uuid.UUID            `json:"-" gorm:"uniqueIndex"`
	TotalXP        int                  `json:"totalXp"`
	UnlockedBadges map[string]time.Time `json:"unlockedBadges" gorm:"serializer:json"`
}
