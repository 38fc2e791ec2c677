// Package gamification derives experience points and achievement badges
// from the financial activity of a user.
package gamification

import (
	"time"
)

type BadgeID string

const (
	BadgeFirstGoal       BadgeID = "first_goal"
	BadgeFirstInvestment BadgeID = "first_investment"
	BadgeGoalCompleted   BadgeID = "goal_completed"
	BadgeSaver           BadgeID = "saver"
	BadgeHighIncome      BadgeID = "high_income"
	BadgeSafeGuard       BadgeID = "safe_guard"
	BadgeShopper         BadgeID = "shopper"
	BadgeApprentice      BadgeID = "apprentice"
)

// Badge is an achievement that is unlocked once.
type Badge struct {
	ID          BadgeID    `json:"id" example:"first_goal"`
	Title       string     `json:"title" example:"Dreamer"`
	Description string     `json:"description" example:"Created the first financial goal."`
	Icon        string     `json:"icon" example:"target"`
	Color       string     `json:"color" example:"bronze"`
	Unlocked    bool       `json:"unlocked" example:"true"`
	UnlockedAt  *time.Time `json:"unlockedAt" example:"2024-04-02T19:28:44.491514Z"`
	XPReward    int        `json:"xpReward" example:"100"`
}

// Equal reports whether two badges are structurally identical.
func (b Badge) Equal(o Badge) bool {
	if b.ID != o.ID ||
		b.Title != o.Title ||
		b.Description != o.Description ||
		b.Icon != o.Icon ||
		b.Color != o.Color ||
		b.Unlocked != o.Unlocked ||
		b.XPReward != o.XPReward {
		return false
	}

	if b.UnlockedAt == nil || o.UnlockedAt == nil {
		return b.UnlockedAt == o.UnlockedAt
	}

	return b.UnlockedAt.Equal(*o.UnlockedAt)
}

// BadgesEqual reports whether two badge lists are structurally identical.
func BadgesEqual(a, b []Badge) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
