package gamification

import (
	"time"
)

// State is the gamification progress of one session.
//
// Hydrated is false until the first evaluation completed. Badges
// unlocked during that first evaluation are not announced.
type State struct {
	Badges     []Badge
	TotalXP    int
	LearningXP int
	Notified   map[BadgeID]bool
	Hydrated   bool
}

// NewState returns the state of a session without any progress.
func NewState() State {
	return State{
		Badges:   Catalog(),
		Notified: map[BadgeID]bool{},
	}
}

// Restore returns the state for a new session from persisted progress.
//
// Identifiers in unlocked that are not part of the catalog are ignored.
func Restore(unlocked map[string]time.Time, totalXP, learningXP int) State {
	s := NewState()
	s.TotalXP = max(totalXP, 0)
	s.LearningXP = max(learningXP, 0)

	for i, b := range s.Badges {
		at, ok := unlocked[string(b.ID)]
		if !ok {
			continue
		}

		at = at.UTC()
		s.Badges[i].Unlocked = true
		s.Badges[i].UnlockedAt = &at
	}

	return s
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.Badges = make([]Badge, len(s.Badges))
	for i, b := range s.Badges {
		if b.UnlockedAt != nil {
			at := *b.UnlockedAt
			b.UnlockedAt = &at
		}
		c.Badges[i] = b
	}

	c.Notified = make(map[BadgeID]bool, len(s.Notified))
	for id, ok := range s.Notified {
		c.Notified[id] = ok
	}

	return c
}

// Unlocked returns the unlock times of all unlocked badges.
func (s State) Unlocked() map[string]time.Time {
	unlocked := map[string]time.Time{}
	for _, b := range s.Badges {
		if b.Unlocked && b.UnlockedAt != nil {
			unlocked[string(b.ID)] = *b.UnlockedAt
		}
	}

	return unlocked
}

// Level returns the level for an amount of XP.
func Level(xp int) int {
	return max(xp, 0)/1000 + 1
}

// NextLevelXP returns the XP needed to reach the level after the current one.
func NextLevelXP(xp int) int {
	return Level(xp) * 1000
}
