package gamification

import (
	"fmt"
	"time"
)

type EventKind string

const (
	// EventXP credits XP to the total.
	EventXP EventKind = "xp"

	// EventCelebration announces a newly unlocked badge.
	EventCelebration EventKind = "celebration"

	// EventNotification carries a message for the notification feed.
	EventNotification EventKind = "notification"
)

// Event is an effect of an evaluation or an XP credit.
type Event struct {
	Kind    EventKind `json:"kind"`
	Badge   *Badge    `json:"badge,omitempty"`
	XP      int       `json:"xp,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Evaluate computes the next state for a snapshot.
//
// Evaluate never modifies prior. Running it again with the returned state
// and the same snapshot returns an identical state and no events.
func Evaluate(snapshot Snapshot, prior State, now time.Time) (State, []Event) {
	next := prior.Clone()
	next.LearningXP = max(snapshot.LearningXP, 0)
	snapshot.LearningXP = next.LearningXP

	if len(next.Badges) == 0 {
		next.Badges = Catalog()
	}

	var (
		events   []Event
		xpGained int
	)

	for i := range next.Badges {
		badge := &next.Badges[i]

		def, ok := lookup(badge.ID)
		if !ok {
			continue
		}

		if def.display != nil {
			def.display(snapshot, badge)
		}

		// Unlocked badges are never locked again
		if badge.Unlocked || !def.unlocked(snapshot) {
			continue
		}

		at := now.UTC()
		badge.Unlocked = true
		badge.UnlockedAt = &at

		if def.creditOnUnlock {
			xpGained += badge.XPReward
		}

		if !prior.Hydrated || next.Notified[badge.ID] {
			continue
		}

		celebrated := *badge
		events = append(events,
			Event{Kind: EventCelebration, Badge: &celebrated, XP: badge.XPReward},
			Event{Kind: EventNotification, Message: fmt.Sprintf("New achievement unlocked: %s!", badge.Title)},
		)
		next.Notified[badge.ID] = true
	}

	if xpGained > 0 {
		next.TotalXP += xpGained

		if prior.Hydrated {
			events = append(events, Event{Kind: EventXP, XP: xpGained})
		}
	}

	next.Hydrated = true
	return next, events
}

// EarnXP credits amount to the total XP. Negative amounts are penalties,
// the total never drops below zero.
func EarnXP(state State, amount int) (State, []Event) {
	if amount == 0 {
		return state, nil
	}

	next := state.Clone()
	next.TotalXP = max(next.TotalXP+amount, 0)

	message := fmt.Sprintf("+%d XP earned!", amount)
	if amount < 0 {
		message = fmt.Sprintf("%d XP (penalty)", amount)
	}

	return next, []Event{
		{Kind: EventXP, XP: amount},
		{Kind: EventNotification, Message: message},
	}
}

// EarnLearningXP credits amount to the total XP and to the learning XP.
func EarnLearningXP(state State, amount int) (State, []Event) {
	next, events := EarnXP(state, amount)
	if amount == 0 {
		return next, events
	}

	next.LearningXP = max(next.LearningXP+amount, 0)
	return next, events
}
