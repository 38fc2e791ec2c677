// Package notify keeps the notification feed of a session and forwards
// gamification events to external consumers.
package notify

import (
	"fmt"

	"github.com/cashfy/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// FeedSize is the maximum number of messages kept in a feed.
const FeedSize = 10

// Feed is a list of messages, newest first.
//
// A Feed is not safe for concurrent use.
type Feed struct {
	messages []string
}

// Add prepends a message.
func (f *Feed) Add(messages ...string) {
	f.messages = truncate(append(slices.Clone(messages), f.messages...))
}

// MergeAlerts prepends alerts and removes duplicate messages from the
// whole feed. The first occurrence of a message is kept.
func (f *Feed) MergeAlerts(alerts []string) {
	merged := append(slices.Clone(alerts), f.messages...)

	seen := make(map[string]bool, len(merged))
	unique := merged[:0]
	for _, m := range merged {
		if seen[m] {
			continue
		}
		seen[m] = true
		unique = append(unique, m)
	}

	f.messages = truncate(unique)
}

// Messages returns a copy of the messages.
func (f *Feed) Messages() []string {
	return slices.Clone(f.messages)
}

func truncate(messages []string) []string {
	if len(messages) > FeedSize {
		return messages[:FeedSize]
	}

	return messages
}

var (
	alertFrom = decimal.NewFromInt(90)
	alertTo   = decimal.NewFromInt(100)
)

// GoalAlerts returns a message for every goal with a progress of
// at least 90% that is not completed yet.
func GoalAlerts(goals []models.Goal) []string {
	var alerts []string
	for _, g := range goals {
		progress := g.Progress()
		if progress.LessThan(alertFrom) || progress.GreaterThanOrEqual(alertTo) {
			continue
		}

		alerts = append(alerts, fmt.Sprintf("Goal '%s' is almost complete (%s%%)!", g.Name, progress.Round(0).String()))
	}

	return alerts
}
