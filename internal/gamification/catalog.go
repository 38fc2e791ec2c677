package gamification

import (
	"fmt"

	"github.com/cashfy/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Snapshot is the activity of a user at the time of an evaluation.
type Snapshot struct {
	Transactions []models.Transaction
	Goals        []models.Goal
	LearningXP   int
}

// Reward granted per purchase recorded from the shopping list.
const PurchaseXP = 50

var (
	highIncomeThreshold = decimal.NewFromInt(5000)
	safeGuardThreshold  = decimal.NewFromInt(10000)
)

// definition describes a badge of the catalog.
//
// display recomputes values shown on the badge from the snapshot. It is
// called on every evaluation, independent of the unlock state.
//
// Badges with creditOnUnlock false do not add their reward to the total
// XP when they are unlocked. Their XP is credited by the actions that
// make progress towards them.
type definition struct {
	Badge
	unlocked       func(Snapshot) bool
	display        func(Snapshot, *Badge)
	creditOnUnlock bool
}

var catalog = []definition{
	{
		Badge:          Badge{ID: BadgeFirstGoal, Title: "Dreamer", Description: "Created the first financial goal.", Icon: "target", Color: "bronze", XPReward: 100},
		unlocked:       func(s Snapshot) bool { return len(s.Goals) > 0 },
		creditOnUnlock: true,
	},
	{
		Badge: Badge{ID: BadgeFirstInvestment, Title: "Beginner Investor", Description: "Recorded the first investment.", Icon: "rocket", Color: "blue", XPReward: 150},
		unlocked: func(s Snapshot) bool {
			return countTransactions(s, func(t models.Transaction) bool { return t.Type == models.TransactionTypeInvestment }) > 0
		},
		creditOnUnlock: true,
	},
	{
		Badge: Badge{ID: BadgeGoalCompleted, Title: "Achiever", Description: "Reached 100% of a financial goal.", Icon: "trophy", Color: "gold", XPReward: 500},
		unlocked: func(s Snapshot) bool {
			for _, g := range s.Goals {
				if g.Completed() {
					return true
				}
			}
			return false
		},
		creditOnUnlock: true,
	},
	{
		Badge: Badge{ID: BadgeSaver, Title: "Frequent Saver", Description: "Recorded 5 income transactions.", Icon: "medal", Color: "silver", XPReward: 200},
		unlocked: func(s Snapshot) bool {
			return countTransactions(s, func(t models.Transaction) bool { return t.Type == models.TransactionTypeIncome }) >= 5
		},
		creditOnUnlock: true,
	},
	{
		Badge: Badge{ID: BadgeHighIncome, Title: "Entrepreneur", Description: "Recorded a single income above R$ 5,000.", Icon: "star", Color: "purple", XPReward: 1000},
		unlocked: func(s Snapshot) bool {
			return countTransactions(s, func(t models.Transaction) bool {
				return t.Type == models.TransactionTypeIncome && t.Amount.GreaterThan(highIncomeThreshold)
			}) > 0
		},
		creditOnUnlock: true,
	},
	{
		Badge: Badge{ID: BadgeSafeGuard, Title: "Protected", Description: "Saved R$ 10,000 across all goals.", Icon: "shield", Color: "blue", XPReward: 300},
		unlocked: func(s Snapshot) bool {
			saved := decimal.Zero
			for _, g := range s.Goals {
				saved = saved.Add(g.CurrentAmount)
			}
			return saved.GreaterThanOrEqual(safeGuardThreshold)
		},
		creditOnUnlock: true,
	},
	{
		Badge:    Badge{ID: BadgeShopper, Title: "Shopper", Description: "Made planned purchases with the shopping list.", Icon: "shopping-cart", Color: "bronze", XPReward: PurchaseXP},
		unlocked: func(s Snapshot) bool { return purchases(s) > 0 },
		display: func(s Snapshot, b *Badge) {
			if n := purchases(s); n > 0 {
				b.XPReward = n * PurchaseXP
			}
		},
	},
	{
		Badge:    Badge{ID: BadgeApprentice, Title: "Apprentice", Description: "Earned 0 XP learning.", Icon: "book", Color: "blue", XPReward: 50},
		unlocked: func(s Snapshot) bool { return s.LearningXP >= 50 },
		display: func(s Snapshot, b *Badge) {
			b.Description = fmt.Sprintf("Earned %d XP learning.", s.LearningXP)
			if s.LearningXP > 0 {
				b.XPReward = s.LearningXP
			}
		},
	},
}

// Catalog returns all badges in their initial, locked state.
func Catalog() []Badge {
	badges := make([]Badge, 0, len(catalog))
	for _, d := range catalog {
		badges = append(badges, d.Badge)
	}

	return badges
}

func lookup(id BadgeID) (definition, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}

	return definition{}, false
}

func countTransactions(s Snapshot, match func(models.Transaction) bool) int {
	n := 0
	for _, t := range s.Transactions {
		if match(t) {
			n++
		}
	}

	return n
}

func purchases(s Snapshot) int {
	return countTransactions(s, func(t models.Transaction) bool {
		return t.Category == models.ShoppingListCategory
	})
}
