package session

import (
	"github.com/cashfy/backend/internal/gamification"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Gamification is the progress of the user.
type Gamification struct {
	Badges        []gamification.Badge `json:"badges"`
	TotalXP       int                  `json:"totalXp" example:"1350"`
	LearningXP    int                  `json:"learningXp" example:"150"`
	Level         int                  `json:"level" example:"2"`
	NextLevelXP   int                  `json:"nextLevelXp" example:"2000"`
	Unlocked      int                  `json:"unlocked" example:"3"`
	ShoppingTotal decimal.Decimal      `json:"shoppingTotal" example:"412.7"` // Sum of all purchases from the shopping list
}

// Gamification returns badges, XP and level.
func (s *Session) Gamification() Gamification {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state.Clone()

	g := Gamification{
		Badges:        state.Badges,
		TotalXP:       state.TotalXP,
		LearningXP:    state.LearningXP,
		Level:         gamification.Level(state.TotalXP),
		NextLevelXP:   gamification.NextLevelXP(state.TotalXP),
		ShoppingTotal: decimal.Zero,
	}

	for _, b := range state.Badges {
		if b.Unlocked {
			g.Unlocked++
		}
	}

	for _, t := range s.transactions {
		if t.Category == models.ShoppingListCategory && t.Type == models.TransactionTypeExpense {
			g.ShoppingTotal = g.ShoppingTotal.Add(t.Amount)
		}
	}

	return g
}

// Notifications returns the notification feed, newest first.
func (s *Session) Notifications() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.feed.Messages()
}

// PopCelebration removes the oldest pending celebration from the queue
// and returns it. It returns nil if there is none.
func (s *Session) PopCelebration() *gamification.Badge {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.celebrations) == 0 {
		return nil
	}

	b := s.celebrations[0]
	s.celebrations = s.celebrations[1:]
	return &b
}

// Day is the sum of incomes and expenses on a day of a month.
type Day struct {
	Day      int             `json:"day" example:"14"`
	Income   decimal.Decimal `json:"income" example:"0"`
	Expenses decimal.Decimal `json:"expenses" example:"87.5"`
}

// Summary is the overview of a month.
type Summary struct {
	Month       types.Month     `json:"month" example:"2024-07"`
	Income      decimal.Decimal `json:"income" example:"5200"`
	Expenses    decimal.Decimal `json:"expenses" example:"3150.4"`
	Investments decimal.Decimal `json:"investments" example:"800"`
	Result      decimal.Decimal `json:"result" example:"2049.6"` // Income minus expenses
	Days        []Day           `json:"days"`
}

// Summary sums up the transactions of a month.
func (s *Session) Summary(month types.Month) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := Summary{
		Month:       month,
		Income:      decimal.Zero,
		Expenses:    decimal.Zero,
		Investments: decimal.Zero,
		Days:        make([]Day, month.Days()),
	}

	for i := range summary.Days {
		summary.Days[i] = Day{Day: i + 1, Income: decimal.Zero, Expenses: decimal.Zero}
	}

	for _, t := range s.transactions {
		if !month.Contains(t.Date) {
			continue
		}

		day := &summary.Days[t.Date.Day()-1]
		switch t.Type {
		case models.TransactionTypeIncome:
			summary.Income = summary.Income.Add(t.Amount)
			day.Income = day.Income.Add(t.Amount)
		case models.TransactionTypeExpense:
			summary.Expenses = summary.Expenses.Add(t.Amount)
			day.Expenses = day.Expenses.Add(t.Amount)
		case models.TransactionTypeInvestment:
			summary.Investments = summary.Investments.Add(t.Amount)
		}
	}

	summary.Result = summary.Income.Sub(summary.Expenses)
	return summary
}
