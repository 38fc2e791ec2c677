package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings goal.
type Goal struct {
	DefaultModel
	UserID        uuid.UUID       `json:"-" gorm:"index"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(20,8)"`
	Deadline      *time.Time      `json:"deadline"`
}

// Completed reports if the current amount reached the target.
func (g Goal) Completed() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Progress returns the progress towards the target in percent.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}

// Normalize trims the name.
func (g *Goal) Normalize() {
	g.Name = strings.TrimSpace(g.Name)
}

// Validate checks the goal for invalid values.
func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrGoalNameEmpty
	}

	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}

	return nil
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Normalize()
	return g.Validate()
}
