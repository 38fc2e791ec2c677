package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeInvestment TransactionType = "investment"
)

// Valid reports if the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeInvestment:
		return true
	}

	return false
}

// ShoppingListCategory is the category of transactions recorded from a
// concluded shopping list.
const ShoppingListCategory = "shopping-list"

// DefaultCategory is used when no category was set and no category rule matches.
const DefaultCategory = "Other"

// Transaction is a single income, expense or investment.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID       `json:"-" gorm:"index"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
}

// Normalize trims the strings and sets the date to the calendar day
// in UTC. A transaction without a date happens today.
func (t *Transaction) Normalize() {
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)

	if t.Date.IsZero() {
		t.Date = time.Now()
	}

	year, month, day := t.Date.Date()
	t.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Validate checks the transaction for invalid values.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	_ = t.DefaultModel.AfterFind(tx)
	t.Date = t.Date.In(time.UTC)
	return nil
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Normalize()
	return t.Validate()
}

// BeforeCreate sets the category from the category rules
// of the user if it is empty.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	if t.Category != "" {
		return nil
	}

	var rules []CategoryRule
	err := tx.Session(&gorm.Session{NewDB: true}).
		Where(&CategoryRule{UserID: t.UserID}).
		Order("priority ASC, match ASC").
		Find(&rules).Error
	if err != nil {
		return err
	}

	t.Category = MatchCategory(rules, t.Description)
	return nil
}
