package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultIncomeSourceColor is used for income sources without a color.
const DefaultIncomeSourceColor = "#34d399"

type IncomeSource struct {
	DefaultModel
	UserID         uuid.UUID       `json:"-" gorm:"index"`
	Name           string          `json:"name"`
	ExpectedAmount decimal.Decimal `json:"expectedAmount" gorm:"type:DECIMAL(20,8)"`
	Color          string          `json:"color"`
}

func (s *IncomeSource) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Color = strings.TrimSpace(s.Color)

	if s.Color == "" {
		s.Color = DefaultIncomeSourceColor
	}
}

func (s IncomeSource) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrIncomeSourceNameEmpty
	}

	if s.ExpectedAmount.IsNegative() {
		return ErrIncomeSourceAmountNegative
	}

	return nil
}

func (s *IncomeSource) BeforeSave(_ *gorm.DB) error {
	s.Normalize()
	return s.Validate()
}
