package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule sets the category of new transactions that do not have one.
//
// Match is a glob pattern that is matched against the description of the
// transaction, ignoring case.
type CategoryRule struct {
	DefaultModel
	UserID   uuid.UUID `json:"-" gorm:"index"`
	Priority uint      `json:"priority"`
	Match    string    `json:"match"`
	Category string    `json:"category"`
}

func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	r.Category = strings.TrimSpace(r.Category)

	if r.Match == "" {
		return ErrCategoryRuleMatchEmpty
	}

	if r.Category == "" {
		return ErrCategoryRuleCategoryEmpty
	}

	return nil
}

// MatchCategory returns the category of the first rule matching the description.
//
// Rules must be sorted by priority. If no rule matches, DefaultCategory is returned.
func MatchCategory(rules []CategoryRule, description string) string {
	description = strings.ToLower(description)

	for _, rule := range rules {
		if glob.Glob(strings.ToLower(rule.Match), description) {
			return rule.Category
		}
	}

	return DefaultCategory
}
