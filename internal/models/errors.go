package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors.
var (
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be one of expense, income or investment")
	ErrGoalNameEmpty                = errors.New("the goal name must not be empty")
	ErrGoalTargetNotPositive        = errors.New("the goal target amount must be larger than zero")
	ErrGoalCurrentNegative          = errors.New("the current amount of a goal must not be negative")
	ErrIncomeSourceNameEmpty        = errors.New("the income source name must not be empty")
	ErrIncomeSourceAmountNegative   = errors.New("the expected amount of an income source must not be negative")
	ErrProjectNameEmpty             = errors.New("the project name must not be empty")
	ErrCategoryRuleMatchEmpty       = errors.New("the match pattern of a category rule must not be empty")
	ErrCategoryRuleCategoryEmpty    = errors.New("the category of a category rule must not be empty")
	ErrUserEmailNotUnique           = errors.New("a user with this email address already exists")
	ErrUserEmailEmpty               = errors.New("the email address must not be empty")
)
