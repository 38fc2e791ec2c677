package v1

import (
	"fmt"
	"time"

	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date        time.Time              `json:"date" example:"2024-07-14T00:00:00Z"`                                                         // Day of the transaction. Defaults to today
	Description string                 `json:"description" example:"Groceries"`                                                             // What the transaction was for
	Amount      decimal.Decimal        `json:"amount" example:"87.5" minimum:"0.00000001" maximum:"999999999999.99999999" default:"0"`    // The amount, always positive
	Category    string                 `json:"category" example:"Food" default:""`                                                          // Set by the category rules if empty
	Type        models.TransactionType `json:"type" example:"expense" enums:"expense,income,investment"`                                    // Type of the transaction
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:        editable.Date,
		Description: editable.Description,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Type:        editable.Type,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:        model.Date,
			Description: model.Description,
			Amount:      model.Amount,
			Category:    model.Category,
			Type:        model.Type,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", baseURL(c), model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The transaction
}

type TransactionQueryFilter struct {
	Month    string `form:"month" example:"2024-07"`     // Transactions of this month in YYYY-MM format
	Type     string `form:"type" example:"expense"`      // By type
	Category string `form:"category" example:"Food"`     // By category, exact match
}

// matcher returns a function that reports if a transaction matches the filter
func (f TransactionQueryFilter) matcher() (func(models.Transaction) bool, error) {
	var month types.Month
	if f.Month != "" {
		m, err := types.ParseMonth(f.Month)
		if err != nil {
			return nil, err
		}
		month = m
	}

	if f.Type != "" && !models.TransactionType(f.Type).Valid() {
		return nil, models.ErrTransactionTypeInvalid
	}

	return func(t models.Transaction) bool {
		if !month.IsZero() && !month.Contains(t.Date) {
			return false
		}

		if f.Type != "" && string(t.Type) != f.Type {
			return false
		}

		return f.Category == "" || t.Category == f.Category
	}, nil
}
