package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	v1 "github.com/cashfy/backend/internal/controllers/v1"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTransactions(transactions ...v1.TransactionEditable) []v1.Transaction {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", transactions)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	created := make([]v1.Transaction, 0, len(response.Data))
	for _, r := range response.Data {
		created = append(created, *r.Data)
	}

	return created
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	created := suite.createTransactions(v1.TransactionEditable{
		Date:        time.Date(2024, 7, 14, 18, 30, 0, 0, time.UTC),
		Description: " Groceries ",
		Amount:      decimal.NewFromFloat(87.5),
		Category:    "Food",
		Type:        models.TransactionTypeExpense,
	})

	suite.Require().Len(created, 1)
	t := created[0]
	suite.Assert().Equal("Groceries", t.Description)
	suite.Assert().Equal(time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC), t.Date)
	suite.Assert().True(t.Amount.Equal(decimal.NewFromFloat(87.5)))
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions/%s", t.ID), t.Links.Self)
}

func (suite *TestSuiteStandard) TestTransactionsCreatePartialFailure() {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{
		{Description: "Salary", Amount: decimal.NewFromInt(5200), Type: models.TransactionTypeIncome},
		{Description: "Nothing", Amount: decimal.Zero, Type: models.TransactionTypeExpense},
		{Description: "Gift", Amount: decimal.NewFromInt(10), Type: "present"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().NotNil(response.Data[0].Data)
	suite.Assert().Equal(models.ErrTransactionAmountNotPositive.Error(), *response.Data[1].Error)
	suite.Assert().Equal(models.ErrTransactionTypeInvalid.Error(), *response.Data[2].Error)
}

func (suite *TestSuiteStandard) TestTransactionsCreateBrokenBody() {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", `[{"amount": "12"`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	suite.createTransactions(
		v1.TransactionEditable{Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Description: "Rent", Amount: decimal.NewFromInt(1500), Category: "Housing", Type: models.TransactionTypeExpense},
		v1.TransactionEditable{Date: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), Description: "Salary", Amount: decimal.NewFromInt(5200), Category: "Work", Type: models.TransactionTypeIncome},
		v1.TransactionEditable{Date: time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC), Description: "Groceries", Amount: decimal.NewFromInt(90), Category: "Food", Type: models.TransactionTypeExpense},
	)

	tests := []struct {
		name         string
		query        string
		descriptions []string
	}{
		{"All, newest first", "", []string{"Salary", "Rent", "Groceries"}},
		{"Month", "?month=2024-07", []string{"Salary", "Rent"}},
		{"Type", "?type=expense", []string{"Rent", "Groceries"}},
		{"Category", "?category=Food", []string{"Groceries"}},
		{"Month and type", "?month=2024-06&type=income", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(t, http.MethodGet, "http://example.com/v1/transactions"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)

			descriptions := []string{}
			for _, t := range response.Data {
				descriptions = append(descriptions, t.Description)
			}
			suite.Assert().Equal(tt.descriptions, descriptions)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListInvalidFilter() {
	for _, query := range []string{"?month=2024-13", "?month=July", "?type=present"} {
		recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions"+query, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestTransactionsCategoryRule() {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/category-rules", v1.CategoryRuleEditable{Match: "*uber*", Category: "Transport"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	created := suite.createTransactions(
		v1.TransactionEditable{Description: "Uber ride", Amount: decimal.NewFromInt(23), Type: models.TransactionTypeExpense},
		v1.TransactionEditable{Description: "Uber eats", Amount: decimal.NewFromInt(40), Category: "Food", Type: models.TransactionTypeExpense},
	)

	suite.Assert().Equal("Transport", created[0].Category)
	suite.Assert().Equal("Food", created[1].Category, "explicit categories are kept")
}

func (suite *TestSuiteStandard) TestTransactionsDetail() {
	created := suite.createTransactions(v1.TransactionEditable{Description: "Cinema", Amount: decimal.NewFromInt(40), Category: "Leisure", Type: models.TransactionTypeExpense})[0]

	recorder := suite.request(suite.T(), http.MethodGet, created.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(created.ID, response.Data.ID)

	recorder = suite.request(suite.T(), http.MethodOptions, created.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestTransactionsDetailFails() {
	tests := []struct {
		name   string
		method string
		id     string
		status int
	}{
		{"GET invalid ID", http.MethodGet, "not-a-uuid", http.StatusBadRequest},
		{"GET unknown ID", http.MethodGet, "1f5e3b6e-7c39-4b1b-9a44-0a4b1a4b5b9d", http.StatusNotFound},
		{"OPTIONS unknown ID", http.MethodOptions, "1f5e3b6e-7c39-4b1b-9a44-0a4b1a4b5b9d", http.StatusNotFound},
		{"PATCH unknown ID", http.MethodPatch, "1f5e3b6e-7c39-4b1b-9a44-0a4b1a4b5b9d", http.StatusNotFound},
		{"DELETE unknown ID", http.MethodDelete, "1f5e3b6e-7c39-4b1b-9a44-0a4b1a4b5b9d", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(t, tt.method, "http://example.com/v1/transactions/"+tt.id, `{}`)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	created := suite.createTransactions(v1.TransactionEditable{
		Date:        time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
		Description: "Rnet",
		Amount:      decimal.NewFromInt(1500),
		Category:    "Housing",
		Type:        models.TransactionTypeExpense,
	})[0]

	recorder := suite.request(suite.T(), http.MethodPatch, created.Links.Self, map[string]any{"description": "Rent"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Rent", response.Data.Description)
	suite.Assert().Equal("Housing", response.Data.Category)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(1500)))
	suite.Assert().Equal(time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC), response.Data.Date)

	recorder = suite.request(suite.T(), http.MethodPatch, created.Links.Self, map[string]any{"amount": "-3"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrTransactionAmountNotPositive.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	created := suite.createTransactions(v1.TransactionEditable{Description: "Coffee", Amount: decimal.NewFromInt(6), Type: models.TransactionTypeExpense})[0]

	recorder := suite.request(suite.T(), http.MethodDelete, created.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(suite.T(), http.MethodGet, created.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	suite.Assert().True(strings.HasPrefix(test.DecodeError(suite.T(), recorder.Body.Bytes()), "there is no transaction"))
}

func (suite *TestSuiteStandard) TestTransactionsInvestmentFillsFirstGoal() {
	suite.createGoals(v1.GoalEditable{Name: "Car", TargetAmount: decimal.NewFromInt(1000)})

	suite.createTransactions(v1.TransactionEditable{Description: "Savings", Amount: decimal.NewFromInt(950), Type: models.TransactionTypeInvestment})

	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	var goals v1.GoalListResponse
	test.DecodeResponse(suite.T(), &recorder, &goals)
	suite.Require().Len(goals.Data, 1)
	suite.Assert().True(goals.Data[0].CurrentAmount.Equal(decimal.NewFromInt(950)))
	suite.Assert().True(goals.Data[0].Progress.Equal(decimal.NewFromInt(95)))

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/notifications", "")
	var notifications v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &recorder, &notifications)
	suite.Assert().Contains(notifications.Data, "Goal 'Car' is almost complete (95%)!")
}
