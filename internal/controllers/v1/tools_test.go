package v1_test

import (
	"errors"
	"net/http"
	"time"

	"github.com/cashfy/backend/internal/advisor"
	"github.com/cashfy/backend/internal/calculator"
	v1 "github.com/cashfy/backend/internal/controllers/v1"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/rates"
	"github.com/cashfy/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSummary() {
	suite.createTransactions(
		v1.TransactionEditable{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Description: "Salary", Amount: decimal.NewFromInt(5200), Category: "Work", Type: models.TransactionTypeIncome},
		v1.TransactionEditable{Date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), Description: "Rent", Amount: decimal.NewFromInt(1500), Category: "Housing", Type: models.TransactionTypeExpense},
		v1.TransactionEditable{Date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), Description: "Index fund", Amount: decimal.NewFromInt(800), Category: "Investments", Type: models.TransactionTypeInvestment},
		v1.TransactionEditable{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Description: "Groceries", Amount: decimal.NewFromInt(300), Category: "Food", Type: models.TransactionTypeExpense},
	)

	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/summary?month=2024-02", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	s := response.Data
	suite.Assert().Equal("2024-02", s.Month.String())
	suite.Assert().Len(s.Days, 29)
	suite.Assert().True(s.Income.Equal(decimal.NewFromInt(5200)))
	suite.Assert().True(s.Expenses.Equal(decimal.NewFromInt(1500)))
	suite.Assert().True(s.Investments.Equal(decimal.NewFromInt(800)))
	suite.Assert().True(s.Result.Equal(decimal.NewFromInt(3700)))
	suite.Assert().True(s.Days[28].Expenses.Equal(decimal.NewFromInt(1500)))
	suite.Assert().True(s.Days[0].Income.Equal(decimal.NewFromInt(5200)))

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/summary?month=2024-13", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("the month must have the format YYYY-MM, got '2024-13'", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestCompoundInterest() {
	input := calculator.Input{
		Mode:         calculator.ModeSimple,
		Initial:      decimal.NewFromInt(1000),
		Contribution: decimal.NewFromInt(500),
		Frequency:    calculator.FrequencyMonthly,
		AnnualRate:   decimal.NewFromInt(10),
		Period:       10,
		PeriodUnit:   calculator.PeriodYears,
	}

	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/calculators/compound-interest", input)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CompoundResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.TotalInvested.Equal(decimal.NewFromInt(61000)))
	suite.Assert().Len(response.Data.Points, 11)

	input.Initial = decimal.NewFromInt(-1)
	recorder = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/calculators/compound-interest", input)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal(calculator.ErrNegativeInput.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestRatesConvert() {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/rates/convert?amount=10&from=usd&to=BRL", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ConversionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(rates.Pair{From: "USD", To: "BRL"}, response.Data.Pair)
	suite.Assert().True(response.Data.Result.Equal(decimal.NewFromFloat(52.5)))

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/rates/convert?from=USD&to=BRL", "")
	response = v1.ConversionResponse{}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(1)), "amount defaults to 1")
}

func (suite *TestSuiteStandard) TestRatesConvertFails() {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"Amount", "?amount=ten&from=USD&to=BRL", http.StatusBadRequest},
		{"Currency", "?from=US&to=BRL", http.StatusBadRequest},
		{"Missing currency", "?amount=3", http.StatusBadRequest},
	}

	for _, tt := range tests {
		recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/rates/convert"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
	}

	suite.rates.err = rates.ErrUnavailable
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/rates/convert?from=EUR&to=BRL", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadGateway)
	suite.Assert().Equal(rates.ErrUnavailable.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestRatesBitcoin() {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/rates/bitcoin", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.QuoteResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Price.Equal(decimal.NewFromInt(352310)))
	suite.Assert().True(response.Data.Change24h.Equal(decimal.NewFromFloat(-1.84)))

	suite.rates.err = errors.Join(rates.ErrUnavailable, errors.New("timeout"))
	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/rates/bitcoin", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadGateway)
}

func (suite *TestSuiteStandard) TestAdvisor() {
	suite.createTransactions(
		v1.TransactionEditable{Date: time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC), Description: "Salary", Amount: decimal.NewFromInt(5200), Category: "Work", Type: models.TransactionTypeIncome},
		v1.TransactionEditable{Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), Description: "Salary", Amount: decimal.NewFromInt(5200), Category: "Work", Type: models.TransactionTypeIncome},
	)
	suite.createGoals(v1.GoalEditable{Name: "Emergency fund", TargetAmount: decimal.NewFromInt(15000)})

	// Without analysis, data is null
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/advisor/analysis", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"data": null, "error": null}`, recorder.Body.String())
	suite.Assert().Len(suite.analyzer.input.Transactions, 2)
	suite.Assert().Len(suite.analyzer.input.Goals, 1)

	suite.analyzer.analysis = &advisor.Analysis{Summary: "Your finances are stable.", HealthScore: 72, FinancialStatus: "Good"}
	recorder = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/advisor/analysis", v1.AnalysisInput{Month: "2024-07"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(72, response.Data.HealthScore)
	suite.Require().Len(suite.analyzer.input.Transactions, 1)
	suite.Assert().Equal(7, int(suite.analyzer.input.Transactions[0].Date.Month()))

	recorder = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/advisor/analysis", v1.AnalysisInput{Month: "July"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
