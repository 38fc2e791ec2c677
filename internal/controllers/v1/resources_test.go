package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/cashfy/backend/internal/controllers/v1"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestIncomeSources() {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/income-sources", v1.IncomeSourceEditable{
		Name:           "Salary",
		ExpectedAmount: decimal.NewFromInt(5200),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var created v1.IncomeSourceResponse
	test.DecodeResponse(suite.T(), &recorder, &created)
	suite.Assert().Equal(models.DefaultIncomeSourceColor, created.Data.Color)

	recorder = suite.request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{"color": "#f97316"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.IncomeSourceResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal("#f97316", updated.Data.Color)
	suite.Assert().Equal("Salary", updated.Data.Name)

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/income-sources", "")
	var list v1.IncomeSourceListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().True(list.Data[0].ExpectedAmount.Equal(decimal.NewFromInt(5200)))

	recorder = suite.request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestIncomeSourcesInvalid() {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/income-sources", v1.IncomeSourceEditable{
		Name:           "Freelance",
		ExpectedAmount: decimal.NewFromInt(-1),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrIncomeSourceAmountNegative.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestProjects() {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/projects", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"data": [], "error": null}`, recorder.Body.String())

	recorder = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/projects", v1.ProjectEditable{Name: "Kitchen renovation"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/projects", v1.ProjectEditable{Name: "  "})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrProjectNameEmpty.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/projects", "")
	var list v1.ProjectListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal("Kitchen renovation", list.Data[0].Name)
}

func (suite *TestSuiteStandard) TestCategoryRules() {
	for _, rule := range []v1.CategoryRuleEditable{
		{Priority: 1, Match: "*market*", Category: "Food"},
		{Priority: 0, Match: "*uber*", Category: "Transport"},
	} {
		recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/category-rules", rule)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	}

	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/category-rules", "")
	var list v1.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal("*uber*", list.Data[0].Match, "rules are ordered by priority")

	url := fmt.Sprintf("http://example.com/v1/category-rules/%s", list.Data[1].ID)
	recorder = suite.request(suite.T(), http.MethodPatch, url, map[string]any{"category": "Groceries"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.CategoryRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal("Groceries", updated.Data.Category)
	suite.Assert().Equal("*market*", updated.Data.Match)

	recorder = suite.request(suite.T(), http.MethodPatch, url, map[string]any{"match": ""})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(suite.T(), http.MethodDelete, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(suite.T(), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryRulesAreScopedToUser() {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/category-rules", v1.CategoryRuleEditable{Match: "*gym*", Category: "Health"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var created v1.CategoryRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &created)

	other := map[string]string{"Authorization": "Bearer " + suite.login("other@example.com")}

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, fmt.Sprintf("http://example.com/v1/category-rules/%s", created.Data.ID), "", other)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/category-rules", "", other)
	var list v1.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Data, 0)
}
