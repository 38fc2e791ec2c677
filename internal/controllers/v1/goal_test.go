package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/cashfy/backend/internal/controllers/v1"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/session"
	"github.com/cashfy/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createGoals(goals ...v1.GoalEditable) []v1.Goal {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/goals", goals)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.GoalCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	created := make([]v1.Goal, 0, len(response.Data))
	for _, r := range response.Data {
		created = append(created, *r.Data)
	}

	return created
}

func (suite *TestSuiteStandard) TestGoalsCreate() {
	deadline := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	goal := suite.createGoals(v1.GoalEditable{
		Name:          "New car",
		TargetAmount:  decimal.NewFromInt(30000),
		CurrentAmount: decimal.NewFromInt(1200),
		Deadline:      &deadline,
	})[0]

	suite.Assert().Equal("New car", goal.Name)
	suite.Assert().True(goal.Progress.Equal(decimal.NewFromInt(4)))
	suite.Assert().False(goal.Completed)
	suite.Assert().Equal(goal.Links.Self+"/contributions", goal.Links.Contributions)

	recorder := suite.request(suite.T(), http.MethodGet, goal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestGoalsCreateInvalid() {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{
		{Name: " ", TargetAmount: decimal.NewFromInt(100)},
		{Name: "Trip", TargetAmount: decimal.Zero},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.GoalCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(models.ErrGoalNameEmpty.Error(), *response.Data[0].Error)
	suite.Assert().Equal(models.ErrGoalTargetNotPositive.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestGoalsContribute() {
	goal := suite.createGoals(v1.GoalEditable{Name: "Trip", TargetAmount: decimal.NewFromInt(500)})[0]

	recorder := suite.request(suite.T(), http.MethodPost, goal.Links.Contributions, v1.ContributionInput{Amount: decimal.NewFromInt(500)})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Completed)
	suite.Assert().True(response.Data.CurrentAmount.Equal(decimal.NewFromInt(500)))

	recorder = suite.request(suite.T(), http.MethodPost, goal.Links.Contributions, v1.ContributionInput{Amount: decimal.Zero})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal(session.ErrContributionNotPositive.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))

	recorder = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/goals/1f5e3b6e-7c39-4b1b-9a44-0a4b1a4b5b9d/contributions", v1.ContributionInput{Amount: decimal.NewFromInt(1)})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := suite.createGoals(v1.GoalEditable{Name: "Laptop", TargetAmount: decimal.NewFromInt(8000)})[0]

	recorder := suite.request(suite.T(), http.MethodPatch, goal.Links.Self, map[string]any{"targetAmount": "4000", "currentAmount": "1000"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Laptop", response.Data.Name)
	suite.Assert().True(response.Data.Progress.Equal(decimal.NewFromInt(25)))

	recorder = suite.request(suite.T(), http.MethodPatch, goal.Links.Self, map[string]any{"currentAmount": "-1"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	goal := suite.createGoals(v1.GoalEditable{Name: "Bike", TargetAmount: decimal.NewFromInt(900)})[0]

	recorder := suite.request(suite.T(), http.MethodDelete, goal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)

	recorder = suite.request(suite.T(), http.MethodDelete, goal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
