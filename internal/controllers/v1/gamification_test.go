package v1_test

import (
	"net/http"

	v1 "github.com/cashfy/backend/internal/controllers/v1"
	"github.com/cashfy/backend/internal/gamification"
	"github.com/cashfy/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) gamification() v1.GamificationResponse {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/gamification", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GamificationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestGamificationNewUser() {
	g := suite.gamification().Data

	suite.Assert().Equal(0, g.TotalXP)
	suite.Assert().Equal(0, g.Unlocked)
	suite.Assert().Len(g.Badges, len(gamification.Catalog()))

	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/gamification/celebration", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"data": null, "error": null}`, recorder.Body.String())

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/notifications", "")
	suite.Assert().JSONEq(`{"data": [], "error": null}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestGamificationFirstGoal() {
	suite.createGoals(v1.GoalEditable{Name: "House", TargetAmount: decimal.NewFromInt(200000)})

	g := suite.gamification().Data
	suite.Assert().Equal(100, g.TotalXP)
	suite.Assert().Equal(1, g.Unlocked)

	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/gamification/celebration", "")
	var celebration v1.CelebrationResponse
	test.DecodeResponse(suite.T(), &recorder, &celebration)
	suite.Require().NotNil(celebration.Data)
	suite.Assert().Equal(gamification.BadgeFirstGoal, celebration.Data.ID)
	suite.Assert().Equal("Dreamer", celebration.Data.Title)

	// The celebration is only shown once
	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/gamification/celebration", "")
	celebration = v1.CelebrationResponse{}
	test.DecodeResponse(suite.T(), &recorder, &celebration)
	suite.Assert().Nil(celebration.Data)

	// A second goal does not unlock anything
	suite.createGoals(v1.GoalEditable{Name: "Boat", TargetAmount: decimal.NewFromInt(90000)})
	suite.Assert().Equal(100, suite.gamification().Data.TotalXP)
}

func (suite *TestSuiteStandard) TestGamificationXP() {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/gamification/xp", v1.XPInput{Amount: 50})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GamificationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(50, response.Data.TotalXP)
	suite.Assert().Equal(0, response.Data.LearningXP)

	recorder = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/gamification/xp", v1.XPInput{Amount: -500})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	response = v1.GamificationResponse{}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(0, response.Data.TotalXP, "XP does not go below zero")

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/notifications", "")
	var notifications v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &recorder, &notifications)
	suite.Assert().Equal([]string{"-500 XP (penalty)", "+50 XP earned!"}, notifications.Data)
}

func (suite *TestSuiteStandard) TestGamificationLearningXP() {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/gamification/learning-xp", v1.XPInput{Amount: 50})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GamificationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(50, response.Data.TotalXP)
	suite.Assert().Equal(50, response.Data.LearningXP)

	for _, b := range response.Data.Badges {
		if b.ID == gamification.BadgeApprentice {
			suite.Assert().True(b.Unlocked)
			suite.Assert().Equal("Earned 50 XP learning.", b.Description)
		}
	}
}

func (suite *TestSuiteStandard) TestGamificationXPBrokenBody() {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/gamification/xp", `{"amount": "lots"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
