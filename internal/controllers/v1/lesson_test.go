package v1_test

import (
	"net/http"

	v1 "github.com/cashfy/backend/internal/controllers/v1"
	"github.com/cashfy/backend/internal/learning"
	"github.com/cashfy/backend/test"
)

func (suite *TestSuiteStandard) TestLessons() {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/lessons", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LessonListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, len(suite.lessons.Lessons))
	suite.Assert().Equal("assets_def", response.Data[0].ID)
	suite.Assert().False(response.Data[0].Completed)
	suite.Assert().NotContains(recorder.Body.String(), `"answer"`)
}

func (suite *TestSuiteStandard) TestLessonsAnswer() {
	url := "http://example.com/v1/lessons/assets_def/answers"

	recorder := suite.request(suite.T(), http.MethodPost, url, v1.AnswerInput{QuestionID: "q1", Option: 2})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var answer v1.AnswerResponse
	test.DecodeResponse(suite.T(), &recorder, &answer)
	suite.Assert().True(answer.Data.Correct)
	suite.Assert().Equal(learning.CorrectXP, answer.Data.XP)
	suite.Assert().False(answer.Data.LessonCompleted)

	recorder = suite.request(suite.T(), http.MethodPost, url, v1.AnswerInput{QuestionID: "q2", Option: 0})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	answer = v1.AnswerResponse{}
	test.DecodeResponse(suite.T(), &recorder, &answer)
	suite.Assert().False(answer.Data.Correct)
	suite.Assert().Equal(1, answer.Data.CorrectOption)
	suite.Assert().Equal(learning.IncorrectXP, answer.Data.XP)
	suite.Assert().True(answer.Data.LessonCompleted)

	g := suite.gamification().Data
	suite.Assert().Equal(30, g.LearningXP)
	suite.Assert().Equal(30, g.TotalXP)

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/lessons", "")
	var lessons v1.LessonListResponse
	test.DecodeResponse(suite.T(), &recorder, &lessons)
	suite.Assert().True(lessons.Data[0].Completed)
}

func (suite *TestSuiteStandard) TestLessonsAnswerFails() {
	tests := []struct {
		name   string
		url    string
		input  v1.AnswerInput
		status int
		err    error
	}{
		{"Unknown lesson", "http://example.com/v1/lessons/astrology/answers", v1.AnswerInput{QuestionID: "q1"}, http.StatusNotFound, learning.ErrLessonNotFound},
		{"Unknown question", "http://example.com/v1/lessons/assets_def/answers", v1.AnswerInput{QuestionID: "q9"}, http.StatusNotFound, learning.ErrQuestionNotFound},
		{"Option out of range", "http://example.com/v1/lessons/assets_def/answers", v1.AnswerInput{QuestionID: "q1", Option: 7}, http.StatusBadRequest, learning.ErrOptionInvalid},
	}

	for _, tt := range tests {
		recorder := suite.request(suite.T(), http.MethodPost, tt.url, tt.input)
		test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		suite.Assert().Equal(tt.err.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()), tt.name)
	}
}
