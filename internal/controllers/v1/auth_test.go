package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/cashfy/backend/internal/controllers/v1"
	"github.com/cashfy/backend/test"
)

func (suite *TestSuiteStandard) TestRegister() {
	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterInput{
		Email:    "Bruno@Example.com ",
		Name:     "Bruno",
		Password: "a long password",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("bruno@example.com", response.Data.Email)
	suite.Assert().NotContains(recorder.Body.String(), "passwordHash")
}

func (suite *TestSuiteStandard) TestRegisterFails() {
	tests := []struct {
		name   string
		input  any
		status int
	}{
		{"Short password", v1.RegisterInput{Email: "c@example.com", Password: "short"}, http.StatusBadRequest},
		{"No email", v1.RegisterInput{Password: "a long password"}, http.StatusBadRequest},
		{"Broken body", `{"email": "c@example.com"`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.co, http.MethodPost, "http://example.com/v1/auth/register", tt.input)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterDuplicate() {
	input := v1.RegisterInput{Email: "dup@example.com", Password: "a long password"}

	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/auth/register", input)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/auth/register", input)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
	suite.Assert().Equal("a user with this email address already exists", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestLogin() {
	suite.login("eva@example.com")

	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/auth/login", v1.LoginInput{
		Email:    "eva@example.com",
		Password: "correct horse",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LoginResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotEmpty(response.Data.Token)
	suite.Assert().Equal("eva@example.com", response.Data.User.Email)

	recorder = test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/auth/login", v1.LoginInput{
		Email:    "eva@example.com",
		Password: "wrong horse",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
	suite.Assert().Equal("the email address or password is not correct", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestUnauthenticated() {
	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/goals", "", map[string]string{"Authorization": "Bearer not-a-token"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
	suite.Assert().Equal("the token is invalid or expired", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}
