// Package v1 contains the handlers of the v1 API.
package v1

import (
	"context"

	"github.com/cashfy/backend/internal/advisor"
	"github.com/cashfy/backend/internal/auth"
	"github.com/cashfy/backend/internal/rates"
	"github.com/cashfy/backend/internal/session"
	"github.com/cashfy/backend/internal/shopping"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RateSource provides exchange rates and the bitcoin price.
//
// It is implemented by rates.Cache.
type RateSource interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
	Bitcoin(ctx context.Context) (rates.Quote, error)
}

// Controller holds the services the handlers need.
type Controller struct {
	Sessions *session.Manager
	Auth     *auth.Service
	Rates    RateSource
	Advisor  advisor.Analyzer
	Mailer   *shopping.Mailer
}

// session returns the session of the authenticated user. If it cannot be
// loaded, the error response is written and ok is false.
func (co Controller) session(c *gin.Context) (s *session.Session, ok bool) {
	s, err := co.Sessions.Get(c.Request.Context(), auth.UserID(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return nil, false
	}

	return s, true
}

// RegisterRoutes registers all v1 routes. Everything except the
// authentication endpoints requires a valid token.
func (co Controller) RegisterRoutes(v1 *gin.RouterGroup) {
	co.RegisterAuthRoutes(v1.Group("/auth"))

	authenticated := v1.Group("", co.Auth.Middleware())
	co.RegisterTransactionRoutes(authenticated.Group("/transactions"))
	co.RegisterGoalRoutes(authenticated.Group("/goals"))
	co.RegisterIncomeSourceRoutes(authenticated.Group("/income-sources"))
	co.RegisterProjectRoutes(authenticated.Group("/projects"))
	co.RegisterCategoryRuleRoutes(authenticated.Group("/category-rules"))
	co.RegisterGamificationRoutes(authenticated.Group("/gamification"))
	co.RegisterNotificationRoutes(authenticated.Group("/notifications"))
	co.RegisterLessonRoutes(authenticated.Group("/lessons"))
	co.RegisterShoppingRoutes(authenticated.Group("/shopping-list"))
	co.RegisterSummaryRoutes(authenticated.Group("/summary"))
	co.RegisterCalculatorRoutes(authenticated.Group("/calculators"))
	co.RegisterRateRoutes(authenticated.Group("/rates"))
	co.RegisterAdvisorRoutes(authenticated.Group("/advisor"))
}
