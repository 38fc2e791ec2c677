package v1

import (
	"net/http"

	"github.com/cashfy/backend/internal/advisor"
	"github.com/cashfy/backend/internal/httputil"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type AnalysisInput struct {
	Month string `json:"month" example:"2024-07"` // Only analyze transactions of this month. All transactions are used if empty.
}

type AnalysisResponse struct {
	Data  *advisor.Analysis `json:"data"`                                                 // The analysis, null if the advisor is not available
	Error *string           `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}

func (co Controller) RegisterAdvisorRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/analysis", httputil.OptionsPost)
	r.POST("/analysis", co.Analyze)
}

// @Summary		Financial analysis
// @Description	Analyzes the finances of the user with a language model. The 50 most recent transactions are used.
// @Tags			Advisor
// @Accept			json
// @Produce		json
// @Success		200		{object}	AnalysisResponse
// @Failure		400		{object}	AnalysisResponse
// @Param			input	body		AnalysisInput	false	"Input"
// @Router			/v1/advisor/analysis [post]
func (co Controller) Analyze(c *gin.Context) {
	var input AnalysisInput
	if c.Request.ContentLength != 0 {
		if err := httputil.BindData(c, &input); err != nil {
			e := err.Error()
			c.JSON(status(err), AnalysisResponse{Error: &e})
			return
		}
	}

	var month types.Month
	if input.Month != "" {
		m, err := types.ParseMonth(input.Month)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, AnalysisResponse{Error: &e})
			return
		}
		month = m
	}

	s, ok := co.session(c)
	if !ok {
		return
	}

	transactions := s.Transactions()
	if !month.IsZero() {
		filtered := []models.Transaction{}
		for _, t := range transactions {
			if month.Contains(t.Date) {
				filtered = append(filtered, t)
			}
		}
		transactions = filtered
	}

	analysis, err := co.Advisor.Analyze(c.Request.Context(), advisor.Input{
		Transactions:  transactions,
		IncomeSources: s.IncomeSources(),
		Goals:         s.Goals(),
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{Data: analysis})
}
