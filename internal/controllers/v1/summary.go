package v1

import (
	"net/http"
	"time"

	"github.com/cashfy/backend/internal/httputil"
	"github.com/cashfy/backend/internal/session"
	"github.com/gin-gonic/gin"
)

type SummaryResponse struct {
	Data  *session.Summary `json:"data"`                                                         // The summary of the month
	Error *string          `json:"error" example:"the month must have the format YYYY-MM, got '2024-13'"` // The error, if any occurred
}

func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetSummary)
}

// @Summary		Get month summary
// @Description	Returns income, expenses and investments of a month with the sums per day
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Param			month	query		string	false	"The month in YYYY-MM format, defaults to the current month"
// @Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &e})
		return
	}

	month, err := query.month(time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &e})
		return
	}

	s, ok := co.session(c)
	if !ok {
		return
	}

	summary := s.Summary(month)
	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
