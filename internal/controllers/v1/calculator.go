package v1

import (
	"net/http"

	"github.com/cashfy/backend/internal/calculator"
	"github.com/cashfy/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type CompoundResponse struct {
	Data  *calculator.Result `json:"data"`                                                       // The projection
	Error *string            `json:"error" example:"amounts, rate and period must not be negative"` // The error, if any occurred
}

func (co Controller) RegisterCalculatorRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/compound-interest", httputil.OptionsPost)
	r.POST("/compound-interest", co.CompoundInterest)
}

// @Summary		Compound interest
// @Description	Projects regular contributions with compound interest. In retirement mode, the period runs from the current age to the retirement age.
// @Tags			Calculators
// @Accept			json
// @Produce		json
// @Success		200		{object}	CompoundResponse
// @Failure		400		{object}	CompoundResponse
// @Param			input	body		calculator.Input	true	"Projection"
// @Router			/v1/calculators/compound-interest [post]
func (co Controller) CompoundInterest(c *gin.Context) {
	var input calculator.Input
	if err := httputil.BindData(c, &input); err != nil {
		e := err.Error()
		c.JSON(status(err), CompoundResponse{Error: &e})
		return
	}

	result, err := calculator.Compound(input)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompoundResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CompoundResponse{Data: &result})
}
