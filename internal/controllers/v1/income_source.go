package v1

import (
	"fmt"
	"net/http"

	"github.com/cashfy/backend/internal/httputil"
	"github.com/cashfy/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type IncomeSourceEditable struct {
	Name           string          `json:"name" example:"Salary"`                        // Name of the income source
	ExpectedAmount decimal.Decimal `json:"expectedAmount" example:"5200"`                // Expected monthly amount
	Color          string          `json:"color" example:"#34d399" default:"#34d399"` // Display color
}

type IncomeSource struct {
	models.DefaultModel
	IncomeSourceEditable
	Links struct {
		Self string `json:"self" example:"https://example.com/api/v1/income-sources/0f3e2b8c-1f39-4a34-9a5b-1d9b5b0e5c2d"` // The income source itself
	} `json:"links"`
}

func newIncomeSource(c *gin.Context, model models.IncomeSource) IncomeSource {
	i := IncomeSource{
		DefaultModel: model.DefaultModel,
		IncomeSourceEditable: IncomeSourceEditable{
			Name:           model.Name,
			ExpectedAmount: model.ExpectedAmount,
			Color:          model.Color,
		},
	}
	i.Links.Self = fmt.Sprintf("%s/v1/income-sources/%s", baseURL(c), model.ID)

	return i
}

type IncomeSourceListResponse struct {
	Data  []IncomeSource `json:"data"`                                                          // List of income sources
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeSourceResponse struct {
	Data  *IncomeSource `json:"data"`                                                          // The income source
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (co Controller) RegisterIncomeSourceRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetIncomeSources)
		r.POST("", co.CreateIncomeSource)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsPatchDelete)
		r.PATCH("/:id", co.UpdateIncomeSource)
		r.DELETE("/:id", co.DeleteIncomeSource)
	}
}

// @Summary		Get income sources
// @Description	Returns the income sources of the user
// @Tags			Income Sources
// @Produce		json
// @Success		200	{object}	IncomeSourceListResponse
// @Router			/v1/income-sources [get]
func (co Controller) GetIncomeSources(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	data := []IncomeSource{}
	for _, i := range s.IncomeSources() {
		data = append(data, newIncomeSource(c, i))
	}

	c.JSON(http.StatusOK, IncomeSourceListResponse{Data: data})
}

// @Summary		Create income source
// @Description	Creates an income source. The color defaults to green.
// @Tags			Income Sources
// @Accept			json
// @Produce		json
// @Success		201				{object}	IncomeSourceResponse
// @Failure		400				{object}	IncomeSourceResponse
// @Failure		500				{object}	IncomeSourceResponse
// @Param			incomeSource	body		IncomeSourceEditable	true	"Income source"
// @Router			/v1/income-sources [post]
func (co Controller) CreateIncomeSource(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	var data IncomeSourceEditable
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{Error: &e})
		return
	}

	source, err := s.AddIncomeSource(c.Request.Context(), models.IncomeSource{
		Name:           data.Name,
		ExpectedAmount: data.ExpectedAmount,
		Color:          data.Color,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{Error: &e})
		return
	}

	apiResource := newIncomeSource(c, source)
	c.JSON(http.StatusCreated, IncomeSourceResponse{Data: &apiResource})
}

// @Summary		Update income source
// @Description	Updates an income source. Only values to be updated need to be specified.
// @Tags			Income Sources
// @Accept			json
// @Produce		json
// @Success		200				{object}	IncomeSourceResponse
// @Failure		400				{object}	IncomeSourceResponse
// @Failure		404				{object}	IncomeSourceResponse
// @Failure		500				{object}	IncomeSourceResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			incomeSource	body		IncomeSourceEditable	true	"Income source"
// @Router			/v1/income-sources/{id} [patch]
func (co Controller) UpdateIncomeSource(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{Error: &e})
		return
	}

	source, err := s.IncomeSource(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{Error: &e})
		return
	}

	data := newIncomeSource(c, source).IncomeSourceEditable
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{Error: &e})
		return
	}

	source.Name = data.Name
	source.ExpectedAmount = data.ExpectedAmount
	source.Color = data.Color

	source, err = s.UpdateIncomeSource(c.Request.Context(), source)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{Error: &e})
		return
	}

	apiResource := newIncomeSource(c, source)
	c.JSON(http.StatusOK, IncomeSourceResponse{Data: &apiResource})
}

// @Summary		Delete income source
// @Description	Deletes an income source
// @Tags			Income Sources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-sources/{id} [delete]
func (co Controller) DeleteIncomeSource(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := s.RemoveIncomeSource(c.Request.Context(), uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
