package v1

import (
	"net/http"

	"github.com/cashfy/backend/internal/httputil"
	"github.com/cashfy/backend/internal/rates"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ConvertQuery struct {
	Amount string `form:"amount" example:"100"` // Amount to convert, defaults to 1
	From   string `form:"from" example:"USD"`   // ISO 4217 code of the source currency
	To     string `form:"to" example:"BRL"`     // ISO 4217 code of the target currency
}

type ConversionResponse struct {
	Data  *rates.Conversion `json:"data"`                                                    // The conversion
	Error *string           `json:"error" example:"the exchange rate is currently not available"` // The error, if any occurred
}

type QuoteResponse struct {
	Data  *rates.Quote `json:"data"`                                                    // The bitcoin price
	Error *string      `json:"error" example:"the exchange rate is currently not available"` // The error, if any occurred
}

func (co Controller) RegisterRateRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/convert", httputil.OptionsGet)
	r.GET("/convert", co.Convert)
	r.OPTIONS("/bitcoin", httputil.OptionsGet)
	r.GET("/bitcoin", co.GetBitcoin)
}

// @Summary		Convert currency
// @Description	Converts an amount with the current exchange rate
// @Tags			Rates
// @Produce		json
// @Success		200		{object}	ConversionResponse
// @Failure		400		{object}	ConversionResponse
// @Failure		502		{object}	ConversionResponse
// @Param			amount	query		string	false	"Amount, defaults to 1"
// @Param			from	query		string	true	"Source currency"
// @Param			to		query		string	true	"Target currency"
// @Router			/v1/rates/convert [get]
func (co Controller) Convert(c *gin.Context) {
	var query ConvertQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ConversionResponse{Error: &e})
		return
	}

	amount := decimal.NewFromInt(1)
	if query.Amount != "" {
		a, err := decimal.NewFromString(query.Amount)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, ConversionResponse{Error: &e})
			return
		}
		amount = a
	}

	conversion, err := rates.Convert(c.Request.Context(), co.Rates, amount, query.From, query.To)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConversionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ConversionResponse{Data: &conversion})
}

// @Summary		Bitcoin price
// @Description	Returns the bitcoin price in reais and its change over 24 hours
// @Tags			Rates
// @Produce		json
// @Success		200	{object}	QuoteResponse
// @Failure		502	{object}	QuoteResponse
// @Router			/v1/rates/bitcoin [get]
func (co Controller) GetBitcoin(c *gin.Context) {
	quote, err := co.Rates.Bitcoin(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), QuoteResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, QuoteResponse{Data: &quote})
}
