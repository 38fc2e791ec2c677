package v1

import (
	"net/http"
	"time"

	"github.com/cashfy/backend/internal/httputil"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/shopping"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ShoppingItemEditable struct {
	Name  string          `json:"name" example:"Rice 5kg"`           // Name of the item
	Price decimal.Decimal `json:"price" example:"27.9" default:"0"` // Price, zero if not known yet
}

type ShoppingList struct {
	Items   []shopping.Item `json:"items"`                   // Items in the order they were added
	Total   decimal.Decimal `json:"total" example:"36.4"`    // Sum of all prices
	Pending int             `json:"pending" example:"1"`     // Number of items without a price
}

func newShoppingList(items []shopping.Item) ShoppingList {
	l := ShoppingList{Items: items, Total: decimal.Zero}
	if l.Items == nil {
		l.Items = []shopping.Item{}
	}

	for _, i := range items {
		l.Total = l.Total.Add(i.Price)
		if i.Price.IsZero() {
			l.Pending++
		}
	}

	return l
}

type ShoppingListResponse struct {
	Data  *ShoppingList `json:"data"`                                                 // The shopping list
	Error *string       `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}

type ShoppingItemResponse struct {
	Data  *shopping.Item `json:"data"`                                             // The item
	Error *string        `json:"error" example:"the item name must not be empty"` // The error, if any occurred
}

type ShoppingConcludeResponse struct {
	Data  *Transaction `json:"data"`                                        // The recorded expense
	Error *string      `json:"error" example:"the shopping list is empty"` // The error, if any occurred
}

type ShoppingShare struct {
	Text        string `json:"text" example:"🛒 *Cashfy shopping list - 14/07/2024*"`        // The list as a message
	WhatsAppURL string `json:"whatsappUrl" example:"https://wa.me/?text=%F0%9F%9B%92"` // Opens WhatsApp with the message
}

type ShoppingShareResponse struct {
	Data  *ShoppingShare `json:"data"`                                                 // The shareable list
	Error *string        `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}

type ShoppingEmailInput struct {
	To string `json:"to" example:"ana@example.com"` // Recipient of the list
}

func (co Controller) RegisterShoppingRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetShoppingList)
		r.POST("", co.CreateShoppingItem)
	}
	{
		r.OPTIONS("/conclude", httputil.OptionsPost)
		r.POST("/conclude", co.ConcludeShopping)
		r.OPTIONS("/share", httputil.OptionsGet)
		r.GET("/share", co.ShareShoppingList)
		r.OPTIONS("/email", httputil.OptionsPost)
		r.POST("/email", co.EmailShoppingList)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsPatchDelete)
		r.PATCH("/:id", co.UpdateShoppingItem)
		r.DELETE("/:id", co.DeleteShoppingItem)
	}
}

// @Summary		Get shopping list
// @Description	Returns the items of the shopping list with their total
// @Tags			Shopping List
// @Produce		json
// @Success		200	{object}	ShoppingListResponse
// @Router			/v1/shopping-list [get]
func (co Controller) GetShoppingList(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	l := newShoppingList(s.ShoppingList())
	c.JSON(http.StatusOK, ShoppingListResponse{Data: &l})
}

// @Summary		Add item
// @Description	Adds an item to the shopping list
// @Tags			Shopping List
// @Accept			json
// @Produce		json
// @Success		201		{object}	ShoppingItemResponse
// @Failure		400		{object}	ShoppingItemResponse
// @Param			item	body		ShoppingItemEditable	true	"Item"
// @Router			/v1/shopping-list [post]
func (co Controller) CreateShoppingItem(c *gin.Context) {
	var data ShoppingItemEditable
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), ShoppingItemResponse{Error: &e})
		return
	}

	s, ok := co.session(c)
	if !ok {
		return
	}

	item, err := s.AddShoppingItem(data.Name, data.Price)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShoppingItemResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, ShoppingItemResponse{Data: &item})
}

// @Summary		Update item
// @Description	Updates an item. Only values to be updated need to be specified.
// @Tags			Shopping List
// @Accept			json
// @Produce		json
// @Success		200		{object}	ShoppingItemResponse
// @Failure		400		{object}	ShoppingItemResponse
// @Failure		404		{object}	ShoppingItemResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			item	body		ShoppingItemEditable	true	"Item"
// @Router			/v1/shopping-list/{id} [patch]
func (co Controller) UpdateShoppingItem(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), ShoppingItemResponse{Error: &e})
		return
	}

	s, ok := co.session(c)
	if !ok {
		return
	}

	var data ShoppingItemEditable
	found := false
	for _, i := range s.ShoppingList() {
		if i.ID == uri.ID.UUID {
			data = ShoppingItemEditable{Name: i.Name, Price: i.Price}
			found = true
			break
		}
	}

	if !found {
		e := shopping.ErrItemNotFound.Error()
		c.JSON(http.StatusNotFound, ShoppingItemResponse{Error: &e})
		return
	}

	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), ShoppingItemResponse{Error: &e})
		return
	}

	item, err := s.UpdateShoppingItem(uri.ID.UUID, data.Name, data.Price)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShoppingItemResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ShoppingItemResponse{Data: &item})
}

// @Summary		Delete item
// @Description	Removes an item from the shopping list
// @Tags			Shopping List
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shopping-list/{id} [delete]
func (co Controller) DeleteShoppingItem(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	s, ok := co.session(c)
	if !ok {
		return
	}

	if err := s.RemoveShoppingItem(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Conclude shopping
// @Description	Records the total of the list as an expense, awards purchase XP and clears the list
// @Tags			Shopping List
// @Produce		json
// @Success		201	{object}	ShoppingConcludeResponse
// @Failure		400	{object}	ShoppingConcludeResponse
// @Failure		500	{object}	ShoppingConcludeResponse
// @Router			/v1/shopping-list/conclude [post]
func (co Controller) ConcludeShopping(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	transaction, err := s.ConcludeShopping(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShoppingConcludeResponse{Error: &e})
		return
	}

	apiResource := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, ShoppingConcludeResponse{Data: &apiResource})
}

// @Summary		Share shopping list
// @Description	Returns the list as a message and a link to share it on WhatsApp
// @Tags			Shopping List
// @Produce		json
// @Success		200	{object}	ShoppingShareResponse
// @Router			/v1/shopping-list/share [get]
func (co Controller) ShareShoppingList(c *gin.Context) {
	s, ok := co.session(c)
	if !ok {
		return
	}

	text := shopping.Text(s.ShoppingList(), time.Now())
	c.JSON(http.StatusOK, ShoppingShareResponse{Data: &ShoppingShare{
		Text:        text,
		WhatsAppURL: shopping.WhatsAppURL(text),
	}})
}

// @Summary		Email shopping list
// @Description	Sends the shopping list by email
// @Tags			Shopping List
// @Accept			json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		502		{object}	httpError
// @Failure		503		{object}	httpError
// @Param			email	body		ShoppingEmailInput	true	"Recipient"
// @Router			/v1/shopping-list/email [post]
func (co Controller) EmailShoppingList(c *gin.Context) {
	if !co.Mailer.Configured() {
		c.JSON(status(errMailerNotConfigured), httpError{Error: errMailerNotConfigured.Error()})
		return
	}

	var input ShoppingEmailInput
	if err := httputil.BindData(c, &input); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if input.To == "" {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrUserEmailEmpty.Error()})
		return
	}

	s, ok := co.session(c)
	if !ok {
		return
	}

	if err := co.Mailer.Send(input.To, s.ShoppingList(), time.Now()); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
