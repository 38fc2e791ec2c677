package v1_test

import (
	"fmt"
	"net/http"
	"strings"

	v1 "github.com/cashfy/backend/internal/controllers/v1"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/shopping"
	"github.com/cashfy/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) addShoppingItem(name string, price decimal.Decimal) shopping.Item {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/shopping-list", v1.ShoppingItemEditable{Name: name, Price: price})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ShoppingItemResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return *response.Data
}

func (suite *TestSuiteStandard) shoppingList() v1.ShoppingList {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/shopping-list", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ShoppingListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return *response.Data
}

func (suite *TestSuiteStandard) TestShoppingList() {
	suite.Assert().Len(suite.shoppingList().Items, 0)

	suite.addShoppingItem("Rice 5kg", decimal.NewFromFloat(27.9))
	suite.addShoppingItem("Beans", decimal.NewFromFloat(8.5))
	coffee := suite.addShoppingItem("Coffee", decimal.Zero)

	list := suite.shoppingList()
	suite.Require().Len(list.Items, 3)
	suite.Assert().Equal("Rice 5kg", list.Items[0].Name)
	suite.Assert().True(list.Total.Equal(decimal.NewFromFloat(36.4)), list.Total.String())
	suite.Assert().Equal(1, list.Pending)

	url := fmt.Sprintf("http://example.com/v1/shopping-list/%s", coffee.ID)
	recorder := suite.request(suite.T(), http.MethodPatch, url, map[string]any{"price": "12"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.ShoppingItemResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal("Coffee", updated.Data.Name)
	suite.Assert().True(updated.Data.Price.Equal(decimal.NewFromInt(12)))

	list = suite.shoppingList()
	suite.Assert().Equal(0, list.Pending)
	suite.Assert().True(list.Total.Equal(decimal.NewFromFloat(48.4)))

	recorder = suite.request(suite.T(), http.MethodDelete, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Len(suite.shoppingList().Items, 2)
}

func (suite *TestSuiteStandard) TestShoppingListFails() {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/shopping-list", v1.ShoppingItemEditable{Name: " "})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal(shopping.ErrItemNameEmpty.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))

	recorder = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/shopping-list", v1.ShoppingItemEditable{Name: "Milk", Price: decimal.NewFromInt(-2)})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal(shopping.ErrItemPriceNegative.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))

	unknown := "http://example.com/v1/shopping-list/1f5e3b6e-7c39-4b1b-9a44-0a4b1a4b5b9d"
	recorder = suite.request(suite.T(), http.MethodPatch, unknown, map[string]any{"price": "1"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(suite.T(), http.MethodDelete, unknown, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/shopping-list/conclude", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal(shopping.ErrListEmpty.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestShoppingConclude() {
	suite.addShoppingItem("Rice 5kg", decimal.NewFromFloat(27.9))
	suite.addShoppingItem("Beans", decimal.NewFromFloat(8.5))

	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/shopping-list/conclude", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ShoppingConcludeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.ShoppingListCategory, response.Data.Category)
	suite.Assert().Equal(models.TransactionTypeExpense, response.Data.Type)
	suite.Assert().Equal("Supermarket (2 items)", response.Data.Description)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromFloat(36.4)))

	suite.Assert().Len(suite.shoppingList().Items, 0)

	g := suite.gamification().Data
	suite.Assert().True(g.ShoppingTotal.Equal(decimal.NewFromFloat(36.4)))
	suite.Assert().Equal(50, g.TotalXP)
	suite.Assert().Equal(1, g.Unlocked)

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?category="+models.ShoppingListCategory, "")
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	suite.Assert().Len(transactions.Data, 1)
}

func (suite *TestSuiteStandard) TestShoppingShare() {
	suite.addShoppingItem("Rice 5kg", decimal.NewFromFloat(27.9))
	suite.addShoppingItem("Coffee", decimal.Zero)

	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/shopping-list/share", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ShoppingShareResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Contains(response.Data.Text, "Rice 5kg")
	suite.Assert().Contains(response.Data.Text, "Coffee: ___")
	suite.Assert().True(strings.HasPrefix(response.Data.WhatsAppURL, "https://wa.me/?text="))
}

func (suite *TestSuiteStandard) TestShoppingEmail() {
	recorder := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/shopping-list/email", v1.ShoppingEmailInput{To: "ana@example.com"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusServiceUnavailable)

	suite.co.Mailer = &shopping.Mailer{Host: "localhost", Port: "1", Sender: "Cashfy <no-reply@example.com>"}

	recorder = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/shopping-list/email", v1.ShoppingEmailInput{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/shopping-list/email", v1.ShoppingEmailInput{To: "ana@example.com"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadGateway)
}
