// Package shopping implements the shopping list that turns planned
// purchases into a single expense.
package shopping

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var (
	ErrItemNameEmpty     = errors.New("the item name must not be empty")
	ErrItemPriceNegative = errors.New("the item price must not be negative")
	ErrItemNotFound      = errors.New("there is no item with this id on the shopping list")
	ErrListEmpty         = errors.New("the shopping list is empty")
	ErrTotalNotPositive  = errors.New("the total of the shopping list must be larger than zero")
)

// Item is an entry of the shopping list. A price of zero means the
// price is not known yet.
type Item struct {
	ID    uuid.UUID       `json:"id" example:"b44f7ad8-8d1f-4d7e-9b5a-1c2b4b8a3a01"`
	Name  string          `json:"name" example:"Rice 5kg"`
	Price decimal.Decimal `json:"price" example:"27.9"`
}

func (i *Item) validate() error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return ErrItemNameEmpty
	}

	if i.Price.IsNegative() {
		return ErrItemPriceNegative
	}

	return nil
}

// List is a shopping list. It is not safe for concurrent use.
type List struct {
	items []Item
}

// Add appends an item.
func (l *List) Add(name string, price decimal.Decimal) (Item, error) {
	item := Item{ID: uuid.New(), Name: name, Price: price}
	if err := item.validate(); err != nil {
		return Item{}, err
	}

	l.items = append(l.items, item)
	return item, nil
}

// Update replaces name and price of an item.
func (l *List) Update(id uuid.UUID, name string, price decimal.Decimal) (Item, error) {
	i := l.index(id)
	if i < 0 {
		return Item{}, ErrItemNotFound
	}

	item := Item{ID: id, Name: name, Price: price}
	if err := item.validate(); err != nil {
		return Item{}, err
	}

	l.items[i] = item
	return item, nil
}

// Remove deletes an item.
func (l *List) Remove(id uuid.UUID) error {
	i := l.index(id)
	if i < 0 {
		return ErrItemNotFound
	}

	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// Items returns a copy of all items.
func (l *List) Items() []Item {
	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Total returns the sum of all prices.
func (l *List) Total() decimal.Decimal {
	total := decimal.Zero
	for _, i := range l.items {
		total = total.Add(i.Price)
	}

	return total
}

// Pending returns the number of items without a price.
func (l *List) Pending() int {
	n := 0
	for _, i := range l.items {
		if i.Price.IsZero() {
			n++
		}
	}

	return n
}

// Clear removes all items.
func (l *List) Clear() {
	l.items = nil
}

func (l *List) index(id uuid.UUID) int {
	return slices.IndexFunc(l.items, func(i Item) bool { return i.ID == id })
}
