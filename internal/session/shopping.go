package session

import (
	"context"
	"fmt"

	"github.com/cashfy/backend/internal/gamification"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/shopping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingList returns the items of the shopping list.
func (s *Session) ShoppingList() []shopping.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shopping.Items()
}

// AddShoppingItem adds an item to the shopping list.
func (s *Session) AddShoppingItem(name string, price decimal.Decimal) (shopping.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shopping.Add(name, price)
}

// UpdateShoppingItem changes name and price of an item.
func (s *Session) UpdateShoppingItem(id uuid.UUID, name string, price decimal.Decimal) (shopping.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shopping.Update(id, name, price)
}

// RemoveShoppingItem removes an item from the shopping list.
func (s *Session) RemoveShoppingItem(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shopping.Remove(id)
}

// ConcludeShopping records the total of the shopping list as a purchase
// and clears the list. If recording fails, the list is kept.
func (s *Session) ConcludeShopping(ctx context.Context) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shopping.Len() == 0 {
		return models.Transaction{}, shopping.ErrListEmpty
	}

	t, err := s.recordPurchase(ctx, s.shopping.Total(), s.shopping.Len())
	if err != nil {
		return models.Transaction{}, err
	}

	s.shopping.Clear()
	return t, nil
}

// RecordPurchase records an expense for a purchase of items and credits
// the purchase XP.
func (s *Session) RecordPurchase(ctx context.Context, total decimal.Decimal, items int) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.recordPurchase(ctx, total, items)
}

func (s *Session) recordPurchase(ctx context.Context, total decimal.Decimal, items int) (models.Transaction, error) {
	if !total.IsPositive() {
		return models.Transaction{}, shopping.ErrTotalNotPositive
	}

	before := s.state
	t, _, err := s.addTransaction(ctx, models.Transaction{
		Date:        s.now(),
		Description: fmt.Sprintf("Supermarket (%d items)", items),
		Amount:      total,
		Category:    models.ShoppingListCategory,
		Type:        models.TransactionTypeExpense,
	})
	if err != nil {
		return models.Transaction{}, err
	}

	next, events := gamification.EarnXP(s.state, gamification.PurchaseXP)
	s.state = next
	s.apply(ctx, events, sourcePurchase)
	s.feed.Add(fmt.Sprintf("Purchase of %s recorded!", shopping.FormatAmount(total)))

	s.refresh(ctx, before, false)
	return t, nil
}
