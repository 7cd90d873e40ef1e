// Package cart implements session-scoped cart semantics over the record
// store: merge-on-insert adds, quantity updates, idempotent removal, and
// derived totals computed with exact decimal arithmetic.
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/willowmart/storefront/internal/errx"
	"github.com/willowmart/storefront/internal/model"
	"github.com/willowmart/storefront/internal/store"
)

type Service struct {
	store   *store.Store
	taxRate decimal.Decimal
}

func New(st *store.Store, taxRate decimal.Decimal) *Service {
	return &Service{store: st, taxRate: taxRate}
}

// Items returns every cart line owned by sessionID, each joined with its
// product. A line whose product is absent from the store is a referential
// integrity violation: products are immutable after seeding, so this must
// never happen under correct operation. The error is surfaced, not dropped.
func (s *Service) Items(sessionID string) ([]model.CartLine, error) {
	items := s.store.CartItems(sessionID)
	lines := make([]model.CartLine, 0, len(items))
	for _, it := range items {
		p, ok := s.store.Product(it.ProductID)
		if !ok {
			err := fmt.Errorf("cart item %s references missing product %s", it.ID, it.ProductID)
			return nil, errx.Integrity(err, "cart integrity violation")
		}
		lines = append(lines, model.CartLine{CartItem: it, Product: p})
	}
	return lines, nil
}

// Add merges quantity into the session's existing line for productID, or
// inserts a new line. Quantity must be at least 1. Product existence is not
// checked here; reads perform the integrity check instead.
func (s *Service) Add(sessionID, productID string, quantity int) (model.CartItem, error) {
	if productID == "" {
		return model.CartItem{}, errx.Validation("productId is required")
	}
	if quantity < 1 {
		return model.CartItem{}, errx.Validation("quantity must be a positive integer")
	}
	return s.store.AddCartItem(sessionID, productID, quantity), nil
}

// UpdateQuantity sets the quantity of the cart item with the given id.
// Quantity 0 removes the item; the returned bool reports removal. Negative
// quantities are rejected without touching the store.
func (s *Service) UpdateQuantity(id string, quantity int) (model.CartItem, bool, error) {
	if quantity < 0 {
		return model.CartItem{}, false, errx.Validation("quantity must be a non-negative integer")
	}
	if quantity == 0 {
		// equivalent to Remove, including its idempotency
		s.store.RemoveCartItem(id)
		return model.CartItem{}, true, nil
	}
	it, ok := s.store.UpdateCartItem(id, quantity)
	if !ok {
		return model.CartItem{}, false, errx.NotFound("cart item not found")
	}
	return it, false, nil
}

// Remove deletes the cart item with the given id. Removing an id that is
// already gone is not an error.
func (s *Service) Remove(id string) {
	s.store.RemoveCartItem(id)
}

// Clear deletes every cart item owned by sessionID.
func (s *Service) Clear(sessionID string) {
	s.store.ClearCart(sessionID)
}

// Summary returns the derived aggregates for the session's cart.
func (s *Service) Summary(sessionID string) (Summary, error) {
	lines, err := s.Items(sessionID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(lines, s.taxRate)
}
