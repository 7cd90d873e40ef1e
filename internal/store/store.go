// Package store implements the in-memory record store backing the
// storefront: users, products, categories, and cart items, keyed by
// generated identifiers and held for the lifetime of the process.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/willowmart/storefront/internal/model"
)

// Store holds every record collection behind a single lock. Products and
// categories keep an insertion-order index so listings and the trending
// prefix are stable across calls.
type Store struct {
	mu          sync.RWMutex
	users       map[string]model.User
	products    map[string]model.Product
	productIDs  []string
	categories  map[string]model.Category
	categoryIDs []string
	cartItems   map[string]model.CartItem
	cartIDs     []string
}

func New() *Store {
	return &Store{
		users:      make(map[string]model.User),
		products:   make(map[string]model.Product),
		categories: make(map[string]model.Category),
		cartItems:  make(map[string]model.CartItem),
	}
}

// CreateUser stores u under a freshly generated id and returns the stored
// record. The store does not enforce username uniqueness; callers that need
// it must check with UserByUsername first.
func (s *Store) CreateUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = uuid.NewString()
	s.users[u.ID] = u
	return u
}

func (s *Store) User(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// UserByUsername scans all users for a matching username.
func (s *Store) UserByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return model.User{}, false
}

// Products returns every product in insertion order.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		out = append(out, s.products[id])
	}
	return out
}

func (s *Store) Product(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

// ProductsByCategory returns every product whose category label matches,
// in insertion order.
func (s *Store) ProductsByCategory(category string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, 0)
	for _, id := range s.productIDs {
		if p := s.products[id]; p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// TrendingProducts returns the first n products in insertion order. This is
// a fixed prefix, not a computed ranking.
func (s *Store) TrendingProducts(n int) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n > len(s.productIDs) {
		n = len(s.productIDs)
	}
	out := make([]model.Product, 0, n)
	for _, id := range s.productIDs[:n] {
		out = append(out, s.products[id])
	}
	return out
}

// Categories returns every category in insertion order.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, 0, len(s.categoryIDs))
	for _, id := range s.categoryIDs {
		out = append(out, s.categories[id])
	}
	return out
}

// CartItems returns every cart item owned by sessionID in insertion order.
func (s *Store) CartItems(sessionID string) []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CartItem, 0)
	for _, id := range s.cartIDs {
		if it := s.cartItems[id]; it.SessionID == sessionID {
			out = append(out, it)
		}
	}
	return out
}

// CartItem returns the cart item with the given id.
func (s *Store) CartItem(id string) (model.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.cartItems[id]
	return it, ok
}

// AddCartItem merges quantity into an existing (productID, sessionID) line
// or inserts a new one. The existence check and the write happen under one
// write lock, so two concurrent adds for the same pair never both insert.
func (s *Store) AddCartItem(sessionID, productID string, quantity int) model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.cartIDs {
		it := s.cartItems[id]
		if it.ProductID == productID && it.SessionID == sessionID {
			it.Quantity += quantity
			s.cartItems[id] = it
			return it
		}
	}
	it := model.CartItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
		SessionID: sessionID,
	}
	s.cartItems[it.ID] = it
	s.cartIDs = append(s.cartIDs, it.ID)
	return it
}

// UpdateCartItem replaces the quantity of the cart item with the given id.
// The second return is false when no such item exists; nothing is written
// in that case.
func (s *Store) UpdateCartItem(id string, quantity int) (model.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.cartItems[id]
	if !ok {
		return model.CartItem{}, false
	}
	it.Quantity = quantity
	s.cartItems[id] = it
	return it, true
}

// RemoveCartItem deletes the cart item with the given id. Removing an id
// that does not exist is a no-op.
func (s *Store) RemoveCartItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cartItems[id]; !ok {
		return
	}
	delete(s.cartItems, id)
	s.dropCartID(id)
}

// ClearCart deletes every cart item owned by sessionID. A session with no
// items is a no-op.
func (s *Store) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cartIDs[:0]
	for _, id := range s.cartIDs {
		if s.cartItems[id].SessionID == sessionID {
			delete(s.cartItems, id)
			continue
		}
		kept = append(kept, id)
	}
	s.cartIDs = kept
}

func (s *Store) dropCartID(id string) {
	for i, v := range s.cartIDs {
		if v == id {
			s.cartIDs = append(s.cartIDs[:i], s.cartIDs[i+1:]...)
			return
		}
	}
}

// Counts reports collection sizes for the metrics endpoint.
func (s *Store) Counts() (users, products, categories, cartItems int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.products), len(s.categories), len(s.cartItems)
}

func (s *Store) insertProduct(p model.Product) {
	p.ID = uuid.NewString()
	s.products[p.ID] = p
	s.productIDs = append(s.productIDs, p.ID)
}

func (s *Store) insertCategory(c model.Category) {
	c.ID = uuid.NewString()
	s.categories[c.ID] = c
	s.categoryIDs = append(s.categoryIDs, c.ID)
}
