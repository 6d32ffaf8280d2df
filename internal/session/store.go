// Package session keeps per-session carts behind explicit IDs instead of
// ambient globals. A cart lives as long as its session and is never shared.
package session

import (
	"sync"

	"github.com/febriandani/kantin-pos/internal/cart"
)

// Store maps session IDs to carts, creating them on demand.
type Store struct {
	mu      sync.Mutex
	carts   map[string]*cart.Cart
	newCart func() *cart.Cart
}

// NewStore creates a store that builds carts with the given factory.
func NewStore(newCart func() *cart.Cart) *Store {
	return &Store{
		carts:   make(map[string]*cart.Cart),
		newCart: newCart,
	}
}

// Cart returns the cart for the session, creating an empty one on first use.
func (s *Store) Cart(sessionID string) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = s.newCart()
		s.carts[sessionID] = c
	}
	return c
}

// Drop discards the session's cart, if any.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
