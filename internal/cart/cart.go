// Package cart implements the session-scoped staging of sale lines and the
// batched checkout that commits them against the ledger.
package cart

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/febriandani/kantin-pos/internal/models"
	"github.com/febriandani/kantin-pos/internal/repo"
)

// Cart stages sale lines for one session. It is not persisted; a restart
// loses staged lines, checkout being the only durable side effect.
type Cart struct {
	mu           sync.Mutex
	products     repo.ProductRepository
	transactions repo.TransactionRepository
	items        []models.CartItem
}

// New creates an empty cart bound to the ledger store.
func New(products repo.ProductRepository, transactions repo.TransactionRepository) *Cart {
	return &Cart{products: products, transactions: transactions}
}

// Add stages quantity units of the product identified by barcode. Stock is
// read fresh from the store; the cumulative staged quantity for one barcode
// may never exceed the live stock at the time of the call. Re-adding a
// barcode raises the existing line's quantity instead of duplicating it.
func (c *Cart) Add(barcode string, quantity int) (models.CartItem, error) {
	if quantity <= 0 {
		return models.CartItem{}, ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	product, err := c.products.GetByBarcode(barcode)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return models.CartItem{}, &ProductMissingError{Barcode: barcode}
		}
		return models.CartItem{}, err
	}

	existing := -1
	inCart := 0
	for i, item := range c.items {
		if item.Barcode == barcode {
			existing = i
			inCart = item.Quantity
			break
		}
	}

	if inCart+quantity > product.Stock {
		return models.CartItem{}, &InsufficientStockError{
			Barcode:   barcode,
			Name:      product.Name,
			Available: product.Stock,
			InCart:    inCart,
			Requested: quantity,
		}
	}

	if existing >= 0 {
		item := &c.items[existing]
		item.Quantity = inCart + quantity
		item.UnitPrice = product.Price
		item.UnitCost = product.Cost
		item.Subtotal = item.Quantity * product.Price
		item.Profit = item.Quantity * (product.Price - product.Cost)
		return *item, nil
	}

	item := models.CartItem{
		LineID:    uuid.NewString(),
		Barcode:   product.Barcode,
		Name:      product.Name,
		Category:  product.Category,
		Quantity:  quantity,
		UnitPrice: product.Price,
		UnitCost:  product.Cost,
		Subtotal:  quantity * product.Price,
		Profit:    quantity * (product.Price - product.Cost),
	}
	c.items = append(c.items, item)
	return item, nil
}

// RemoveLine removes the line with the given stable ID.
func (c *Cart) RemoveLine(lineID string) (models.CartItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.LineID == lineID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return item, nil
		}
	}
	return models.CartItem{}, ErrLineNotFound
}

// Clear unconditionally empties the cart. Clearing an already empty cart is
// a no-op.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Totals reduces the current lines. An empty cart yields the zero value.
func (c *Cart) Totals() models.CartTotals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totals()
}

func (c *Cart) totals() models.CartTotals {
	var t models.CartTotals
	for _, item := range c.items {
		t.Items++
		t.Quantity += item.Quantity
		t.Price += item.Subtotal
		t.Profit += item.Profit
	}
	return t
}
