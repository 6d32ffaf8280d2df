package cart

import (
	"github.com/febriandani/kantin-pos/internal/models"
)

// Receipt summarizes a successful checkout.
type Receipt struct {
	TransactionIDs []string          `json:"transaction_ids"`
	Totals         models.CartTotals `json:"totals"`
}

// Checkout commits all staged lines: every line is re-validated against a
// single fresh read of the products table, then each line decrements its
// product's stock and appends one ledger row, and the mutated table is
// persisted in one write. Validation failures abort with no mutation and
// leave the cart untouched. Write failures after validation leave the
// already-written ledger rows in place; the inconsistency is accepted rather
// than papered over with a rollback the flat files cannot express.
func (c *Cart) Checkout() (Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return Receipt{}, ErrEmptyCart
	}

	products, err := c.products.GetAll()
	if err != nil {
		return Receipt{}, err
	}

	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.Barcode] = i
	}

	for _, item := range c.items {
		i, ok := index[item.Barcode]
		if !ok {
			return Receipt{}, &ProductMissingError{Barcode: item.Barcode, Name: item.Name}
		}
		if products[i].Stock < item.Quantity {
			return Receipt{}, &InsufficientStockError{
				Barcode:   item.Barcode,
				Name:      item.Name,
				Available: products[i].Stock,
				Requested: item.Quantity,
			}
		}
	}

	receipt := Receipt{Totals: c.totals()}
	for _, item := range c.items {
		products[index[item.Barcode]].Stock -= item.Quantity

		t, err := c.transactions.Record(item.Barcode, item.Name, item.Quantity, item.UnitPrice, item.UnitCost)
		if err != nil {
			return Receipt{}, &TransactionWriteError{Barcode: item.Barcode, Name: item.Name, Err: err}
		}
		receipt.TransactionIDs = append(receipt.TransactionIDs, t.ID)
	}

	if err := c.products.ReplaceAll(products); err != nil {
		return Receipt{}, &SaveProductsError{Err: err}
	}

	c.items = nil
	return receipt, nil
}
