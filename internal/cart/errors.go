package cart

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned when checkout is requested on an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// ErrLineNotFound is returned when a cart line ID does not match any line.
var ErrLineNotFound = errors.New("cart line not found")

// ErrInvalidQuantity is returned when a requested quantity is not positive.
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// InsufficientStockError reports that a requested quantity exceeds the live
// persisted stock, including how much is available and already staged.
type InsufficientStockError struct {
	Barcode   string
	Name      string
	Available int
	InCart    int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (%s): available %d, in cart %d, requested %d",
		e.Name, e.Barcode, e.Available, e.InCart, e.Requested)
}

// ProductMissingError reports that a staged product disappeared from the
// catalog between add-to-cart and checkout.
type ProductMissingError struct {
	Barcode string
	Name    string
}

func (e *ProductMissingError) Error() string {
	return fmt.Sprintf("product %s (%s) no longer exists", e.Name, e.Barcode)
}

// TransactionWriteError reports a ledger write failure during checkout.
// Transactions recorded earlier in the same batch are not rolled back.
type TransactionWriteError struct {
	Barcode string
	Name    string
	Err     error
}

func (e *TransactionWriteError) Error() string {
	return fmt.Sprintf("recording transaction for %s (%s) failed: %v", e.Name, e.Barcode, e.Err)
}

func (e *TransactionWriteError) Unwrap() error { return e.Err }

// SaveProductsError reports that the final stock write of a checkout failed.
// Transactions already written remain in the ledger.
type SaveProductsError struct {
	Err error
}

func (e *SaveProductsError) Error() string {
	return fmt.Sprintf("saving products after checkout failed: %v", e.Err)
}

func (e *SaveProductsError) Unwrap() error { return e.Err }
