package repo

import "github.com/febriandani/kantin-pos/internal/models"

// ProductRepository defines the interface for product ledger operations.
// Implementations persist the whole table per call; there is no cross-call
// transactionality.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByBarcode(barcode string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(barcode string) error
	// Search matches keyword case-insensitively against name or barcode.
	// An empty keyword returns the full table.
	Search(keyword string) ([]models.Product, error)
	// AddStock increments the stock of the given product.
	AddStock(barcode string, amount int) (models.Product, error)
	// ReplaceAll overwrites the whole table in a single write. Checkout uses
	// it to persist all stock decrements of a batch at once.
	ReplaceAll(products []models.Product) error
}
