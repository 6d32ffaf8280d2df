package repo

import (
	"strings"
	"sync"

	"github.com/febriandani/kantin-pos/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used in tests and as the "memory" storage driver.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: []models.Product{}}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Barcode == product.Barcode {
			return models.Product{}, ErrDuplicateBarcode
		}
	}
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByBarcode retrieves a product by its barcode.
func (r *InMemoryProductRepository) GetByBarcode(barcode string) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.Barcode == product.Barcode {
			if product.CreatedAt == "" {
				product.CreatedAt = p.CreatedAt
			}
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its barcode.
func (r *InMemoryProductRepository) Delete(barcode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.Barcode == barcode {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Search matches keyword case-insensitively against name or barcode.
func (r *InMemoryProductRepository) Search(keyword string) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if keyword == "" {
		out := make([]models.Product, len(r.products))
		copy(out, r.products)
		return out, nil
	}
	kw := strings.ToLower(keyword)
	matched := []models.Product{}
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), kw) || strings.Contains(strings.ToLower(p.Barcode), kw) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// AddStock increments the stock of the given product.
func (r *InMemoryProductRepository) AddStock(barcode string, amount int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.Barcode == barcode {
			r.products[i].Stock += amount
			return r.products[i], nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// ReplaceAll overwrites the whole table.
func (r *InMemoryProductRepository) ReplaceAll(products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make([]models.Product, len(products))
	copy(r.products, products)
	return nil
}

// Clear empties the repository. Test helper.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}
