package repo

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/febriandani/kantin-pos/internal/models"
)

// CSVProductRepository persists the product table as a flat CSV file. Every
// operation is a whole-table read-modify-write; concurrent processes are not
// coordinated (last write wins at file granularity).
type CSVProductRepository struct {
	mu   sync.Mutex
	path string
	// barcodeImageDir, when set, holds generated barcode images named
	// <barcode>.png that are removed together with their product.
	barcodeImageDir string
}

// NewCSVProductRepository creates a repository backed by the file at path.
func NewCSVProductRepository(path string) *CSVProductRepository {
	return &CSVProductRepository{path: path}
}

// SetBarcodeImageDir configures where generated barcode images live.
func (r *CSVProductRepository) SetBarcodeImageDir(dir string) {
	r.barcodeImageDir = dir
}

// load reads the whole table. A missing file is created with the canonical
// header; any read error degrades to an empty table.
func (r *CSVProductRepository) load() []models.Product {
	if err := ensureCSVFile(r.path, productColumns); err != nil {
		log.Printf("products file init failed: %v", err)
		return []models.Product{}
	}
	rows, err := readCSVFile(r.path)
	if err != nil {
		log.Printf("loading products failed: %v", err)
		return []models.Product{}
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(productColumns) {
			continue
		}
		stock, _ := strconv.Atoi(row[3])
		cost, _ := strconv.Atoi(row[4])
		price, _ := strconv.Atoi(row[5])
		products = append(products, models.Product{
			Barcode:   row[0],
			Name:      row[1],
			Category:  row[2],
			Stock:     stock,
			Cost:      cost,
			Price:     price,
			CreatedAt: row[6],
		})
	}
	return products
}

// save overwrites the products file wholesale.
func (r *CSVProductRepository) save(products []models.Product) error {
	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{
			p.Barcode, p.Name, p.Category,
			strconv.Itoa(p.Stock), strconv.Itoa(p.Cost), strconv.Itoa(p.Price),
			p.CreatedAt,
		}
	}
	return writeCSVFile(r.path, productColumns, rows)
}

// Create appends a new product, stamping its creation time.
func (r *CSVProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.load()
	for _, p := range products {
		if p.Barcode == product.Barcode {
			return models.Product{}, ErrDuplicateBarcode
		}
	}
	if product.CreatedAt == "" {
		product.CreatedAt = time.Now().Format(timeLayout)
	}
	products = append(products, product)
	if err := r.save(products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// GetAll retrieves the full product table.
func (r *CSVProductRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

// GetByBarcode retrieves a single product.
func (r *CSVProductRepository) GetByBarcode(barcode string) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.load() {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update overwrites all mutable fields of an existing product in place.
func (r *CSVProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.load()
	for i, p := range products {
		if p.Barcode == product.Barcode {
			if product.CreatedAt == "" {
				product.CreatedAt = p.CreatedAt
			}
			products[i] = product
			if err := r.save(products); err != nil {
				return models.Product{}, err
			}
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes the product row and, best effort, its generated barcode image.
func (r *CSVProductRepository) Delete(barcode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.load()
	for i, p := range products {
		if p.Barcode == barcode {
			products = append(products[:i], products[i+1:]...)
			if err := r.save(products); err != nil {
				return err
			}
			if r.barcodeImageDir != "" {
				image := filepath.Join(r.barcodeImageDir, barcode+".png")
				if err := os.Remove(image); err != nil && !os.IsNotExist(err) {
					log.Printf("removing barcode image %s failed: %v", image, err)
				}
			}
			return nil
		}
	}
	return ErrProductNotFound
}

// Search matches keyword case-insensitively against name or barcode. An empty
// keyword returns the full table.
func (r *CSVProductRepository) Search(keyword string) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.load()
	if keyword == "" {
		return products, nil
	}
	kw := strings.ToLower(keyword)
	matched := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), kw) || strings.Contains(strings.ToLower(p.Barcode), kw) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// AddStock increments the stock of the given product and persists the table.
func (r *CSVProductRepository) AddStock(barcode string, amount int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.load()
	for i, p := range products {
		if p.Barcode == barcode {
			products[i].Stock += amount
			if err := r.save(products); err != nil {
				return models.Product{}, err
			}
			return products[i], nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// ReplaceAll overwrites the whole table in a single write.
func (r *CSVProductRepository) ReplaceAll(products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(products)
}
