package repo

import (
	"log"
	"strconv"
	"sync"

	"github.com/febriandani/kantin-pos/internal/models"
)

// CSVTransactionRepository persists the sales ledger as a flat CSV file.
// Rows are append-only; the whole file is still rewritten per call, matching
// the products table.
type CSVTransactionRepository struct {
	mu   sync.Mutex
	path string
}

// NewCSVTransactionRepository creates a repository backed by the file at path.
func NewCSVTransactionRepository(path string) *CSVTransactionRepository {
	return &CSVTransactionRepository{path: path}
}

func (r *CSVTransactionRepository) load() []models.Transaction {
	if err := ensureCSVFile(r.path, transactionColumns); err != nil {
		log.Printf("transactions file init failed: %v", err)
		return []models.Transaction{}
	}
	rows, err := readCSVFile(r.path)
	if err != nil {
		log.Printf("loading transactions failed: %v", err)
		return []models.Transaction{}
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(transactionColumns) {
			continue
		}
		qty, _ := strconv.Atoi(row[4])
		unitPrice, _ := strconv.Atoi(row[5])
		total, _ := strconv.Atoi(row[6])
		profit, _ := strconv.Atoi(row[7])
		transactions = append(transactions, models.Transaction{
			ID:          row[0],
			Timestamp:   row[1],
			Barcode:     row[2],
			ProductName: row[3],
			Quantity:    qty,
			UnitPrice:   unitPrice,
			Total:       total,
			Profit:      profit,
		})
	}
	return transactions
}

func (r *CSVTransactionRepository) save(transactions []models.Transaction) error {
	rows := make([][]string, len(transactions))
	for i, t := range transactions {
		rows[i] = []string{
			t.ID, t.Timestamp, t.Barcode, t.ProductName,
			strconv.Itoa(t.Quantity), strconv.Itoa(t.UnitPrice),
			strconv.Itoa(t.Total), strconv.Itoa(t.Profit),
		}
	}
	return writeCSVFile(r.path, transactionColumns, rows)
}

// GetAll retrieves the full ledger in file order.
func (r *CSVTransactionRepository) GetAll() ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

// Record derives the next sequential ID from the last row, computes total and
// profit, appends the row and persists the ledger.
func (r *CSVTransactionRepository) Record(barcode, productName string, quantity, unitPrice, unitCost int) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	transactions := r.load()
	t := buildTransaction(transactions, barcode, productName, quantity, unitPrice, unitCost)
	transactions = append(transactions, t)
	if err := r.save(transactions); err != nil {
		return models.Transaction{}, err
	}
	return t, nil
}
