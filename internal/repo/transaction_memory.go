package repo

import (
	"sync"

	"github.com/febriandani/kantin-pos/internal/models"
)

// InMemoryTransactionRepository is an in-memory implementation of
// TransactionRepository.
type InMemoryTransactionRepository struct {
	mu           sync.Mutex
	transactions []models.Transaction
	failRecord   error
}

// NewInMemoryTransactionRepository creates a new instance of InMemoryTransactionRepository.
func NewInMemoryTransactionRepository() *InMemoryTransactionRepository {
	return &InMemoryTransactionRepository{transactions: []models.Transaction{}}
}

// GetAll retrieves all transactions in insertion order.
func (r *InMemoryTransactionRepository) GetAll() ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

// Record appends a new transaction with a derived sequential ID.
func (r *InMemoryTransactionRepository) Record(barcode, productName string, quantity, unitPrice, unitCost int) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failRecord != nil {
		return models.Transaction{}, r.failRecord
	}
	t := buildTransaction(r.transactions, barcode, productName, quantity, unitPrice, unitCost)
	r.transactions = append(r.transactions, t)
	return t, nil
}

// FailNextRecords makes every subsequent Record call return err, until called
// again with nil. Test helper for checkout failure paths.
func (r *InMemoryTransactionRepository) FailNextRecords(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failRecord = err
}

// Clear empties the repository. Test helper.
func (r *InMemoryTransactionRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = []models.Transaction{}
}
