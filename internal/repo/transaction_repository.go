package repo

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/febriandani/kantin-pos/internal/models"
)

// timeLayout is the timestamp format used in both ledger files.
const timeLayout = "2006-01-02 15:04:05"

// TransactionRepository defines the interface for the append-only sales
// ledger. Rows are immutable once recorded.
type TransactionRepository interface {
	GetAll() ([]models.Transaction, error)
	// Record computes the next sequential transaction ID, total and profit,
	// appends the row and persists it.
	Record(barcode, productName string, quantity, unitPrice, unitCost int) (models.Transaction, error)
}

// nextTransactionID derives the next ID from the last existing row, in the
// form TRX + 5-digit zero-padded counter. An empty ledger starts at TRX00001.
func nextTransactionID(transactions []models.Transaction) string {
	if len(transactions) == 0 {
		return "TRX00001"
	}
	last := transactions[len(transactions)-1].ID
	n, err := strconv.Atoi(strings.TrimPrefix(last, "TRX"))
	if err != nil {
		n = len(transactions)
	}
	return fmt.Sprintf("TRX%05d", n+1)
}

// buildTransaction assembles a new ledger row with computed total and profit.
func buildTransaction(existing []models.Transaction, barcode, productName string, quantity, unitPrice, unitCost int) models.Transaction {
	return models.Transaction{
		ID:          nextTransactionID(existing),
		Timestamp:   time.Now().Format(timeLayout),
		Barcode:     barcode,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       quantity * unitPrice,
		Profit:      quantity * (unitPrice - unitCost),
	}
}
