package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/febriandani/kantin-pos/internal/models"
)

// PostgresTransactionRepository stores the sales ledger in a database table.
// The TRX id scheme is kept identical to the CSV ledger so receipts stay
// stable when switching drivers.
type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func (r *PostgresTransactionRepository) GetAll() ([]models.Transaction, error) {
	query := `SELECT transaction_id, ts, barcode_id, product_name, quantity, unit_price, total, profit
		FROM transactions ORDER BY transaction_id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Timestamp, &t.Barcode, &t.ProductName, &t.Quantity, &t.UnitPrice, &t.Total, &t.Profit); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *PostgresTransactionRepository) Record(barcode, productName string, quantity, unitPrice, unitCost int) (models.Transaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var lastID string
	err := r.db.QueryRowContext(ctx, `SELECT transaction_id FROM transactions ORDER BY transaction_id DESC LIMIT 1`).Scan(&lastID)
	next := "TRX00001"
	if err == nil {
		if n, convErr := strconv.Atoi(strings.TrimPrefix(lastID, "TRX")); convErr == nil {
			next = fmt.Sprintf("TRX%05d", n+1)
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, err
	}

	t := models.Transaction{
		ID:          next,
		Timestamp:   time.Now().Format(timeLayout),
		Barcode:     barcode,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       quantity * unitPrice,
		Profit:      quantity * (unitPrice - unitCost),
	}

	query := `INSERT INTO transactions (transaction_id, ts, barcode_id, product_name, quantity, unit_price, total, profit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.db.ExecContext(ctx, query, t.ID, t.Timestamp, t.Barcode, t.ProductName, t.Quantity, t.UnitPrice, t.Total, t.Profit); err != nil {
		return models.Transaction{}, err
	}
	return t, nil
}
