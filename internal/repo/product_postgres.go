package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/febriandani/kantin-pos/internal/models"
)

// PostgresProductRepository is the database-backed alternative to the CSV
// store, selected with the "postgres" storage driver.
type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	if p.CreatedAt == "" {
		p.CreatedAt = time.Now().Format(timeLayout)
	}
	query := `INSERT INTO products (barcode_id, name, category, stock, cost, price, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, p.Barcode, p.Name, p.Category, p.Stock, p.Cost, p.Price, p.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") || strings.Contains(err.Error(), "duplicate key") {
			return models.Product{}, ErrDuplicateBarcode
		}
		return models.Product{}, err
	}
	return p, nil
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT barcode_id, name, category, stock, cost, price, created_at FROM products ORDER BY created_at, barcode_id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.Barcode, &p.Name, &p.Category, &p.Stock, &p.Cost, &p.Price, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByBarcode(barcode string) (models.Product, error) {
	query := `SELECT barcode_id, name, category, stock, cost, price, created_at FROM products WHERE barcode_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, barcode).Scan(&p.Barcode, &p.Name, &p.Category, &p.Stock, &p.Cost, &p.Price, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, category = $2, stock = $3, cost = $4, price = $5 WHERE barcode_id = $6`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Category, p.Stock, p.Cost, p.Price, p.Barcode)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(barcode string) error {
	query := `DELETE FROM products WHERE barcode_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, barcode)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Search(keyword string) ([]models.Product, error) {
	if keyword == "" {
		return r.GetAll()
	}
	query := `SELECT barcode_id, name, category, stock, cost, price, created_at FROM products
		WHERE name ILIKE '%' || $1 || '%' OR barcode_id ILIKE '%' || $1 || '%'
		ORDER BY created_at, barcode_id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matched := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.Barcode, &p.Name, &p.Category, &p.Stock, &p.Cost, &p.Price, &p.CreatedAt); err != nil {
			return nil, err
		}
		matched = append(matched, p)
	}
	return matched, rows.Err()
}

func (r *PostgresProductRepository) AddStock(barcode string, amount int) (models.Product, error) {
	query := `UPDATE products SET stock = stock + $1 WHERE barcode_id = $2
		RETURNING barcode_id, name, category, stock, cost, price, created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, amount, barcode).Scan(&p.Barcode, &p.Name, &p.Category, &p.Stock, &p.Cost, &p.Price, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

// ReplaceAll rewrites the whole table, mirroring the CSV store's wholesale
// save that checkout relies on.
func (r *PostgresProductRepository) ReplaceAll(products []models.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return err
	}
	insert := `INSERT INTO products (barcode_id, name, category, stock, cost, price, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, p := range products {
		if _, err := tx.ExecContext(ctx, insert, p.Barcode, p.Name, p.Category, p.Stock, p.Cost, p.Price, p.CreatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}
