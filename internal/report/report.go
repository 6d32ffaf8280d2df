// Package report computes read-only snapshots over the two ledger tables for
// dashboards. It never mutates the store.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/febriandani/kantin-pos/internal/models"
	"github.com/febriandani/kantin-pos/internal/repo"
)

// Service aggregates the ledger tables.
type Service struct {
	products          repo.ProductRepository
	transactions      repo.TransactionRepository
	lowStockThreshold int
}

// NewService creates a report service. Products with stock below threshold
// count as low stock.
func NewService(products repo.ProductRepository, transactions repo.TransactionRepository, lowStockThreshold int) *Service {
	return &Service{
		products:          products,
		transactions:      transactions,
		lowStockThreshold: lowStockThreshold,
	}
}

// Summary is the dashboard headline view.
type Summary struct {
	TotalProducts     int              `json:"total_products"`
	TotalStock        int              `json:"total_stock"`
	StockValue        int              `json:"stock_value"`
	LowStockCount     int              `json:"low_stock_count"`
	LowStock          []models.Product `json:"low_stock"`
	TodayTransactions int              `json:"today_transactions"`
	TodayRevenue      int              `json:"today_revenue"`
	TodayProfit       int              `json:"today_profit"`
	TotalTransactions int              `json:"total_transactions"`
	TotalRevenue      int              `json:"total_revenue"`
	TotalProfit       int              `json:"total_profit"`
}

// Summary computes the headline statistics for the dashboard.
func (s *Service) Summary() (Summary, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return Summary{}, err
	}
	transactions, err := s.transactions.GetAll()
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	sum.TotalProducts = len(products)
	sum.LowStock = []models.Product{}
	for _, p := range products {
		sum.TotalStock += p.Stock
		sum.StockValue += p.Stock * p.Price
		if p.Stock < s.lowStockThreshold {
			sum.LowStockCount++
			sum.LowStock = append(sum.LowStock, p)
		}
	}

	today := time.Now().Format("2006-01-02")
	for _, t := range transactions {
		sum.TotalTransactions++
		sum.TotalRevenue += t.Total
		sum.TotalProfit += t.Profit
		if strings.HasPrefix(t.Timestamp, today) {
			sum.TodayTransactions++
			sum.TodayRevenue += t.Total
			sum.TodayProfit += t.Profit
		}
	}
	return sum, nil
}

// ProductSales is the per-product sales aggregate.
type ProductSales struct {
	Barcode  string `json:"barcode_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
	Profit   int    `json:"profit"`
}

// TopProducts returns the n best-selling products by quantity.
func (s *Service) TopProducts(n int) ([]ProductSales, error) {
	transactions, err := s.transactions.GetAll()
	if err != nil {
		return nil, err
	}

	byBarcode := map[string]*ProductSales{}
	order := []string{}
	for _, t := range transactions {
		ps, ok := byBarcode[t.Barcode]
		if !ok {
			ps = &ProductSales{Barcode: t.Barcode, Name: t.ProductName}
			byBarcode[t.Barcode] = ps
			order = append(order, t.Barcode)
		}
		ps.Quantity += t.Quantity
		ps.Revenue += t.Total
		ps.Profit += t.Profit
	}

	result := make([]ProductSales, 0, len(order))
	for _, barcode := range order {
		result = append(result, *byBarcode[barcode])
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Quantity > result[j].Quantity })
	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result, nil
}

// CategorySales is the per-category revenue aggregate. Category comes from
// the current catalog; transactions whose product no longer exists fall into
// the empty category.
type CategorySales struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
	Profit   int    `json:"profit"`
}

// SalesByCategory groups ledger rows by the product's current category.
func (s *Service) SalesByCategory() ([]CategorySales, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactions.GetAll()
	if err != nil {
		return nil, err
	}

	categoryOf := make(map[string]string, len(products))
	for _, p := range products {
		categoryOf[p.Barcode] = p.Category
	}

	byCategory := map[string]*CategorySales{}
	for _, t := range transactions {
		cat := categoryOf[t.Barcode]
		cs, ok := byCategory[cat]
		if !ok {
			cs = &CategorySales{Category: cat}
			byCategory[cat] = cs
		}
		cs.Quantity += t.Quantity
		cs.Revenue += t.Total
		cs.Profit += t.Profit
	}

	result := make([]CategorySales, 0, len(byCategory))
	for _, cs := range byCategory {
		result = append(result, *cs)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Revenue > result[j].Revenue })
	return result, nil
}
