package cart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/febriandani/kantin-pos/internal/models"
	"github.com/febriandani/kantin-pos/internal/repo"
)

func TestCheckout_EmptyCart(t *testing.T) {
	c, _, _ := newTestCart(t)
	if _, err := c.Checkout(); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_SingleMergedLine(t *testing.T) {
	c, products, transactions := newTestCart(t, roti(10))

	c.Add("BRK001", 3)
	c.Add("BRK001", 4)

	receipt, err := c.Checkout()
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}

	if len(receipt.TransactionIDs) != 1 || receipt.TransactionIDs[0] != "TRX00001" {
		t.Errorf("expected [TRX00001], got %v", receipt.TransactionIDs)
	}
	want := models.CartTotals{Items: 1, Quantity: 7, Price: 14000, Profit: 3500}
	if receipt.Totals != want {
		t.Errorf("receipt totals mismatch: got %+v, want %+v", receipt.Totals, want)
	}

	p, _ := products.GetByBarcode("BRK001")
	if p.Stock != 3 {
		t.Errorf("expected stock 3 after checkout, got %d", p.Stock)
	}

	rows, _ := transactions.GetAll()
	if len(rows) != 1 {
		t.Fatalf("expected 1 ledger row, got %d", len(rows))
	}
	if rows[0].Total != 14000 || rows[0].Profit != 3500 {
		t.Errorf("ledger row mismatch: %+v", rows[0])
	}

	if len(c.Items()) != 0 {
		t.Error("expected empty cart after successful checkout")
	}
}

func TestCheckout_MultipleLines(t *testing.T) {
	teh := models.Product{Barcode: "MNM001", Name: "Teh Botol", Category: "Minuman", Stock: 5, Cost: 2000, Price: 3000}
	pensil := models.Product{Barcode: "ATK001", Name: "Pensil 2B", Category: "Alat Tulis", Stock: 20, Cost: 1000, Price: 1500}
	c, products, transactions := newTestCart(t, roti(10), teh, pensil)

	c.Add("BRK001", 2)
	c.Add("MNM001", 1)
	c.Add("ATK001", 5)

	receipt, err := c.Checkout()
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if len(receipt.TransactionIDs) != 3 {
		t.Fatalf("expected 3 ledger rows, got %d", len(receipt.TransactionIDs))
	}

	rows, _ := transactions.GetAll()
	for i, row := range rows {
		if row.Total != row.Quantity*row.UnitPrice {
			t.Errorf("row %d: total %d != qty*price", i, row.Total)
		}
	}

	wantStock := map[string]int{"BRK001": 8, "MNM001": 4, "ATK001": 15}
	for barcode, want := range wantStock {
		p, _ := products.GetByBarcode(barcode)
		if p.Stock != want {
			t.Errorf("%s: expected stock %d, got %d", barcode, want, p.Stock)
		}
	}
}

func TestCheckout_InsufficientStockAbortsAll(t *testing.T) {
	teh := models.Product{Barcode: "MNM001", Name: "Teh Botol", Category: "Minuman", Stock: 5, Cost: 2000, Price: 3000}
	c, products, transactions := newTestCart(t, roti(10), teh)

	c.Add("BRK001", 2)
	c.Add("MNM001", 3)

	// Stock shrinks behind the cart's back before checkout.
	short, _ := products.GetByBarcode("MNM001")
	short.Stock = 1
	products.Update(short)

	_, err := c.Checkout()
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.Barcode != "MNM001" || stockErr.Available != 1 || stockErr.Requested != 3 {
		t.Errorf("error names wrong line: %+v", stockErr)
	}

	// Nothing was committed and the cart is untouched.
	p, _ := products.GetByBarcode("BRK001")
	if p.Stock != 10 {
		t.Errorf("stock mutated on failed checkout: %d", p.Stock)
	}
	rows, _ := transactions.GetAll()
	if len(rows) != 0 {
		t.Errorf("ledger mutated on failed checkout: %d rows", len(rows))
	}
	if len(c.Items()) != 2 {
		t.Errorf("cart mutated on failed checkout: %d lines", len(c.Items()))
	}
}

func TestCheckout_ProductDeletedMeanwhile(t *testing.T) {
	c, products, _ := newTestCart(t, roti(10))
	c.Add("BRK001", 2)
	products.Delete("BRK001")

	_, err := c.Checkout()
	var missingErr *ProductMissingError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected ProductMissingError, got %v", err)
	}
	if missingErr.Barcode != "BRK001" {
		t.Errorf("error names wrong product: %+v", missingErr)
	}
	if len(c.Items()) != 1 {
		t.Error("cart must stay intact on failed checkout")
	}
}

func TestCheckout_FailedValidationLeavesFilesUntouched(t *testing.T) {
	dir := t.TempDir()
	productsPath := filepath.Join(dir, "products.csv")
	transactionsPath := filepath.Join(dir, "transactions.csv")

	products := repo.NewCSVProductRepository(productsPath)
	transactions := repo.NewCSVTransactionRepository(transactionsPath)
	products.Create(roti(2))
	transactions.GetAll() // materialize the file

	c := New(products, transactions)
	c.Add("BRK001", 2)

	// Another flow consumes the stock before checkout.
	short, _ := products.GetByBarcode("BRK001")
	short.Stock = 1
	products.Update(short)

	productsBefore, _ := os.ReadFile(productsPath)
	transactionsBefore, _ := os.ReadFile(transactionsPath)

	if _, err := c.Checkout(); err == nil {
		t.Fatal("expected checkout to fail")
	}

	productsAfter, _ := os.ReadFile(productsPath)
	transactionsAfter, _ := os.ReadFile(transactionsPath)
	if string(productsBefore) != string(productsAfter) {
		t.Error("products file changed on failed checkout")
	}
	if string(transactionsBefore) != string(transactionsAfter) {
		t.Error("transactions file changed on failed checkout")
	}
}

func TestCheckout_TransactionWriteFailureKeepsEarlierRows(t *testing.T) {
	teh := models.Product{Barcode: "MNM001", Name: "Teh Botol", Category: "Minuman", Stock: 5, Cost: 2000, Price: 3000}
	c, products, transactions := newTestCart(t, roti(10), teh)

	c.Add("BRK001", 2)
	c.Add("MNM001", 1)

	// First line records fine, then the ledger starts failing.
	recorded := 0
	c.transactions = recordLimiter{inner: transactions, allow: 1, recorded: &recorded}

	_, err := c.Checkout()
	var writeErr *TransactionWriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected TransactionWriteError, got %v", err)
	}

	// The first row stays in the ledger; there is no rollback.
	rows, _ := transactions.GetAll()
	if len(rows) != 1 {
		t.Errorf("expected 1 surviving ledger row, got %d", len(rows))
	}
	// The stock table was never saved.
	p, _ := products.GetByBarcode("BRK001")
	if p.Stock != 10 {
		t.Errorf("stock table saved despite failed batch: %d", p.Stock)
	}
	if len(c.Items()) != 2 {
		t.Error("cart must stay intact on failed checkout")
	}
}

// recordLimiter lets a fixed number of Record calls through, then fails.
type recordLimiter struct {
	inner    repo.TransactionRepository
	allow    int
	recorded *int
}

func (r recordLimiter) GetAll() ([]models.Transaction, error) { return r.inner.GetAll() }

func (r recordLimiter) Record(barcode, name string, qty, unitPrice, unitCost int) (models.Transaction, error) {
	if *r.recorded >= r.allow {
		return models.Transaction{}, errors.New("disk full")
	}
	*r.recorded++
	return r.inner.Record(barcode, name, qty, unitPrice, unitCost)
}

// failingSaveRepo fails only the wholesale save used by checkout.
type failingSaveRepo struct {
	repo.ProductRepository
}

func (f failingSaveRepo) ReplaceAll([]models.Product) error {
	return errors.New("disk full")
}

func TestCheckout_SaveFailureKeepsLedgerRows(t *testing.T) {
	productRepo := repo.NewInMemoryProductRepository()
	productRepo.Create(roti(10))
	transactions := repo.NewInMemoryTransactionRepository()

	c := New(failingSaveRepo{productRepo}, transactions)
	c.Add("BRK001", 2)

	_, err := c.Checkout()
	var saveErr *SaveProductsError
	if !errors.As(err, &saveErr) {
		t.Fatalf("expected SaveProductsError, got %v", err)
	}

	// The ledger row written before the failed save survives.
	rows, _ := transactions.GetAll()
	if len(rows) != 1 {
		t.Errorf("expected 1 ledger row, got %d", len(rows))
	}
	if len(c.Items()) != 1 {
		t.Error("cart must stay intact when the save fails")
	}
}
