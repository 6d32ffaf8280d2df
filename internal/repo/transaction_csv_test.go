package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestTransactionRepo(t *testing.T) *CSVTransactionRepository {
	t.Helper()
	return NewCSVTransactionRepository(filepath.Join(t.TempDir(), "transactions.csv"))
}

func TestCSVTransactionRepository_SequentialIDs(t *testing.T) {
	r := newTestTransactionRepo(t)

	for i := 1; i <= 12; i++ {
		tx, err := r.Record("BRK001", "Roti Keju", 1, 2000, 1500)
		if err != nil {
			t.Fatalf("Record %d failed: %v", i, err)
		}
		want := fmt.Sprintf("TRX%05d", i)
		if tx.ID != want {
			t.Errorf("transaction %d: got ID %q, want %q", i, tx.ID, want)
		}
	}

	all, err := r.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(all))
	}
	for i, tx := range all {
		if want := fmt.Sprintf("TRX%05d", i+1); tx.ID != want {
			t.Errorf("row %d: got ID %q, want %q", i, tx.ID, want)
		}
	}
}

func TestCSVTransactionRepository_ComputedTotals(t *testing.T) {
	r := newTestTransactionRepo(t)

	tx, err := r.Record("BRK001", "Roti Keju", 7, 2000, 1500)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if tx.Total != 14000 {
		t.Errorf("expected total 14000, got %d", tx.Total)
	}
	if tx.Profit != 3500 {
		t.Errorf("expected profit 3500, got %d", tx.Profit)
	}
	if tx.Timestamp == "" {
		t.Error("expected timestamp to be stamped")
	}
}

func TestCSVTransactionRepository_ResumesSequenceFromFile(t *testing.T) {
	r := newTestTransactionRepo(t)
	r.Record("BRK001", "Roti Keju", 1, 2000, 1500)
	r.Record("BRK001", "Roti Keju", 2, 2000, 1500)

	// A fresh repository over the same file continues where the last row
	// left off.
	reread := NewCSVTransactionRepository(r.path)
	tx, err := reread.Record("MNM001", "Teh Botol", 1, 3000, 2000)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if tx.ID != "TRX00003" {
		t.Errorf("expected TRX00003, got %q", tx.ID)
	}
}

func TestCSVTransactionRepository_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	r := NewCSVTransactionRepository(path)

	if _, err := r.GetAll(); err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file to be created: %v", err)
	}
	want := "transaksi_id,waktu,barcode_id,nama_produk,jumlah,harga_satuan,total_harga,keuntungan"
	if !strings.HasPrefix(string(data), want) {
		t.Errorf("unexpected header: %q", string(data))
	}
}
