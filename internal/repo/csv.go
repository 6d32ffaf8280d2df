package repo

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Ledger file column sets. The headers are kept in the historical layout so
// existing data files keep round-tripping unchanged.
var (
	productColumns = []string{
		"barcode_id", "nama_produk", "kategori",
		"stok", "harga_modal", "harga_jual", "tanggal_input",
	}
	transactionColumns = []string{
		"transaksi_id", "waktu", "barcode_id", "nama_produk",
		"jumlah", "harga_satuan", "total_harga", "keuntungan",
	}
)

// ensureCSVFile creates the file with the given header when it does not exist
// yet, including its parent directory.
func ensureCSVFile(path string, header []string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return writeCSVFile(path, header, nil)
}

// readCSVFile reads all records after the header row.
func readCSVFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// writeCSVFile overwrites the file wholesale with header plus rows.
func writeCSVFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
