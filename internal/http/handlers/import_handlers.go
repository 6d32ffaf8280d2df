package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	models "github.com/febriandani/kantin-pos/internal/models"
	repo "github.com/febriandani/kantin-pos/internal/repo"
)

type csvRow struct {
	Barcode  string
	Name     string
	Category string
	Stock    int
	Cost     int
	Price    int
}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	// Accept both the ledger file headers and plain english ones.
	col := func(record []string, names ...string) string {
		for _, name := range names {
			if i, ok := index[name]; ok && i < len(record) {
				return record[i]
			}
		}
		return ""
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rows = append(rows, csvRow{
			Barcode:  col(record, "barcode_id", "barcode"),
			Name:     col(record, "nama_produk", "name"),
			Category: col(record, "kategori", "category"),
			Stock:    parseInt(col(record, "stok", "stock")),
			Cost:     parseInt(col(record, "harga_modal", "cost")),
			Price:    parseInt(col(record, "harga_jual", "price")),
		})
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if strings.TrimSpace(r.Barcode) == "" {
		return errors.New("missing barcode")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("missing name")
	}
	if r.Stock < 0 {
		return errors.New("invalid stock")
	}
	if r.Cost <= 0 {
		return errors.New("invalid cost")
	}
	if r.Price <= r.Cost {
		return errors.New("price must exceed cost")
	}
	return nil
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} map[string]any
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /products/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = "skip"
	}
	if mode != "skip" && mode != "update" {
		http.Error(w, "mode must be skip or update", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported, updated, skipped := 0, 0, 0
	rowErrors := []string{}
	for i, row := range rows {
		if err := validateRow(row); err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		product := models.Product{
			Barcode:  row.Barcode,
			Name:     row.Name,
			Category: row.Category,
			Stock:    row.Stock,
			Cost:     row.Cost,
			Price:    row.Price,
		}
		if !models.ValidCategory(product.Category) {
			product.Category = "Lainnya"
		}

		_, err := productRepo.Create(product)
		if err == nil {
			imported++
			continue
		}
		if !errors.Is(err, repo.ErrDuplicateBarcode) {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if mode == "skip" {
			skipped++
			continue
		}
		if _, err := productRepo.Update(product); err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		updated++
	}

	auditLogger.Log(r.Context(), usernameFromRequest(r), "product.import",
		fmt.Sprintf("imported %d, updated %d, skipped %d", imported, updated, skipped))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"imported": imported,
		"updated":  updated,
		"skipped":  skipped,
		"errors":   rowErrors,
	})
}
