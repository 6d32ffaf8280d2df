package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/febriandani/kantin-pos/internal/repo"
	"github.com/febriandani/kantin-pos/internal/scan"
)

// ScanStatusHandler godoc
// @Summary Report which capture backend is active
// @Tags scan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ScanStatusResponse
// @Router /scan/status [get]
func ScanStatusHandler(w http.ResponseWriter, r *http.Request) {
	status := ScanStatusResponse{
		Available: scanner.Name() != "manual",
		Method:    scanner.Name(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

// ScanHandler godoc
// @Summary Resolve a barcode to a product
// @Description Uses the provided code when present (manual entry); otherwise asks the active capture backend for one.
// @Tags scan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scan body ScanRequest false "Manually entered code"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid code"
// @Failure 404 {string} string "Product not found"
// @Failure 503 {string} string "Scanner unavailable"
// @Router /scan [post]
func ScanHandler(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	code := req.Code
	if code == "" {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		captured, err := scanner.Scan(ctx)
		if err != nil {
			if errors.Is(err, scan.ErrUnavailable) {
				http.Error(w, "scanner not available, enter the code manually", http.StatusServiceUnavailable)
				return
			}
			http.Error(w, "scan failed", http.StatusServiceUnavailable)
			return
		}
		code = captured
	}

	if !scan.ValidateCode(code) {
		http.Error(w, "invalid barcode format", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByBarcode(code)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(product))
}
