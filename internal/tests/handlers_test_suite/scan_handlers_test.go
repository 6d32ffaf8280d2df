package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/febriandani/kantin-pos/internal/http"
	handler "github.com/febriandani/kantin-pos/internal/http/handlers"
)

func TestScanStatusHandler(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/scan/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var status handler.ScanStatusResponse
	if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if status.Available {
		t.Error("manual backend must report unavailable")
	}
	if status.Method != "manual" {
		t.Errorf("expected method 'manual', got %q", status.Method)
	}
}

func TestScanHandler_ManualCode(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	createProduct(r, rotiRequest())

	w := doJSON(r, http.MethodPost, "/scan", handler.ScanRequest{Code: "BRK001"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var p handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if p.Barcode != "BRK001" {
		t.Errorf("expected product BRK001, got %+v", p)
	}
}

func TestScanHandler_Errors(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	if w := doJSON(r, http.MethodPost, "/scan", handler.ScanRequest{Code: "x"}); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a malformed code, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/scan", handler.ScanRequest{Code: "NOPE99"}); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown code, got %d", w.Code)
	}
	// No code and only the manual backend: the operator must type it.
	if w := doJSON(r, http.MethodPost, "/scan", handler.ScanRequest{}); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without a capture backend, got %d", w.Code)
	}
}
