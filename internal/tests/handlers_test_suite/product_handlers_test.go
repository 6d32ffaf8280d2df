package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/febriandani/kantin-pos/internal/http"
	handler "github.com/febriandani/kantin-pos/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := createProduct(r, rotiRequest())

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Barcode != "BRK001" {
		t.Errorf("expected barcode 'BRK001', got %v", resp.Barcode)
	}
	if resp.Name != "Roti Keju" {
		t.Errorf("expected name 'Roti Keju', got %v", resp.Name)
	}
	if resp.Stock != 10 {
		t.Errorf("expected stock 10, got %v", resp.Stock)
	}
	if resp.CreatedAt == "" {
		t.Error("expected created_at to be stamped")
	}
	if resp.LowStock {
		t.Error("stock at the threshold must not be flagged low")
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Barcode too short",
			payload:        handler.ProductRequest{Barcode: "ab", Name: "Roti", Category: "Makanan", Cost: 1000, Price: 1500},
			expectedErrors: []string{"Barcode"},
		},
		{
			name:           "Barcode with spaces",
			payload:        handler.ProductRequest{Barcode: "BRK 001", Name: "Roti", Category: "Makanan", Cost: 1000, Price: 1500},
			expectedErrors: []string{"Barcode"},
		},
		{
			name:           "Missing name",
			payload:        handler.ProductRequest{Barcode: "BRK001", Category: "Makanan", Cost: 1000, Price: 1500},
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Unknown category",
			payload:        handler.ProductRequest{Barcode: "BRK001", Name: "Roti", Category: "Elektronik", Cost: 1000, Price: 1500},
			expectedErrors: []string{"Category"},
		},
		{
			name:           "Price not above cost",
			payload:        handler.ProductRequest{Barcode: "BRK001", Name: "Roti", Category: "Makanan", Cost: 1500, Price: 1500},
			expectedErrors: []string{"Price"},
		},
		{
			name:           "Negative stock and zero cost",
			payload:        handler.ProductRequest{Barcode: "BRK001", Name: "Roti", Category: "Makanan", Stock: -1, Price: 1500},
			expectedErrors: []string{"Stock", "Cost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			for _, field := range tt.expectedErrors {
				found := false
				for _, e := range resp {
					if e.Field == field {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected a validation error for field %q, got %v", field, resp)
				}
			}
		})
	}
}

func TestCreateProductHandler_DuplicateBarcode(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	if w := createProduct(r, rotiRequest()); w.Code != http.StatusCreated {
		t.Fatalf("seed create failed with %d", w.Code)
	}
	if w := createProduct(r, rotiRequest()); w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict on duplicate barcode, got %d", w.Code)
	}
}

func TestGetProductByBarcodeHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	createProduct(r, rotiRequest())

	w := doJSON(r, http.MethodGet, "/products/BRK001", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Roti Keju" {
		t.Errorf("expected name 'Roti Keju', got %v", resp.Name)
	}

	if w := doJSON(r, http.MethodGet, "/products/NOPE99", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown barcode, got %d", w.Code)
	}
}

func TestGetProductsHandler_Search(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	createProduct(r, rotiRequest())
	createProduct(r, handler.ProductRequest{
		Barcode: "MNM001", Name: "Teh Botol", Category: "Minuman",
		Stock: 5, Cost: 2000, Price: 3000,
	})

	tests := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"?q=roti", 1},
		{"?q=MNM", 1},
		{"?q=xyz", 0},
	}
	for _, tt := range tests {
		w := doJSON(r, http.MethodGet, "/products"+tt.query, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("search %q: expected 200, got %d", tt.query, w.Code)
		}
		var resp handler.ProductsSearchResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if len(resp.Data) != tt.want || resp.Meta.TotalCount != tt.want {
			t.Errorf("search %q: expected %d products, got %d (meta %d)",
				tt.query, tt.want, len(resp.Data), resp.Meta.TotalCount)
		}
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	createProduct(r, rotiRequest())

	updated := rotiRequest()
	updated.Name = "Roti Coklat"
	updated.Price = 2500

	w := doJSON(r, http.MethodPut, "/products/BRK001", updated)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Roti Coklat" || resp.Price != 2500 {
		t.Errorf("update not applied: %+v", resp)
	}

	if w := doJSON(r, http.MethodPut, "/products/NOPE99", updated); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 updating an unknown barcode, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	createProduct(r, rotiRequest())

	if w := doJSON(r, http.MethodDelete, "/products/BRK001", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/products/BRK001", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/products/BRK001", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on double delete, got %d", w.Code)
	}
}

func TestAddStockHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	createProduct(r, rotiRequest())

	w := doJSON(r, http.MethodPost, "/products/BRK001/stock", handler.AddStockRequest{Amount: 5})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Stock != 15 {
		t.Errorf("expected stock 15, got %d", resp.Stock)
	}

	if w := doJSON(r, http.MethodPost, "/products/BRK001/stock", handler.AddStockRequest{Amount: 0}); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a non-positive amount, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/products/NOPE99/stock", handler.AddStockRequest{Amount: 5}); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown barcode, got %d", w.Code)
	}
}

func TestProductRoutes_RequireToken(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with a garbage token, got %d", w.Code)
	}
}
