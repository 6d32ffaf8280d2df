package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	models "github.com/febriandani/kantin-pos/internal/models"
	repo "github.com/febriandani/kantin-pos/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog, keyed by barcode
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 409 {string} string "Duplicate barcode"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product := models.Product{
		Barcode:  req.Barcode,
		Name:     req.Name,
		Category: req.Category,
		Stock:    req.Stock,
		Cost:     req.Cost,
		Price:    req.Price,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateBarcode) {
			http.Error(w, "barcode already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	auditLogger.Log(r.Context(), usernameFromRequest(r), "product.create", created.Barcode)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List or search products
// @Description Empty q returns the whole catalog; otherwise case-insensitive substring match on name or barcode
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search keyword"
// @Success 200 {object} ProductsSearchResult
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.Search(r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: len(products)},
	}
	for i, p := range products {
		resp.Data[i] = toProductResponse(p)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// GetProductByBarcodeHandler godoc
// @Summary Get product by barcode
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param barcode path string true "Barcode ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{barcode} [get]
func GetProductByBarcodeHandler(w http.ResponseWriter, r *http.Request) {
	barcode := chi.URLParam(r, "barcode")

	product, err := productRepo.GetByBarcode(barcode)
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

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param barcode path string true "Barcode ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{barcode} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	barcode := chi.URLParam(r, "barcode")

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	req.Barcode = barcode

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product := models.Product{
		Barcode:  barcode,
		Name:     req.Name,
		Category: req.Category,
		Stock:    req.Stock,
		Cost:     req.Cost,
		Price:    req.Price,
	}
	updated, err := productRepo.Update(product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}

	auditLogger.Log(r.Context(), usernameFromRequest(r), "product.update", updated.Barcode)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param barcode path string true "Barcode ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{barcode} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	barcode := chi.URLParam(r, "barcode")

	if err := productRepo.Delete(barcode); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}

	auditLogger.Log(r.Context(), usernameFromRequest(r), "product.delete", barcode)
	w.WriteHeader(http.StatusNoContent)
}

// AddStockHandler godoc
// @Summary Add stock to a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param barcode path string true "Barcode ID"
// @Param adjustment body AddStockRequest true "Amount to add"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid amount"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{barcode}/stock [post]
func AddStockHandler(w http.ResponseWriter, r *http.Request) {
	barcode := chi.URLParam(r, "barcode")

	var req AddStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		http.Error(w, "amount must be greater than zero", http.StatusBadRequest)
		return
	}

	product, err := productRepo.AddStock(barcode, req.Amount)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not add stock", http.StatusInternalServerError)
		return
	}

	auditLogger.Log(r.Context(), usernameFromRequest(r), "product.add_stock",
		fmt.Sprintf("%s +%d", barcode, req.Amount))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(product))
}
