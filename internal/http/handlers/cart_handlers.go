package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/febriandani/kantin-pos/internal/cart"
)

// AddToCartHandler godoc
// @Summary Stage a product line in the session cart
// @Description Re-adding a barcode raises the existing line's quantity. The cumulative staged quantity may not exceed live stock.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body AddToCartRequest true "Barcode and quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 409 {string} string "Insufficient stock"
// @Router /cart/items [post]
func AddToCartHandler(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	c := sessions.Cart(sessionID(r))
	_, err := c.Add(req.Barcode, req.Quantity)
	if err != nil {
		var stockErr *cart.InsufficientStockError
		var missingErr *cart.ProductMissingError
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			http.Error(w, "quantity must be greater than zero", http.StatusBadRequest)
		case errors.As(err, &missingErr):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.As(err, &stockErr):
			http.Error(w, stockErr.Error(), http.StatusConflict)
		default:
			http.Error(w, "could not add to cart", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CartResponse{Items: c.Items(), Totals: c.Totals()})
}

// RemoveCartLineHandler godoc
// @Summary Remove one staged line by its stable line ID
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param lineID path string true "Cart line ID"
// @Success 200 {object} CartResponse
// @Failure 404 {string} string "Line not found"
// @Router /cart/items/{lineID} [delete]
func RemoveCartLineHandler(w http.ResponseWriter, r *http.Request) {
	c := sessions.Cart(sessionID(r))
	if _, err := c.RemoveLine(chi.URLParam(r, "lineID")); err != nil {
		http.Error(w, "cart line not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CartResponse{Items: c.Items(), Totals: c.Totals()})
}

// ClearCartHandler godoc
// @Summary Empty the session cart
// @Tags cart
// @Security BearerAuth
// @Success 204 "Cleared"
// @Router /cart [delete]
func ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	sessions.Cart(sessionID(r)).Clear()
	w.WriteHeader(http.StatusNoContent)
}

// GetCartHandler godoc
// @Summary Current session cart with totals
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CartResponse
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	c := sessions.Cart(sessionID(r))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CartResponse{Items: c.Items(), Totals: c.Totals()})
}

// CheckoutHandler godoc
// @Summary Commit all staged lines as stock decrements and ledger rows
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CheckoutResponse
// @Failure 400 {string} string "Empty cart"
// @Failure 409 {string} string "Validation failed, nothing committed"
// @Failure 500 {string} string "Write failure"
// @Router /checkout [post]
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	c := sessions.Cart(sessionID(r))

	receipt, err := c.Checkout()
	if err != nil {
		var stockErr *cart.InsufficientStockError
		var missingErr *cart.ProductMissingError
		switch {
		case errors.Is(err, cart.ErrEmptyCart):
			http.Error(w, "cart is empty", http.StatusBadRequest)
		case errors.As(err, &missingErr), errors.As(err, &stockErr):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	auditLogger.Log(r.Context(), usernameFromRequest(r), "checkout",
		fmt.Sprintf("%d lines, %d pcs, total %d", receipt.Totals.Items, receipt.Totals.Quantity, receipt.Totals.Price))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CheckoutResponse{
		Receipt: receipt,
		Message: fmt.Sprintf("checkout successful: %d products, %d pcs sold", receipt.Totals.Items, receipt.Totals.Quantity),
	})
}
