package handlers

import (
	"github.com/febriandani/kantin-pos/internal/cart"
	"github.com/febriandani/kantin-pos/internal/models"
)

type ProductRequest struct {
	Barcode  string `json:"barcode_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Cost     int    `json:"cost"`
	Price    int    `json:"price"`
}

type ProductResponse struct {
	Barcode   string `json:"barcode_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Stock     int    `json:"stock"`
	Cost      int    `json:"cost"`
	Price     int    `json:"price"`
	CreatedAt string `json:"created_at,omitempty"`
	LowStock  bool   `json:"low_stock,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type AddStockRequest struct {
	Amount int `json:"amount"`
}

type AddToCartRequest struct {
	Barcode  string `json:"barcode_id"`
	Quantity int    `json:"quantity"`
}

type CartResponse struct {
	Items  []models.CartItem `json:"items"`
	Totals models.CartTotals `json:"totals"`
}

type CheckoutResponse struct {
	Receipt cart.Receipt `json:"receipt"`
	Message string       `json:"message"`
}

type ScanRequest struct {
	Code string `json:"code"`
}

type ScanStatusResponse struct {
	Available bool   `json:"available"`
	Method    string `json:"method"`
}

type ExportRequest struct {
	Table string `json:"table"` // products or transactions
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
