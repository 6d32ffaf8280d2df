package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
)

// ReportSummaryHandler godoc
// @Summary Dashboard summary over both ledger tables
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} report.Summary
// @Failure 500 {string} string "Internal error"
// @Router /reports/summary [get]
func ReportSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := reportService.Summary()
	if err != nil {
		http.Error(w, "could not compute summary", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// TopProductsHandler godoc
// @Summary Best-selling products by quantity
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries (default 10)"
// @Success 200 {array} report.ProductSales
// @Failure 500 {string} string "Internal error"
// @Router /reports/top-products [get]
func TopProductsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}

	top, err := reportService.TopProducts(limit)
	if err != nil {
		http.Error(w, "could not compute top products", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(top)
}

// SalesByCategoryHandler godoc
// @Summary Revenue and profit grouped by product category
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} report.CategorySales
// @Failure 500 {string} string "Internal error"
// @Router /reports/categories [get]
func SalesByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := reportService.SalesByCategory()
	if err != nil {
		http.Error(w, "could not compute category sales", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sales)
}
