package handlers

import (
	"strings"

	"github.com/febriandani/kantin-pos/internal/models"
	"github.com/febriandani/kantin-pos/internal/scan"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if !scan.ValidateCode(p.Barcode) {
		errs = append(errs, ProductValidationError{Field: "Barcode", Description: "Barcode must be at least 3 characters without spaces"})
	}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if !models.ValidCategory(p.Category) {
		errs = append(errs, ProductValidationError{Field: "Category", Description: "Category must be one of: " + strings.Join(models.Categories, ", ")})
	}
	if p.Stock < 0 {
		errs = append(errs, ProductValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	if p.Cost <= 0 {
		errs = append(errs, ProductValidationError{Field: "Cost", Description: "Cost must be greater than zero"})
	}
	if p.Price <= p.Cost {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be greater than cost"})
	}
	return errs
}
