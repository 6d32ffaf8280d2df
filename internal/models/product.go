package models

// Product represents a catalog item in the canteen inventory, keyed by its
// barcode.
type Product struct {
	Barcode   string `json:"barcode_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Stock     int    `json:"stock"`
	Cost      int    `json:"cost"`
	Price     int    `json:"price"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Categories is the fixed set of product categories the canteen uses.
var Categories = []string{"Makanan", "Minuman", "Snack", "Alat Tulis", "Lainnya"}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}
