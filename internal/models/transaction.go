package models

// Transaction is one committed sale line in the append-only ledger.
// Total and Profit are computed at write time and never updated afterwards.
type Transaction struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	Barcode     string `json:"barcode_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int    `json:"unit_price"`
	Total       int    `json:"total"`
	Profit      int    `json:"profit"`
}
