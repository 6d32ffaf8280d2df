package models

// CartItem is a staged sale line. LineID is a stable identifier assigned when
// the line is first added, so removal does not depend on list positions.
type CartItem struct {
	LineID    string `json:"line_id"`
	Barcode   string `json:"barcode_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	UnitCost  int    `json:"unit_cost"`
	Subtotal  int    `json:"subtotal"`
	Profit    int    `json:"profit"`
}

// CartTotals is the reduction over all cart lines.
type CartTotals struct {
	Items    int `json:"total_items"`
	Quantity int `json:"total_quantity"`
	Price    int `json:"total_price"`
	Profit   int `json:"total_profit"`
}
