package handlers

import (
	"net/http"
	"strings"

	"github.com/febriandani/kantin-pos/internal/auth"
	"github.com/febriandani/kantin-pos/internal/models"
)

// usernameFromRequest extracts the operator name from the bearer token, for
// audit labelling. Empty when the token carries none.
func usernameFromRequest(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if !strings.HasPrefix(authorization, "Bearer ") {
		return ""
	}
	_, claims, err := auth.TokenClaims(authorization)
	if err != nil {
		return ""
	}
	if username, ok := claims["username"].(string); ok {
		return username
	}
	return ""
}

// sessionID scopes carts. The explicit header wins; otherwise the operator's
// username is the session, so one operator keeps one cart across requests.
func sessionID(r *http.Request) string {
	if sid := r.Header.Get("X-Session-Id"); sid != "" {
		return sid
	}
	if username := usernameFromRequest(r); username != "" {
		return username
	}
	return "default"
}

// lowStockThreshold mirrors the report threshold for the low_stock flag on
// product responses. Overridden from config at startup.
var lowStockThreshold = 10

// SetLowStockThreshold configures the low-stock flag cutoff.
func SetLowStockThreshold(n int) {
	if n > 0 {
		lowStockThreshold = n
	}
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Barcode:   p.Barcode,
		Name:      p.Name,
		Category:  p.Category,
		Stock:     p.Stock,
		Cost:      p.Cost,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		LowStock:  p.Stock < lowStockThreshold,
	}
}
