package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/febriandani/kantin-pos/internal/http/handlers"
)

// NewRouter wires all POS routes. Login and health are public; everything
// that reads or mutates the ledger requires a token.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/login", handlers.LoginHandler)
	r.Post("/register", handlers.RegisterHandler)
	r.Mount("/swagger", httpSwagger.Handler())

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/products", handlers.CreateProductHandler)
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/{barcode}", handlers.GetProductByBarcodeHandler)
		r.Put("/products/{barcode}", handlers.UpdateProductHandler)
		r.Delete("/products/{barcode}", handlers.DeleteProductHandler)
		r.Post("/products/{barcode}/stock", handlers.AddStockHandler)
		r.Post("/products/import", handlers.ImportProductsHandler)

		r.Get("/cart", handlers.GetCartHandler)
		r.Post("/cart/items", handlers.AddToCartHandler)
		r.Delete("/cart/items/{lineID}", handlers.RemoveCartLineHandler)
		r.Delete("/cart", handlers.ClearCartHandler)
		r.Post("/checkout", handlers.CheckoutHandler)

		r.Get("/scan/status", handlers.ScanStatusHandler)
		r.Post("/scan", handlers.ScanHandler)

		r.Get("/reports/summary", handlers.ReportSummaryHandler)
		r.Get("/reports/top-products", handlers.TopProductsHandler)
		r.Get("/reports/categories", handlers.SalesByCategoryHandler)

		r.Post("/backup", handlers.BackupHandler)
		r.Post("/export", handlers.ExportHandler)
		r.Get("/activity", handlers.ActivityHandler)
	})

	return r
}
