package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rpaiva/warehouse-tracker/internal/http/handlers"
)

// NewRouter wires all routes. Reads are open; mutations require a session
// token. Everything is rate limited per client.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	r.Post("/login", handlers.LoginHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/movements", handlers.GetMovementsHandler)
	r.Get("/dashboard", handlers.GetDashboardHandler)

	r.Get("/export/products", handlers.ExportProductsHandler)
	r.Get("/export/movements", handlers.ExportMovementsHandler)
	r.Get("/reports/inventory", handlers.InventoryReportHandler)
	r.Get("/reports/movements", handlers.MovementReportHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/{id}/adjust", handlers.AdjustStockHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
