package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/fjod/storefront/internal/cart"
	"github.com/fjod/storefront/internal/catalog"
	"github.com/fjod/storefront/internal/orderlog"
)

// NewRouter wires the storefront API.
func NewRouter(cat catalog.Catalog, c *cart.Store, orders *orderlog.Log, logger *zap.Logger) chi.Router {
	productHandler := NewProductHandler(cat, logger)
	cartHandler := NewCartHandler(c, cat, logger)
	checkoutHandler := NewCheckoutHandler(c, orders, logger)
	ordersHandler := NewOrdersHandler(orders, logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/categories", productHandler.Categories)
			r.Get("/{id}", productHandler.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Delete("/", cartHandler.Clear)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkoutHandler.Start)
			r.Get("/", checkoutHandler.State)
			r.Post("/shipping", checkoutHandler.SubmitShipping)
			r.Post("/payment", checkoutHandler.SubmitPayment)
			r.Post("/back", checkoutHandler.Back)
			r.Post("/place", checkoutHandler.Place)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ordersHandler.List)
			r.Get("/{order_number}", ordersHandler.Get)
		})
	})

	return r
}
