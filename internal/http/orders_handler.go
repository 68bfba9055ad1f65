package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/orderlog"
)

type OrdersHandler struct {
	orders *orderlog.Log
	logger *zap.Logger
}

func NewOrdersHandler(orders *orderlog.Log, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{orders: orders, logger: logger}
}

// List handles GET /api/v1/orders.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders := h.orders.List()
	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

// Get handles GET /api/v1/orders/{order_number}. The order number comes
// straight from the URL; an unknown one is a plain not-found body for
// the confirmation view, never a crash.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "order_number")

	order, err := h.orders.FindByOrderNumber(orderNumber)
	if errors.Is(err, orderlog.ErrOrderNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	if err != nil {
		h.logger.Error("order lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}
