package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fjod/storefront/internal/cart"
	"github.com/fjod/storefront/internal/catalog"
)

type CartHandler struct {
	cart    *cart.Store
	catalog catalog.Catalog
	logger  *zap.Logger
}

func NewCartHandler(c *cart.Store, cat catalog.Catalog, logger *zap.Logger) *CartHandler {
	return &CartHandler{cart: c, catalog: cat, logger: logger}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /api/v1/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cart.Cart())
}

// AddItem handles POST /api/v1/cart/items. The product is looked up in
// the catalog so the cart line carries a trusted snapshot, not
// client-supplied prices.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity < 0 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not be negative")
		return
	}

	product, err := h.catalog.FindByID(r.Context(), req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		h.logger.Error("catalog lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}

	updated := h.cart.AddItem(r.Context(), product, req.Quantity)
	respondJSON(w, http.StatusCreated, updated)
}

// UpdateQuantity handles PUT /api/v1/cart/items/{product_id}. Quantity
// zero removes the line, matching the store semantics.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity < 0 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not be negative")
		return
	}

	updated := h.cart.UpdateQuantity(r.Context(), productID, req.Quantity)
	respondJSON(w, http.StatusOK, updated)
}

// RemoveItem handles DELETE /api/v1/cart/items/{product_id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	updated := h.cart.RemoveItem(r.Context(), productID)
	respondJSON(w, http.StatusOK, updated)
}

// Clear handles DELETE /api/v1/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	updated := h.cart.Clear(r.Context())
	respondJSON(w, http.StatusOK, updated)
}
