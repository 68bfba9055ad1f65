package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fjod/storefront/internal/catalog"
	"github.com/fjod/storefront/internal/domain"
)

const defaultRelatedLimit = 4

type ProductHandler struct {
	catalog catalog.Catalog
	logger  *zap.Logger
}

func NewProductHandler(c catalog.Catalog, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{catalog: c, logger: logger}
}

// ProductDetailDTO bundles a product with its related items and reviews
// for the detail view.
type ProductDetailDTO struct {
	Product domain.Product   `json:"product"`
	Related []domain.Product `json:"related"`
	Reviews []domain.Review  `json:"reviews"`
}

// List handles GET /api/v1/products. The q parameter is a free-text
// search, category narrows to one category; both are untrusted strings
// and fine to pass through as plain matches.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("catalog search failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load products")
		return
	}

	if category := r.URL.Query().Get("category"); category != "" {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

// Get handles GET /api/v1/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.FindByID(r.Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		h.logger.Error("catalog lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}

	limit := defaultRelatedLimit
	if raw := r.URL.Query().Get("related_limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	related, err := h.catalog.RelatedTo(r.Context(), id, limit)
	if err != nil {
		h.logger.Warn("related lookup failed", zap.Error(err))
	}
	reviews, err := h.catalog.ReviewsFor(r.Context(), id)
	if err != nil {
		h.logger.Warn("reviews lookup failed", zap.Error(err))
	}

	if related == nil {
		related = []domain.Product{}
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	respondJSON(w, http.StatusOK, ProductDetailDTO{
		Product: product,
		Related: related,
		Reviews: reviews,
	})
}

// Categories handles GET /api/v1/products/categories.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.logger.Error("categories lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load categories")
		return
	}
	if categories == nil {
		categories = []string{}
	}
	respondJSON(w, http.StatusOK, categories)
}
