package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/storefront/internal/domain"
)

func TestProducts_List(t *testing.T) {
	s := setupServer(t)

	var products []domain.Product
	rec := s.do(t, http.MethodGet, "/api/v1/products", nil, &products)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, products)
}

func TestProducts_Search(t *testing.T) {
	s := setupServer(t)

	var products []domain.Product
	rec := s.do(t, http.MethodGet, "/api/v1/products?q=headphones", nil, &products)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)
}

func TestProducts_SearchNoMatchIsEmptyList(t *testing.T) {
	s := setupServer(t)

	var products []domain.Product
	rec := s.do(t, http.MethodGet, "/api/v1/products?q=zzzzzz", nil, &products)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, products)
}

func TestProducts_CategoryFilter(t *testing.T) {
	s := setupServer(t)

	var products []domain.Product
	rec := s.do(t, http.MethodGet, "/api/v1/products?category=Accessories", nil, &products)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "Accessories", p.Category)
	}
}

func TestProducts_Get(t *testing.T) {
	s := setupServer(t)

	var detail ProductDetailDTO
	rec := s.do(t, http.MethodGet, "/api/v1/products/1", nil, &detail)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", detail.Product.ID)
	assert.NotEmpty(t, detail.Related)
	assert.Len(t, detail.Reviews, 2)
}

func TestProducts_GetUnknownID(t *testing.T) {
	s := setupServer(t)

	var resp ErrorResponse
	rec := s.do(t, http.MethodGet, "/api/v1/products/does-not-exist", nil, &resp)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", resp.Code)
}

func TestProducts_Categories(t *testing.T) {
	s := setupServer(t)

	var categories []string
	rec := s.do(t, http.MethodGet, "/api/v1/products/categories", nil, &categories)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, categories, "Electronics")
}
