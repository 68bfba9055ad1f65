package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/fjod/storefront/internal/domain"
)

// Memory serves a fixed product list from process memory. It is the
// default catalog and the seed source for the sqlite catalog.
type Memory struct {
	products []domain.Product
	reviews  []domain.Review
}

// NewMemory builds a catalog over the given data. The slices are not
// copied; callers hand over ownership.
func NewMemory(products []domain.Product, reviews []domain.Review) *Memory {
	return &Memory{products: products, reviews: reviews}
}

// NewSeeded builds a catalog over the built-in demo inventory.
func NewSeeded() *Memory {
	return NewMemory(seedProducts, seedReviews)
}

func (m *Memory) ListAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *Memory) FindByID(_ context.Context, id string) (domain.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

func (m *Memory) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range m.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (m *Memory) RelatedTo(ctx context.Context, id string, limit int) ([]domain.Product, error) {
	product, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, nil
	}

	var related []domain.Product
	for _, p := range m.products {
		if p.ID != id && p.Category == product.Category {
			related = append(related, p)
			if len(related) == limit {
				break
			}
		}
	}
	return related, nil
}

func (m *Memory) ReviewsFor(_ context.Context, id string) ([]domain.Review, error) {
	var reviews []domain.Review
	for _, r := range m.reviews {
		if r.ProductID == id {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}

func (m *Memory) Search(_ context.Context, query string) ([]domain.Product, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]domain.Product, len(m.products))
		copy(out, m.products)
		return out, nil
	}

	var matches []domain.Product
	for _, p := range m.products {
		if productMatches(p, query) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func productMatches(p domain.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
