// Package catalog is the read-only product collaborator: the store
// browses it, the cart snapshots products out of it, nothing ever
// writes back.
package catalog

import (
	"context"
	"errors"

	"github.com/fjod/storefront/internal/domain"
)

// ErrProductNotFound is the explicit absent result for unknown product
// ids.
var ErrProductNotFound = errors.New("product not found")

// Catalog is the product read interface.
type Catalog interface {
	// ListAll returns every product in catalog order.
	ListAll(ctx context.Context) ([]domain.Product, error)

	// FindByID returns the product with the given id or
	// ErrProductNotFound.
	FindByID(ctx context.Context, id string) (domain.Product, error)

	// Categories returns the distinct product categories, sorted.
	Categories(ctx context.Context) ([]string, error)

	// RelatedTo returns up to limit products sharing a category with
	// the given product, excluding the product itself. Unknown ids
	// yield an empty slice.
	RelatedTo(ctx context.Context, id string, limit int) ([]domain.Product, error)

	// ReviewsFor returns the reviews for a product, newest first as
	// seeded.
	ReviewsFor(ctx context.Context, id string) ([]domain.Review, error)

	// Search returns products whose title, description, brand or tags
	// contain the query, case-insensitively. An empty query matches
	// everything.
	Search(ctx context.Context, query string) ([]domain.Product, error)
}
