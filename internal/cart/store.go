// Package cart owns the shopping cart: an ordered list of product-quantity
// lines with derived totals, persisted after every mutation so the cart
// survives a restart.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/pricing"
	"github.com/fjod/storefront/internal/storage"
)

// StorageKey is the persisted entry holding the cart line list.
const StorageKey = "shopping-cart"

// Store holds the current cart. Mutations clamp quantities at stock,
// recompute totals and persist the line list. Persistence failures are
// logged and swallowed: the in-memory cart stays authoritative for the
// session and nothing here is fatal.
type Store struct {
	mu      sync.RWMutex
	lines   []domain.CartLine
	storage storage.Storage
	logger  *zap.Logger
}

// NewStore loads the persisted cart from st. A missing, unreadable or
// corrupt entry yields an empty cart.
func NewStore(st storage.Storage, logger *zap.Logger) *Store {
	s := &Store{storage: st, logger: logger}

	data, err := st.Get(context.Background(), StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("failed to load cart, starting empty", zap.Error(err))
		}
		return s
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		logger.Warn("corrupt cart entry, starting empty", zap.Error(err))
		return s
	}
	s.lines = lines
	return s
}

// AddItem adds quantity units of product to the cart, merging into an
// existing line for the same product id. The resulting quantity is
// clamped at the product's stock; over-stock requests are not an error.
func (s *Store) AddItem(ctx context.Context, product domain.Product, quantity int) domain.Cart {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity = clamp(s.lines[i].Quantity+quantity, product.Stock)
			s.persistLocked(ctx)
			return s.cartLocked()
		}
	}

	if q := clamp(quantity, product.Stock); q > 0 {
		s.lines = append(s.lines, domain.CartLine{Product: product, Quantity: q})
		s.persistLocked(ctx)
	}
	return s.cartLocked()
}

// UpdateQuantity sets the quantity of an existing line, clamped at
// stock. A quantity of zero or less removes the line. Unknown product
// ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) domain.Cart {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = clamp(quantity, s.lines[i].Product.Stock)
			s.persistLocked(ctx)
			break
		}
	}
	return s.cartLocked()
}

// RemoveItem deletes the line for productID if present.
func (s *Store) RemoveItem(ctx context.Context, productID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persistLocked(ctx)
			break
		}
	}
	return s.cartLocked()
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persistLocked(ctx)
	return s.cartLocked()
}

// Cart returns a snapshot of the current lines and totals.
func (s *Store) Cart() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartLocked()
}

// ItemCount is the sum of all line quantities.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// CartTotal is the current grand total including tax and shipping.
func (s *Store) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalsLocked().Total
}

func (s *Store) cartLocked() domain.Cart {
	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)
	return domain.Cart{Lines: lines, Totals: s.totalsLocked()}
}

func (s *Store) totalsLocked() domain.Totals {
	subtotal := 0.0
	for _, line := range s.lines {
		subtotal += line.LineTotal()
	}
	return domain.Totals{
		Subtotal: subtotal,
		Tax:      pricing.Tax(subtotal),
		Shipping: pricing.Shipping(subtotal),
		Total:    pricing.Total(subtotal),
	}
}

func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.lines)
	if err != nil {
		s.logger.Warn("failed to marshal cart", zap.Error(err))
		return
	}
	if err := s.storage.Set(ctx, StorageKey, data); err != nil {
		s.logger.Warn("failed to persist cart", zap.Error(err))
	}
}

func clamp(quantity, stock int) int {
	if quantity > stock {
		return stock
	}
	return quantity
}
