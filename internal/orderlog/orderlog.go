// Package orderlog keeps the append-only list of placed orders.
package orderlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/storage"
)

// StorageKey is the persisted entry holding the order list.
const StorageKey = "orders"

// ErrOrderNotFound is returned when no order matches the given order
// number. Callers render a not-found state, they do not crash.
var ErrOrderNotFound = errors.New("order not found")

// Log is the persisted collection of placed orders. Orders are
// append-only; nothing here mutates an order after placement.
type Log struct {
	mu      sync.RWMutex
	orders  []domain.Order
	storage storage.Storage
	logger  *zap.Logger
}

// NewLog loads the persisted orders from st. A missing, unreadable or
// corrupt entry yields an empty log.
func NewLog(st storage.Storage, logger *zap.Logger) *Log {
	l := &Log{storage: st, logger: logger}

	data, err := st.Get(context.Background(), StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("failed to load orders, starting empty", zap.Error(err))
		}
		return l
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		logger.Warn("corrupt orders entry, starting empty", zap.Error(err))
		return l
	}
	l.orders = orders
	return l
}

// Append adds order to the log and persists the new list. Unlike cart
// persistence, a write failure here is returned to the caller: order
// placement must not report success for an order that was never stored.
func (l *Log) Append(ctx context.Context, order domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	appended := append(append([]domain.Order(nil), l.orders...), order)
	data, err := json.Marshal(appended)
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}
	if err := l.storage.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}

	l.orders = appended
	return nil
}

// FindByOrderNumber returns the order with the given number, or
// ErrOrderNotFound.
func (l *Log) FindByOrderNumber(orderNumber string) (domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, order := range l.orders {
		if order.OrderNumber == orderNumber {
			return order, nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

// List returns all placed orders in placement order.
func (l *Log) List() []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Order, len(l.orders))
	copy(out, l.orders)
	return out
}
