package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/storage"
)

var (
	headphones = domain.Product{ID: "1", Title: "Headphones", Price: 60, Stock: 10}
	backpack   = domain.Product{ID: "2", Title: "Backpack", Price: 50, Stock: 5}
	watch      = domain.Product{ID: "3", Title: "Watch", Price: 399.99, DiscountPrice: 299.99, Stock: 3}
)

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	return NewStore(mem, zap.NewNop()), mem
}

func TestAddItem_MergesSameProduct(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddItem(ctx, headphones, 2)
	c := s.AddItem(ctx, headphones, 3)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Lines[0].Quantity)
}

func TestAddItem_ClampsAtStock(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddItem(ctx, backpack, 4)
	c := s.AddItem(ctx, backpack, 4)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, backpack.Stock, c.Lines[0].Quantity)
}

func TestAddItem_OutOfStockProductNotAdded(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	soldOut := domain.Product{ID: "9", Title: "Sold out", Price: 10, Stock: 0}
	c := s.AddItem(ctx, soldOut, 1)
	assert.Empty(t, c.Lines)
}

func TestAddItem_DefaultsToOne(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	c := s.AddItem(ctx, headphones, 0)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddItem(ctx, headphones, 1)
	s.AddItem(ctx, backpack, 1)
	s.AddItem(ctx, watch, 1)
	s.AddItem(ctx, headphones, 1) // merge must not reorder

	c := s.Cart()
	require.Len(t, c.Lines, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{
		c.Lines[0].Product.ID, c.Lines[1].Product.ID, c.Lines[2].Product.ID,
	})
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddItem(ctx, headphones, 2)
	c := s.UpdateQuantity(ctx, headphones.ID, 0)
	assert.Empty(t, c.Lines)
}

func TestUpdateQuantity_ClampsAtStock(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddItem(ctx, backpack, 1)
	c := s.UpdateQuantity(ctx, backpack.ID, 99)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, backpack.Stock, c.Lines[0].Quantity)
}

func TestUpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddItem(ctx, headphones, 2)
	c := s.UpdateQuantity(ctx, "no-such-id", 5)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestRemoveItem_UnknownProductIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddItem(ctx, headphones, 1)
	c := s.RemoveItem(ctx, "no-such-id")
	assert.Len(t, c.Lines, 1)
}

func TestTotals_EndToEnd(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddItem(ctx, headphones, 1) // 60
	c := s.AddItem(ctx, backpack, 1) // 50

	assert.InDelta(t, 110, c.Subtotal, 1e-9)
	assert.InDelta(t, 8.80, c.Tax, 1e-9)
	assert.Equal(t, 0.0, c.Shipping)
	assert.InDelta(t, 118.80, c.Total, 1e-9)
	assert.InDelta(t, 118.80, s.CartTotal(), 1e-9)
}

func TestTotals_UsesDiscountPrice(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	c := s.AddItem(ctx, watch, 1)
	assert.InDelta(t, 299.99, c.Subtotal, 1e-9)
}

func TestItemCount(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	assert.Equal(t, 0, s.ItemCount())
	s.AddItem(ctx, headphones, 2)
	s.AddItem(ctx, backpack, 3)
	assert.Equal(t, 5, s.ItemCount())
}

func TestPersistence_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()

	s := NewStore(mem, zap.NewNop())
	s.AddItem(ctx, headphones, 2)
	s.AddItem(ctx, backpack, 1)

	// A new store over the same storage sees the identical line sequence.
	reloaded := NewStore(mem, zap.NewNop())
	c := reloaded.Cart()
	require.Len(t, c.Lines, 2)
	assert.Equal(t, headphones.ID, c.Lines[0].Product.ID)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, backpack.ID, c.Lines[1].Product.ID)
	assert.Equal(t, 1, c.Lines[1].Quantity)
}

func TestNewStore_CorruptEntryFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	require.NoError(t, mem.Set(ctx, StorageKey, []byte("{not json")))

	s := NewStore(mem, zap.NewNop())
	assert.Empty(t, s.Cart().Lines)
}

func TestMutations_SurvivePersistFailure(t *testing.T) {
	ctx := context.Background()
	s := NewStore(failingStorage{}, zap.NewNop())

	c := s.AddItem(ctx, headphones, 1)
	assert.Len(t, c.Lines, 1) // in-memory cart still works
}

type failingStorage struct{}

func (failingStorage) Get(context.Context, string) ([]byte, error) {
	return nil, storage.ErrNotFound
}
func (failingStorage) Set(context.Context, string, []byte) error {
	return assert.AnError
}
func (failingStorage) Delete(context.Context, string) error {
	return assert.AnError
}
