package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_FindByID(t *testing.T) {
	ctx := context.Background()
	c := NewSeeded()

	p, err := c.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Noise-Cancelling Headphones", p.Title)

	_, err = c.FindByID(ctx, "999")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemory_Categories_SortedDistinct(t *testing.T) {
	c := NewSeeded()
	categories, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Accessories", "Electronics", "Footwear", "Wearables"}, categories)
}

func TestMemory_RelatedTo(t *testing.T) {
	ctx := context.Background()
	c := NewSeeded()

	related, err := c.RelatedTo(ctx, "1", 2)
	require.NoError(t, err)
	require.Len(t, related, 2)
	for _, p := range related {
		assert.Equal(t, "Electronics", p.Category)
		assert.NotEqual(t, "1", p.ID)
	}

	// Unknown product relates to nothing.
	related, err = c.RelatedTo(ctx, "999", 4)
	require.NoError(t, err)
	assert.Empty(t, related)
}

func TestMemory_ReviewsFor(t *testing.T) {
	ctx := context.Background()
	c := NewSeeded()

	reviews, err := c.ReviewsFor(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	reviews, err = c.ReviewsFor(ctx, "999")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestMemory_Search(t *testing.T) {
	ctx := context.Background()
	c := NewSeeded()

	// Title match, case-insensitive.
	hits, err := c.Search(ctx, "headphones")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "1", hits[0].ID)

	// Tag match.
	hits, err = c.Search(ctx, "bluetooth")
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	// Brand match.
	hits, err = c.Search(ctx, "audiotech")
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	// Empty query matches everything.
	hits, err = c.Search(ctx, "  ")
	require.NoError(t, err)
	all, _ := c.ListAll(ctx)
	assert.Len(t, hits, len(all))

	// No match.
	hits, err = c.Search(ctx, "zzzzz")
	require.NoError(t, err)
	assert.Empty(t, hits)
}
