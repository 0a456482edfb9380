package stats

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renan-Leal/libraflux/internal/book"
	"github.com/Renan-Leal/libraflux/logger"
	"github.com/Renan-Leal/libraflux/services/cache"
)

type fakeReader struct {
	books []book.Book
	err   error
	calls int
}

func (r *fakeReader) ListAll(_ context.Context) ([]book.Book, error) {
	r.calls++
	return r.books, r.err
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string][]byte)}
}

func (c *memoryCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (c *memoryCache) Set(key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *memoryCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func catalog() []book.Book {
	return []book.Book{
		{UUID: "a", Category: "Poetry", Rating: 3, PriceInclTax: 10.00},
		{UUID: "b", Category: "Poetry", Rating: 5, PriceInclTax: 20.00},
		{UUID: "c", Category: "Travel", Rating: 3, PriceInclTax: 33.33},
	}
}

func TestGetOverview(t *testing.T) {
	reader := &fakeReader{books: catalog()}
	s := NewService(reader, newMemoryCache(), time.Minute, logger.ForServer())

	overview, err := s.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, overview.TotalBooks)
	assert.Equal(t, 21.11, overview.AveragePrice)
	assert.Equal(t, map[int]int{3: 2, 5: 1}, overview.RatingDistribution)
}

func TestGetOverviewEmptyCatalog(t *testing.T) {
	s := NewService(&fakeReader{}, newMemoryCache(), time.Minute, logger.ForServer())

	overview, err := s.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, overview.TotalBooks)
	assert.Equal(t, 0.0, overview.AveragePrice)
	assert.Empty(t, overview.RatingDistribution)
}

func TestGetOverviewServesFromCache(t *testing.T) {
	reader := &fakeReader{books: catalog()}
	s := NewService(reader, newMemoryCache(), time.Minute, logger.ForServer())

	first, err := s.GetOverview(context.Background())
	require.NoError(t, err)
	second, err := s.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, reader.calls)
}

func TestGetCategoriesStats(t *testing.T) {
	reader := &fakeReader{books: catalog()}
	s := NewService(reader, newMemoryCache(), time.Minute, logger.ForServer())

	result, err := s.GetCategoriesStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, CategoryStats{BookCount: 2, AveragePrice: 15.00}, result["Poetry"])
	assert.Equal(t, CategoryStats{BookCount: 1, AveragePrice: 33.33}, result["Travel"])
}

func TestStatsReaderErrorPropagates(t *testing.T) {
	reader := &fakeReader{err: errors.New("connection refused")}
	s := NewService(reader, newMemoryCache(), time.Minute, logger.ForServer())

	_, err := s.GetOverview(context.Background())
	assert.Error(t, err)

	_, err = s.GetCategoriesStats(context.Background())
	assert.Error(t, err)
}
