package scraper

import (
	"context"
	"sync"
	"time"

	"github.com/Renan-Leal/libraflux/internal/book"
	"github.com/Renan-Leal/libraflux/services/cache"
)

// mockBookStore is an in-memory BookStore keyed by natural key
type mockBookStore struct {
	mu        sync.Mutex
	books     map[string]book.Book
	insertErr error
}

func newMockBookStore() *mockBookStore {
	return &mockBookStore{books: make(map[string]book.Book)}
}

func (m *mockBookStore) ExistsByUUID(_ context.Context, uuid string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.books[uuid]
	return exists, nil
}

func (m *mockBookStore) InsertBatch(_ context.Context, batch []book.Book) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	for _, b := range batch {
		m.books[b.UUID] = b
	}
	return len(batch), nil
}

// mockCacheService is an in-memory CacheService without expiry
type mockCacheService struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMockCacheService() *mockCacheService {
	return &mockCacheService{items: make(map[string][]byte)}
}

func (m *mockCacheService) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.items[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return value, nil
}

func (m *mockCacheService) Set(key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *mockCacheService) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
