package scraper

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renan-Leal/libraflux/internal/book"
	"github.com/Renan-Leal/libraflux/logger"
	errs "github.com/Renan-Leal/libraflux/pkg/errors"
)

func TestWriteManyInsertsNewBooks(t *testing.T) {
	store := newMockBookStore()
	w := NewWriter(store, logger.ForStore())

	result, err := w.WriteMany(context.Background(), []book.Book{
		{UUID: "upc-1", Title: "First"},
		{UUID: "upc-2", Title: "Second"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 0, result.Skipped)
	assert.Len(t, store.books, 2)
}

func TestWriteManyIsIdempotent(t *testing.T) {
	store := newMockBookStore()
	w := NewWriter(store, logger.ForStore())

	batch := []book.Book{
		{UUID: "upc-1", Title: "First"},
		{UUID: "upc-2", Title: "Second"},
		{UUID: "upc-3", Title: "Third"},
	}

	first, err := w.WriteMany(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Inserted)
	assert.Equal(t, 0, first.Skipped)

	second, err := w.WriteMany(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 3, second.Skipped)
	assert.Len(t, store.books, 3)
}

func TestWriteManySkipsOnlyDuplicates(t *testing.T) {
	store := newMockBookStore()
	store.books["upc-1"] = book.Book{UUID: "upc-1", Title: "Already there"}
	w := NewWriter(store, logger.ForStore())

	result, err := w.WriteMany(context.Background(), []book.Book{
		{UUID: "upc-1", Title: "Already there"},
		{UUID: "upc-2", Title: "New"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Skipped)
}

func TestWriteManyInsertFailureIsFatal(t *testing.T) {
	store := newMockBookStore()
	store.insertErr = errors.New("connection reset")
	w := NewWriter(store, logger.ForStore())

	result, err := w.WriteMany(context.Background(), []book.Book{{UUID: "upc-1"}})

	require.Error(t, err)
	assert.Equal(t, errs.ErrorTypeStorage, errs.TypeOf(err))
	assert.Equal(t, 0, result.Inserted)
	assert.Empty(t, store.books)
}
