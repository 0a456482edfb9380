package scraper

import (
	"context"

	"github.com/Renan-Leal/libraflux/internal/book"
	"github.com/Renan-Leal/libraflux/logger"
	errs "github.com/Renan-Leal/libraflux/pkg/errors"
)

// BookStore is the persistence surface the pipeline writes through
type BookStore interface {
	ExistsByUUID(ctx context.Context, uuid string) (bool, error)
	InsertBatch(ctx context.Context, books []book.Book) (int, error)
}

// WriteResult reports the outcome of one batch write
type WriteResult struct {
	Inserted int
	Skipped  int
}

// Writer persists batches of books without ever duplicating a natural
// key. Existence-check-then-insert is intentional: a re-scrape never
// mutates rows already stored, even when the source changed them.
type Writer struct {
	store BookStore
	log   *logger.Logger
}

// NewWriter creates a new idempotent bulk writer
func NewWriter(store BookStore, log *logger.Logger) *Writer {
	return &Writer{store: store, log: log}
}

// WriteMany skips every candidate whose UUID is already stored and
// inserts the rest in a single transaction. A failed transaction is
// fatal for the run and is surfaced, not swallowed.
func (w *Writer) WriteMany(ctx context.Context, books []book.Book) (WriteResult, error) {
	var result WriteResult
	staged := make([]book.Book, 0, len(books))

	for _, b := range books {
		exists, err := w.store.ExistsByUUID(ctx, b.UUID)
		if err != nil {
			return result, errs.NewStorage(b.UUID, "existence check failed", err)
		}
		if exists {
			w.log.Debug().Str("uuid", b.UUID).Str("title", b.Title).Msg("Book already stored, skipping")
			result.Skipped++
			continue
		}
		staged = append(staged, b)
	}

	inserted, err := w.store.InsertBatch(ctx, staged)
	if err != nil {
		return result, errs.NewStorage("batch", "insert transaction failed", err)
	}
	result.Inserted = inserted

	w.log.Info().Int("inserted", result.Inserted).Int("skipped", result.Skipped).Msg("Batch written")
	return result, nil
}
