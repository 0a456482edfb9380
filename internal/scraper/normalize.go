package scraper

import (
	"strconv"

	"github.com/Renan-Leal/libraflux/internal/book"
	"github.com/Renan-Leal/libraflux/logger"
	errs "github.com/Renan-Leal/libraflux/pkg/errors"
)

// Attribute-table labels as the source site prints them
const (
	attrUPC          = "UPC"
	attrPriceExclTax = "Price (excl. tax)"
	attrPriceInclTax = "Price (incl. tax)"
	attrTax          = "Tax"
	attrReviews      = "Number of reviews"
)

// Normalizer maps raw extracted records onto the persistence entity
type Normalizer struct {
	log *logger.Logger
}

// NewNormalizer creates a new ingestion normalizer
func NewNormalizer(log *logger.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// Normalize converts a raw record into a Book. A record without a UPC
// has no natural key and is not ingestable; the returned error carries
// whatever identifying data exists so the caller can log the drop.
func (n *Normalizer) Normalize(rec *RawBookRecord) (book.Book, error) {
	uuid := rec.Attributes[attrUPC]
	if uuid == "" {
		return book.Book{}, errs.NewNormalization(rec.Title, "record has no UPC, cannot be ingested")
	}

	return book.Book{
		UUID:         uuid,
		Title:        rec.Title,
		Category:     rec.Category,
		Rating:       rec.Rating,
		PriceExclTax: n.price(uuid, attrPriceExclTax, rec.Attributes[attrPriceExclTax]),
		PriceInclTax: n.price(uuid, attrPriceInclTax, rec.Attributes[attrPriceInclTax]),
		Tax:          n.price(uuid, attrTax, rec.Attributes[attrTax]),
		Availability: rec.Availability,
		ReviewsQtd:   n.reviews(rec.Attributes[attrReviews]),
		Description:  rec.Description,
		Image:        rec.Image,
	}, nil
}

func (n *Normalizer) price(uuid, label, raw string) float64 {
	value, ok := parsePrice(raw)
	if !ok {
		n.log.Debug().Str("uuid", uuid).Str("field", label).Str("raw", raw).Msg("Unparsable price, defaulting to 0")
	}
	return value
}

func (n *Normalizer) reviews(raw string) int {
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return count
}
