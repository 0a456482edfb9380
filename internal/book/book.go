package book

import "errors"

// ErrNotFound is returned when a book does not exist
var ErrNotFound = errors.New("book not found")

// Book is a catalogued book ingested from the source site.
// UUID carries the source site's UPC and is the natural key used to
// deduplicate across scrape runs.
type Book struct {
	ID           int     `json:"id"`
	UUID         string  `json:"uuid"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	Rating       int     `json:"rating"`
	PriceExclTax float64 `json:"price_excl_tax"`
	PriceInclTax float64 `json:"price_incl_tax"`
	Tax          float64 `json:"tax"`
	Availability int     `json:"availability"`
	ReviewsQtd   int     `json:"reviews_qtd"`
	Description  string  `json:"description,omitempty"`
	Image        string  `json:"image,omitempty"`
}
