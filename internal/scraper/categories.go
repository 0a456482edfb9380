package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Renan-Leal/libraflux/helpers"
	"github.com/Renan-Leal/libraflux/logger"
)

// Category is a named listing discovered on the site root. It is never
// persisted on its own; the name is denormalized onto each book.
type Category struct {
	Name string
	URL  string
}

// Discoverer finds the category navigation on the site root
type Discoverer struct {
	fetcher *Fetcher
	log     *logger.Logger
}

// NewDiscoverer creates a new category discoverer
func NewDiscoverer(fetcher *Fetcher, log *logger.Logger) *Discoverer {
	return &Discoverer{fetcher: fetcher, log: log}
}

// Discover fetches the root page and collects every sidebar anchor
// pointing at a category listing, in document order. A missing sidebar
// is not an error: the result is simply empty.
func (d *Discoverer) Discover(rootURL string) ([]Category, error) {
	doc, err := d.fetcher.Fetch(rootURL)
	if err != nil {
		return nil, err
	}

	var categories []Category
	doc.Find("div.side_categories a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !strings.Contains(href, "catalogue/category") {
			return
		}
		categories = append(categories, Category{
			Name: strings.TrimSpace(s.Text()),
			URL:  helpers.ResolveURL(rootURL, href),
		})
	})

	d.log.Info().Int("count", len(categories)).Msg("Discovered categories")
	return categories, nil
}
