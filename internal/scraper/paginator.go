package scraper

import (
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Renan-Leal/libraflux/helpers"
	"github.com/Renan-Leal/libraflux/logger"
)

// Paginator walks a category's listing pages following "next" links
type Paginator struct {
	fetcher  *Fetcher
	delay    time.Duration
	maxPages int // 0 = walk until no next link
	log      *logger.Logger
}

// NewPaginator creates a new listing paginator. delay is the mandatory
// politeness pause between page fetches; maxPages optionally caps the
// walk (0 walks until the chain ends).
func NewPaginator(fetcher *Fetcher, delay time.Duration, maxPages int, log *logger.Logger) *Paginator {
	return &Paginator{fetcher: fetcher, delay: delay, maxPages: maxPages, log: log}
}

// Paginate walks from categoryURL until no "next" link remains and
// returns every item detail URL in page-then-card order. A failed page
// fetch terminates the walk silently; a page with zero cards still has
// its next link followed. Revisiting a URL already fetched in this
// chain stops the walk, guarding against self-referential next links.
func (p *Paginator) Paginate(categoryURL string) []string {
	var detailURLs []string
	visited := make(map[string]bool)
	current := categoryURL
	pageNum := 0

	for current != "" {
		if visited[current] {
			p.log.Warn().Str("url", current).Msg("Next link revisits a fetched page, stopping")
			break
		}
		visited[current] = true
		pageNum++

		p.log.Debug().Int("page", pageNum).Str("url", current).Msg("Fetching listing page")
		doc, err := p.fetcher.Fetch(current)
		if err != nil {
			p.log.Warn().Err(err).Str("url", current).Msg("Listing fetch failed, terminating pagination")
			break
		}

		pageURL := current
		doc.Find("article.product_pod").Each(func(_ int, card *goquery.Selection) {
			href, exists := card.Find("h3 a").Attr("href")
			if !exists {
				return
			}
			detailURLs = append(detailURLs, helpers.ResolveURL(pageURL, href))
		})

		current = p.nextPageURL(doc, pageURL)

		if p.maxPages > 0 && pageNum >= p.maxPages {
			p.log.Info().Int("pages", pageNum).Msg("Page limit reached, stopping pagination")
			break
		}
		if current != "" {
			time.Sleep(p.delay)
		}
	}

	return detailURLs
}

func (p *Paginator) nextPageURL(doc *goquery.Document, pageURL string) string {
	href, exists := doc.Find("li.next a").First().Attr("href")
	if !exists {
		return ""
	}
	return helpers.ResolveURL(pageURL, href)
}
