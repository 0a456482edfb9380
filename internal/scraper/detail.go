package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Renan-Leal/libraflux/helpers"
	"github.com/Renan-Leal/libraflux/logger"
)

// RawBookRecord holds the fields scraped from one detail page before
// normalization. Every field defaults independently: one missing
// element on the page never fails the extraction of the others.
// Attributes carries the product-information table verbatim, keyed by
// the row labels the source page uses ("UPC", "Tax", ...).
type RawBookRecord struct {
	SourceURL    string
	Title        string
	Category     string
	Price        string
	Rating       int
	Availability int
	Description  string
	Image        string
	Attributes   map[string]string
}

var availabilityCount = regexp.MustCompile(`\((\d+) available\)`)

var ratingWords = map[string]int{
	"One":   1,
	"Two":   2,
	"Three": 3,
	"Four":  4,
	"Five":  5,
}

// Extractor scrapes structured fields from item detail pages
type Extractor struct {
	fetcher *Fetcher
	baseURL string
	log     *logger.Logger
}

// NewExtractor creates a new detail extractor. baseURL anchors
// image paths, which the site serves relative to its root.
func NewExtractor(fetcher *Fetcher, baseURL string, log *logger.Logger) *Extractor {
	return &Extractor{fetcher: fetcher, baseURL: baseURL, log: log}
}

// Extract fetches one detail page and scrapes all fields, returning
// nil when the page cannot be fetched
func (e *Extractor) Extract(detailURL string) *RawBookRecord {
	doc, err := e.fetcher.Fetch(detailURL)
	if err != nil {
		e.log.Warn().Err(err).Str("url", detailURL).Msg("Detail fetch failed, dropping item")
		return nil
	}
	return e.extractFromDocument(doc, detailURL)
}

func (e *Extractor) extractFromDocument(doc *goquery.Document, detailURL string) *RawBookRecord {
	rec := &RawBookRecord{
		SourceURL:  detailURL,
		Attributes: make(map[string]string),
	}

	rec.Title = strings.TrimSpace(doc.Find("h1").First().Text())

	// Breadcrumb is root > catalog > category > item; the category is
	// the third link. Fewer links leaves the field empty.
	crumbs := doc.Find("ul.breadcrumb li a")
	if crumbs.Length() >= 3 {
		rec.Category = strings.TrimSpace(crumbs.Eq(2).Text())
	}

	rec.Price = strings.TrimSpace(doc.Find("div.product_main p.price_color").First().Text())
	rec.Availability = parseAvailability(doc.Find("p.availability").First().Text())
	rec.Rating = ratingFromClasses(doc.Find("p.star-rating").First())
	rec.Description = e.extractDescription(doc)
	rec.Image = e.extractImage(doc)

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		key := strings.TrimSpace(row.Find("th").First().Text())
		value := strings.TrimSpace(row.Find("td").First().Text())
		if key != "" {
			rec.Attributes[key] = value
		}
	})

	e.log.Debug().Str("title", rec.Title).Str("url", detailURL).Msg("Extracted detail page")
	return rec
}

// parseAvailability reads the unit count out of a stock phrase like
// "In stock (22 available)". Anything else, including "Out of stock",
// yields 0.
func parseAvailability(text string) int {
	if !strings.Contains(text, "In stock") {
		return 0
	}
	match := availabilityCount.FindStringSubmatch(text)
	if len(match) < 2 {
		return 0
	}
	count, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return count
}

// ratingFromClasses maps the word in the rating element's class list
// ("star-rating Three") to its integer, 0 when nothing matches
func ratingFromClasses(sel *goquery.Selection) int {
	classAttr, exists := sel.Attr("class")
	if !exists {
		return 0
	}
	for _, class := range strings.Fields(classAttr) {
		if rating, ok := ratingWords[class]; ok {
			return rating
		}
	}
	return 0
}

// extractDescription takes the first paragraph after the description
// anchor block. Semicolons become periods and the text goes through
// the mojibake repair.
func (e *Extractor) extractDescription(doc *goquery.Document) string {
	anchor := doc.Find("#product_description").First()
	if anchor.Length() == 0 {
		return ""
	}
	paragraph := anchor.NextAllFiltered("p").First()
	if paragraph.Length() == 0 {
		return ""
	}
	text := strings.ReplaceAll(paragraph.Text(), ";", ".")
	return strings.TrimSpace(repairMojibake(text))
}

// extractImage resolves the page image's source path against the site
// base URL, stripping the relative-path prefix markers first
func (e *Extractor) extractImage(doc *goquery.Document) string {
	src, exists := doc.Find("div.item.active img").First().Attr("src")
	if !exists {
		src, exists = doc.Find("img").First().Attr("src")
		if !exists {
			return ""
		}
	}
	return helpers.ResolveURL(e.baseURL, helpers.StripRelativePrefix(strings.TrimSpace(src)))
}
