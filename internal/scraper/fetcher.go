package scraper

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	errs "github.com/Renan-Leal/libraflux/pkg/errors"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0.0.0 Safari/537.36"

// Fetcher issues GET requests over one shared client so cookies and
// keep-alive connections persist for the whole pipeline run. It is an
// explicitly owned resource: construct one per run, not process-wide.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher with a fresh cookie jar
func NewFetcher(timeout time.Duration) *Fetcher {
	jar, _ := cookiejar.New(nil)
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// Fetch GETs the URL and parses the body into a goquery document.
// Failures come back as a typed error (network, timeout or status)
// so callers can decide whether to stop paginating or drop the item.
func (f *Fetcher) Fetch(pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, errs.NewNetwork(pageURL, "failed to create request", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, errs.NewTimeout(pageURL, err)
		}
		return nil, errs.NewNetwork(pageURL, "failed to fetch URL", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.NewStatus(pageURL, resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewNetwork(pageURL, "failed to read response body", err)
	}

	body, err := toUTF8(bodyBytes, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, errs.NewParsing(pageURL, "failed to convert body to UTF-8", err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, errs.NewParsing(pageURL, "failed to parse HTML", err)
	}
	return doc, nil
}

// toUTF8 converts the body to UTF-8 based on the declared or sniffed charset
func toUTF8(bodyBytes []byte, contentType string) (io.Reader, error) {
	encoding, name, _ := charset.DetermineEncoding(bodyBytes, contentType)
	if name == "utf-8" || name == "UTF-8" {
		return bytes.NewReader(bodyBytes), nil
	}

	utf8Reader := encoding.NewDecoder().Reader(bytes.NewReader(bodyBytes))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, utf8Reader); err != nil {
		return nil, err
	}
	return &buf, nil
}
