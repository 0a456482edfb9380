package scraper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Renan-Leal/libraflux/logger"
)

func listingPage(cards []string, nextHref string) string {
	page := "<html><body><section>"
	for _, card := range cards {
		page += fmt.Sprintf(`<article class="product_pod"><h3><a href=%q>x</a></h3></article>`, card)
	}
	page += "</section><ul class=\"pager\">"
	if nextHref != "" {
		page += fmt.Sprintf(`<li class="next"><a href=%q>next</a></li>`, nextHref)
	}
	page += "</ul></body></html>"
	return page
}

func newTestPaginator(maxPages int) *Paginator {
	return NewPaginator(NewFetcher(0), 0, maxPages, logger.ForScraper())
}

func TestPaginateTwoPages(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/cat/index.html", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage([]string{"../book-1/index.html", "../book-2/index.html"}, "page-2.html")))
	})
	mux.HandleFunc("/cat/page-2.html", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage([]string{"../book-3/index.html"}, "")))
	})

	urls := newTestPaginator(0).Paginate(server.URL + "/cat/index.html")
	assert.Equal(t, []string{
		server.URL + "/book-1/index.html",
		server.URL + "/book-2/index.html",
		server.URL + "/book-3/index.html",
	}, urls)
}

func TestPaginateEmptyPageStillFollowsNext(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/cat/index.html", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage(nil, "page-2.html")))
	})
	mux.HandleFunc("/cat/page-2.html", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage([]string{"../book-1/index.html"}, "")))
	})

	urls := newTestPaginator(0).Paginate(server.URL + "/cat/index.html")
	assert.Equal(t, []string{server.URL + "/book-1/index.html"}, urls)
}

func TestPaginateSelfReferentialNext(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	requests := 0
	mux.HandleFunc("/cat/index.html", func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(listingPage([]string{"../book-1/index.html"}, "index.html")))
	})

	urls := newTestPaginator(0).Paginate(server.URL + "/cat/index.html")
	assert.Equal(t, []string{server.URL + "/book-1/index.html"}, urls)
	assert.Equal(t, 1, requests, "a self-referential next link must not loop")
}

func TestPaginateFetchFailureTerminates(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/cat/index.html", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage([]string{"../book-1/index.html"}, "page-2.html")))
	})
	mux.HandleFunc("/cat/page-2.html", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	urls := newTestPaginator(0).Paginate(server.URL + "/cat/index.html")
	assert.Equal(t, []string{server.URL + "/book-1/index.html"}, urls)
}

func TestPaginateMaxPages(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	for page := 1; page <= 5; page++ {
		p := page
		mux.HandleFunc(fmt.Sprintf("/cat/page-%d.html", p), func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(listingPage(
				[]string{fmt.Sprintf("../book-%d/index.html", p)},
				fmt.Sprintf("page-%d.html", p+1))))
		})
	}

	urls := newTestPaginator(2).Paginate(server.URL + "/cat/page-1.html")
	assert.Len(t, urls, 2)
}
