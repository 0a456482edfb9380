package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/Renan-Leal/libraflux/internal/book"
	"github.com/Renan-Leal/libraflux/logger"
	errs "github.com/Renan-Leal/libraflux/pkg/errors"
)

// State is the orchestrator's position in a run
type State string

const (
	StateIdle                  State = "idle"
	StateDiscoveringCategories State = "discovering_categories"
	StateSelectingCategory     State = "selecting_category"
	StatePaginating            State = "paginating"
	StateExtracting            State = "extracting"
	StateNormalizing           State = "normalizing"
	StateWriting               State = "writing"
	StateDone                  State = "done"
	StateFailed                State = "failed"
)

// Report aggregates the outcome of one pipeline run
type Report struct {
	State      State  `json:"state"`
	Category   string `json:"category,omitempty"`
	Categories int    `json:"categories"`
	Scraped    int    `json:"scraped"`
	Normalized int    `json:"normalized"`
	Dropped    int    `json:"dropped"`
	Inserted   int    `json:"inserted"`
	Skipped    int    `json:"skipped"`
}

// PipelineConfig carries the run parameters
type PipelineConfig struct {
	BaseURL       string
	CategoryIndex int           // which discovered category to ingest, 0 = first
	MaxPages      int           // optional pagination cap, 0 = unlimited
	PageDelay     time.Duration // politeness pause between page fetches
	FetchTimeout  time.Duration
}

// Pipeline sequences discovery, pagination, extraction, normalization
// and writing for one run. Traversal is strictly sequential: one
// category, one page, one item at a time.
type Pipeline struct {
	cfg        PipelineConfig
	discoverer *Discoverer
	paginator  *Paginator
	extractor  *Extractor
	normalizer *Normalizer
	writer     *Writer
	log        *logger.Logger
	state      State
}

// NewPipeline wires a pipeline around a fresh fetcher session. The
// fetcher lives for exactly one pipeline, so each run starts with
// clean cookies and its own connection pool.
func NewPipeline(cfg PipelineConfig, store BookStore, log *logger.Logger) *Pipeline {
	fetcher := NewFetcher(cfg.FetchTimeout)
	return &Pipeline{
		cfg:        cfg,
		discoverer: NewDiscoverer(fetcher, log),
		paginator:  NewPaginator(fetcher, cfg.PageDelay, cfg.MaxPages, log),
		extractor:  NewExtractor(fetcher, cfg.BaseURL, log),
		normalizer: NewNormalizer(log),
		writer:     NewWriter(store, log),
		log:        log,
		state:      StateIdle,
	}
}

// State returns the orchestrator's current state
func (p *Pipeline) State() State {
	return p.state
}

// Run executes one full scrape-and-ingest pass and reports aggregate
// counts. Zero discovered categories is a successful empty run. Only
// storage failures abort the run; partial-progress counts survive in
// the report either way.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := &Report{}
	start := time.Now()

	p.transition(StateDiscoveringCategories)
	categories, err := p.discoverer.Discover(p.cfg.BaseURL)
	if err != nil {
		// The run degrades to zero results, mirroring an absent sidebar
		p.log.Error().Err(err).Msg("Category discovery failed")
	}
	report.Categories = len(categories)
	if len(categories) == 0 {
		p.transition(StateDone)
		report.State = StateDone
		p.log.Info().Msg("No categories found, run complete with zero results")
		return report, nil
	}

	p.transition(StateSelectingCategory)
	if p.cfg.CategoryIndex >= len(categories) {
		p.transition(StateFailed)
		report.State = StateFailed
		return report, errs.NewConfiguration(
			fmt.Sprintf("category index %d out of range, %d categories discovered", p.cfg.CategoryIndex, len(categories)), nil)
	}
	category := categories[p.cfg.CategoryIndex]
	report.Category = category.Name
	p.log.Info().Str("category", category.Name).Str("url", category.URL).Msg("Scraping category")

	p.transition(StatePaginating)
	detailURLs := p.paginator.Paginate(category.URL)

	p.transition(StateExtracting)
	var records []*RawBookRecord
	for i, detailURL := range detailURLs {
		if i > 0 {
			time.Sleep(p.cfg.PageDelay)
		}
		rec := p.extractor.Extract(detailURL)
		if rec == nil {
			continue
		}
		rec.Category = category.Name
		records = append(records, rec)
	}
	report.Scraped = len(records)

	p.transition(StateNormalizing)
	var books []book.Book
	for _, rec := range records {
		b, err := p.normalizer.Normalize(rec)
		if err != nil {
			report.Dropped++
			p.log.Warn().Err(err).Str("title", rec.Title).Str("url", rec.SourceURL).Msg("Dropping malformed record")
			continue
		}
		books = append(books, b)
	}
	report.Normalized = len(books)

	p.transition(StateWriting)
	result, err := p.writer.WriteMany(ctx, books)
	report.Inserted = result.Inserted
	report.Skipped = result.Skipped
	if err != nil {
		p.transition(StateFailed)
		report.State = StateFailed
		return report, err
	}

	p.transition(StateDone)
	report.State = StateDone
	p.log.Info().
		Str("category", category.Name).
		Int("scraped", report.Scraped).
		Int("normalized", report.Normalized).
		Int("dropped", report.Dropped).
		Int("inserted", report.Inserted).
		Int("skipped", report.Skipped).
		Dur("elapsed", time.Since(start)).
		Msg("Scrape run complete")
	return report, nil
}

func (p *Pipeline) transition(next State) {
	p.log.Debug().Str("from", string(p.state)).Str("to", string(next)).Msg("Pipeline state change")
	p.state = next
}
