package scraper

import (
	"context"
	"errors"
	"time"

	"github.com/Renan-Leal/libraflux/logger"
	"github.com/Renan-Leal/libraflux/services/cache"
)

// ErrRunInProgress is returned when a trigger arrives while a run is active
var ErrRunInProgress = errors.New("a scrape run is already in progress")

const runLockKey = "scrape:running"

// runLockTTL bounds how long a crashed run can keep the lock
const runLockTTL = 2 * time.Hour

// Runner starts pipeline runs off the request path. The triggering
// caller gets an immediate answer; the run itself proceeds to
// completion or failure in the background, observable through logs.
type Runner struct {
	cfg   PipelineConfig
	store BookStore
	cache cache.CacheService
	log   *logger.Logger
}

// NewRunner creates a new scrape runner
func NewRunner(cfg PipelineConfig, store BookStore, cacheSvc cache.CacheService, log *logger.Logger) *Runner {
	return &Runner{cfg: cfg, store: store, cache: cacheSvc, log: log}
}

// Trigger starts one run in the background. A cache-backed lock
// rejects overlapping runs with ErrRunInProgress.
func (r *Runner) Trigger() error {
	if _, err := r.cache.Get(runLockKey); err == nil {
		return ErrRunInProgress
	}
	if err := r.cache.Set(runLockKey, []byte("1"), runLockTTL); err != nil {
		// A broken cache must not block ingestion; run without the lock
		r.log.Warn().Err(err).Msg("Could not acquire run lock, proceeding anyway")
	}

	go func() {
		defer func() {
			if err := r.cache.Delete(runLockKey); err != nil {
				r.log.Warn().Err(err).Msg("Could not release run lock")
			}
		}()

		pipeline := NewPipeline(r.cfg, r.store, r.log)
		if _, err := pipeline.Run(context.Background()); err != nil {
			r.log.Error().Err(err).Msg("Scrape run failed")
		}
	}()

	return nil
}
