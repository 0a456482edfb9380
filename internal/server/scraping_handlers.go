package server

import (
	"errors"
	"net/http"

	"github.com/Renan-Leal/libraflux/internal/scraper"
)

// ScrapeTrigger starts a scrape run in the background
type ScrapeTrigger interface {
	Trigger() error
}

// ScrapingHandler triggers scrape runs
type ScrapingHandler struct {
	runner ScrapeTrigger
}

// NewScrapingHandler creates a new scraping handler
func NewScrapingHandler(runner ScrapeTrigger) *ScrapingHandler {
	return &ScrapingHandler{runner: runner}
}

// Trigger handles POST /scraping/trigger. The run proceeds in the
// background; the caller only learns that it started. Outcome counts
// are observable through the logs.
func (h *ScrapingHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if err := h.runner.Trigger(); err != nil {
		if errors.Is(err, scraper.ErrRunInProgress) {
			WriteJSONError(w, http.StatusConflict, "a scrape run is already in progress")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusAccepted, map[string]string{
		"status":  "INITIALIZED",
		"message": "Scrape run started, results will be available when it completes.",
	})
}
