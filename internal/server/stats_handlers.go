package server

import (
	"net/http"

	"github.com/Renan-Leal/libraflux/internal/stats"
)

// StatsHandler serves catalog statistics
type StatsHandler struct {
	service *stats.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *stats.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

// Overview handles GET /stats/overview
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.GetOverview(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, overview)
}

// Categories handles GET /stats/categories
func (h *StatsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categoryStats, err := h.service.GetCategoriesStats(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, categoryStats)
}
