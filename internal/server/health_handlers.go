package server

import (
	"net/http"

	"github.com/Renan-Leal/libraflux/internal/health"
)

// HealthHandler serves the upstream health probe
type HealthHandler struct {
	service *health.Service
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service *health.Service) *HealthHandler {
	return &HealthHandler{service: service}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := h.service.Check()
	code := http.StatusOK
	if status.Status != "up" {
		code = http.StatusServiceUnavailable
	}
	RespondWithJSON(w, code, status)
}
