package server

import (
	"encoding/json"
	"net/http"

	"github.com/Renan-Leal/libraflux/internal/ml"
)

// MLHandler serves feature and training-data endpoints
type MLHandler struct {
	service *ml.Service
}

// NewMLHandler creates a new ML handler
func NewMLHandler(service *ml.Service) *MLHandler {
	return &MLHandler{service: service}
}

// Features handles GET /ml/features
func (h *MLHandler) Features(w http.ResponseWriter, r *http.Request) {
	features, err := h.service.GetFeatures(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, features)
}

// TrainingData handles GET /ml/training-data
func (h *MLHandler) TrainingData(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.GetTrainingData(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, rows)
}

// Predictions handles POST /ml/predictions
func (h *MLHandler) Predictions(w http.ResponseWriter, r *http.Request) {
	var prediction ml.Prediction
	if err := json.NewDecoder(r.Body).Decode(&prediction); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.service.SavePrediction(prediction)
	RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Prediction received successfully."})
}
