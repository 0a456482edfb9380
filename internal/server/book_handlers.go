package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Renan-Leal/libraflux/internal/book"
)

// BookHandler serves catalog read endpoints
type BookHandler struct {
	service *book.Service
}

// NewBookHandler creates a new book handler
func NewBookHandler(service *book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /books?page=1&size=10; without both parameters it
// returns the whole catalog
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	books, err := h.service.List(r.Context(), page, size)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, books)
}

// GetByID handles GET /books/{id}
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "book not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, b)
}

// Search handles GET /books/search?title=X&category=Y
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	category := r.URL.Query().Get("category")

	books, err := h.service.Search(r.Context(), title, category)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, books)
}

// TopRated handles GET /books/top-rated
func (h *BookHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.TopRated(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, books)
}

// PriceRange handles GET /books/price-range?min_price=10&max_price=50
func (h *BookHandler) PriceRange(w http.ResponseWriter, r *http.Request) {
	minPrice, errMin := strconv.ParseFloat(r.URL.Query().Get("min_price"), 64)
	maxPrice, errMax := strconv.ParseFloat(r.URL.Query().Get("max_price"), 64)
	if errMin != nil || errMax != nil {
		WriteJSONError(w, http.StatusBadRequest, "min_price and max_price are required")
		return
	}

	books, err := h.service.PriceRange(r.Context(), minPrice, maxPrice)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, books)
}

// Categories handles GET /categories
func (h *BookHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, categories)
}
