package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Renan-Leal/libraflux/internal/user"
	"github.com/Renan-Leal/libraflux/logger"
)

// Handlers groups every route handler the server mounts
type Handlers struct {
	Books    *BookHandler
	Auth     *AuthHandler
	Stats    *StatsHandler
	ML       *MLHandler
	Scraping *ScrapingHandler
	Health   *HealthHandler
}

// Server is the HTTP front of the application
type Server struct {
	httpServer *http.Server
	log        *logger.Logger
}

// NewServer builds the router and wires all routes. The scrape
// trigger requires an authenticated ROOT token; everything else is
// open, matching the original service.
func NewServer(addr, jwtSecret string, h Handlers, log *logger.Logger) *Server {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(log), middleware.Recoverer)

	r.Get("/health", h.Health.Check)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Auth.Signup)
		r.Post("/login", h.Auth.Login)
	})

	r.Route("/books", func(r chi.Router) {
		r.Get("/", h.Books.List)
		r.Get("/top-rated", h.Books.TopRated)
		r.Get("/price-range", h.Books.PriceRange)
		r.Get("/search", h.Books.Search)
		r.Get("/{id}", h.Books.GetByID)
	})

	r.Get("/categories", h.Books.Categories)

	r.Route("/stats", func(r chi.Router) {
		r.Get("/overview", h.Stats.Overview)
		r.Get("/categories", h.Stats.Categories)
	})

	r.Route("/ml", func(r chi.Router) {
		r.Get("/features", h.ML.Features)
		r.Get("/training-data", h.ML.TrainingData)
		r.Post("/predictions", h.ML.Predictions)
	})

	r.Route("/scraping", func(r chi.Router) {
		r.Use(AuthMiddleware(jwtSecret), RequireRole(user.RoleRoot))
		r.Post("/trigger", h.Scraping.Trigger)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: r,
		},
		log: log,
	}
}

// Start begins serving and blocks until shutdown
func (s *Server) Start() error {
	s.log.Info().Str("address", s.httpServer.Addr).Msg("Starting REST server")
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info().Msg("Stopping REST server")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
