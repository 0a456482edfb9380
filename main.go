package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Renan-Leal/libraflux/config"
	"github.com/Renan-Leal/libraflux/internal/auth"
	"github.com/Renan-Leal/libraflux/internal/book"
	"github.com/Renan-Leal/libraflux/internal/health"
	"github.com/Renan-Leal/libraflux/internal/ml"
	"github.com/Renan-Leal/libraflux/internal/scraper"
	"github.com/Renan-Leal/libraflux/internal/server"
	"github.com/Renan-Leal/libraflux/internal/stats"
	"github.com/Renan-Leal/libraflux/internal/user"
	"github.com/Renan-Leal/libraflux/logger"
	"github.com/Renan-Leal/libraflux/services/cache"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("scrape_base_url", cfg.ScrapeBaseURL).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize services
	services, err := initializeServices(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer services.Cleanup()

	// Bootstrap the default admin
	if err := services.Auth.EnsureDefaultAdmin(ctx, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword); err != nil {
		log.Error().Err(err).Msg("Failed to bootstrap default admin")
	}

	srv := server.NewServer(
		net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
		cfg.JWTSecret,
		server.Handlers{
			Books:    server.NewBookHandler(services.Books),
			Auth:     server.NewAuthHandler(services.Auth),
			Stats:    server.NewStatsHandler(services.Stats),
			ML:       server.NewMLHandler(services.ML),
			Scraping: server.NewScrapingHandler(services.Runner),
			Health:   server.NewHealthHandler(services.Health),
		},
		logger.ForServer(),
	)

	// Start the server in a goroutine
	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Start()
	}()

	// Wait for shutdown signal or server error
	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-serverDone:
		if err != nil {
			log.Error().Err(err).Msg("Server exited with error")
		}
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
}

// Services holds all the initialized services
type Services struct {
	DB     *pgxpool.Pool
	Cache  cache.CacheService
	Books  *book.Service
	Auth   *auth.Service
	Stats  *stats.Service
	ML     *ml.Service
	Health *health.Service
	Runner *scraper.Runner
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	if closer, ok := s.Cache.(interface{ Close() error }); ok {
		closer.Close()
	}
}

// initializeServices initializes all required services
func initializeServices(ctx context.Context, cfg config.Config) (*Services, error) {
	services := &Services{}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	services.DB = pool
	logger.Info("Connected to Postgres")

	bookRepo := book.NewPostgresRepo(pool)
	userRepo := user.NewPostgresRepo(pool)
	if err := bookRepo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure books schema: %w", err)
	}
	if err := userRepo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure users schema: %w", err)
	}

	switch cfg.CacheBackend {
	case "redis":
		services.Cache = cache.NewRedisService(ctx, cfg.RedisAddr, cfg.RedisDB)
		logger.Info("Using Redis cache at %s (DB: %d)", cfg.RedisAddr, cfg.RedisDB)
	default:
		services.Cache = cache.NewMemcacheService(cfg.MemcacheAddr)
		logger.Info("Using Memcache at %s", cfg.MemcacheAddr)
	}

	services.Books = book.NewService(bookRepo)
	services.Auth = auth.NewService(userRepo, cfg.JWTSecret, cfg.JWTTTL, logger.Default.WithField("component", "auth"))
	services.Stats = stats.NewService(bookRepo, services.Cache, cfg.StatsCacheTTL, logger.Default.WithField("component", "stats"))
	services.ML = ml.NewService(bookRepo, logger.Default.WithField("component", "ml"))
	services.Health = health.NewService(cfg.ScrapeBaseURL)
	services.Runner = scraper.NewRunner(
		scraper.PipelineConfig{
			BaseURL:       cfg.ScrapeBaseURL,
			CategoryIndex: cfg.ScrapeCategoryIndex,
			MaxPages:      cfg.ScrapeMaxPages,
			PageDelay:     cfg.ScrapePageDelay,
			FetchTimeout:  cfg.FetchTimeout,
		},
		bookRepo,
		services.Cache,
		logger.ForScraper(),
	)

	return services, nil
}
