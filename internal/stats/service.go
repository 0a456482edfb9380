package stats

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/Renan-Leal/libraflux/internal/book"
	"github.com/Renan-Leal/libraflux/logger"
	"github.com/Renan-Leal/libraflux/services/cache"
)

// Reader is the catalog read surface the stats are computed from
type Reader interface {
	ListAll(ctx context.Context) ([]book.Book, error)
}

// Overview aggregates the whole catalog
type Overview struct {
	TotalBooks         int         `json:"total_books"`
	AveragePrice       float64     `json:"average_price"`
	RatingDistribution map[int]int `json:"rating_distribution"`
}

// CategoryStats aggregates one category
type CategoryStats struct {
	BookCount    int     `json:"book_count"`
	AveragePrice float64 `json:"average_price"`
}

// Service computes catalog statistics, caching the responses with a TTL
type Service struct {
	reader Reader
	cache  cache.CacheService
	ttl    time.Duration
	log    *logger.Logger
}

// NewService creates a new stats service
func NewService(reader Reader, cacheSvc cache.CacheService, ttl time.Duration, log *logger.Logger) *Service {
	return &Service{reader: reader, cache: cacheSvc, ttl: ttl, log: log}
}

// GetOverview returns total book count, average tax-inclusive price
// and the rating distribution
func (s *Service) GetOverview(ctx context.Context) (Overview, error) {
	var cached Overview
	if s.fromCache("stats:overview", &cached) {
		return cached, nil
	}

	books, err := s.reader.ListAll(ctx)
	if err != nil {
		return Overview{}, err
	}

	overview := Overview{
		TotalBooks:         len(books),
		RatingDistribution: map[int]int{},
	}
	if len(books) == 0 {
		return overview, nil
	}

	var totalPrice float64
	for _, b := range books {
		totalPrice += b.PriceInclTax
		if b.Rating > 0 && b.Rating <= 5 {
			overview.RatingDistribution[b.Rating]++
		}
	}
	overview.AveragePrice = round2(totalPrice / float64(len(books)))

	s.toCache("stats:overview", overview)
	return overview, nil
}

// GetCategoriesStats returns book count and average price per category
func (s *Service) GetCategoriesStats(ctx context.Context) (map[string]CategoryStats, error) {
	var cached map[string]CategoryStats
	if s.fromCache("stats:categories", &cached) {
		return cached, nil
	}

	books, err := s.reader.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := map[string]float64{}
	counts := map[string]int{}
	for _, b := range books {
		counts[b.Category]++
		totals[b.Category] += b.PriceInclTax
	}

	result := make(map[string]CategoryStats, len(counts))
	for category, count := range counts {
		result[category] = CategoryStats{
			BookCount:    count,
			AveragePrice: round2(totals[category] / float64(count)),
		}
	}

	s.toCache("stats:categories", result)
	return result, nil
}

func (s *Service) fromCache(key string, out any) bool {
	data, err := s.cache.Get(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache entry")
		return false
	}
	return true
}

func (s *Service) toCache(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(key, data, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Could not cache stats response")
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
