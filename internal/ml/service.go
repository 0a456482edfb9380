package ml

import (
	"context"

	"github.com/Renan-Leal/libraflux/internal/book"
	"github.com/Renan-Leal/libraflux/logger"
)

// Reader is the catalog read surface features are built from
type Reader interface {
	ListAll(ctx context.Context) ([]book.Book, error)
}

// BookFeature is one book formatted as model features
type BookFeature struct {
	BookID            string  `json:"book_id"`
	Category          string  `json:"category"`
	Rating            int     `json:"rating"`
	Price             float64 `json:"price"`
	Availability      int     `json:"availability"`
	DescriptionLength int     `json:"description_length"`
}

// TrainingRow is one training sample, features plus the rating target
type TrainingRow struct {
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	Availability      int     `json:"availability"`
	DescriptionLength int     `json:"description_length"`
	Rating            int     `json:"rating"`
}

// Prediction is a model output posted back to the API
type Prediction struct {
	BookID          string  `json:"book_id"`
	PredictedRating float64 `json:"predicted_rating"`
}

// Service formats catalog data for ML consumers
type Service struct {
	reader Reader
	log    *logger.Logger
}

// NewService creates a new ML data service
func NewService(reader Reader, log *logger.Logger) *Service {
	return &Service{reader: reader, log: log}
}

// GetFeatures returns every book formatted as features
func (s *Service) GetFeatures(ctx context.Context) ([]BookFeature, error) {
	books, err := s.reader.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	features := make([]BookFeature, 0, len(books))
	for _, b := range books {
		features = append(features, BookFeature{
			BookID:            b.UUID,
			Category:          b.Category,
			Rating:            b.Rating,
			Price:             b.PriceInclTax,
			Availability:      b.Availability,
			DescriptionLength: len(b.Description),
		})
	}
	return features, nil
}

// GetTrainingData returns the catalog as training samples
func (s *Service) GetTrainingData(ctx context.Context) ([]TrainingRow, error) {
	books, err := s.reader.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]TrainingRow, 0, len(books))
	for _, b := range books {
		rows = append(rows, TrainingRow{
			Category:          b.Category,
			Price:             b.PriceInclTax,
			Availability:      b.Availability,
			DescriptionLength: len(b.Description),
			Rating:            b.Rating,
		})
	}
	return rows, nil
}

// SavePrediction records a received prediction. Predictions are only
// logged, not persisted.
func (s *Service) SavePrediction(p Prediction) {
	s.log.Info().
		Str("book_id", p.BookID).
		Float64("predicted_rating", p.PredictedRating).
		Msg("Received prediction")
}
