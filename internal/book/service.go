package book

import "context"

// Repository is the storage surface the book service reads from
type Repository interface {
	ListAll(ctx context.Context) ([]Book, error)
	List(ctx context.Context, limit, offset int) ([]Book, error)
	GetByID(ctx context.Context, id int) (Book, error)
	Search(ctx context.Context, title, category string) ([]Book, error)
	TopRated(ctx context.Context) ([]Book, error)
	PriceRange(ctx context.Context, minPrice, maxPrice float64) ([]Book, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

// Service exposes read operations over the ingested catalog
type Service struct {
	repo Repository
}

// NewService creates a new book service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all books, or one page when page and size are positive
func (s *Service) List(ctx context.Context, page, size int) ([]Book, error) {
	if page > 0 && size > 0 {
		return s.repo.List(ctx, size, (page-1)*size)
	}
	return s.repo.ListAll(ctx)
}

// GetByID returns one book by row id
func (s *Service) GetByID(ctx context.Context, id int) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns books matching the given title and/or category
func (s *Service) Search(ctx context.Context, title, category string) ([]Book, error) {
	return s.repo.Search(ctx, title, category)
}

// TopRated returns well-rated books, best first
func (s *Service) TopRated(ctx context.Context) ([]Book, error) {
	return s.repo.TopRated(ctx)
}

// PriceRange returns books priced inside [minPrice, maxPrice]
func (s *Service) PriceRange(ctx context.Context, minPrice, maxPrice float64) ([]Book, error) {
	return s.repo.PriceRange(ctx, minPrice, maxPrice)
}

// Categories returns the distinct categories present in the catalog
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCategories(ctx)
}
