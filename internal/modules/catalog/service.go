package catalog

import (
	"context"
	"fmt"
)

// Service defines storefront catalog queries.
type Service interface {
	Featured(ctx context.Context) ([]*Listing, error)
	Categories(ctx context.Context) []Category
	Browse(ctx context.Context, f Filter) ([]*Listing, error)
	GetListing(ctx context.Context, id int) (*Listing, error)
	Options() Options
	Source() string
}

type service struct {
	repo    Repository
	options Options
}

func NewService(repo Repository) Service {
	return &service{repo: repo, options: DefaultOptions()}
}

func (s *service) Featured(ctx context.Context) ([]*Listing, error) {
	listings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("featured listings: %w", err)
	}
	if len(listings) > FeaturedCount {
		listings = listings[:FeaturedCount]
	}
	return listings, nil
}

func (s *service) Categories(ctx context.Context) []Category {
	return homeCategories()
}

// Browse filters every listing with f and orders the result by f.Sort.
func (s *service) Browse(ctx context.Context, f Filter) ([]*Listing, error) {
	listings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("browse listings: %w", err)
	}
	return Sort(f.Apply(listings), f.Sort), nil
}

func (s *service) GetListing(ctx context.Context, id int) (*Listing, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Options() Options { return s.options }

func (s *service) Source() string { return s.repo.Source() }
