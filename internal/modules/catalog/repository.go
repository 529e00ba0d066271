package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no listing exists for an id.
var ErrNotFound = errors.New("listing not found")

// Repository defines read access to marketplace listings. There is no write
// path; listings come from fixtures.
type Repository interface {
	// List returns every listing in fixture order.
	List(ctx context.Context) ([]*Listing, error)
	GetByID(ctx context.Context, id int) (*Listing, error)
	Source() string
}
