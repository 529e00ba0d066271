package catalog

import "context"

type memoryRepo struct {
	listings []*Listing
	byID     map[int]*Listing
}

// NewMemoryRepository serves the given listings from memory. The slice order
// is the featured order. Later duplicates of an id shadow earlier ones in
// GetByID.
func NewMemoryRepository(listings []*Listing) Repository {
	byID := make(map[int]*Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}
	return &memoryRepo{listings: listings, byID: byID}
}

func (r *memoryRepo) List(ctx context.Context) ([]*Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*Listing, len(r.listings))
	copy(out, r.listings)
	return out, nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id int) (*Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return l, nil
}

func (r *memoryRepo) Source() string { return "memory" }
