package catalog

import (
	"cmp"
	"slices"
)

// SortKey selects the ordering of the listing grid.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// SortOption is one entry of the sort selector.
type SortOption struct {
	Key   SortKey
	Label string
}

// SortOptions lists the sort selector entries in display order.
func SortOptions() []SortOption {
	return []SortOption{
		{SortFeatured, "Featured"},
		{SortNewest, "Newest First"},
		{SortPriceLow, "Price: Low to High"},
		{SortPriceHigh, "Price: High to Low"},
		{SortRating, "Highest Rated"},
	}
}

// ParseSortKey maps unknown or empty values to SortFeatured.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		return k
	}
	return SortFeatured
}

// Sort returns a stably sorted copy of listings. The input is not modified.
func Sort(listings []*Listing, key SortKey) []*Listing {
	out := slices.Clone(listings)
	var byKey func(a, b *Listing) int
	switch key {
	case SortPriceLow:
		byKey = func(a, b *Listing) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceHigh:
		byKey = func(a, b *Listing) int { return cmp.Compare(b.Price, a.Price) }
	case SortRating:
		byKey = func(a, b *Listing) int { return cmp.Compare(b.Rating(), a.Rating()) }
	case SortNewest:
		byKey = func(a, b *Listing) int { return cmp.Compare(b.ID, a.ID) }
	default:
		return out
	}
	slices.SortStableFunc(out, byKey)
	return out
}
