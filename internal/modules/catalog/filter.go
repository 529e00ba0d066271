package catalog

import (
	"slices"
	"strings"
)

// Filter is the listing page's view state: search text, selected facets,
// price range and sort order. Empty selections match everything.
type Filter struct {
	Search     string
	Categories []string
	Brands     []string
	Conditions []Condition
	MinPrice   int
	MaxPrice   int
	Sort       SortKey
}

// DefaultFilter selects everything over the full price range in featured order.
func DefaultFilter() Filter {
	return Filter{MinPrice: PriceFloor, MaxPrice: PriceCeil, Sort: SortFeatured}
}

// Matches reports whether l satisfies every criterion of f.
func (f Filter) Matches(l *Listing) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(l.Name), term) &&
			!strings.Contains(strings.ToLower(l.Brand), term) {
			return false
		}
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, l.Category) {
		return false
	}
	if len(f.Brands) > 0 && !slices.Contains(f.Brands, l.Brand) {
		return false
	}
	if len(f.Conditions) > 0 && !slices.Contains(f.Conditions, l.Condition) {
		return false
	}
	return l.Price >= f.MinPrice && l.Price <= f.MaxPrice
}

// Apply returns the listings matching f, preserving input order.
func (f Filter) Apply(listings []*Listing) []*Listing {
	out := make([]*Listing, 0, len(listings))
	for _, l := range listings {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

// Normalize keeps selections within opts and the price range within its
// bounds. An inverted range is swapped.
func (f Filter) Normalize(opts Options) Filter {
	f.Categories = keepKnown(f.Categories, opts.Categories)
	f.Brands = keepKnown(f.Brands, opts.Brands)
	f.Conditions = keepKnown(f.Conditions, opts.Conditions)
	f.MinPrice = clamp(f.MinPrice, opts.MinPrice, opts.MaxPrice)
	f.MaxPrice = clamp(f.MaxPrice, opts.MinPrice, opts.MaxPrice)
	if f.MinPrice > f.MaxPrice {
		f.MinPrice, f.MaxPrice = f.MaxPrice, f.MinPrice
	}
	f.Sort = ParseSortKey(string(f.Sort))
	return f
}

// Selected reports whether v is one of the selected values. Used by templates
// to check boxes.
func (f Filter) Selected(facet, v string) bool {
	switch facet {
	case "category":
		return slices.Contains(f.Categories, v)
	case "brand":
		return slices.Contains(f.Brands, v)
	case "condition":
		return slices.Contains(f.Conditions, Condition(v))
	}
	return false
}

func keepKnown[T comparable](selected, known []T) []T {
	var out []T
	for _, v := range selected {
		if slices.Contains(known, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
