package catalog

import (
	"net/url"

	"github.com/gorilla/schema"
)

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// filterForm mirrors the listing page form. The JSON API reads the same
// names from the query string.
type filterForm struct {
	Search     string   `schema:"q"`
	Categories []string `schema:"category"`
	Brands     []string `schema:"brand"`
	Conditions []string `schema:"condition"`
	MinPrice   int      `schema:"min_price"`
	MaxPrice   int      `schema:"max_price"`
	Sort       string   `schema:"sort"`
}

// DecodeFilter builds a Filter from submitted form values. Fields that fail
// to convert keep their defaults; the returned error describes them and the
// Filter is still usable.
func DecodeFilter(values url.Values) (Filter, error) {
	def := DefaultFilter()
	form := filterForm{MinPrice: def.MinPrice, MaxPrice: def.MaxPrice, Sort: string(def.Sort)}
	err := decoder.Decode(&form, values)

	conditions := make([]Condition, 0, len(form.Conditions))
	for _, c := range form.Conditions {
		conditions = append(conditions, Condition(c))
	}
	return Filter{
		Search:     form.Search,
		Categories: form.Categories,
		Brands:     form.Brands,
		Conditions: conditions,
		MinPrice:   form.MinPrice,
		MaxPrice:   form.MaxPrice,
		Sort:       SortKey(form.Sort),
	}, err
}
