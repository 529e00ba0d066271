package catalog

// Condition grades a listing's wear.
type Condition string

const (
	ConditionNew           Condition = "New"
	ConditionUsedExcellent Condition = "Used - Excellent"
	ConditionUsedGood      Condition = "Used - Good"
	ConditionUsedFair      Condition = "Used - Fair"
)

// Seller is the summary of the shop or person offering a listing.
type Seller struct {
	Name        string  `json:"name"`
	Avatar      string  `json:"avatar,omitempty"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Location    string  `json:"location"`
	Verified    bool    `json:"verified"`
	MemberSince string  `json:"member_since"`
}

// Spec is one row of a listing's specification table.
type Spec struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Listing is a bike offered on the marketplace. Listings are created once as
// fixtures and never mutated.
type Listing struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Price          int       `json:"price"`
	OriginalPrice  int       `json:"original_price,omitempty"`
	Category       string    `json:"category"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model,omitempty"`
	Year           int       `json:"year,omitempty"`
	Size           string    `json:"size,omitempty"`
	Color          string    `json:"color,omitempty"`
	Condition      Condition `json:"condition"`
	Location       string    `json:"location"`
	Images         []string  `json:"images,omitempty"`
	Seller         Seller    `json:"seller"`
	Description    string    `json:"description,omitempty"`
	Specifications []Spec    `json:"specifications,omitempty"`
	Features       []string  `json:"features,omitempty"`
}

// OnSale reports whether the listing carries a "was" price.
func (l *Listing) OnSale() bool { return l.OriginalPrice > 0 }

// Rating is the seller's rating, shown on listing cards.
func (l *Listing) Rating() float64 { return l.Seller.Rating }

// Reviews is the seller's review count.
func (l *Listing) Reviews() int { return l.Seller.Reviews }

// CoverImage returns the first gallery image or the placeholder.
func (l *Listing) CoverImage() string {
	if len(l.Images) == 0 || l.Images[0] == "" {
		return PlaceholderImage
	}
	return l.Images[0]
}

// Category is one tile of the home page category grid.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Image string `json:"image"`
}

// Options enumerates the values a Filter may select.
type Options struct {
	Categories []string    `json:"categories"`
	Brands     []string    `json:"brands"`
	Conditions []Condition `json:"conditions"`
	MinPrice   int         `json:"min_price"`
	MaxPrice   int         `json:"max_price"`
	PriceStep  int         `json:"price_step"`
}
