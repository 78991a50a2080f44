package domain

// Product is a catalog product as returned by the record store.
// Values are immutable snapshots; relations (reviews, collections)
// are resolved on demand by id lookup.
type Product struct {
	ID          int      `json:"Id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"salePrice"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	InStock     bool     `json:"inStock"`
	Tags        []string `json:"tags"`
}

// ProductPatch carries a partial product update. Only non-nil fields
// are written to the store; a nil field leaves the stored value alone.
type ProductPatch struct {
	Name        *string
	Brand       *string
	Category    *string
	Subcategory *string
	Price       *float64
	SalePrice   *float64
	Images      *[]string
	Description *string
	Ingredients *[]string
	Rating      *float64
	ReviewCount *int
	InStock     *bool
	Tags        *[]string
}

// Sort keys accepted by ProductFilter.SortBy.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// ProductFilter describes a catalog browse request. A zero-value
// option means "no predicate" — an omitted price bound is different
// from an explicit bound of 0, hence the pointers. Tags cannot be
// expressed in the remote query language and are applied client-side
// after retrieval.
type ProductFilter struct {
	Category    string
	Subcategory string
	Brands      []string
	PriceMin    *float64
	PriceMax    *float64
	InStock     bool
	SortBy      string
	Tags        []string
}
