package model

import "time"

// Product is a merchant listing.
type Product struct {
	ID          string
	MerchantID  string
	Title       string
	Description *string
	Price       float64
	ImageURL    *string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductSort selects catalog ordering.
type ProductSort string

const (
	ProductSortNewest   ProductSort = "newest"
	ProductSortPriceAsc ProductSort = "price"
)

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	MerchantID string
	Search     string
	Category   string
	Sort       ProductSort
}

// Empty reports whether the filter would return the full catalog in the
// default order. Only such listings are worth caching.
func (f ProductFilter) Empty() bool {
	return f.MerchantID == "" && f.Search == "" && f.Category == "" &&
		(f.Sort == "" || f.Sort == ProductSortNewest)
}

// ProductUpdate carries mutable product fields; nil means keep current.
type ProductUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	ImageURL    *string
	Category    *string
}
