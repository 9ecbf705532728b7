package models

import "strings"

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortDownloads SortKey = "downloads"
)

// ParseSortKey maps unknown or empty keys to SortFeatured.
func ParseSortKey(s string) SortKey {
	switch key := SortKey(strings.TrimSpace(s)); key {
	case SortPriceLow, SortPriceHigh, SortRating, SortDownloads:
		return key
	default:
		return SortFeatured
	}
}

type CatalogQuery struct {
	Term     string     `json:"search"`
	Category CategoryID `json:"category"`
	Sort     SortKey    `json:"sort"`
}

// Normalize returns the canonical form of q, so that equal queries compare equal.
// Term is kept verbatim: only the empty string disables the text filter.
func (q CatalogQuery) Normalize() CatalogQuery {
	q.Category = CategoryID(strings.TrimSpace(string(q.Category)))
	if q.Category == "" {
		q.Category = CategoryAll
	}

	q.Sort = ParseSortKey(string(q.Sort))

	return q
}
