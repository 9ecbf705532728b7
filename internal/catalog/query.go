package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
)

const (
	RelatedLimit      = 3
	HomeFeaturedLimit = 3
)

// Apply runs the category filter, the text filter and the sort, in that order.
// The input slice is left untouched and the result is never nil.
func Apply(products []models.Product, q models.CatalogQuery) []models.Product {
	q = q.Normalize()
	term := strings.ToLower(q.Term)

	out := make([]models.Product, 0, len(products))

	for _, p := range products {
		if q.Category != models.CategoryAll && p.Category != q.Category {
			continue
		}
		if term != "" && !matches(p, term) {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, comparator(q.Sort))

	return out
}

// matches expects term already lower-cased.
func matches(p models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}

	return slices.ContainsFunc(p.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), term)
	})
}

func comparator(key models.SortKey) func(a, b models.Product) int {
	switch key {
	case models.SortPriceLow:
		return func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) }
	case models.SortPriceHigh:
		return func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) }
	case models.SortRating:
		return func(a, b models.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	case models.SortDownloads:
		return func(a, b models.Product) int { return cmp.Compare(b.DownloadCount, a.DownloadCount) }
	default:
		return featuredFirst
	}
}

// featured before non-featured, then rating descending
func featuredFirst(a, b models.Product) int {
	if a.Featured != b.Featured {
		if a.Featured {
			return -1
		}
		return 1
	}

	return cmp.Compare(b.Rating, a.Rating)
}

// Related returns up to limit products sharing p's category, excluding p, in catalog order.
func Related(products []models.Product, p models.Product, limit int) []models.Product {
	if limit <= 0 {
		return []models.Product{}
	}

	out := make([]models.Product, 0, limit)

	for _, candidate := range products {
		if len(out) == limit {
			break
		}
		if candidate.Category == p.Category && candidate.ID != p.ID {
			out = append(out, candidate)
		}
	}

	return out
}

// Featured returns up to limit featured products in catalog order.
func Featured(products []models.Product, limit int) []models.Product {
	if limit <= 0 {
		return []models.Product{}
	}

	out := make([]models.Product, 0, limit)

	for _, p := range products {
		if len(out) == limit {
			break
		}
		if p.Featured {
			out = append(out, p)
		}
	}

	return out
}

// CountByCategory returns the "all" pseudo-category followed by every catalog
// category with its product count.
func CountByCategory(c *Catalog) []models.CategoryCount {
	counts := make(map[models.CategoryID]int)
	for _, p := range c.products {
		counts[p.Category]++
	}

	out := make([]models.CategoryCount, 0, len(c.categories)+1)
	out = append(out, models.CategoryCount{
		Category: models.Category{
			ID:          models.CategoryAll,
			Name:        "All Products",
			Description: "Browse all available products",
		},
		ProductCount: len(c.products),
	})

	for _, cat := range c.categories {
		out = append(out, models.CategoryCount{Category: cat, ProductCount: counts[cat.ID]})
	}

	return out
}

// PriceRange is the zero range for an empty catalog.
func PriceRange(products []models.Product) models.PriceRange {
	if len(products) == 0 {
		return models.PriceRange{}
	}

	r := models.PriceRange{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		r.Min = min(r.Min, p.Price)
		r.Max = max(r.Max, p.Price)
	}

	return r
}
