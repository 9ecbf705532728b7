package models

import "math"

type CategoryID string

// CategoryAll disables the category filter of a catalog query.
const CategoryAll CategoryID = "all"

type Category struct {
	ID          CategoryID `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Color       string     `json:"color" yaml:"color"`
	Icon        string     `json:"icon" yaml:"icon"`
}

// CategoryCount is a category as shown in the listing sidebar.
type CategoryCount struct {
	Category
	ProductCount int `json:"product_count"`
}

type Product struct {
	ID              int64      `json:"id" yaml:"id"`
	Title           string     `json:"title" yaml:"title"`
	Description     string     `json:"description" yaml:"description"`
	LongDescription string     `json:"long_description" yaml:"long_description"`
	Price           float64    `json:"price" yaml:"price"`
	OriginalPrice   *float64   `json:"original_price,omitempty" yaml:"original_price"`
	Category        CategoryID `json:"category" yaml:"category"`
	Rating          float64    `json:"rating" yaml:"rating"`
	ReviewCount     int        `json:"review_count" yaml:"review_count"`
	DownloadCount   int        `json:"download_count" yaml:"download_count"`
	Image           string     `json:"image" yaml:"image"`
	Tags            []string   `json:"tags" yaml:"tags"`
	Featured        bool       `json:"featured" yaml:"featured"`
}

// DiscountPercent is the whole-number discount against OriginalPrice, or 0.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 || *p.OriginalPrice <= p.Price {
		return 0
	}

	return int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
}

type Testimonial struct {
	ID      int64   `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Role    string  `json:"role" yaml:"role"`
	Company string  `json:"company" yaml:"company"`
	Avatar  string  `json:"avatar" yaml:"avatar"`
	Content string  `json:"content" yaml:"content"`
	Rating  float64 `json:"rating" yaml:"rating"`
}

type FAQ struct {
	ID       int64  `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
