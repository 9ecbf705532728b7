package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"slices"
	"strconv"

	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed sample_data.yaml
var sampleData []byte

// Catalog is the static product data set. It is loaded once and never mutated;
// accessors hand out copies.
type Catalog struct {
	products     []models.Product
	byID         map[int64]int
	categories   []models.Category
	testimonials []models.Testimonial
	faqs         []models.FAQ
	version      string
}

type dataSet struct {
	Categories   []models.Category    `yaml:"categories"`
	Products     []models.Product     `yaml:"products"`
	Testimonials []models.Testimonial `yaml:"testimonials"`
	FAQs         []models.FAQ         `yaml:"faqs"`
}

// LoadDefault loads the embedded sample catalog.
func LoadDefault() (*Catalog, error) {
	return Load(bytes.NewReader(sampleData))
}

func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog data: %w", err)
	}

	var data dataSet

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog data: %w", err)
	}

	if err := validate(&data); err != nil {
		return nil, err
	}

	h := fnv.New64a()
	h.Write(raw)

	c := &Catalog{
		products:     data.Products,
		byID:         make(map[int64]int, len(data.Products)),
		categories:   data.Categories,
		testimonials: data.Testimonials,
		faqs:         data.FAQs,
		version:      strconv.FormatUint(h.Sum64(), 36),
	}

	for i, p := range c.products {
		c.byID[p.ID] = i
	}

	return c, nil
}

func validate(data *dataSet) error {
	known := make(map[models.CategoryID]bool, len(data.Categories))

	for _, c := range data.Categories {
		if c.ID == "" || c.ID == models.CategoryAll {
			return fmt.Errorf("invalid category id %q", c.ID)
		}
		if known[c.ID] {
			return fmt.Errorf("duplicate category id %q", c.ID)
		}
		known[c.ID] = true
	}

	seen := make(map[int64]bool, len(data.Products))

	for _, p := range data.Products {
		switch {
		case seen[p.ID]:
			return fmt.Errorf("duplicate product id %d", p.ID)
		case !known[p.Category]:
			return fmt.Errorf("product %d: unknown category %q", p.ID, p.Category)
		case p.Price < 0:
			return fmt.Errorf("product %d: negative price", p.ID)
		case p.OriginalPrice != nil && *p.OriginalPrice < p.Price:
			return fmt.Errorf("product %d: original price below price", p.ID)
		case p.Rating < 0 || p.Rating > 5:
			return fmt.Errorf("product %d: rating %.1f out of range", p.ID, p.Rating)
		case p.ReviewCount < 0 || p.DownloadCount < 0:
			return fmt.Errorf("product %d: negative counts", p.ID)
		}
		seen[p.ID] = true
	}

	return nil
}

// Version identifies the loaded data set; it changes whenever the data does.
func (c *Catalog) Version() string {
	return c.version
}

func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	for i, p := range c.products {
		out[i] = cloneProduct(p)
	}

	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Product resolves id against the catalog. It satisfies cart.ProductLookup.
func (c *Catalog) Product(id int64) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}

	return cloneProduct(c.products[i]), true
}

// cloneProduct detaches the slice and pointer fields from the catalog's data.
func cloneProduct(p models.Product) models.Product {
	p.Tags = slices.Clone(p.Tags)
	if p.OriginalPrice != nil {
		original := *p.OriginalPrice
		p.OriginalPrice = &original
	}

	return p
}

func (c *Catalog) Categories() []models.Category {
	return slices.Clone(c.categories)
}

func (c *Catalog) Category(id models.CategoryID) (models.Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}

	return models.Category{}, false
}

func (c *Catalog) Testimonials() []models.Testimonial {
	return slices.Clone(c.testimonials)
}

func (c *Catalog) FAQs() []models.FAQ {
	return slices.Clone(c.faqs)
}
