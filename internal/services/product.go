package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/cache"
	"github.com/aaravmahajanofficial/digital-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
)

type ProductService interface {
	ListProducts(ctx context.Context, q models.CatalogQuery) []models.Product
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	RelatedProducts(ctx context.Context, id int64) ([]models.Product, error)
	FeaturedProducts(ctx context.Context) []models.Product
	Categories(ctx context.Context) []models.CategoryCount
	Testimonials(ctx context.Context) []models.Testimonial
	FAQs(ctx context.Context) []models.FAQ
	PriceRange(ctx context.Context) models.PriceRange
}

type productService struct {
	catalog *catalog.Catalog
	cache   cache.Cache
	ttl     time.Duration
}

// NewProductService memoizes listings through c. A nil cache evaluates every
// query directly.
func NewProductService(c *catalog.Catalog, queryCache cache.Cache, ttl time.Duration) ProductService {
	return &productService{catalog: c, cache: queryCache, ttl: ttl}
}

// ListProducts never fails: a broken cache only costs a direct evaluation.
func (s *productService) ListProducts(ctx context.Context, q models.CatalogQuery) []models.Product {
	q = q.Normalize()

	if s.cache == nil {
		metrics.CatalogQuery(metrics.CacheBypass)
		return catalog.Apply(s.catalog.Products(), q)
	}

	logger := middleware.LoggerFromContext(ctx)
	key := s.queryKey(q)

	var ids []int64

	found, err := s.cache.Get(ctx, key, &ids)
	if err != nil {
		logger.Warn("Catalog cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	if found {
		if products, ok := s.resolve(ids); ok {
			metrics.CatalogQuery(metrics.CacheHit)
			return products
		}
	}

	metrics.CatalogQuery(metrics.CacheMiss)

	products := catalog.Apply(s.catalog.Products(), q)

	ids = make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	if err := s.cache.Set(ctx, key, ids, s.ttl); err != nil {
		logger.Warn("Catalog cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return products
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	p, ok := s.catalog.Product(id)
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	return &p, nil
}

func (s *productService) RelatedProducts(ctx context.Context, id int64) ([]models.Product, error) {
	p, ok := s.catalog.Product(id)
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	return catalog.Related(s.catalog.Products(), p, catalog.RelatedLimit), nil
}

func (s *productService) FeaturedProducts(ctx context.Context) []models.Product {
	return catalog.Featured(s.catalog.Products(), catalog.HomeFeaturedLimit)
}

func (s *productService) Categories(ctx context.Context) []models.CategoryCount {
	return catalog.CountByCategory(s.catalog)
}

func (s *productService) Testimonials(ctx context.Context) []models.Testimonial {
	return s.catalog.Testimonials()
}

func (s *productService) FAQs(ctx context.Context) []models.FAQ {
	return s.catalog.FAQs()
}

func (s *productService) PriceRange(ctx context.Context) models.PriceRange {
	return catalog.PriceRange(s.catalog.Products())
}

// queryKey embeds the catalog version so that a reload never serves stale ids.
// The term is lower-cased since matching is case-insensitive.
func (s *productService) queryKey(q models.CatalogQuery) string {
	parts := []string{s.catalog.Version(), string(q.Category), string(q.Sort), strings.ToLower(q.Term)}

	return cache.Key(cache.QueryKeyPrefix, strings.Join(parts, "|"))
}

func (s *productService) resolve(ids []int64) ([]models.Product, bool) {
	out := make([]models.Product, 0, len(ids))

	for _, id := range ids {
		p, ok := s.catalog.Product(id)
		if !ok {
			return nil, false
		}
		out = append(out, p)
	}

	return out, true
}
