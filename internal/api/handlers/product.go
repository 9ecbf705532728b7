package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	service "github.com/aaravmahajanofficial/digital-storefront/internal/services"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductListResponse echoes the effective query next to its result.
type ProductListResponse struct {
	Products   []models.Product    `json:"products"`
	Count      int                 `json:"count"`
	Query      models.CatalogQuery `json:"query"`
	PriceRange models.PriceRange   `json:"price_range"`
}

// ProductDetailResponse is one product with its related products.
type ProductDetailResponse struct {
	Product         *models.Product  `json:"product"`
	DiscountPercent int              `json:"discount_percent"`
	Related         []models.Product `json:"related"`
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Runs the catalog query pipeline: category filter, then case-insensitive search over title, description and tags, then a stable sort.
//	@Tags			Products
//	@Produce		json
//	@Param			search	query	string	false	"Search term"
//	@Param			category	query	string	false	"Category id or all"
//	@Param			sort	query	string	false	"featured, price-low, price-high, rating or downloads"
//	@Success		200	{object}	handlers.ProductListResponse	"Matching products"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := models.CatalogQuery{
			Term:     r.URL.Query().Get("search"),
			Category: models.CategoryID(r.URL.Query().Get("category")),
			Sort:     models.SortKey(r.URL.Query().Get("sort")),
		}.Normalize()

		products := h.productService.ListProducts(r.Context(), q)

		middleware.LoggerFromContext(r.Context()).Debug("Products listed",
			slog.String("category", string(q.Category)),
			slog.String("sort", string(q.Sort)),
			slog.Int("count", len(products)))

		response.Success(w, http.StatusOK, ProductListResponse{
			Products:   products,
			Count:      len(products),
			Query:      q,
			PriceRange: h.productService.PriceRange(r.Context()),
		})
	}
}

// GetProduct godoc
//	@Summary		Get a product by ID
//	@Description	Returns one product with its discount and up to three related products from the same category.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path	int	true	"Product ID"
//	@Success		200	{object}	handlers.ProductDetailResponse	"Product details"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product id"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productID(w, r)
		if !ok {
			return
		}

		product, err := h.productService.GetProduct(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Product not found", slog.Int64("productId", id))
			response.Error(w, err)
			return
		}

		related, err := h.productService.RelatedProducts(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, ProductDetailResponse{
			Product:         product,
			DiscountPercent: product.DiscountPercent(),
			Related:         related,
		})
	}
}

// RelatedProducts godoc
//	@Summary		List related products
//	@Description	Same category, excluding the product itself, at most three.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path	int	true	"Product ID"
//	@Success		200	{array}	models.Product	"Related products"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id}/related [get]
func (h *ProductHandler) RelatedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productID(w, r)
		if !ok {
			return
		}

		related, err := h.productService.RelatedProducts(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, related)
	}
}

// FeaturedProducts godoc
//	@Summary		List featured products
//	@Tags			Products
//	@Produce		json
//	@Success		200	{array}	models.Product	"Featured products"
//	@Router			/products/featured [get]
func (h *ProductHandler) FeaturedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.productService.FeaturedProducts(r.Context()))
	}
}

// Categories godoc
//	@Summary		List categories
//	@Description	Categories with their product counts, the synthetic "all" entry first.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}	models.CategoryCount	"Categories"
//	@Router			/categories [get]
func (h *ProductHandler) Categories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.productService.Categories(r.Context()))
	}
}

// Testimonials godoc
//	@Summary		List testimonials
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}	models.Testimonial	"Testimonials"
//	@Router			/testimonials [get]
func (h *ProductHandler) Testimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.productService.Testimonials(r.Context()))
	}
}

// FAQs godoc
//	@Summary		List FAQs
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}	models.FAQ	"FAQs"
//	@Router			/faqs [get]
func (h *ProductHandler) FAQs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.productService.FAQs(r.Context()))
	}
}
