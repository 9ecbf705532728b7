package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	service "github.com/aaravmahajanofficial/digital-storefront/internal/services"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService, validate *validator.Validate) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validate,
	}
}

// GetCart godoc
//	@Summary		Get the session cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartSummary	"Cart summary"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.GetCart(r.Context(), sid))
	}
}

// AddItem godoc
//	@Summary		Add a product to the cart
//	@Description	Adds one unit, or increments the quantity when the product is already in the cart.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body	models.AddItemRequest	true	"Product to add"
//	@Success		200	{object}	models.CartSummary	"Updated cart"
//	@Failure		400	{object}	response.ErrorResponse	"Validation error"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), sid, &req)
		if err != nil {
			logger.Warn("Failed to add item to cart", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int64("productId", req.ProductID), slog.Int("totalItems", cart.TotalItems))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//	@Summary		Set the quantity of a cart item
//	@Description	A quantity of zero or less removes the line. Unknown ids are ignored.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id	path	int	true	"Product ID"
//	@Param			quantity	body	models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200	{object}	models.CartSummary	"Updated cart"
//	@Failure		400	{object}	response.ErrorResponse	"Validation error"
//	@Router			/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		id, ok := productID(w, r)
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.UpdateQuantity(r.Context(), sid, id, *req.Quantity))
	}
}

// RemoveItem godoc
//	@Summary		Remove a cart item
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path	int	true	"Product ID"
//	@Success		200	{object}	models.CartSummary	"Updated cart"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product id"
//	@Router			/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		id, ok := productID(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.RemoveItem(r.Context(), sid, id))
	}
}

// ClearCart godoc
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartSummary	"Empty cart"
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.ClearCart(r.Context(), sid))
	}
}
