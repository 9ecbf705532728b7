package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	service "github.com/aaravmahajanofficial/digital-storefront/internal/services"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Quote godoc
//	@Summary		Quote the cart
//	@Description	Subtotal, tax and total of the session cart without charging.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutQuote	"Quote"
//	@Router			/checkout/quote [get]
func (h *CheckoutHandler) Quote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.checkoutService.Quote(r.Context(), sid))
	}
}

// Checkout godoc
//	@Summary		Pay for the cart
//	@Description	Charges the cart total, records one purchase per line and clears the cart. Requires authentication.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			billing	body	models.BillingDetails	true	"Billing details"
//	@Success		201	{object}	models.CheckoutResult	"Purchase completed"
//	@Failure		400	{object}	response.ErrorResponse	"Validation error or empty cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		402	{object}	response.ErrorResponse	"Payment failed"
//	@Security		BearerAuth
//	@Router			/checkout [post]
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		var billing models.BillingDetails
		if err := utils.DecodeJSONBody(r, &billing); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request body").WithError(err).WithDetail(err.Error()))
			return
		}

		logger.Info("Attempting checkout")

		result, fields, err := h.checkoutService.Checkout(r.Context(), sid, user, &billing)
		switch {
		case !fields.Empty():
			logger.Warn("Invalid billing details", slog.Int("fields", len(fields)))
			response.ValidationError(w, fields)
			return
		case err != nil:
			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, result)
	}
}
