package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	service "github.com/aaravmahajanofficial/digital-storefront/internal/services"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils/response"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Purchases godoc
//	@Summary		List purchases
//	@Description	Purchases of the signed-in user joined with the catalog, newest first.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{array}	models.PurchasedProduct	"Purchases"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/dashboard/purchases [get]
func (h *DashboardHandler) Purchases() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		purchases, err := h.dashboardService.Purchases(r.Context(), user.ID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list purchases", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, purchases)
	}
}

// Profile godoc
//	@Summary		Get the profile
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	models.Profile	"Profile"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/dashboard/profile [get]
func (h *DashboardHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		profile, err := h.dashboardService.Profile(r.Context(), user)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to load profile", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, profile)
	}
}
