package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	service "github.com/aaravmahajanofficial/digital-storefront/internal/services"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications godoc
//	@Summary		List toasts
//	@Description	Live toasts of the session, oldest first.
//	@Tags			Notifications
//	@Produce		json
//	@Success		200	{array}	models.Toast	"Toasts"
//	@Router			/notifications [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.notificationService.ListNotifications(r.Context(), sid))
	}
}

// DismissNotification godoc
//	@Summary		Dismiss a toast
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path	string	true	"Toast ID"
//	@Success		200	{object}	map[string]string	"Dismissed"
//	@Failure		404	{object}	response.ErrorResponse	"Notification not found"
//	@Router			/notifications/{id} [delete]
func (h *NotificationHandler) DismissNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")
		if err := h.notificationService.DismissNotification(r.Context(), sid, id); err != nil {
			middleware.LoggerFromContext(r.Context()).Debug("Dismiss of unknown notification", slog.String("notificationId", id))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"dismissed": id})
	}
}
