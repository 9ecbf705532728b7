package service

import (
	"context"

	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/aaravmahajanofficial/digital-storefront/internal/notify"
)

type NotificationService interface {
	ListNotifications(ctx context.Context, sessionID string) []models.Toast
	DismissNotification(ctx context.Context, sessionID, id string) error
}

type notificationService struct {
	feed *notify.Feed
}

func NewNotificationService(feed *notify.Feed) NotificationService {
	return &notificationService{feed: feed}
}

func (n *notificationService) ListNotifications(ctx context.Context, sessionID string) []models.Toast {
	toasts := n.feed.List(sessionID)
	if toasts == nil {
		return []models.Toast{}
	}

	return toasts
}

// DismissNotification reports an expired toast as not found.
func (n *notificationService) DismissNotification(ctx context.Context, sessionID, id string) error {
	if !n.feed.Dismiss(sessionID, id) {
		return errors.NotFoundError("Notification not found")
	}

	return nil
}
