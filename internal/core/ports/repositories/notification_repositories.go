package repositories

import (
	"context"

	"github.com/mkopo/chama_management_app/internal/core/domain"
)

// NotificationRepositoryFacade defines operations for notification data.
type NotificationRepositoryFacade interface {
	// FindNotificationByID retrieves a notification by ID, or apperrors.ErrNotFound.
	FindNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error)

	// ListNotificationsByUser retrieves a user's notifications, newest first.
	ListNotificationsByUser(ctx context.Context, userID int64) ([]domain.Notification, error)

	// SaveNotification inserts a new notification and returns its identifier.
	SaveNotification(ctx context.Context, n domain.Notification) (int64, error)

	// UpdateNotification overwrites the message and read flag.
	UpdateNotification(ctx context.Context, n domain.Notification) error

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, notificationID int64) error
}
