package services

import (
	"context"

	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/mkopo/chama_management_app/internal/dto"
)

// NotificationSvcFacade defines notification operations.
type NotificationSvcFacade interface {
	// CreateNotification delivers a message to a user's inbox.
	CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*domain.Notification, error)

	// ListNotifications retrieves a user's notifications.
	ListNotifications(ctx context.Context, userID int64) ([]domain.Notification, error)

	// UpdateNotification updates a notification's message or read flag.
	UpdateNotification(ctx context.Context, notificationID int64, req dto.UpdateNotificationRequest) (*domain.Notification, error)

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, notificationID int64) error
}
