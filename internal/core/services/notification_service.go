package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mkopo/chama_management_app/internal/core/domain"
	portsrepo "github.com/mkopo/chama_management_app/internal/core/ports/repositories"
	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/dto"
)

// notificationService implements the in-app notification inbox.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// CreateNotification delivers a message to a user's inbox.
func (s *notificationService) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*domain.Notification, error) {
	n := domain.Notification{
		UserID:    req.UserID,
		Message:   req.Message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.notificationRepo.SaveNotification(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	n.ID = id
	return &n, nil
}

// ListNotifications retrieves a user's notifications.
func (s *notificationService) ListNotifications(ctx context.Context, userID int64) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %d: %w", userID, err)
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return notifications, nil
}

// UpdateNotification updates a notification's message or read flag. Nil
// request fields leave the stored value unchanged.
func (s *notificationService) UpdateNotification(ctx context.Context, notificationID int64, req dto.UpdateNotificationRequest) (*domain.Notification, error) {
	n, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find notification %d: %w", notificationID, err)
	}

	if req.Message != nil {
		n.Message = *req.Message
	}
	if req.Read != nil {
		n.Read = *req.Read
	}

	if err := s.notificationRepo.UpdateNotification(ctx, *n); err != nil {
		return nil, fmt.Errorf("failed to update notification %d: %w", notificationID, err)
	}
	return n, nil
}

// DeleteNotification removes a notification.
func (s *notificationService) DeleteNotification(ctx context.Context, notificationID int64) error {
	if _, err := s.notificationRepo.FindNotificationByID(ctx, notificationID); err != nil {
		return fmt.Errorf("failed to find notification %d: %w", notificationID, err)
	}
	if err := s.notificationRepo.DeleteNotification(ctx, notificationID); err != nil {
		return fmt.Errorf("failed to delete notification %d: %w", notificationID, err)
	}
	return nil
}
