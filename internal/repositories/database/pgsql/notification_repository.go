package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	"github.com/mkopo/chama_management_app/internal/core/domain"
	portsrepo "github.com/mkopo/chama_management_app/internal/core/ports/repositories"
	"github.com/mkopo/chama_management_app/internal/models"
	"github.com/mkopo/chama_management_app/internal/utils/mapping"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for notifications.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

// FindNotificationByID retrieves a notification by ID.
func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error) {
	query := `SELECT id, user_id, message, read, created_at FROM notifications WHERE id = $1;`

	var m models.Notification
	err := r.Pool.QueryRow(ctx, query, notificationID).Scan(&m.ID, &m.UserID, &m.Message, &m.Read, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notification %d: %w", notificationID, err)
	}

	d := mapping.ToDomainNotification(m)
	return &d, nil
}

// ListNotificationsByUser retrieves a user's notifications, newest first.
func (r *PgxNotificationRepository) ListNotificationsByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	query := `SELECT id, user_id, message, read, created_at FROM notifications WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for user %d: %w", userID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Notification, error) {
		var m models.Notification
		err := row.Scan(&m.ID, &m.UserID, &m.Message, &m.Read, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan notifications for user %d: %w", userID, err)
	}

	return mapping.ToDomainNotificationSlice(ms), nil
}

// SaveNotification inserts a new notification and returns its identifier.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) (int64, error) {
	m := mapping.ToModelNotification(n)
	query := `
		INSERT INTO notifications (user_id, message, read, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	var id int64
	if err := r.Pool.QueryRow(ctx, query, m.UserID, m.Message, m.Read, m.CreatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert notification for user %d: %w", m.UserID, err)
	}
	return id, nil
}

// UpdateNotification overwrites the message and read flag.
func (r *PgxNotificationRepository) UpdateNotification(ctx context.Context, n domain.Notification) error {
	m := mapping.ToModelNotification(n)
	query := `UPDATE notifications SET message = $2, read = $3 WHERE id = $1;`

	tag, err := r.Pool.Exec(ctx, query, m.ID, m.Message, m.Read)
	if err != nil {
		return fmt.Errorf("failed to update notification %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteNotification removes a notification.
func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, notificationID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1;`, notificationID)
	if err != nil {
		return fmt.Errorf("failed to delete notification %d: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
