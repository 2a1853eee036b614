package dto

// CreateNotificationRequest carries a new notification for a user.
type CreateNotificationRequest struct {
	UserID  int64  `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// UpdateNotificationRequest updates a notification's message or read flag.
// Nil fields are left unchanged.
type UpdateNotificationRequest struct {
	Message *string `json:"message"`
	Read    *bool   `json:"read"`
}
