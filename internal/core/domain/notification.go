package domain

import "time"

// Notification is a message delivered to a user's in-app inbox.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userID"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
