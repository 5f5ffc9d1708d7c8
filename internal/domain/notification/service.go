package notification

import "context"

// CreateNotificationRequest is the producer-side payload.
type CreateNotificationRequest struct {
	UserID  string
	Title   string
	Message string
	Type    NotificationType
}

// ListResponse bundles a user's notifications with the unread count.
type ListResponse struct {
	Notifications []*Notification `json:"notifications"`
	UnreadCount   int             `json:"unread_count"`
}

// Service is the notification sink consumed by the scheduler and other
// producers, plus the user-facing read side.
type Service interface {
	// Queue enqueues a notification for background persistence. It never
	// blocks the caller; a full queue returns ErrQueueFull.
	Queue(ctx context.Context, req CreateNotificationRequest) error

	ListMine(ctx context.Context, userID string) (ListResponse, error)
	MarkRead(ctx context.Context, id string, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string, userID string) error

	// Stop flushes pending notifications and stops the workers.
	Stop()
}
