package webhook

import (
	"context"
	"errors"
)

//go:generate mockgen -source processor.go -destination mock_processor.go -package webhook

// ErrNotificationAlreadyStored marks a redelivered notification the sink has
// already recorded.
var ErrNotificationAlreadyStored = errors.New("notification already stored")

// NotificationSink records accepted notifications. Store returns
// ErrNotificationAlreadyStored when the same event was recorded before.
type NotificationSink interface {
	Store(ctx context.Context, n Notification) error
}

// Processor handles an authenticated notification. Implementations dispatch
// inline or hand the work to a message broker.
type Processor interface {
	ProcessNotification(ctx context.Context, n Notification) error
}
