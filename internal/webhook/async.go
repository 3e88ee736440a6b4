package webhook

import (
	"context"
	"fmt"

	"StorefrontPayments/internal/messaging"
)

// TypeNotification is the envelope type for notifications published to the
// broker.
const TypeNotification = "webhook.notification"

// AsyncProcessor acknowledges notifications immediately and publishes them
// for a consumer worker to dispatch.
type AsyncProcessor struct {
	publisher messaging.Publisher
}

func NewAsyncProcessor(publisher messaging.Publisher) *AsyncProcessor {
	return &AsyncProcessor{publisher: publisher}
}

func (p *AsyncProcessor) ProcessNotification(ctx context.Context, n Notification) error {
	envelope, err := messaging.NewEnvelope(n.Item.PSPReference, TypeNotification, n)
	if err != nil {
		return fmt.Errorf("create envelope: %w", err)
	}
	return p.publisher.Publish(ctx, envelope)
}
