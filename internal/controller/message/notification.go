// Package message holds the Kafka message controllers for the async webhook
// mode.
package message

import (
	"context"
	"encoding/json"
	"fmt"

	"StorefrontPayments/internal/messaging"
	"StorefrontPayments/internal/webhook"
	"StorefrontPayments/pkg/logger"
)

// NotificationMessageController replays published notifications through the
// synchronous processor.
type NotificationMessageController struct {
	logger    *logger.Logger
	processor webhook.Processor
}

func NewNotificationMessageController(l *logger.Logger, processor webhook.Processor) *NotificationMessageController {
	return &NotificationMessageController{
		logger:    l,
		processor: processor,
	}
}

// HandleMessage processes a single published notification. A failure leaves
// the offset uncommitted so the message is redelivered; the sink's
// duplicate detection makes that safe.
func (c *NotificationMessageController) HandleMessage(ctx context.Context, key, value []byte) error {
	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		c.logger.Error("Failed to unmarshal envelope: key=%s error=%v", string(key), err)
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	c.logger.Debug("Processing notification message: event_id=%s key=%s type=%s",
		env.EventID, env.Key, env.Type)

	var n webhook.Notification
	if err := json.Unmarshal(env.Payload, &n); err != nil {
		c.logger.Error("Failed to unmarshal notification payload: event_id=%s error=%v", env.EventID, err)
		return fmt.Errorf("unmarshal notification: %w", err)
	}

	if err := c.processor.ProcessNotification(ctx, n); err != nil {
		c.logger.Error("Failed to process notification: event_id=%s psp_reference=%s error=%v",
			env.EventID, n.Item.PSPReference, err)
		return err
	}

	c.logger.Info("Notification processed: event_id=%s psp_reference=%s event_code=%s",
		env.EventID, n.Item.PSPReference, n.Item.EventCode)

	return nil
}
