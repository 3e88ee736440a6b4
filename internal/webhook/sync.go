package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// SyncProcessor records and dispatches notifications inline, inside the
// webhook request.
type SyncProcessor struct {
	sink       NotificationSink
	audit      NotificationSink // optional secondary sink, best effort
	dispatcher *Dispatcher
}

func NewSyncProcessor(sink NotificationSink, audit NotificationSink, dispatcher *Dispatcher) *SyncProcessor {
	return &SyncProcessor{
		sink:       sink,
		audit:      audit,
		dispatcher: dispatcher,
	}
}

// ProcessNotification stores the notification and dispatches it. A duplicate
// store means the processor redelivered an event already handled; it is
// acknowledged without re-dispatch. A primary store failure is returned so
// the processor retries the delivery.
func (p *SyncProcessor) ProcessNotification(ctx context.Context, n Notification) error {
	err := p.sink.Store(ctx, n)
	switch {
	case errors.Is(err, ErrNotificationAlreadyStored):
		slog.InfoContext(ctx, "duplicate notification acknowledged",
			"event_code", n.Item.EventCode, "psp_reference", n.Item.PSPReference)
		return nil
	case err != nil:
		return fmt.Errorf("store notification: %w", err)
	}

	if p.audit != nil {
		if err := p.audit.Store(ctx, n); err != nil {
			slog.ErrorContext(ctx, "audit sink store failed",
				"psp_reference", n.Item.PSPReference, slog.Any("error", err))
		}
	}

	return p.dispatcher.Dispatch(ctx, n)
}
