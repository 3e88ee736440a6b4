package webhook

import (
	"context"
	"log/slog"

	"StorefrontPayments/internal/domain/checkout"
)

//go:generate mockgen -source dispatch.go -destination mock_dispatch.go -package webhook

// OrderStatusWriter is the slice of the backend order API dispatch needs.
type OrderStatusWriter interface {
	UpdateOrderStatus(ctx context.Context, orderNo, value string) error
	UpdatePaymentStatus(ctx context.Context, orderNo, value string) error
	UpdateExportStatus(ctx context.Context, orderNo, value string) error
	UpdateConfirmationStatus(ctx context.Context, orderNo, value string) error
}

// Dispatcher applies an authenticated notification to the backend order.
type Dispatcher struct {
	orders OrderStatusWriter
}

func NewDispatcher(orders OrderStatusWriter) *Dispatcher {
	return &Dispatcher{orders: orders}
}

// Dispatch routes a notification by event code. Unknown event codes are
// acknowledged without side effects; the processor retries anything not
// acknowledged, so acting only on known codes keeps redelivery harmless.
func (d *Dispatcher) Dispatch(ctx context.Context, n Notification) error {
	switch n.Item.EventCode {
	case EventAuthorisation:
		return d.dispatchAuthorisation(ctx, n)
	default:
		slog.InfoContext(ctx, "webhook event ignored",
			"event_code", n.Item.EventCode, "psp_reference", n.Item.PSPReference)
		return nil
	}
}

// dispatchAuthorisation sets the four order sub-statuses the authorization
// verdict determines. The four updates are independent backend writes with no
// surrounding transaction: every one is attempted even when an earlier one
// fails, and a partial failure still acknowledges the notification. Each
// write is an idempotent status set, so processor redelivery repairs nothing
// worse than a mixed state.
func (d *Dispatcher) dispatchAuthorisation(ctx context.Context, n Notification) error {
	orderNo := n.Item.MerchantReference
	if orderNo == "" {
		slog.WarnContext(ctx, "authorisation notification without merchant reference",
			"psp_reference", n.Item.PSPReference)
		return nil
	}

	confirmation := checkout.ConfirmationConfirmed
	payment := checkout.PaymentStatusPaid
	export := checkout.ExportStatusReady
	order := checkout.OrderStatusOpen
	if !n.Item.IsSuccess() {
		confirmation = checkout.ConfirmationNotConfirmed
		payment = checkout.PaymentStatusNotPaid
		export = checkout.ExportStatusNotExported
		order = checkout.OrderStatusFailed
	}

	updates := []struct {
		field string
		apply func() error
	}{
		{"confirmation_status", func() error { return d.orders.UpdateConfirmationStatus(ctx, orderNo, confirmation) }},
		{"payment_status", func() error { return d.orders.UpdatePaymentStatus(ctx, orderNo, payment) }},
		{"export_status", func() error { return d.orders.UpdateExportStatus(ctx, orderNo, export) }},
		{"order_status", func() error { return d.orders.UpdateOrderStatus(ctx, orderNo, order) }},
	}

	failed := 0
	for _, u := range updates {
		if err := u.apply(); err != nil {
			failed++
			slog.ErrorContext(ctx, "order status update failed",
				"order_no", orderNo, "field", u.field, slog.Any("error", err))
		}
	}

	slog.InfoContext(ctx, "authorisation notification dispatched",
		"order_no", orderNo, "success", n.Item.IsSuccess(), "failed_updates", failed)
	return nil
}
