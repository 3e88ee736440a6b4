package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"StorefrontPayments/pkg/metrics"
)

// Compensator cancels pending processor state and resets the basket when a
// checkout step fails. Both entry points require a bound checkout context;
// calling either without one is a programming error, not a retryable
// condition.
type Compensator struct {
	processor Processor
}

func NewCompensator(processor Processor) *Compensator {
	return &Compensator{processor: processor}
}

// FullRollback clears every processor custom attribute and removes all
// payment instruments from the basket.
func (c *Compensator) FullRollback(ctx context.Context, ckt *Context) error {
	if ckt == nil {
		return ErrContextNotFound
	}
	metrics.RollbacksTotal.WithLabelValues("full").Inc()

	attrs := make(map[string]string, len(ProcessorAttributes))
	for _, name := range ProcessorAttributes {
		attrs[name] = ""
	}
	if err := ckt.Baskets.Update(ctx, attrs); err != nil {
		return fmt.Errorf("clear processor attributes: %w", err)
	}

	if err := ckt.Baskets.RemoveAllPaymentInstruments(ctx); err != nil {
		return fmt.Errorf("remove payment instruments: %w", err)
	}
	return nil
}

// PartialRollback cancels an in-progress processor order before running the
// full cleanup. Local state is only cleared once the processor confirms the
// cancellation: a basket that looks clean while the processor still holds a
// live reservation is worse than a dirty basket.
func (c *Compensator) PartialRollback(ctx context.Context, ckt *Context) error {
	if ckt == nil {
		return ErrContextNotFound
	}

	pending, err := ckt.PendingOrder()
	if err != nil {
		return fmt.Errorf("read pending order: %w", err)
	}

	if pending != nil {
		metrics.RollbacksTotal.WithLabelValues("partial").Inc()

		resp, err := c.processor.CancelOrder(ctx, ckt.Site, CancelOrderRequest{
			MerchantAccount: ckt.Site.MerchantAccount,
			Order: OrderRef{
				OrderData:    pending.OrderData,
				PSPReference: pending.PSPReference,
			},
		}, uuid.NewString())
		if err != nil {
			return fmt.Errorf("cancel processor order: %w", err)
		}
		if resp.ResultCode != ResultReceived {
			return fmt.Errorf("cancel processor order: unexpected result %q", resp.ResultCode)
		}

		slog.InfoContext(ctx, "processor order cancelled",
			"basket_id", ckt.Basket.ID,
			"psp_reference", pending.PSPReference)
	}

	return c.FullRollback(ctx, ckt)
}
