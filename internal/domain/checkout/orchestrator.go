package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"StorefrontPayments/pkg/metrics"
)

const giftCardMethodType = "giftcard"

// Backend order status values written on finalize / webhook confirmation.
const (
	OrderStatusOpen          = "OPEN"
	OrderStatusFailed        = "FAILED"
	PaymentStatusPaid        = "PAID"
	PaymentStatusNotPaid     = "NOT_PAID"
	ExportStatusReady        = "READY"
	ExportStatusNotExported  = "NOT_EXPORTED"
	ConfirmationConfirmed    = "CONFIRMED"
	ConfirmationNotConfirmed = "NOT_CONFIRMED"
)

// Orchestrator coordinates the checkout state machine: pending processor
// orders, authorization submissions, outcome classification and the
// commit-or-roll-back of basket and backend-order state.
type Orchestrator struct {
	orders      OrderSystem
	processor   Processor
	compensator *Compensator
}

func NewOrchestrator(orders OrderSystem, processor Processor, compensator *Compensator) *Orchestrator {
	return &Orchestrator{
		orders:      orders,
		processor:   processor,
		compensator: compensator,
	}
}

// AuthorizeInput is the payment submission from the storefront.
type AuthorizeInput struct {
	OrderNo           string
	Amount            Amount
	PaymentMethodType string
	// PaymentData is the opaque payment-method payload relayed to the
	// processor unchanged.
	PaymentData json.RawMessage
	ReturnURL   string
	Express     bool
	ShopperData *ShopperData
}

// ShopperData is the address/profile block an express wallet collects during
// authorization.
type ShopperData struct {
	Shipping Address        `json:"shipping_address"`
	Billing  Address        `json:"billing_address"`
	Profile  ShopperProfile `json:"profile"`
}

// DetailsInput is the opaque continuation payload from a completed 3DS
// challenge, voucher or wallet redirect.
type DetailsInput struct {
	OrderNo     string
	Details     json.RawMessage
	PaymentData string
}

// Authorize runs the synchronous payment flow against a prepared checkout
// context. On any failure the basket and any backend order created by this
// attempt are cleaned up best-effort before the error is returned.
func (o *Orchestrator) Authorize(ctx context.Context, ckt *Context, input AuthorizeInput) (outcome Outcome, err error) {
	if ckt == nil {
		return Outcome{}, ErrContextNotFound
	}
	if input.OrderNo == "" {
		return Outcome{}, fmt.Errorf("%w: missing order number", ErrValidation)
	}
	if len(input.PaymentData) == 0 {
		return Outcome{}, fmt.Errorf("%w: missing payment data", ErrValidation)
	}

	var orderCreated bool
	defer func() {
		if err != nil {
			o.cleanup(ctx, ckt, input.OrderNo, orderCreated)
		}
	}()

	pending, err := ckt.PendingOrder()
	if err != nil {
		return Outcome{}, err
	}
	partial := pending != nil && input.PaymentMethodType == giftCardMethodType

	// Amounts are validated against the basket before this attempt's own
	// reservation lands on it.
	if partial {
		err = ReconcileAmounts(ckt.Basket, input.Amount, ReconcileOptions{Partial: pending})
	} else {
		err = ReconcileAmounts(ckt.Basket, input.Amount, ReconcileOptions{Express: input.Express})
	}
	if err != nil {
		return Outcome{}, err
	}

	// Reserve the amount on the basket before the processor sees the
	// request. The real PSP reference replaces the attempt reference once
	// the processor responds.
	attemptRef := uuid.NewString()
	amountMajor := MajorUnits(input.Amount.Value, input.Amount.Currency)
	if err = ckt.Baskets.AddPaymentInstrument(ctx, amountMajor, input.PaymentMethodType, attemptRef); err != nil {
		return Outcome{}, err
	}

	if input.ShopperData != nil {
		if err = ckt.Baskets.AddShopperData(ctx, input.ShopperData.Shipping, input.ShopperData.Billing, input.ShopperData.Profile); err != nil {
			return Outcome{}, err
		}
	}

	// Express wallets collect the payment payload on the wallet sheet, before
	// the shopper sees the review page. Stash it on the basket so the review
	// page can render and resubmit it; a rollback clears it with the rest of
	// the processor attributes.
	if input.Express {
		if err = ckt.Baskets.Update(ctx, map[string]string{AttrReviewPaymentData: string(input.PaymentData)}); err != nil {
			return Outcome{}, err
		}
	}

	req := AuthorizeRequest{
		MerchantAccount: ckt.Site.MerchantAccount,
		Reference:       input.OrderNo,
		Amount:          input.Amount,
		PaymentMethod:   input.PaymentData,
		ReturnURL:       input.ReturnURL,
		ShopperRef:      ckt.Customer.ID,
	}

	if partial {
		req.Order = &OrderRef{
			OrderData:    pending.OrderData,
			PSPReference: pending.PSPReference,
		}
	} else {
		if err = o.createBackendOrder(ctx, ckt, input.OrderNo); err != nil {
			return Outcome{}, err
		}
		orderCreated = true
	}

	resp, err := o.processor.Authorize(ctx, ckt.Site, req, uuid.NewString())
	if err != nil {
		return Outcome{}, fmt.Errorf("authorize: %w", err)
	}

	outcome, err = o.settle(ctx, ckt, input.OrderNo, partial, resp)
	metrics.PaymentAttemptsTotal.WithLabelValues("authorize", string(outcome.Kind)).Inc()
	return outcome, err
}

// SubmitDetails resumes a checkout that returned a pending action. The
// continuation payload is relayed to the processor and the result settles
// exactly like a synchronous authorization. Client retries are safe: the
// processor deduplicates on the idempotency key discipline upstream and the
// same merchant reference comes back.
func (o *Orchestrator) SubmitDetails(ctx context.Context, ckt *Context, input DetailsInput) (outcome Outcome, err error) {
	if ckt == nil {
		return Outcome{}, ErrContextNotFound
	}
	if len(input.Details) == 0 {
		return Outcome{}, fmt.Errorf("%w: missing details payload", ErrValidation)
	}

	defer func() {
		if err != nil {
			o.cleanup(ctx, ckt, input.OrderNo, true)
		}
	}()

	pending, err := ckt.PendingOrder()
	if err != nil {
		return Outcome{}, err
	}

	resp, err := o.processor.SubmitDetails(ctx, ckt.Site, DetailsRequest{
		Details:     input.Details,
		PaymentData: input.PaymentData,
	}, uuid.NewString())
	if err != nil {
		return Outcome{}, fmt.Errorf("submit details: %w", err)
	}

	outcome, err = o.settle(ctx, ckt, input.OrderNo, pending != nil, resp)
	metrics.PaymentAttemptsTotal.WithLabelValues("details", string(outcome.Kind)).Inc()
	return outcome, err
}

// settle applies the classifier's three-way branch. It is shared by the
// synchronous authorize path and the details continuation.
func (o *Orchestrator) settle(ctx context.Context, ckt *Context, orderNo string, partial bool, resp ProcessorResponse) (Outcome, error) {
	outcome := Classify(resp, orderNo)

	switch outcome.Kind {
	case OutcomePendingAction:
		// Nothing is final yet; the shopper still owes an out-of-band step.
		if resp.Order != nil {
			if err := o.persistPendingOrder(ctx, ckt, *resp.Order); err != nil {
				return Outcome{}, err
			}
		}
		return outcome, nil

	case OutcomeFinalFailure:
		return o.failPayment(ctx, ckt, partial, outcome)

	default: // OutcomeSettled
		if !outcome.IsSuccessful {
			return o.failPayment(ctx, ckt, partial, outcome)
		}

		if resp.PSPReference != "" {
			if err := ckt.Baskets.Update(ctx, map[string]string{AttrPSPReference: resp.PSPReference}); err != nil {
				return Outcome{}, err
			}
		}

		if !outcome.IsFinal {
			// Partially settled: persist the processor order and wait for
			// the next instrument.
			if resp.Order != nil {
				if err := o.persistPendingOrder(ctx, ckt, *resp.Order); err != nil {
					return Outcome{}, err
				}
			}
			return outcome, nil
		}

		if err := o.finalizeOrder(ctx, ckt, orderNo, partial); err != nil {
			return Outcome{}, err
		}
		return outcome, nil
	}
}

// failPayment runs the compensation path for a settled-and-failed response
// and surfaces the failure as ErrPaymentNotSuccessful. Compensation failures
// are logged, never allowed to replace the payment error.
func (o *Orchestrator) failPayment(ctx context.Context, ckt *Context, partial bool, outcome Outcome) (Outcome, error) {
	var rbErr error
	if partial {
		rbErr = o.compensator.PartialRollback(ctx, ckt)
	} else {
		rbErr = o.compensator.FullRollback(ctx, ckt)
	}
	if rbErr != nil {
		slog.ErrorContext(ctx, "payment rollback failed",
			"basket_id", ckt.Basket.ID,
			slog.Any("error", rbErr))
	}

	if outcome.RefusalReason != "" {
		return outcome, fmt.Errorf("%w: %s", ErrPaymentNotSuccessful, outcome.RefusalReason)
	}
	return outcome, ErrPaymentNotSuccessful
}

// createBackendOrder creates the durable order for this attempt. Creation is
// idempotent by order number: an existing order means a duplicate submission
// and fails the attempt instead of double-creating.
func (o *Orchestrator) createBackendOrder(ctx context.Context, ckt *Context, orderNo string) error {
	_, err := o.orders.GetOrder(ctx, orderNo)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyExists, orderNo)
	}
	if !errors.Is(err, ErrOrderNotFound) {
		return fmt.Errorf("check order %s: %w", orderNo, err)
	}

	if _, err := o.orders.CreateOrder(ctx, ckt.Basket.ID, orderNo); err != nil {
		return fmt.Errorf("create order %s: %w", orderNo, err)
	}
	return nil
}

// finalizeOrder confirms and marks the backend order paid. A partial flow
// reaches finality without a backend order, so one is created on demand; the
// pending-order blob is cleared because the processor order is closed.
func (o *Orchestrator) finalizeOrder(ctx context.Context, ckt *Context, orderNo string, partial bool) error {
	if partial {
		if _, err := o.orders.GetOrder(ctx, orderNo); err != nil {
			if !errors.Is(err, ErrOrderNotFound) {
				return fmt.Errorf("check order %s: %w", orderNo, err)
			}
			if _, err := o.orders.CreateOrder(ctx, ckt.Basket.ID, orderNo); err != nil {
				return fmt.Errorf("create order %s: %w", orderNo, err)
			}
		}
		if err := ckt.Baskets.Update(ctx, map[string]string{AttrPendingOrderData: ""}); err != nil {
			return err
		}
	}

	if err := o.orders.UpdateConfirmationStatus(ctx, orderNo, ConfirmationConfirmed); err != nil {
		return fmt.Errorf("confirm order %s: %w", orderNo, err)
	}
	if err := o.orders.UpdatePaymentStatus(ctx, orderNo, PaymentStatusPaid); err != nil {
		return fmt.Errorf("mark order %s paid: %w", orderNo, err)
	}
	return nil
}

func (o *Orchestrator) persistPendingOrder(ctx context.Context, ckt *Context, order ProcessorOrder) error {
	blob, err := PendingOrderFromProcessor(order).Encode()
	if err != nil {
		return err
	}
	return ckt.Baskets.Update(ctx, map[string]string{AttrPendingOrderData: blob})
}

// cleanup re-fetches the basket, drops every reservation and fails the
// backend order created by this attempt. Failures here are logged and
// swallowed so they cannot mask the original error.
func (o *Orchestrator) cleanup(ctx context.Context, ckt *Context, orderNo string, orderCreated bool) {
	if ckt == nil {
		return
	}

	if err := ckt.Baskets.Refresh(ctx); err != nil {
		slog.ErrorContext(ctx, "cleanup: refresh basket failed",
			"basket_id", ckt.Basket.ID, slog.Any("error", err))
	} else if err := ckt.Baskets.RemoveAllPaymentInstruments(ctx); err != nil {
		slog.ErrorContext(ctx, "cleanup: remove payment instruments failed",
			"basket_id", ckt.Basket.ID, slog.Any("error", err))
	}

	if orderCreated && orderNo != "" {
		if _, err := o.orders.GetOrder(ctx, orderNo); err == nil {
			if err := o.orders.FailOrder(ctx, orderNo, true); err != nil {
				slog.ErrorContext(ctx, "cleanup: fail order failed",
					"order_no", orderNo, slog.Any("error", err))
			}
		}
	}
}
