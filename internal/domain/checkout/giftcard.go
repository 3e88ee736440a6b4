package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ResultSuccess is the processor's verdict for order-management calls
// (create order, balance check); it never appears on payment responses.
const ResultSuccess ResultCode = "Success"

// BalanceInput asks the processor for the remaining balance of a gift card.
type BalanceInput struct {
	PaymentData json.RawMessage
	Amount      Amount
}

// GiftCardBalance checks a gift card's balance and persists the result on
// the basket so the storefront can render the split before committing to a
// partial payment.
func (o *Orchestrator) GiftCardBalance(ctx context.Context, ckt *Context, input BalanceInput) (BalanceResponse, error) {
	if ckt == nil {
		return BalanceResponse{}, ErrContextNotFound
	}
	if len(input.PaymentData) == 0 {
		return BalanceResponse{}, fmt.Errorf("%w: missing payment data", ErrValidation)
	}

	resp, err := o.processor.GiftCardBalance(ctx, ckt.Site, BalanceRequest{
		MerchantAccount: ckt.Site.MerchantAccount,
		PaymentMethod:   input.PaymentData,
		Amount:          input.Amount,
	}, uuid.NewString())
	if err != nil {
		return BalanceResponse{}, fmt.Errorf("gift card balance: %w", err)
	}

	blob, err := json.Marshal(resp)
	if err != nil {
		return BalanceResponse{}, fmt.Errorf("encode balance result: %w", err)
	}
	if err := ckt.Baskets.Update(ctx, map[string]string{AttrGiftCardBalance: string(blob)}); err != nil {
		return BalanceResponse{}, err
	}

	return resp, nil
}

// CreatePartialOrder opens a processor order over the basket total so a gift
// card and a second instrument can settle it in steps. Only one pending
// order may exist per basket.
func (o *Orchestrator) CreatePartialOrder(ctx context.Context, ckt *Context, orderNo string) (PendingOrder, error) {
	if ckt == nil {
		return PendingOrder{}, ErrContextNotFound
	}
	if orderNo == "" {
		return PendingOrder{}, fmt.Errorf("%w: missing order number", ErrValidation)
	}

	existing, err := ckt.PendingOrder()
	if err != nil {
		return PendingOrder{}, err
	}
	if existing != nil {
		return PendingOrder{}, fmt.Errorf("%w: basket already has a pending processor order", ErrOrderAlreadyExists)
	}

	total := Amount{
		Value:    ckt.Basket.ExpectedTotalMinor(),
		Currency: ckt.Basket.CurrencyCode,
	}

	resp, err := o.processor.CreateOrder(ctx, ckt.Site, CreateOrderRequest{
		MerchantAccount: ckt.Site.MerchantAccount,
		Reference:       orderNo,
		Amount:          total,
	}, uuid.NewString())
	if err != nil {
		return PendingOrder{}, fmt.Errorf("create processor order: %w", err)
	}
	if resp.ResultCode != ResultSuccess || resp.Order == nil {
		return PendingOrder{}, fmt.Errorf("%w: processor order not created (%s)",
			ErrPaymentNotSuccessful, resp.ResultCode)
	}

	pending := PendingOrderFromProcessor(*resp.Order)
	if pending.Amount.Value == 0 {
		pending.Amount = total
	}
	blob, err := pending.Encode()
	if err != nil {
		return PendingOrder{}, err
	}
	if err := ckt.Baskets.Update(ctx, map[string]string{AttrPendingOrderData: blob}); err != nil {
		return PendingOrder{}, err
	}

	slog.InfoContext(ctx, "processor order created",
		"basket_id", ckt.Basket.ID,
		"order_no", orderNo,
		"psp_reference", pending.PSPReference)

	return pending, nil
}

// CancelPartialOrder cancels the pending processor order and resets the
// basket.
func (o *Orchestrator) CancelPartialOrder(ctx context.Context, ckt *Context) error {
	return o.compensator.PartialRollback(ctx, ckt)
}

// CancelPayment resets all processor payment state on the basket. The
// express variant behaves identically but is tracked separately; wallet
// cancellations routinely arrive before any instrument exists.
func (o *Orchestrator) CancelPayment(ctx context.Context, ckt *Context, express bool) error {
	if express {
		slog.InfoContext(ctx, "express payment cancelled", "basket_id", basketID(ckt))
	}
	return o.compensator.FullRollback(ctx, ckt)
}

// CancelOrder fails the backend order, reopens its basket and resets
// processor payment state.
func (o *Orchestrator) CancelOrder(ctx context.Context, ckt *Context, orderNo string) error {
	if ckt == nil {
		return ErrContextNotFound
	}
	if orderNo == "" {
		return fmt.Errorf("%w: missing order number", ErrValidation)
	}

	if err := o.orders.FailOrder(ctx, orderNo, true); err != nil {
		return fmt.Errorf("fail order %s: %w", orderNo, err)
	}
	return o.compensator.FullRollback(ctx, ckt)
}

func basketID(ckt *Context) string {
	if ckt == nil {
		return ""
	}
	return ckt.Basket.ID
}
