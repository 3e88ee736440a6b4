package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func clearedAttrs() map[string]string {
	attrs := make(map[string]string, len(ProcessorAttributes))
	for _, name := range ProcessorAttributes {
		attrs[name] = ""
	}
	return attrs
}

func compensatorContext(t *testing.T, basket Basket) (*Compensator, *MockProcessor, *MockBasketRepo, *Context) {
	t.Helper()

	ctrl := gomock.NewController(t)
	processor := NewMockProcessor(ctrl)
	repo := NewMockBasketRepo(ctrl)
	ckt := &Context{
		Site:   Site{ID: "store-us", MerchantAccount: "StorefrontECOM"},
		Basket: basket,
	}
	ckt.Baskets = NewBasketService(repo, ckt)
	return NewCompensator(processor), processor, repo, ckt
}

func TestCompensator_FullRollback(t *testing.T) {
	t.Parallel()

	t.Run("clears attributes then removes every instrument", func(t *testing.T) {
		t.Parallel()

		// given
		basket := Basket{
			ID: "basket-1",
			PaymentInstruments: []PaymentInstrument{
				{ID: "pi-1", Amount: 60.00},
			},
			Custom: map[string]string{AttrPSPReference: "psp-1"},
		}
		comp, _, repo, ckt := compensatorContext(t, basket)

		cleared := basket
		cleared.Custom = nil
		update := repo.EXPECT().
			UpdateCustomAttributes(gomock.Any(), "basket-1", clearedAttrs()).
			Return(cleared, nil)
		empty := cleared
		empty.PaymentInstruments = nil
		repo.EXPECT().
			RemovePaymentInstrument(gomock.Any(), "basket-1", "pi-1").
			Return(empty, nil).
			After(update)

		// when
		err := comp.FullRollback(context.Background(), ckt)

		// then
		assert.NoError(t, err)
		assert.Empty(t, ckt.Basket.PaymentInstruments)
	})

	t.Run("no bound context", func(t *testing.T) {
		t.Parallel()

		// given
		comp, _, _, _ := compensatorContext(t, Basket{})

		// when
		err := comp.FullRollback(context.Background(), nil)

		// then
		assert.ErrorIs(t, err, ErrContextNotFound)
	})

	t.Run("surfaces a failing attribute clear", func(t *testing.T) {
		t.Parallel()

		// given
		comp, _, repo, ckt := compensatorContext(t, Basket{ID: "basket-1"})

		repo.EXPECT().
			UpdateCustomAttributes(gomock.Any(), "basket-1", clearedAttrs()).
			Return(Basket{}, errors.New("backend down"))

		// when
		err := comp.FullRollback(context.Background(), ckt)

		// then
		assert.ErrorContains(t, err, "clear processor attributes")
	})
}

func TestCompensator_PartialRollback(t *testing.T) {
	t.Parallel()

	pending := PendingOrder{
		PSPReference:    "psp-order-1",
		OrderData:       "order-data",
		Amount:          Amount{Value: 10000, Currency: "USD"},
		RemainingAmount: Amount{Value: 4000, Currency: "USD"},
	}
	pendingBlob, err := pending.Encode()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("cancels the processor order before touching the basket", func(t *testing.T) {
		t.Parallel()

		// given
		basket := Basket{
			ID:     "basket-1",
			Custom: map[string]string{AttrPendingOrderData: pendingBlob},
			PaymentInstruments: []PaymentInstrument{
				{ID: "pi-1", Amount: 60.00},
			},
		}
		comp, processor, repo, ckt := compensatorContext(t, basket)

		cancel := processor.EXPECT().
			CancelOrder(gomock.Any(), ckt.Site, CancelOrderRequest{
				MerchantAccount: "StorefrontECOM",
				Order: OrderRef{
					OrderData:    "order-data",
					PSPReference: "psp-order-1",
				},
			}, gomock.Any()).
			Return(CancelOrderResponse{ResultCode: ResultReceived, PSPReference: "psp-cancel-1"}, nil)

		cleared := basket
		cleared.Custom = nil
		update := repo.EXPECT().
			UpdateCustomAttributes(gomock.Any(), "basket-1", clearedAttrs()).
			Return(cleared, nil).
			After(cancel)
		empty := cleared
		empty.PaymentInstruments = nil
		repo.EXPECT().
			RemovePaymentInstrument(gomock.Any(), "basket-1", "pi-1").
			Return(empty, nil).
			After(update)

		// when
		err := comp.PartialRollback(context.Background(), ckt)

		// then
		assert.NoError(t, err)
	})

	t.Run("keeps local state when the processor does not confirm", func(t *testing.T) {
		t.Parallel()

		// given
		basket := Basket{
			ID:     "basket-1",
			Custom: map[string]string{AttrPendingOrderData: pendingBlob},
		}
		comp, processor, _, ckt := compensatorContext(t, basket)

		processor.EXPECT().
			CancelOrder(gomock.Any(), ckt.Site, gomock.Any(), gomock.Any()).
			Return(CancelOrderResponse{ResultCode: ResultError}, nil)

		// when
		err := comp.PartialRollback(context.Background(), ckt)

		// then: no basket writes happen, the repo mock would fail on any call
		assert.ErrorContains(t, err, "unexpected result")
		assert.Equal(t, pendingBlob, ckt.Basket.CustomAttribute(AttrPendingOrderData))
	})

	t.Run("keeps local state when the cancellation call fails", func(t *testing.T) {
		t.Parallel()

		// given
		basket := Basket{
			ID:     "basket-1",
			Custom: map[string]string{AttrPendingOrderData: pendingBlob},
		}
		comp, processor, _, ckt := compensatorContext(t, basket)

		processor.EXPECT().
			CancelOrder(gomock.Any(), ckt.Site, gomock.Any(), gomock.Any()).
			Return(CancelOrderResponse{}, errors.New("gateway timeout"))

		// when
		err := comp.PartialRollback(context.Background(), ckt)

		// then
		assert.ErrorContains(t, err, "cancel processor order")
	})

	t.Run("falls through to a full rollback without a pending order", func(t *testing.T) {
		t.Parallel()

		// given
		basket := Basket{ID: "basket-1"}
		comp, _, repo, ckt := compensatorContext(t, basket)

		repo.EXPECT().
			UpdateCustomAttributes(gomock.Any(), "basket-1", clearedAttrs()).
			Return(basket, nil)

		// when
		err := comp.PartialRollback(context.Background(), ckt)

		// then
		assert.NoError(t, err)
	})

	t.Run("no bound context", func(t *testing.T) {
		t.Parallel()

		// given
		comp, _, _, _ := compensatorContext(t, Basket{})

		// when
		err := comp.PartialRollback(context.Background(), nil)

		// then
		assert.ErrorIs(t, err, ErrContextNotFound)
	})
}
