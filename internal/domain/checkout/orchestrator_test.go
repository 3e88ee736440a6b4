package checkout

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type orchestratorMocks struct {
	orders    *MockOrderSystem
	processor *MockProcessor
	baskets   *MockBasketRepo
}

func orchestrator(t *testing.T, basket Basket) (*Orchestrator, orchestratorMocks, *Context) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := orchestratorMocks{
		orders:    NewMockOrderSystem(ctrl),
		processor: NewMockProcessor(ctrl),
		baskets:   NewMockBasketRepo(ctrl),
	}
	ckt := &Context{
		Site:     Site{ID: "store-us", MerchantAccount: "StorefrontECOM", APIKey: "key"},
		Basket:   basket,
		Customer: Customer{ID: "cust-1", Email: "jane@example.com"},
	}
	ckt.Baskets = NewBasketService(mocks.baskets, ckt)
	o := NewOrchestrator(mocks.orders, mocks.processor, NewCompensator(mocks.processor))
	return o, mocks, ckt
}

func TestOrchestrator_Authorize_CardPayment(t *testing.T) {
	t.Parallel()

	// given
	basket := Basket{ID: "basket-1", CurrencyCode: "USD", OrderTotal: 100.00, CustomerID: "cust-1"}
	o, mocks, ckt := orchestrator(t, basket)

	withInstrument := basket
	withInstrument.PaymentInstruments = []PaymentInstrument{{ID: "pi-1", Amount: 100.00, PaymentMethodID: CardMethodID}}

	var attached NewInstrument
	mocks.baskets.EXPECT().
		AddPaymentInstrument(gomock.Any(), "basket-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, instrument NewInstrument) (Basket, error) {
			attached = instrument
			return withInstrument, nil
		})
	mocks.baskets.EXPECT().
		UpdateCustomAttributes(gomock.Any(), "basket-1", gomock.Any()).
		Return(withInstrument, nil)

	mocks.orders.EXPECT().
		GetOrder(gomock.Any(), "ORD-1").
		Return(Order{}, ErrOrderNotFound)
	mocks.orders.EXPECT().
		CreateOrder(gomock.Any(), "basket-1", "ORD-1").
		Return(Order{OrderNo: "ORD-1", BasketID: "basket-1"}, nil)

	var submitted AuthorizeRequest
	mocks.processor.EXPECT().
		Authorize(gomock.Any(), ckt.Site, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ Site, req AuthorizeRequest, _ string) (ProcessorResponse, error) {
			submitted = req
			return ProcessorResponse{
				ResultCode:        ResultAuthorised,
				PSPReference:      "psp-auth-1",
				MerchantReference: "ORD-1",
			}, nil
		})

	mocks.baskets.EXPECT().
		UpdateCustomAttributes(gomock.Any(), "basket-1", map[string]string{AttrPSPReference: "psp-auth-1"}).
		Return(withInstrument, nil)
	mocks.orders.EXPECT().
		UpdateConfirmationStatus(gomock.Any(), "ORD-1", ConfirmationConfirmed).
		Return(nil)
	mocks.orders.EXPECT().
		UpdatePaymentStatus(gomock.Any(), "ORD-1", PaymentStatusPaid).
		Return(nil)

	// when
	outcome, err := o.Authorize(context.Background(), ckt, AuthorizeInput{
		OrderNo:           "ORD-1",
		Amount:            Amount{Value: 10000, Currency: "USD"},
		PaymentMethodType: "scheme",
		PaymentData:       json.RawMessage(`{"type":"scheme","encrypted":"..."}`),
		ReturnURL:         "https://shop.example/return",
	})

	// then
	assert.NoError(t, err)
	assert.Equal(t, Outcome{
		Kind:              OutcomeSettled,
		IsFinal:           true,
		IsSuccessful:      true,
		MerchantReference: "ORD-1",
	}, outcome)

	assert.EqualValues(t, 100.00, attached.Amount)
	assert.Equal(t, CardMethodID, attached.PaymentMethodID)
	assert.NotEmpty(t, attached.PSPReference, "attempt reference reserved before the processor call")

	assert.Equal(t, "StorefrontECOM", submitted.MerchantAccount)
	assert.Equal(t, "ORD-1", submitted.Reference)
	assert.Equal(t, "cust-1", submitted.ShopperRef)
	assert.Nil(t, submitted.Order)
}

func TestOrchestrator_Authorize_PendingAction(t *testing.T) {
	t.Parallel()

	// given
	basket := Basket{ID: "basket-1", CurrencyCode: "USD", OrderTotal: 100.00, CustomerID: "cust-1"}
	o, mocks, ckt := orchestrator(t, basket)

	mocks.baskets.EXPECT().
		AddPaymentInstrument(gomock.Any(), "basket-1", gomock.Any()).
		Return(basket, nil)
	mocks.baskets.EXPECT().
		UpdateCustomAttributes(gomock.Any(), "basket-1", gomock.Any()).
		Return(basket, nil)
	mocks.orders.EXPECT().
		GetOrder(gomock.Any(), "ORD-1").
		Return(Order{}, ErrOrderNotFound)
	mocks.orders.EXPECT().
		CreateOrder(gomock.Any(), "basket-1", "ORD-1").
		Return(Order{OrderNo: "ORD-1"}, nil)

	action := json.RawMessage(`{"type":"redirect","url":"https://3ds.example"}`)
	mocks.processor.EXPECT().
		Authorize(gomock.Any(), ckt.Site, gomock.Any(), gomock.Any()).
		Return(ProcessorResponse{
			ResultCode:        ResultRedirectShopper,
			MerchantReference: "ORD-1",
			Action:            action,
		}, nil)

	// when: no finalize, no rollback; the shopper still owes a redirect
	outcome, err := o.Authorize(context.Background(), ckt, AuthorizeInput{
		OrderNo:           "ORD-1",
		Amount:            Amount{Value: 10000, Currency: "USD"},
		PaymentMethodType: "scheme",
		PaymentData:       json.RawMessage(`{"type":"scheme"}`),
	})

	// then
	assert.NoError(t, err)
	assert.Equal(t, OutcomePendingAction, outcome.Kind)
	assert.False(t, outcome.IsFinal)
	assert.True(t, outcome.IsSuccessful)
	assert.Equal(t, action, outcome.Action)
}

func TestOrchestrator_Authorize_Refused(t *testing.T) {
	t.Parallel()

	// given
	basket := Basket{ID: "basket-1", CurrencyCode: "USD", OrderTotal: 100.00, CustomerID: "cust-1"}
	o, mocks, ckt := orchestrator(t, basket)

	withInstrument := basket
	withInstrument.PaymentInstruments = []PaymentInstrument{{ID: "pi-1", Amount: 100.00}}

	mocks.baskets.EXPECT().
		AddPaymentInstrument(gomock.Any(), "basket-1", gomock.Any()).
		Return(withInstrument, nil)
	mocks.baskets.EXPECT().
		UpdateCustomAttributes(gomock.Any(), "basket-1", gomock.Any()).
		Return(withInstrument, nil)
	mocks.orders.EXPECT().
		GetOrder(gomock.Any(), "ORD-1").
		Return(Order{}, ErrOrderNotFound)
	mocks.orders.EXPECT().
		CreateOrder(gomock.Any(), "basket-1", "ORD-1").
		Return(Order{OrderNo: "ORD-1"}, nil)

	mocks.processor.EXPECT().
		Authorize(gomock.Any(), ckt.Site, gomock.Any(), gomock.Any()).
		Return(ProcessorResponse{
			ResultCode:        ResultRefused,
			MerchantReference: "ORD-1",
			RefusalReason:     "Not enough balance",
		}, nil)

	// full rollback
	empty := basket
	mocks.baskets.EXPECT().
		UpdateCustomAttributes(gomock.Any(), "basket-1", clearedAttrs()).
		Return(withInstrument, nil)
	mocks.baskets.EXPECT().
		RemovePaymentInstrument(gomock.Any(), "basket-1", "pi-1").
		Return(empty, nil)

	// deferred cleanup: refresh finds nothing left, the created order is failed
	mocks.baskets.EXPECT().
		GetBasket(gomock.Any(), "basket-1").
		Return(empty, nil)
	mocks.orders.EXPECT().
		GetOrder(gomock.Any(), "ORD-1").
		Return(Order{OrderNo: "ORD-1"}, nil)
	mocks.orders.EXPECT().
		FailOrder(gomock.Any(), "ORD-1", true).
		Return(nil)

	// when
	outcome, err := o.Authorize(context.Background(), ckt, AuthorizeInput{
		OrderNo:           "ORD-1",
		Amount:            Amount{Value: 10000, Currency: "USD"},
		PaymentMethodType: "scheme",
		PaymentData:       json.RawMessage(`{"type":"scheme"}`),
	})

	// then
	assert.ErrorIs(t, err, ErrPaymentNotSuccessful)
	assert.ErrorContains(t, err, "Not enough balance")
	assert.Equal(t, OutcomeFinalFailure, outcome.Kind)
	assert.Equal(t, "Not enough balance", outcome.RefusalReason)
}

func TestOrchestrator_Authorize_DuplicateOrder(t *testing.T) {
	t.Parallel()

	// given
	basket := Basket{ID: "basket-1", CurrencyCode: "USD", OrderTotal: 100.00, CustomerID: "cust-1"}
	o, mocks, ckt := orchestrator(t, basket)

	withInstrument := basket
	withInstrument.PaymentInstruments = []PaymentInstrument{{ID: "pi-1", Amount: 100.00}}

	mocks.baskets.EXPECT().
		AddPaymentInstrument(gomock.Any(), "basket-1", gomock.Any()).
		Return(withInstrument, nil)
	mocks.baskets.EXPECT().
		UpdateCustomAttributes(gomock.Any(), "basket-1", gomock.Any()).
		Return(withInstrument, nil)

	// the order already exists, so this attempt must not create another one
	mocks.orders.EXPECT().
		GetOrder(gomock.Any(), "ORD-1").
		Return(Order{OrderNo: "ORD-1"}, nil)

	// cleanup drops the reservation but leaves the pre-existing order alone
	mocks.baskets.EXPECT().
		GetBasket(gomock.Any(), "basket-1").
		Return(withInstrument, nil)
	mocks.baskets.EXPECT().
		RemovePaymentInstrument(gomock.Any(), "basket-1", "pi-1").
		Return(basket, nil)

	// when
	_, err := o.Authorize(context.Background(), ckt, AuthorizeInput{
		OrderNo:           "ORD-1",
		Amount:            Amount{Value: 10000, Currency: "USD"},
		PaymentMethodType: "scheme",
		PaymentData:       json.RawMessage(`{"type":"scheme"}`),
	})

	// then
	assert.ErrorIs(t, err, ErrOrderAlreadyExists)
}

func TestOrchestrator_Authorize_PartialGiftCard(t *testing.T) {
	t.Parallel()

	// given a basket with a pending processor order and one gift card attached
	pending := PendingOrder{
		PSPReference:    "psp-order-1",
		OrderData:       "order-data",
		Amount:          Amount{Value: 10000, Currency: "USD"},
		RemainingAmount: Amount{Value: 4000, Currency: "USD"},
	}
	blob, encodeErr := pending.Encode()
	if encodeErr != nil {
		t.Fatal(encodeErr)
	}
	basket := Basket{
		ID:           "basket-1",
		CurrencyCode: "USD",
		OrderTotal:   100.00,
		CustomerID:   "cust-1",
		PaymentInstruments: []PaymentInstrument{
			{ID: "pi-1", Amount: 60.00, PaymentMethodID: ComponentMethodID + "_giftcard"},
		},
		Custom: map[string]string{AttrPendingOrderData: blob},
	}
	o, mocks, ckt := orchestrator(t, basket)

	mocks.baskets.EXPECT().
		AddPaymentInstrument(gomock.Any(), "basket-1", gomock.Any()).
		Return(basket, nil)
	mocks.baskets.EXPECT().
		UpdateCustomAttributes(gomock.Any(), "basket-1", gomock.Any()).
		Return(basket, nil)

	var submitted AuthorizeRequest
	mocks.processor.EXPECT().
		Authorize(gomock.Any(), ckt.Site, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ Site, req AuthorizeRequest, _ string) (ProcessorResponse, error) {
			submitted = req
			return ProcessorResponse{
				ResultCode:        ResultAuthorised,
				PSPReference:      "psp-auth-2",
				MerchantReference: "ORD-1",
			}, nil
		})

	mocks.baskets.EXPECT().
		UpdateCustomAttributes(gomock.Any(), "basket-1", map[string]string{AttrPSPReference: "psp-auth-2"}).
		Return(basket, nil)

	// the backend order only exists once the partial flow reaches finality
	mocks.orders.EXPECT().
		GetOrder(gomock.Any(), "ORD-1").
		Return(Order{}, ErrOrderNotFound)
	mocks.orders.EXPECT().
		CreateOrder(gomock.Any(), "basket-1", "ORD-1").
		Return(Order{OrderNo: "ORD-1"}, nil)
	mocks.baskets.EXPECT().
		UpdateCustomAttributes(gomock.Any(), "basket-1", map[string]string{AttrPendingOrderData: ""}).
		Return(basket, nil)
	mocks.orders.EXPECT().
		UpdateConfirmationStatus(gomock.Any(), "ORD-1", ConfirmationConfirmed).
		Return(nil)
	mocks.orders.EXPECT().
		UpdatePaymentStatus(gomock.Any(), "ORD-1", PaymentStatusPaid).
		Return(nil)

	// when
	outcome, err := o.Authorize(context.Background(), ckt, AuthorizeInput{
		OrderNo:           "ORD-1",
		Amount:            Amount{Value: 4000, Currency: "USD"},
		PaymentMethodType: giftCardMethodType,
		PaymentData:       json.RawMessage(`{"type":"giftcard"}`),
	})

	// then
	assert.NoError(t, err)
	assert.True(t, outcome.IsFinal)
	assert.True(t, outcome.IsSuccessful)

	if assert.NotNil(t, submitted.Order) {
		assert.Equal(t, "order-data", submitted.Order.OrderData)
		assert.Equal(t, "psp-order-1", submitted.Order.PSPReference)
	}
}

func TestOrchestrator_Authorize_ExpressShopperData(t *testing.T) {
	t.Parallel()

	// given
	basket := Basket{ID: "basket-1", CurrencyCode: "USD", ProductTotal: 95.00, CustomerID: "cust-1"}
	o, mocks, ckt := orchestrator(t, basket)

	shipping := Address{FirstName: "Jane", Address1: "1 Main St", City: "Austin", CountryCode: "US"}
	billing := Address{FirstName: "Jane", Address1: "2 Oak St", City: "Austin", CountryCode: "US"}
	profile := ShopperProfile{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"}

	taxed := basket
	taxed.OrderTotal = 102.84

	mocks.baskets.EXPECT().
		AddPaymentInstrument(gomock.Any(), "basket-1", gomock.Any()).
		Return(basket, nil)
	mocks.baskets.EXPECT().
		UpdateCustomAttributes(gomock.Any(), "basket-1", gomock.Any()).
		Return(basket, nil)
	mocks.baskets.EXPECT().
		UpdateShippingAddress(gomock.Any(), "basket-1", shipping).
		Return(taxed, nil)
	mocks.baskets.EXPECT().
		UpdateBillingAddress(gomock.Any(), "basket-1", billing).
		Return(basket, nil)
	mocks.baskets.EXPECT().
		UpdateCustomer(gomock.Any(), "basket-1", profile).
		Return(basket, nil)

	// the wallet payload is stashed for the review page
	mocks.baskets.EXPECT().
		UpdateCustomAttributes(gomock.Any(), "basket-1", map[string]string{AttrReviewPaymentData: `{"type":"paywithgoogle"}`}).
		Return(taxed, nil)

	mocks.orders.EXPECT().
		GetOrder(gomock.Any(), "ORD-1").
		Return(Order{}, ErrOrderNotFound)
	mocks.orders.EXPECT().
		CreateOrder(gomock.Any(), "basket-1", "ORD-1").
		Return(Order{OrderNo: "ORD-1"}, nil)

	mocks.processor.EXPECT().
		Authorize(gomock.Any(), ckt.Site, gomock.Any(), gomock.Any()).
		Return(ProcessorResponse{
			ResultCode:        ResultAuthorised,
			PSPReference:      "psp-auth-3",
			MerchantReference: "ORD-1",
		}, nil)

	mocks.baskets.EXPECT().
		UpdateCustomAttributes(gomock.Any(), "basket-1", map[string]string{AttrPSPReference: "psp-auth-3"}).
		Return(taxed, nil)
	mocks.orders.EXPECT().
		UpdateConfirmationStatus(gomock.Any(), "ORD-1", ConfirmationConfirmed).
		Return(nil)
	mocks.orders.EXPECT().
		UpdatePaymentStatus(gomock.Any(), "ORD-1", PaymentStatusPaid).
		Return(nil)

	// when: the wallet amount was computed pre-tax, express skips the strict check
	outcome, err := o.Authorize(context.Background(), ckt, AuthorizeInput{
		OrderNo:           "ORD-1",
		Amount:            Amount{Value: 9500, Currency: "USD"},
		PaymentMethodType: "paywithgoogle",
		PaymentData:       json.RawMessage(`{"type":"paywithgoogle"}`),
		Express:           true,
		ShopperData:       &ShopperData{Shipping: shipping, Billing: billing, Profile: profile},
	})

	// then
	assert.NoError(t, err)
	assert.True(t, outcome.IsSuccessful)
	assert.EqualValues(t, 102.84, ckt.Basket.OrderTotal, "snapshot taken from the shipping response")
}

func TestOrchestrator_Authorize_Validation(t *testing.T) {
	t.Parallel()

	basket := Basket{ID: "basket-1", CurrencyCode: "USD", OrderTotal: 100.00}

	testCases := []struct {
		name        string
		ckt         bool
		input       AuthorizeInput
		expectedErr error
	}{
		{
			name:        "no bound context",
			ckt:         false,
			input:       AuthorizeInput{OrderNo: "ORD-1", PaymentData: json.RawMessage(`{}`)},
			expectedErr: ErrContextNotFound,
		},
		{
			name:        "missing order number",
			ckt:         true,
			input:       AuthorizeInput{PaymentData: json.RawMessage(`{}`)},
			expectedErr: ErrValidation,
		},
		{
			name:        "missing payment data",
			ckt:         true,
			input:       AuthorizeInput{OrderNo: "ORD-1"},
			expectedErr: ErrValidation,
		},
		{
			name: "amount mismatch fails before any side effect",
			ckt:  true,
			input: AuthorizeInput{
				OrderNo:           "ORD-1",
				Amount:            Amount{Value: 1, Currency: "USD"},
				PaymentMethodType: "scheme",
				PaymentData:       json.RawMessage(`{}`),
			},
			expectedErr: ErrAmountMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// given
			o, mocks, ckt := orchestrator(t, basket)
			if !tc.ckt {
				ckt = nil
			} else {
				// reconciliation failures still trigger the basket cleanup
				mocks.baskets.EXPECT().
					GetBasket(gomock.Any(), "basket-1").
					Return(basket, nil).
					AnyTimes()
			}

			// when
			_, err := o.Authorize(context.Background(), ckt, tc.input)

			// then
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestOrchestrator_SubmitDetails(t *testing.T) {
	t.Parallel()

	t.Run("settles a completed challenge", func(t *testing.T) {
		t.Parallel()

		// given
		basket := Basket{ID: "basket-1", CurrencyCode: "USD", OrderTotal: 100.00, CustomerID: "cust-1"}
		o, mocks, ckt := orchestrator(t, basket)

		details := json.RawMessage(`{"redirectResult":"abc"}`)
		mocks.processor.EXPECT().
			SubmitDetails(gomock.Any(), ckt.Site, DetailsRequest{
				Details:     details,
				PaymentData: "payment-data-blob",
			}, gomock.Any()).
			Return(ProcessorResponse{
				ResultCode:        ResultAuthorised,
				PSPReference:      "psp-auth-4",
				MerchantReference: "ORD-1",
			}, nil)

		mocks.baskets.EXPECT().
			UpdateCustomAttributes(gomock.Any(), "basket-1", map[string]string{AttrPSPReference: "psp-auth-4"}).
			Return(basket, nil)
		mocks.orders.EXPECT().
			UpdateConfirmationStatus(gomock.Any(), "ORD-1", ConfirmationConfirmed).
			Return(nil)
		mocks.orders.EXPECT().
			UpdatePaymentStatus(gomock.Any(), "ORD-1", PaymentStatusPaid).
			Return(nil)

		// when
		outcome, err := o.SubmitDetails(context.Background(), ckt, DetailsInput{
			OrderNo:     "ORD-1",
			Details:     details,
			PaymentData: "payment-data-blob",
		})

		// then
		assert.NoError(t, err)
		assert.True(t, outcome.IsFinal)
		assert.True(t, outcome.IsSuccessful)
	})

	t.Run("missing details payload", func(t *testing.T) {
		t.Parallel()

		// given
		o, _, ckt := orchestrator(t, Basket{ID: "basket-1"})

		// when
		_, err := o.SubmitDetails(context.Background(), ckt, DetailsInput{OrderNo: "ORD-1"})

		// then
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("refused challenge rolls the checkout back", func(t *testing.T) {
		t.Parallel()

		// given
		basket := Basket{
			ID:           "basket-1",
			CurrencyCode: "USD",
			OrderTotal:   100.00,
			PaymentInstruments: []PaymentInstrument{
				{ID: "pi-1", Amount: 100.00},
			},
		}
		o, mocks, ckt := orchestrator(t, basket)

		mocks.processor.EXPECT().
			SubmitDetails(gomock.Any(), ckt.Site, gomock.Any(), gomock.Any()).
			Return(ProcessorResponse{
				ResultCode:        ResultRefused,
				MerchantReference: "ORD-1",
				RefusalReason:     "3D Not Authenticated",
			}, nil)

		empty := basket
		empty.PaymentInstruments = nil
		mocks.baskets.EXPECT().
			UpdateCustomAttributes(gomock.Any(), "basket-1", clearedAttrs()).
			Return(basket, nil)
		mocks.baskets.EXPECT().
			RemovePaymentInstrument(gomock.Any(), "basket-1", "pi-1").
			Return(empty, nil)

		// cleanup for the surfaced error
		mocks.baskets.EXPECT().
			GetBasket(gomock.Any(), "basket-1").
			Return(empty, nil)
		mocks.orders.EXPECT().
			GetOrder(gomock.Any(), "ORD-1").
			Return(Order{OrderNo: "ORD-1"}, nil)
		mocks.orders.EXPECT().
			FailOrder(gomock.Any(), "ORD-1", true).
			Return(nil)

		// when
		_, err := o.SubmitDetails(context.Background(), ckt, DetailsInput{
			OrderNo: "ORD-1",
			Details: json.RawMessage(`{"redirectResult":"abc"}`),
		})

		// then
		assert.ErrorIs(t, err, ErrPaymentNotSuccessful)
	})
}
