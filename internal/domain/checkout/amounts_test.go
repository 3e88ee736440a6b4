package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileAmounts(t *testing.T) {
	t.Parallel()

	basket := Basket{
		ID:           "basket-1",
		CurrencyCode: "USD",
		OrderTotal:   100.00,
	}
	pending := &PendingOrder{
		PSPReference:    "psp-order-1",
		OrderData:       "order-data",
		Amount:          Amount{Value: 10000, Currency: "USD"},
		RemainingAmount: Amount{Value: 4000, Currency: "USD"},
	}

	testCases := []struct {
		name        string
		basket      Basket
		proposed    Amount
		opts        ReconcileOptions
		expectedErr error
	}{
		{
			name:     "standard payment matching the basket total",
			basket:   basket,
			proposed: Amount{Value: 10000, Currency: "USD"},
		},
		{
			name:        "currency mismatch is rejected before any arithmetic",
			basket:      basket,
			proposed:    Amount{Value: 10000, Currency: "EUR"},
			expectedErr: ErrCurrencyMismatch,
		},
		{
			name:        "standard payment short of the total",
			basket:      basket,
			proposed:    Amount{Value: 9999, Currency: "USD"},
			expectedErr: ErrAmountMismatch,
		},
		{
			name:        "standard payment over the total",
			basket:      basket,
			proposed:    Amount{Value: 10001, Currency: "USD"},
			expectedErr: ErrAmountMismatch,
		},
		{
			name: "standard payment counts already attached instruments",
			basket: Basket{
				ID:           "basket-1",
				CurrencyCode: "USD",
				OrderTotal:   100.00,
				PaymentInstruments: []PaymentInstrument{
					{ID: "pi-1", Amount: 60.00, PaymentMethodID: ComponentMethodID + "_giftcard"},
				},
			},
			proposed: Amount{Value: 4000, Currency: "USD"},
		},
		{
			name:     "express bypasses strict reconciliation",
			basket:   basket,
			proposed: Amount{Value: 1, Currency: "USD"},
			opts:     ReconcileOptions{Express: true},
		},
		{
			name:        "express still rejects a foreign currency",
			basket:      basket,
			proposed:    Amount{Value: 10000, Currency: "EUR"},
			opts:        ReconcileOptions{Express: true},
			expectedErr: ErrCurrencyMismatch,
		},
		{
			name:     "partial payment within the remaining amount",
			basket:   basket,
			proposed: Amount{Value: 4000, Currency: "USD"},
			opts:     ReconcileOptions{Partial: pending},
		},
		{
			name:     "partial under-collection is allowed",
			basket:   basket,
			proposed: Amount{Value: 1500, Currency: "USD"},
			opts:     ReconcileOptions{Partial: pending},
		},
		{
			name:        "partial payment over the remaining amount",
			basket:      basket,
			proposed:    Amount{Value: 4001, Currency: "USD"},
			opts:        ReconcileOptions{Partial: pending},
			expectedErr: ErrOverCollection,
		},
		{
			name: "partial payment pushing the running total past the basket",
			basket: Basket{
				ID:           "basket-1",
				CurrencyCode: "USD",
				OrderTotal:   100.00,
				PaymentInstruments: []PaymentInstrument{
					{ID: "pi-1", Amount: 70.00, PaymentMethodID: ComponentMethodID + "_giftcard"},
				},
			},
			proposed:    Amount{Value: 4000, Currency: "USD"},
			opts:        ReconcileOptions{Partial: pending},
			expectedErr: ErrOverCollection,
		},
		{
			name: "partial payment against a basket that changed since order creation",
			basket: Basket{
				ID:           "basket-1",
				CurrencyCode: "USD",
				OrderTotal:   120.00,
			},
			proposed:    Amount{Value: 4000, Currency: "USD"},
			opts:        ReconcileOptions{Partial: pending},
			expectedErr: ErrBasketChanged,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// when
			err := ReconcileAmounts(tc.basket, tc.proposed, tc.opts)

			// then
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReconcileAmounts_ZeroDecimalCurrency(t *testing.T) {
	t.Parallel()

	// given a currency without minor units
	basket := Basket{ID: "basket-1", CurrencyCode: "JPY", OrderTotal: 1500}

	// when
	err := ReconcileAmounts(basket, Amount{Value: 1500, Currency: "JPY"}, ReconcileOptions{})

	// then
	assert.NoError(t, err)
}
