package processor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"StorefrontPayments/internal/domain/checkout"
)

var testSite = checkout.Site{
	ID:              "store-us",
	MerchantAccount: "StorefrontECOM",
	APIKey:          "test-api-key",
}

func TestClient_Authorize(t *testing.T) {
	t.Parallel()

	// given
	var (
		gotPath        string
		gotAPIKey      string
		gotIdempotency string
		gotBody        checkout.AuthorizeRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("X-API-Key")
		gotIdempotency = r.Header.Get("Idempotency-Key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"resultCode":"Authorised","pspReference":"psp-1","merchantReference":"ORD-1"}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)

	// when
	resp, err := client.Authorize(context.Background(), testSite, checkout.AuthorizeRequest{
		Reference:     "ORD-1",
		Amount:        checkout.Amount{Value: 10000, Currency: "USD"},
		PaymentMethod: json.RawMessage(`{"type":"scheme"}`),
	}, "idem-1")

	// then
	assert.NoError(t, err)
	assert.Equal(t, checkout.ResultAuthorised, resp.ResultCode)
	assert.Equal(t, "psp-1", resp.PSPReference)

	assert.Equal(t, "/payments", gotPath)
	assert.Equal(t, "test-api-key", gotAPIKey)
	assert.Equal(t, "idem-1", gotIdempotency)
	assert.Equal(t, "StorefrontECOM", gotBody.MerchantAccount, "merchant account injected from the site")
	assert.Equal(t, "ORD-1", gotBody.Reference)
}

func TestClient_Paths(t *testing.T) {
	t.Parallel()

	// given
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"resultCode":"Success"}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	ctx := context.Background()

	testCases := []struct {
		name     string
		call     func() error
		expected string
	}{
		{
			name: "submit details",
			call: func() error {
				_, err := client.SubmitDetails(ctx, testSite, checkout.DetailsRequest{
					Details: json.RawMessage(`{"redirectResult":"abc"}`),
				}, "idem-1")
				return err
			},
			expected: "/payments/details",
		},
		{
			name: "create order",
			call: func() error {
				_, err := client.CreateOrder(ctx, testSite, checkout.CreateOrderRequest{Reference: "ORD-1"}, "idem-1")
				return err
			},
			expected: "/orders",
		},
		{
			name: "cancel order",
			call: func() error {
				_, err := client.CancelOrder(ctx, testSite, checkout.CancelOrderRequest{}, "idem-1")
				return err
			},
			expected: "/orders/cancel",
		},
		{
			name: "gift card balance",
			call: func() error {
				_, err := client.GiftCardBalance(ctx, testSite, checkout.BalanceRequest{}, "idem-1")
				return err
			},
			expected: "/paymentMethods/balance",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// sequential on purpose: the cases share gotPath

			// when
			err := tc.call()

			// then
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, gotPath)
		})
	}
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		status      int
		body        string
		expectedErr error
		contains    string
	}{
		{
			name:        "422 with a gateway error body",
			status:      http.StatusUnprocessableEntity,
			body:        `{"status":422,"errorCode":"100","message":"Amount missing"}`,
			expectedErr: ErrGatewayRejected,
			contains:    "Amount missing",
		},
		{
			name:        "401 without a structured body",
			status:      http.StatusUnauthorized,
			body:        `unauthorized`,
			expectedErr: ErrGatewayRejected,
			contains:    "unauthorized",
		},
		{
			name:        "503 maps to unavailable",
			status:      http.StatusServiceUnavailable,
			body:        `{"message":"try later"}`,
			expectedErr: ErrGatewayUnavailable,
			contains:    "try later",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// given
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := New(server.URL, 5*time.Second)

			// when
			_, err := client.Authorize(context.Background(), testSite, checkout.AuthorizeRequest{}, "idem-1")

			// then
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.ErrorContains(t, err, tc.contains)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	t.Parallel()

	// given a server that is already gone
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := New(server.URL, time.Second)

	// when
	_, err := client.Authorize(context.Background(), testSite, checkout.AuthorizeRequest{}, "idem-1")

	// then
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}
