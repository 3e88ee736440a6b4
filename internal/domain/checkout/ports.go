package checkout

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source ports.go -destination mock_ports.go -package checkout

// NewInstrument describes a payment instrument to attach to a basket.
type NewInstrument struct {
	Amount          float64
	PaymentMethodID string
	PaymentMethod   string
	PSPReference    string
}

// BasketRepo is the backend commerce system's basket API. Every mutation
// returns the server's view of the basket; callers must never trust an
// optimistic local merge.
type BasketRepo interface {
	GetBasket(ctx context.Context, basketID string) (Basket, error)
	UpdateCustomAttributes(ctx context.Context, basketID string, attrs map[string]string) (Basket, error)
	AddPaymentInstrument(ctx context.Context, basketID string, instrument NewInstrument) (Basket, error)
	RemovePaymentInstrument(ctx context.Context, basketID, instrumentID string) (Basket, error)
	UpdateShippingAddress(ctx context.Context, basketID string, address Address) (Basket, error)
	UpdateBillingAddress(ctx context.Context, basketID string, address Address) (Basket, error)
	UpdateCustomer(ctx context.Context, basketID string, profile ShopperProfile) (Basket, error)
	CreateBasket(ctx context.Context, customerID string) (Basket, error)
	DeleteBasket(ctx context.Context, basketID string) error
}

// CustomerRepo is the backend commerce system's customer API.
type CustomerRepo interface {
	GetCustomer(ctx context.Context, customerID string) (Customer, error)
}

// OrderSystem is the backend commerce system's order API. CreateOrder is
// idempotent by order number: a second create with the same number fails with
// ErrOrderAlreadyExists rather than producing a duplicate.
type OrderSystem interface {
	GetOrder(ctx context.Context, orderNo string) (Order, error)
	CreateOrder(ctx context.Context, basketID, orderNo string) (Order, error)
	// FailOrder marks the order failed; with reopenBasket the backend
	// restores the basket the order was created from.
	FailOrder(ctx context.Context, orderNo string, reopenBasket bool) error
	UpdateOrderStatus(ctx context.Context, orderNo, value string) error
	UpdatePaymentStatus(ctx context.Context, orderNo, value string) error
	UpdateExportStatus(ctx context.Context, orderNo, value string) error
	UpdateConfirmationStatus(ctx context.Context, orderNo, value string) error
}

// AuthorizeRequest is the outbound authorization request. The builder
// guarantees Reference and Amount are always populated and that partial
// payments carry the pending processor order.
type AuthorizeRequest struct {
	MerchantAccount string          `json:"merchantAccount"`
	Reference       string          `json:"reference"`
	Amount          Amount          `json:"amount"`
	PaymentMethod   json.RawMessage `json:"paymentMethod"`
	ReturnURL       string          `json:"returnUrl,omitempty"`
	ShopperRef      string          `json:"shopperReference,omitempty"`
	Order           *OrderRef       `json:"order,omitempty"`
}

// OrderRef identifies a pending processor order inside an authorization
// request.
type OrderRef struct {
	OrderData    string `json:"orderData"`
	PSPReference string `json:"pspReference"`
}

// DetailsRequest carries the opaque continuation payload a shopper produces
// after completing an out-of-band action (3DS challenge, voucher, wallet).
type DetailsRequest struct {
	Details       json.RawMessage `json:"details"`
	PaymentData   string          `json:"paymentData,omitempty"`
	MerchantOrder string          `json:"-"`
}

// CreateOrderRequest opens a processor order for a multi-instrument payment.
type CreateOrderRequest struct {
	MerchantAccount string `json:"merchantAccount"`
	Reference       string `json:"reference"`
	Amount          Amount `json:"amount"`
}

// CancelOrderRequest cancels a pending processor order.
type CancelOrderRequest struct {
	MerchantAccount string   `json:"merchantAccount"`
	Order           OrderRef `json:"order"`
}

// CancelOrderResponse reports the processor's cancellation verdict; only
// ResultReceived confirms the reservation is released.
type CancelOrderResponse struct {
	ResultCode   ResultCode `json:"resultCode"`
	PSPReference string     `json:"pspReference"`
}

// BalanceRequest checks the remaining balance of a gift card.
type BalanceRequest struct {
	MerchantAccount string          `json:"merchantAccount"`
	PaymentMethod   json.RawMessage `json:"paymentMethod"`
	Amount          Amount          `json:"amount"`
}

// BalanceResponse is the processor's gift-card balance verdict.
type BalanceResponse struct {
	ResultCode ResultCode `json:"resultCode"`
	Balance    Amount     `json:"balance"`
}

// Processor is the third-party payment gateway. Credentials are passed
// explicitly per call so that no client state is shared across sites or
// requests. Every call takes a fresh idempotency key; reusing a key across
// retries is the caller's way of claiming the attempt is the same one.
type Processor interface {
	Authorize(ctx context.Context, site Site, req AuthorizeRequest, idempotencyKey string) (ProcessorResponse, error)
	SubmitDetails(ctx context.Context, site Site, req DetailsRequest, idempotencyKey string) (ProcessorResponse, error)
	CreateOrder(ctx context.Context, site Site, req CreateOrderRequest, idempotencyKey string) (ProcessorResponse, error)
	CancelOrder(ctx context.Context, site Site, req CancelOrderRequest, idempotencyKey string) (CancelOrderResponse, error)
	GiftCardBalance(ctx context.Context, site Site, req BalanceRequest, idempotencyKey string) (BalanceResponse, error)
}
