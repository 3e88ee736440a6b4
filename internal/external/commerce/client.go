// Package commerce is the HTTP client for the backend commerce system's
// basket, customer and order APIs.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"

	"StorefrontPayments/internal/domain/checkout"
)

// Client implements checkout.BasketRepo, checkout.CustomerRepo and
// checkout.OrderSystem. Every basket mutation returns the backend's view of
// the basket after the write.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// basketQuery expands the sub-resources the checkout flow reads on every
// basket fetch.
type basketQuery struct {
	Expand []string `url:"expand,comma,omitempty"`
}

var fullBasket = basketQuery{
	Expand: []string{"payment_instruments", "custom_attributes", "totals"},
}

func (c *Client) GetBasket(ctx context.Context, basketID string) (checkout.Basket, error) {
	var dto basketDTO
	path := "/baskets/" + basketID + queryString(fullBasket)
	if err := c.do(ctx, http.MethodGet, path, nil, &dto, basketErrors); err != nil {
		return checkout.Basket{}, fmt.Errorf("get basket: %w", err)
	}
	return dto.toBasket(), nil
}

func (c *Client) CreateBasket(ctx context.Context, customerID string) (checkout.Basket, error) {
	body := map[string]string{"customer_id": customerID}
	var dto basketDTO
	if err := c.do(ctx, http.MethodPost, "/baskets", body, &dto, basketErrors); err != nil {
		return checkout.Basket{}, fmt.Errorf("create basket: %w", err)
	}
	return dto.toBasket(), nil
}

func (c *Client) DeleteBasket(ctx context.Context, basketID string) error {
	if err := c.do(ctx, http.MethodDelete, "/baskets/"+basketID, nil, nil, basketErrors); err != nil {
		return fmt.Errorf("delete basket: %w", err)
	}
	return nil
}

func (c *Client) UpdateCustomAttributes(ctx context.Context, basketID string, attrs map[string]string) (checkout.Basket, error) {
	body := map[string]map[string]string{"custom_attributes": attrs}
	var dto basketDTO
	if err := c.do(ctx, http.MethodPatch, "/baskets/"+basketID, body, &dto, basketErrors); err != nil {
		return checkout.Basket{}, fmt.Errorf("update custom attributes: %w", err)
	}
	return dto.toBasket(), nil
}

func (c *Client) AddPaymentInstrument(ctx context.Context, basketID string, instrument checkout.NewInstrument) (checkout.Basket, error) {
	body := paymentInstrumentDTO{
		Amount:          instrument.Amount,
		PaymentMethodID: instrument.PaymentMethodID,
		PaymentMethod:   instrument.PaymentMethod,
		PSPReference:    instrument.PSPReference,
	}
	var dto basketDTO
	if err := c.do(ctx, http.MethodPost, "/baskets/"+basketID+"/payment-instruments", body, &dto, basketErrors); err != nil {
		return checkout.Basket{}, fmt.Errorf("add payment instrument: %w", err)
	}
	return dto.toBasket(), nil
}

func (c *Client) RemovePaymentInstrument(ctx context.Context, basketID, instrumentID string) (checkout.Basket, error) {
	var dto basketDTO
	path := "/baskets/" + basketID + "/payment-instruments/" + instrumentID
	if err := c.do(ctx, http.MethodDelete, path, nil, &dto, basketErrors); err != nil {
		return checkout.Basket{}, fmt.Errorf("remove payment instrument: %w", err)
	}
	return dto.toBasket(), nil
}

func (c *Client) UpdateShippingAddress(ctx context.Context, basketID string, address checkout.Address) (checkout.Basket, error) {
	var dto basketDTO
	if err := c.do(ctx, http.MethodPut, "/baskets/"+basketID+"/shipping-address", address, &dto, basketErrors); err != nil {
		return checkout.Basket{}, fmt.Errorf("update shipping address: %w", err)
	}
	return dto.toBasket(), nil
}

func (c *Client) UpdateBillingAddress(ctx context.Context, basketID string, address checkout.Address) (checkout.Basket, error) {
	var dto basketDTO
	if err := c.do(ctx, http.MethodPut, "/baskets/"+basketID+"/billing-address", address, &dto, basketErrors); err != nil {
		return checkout.Basket{}, fmt.Errorf("update billing address: %w", err)
	}
	return dto.toBasket(), nil
}

func (c *Client) UpdateCustomer(ctx context.Context, basketID string, profile checkout.ShopperProfile) (checkout.Basket, error) {
	var dto basketDTO
	if err := c.do(ctx, http.MethodPut, "/baskets/"+basketID+"/customer", profile, &dto, basketErrors); err != nil {
		return checkout.Basket{}, fmt.Errorf("update basket customer: %w", err)
	}
	return dto.toBasket(), nil
}

func (c *Client) GetCustomer(ctx context.Context, customerID string) (checkout.Customer, error) {
	var dto customerDTO
	if err := c.do(ctx, http.MethodGet, "/customers/"+customerID, nil, &dto, customerErrors); err != nil {
		return checkout.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return dto.toCustomer(), nil
}

func (c *Client) GetOrder(ctx context.Context, orderNo string) (checkout.Order, error) {
	var dto orderDTO
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderNo, nil, &dto, orderErrors); err != nil {
		return checkout.Order{}, fmt.Errorf("get order: %w", err)
	}
	return dto.toOrder(), nil
}

func (c *Client) CreateOrder(ctx context.Context, basketID, orderNo string) (checkout.Order, error) {
	body := map[string]string{"basket_id": basketID, "order_no": orderNo}
	var dto orderDTO
	if err := c.do(ctx, http.MethodPost, "/orders", body, &dto, orderErrors); err != nil {
		return checkout.Order{}, fmt.Errorf("create order: %w", err)
	}
	return dto.toOrder(), nil
}

// failOrderQuery controls whether the backend restores the basket the failed
// order was placed from.
type failOrderQuery struct {
	ReopenBasket bool `url:"reopen_basket"`
}

func (c *Client) FailOrder(ctx context.Context, orderNo string, reopenBasket bool) error {
	path := "/orders/" + orderNo + "/fail" + queryString(failOrderQuery{ReopenBasket: reopenBasket})
	if err := c.do(ctx, http.MethodPost, path, nil, nil, orderErrors); err != nil {
		return fmt.Errorf("fail order: %w", err)
	}
	return nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderNo, value string) error {
	return c.updateStatus(ctx, orderNo, "status", value)
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, orderNo, value string) error {
	return c.updateStatus(ctx, orderNo, "payment_status", value)
}

func (c *Client) UpdateExportStatus(ctx context.Context, orderNo, value string) error {
	return c.updateStatus(ctx, orderNo, "export_status", value)
}

func (c *Client) UpdateConfirmationStatus(ctx context.Context, orderNo, value string) error {
	return c.updateStatus(ctx, orderNo, "confirmation_status", value)
}

func (c *Client) updateStatus(ctx context.Context, orderNo, field, value string) error {
	body := map[string]string{field: value}
	if err := c.do(ctx, http.MethodPatch, "/orders/"+orderNo, body, nil, orderErrors); err != nil {
		return fmt.Errorf("update order %s: %w", field, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, errMap errorMapper) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("commerce api: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(resp.Body)
	if err := errMap(resp.StatusCode, raw); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// queryString encodes a query struct into "?k=v" form, "" on empty.
func queryString(q any) string {
	values, err := query.Values(q)
	if err != nil || len(values) == 0 {
		return ""
	}
	encoded := values.Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}
