// Package processor is the HTTP client for the third-party payment gateway.
package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"StorefrontPayments/internal/domain/checkout"
)

const (
	headerAPIKey         = "X-API-Key"
	headerIdempotencyKey = "Idempotency-Key"
)

// Client implements checkout.Processor over the gateway's checkout API.
// Credentials are taken from the Site passed on every call; the client holds
// no per-site state. There are no automatic retries: callers own the
// idempotency key, so a retry is their decision to make.
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

func (c *Client) Authorize(ctx context.Context, site checkout.Site, req checkout.AuthorizeRequest, idempotencyKey string) (checkout.ProcessorResponse, error) {
	req.MerchantAccount = site.MerchantAccount
	var resp checkout.ProcessorResponse
	if err := c.post(ctx, site, "/payments", req, idempotencyKey, &resp); err != nil {
		return checkout.ProcessorResponse{}, fmt.Errorf("authorize: %w", err)
	}
	return resp, nil
}

func (c *Client) SubmitDetails(ctx context.Context, site checkout.Site, req checkout.DetailsRequest, idempotencyKey string) (checkout.ProcessorResponse, error) {
	var resp checkout.ProcessorResponse
	if err := c.post(ctx, site, "/payments/details", req, idempotencyKey, &resp); err != nil {
		return checkout.ProcessorResponse{}, fmt.Errorf("submit details: %w", err)
	}
	return resp, nil
}

func (c *Client) CreateOrder(ctx context.Context, site checkout.Site, req checkout.CreateOrderRequest, idempotencyKey string) (checkout.ProcessorResponse, error) {
	req.MerchantAccount = site.MerchantAccount
	var resp checkout.ProcessorResponse
	if err := c.post(ctx, site, "/orders", req, idempotencyKey, &resp); err != nil {
		return checkout.ProcessorResponse{}, fmt.Errorf("create order: %w", err)
	}
	return resp, nil
}

func (c *Client) CancelOrder(ctx context.Context, site checkout.Site, req checkout.CancelOrderRequest, idempotencyKey string) (checkout.CancelOrderResponse, error) {
	req.MerchantAccount = site.MerchantAccount
	var resp checkout.CancelOrderResponse
	if err := c.post(ctx, site, "/orders/cancel", req, idempotencyKey, &resp); err != nil {
		return checkout.CancelOrderResponse{}, fmt.Errorf("cancel order: %w", err)
	}
	return resp, nil
}

func (c *Client) GiftCardBalance(ctx context.Context, site checkout.Site, req checkout.BalanceRequest, idempotencyKey string) (checkout.BalanceResponse, error) {
	req.MerchantAccount = site.MerchantAccount
	var resp checkout.BalanceResponse
	if err := c.post(ctx, site, "/paymentMethods/balance", req, idempotencyKey, &resp); err != nil {
		return checkout.BalanceResponse{}, fmt.Errorf("gift card balance: %w", err)
	}
	return resp, nil
}

func (c *Client) post(ctx context.Context, site checkout.Site, path string, body any, idempotencyKey string, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerAPIKey, site.APIKey)
	if idempotencyKey != "" {
		httpReq.Header.Set(headerIdempotencyKey, idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(resp.Body)
	if err := statusError(resp.StatusCode, raw); err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
