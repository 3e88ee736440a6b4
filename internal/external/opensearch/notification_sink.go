// Package opensearch indexes accepted webhook notifications for search and
// audit. It is a secondary sink: failures are logged by the caller, never
// surfaced to the processor.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/opensearch-project/opensearch-go"

	"StorefrontPayments/internal/webhook"
)

var _ webhook.NotificationSink = (*NotificationSink)(nil)

type NotificationSink struct {
	client *opensearch.Client
	index  string
}

func NewNotificationSink(ctx context.Context, urls []string, index string) (*NotificationSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	cfg := opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	}
	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &NotificationSink{client: client, index: index}
	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *NotificationSink) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"site_id":            map[string]any{"type": "keyword"},
				"psp_reference":      map[string]any{"type": "keyword"},
				"event_code":         map[string]any{"type": "keyword"},
				"merchant_reference": map[string]any{"type": "keyword"},
				"success":            map[string]any{"type": "boolean"},
				"live":               map[string]any{"type": "boolean"},
				"received_at":        map[string]any{"type": "date"},
				"payload":            map[string]any{"type": "object", "enabled": true},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0, // dev-friendly; change in prod
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

type notificationDoc struct {
	SiteID            string          `json:"site_id"`
	PSPReference      string          `json:"psp_reference"`
	EventCode         string          `json:"event_code"`
	MerchantReference string          `json:"merchant_reference"`
	Success           bool            `json:"success"`
	Live              bool            `json:"live"`
	ReceivedAt        time.Time       `json:"received_at"`
	Payload           json.RawMessage `json:"payload,omitempty"`
}

// Store indexes the notification. The document ID is derived from the event's
// identity so that redelivery overwrites instead of duplicating.
func (s *NotificationSink) Store(ctx context.Context, n webhook.Notification) error {
	doc := notificationDoc{
		SiteID:            n.SiteID,
		PSPReference:      n.Item.PSPReference,
		EventCode:         n.Item.EventCode,
		MerchantReference: n.Item.MerchantReference,
		Success:           n.Item.IsSuccess(),
		Live:              n.Live,
		ReceivedAt:        time.Now().UTC(),
		Payload:           n.Raw,
	}
	payload, _ := json.Marshal(doc)

	docID := fmt.Sprintf("%s:%s:%s", n.Item.PSPReference, n.Item.EventCode, n.Item.Success)
	res, err := s.client.Index(
		s.index,
		bytes.NewReader(payload),
		s.client.Index.WithDocumentID(docID),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}
