// Package webhook authenticates and dispatches processor notifications.
// Inbound notifications pass through an explicit pipeline
// (credential check, signature check, parse) before any order state changes.
package webhook

import (
	"encoding/json"
	"errors"
	"strings"

	"StorefrontPayments/internal/domain/checkout"
)

// Event codes the dispatcher understands. Anything else is recorded and
// acknowledged without touching order state.
const (
	EventAuthorisation = "AUTHORISATION"
	EventCancellation  = "CANCELLATION"
	EventRefund        = "REFUND"
)

var (
	// ErrAccessDenied covers failed credential and signature checks. The
	// controller answers 401 and the payload is never dispatched.
	ErrAccessDenied = errors.New("webhook access denied")
	// ErrMalformedNotification covers payloads with no well-formed
	// notification item.
	ErrMalformedNotification = errors.New("malformed notification payload")
)

// Envelope is the wire shape of a processor notification batch.
type Envelope struct {
	Live              string        `json:"live"`
	NotificationItems []ItemWrapper `json:"notificationItems"`
}

// ItemWrapper is the processor's one-key object around each item.
type ItemWrapper struct {
	NotificationRequestItem Item `json:"NotificationRequestItem"`
}

// Item is a single notification event.
type Item struct {
	EventCode           string            `json:"eventCode"`
	Success             string            `json:"success"`
	PSPReference        string            `json:"pspReference"`
	OriginalReference   string            `json:"originalReference"`
	MerchantReference   string            `json:"merchantReference"`
	MerchantAccountCode string            `json:"merchantAccountCode"`
	Amount              checkout.Amount   `json:"amount"`
	EventDate           string            `json:"eventDate"`
	Reason              string            `json:"reason"`
	AdditionalData      map[string]string `json:"additionalData"`
}

// IsSuccess reports the processor's success flag, which arrives as a string.
func (i Item) IsSuccess() bool {
	return strings.EqualFold(i.Success, "true")
}

// wellFormed is the minimum an item needs before dispatch can act on it.
func (i Item) wellFormed() bool {
	return i.EventCode != "" && i.PSPReference != ""
}

// Notification is an authenticated, parsed notification ready for dispatch.
type Notification struct {
	SiteID string          `json:"site_id"`
	Live   bool            `json:"live"`
	Item   Item            `json:"item"`
	Raw    json.RawMessage `json:"raw,omitempty"`
}
