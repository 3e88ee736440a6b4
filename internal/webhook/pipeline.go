package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log/slog"

	"StorefrontPayments/internal/domain/checkout"
	"StorefrontPayments/pkg/metrics"
)

// Stage is the pipeline position a notification has reached. A notification
// only advances; any check failure terminates the pipeline at its current
// stage.
type Stage string

const (
	StageUnauthenticated   Stage = "unauthenticated"
	StageCredentialChecked Stage = "credential-checked"
	StageSignatureChecked  Stage = "signature-checked"
	StageParsed            Stage = "parsed"
	StageDispatched        Stage = "dispatched"
)

// Authenticator runs the credential, signature and parse stages over a raw
// notification body. It never touches order state; dispatch is a separate
// concern.
type Authenticator struct{}

func NewAuthenticator() *Authenticator {
	return &Authenticator{}
}

// Authenticate advances a raw body through the pipeline and returns the
// parsed notification. user and password come from the request's basic-auth
// header; site carries the expected credentials and the optional signing key.
//
// An empty site signing key disables the signature stage entirely. That is a
// per-site opt-out, not a fallback on bad input.
func (a *Authenticator) Authenticate(ctx context.Context, site checkout.Site, user, password string, body []byte) (Notification, error) {
	stage := StageUnauthenticated

	if !credentialsMatch(site, user, password) {
		slog.WarnContext(ctx, "webhook rejected: bad credentials",
			"site", site.ID, "stage", string(stage))
		metrics.WebhookNotificationsTotal.WithLabelValues("", "denied").Inc()
		return Notification{}, fmt.Errorf("%w: invalid credentials", ErrAccessDenied)
	}
	stage = StageCredentialChecked

	// Decoding is a prerequisite of the signature stage: the signature lives
	// on the first notification item. A body that does not decode or carries
	// no well-formed item never reaches order state.
	item, live, err := firstItem(body)
	if err != nil {
		slog.WarnContext(ctx, "webhook rejected: malformed payload",
			"site", site.ID, "stage", string(stage), slog.Any("error", err))
		metrics.WebhookNotificationsTotal.WithLabelValues("", "malformed").Inc()
		return Notification{}, err
	}

	if site.HMACKey != "" {
		if err := verifySignature(item, site.HMACKey); err != nil {
			slog.WarnContext(ctx, "webhook rejected: bad signature",
				"site", site.ID, "stage", string(stage),
				"psp_reference", item.PSPReference, slog.Any("error", err))
			metrics.WebhookNotificationsTotal.WithLabelValues(item.EventCode, "denied").Inc()
			return Notification{}, fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}
	stage = StageParsed
	slog.InfoContext(ctx, "webhook authenticated",
		"site", site.ID, "stage", string(stage),
		"event_code", item.EventCode, "psp_reference", item.PSPReference,
		"merchant_reference", item.MerchantReference, "success", item.IsSuccess())
	metrics.WebhookNotificationsTotal.WithLabelValues(item.EventCode, "accepted").Inc()

	return Notification{
		SiteID: site.ID,
		Live:   live,
		Item:   item,
		Raw:    json.RawMessage(body),
	}, nil
}

// credentialsMatch compares both fields in constant time regardless of which
// one differs.
func credentialsMatch(site checkout.Site, user, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(site.WebhookUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(site.WebhookPassword)) == 1
	return userOK && passOK
}

// firstItem extracts the first well-formed notification item from the body.
func firstItem(body []byte) (Item, bool, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Item{}, false, fmt.Errorf("%w: %v", ErrMalformedNotification, err)
	}

	for _, w := range env.NotificationItems {
		if w.NotificationRequestItem.wellFormed() {
			return w.NotificationRequestItem, env.Live == "true", nil
		}
	}
	return Item{}, false, fmt.Errorf("%w: no notification item", ErrMalformedNotification)
}
