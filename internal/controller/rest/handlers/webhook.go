package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"StorefrontPayments/internal/domain/checkout"
	"StorefrontPayments/internal/webhook"
)

type WebhookHandler struct {
	sites         checkout.SiteResolver
	authenticator *webhook.Authenticator
	processor     webhook.Processor
}

func NewWebhookHandler(sites checkout.SiteResolver, authenticator *webhook.Authenticator, processor webhook.Processor) WebhookHandler {
	return WebhookHandler{
		sites:         sites,
		authenticator: authenticator,
		processor:     processor,
	}
}

// Notifications receives processor webhook notifications. An unknown site
// answers 401, same as bad credentials, so probing site IDs learns nothing.
func (h *WebhookHandler) Notifications(c *gin.Context) {
	site, err := h.sites.Site(c.Param("site"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: true, ErrorMessage: "access denied"})
		return
	}

	user, password, _ := c.Request.BasicAuth()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: true, ErrorMessage: "unreadable body"})
		return
	}

	n, err := h.authenticator.Authenticate(c.Request.Context(), site, user, password, body)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.processor.ProcessNotification(c.Request.Context(), n); err != nil {
		fail(c, err)
		return
	}

	// The processor keeps redelivering until it sees this exact body.
	c.String(http.StatusOK, "[accepted]")
}
