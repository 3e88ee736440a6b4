// Package rest wires the HTTP routes to their handlers.
package rest

import (
	"github.com/gin-gonic/gin"

	"StorefrontPayments/internal/controller/rest/handlers"
)

type Router struct {
	payment  handlers.PaymentHandler
	giftCard handlers.GiftCardHandler
	order    handlers.OrderHandler
	webhook  handlers.WebhookHandler
}

func NewRouter(payment handlers.PaymentHandler, giftCard handlers.GiftCardHandler, order handlers.OrderHandler, webhook handlers.WebhookHandler) *Router {
	return &Router{
		payment:  payment,
		giftCard: giftCard,
		order:    order,
		webhook:  webhook,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	v1 := engine.Group("/api/v1")
	v1.POST("/payments", r.payment.Authorize)
	v1.POST("/payments/details", r.payment.Details)
	v1.POST("/payments/cancel", r.payment.Cancel)
	v1.POST("/payments/cancel/express", r.payment.CancelExpress)

	v1.POST("/giftcards/balance", r.giftCard.Balance)
	v1.POST("/giftcards/orders", r.giftCard.CreateOrder)
	v1.POST("/giftcards/orders/cancel", r.giftCard.CancelOrder)

	v1.POST("/orders/cancel", r.order.Cancel)

	engine.POST("/webhooks/:site/notifications", r.webhook.Notifications)
}
