package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"StorefrontPayments/internal/domain/checkout"
)

type OrderHandler struct {
	preparer     *checkout.ContextPreparer
	orchestrator *checkout.Orchestrator
}

func NewOrderHandler(preparer *checkout.ContextPreparer, orchestrator *checkout.Orchestrator) OrderHandler {
	return OrderHandler{preparer: preparer, orchestrator: orchestrator}
}

type cancelOrderRequest struct {
	checkoutScope
	OrderNo string `json:"order_no" binding:"required"`
}

// Cancel fails the backend order, reopens its basket and rolls back the
// payment reservations.
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req cancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: true, ErrorMessage: err.Error()})
		return
	}

	ckt, err := h.preparer.Prepare(c.Request.Context(), req.SiteID, req.BasketID, req.CustomerID)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.orchestrator.CancelOrder(c.Request.Context(), ckt, req.OrderNo); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFinal": true, "isSuccessful": true})
}
