package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"StorefrontPayments/internal/domain/checkout"
)

type GiftCardHandler struct {
	preparer     *checkout.ContextPreparer
	orchestrator *checkout.Orchestrator
}

func NewGiftCardHandler(preparer *checkout.ContextPreparer, orchestrator *checkout.Orchestrator) GiftCardHandler {
	return GiftCardHandler{preparer: preparer, orchestrator: orchestrator}
}

type balanceRequest struct {
	checkoutScope
	PaymentData json.RawMessage `json:"payment_data" binding:"required"`
	Amount      checkout.Amount `json:"amount" binding:"required"`
}

// Balance checks a gift card's remaining balance.
func (h *GiftCardHandler) Balance(c *gin.Context) {
	var req balanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: true, ErrorMessage: err.Error()})
		return
	}

	ckt, err := h.preparer.Prepare(c.Request.Context(), req.SiteID, req.BasketID, req.CustomerID)
	if err != nil {
		fail(c, err)
		return
	}

	resp, err := h.orchestrator.GiftCardBalance(c.Request.Context(), ckt, checkout.BalanceInput{
		PaymentData: req.PaymentData,
		Amount:      req.Amount,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resultCode": resp.ResultCode,
		"balance":    resp.Balance,
	})
}

type createPartialOrderRequest struct {
	checkoutScope
	OrderNo string `json:"order_no" binding:"required"`
}

// CreateOrder opens a processor order so the basket can be paid with
// multiple instruments.
func (h *GiftCardHandler) CreateOrder(c *gin.Context) {
	var req createPartialOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: true, ErrorMessage: err.Error()})
		return
	}

	ckt, err := h.preparer.Prepare(c.Request.Context(), req.SiteID, req.BasketID, req.CustomerID)
	if err != nil {
		fail(c, err)
		return
	}

	pending, err := h.orchestrator.CreatePartialOrder(c.Request.Context(), ckt, req.OrderNo)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pspReference":    pending.PSPReference,
		"orderData":       pending.OrderData,
		"amount":          pending.Amount,
		"remainingAmount": pending.RemainingAmount,
	})
}

type cancelPartialOrderRequest struct {
	checkoutScope
}

// CancelOrder cancels a pending processor order and releases every
// reservation on the basket.
func (h *GiftCardHandler) CancelOrder(c *gin.Context) {
	var req cancelPartialOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: true, ErrorMessage: err.Error()})
		return
	}

	ckt, err := h.preparer.Prepare(c.Request.Context(), req.SiteID, req.BasketID, req.CustomerID)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.orchestrator.CancelPartialOrder(c.Request.Context(), ckt); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFinal": true, "isSuccessful": true})
}
