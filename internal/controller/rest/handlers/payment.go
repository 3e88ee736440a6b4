package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"StorefrontPayments/internal/domain/checkout"
)

type PaymentHandler struct {
	preparer     *checkout.ContextPreparer
	orchestrator *checkout.Orchestrator
}

func NewPaymentHandler(preparer *checkout.ContextPreparer, orchestrator *checkout.Orchestrator) PaymentHandler {
	return PaymentHandler{preparer: preparer, orchestrator: orchestrator}
}

type authorizeRequest struct {
	checkoutScope
	OrderNo           string                 `json:"order_no" binding:"required"`
	Amount            checkout.Amount        `json:"amount" binding:"required"`
	PaymentMethodType string                 `json:"payment_method_type"`
	PaymentData       json.RawMessage        `json:"payment_data" binding:"required"`
	ReturnURL         string                 `json:"return_url"`
	Express           bool                   `json:"express"`
	ShopperData       *checkout.ShopperData  `json:"shopper_data"`
}

// Authorize runs the synchronous payment flow.
func (h *PaymentHandler) Authorize(c *gin.Context) {
	var req authorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: true, ErrorMessage: err.Error()})
		return
	}

	ckt, err := h.preparer.Prepare(c.Request.Context(), req.SiteID, req.BasketID, req.CustomerID)
	if err != nil {
		fail(c, err)
		return
	}

	outcome, err := h.orchestrator.Authorize(c.Request.Context(), ckt, checkout.AuthorizeInput{
		OrderNo:           req.OrderNo,
		Amount:            req.Amount,
		PaymentMethodType: req.PaymentMethodType,
		PaymentData:       req.PaymentData,
		ReturnURL:         req.ReturnURL,
		Express:           req.Express,
		ShopperData:       req.ShopperData,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

type detailsRequest struct {
	checkoutScope
	OrderNo     string          `json:"order_no" binding:"required"`
	Details     json.RawMessage `json:"details" binding:"required"`
	PaymentData string          `json:"payment_data"`
}

// Details continues a payment after an out-of-band shopper action.
func (h *PaymentHandler) Details(c *gin.Context) {
	var req detailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: true, ErrorMessage: err.Error()})
		return
	}

	ckt, err := h.preparer.Prepare(c.Request.Context(), req.SiteID, req.BasketID, req.CustomerID)
	if err != nil {
		fail(c, err)
		return
	}

	outcome, err := h.orchestrator.SubmitDetails(c.Request.Context(), ckt, checkout.DetailsInput{
		OrderNo:     req.OrderNo,
		Details:     req.Details,
		PaymentData: req.PaymentData,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

type cancelPaymentRequest struct {
	checkoutScope
}

// Cancel rolls back every payment reservation on the basket.
func (h *PaymentHandler) Cancel(c *gin.Context) {
	h.cancel(c, false)
}

// CancelExpress rolls back an express-wallet payment; it tolerates baskets
// that never got a payment instrument attached.
func (h *PaymentHandler) CancelExpress(c *gin.Context) {
	h.cancel(c, true)
}

func (h *PaymentHandler) cancel(c *gin.Context, express bool) {
	var req cancelPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: true, ErrorMessage: err.Error()})
		return
	}

	ckt, err := h.preparer.Prepare(c.Request.Context(), req.SiteID, req.BasketID, req.CustomerID)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.orchestrator.CancelPayment(c.Request.Context(), ckt, express); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFinal": true, "isSuccessful": true})
}
