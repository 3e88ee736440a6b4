// Package handlers holds the gin HTTP handlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"StorefrontPayments/internal/controller/apperror"
)

// errorResponse is the failure body shape shared by every endpoint.
type errorResponse struct {
	Error        bool   `json:"error"`
	ErrorMessage string `json:"errorMessage"`
}

func fail(c *gin.Context, err error) {
	c.JSON(apperror.Status(err), errorResponse{
		Error:        true,
		ErrorMessage: err.Error(),
	})
}

// checkoutScope identifies the basket a checkout call operates on. Every
// payment endpoint carries it.
type checkoutScope struct {
	SiteID     string `json:"site_id" binding:"required"`
	BasketID   string `json:"basket_id" binding:"required"`
	CustomerID string `json:"customer_id" binding:"required"`
}
