// Package apperror maps domain errors to HTTP status codes.
package apperror

import (
	"errors"
	"net/http"

	"StorefrontPayments/internal/domain/checkout"
	"StorefrontPayments/internal/webhook"
)

// Status resolves the HTTP status for a domain error. Anything unrecognized
// is an internal error; in particular a missing checkout context is a wiring
// bug, not a client mistake.
func Status(err error) int {
	switch {
	case errors.Is(err, checkout.ErrValidation),
		errors.Is(err, checkout.ErrPaymentNotSuccessful),
		errors.Is(err, webhook.ErrMalformedNotification):
		return http.StatusBadRequest

	case errors.Is(err, checkout.ErrBasketOwnership),
		errors.Is(err, webhook.ErrAccessDenied):
		return http.StatusUnauthorized

	case errors.Is(err, checkout.ErrBasketNotFound),
		errors.Is(err, checkout.ErrCustomerNotFound),
		errors.Is(err, checkout.ErrOrderNotFound),
		errors.Is(err, checkout.ErrSiteNotFound):
		return http.StatusNotFound

	case errors.Is(err, checkout.ErrCurrencyMismatch),
		errors.Is(err, checkout.ErrAmountMismatch),
		errors.Is(err, checkout.ErrOverCollection),
		errors.Is(err, checkout.ErrBasketChanged),
		errors.Is(err, checkout.ErrOrderAlreadyExists):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
