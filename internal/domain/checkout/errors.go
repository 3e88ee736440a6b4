package checkout

import "errors"

var (
	// Validation (400)
	ErrValidation = errors.New("invalid payment request")

	// Ownership / authentication (401)
	ErrBasketOwnership = errors.New("basket does not belong to customer")

	// Not found (404)
	ErrBasketNotFound   = errors.New("basket not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrSiteNotFound     = errors.New("site not configured")

	// Conflict (409)
	ErrCurrencyMismatch   = errors.New("currency mismatch")
	ErrAmountMismatch     = errors.New("amounts don't match")
	ErrOverCollection     = errors.New("payment exceeds basket total")
	ErrBasketChanged      = errors.New("basket changed during payment flow")
	ErrOrderAlreadyExists = errors.New("order already exists")

	// Upstream payment failure (400-class)
	ErrPaymentNotSuccessful = errors.New("payment not successful")

	// Programmer error (500): a compensation entry point was invoked without
	// a bound checkout context.
	ErrContextNotFound = errors.New("checkout context not found")
)
