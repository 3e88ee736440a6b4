package commerce

import (
	"fmt"
	"net/http"

	"StorefrontPayments/internal/domain/checkout"
)

// errorMapper translates a backend status code into a domain sentinel. The
// not-found sentinel depends on which resource the call addressed.
type errorMapper func(statusCode int, body []byte) error

var (
	basketErrors   = mapperFor(checkout.ErrBasketNotFound)
	customerErrors = mapperFor(checkout.ErrCustomerNotFound)
	orderErrors    = mapperFor(checkout.ErrOrderNotFound)
)

func mapperFor(notFound error) errorMapper {
	return func(statusCode int, body []byte) error {
		switch {
		case statusCode >= 200 && statusCode < 300:
			return nil
		case statusCode == http.StatusBadRequest:
			return fmt.Errorf("%w: %s", checkout.ErrValidation, string(body))
		case statusCode == http.StatusNotFound:
			return notFound
		case statusCode == http.StatusConflict:
			return checkout.ErrOrderAlreadyExists
		default:
			return fmt.Errorf("commerce api: status %d: %s", statusCode, string(body))
		}
	}
}
