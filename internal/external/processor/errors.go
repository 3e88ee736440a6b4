package processor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrGatewayRejected is returned for 4xx responses: the request itself is
	// wrong and a retry with the same payload cannot succeed.
	ErrGatewayRejected = errors.New("gateway rejected request")

	// ErrGatewayUnavailable is returned for transport failures and 5xx
	// responses.
	ErrGatewayUnavailable = errors.New("gateway unavailable")
)

// gatewayError is the gateway's error body shape.
type gatewayError struct {
	Status    int    `json:"status"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func statusError(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	msg := string(body)
	var ge gatewayError
	if err := json.Unmarshal(body, &ge); err == nil && ge.Message != "" {
		msg = ge.Message
	}

	if statusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d: %s", ErrGatewayUnavailable, statusCode, msg)
	}
	return fmt.Errorf("%w: status %d: %s", ErrGatewayRejected, statusCode, msg)
}
