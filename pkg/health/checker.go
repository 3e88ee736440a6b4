// Package health aggregates readiness checks for the service's backing
// dependencies and exposes them over HTTP.
package health

import "context"

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Checker reports the availability of a single dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}

// Result carries the verdict of one check.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}
