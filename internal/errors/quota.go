// Package errors holds typed error values shared across the pipeline.
package errors

import "errors"

// QuotaError signals an HTTP 429 from the API: the request quota for this
// run is spent, so the fetch client must not retry.
type QuotaError struct {
	Endpoint string
}

func (e *QuotaError) Error() string {
	return "quota exceeded for " + e.Endpoint
}

// NewQuotaError creates a QuotaError for the given endpoint.
func NewQuotaError(endpoint string) *QuotaError {
	return &QuotaError{Endpoint: endpoint}
}

// IsQuotaError reports whether err is a QuotaError (even when wrapped).
func IsQuotaError(err error) bool {
	var qe *QuotaError
	return errors.As(err, &qe)
}
