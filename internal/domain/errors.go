package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the search domain.
var (
	// ErrInvalidRequest indicates a search request that failed validation.
	ErrInvalidRequest = errors.New("invalid search request")

	// ErrMixedTripTypes indicates a cheapest-dates batch containing both
	// one-way and round-trip date pairs, which the calendar endpoint
	// cannot express in a single query.
	ErrMixedTripTypes = errors.New("cannot mix one-way and round-trip dates in one cheapest-dates search")

	// ErrMissingCredentials indicates that no client id/secret pair was
	// supplied via flags or environment.
	ErrMissingCredentials = errors.New("client credentials are required")
)

// APIError describes a non-2xx response from the flight API.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int

	// Code is the vendor-specific error code, when present.
	Code int

	// Title and Detail are the vendor's error description fields.
	Title  string
	Detail string

	// Retryable marks errors worth retrying (rate limits, server errors).
	Retryable bool
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("amadeus api error (status=%d", e.Status)
	if e.Code != 0 {
		msg += fmt.Sprintf(", code=%d", e.Code)
	}
	msg += ")"
	if e.Title != "" {
		msg += ": " + e.Title
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// NewAPIError builds an APIError from a response status and the vendor's
// error fields. Rate-limit and server-side errors are marked retryable;
// all other client errors are permanent.
func NewAPIError(status, code int, title, detail string) *APIError {
	return &APIError{
		Status:    status,
		Code:      code,
		Title:     title,
		Detail:    detail,
		Retryable: status == http.StatusTooManyRequests || status >= http.StatusInternalServerError,
	}
}

// IsRetryable reports whether err is an APIError worth retrying.
// Non-API errors (transport failures) are considered retryable.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable
	}
	return true
}
