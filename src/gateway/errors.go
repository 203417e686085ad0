package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// The gateway error taxonomy. Handlers branch on the concrete type:
// AuthError on the session-verification path forces a logout, every
// other gateway failure is surfaced as a notice and the session is
// left alone.
//
// AuthError — the backend rejected the credential (401).
// ValidationError — the backend rejected the payload (400/409/422).
// FetchError — transport failure or any other non-2xx response.

// AuthError indicates the login or session credential was rejected.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// ValidationError indicates the backend rejected the request payload,
// e.g. a duplicate or malformed field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// FetchError indicates a network failure or an unclassified non-2xx
// response.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string { return e.Message }

func (e *FetchError) Unwrap() error { return e.Err }

// apiError is the raw upstream failure before classification. It
// carries the structured message from the backend error body when one
// was present.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream error (status %d)", e.Status)
}

// classify converts a request failure into the error taxonomy. The
// upstream message wins when present, otherwise the per-operation
// fallback is used verbatim.
func classify(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var api *apiError
	if !errors.As(err, &api) {
		return &FetchError{Message: fallback, Err: err}
	}
	msg := api.Message
	if msg == "" {
		msg = fallback
	}
	switch api.Status {
	case http.StatusUnauthorized:
		return &AuthError{Message: msg}
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return &ValidationError{Message: msg}
	default:
		return &FetchError{Message: msg, Err: err}
	}
}
