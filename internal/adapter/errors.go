package adapter

import (
	"errors"
	"strings"
)

var (
	ErrNetwork             = errors.New("network failure")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// HTTPError is a non-2xx backend response. Message holds the text the server
// put in the JSON error body, or the raw body when it was not JSON.
type HTTPError struct {
	Status  int
	Message string

	kind error
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.Message
}

// Unwrap exposes the status sentinel to [errors.Is].
func (e *HTTPError) Unwrap() error {
	return e.kind
}

// MessageOf returns the server-provided message carried by err, or fallback
// when err is not an [HTTPError] or the server sent no text.
func MessageOf(err error, fallback string) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && strings.TrimSpace(httpErr.Message) != "" {
		return httpErr.Message
	}
	return fallback
}

// NewHTTPError builds the error returned for a non-2xx status carrying
// message. It lets other layers fake backend failures.
func NewHTTPError(status int, message string) error {
	httpErr := mapStatusError(status, nil).(*HTTPError)
	httpErr.Message = message
	return httpErr
}
