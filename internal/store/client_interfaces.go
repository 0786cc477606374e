package store

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// SessionRepository persists the backend session of the terminal client so
// that a restart can pick it up again. Everything is keyed by the backend
// base URL, so one database can serve several backends.
type SessionRepository interface {
	// SaveCookies replaces the stored cookies of baseURL.
	SaveCookies(ctx context.Context, baseURL string, cookies []*http.Cookie) error

	// LoadCookies returns the stored cookies of baseURL, or
	// ErrLocalSessionNotFound when there are none.
	LoadCookies(ctx context.Context, baseURL string) ([]*http.Cookie, error)

	// Clear forgets the stored cookies of baseURL.
	Clear(ctx context.Context, baseURL string) error

	// SaveLastEmail remembers the email of the last successful login.
	SaveLastEmail(ctx context.Context, baseURL, email string) error

	// LastEmail returns the remembered email, or ErrLocalSessionNotFound.
	LastEmail(ctx context.Context, baseURL string) (string, error)
}
