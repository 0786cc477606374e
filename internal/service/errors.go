package service

import "errors"

var (
	// ErrSessionExpired means the backend rejected the session cookie; the
	// user has to log in again.
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidCredentials is returned by Login when the backend rejects the
	// email and password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAlreadyExists is returned when the backend reports a conflict, e.g.
	// a header name or an email that is already taken.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound is returned when the requested record no longer exists.
	ErrNotFound = errors.New("not found")

	// ErrInvalidItemLink is returned when an item link cannot be decoded.
	ErrInvalidItemLink = errors.New("invalid item link")

	// ErrNoStoredSession is returned by RestoreSession when nothing was
	// saved for the backend or the saved session is no longer valid.
	ErrNoStoredSession = errors.New("no stored session")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
