package utils

import "github.com/google/uuid"

// NewRequestID returns a fresh identifier for the X-Request-ID header.
// It is a v7 UUID, falling back to v4 if the clock source fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
