// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/salestrak-pa/internal/adapter"
	"github.com/MKhiriev/salestrak-pa/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The adapter error stays in the chain, so
// [adapter.MessageOf] still finds the text the server sent.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)

	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}

// UserMessage returns the text to show for err: the first field message of a
// validation failure, else the server's message, else fallback.
func UserMessage(err error, fallback string) string {
	return validators.MessageOf(err, adapter.MessageOf(err, fallback))
}
