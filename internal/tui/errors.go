// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/salestrak-pa/internal/adapter"
	"github.com/MKhiriev/salestrak-pa/internal/service"
)

const msgServerUnavailable = "No network or the server is unavailable"

// errorText picks the text shown for a failed operation: the validation or
// server message when there is one, a network hint, or fallback.
func errorText(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if adapter.IsNetworkError(err) || isNetworkText(err) {
		return msgServerUnavailable
	}
	return service.UserMessage(err, fallback)
}

func isNetworkText(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}

func isSessionExpired(err error) bool {
	return errors.Is(err, service.ErrSessionExpired)
}
