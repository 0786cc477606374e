// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/salestrak-pa/models"
)

// Client is a runnable salestrak client process.
type Client interface {
	// Run blocks until the user quits or the process is interrupted.
	Run() error
}

// UI is the screen layer driven by [App]. Run starts on the dashboard when
// user is non-nil and on the start menu otherwise. NotifyDashboard may be
// called from any goroutine.
type UI interface {
	Run(ctx context.Context, user *models.User) error
	NotifyDashboard(data models.DashboardData)
}
