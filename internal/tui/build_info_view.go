// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/salestrak-pa/models"
)

// renderBuildInfoWindow shows the About page. version is the label reported
// by the app info service and takes the place of the injected build version.
func renderBuildInfoWindow(version string, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: SalesTrak PA")
	for _, row := range info.WithVersion(version).Rows() {
		fmt.Fprintf(&b, "\n%s: %s", row.Label, row.Value)
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}
