// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// notAvailable is shown for build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo is the build metadata of the salestrak client, injected with
// -ldflags at release time and shown by the version overlay and at startup.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// BuildRow is one labelled line of the version report.
type BuildRow struct {
	Label string
	Value string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

// BuildVersion returns the injected version, or "" when the binary was built
// without one.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// WithVersion returns a copy reporting version instead of the injected one.
// An empty version keeps the injected value.
func (a AppBuildInfo) WithVersion(version string) AppBuildInfo {
	if v := strings.TrimSpace(version); v != "" {
		a.buildVersion = v
	}
	return a
}

// Rows lists version, date and commit for display. Missing values read "N/A".
func (a AppBuildInfo) Rows() []BuildRow {
	return []BuildRow{
		{Label: "Version", Value: orNotAvailable(a.buildVersion)},
		{Label: "Date", Value: orNotAvailable(a.buildDate)},
		{Label: "Commit", Value: orNotAvailable(a.buildCommit)},
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
