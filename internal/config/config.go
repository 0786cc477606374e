// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// salestrak client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version label and
	// the log file location.
	App App `envPrefix:"APP_"`

	// Adapter holds the REST backend address and request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local session database and download settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is an optional version label shown in the version overlay.
	Version string `env:"VERSION"`

	// LogPath is the file the client logger appends to.
	LogPath string `env:"LOG_PATH"`
}

// Adapter holds the settings of the REST backend client.
type Adapter struct {
	// HTTPAddress is the backend base URL, e.g. "https://api.example.com".
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero means no timeout.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the client's local storage.
type Storage struct {
	// DB holds the session database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the local file-system settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds the local SQLite connection string.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system paths used by the client.
type Files struct {
	// DownloadDir is where downloaded documents are written.
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// RefreshInterval is how often the dashboard is reloaded in the
	// background. Zero disables the refresh worker.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads the configuration from all sources and merges
// them: environment variables first, then flags, then the JSON file. Later
// sources override non-zero fields of earlier ones.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
