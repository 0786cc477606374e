// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":  "1.2.3",
		"APP_LOG_PATH": "/tmp/client.log",

		"ADAPTER_ADDRESS":         "https://api.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DATABASE_URI":    "session.db",
		"STORAGE_FILES_DOWNLOAD_DIR": "/home/user/Downloads",
		"WORKERS_REFRESH_INTERVAL":   "2m",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogPath)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/home/user/Downloads", cfg.Storage.Files.DownloadDir)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_APIURLFallback(t *testing.T) {
	setEnvVars(t, map[string]string{apiURLEnv: " https://crm.example.com/api "})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "https://crm.example.com/api", cfg.Adapter.HTTPAddress)
}

func TestParseEnv_AdapterAddressWinsOverAPIURL(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "https://api.example.com",
		apiURLEnv:         "https://crm.example.com/api",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range []string{
		"CONFIG", "APP_VERSION", "APP_LOG_PATH",
		"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
		"STORAGE_DB_DATABASE_URI", "STORAGE_FILES_DOWNLOAD_DIR",
		"WORKERS_REFRESH_INTERVAL", apiURLEnv,
	} {
		t.Setenv(k, "")
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
