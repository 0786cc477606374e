// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// apiURLEnv is the backend address variable shared with the web front end.
// It is read only when ADAPTER_ADDRESS is not set.
const apiURLEnv = "API_URL"

// parseEnv fills cfg from the environment using the `env` and `envPrefix`
// tags of [StructuredConfig]. Every variable that fails to parse is reported.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = strings.TrimSpace(os.Getenv(apiURLEnv))
	}

	return nil
}
