// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables through the `env` and
// `envPrefix` tags of [StructuredConfig]. CORS origins are trimmed, and
// blank entries ("a, ,b") are dropped.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Server.CORSAllowedOrigins = trimOrigins(cfg.Server.CORSAllowedOrigins)
	return nil
}

func trimOrigins(origins []string) []string {
	if origins == nil {
		return nil
	}

	trimmed := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			trimmed = append(trimmed, origin)
		}
	}
	return trimmed
}
