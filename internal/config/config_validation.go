// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] has everything the
// server needs at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Files.UploadDir == "" && !cfg.Storage.S3.Enabled() {
		return fmt.Errorf("%w: neither upload dir nor S3 bucket is set", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.App.SaltRounds < bcrypt.MinCost || cfg.App.SaltRounds > bcrypt.MaxCost {
		return fmt.Errorf("%w: salt rounds must be in range %d..%d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	return nil
}
