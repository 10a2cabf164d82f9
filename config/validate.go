// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.ConfigLease <= 0 || cfg.DataLease <= 0 {
		return ErrInvalidLease
	}

	if cfg.DataLease > cfg.ConfigLease {
		return ErrLeaseOrder
	}

	return nil
}
