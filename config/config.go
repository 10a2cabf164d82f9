// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

// Package config holds the library configuration for libsplitter-go.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default lease windows. Config-class records (contract configuration,
// commission policy) renew on a longer window than per-holder and
// per-listing data records.
const (
	DefaultConfigLease = 30 * 24 * time.Hour
	DefaultDataLease   = 7 * 24 * time.Hour
)

// Config holds the settings for a splitter record store.
type Config struct {
	// DataDir is the directory holding the bolt database.
	DataDir string

	// ConfigLease is the lease window for config-class records.
	ConfigLease time.Duration

	// DataLease is the lease window for data-class records.
	DataLease time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		DataDir:     defaultDataDir(),
		ConfigLease: DefaultConfigLease,
		DataLease:   DefaultDataLease,
	}
}

// defaultDataDir returns the per-user data directory for the splitter store.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".splitter"
	}
	return filepath.Join(home, ".splitter")
}
