// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import "errors"

var (
	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrInvalidLease indicates a lease window is zero or negative.
	ErrInvalidLease = errors.New("config: lease windows must be positive")

	// ErrLeaseOrder indicates the data lease exceeds the config lease.
	ErrLeaseOrder = errors.New("config: data lease must not exceed config lease")
)
