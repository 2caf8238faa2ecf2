// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import "errors"

var (
	// ErrInvalidNetwork indicates the network name is not recognized.
	ErrInvalidNetwork = errors.New("config: invalid network (must be \"mainnet\", \"testnet\", \"signet\", or \"regtest\")")

	// ErrInvalidExplorerURL indicates the explorer URL is malformed.
	ErrInvalidExplorerURL = errors.New("config: invalid explorer url")

	// ErrMissingExplorerURL indicates the network has no default explorer and none was set.
	ErrMissingExplorerURL = errors.New("config: explorer url required")

	// ErrInvalidTimeout indicates a non-positive request timeout.
	ErrInvalidTimeout = errors.New("config: timeout must be positive")

	// ErrInvalidConcurrency indicates max_concurrent_fetches is below one.
	ErrInvalidConcurrency = errors.New("config: max_concurrent_fetches must be at least 1")

	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidConfigFile indicates the configuration file could not be parsed.
	ErrInvalidConfigFile = errors.New("config: invalid configuration file")
)
