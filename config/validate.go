// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bitfsorg/blockexplorer-go/network"
)

// validLogLevels lists the accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	id, err := network.ParseNetwork(cfg.Network)
	if err != nil {
		return ErrInvalidNetwork
	}

	if cfg.ExplorerURL != "" {
		if err := validateURL(cfg.ExplorerURL); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidExplorerURL, err)
		}
	} else if _, ok := network.DefaultEndpoints[id]; !ok {
		return fmt.Errorf("%w: %s", ErrMissingExplorerURL, id)
	}

	if cfg.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if cfg.MaxConcurrentFetches < 1 {
		return ErrInvalidConcurrency
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	return nil
}

// validateURL checks that raw is an absolute http(s) URL.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
