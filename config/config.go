// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/bitfsorg/blockexplorer-go/network"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. EXPLORER_NETWORK.
const EnvPrefix = "EXPLORER"

// Configuration keys. Environment variables are EnvPrefix + "_" + upper-cased key.
const (
	KeyNetwork              = "network"
	KeyURL                  = "url"
	KeyTimeout              = "timeout"
	KeyMaxConcurrentFetches = "max_concurrent_fetches"
	KeyCacheFile            = "cache_file"
	KeyLogLevel             = "log_level"
)

// Config holds the settings of an explorer client.
type Config struct {
	// Network is one of "mainnet", "testnet", "signet" or "regtest".
	Network string

	// ExplorerURL overrides the default API root of Network. Required for regtest.
	ExplorerURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// MaxConcurrentFetches caps parallel transaction fetches per UTXO lookup.
	MaxConcurrentFetches int

	// CacheFile enables the confirmed-transaction cache when non-empty.
	CacheFile string

	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Network:              string(network.MainNet),
		Timeout:              30 * time.Second,
		MaxConcurrentFetches: 8,
		LogLevel:             "info",
	}
}

// Load reads configuration like Read and validates the result.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read reads configuration with the precedence environment > file > defaults.
// An empty path skips the file. The result is not validated, so callers can
// apply further overrides first.
func Read(path string) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault(KeyNetwork, def.Network)
	v.SetDefault(KeyURL, def.ExplorerURL)
	v.SetDefault(KeyTimeout, def.Timeout)
	v.SetDefault(KeyMaxConcurrentFetches, def.MaxConcurrentFetches)
	v.SetDefault(KeyCacheFile, def.CacheFile)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfigFile, err)
		}
	}

	cfg := Config{
		Network:              strings.ToLower(v.GetString(KeyNetwork)),
		ExplorerURL:          v.GetString(KeyURL),
		Timeout:              v.GetDuration(KeyTimeout),
		MaxConcurrentFetches: v.GetInt(KeyMaxConcurrentFetches),
		CacheFile:            v.GetString(KeyCacheFile),
		LogLevel:             strings.ToLower(v.GetString(KeyLogLevel)),
	}
	return cfg, nil
}

// Endpoints returns the endpoint overrides implied by cfg, suitable for
// network.NewEndpointResolver.
func (c Config) Endpoints() map[network.NetworkID]string {
	if c.ExplorerURL == "" {
		return nil
	}
	return map[network.NetworkID]string{network.NetworkID(c.Network): c.ExplorerURL}
}
