// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitfsorg/blockexplorer-go/network"
)

// ---------------------------------------------------------------------------
// DefaultConfig tests
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"Network", cfg.Network, "mainnet"},
		{"ExplorerURL", cfg.ExplorerURL, ""},
		{"Timeout", cfg.Timeout, 30 * time.Second},
		{"MaxConcurrentFetches", cfg.MaxConcurrentFetches, 8},
		{"CacheFile", cfg.CacheFile, ""},
		{"LogLevel", cfg.LogLevel, "info"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}

	if err := ValidateConfig(cfg); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Load tests
// ---------------------------------------------------------------------------

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "explorer.yaml", `
network: regtest
url: http://localhost:3002
timeout: 5s
max_concurrent_fetches: 2
cache_file: /tmp/explorer/txcache.db
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		Network:              "regtest",
		ExplorerURL:          "http://localhost:3002",
		Timeout:              5 * time.Second,
		MaxConcurrentFetches: 2,
		CacheFile:            "/tmp/explorer/txcache.db",
		LogLevel:             "debug",
	}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "explorer.yaml", "network: mainnet\nlog_level: warn\n")
	t.Setenv("EXPLORER_NETWORK", "testnet")
	t.Setenv("EXPLORER_TIMEOUT", "12s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Network != "testnet" {
		t.Errorf("Network = %q, want testnet", cfg.Network)
	}
	if cfg.Timeout != 12*time.Second {
		t.Errorf("Timeout = %v, want 12s", cfg.Timeout)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn (from file)", cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("got %v, want ErrConfigNotFound", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "explorer.yaml", "network: [unterminated\n")
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfigFile) {
		t.Errorf("got %v, want ErrInvalidConfigFile", err)
	}
}

func TestLoadValidates(t *testing.T) {
	path := writeFile(t, "explorer.yaml", "network: regtest\n")
	_, err := Load(path)
	if !errors.Is(err, ErrMissingExplorerURL) {
		t.Errorf("got %v, want ErrMissingExplorerURL", err)
	}
}

// ---------------------------------------------------------------------------
// ValidateConfig tests
// ---------------------------------------------------------------------------

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"valid", func(c *Config) {}, nil},
		{"signet", func(c *Config) { c.Network = "signet" }, nil},
		{"unknown network", func(c *Config) { c.Network = "dogecoin" }, ErrInvalidNetwork},
		{"regtest without url", func(c *Config) { c.Network = "regtest" }, ErrMissingExplorerURL},
		{"regtest with url", func(c *Config) { c.Network = "regtest"; c.ExplorerURL = "http://127.0.0.1:3002" }, nil},
		{"bad scheme", func(c *Config) { c.ExplorerURL = "ftp://example.com" }, ErrInvalidExplorerURL},
		{"no host", func(c *Config) { c.ExplorerURL = "https://" }, ErrInvalidExplorerURL},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, ErrInvalidTimeout},
		{"zero concurrency", func(c *Config) { c.MaxConcurrentFetches = 0 }, ErrInvalidConcurrency},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, ErrInvalidLogLevel},
		{"upper log level", func(c *Config) { c.LogLevel = "DEBUG" }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := ValidateConfig(cfg)
			if tc.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestEndpoints(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Endpoints(); got != nil {
		t.Errorf("no override expected, got %v", got)
	}

	cfg.Network = "regtest"
	cfg.ExplorerURL = "http://localhost:3002"
	got := cfg.Endpoints()
	if got[network.RegTest] != "http://localhost:3002" || len(got) != 1 {
		t.Errorf("got %v", got)
	}
}
