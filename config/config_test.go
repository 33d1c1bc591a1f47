// Copyright (c) 2025 The SkillMarket developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
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
		{"LedgerFile", cfg.LedgerFile, "market.db"},
		{"DNSUpstream", cfg.DNSUpstream, "8.8.8.8:53"},
		{"LogLevel", cfg.LogLevel, "info"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}

	// DataDir should end with .skillmarket (we don't assert the full path
	// since it depends on the home directory).
	if cfg.DataDir == "" {
		t.Error("DataDir should not be empty")
	}
	if !strings.HasSuffix(cfg.DataDir, ".skillmarket") {
		t.Errorf("DataDir = %q, want .skillmarket suffix", cfg.DataDir)
	}

	if err := ValidateConfig(cfg); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLedgerPath(t *testing.T) {
	cfg := Config{DataDir: "/data", LedgerFile: "market.db"}
	if got := cfg.LedgerPath(); got != filepath.Join("/data", "market.db") {
		t.Errorf("LedgerPath() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// SaveConfig / LoadConfig round-trip tests
// ---------------------------------------------------------------------------

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")

	original := Config{
		DataDir:     "/tmp/test-skillmarket",
		LedgerFile:  "ledger.db",
		Gateways:    []string{"https://ipfs.io", "https://dweb.link"},
		DNSUpstream: "1.1.1.1:53",
		LogLevel:    "debug",
	}

	if err := SaveConfig(path, original); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if loaded.DataDir != original.DataDir {
		t.Errorf("DataDir = %q, want %q", loaded.DataDir, original.DataDir)
	}
	if loaded.LedgerFile != original.LedgerFile {
		t.Errorf("LedgerFile = %q, want %q", loaded.LedgerFile, original.LedgerFile)
	}
	if len(loaded.Gateways) != 2 || loaded.Gateways[1] != "https://dweb.link" {
		t.Errorf("Gateways = %v", loaded.Gateways)
	}
	if loaded.DNSUpstream != original.DNSUpstream {
		t.Errorf("DNSUpstream = %q, want %q", loaded.DNSUpstream, original.DNSUpstream)
	}
	if loaded.LogLevel != original.LogLevel {
		t.Errorf("LogLevel = %q, want %q", loaded.LogLevel, original.LogLevel)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_CommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	content := "# skill market config\n\nloglevel=warn\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoadConfig_BadLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no equals", "datadir /tmp\n"},
		{"unknown key", "portnum=8080\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config")
			if err := os.WriteFile(path, []byte(tc.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfigLine) {
				t.Errorf("err = %v, want ErrInvalidConfigLine", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// ValidateConfig tests
// ---------------------------------------------------------------------------

func TestValidateConfig(t *testing.T) {
	base := func() Config {
		cfg := DefaultConfig()
		cfg.DataDir = "/tmp/test-skillmarket"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"empty datadir", func(c *Config) { c.DataDir = "" }, ErrEmptyDataDir},
		{"empty ledger file", func(c *Config) { c.LedgerFile = "" }, ErrEmptyLedgerFile},
		{"bad gateway scheme", func(c *Config) { c.Gateways = []string{"ftp://ipfs.io"} }, ErrInvalidGateway},
		{"gateway missing host", func(c *Config) { c.Gateways = []string{"https://"} }, ErrInvalidGateway},
		{"bad dns upstream", func(c *Config) { c.DNSUpstream = "8.8.8.8" }, ErrInvalidDNSUpstream},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, ErrInvalidLogLevel},
		{"empty dns upstream ok", func(c *Config) { c.DNSUpstream = "" }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			err := ValidateConfig(cfg)
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
