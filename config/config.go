// Copyright (c) 2025 The SkillMarket developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

// Package config holds the configuration for applications embedding the
// skill-market ledger: where the database lives, which content gateways to
// try, and which resolver answers dnslink queries.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Config holds all configurable values.
type Config struct {
	// DataDir is the root directory for persistent state.
	DataDir string

	// LedgerFile is the ledger database filename inside DataDir.
	LedgerFile string

	// Gateways are content gateway base URLs tried in order.
	Gateways []string

	// DNSUpstream is the recursive resolver used for DNSSEC dnslink
	// queries (host:port).
	DNSUpstream string

	// LogLevel is the log verbosity for embedding applications:
	// "debug", "info", "warn", or "error".
	LogLevel string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:     filepath.Join(home, ".skillmarket"),
		LedgerFile:  "market.db",
		Gateways:    []string{"https://ipfs.io"},
		DNSUpstream: "8.8.8.8:53",
		LogLevel:    "info",
	}
}

// LedgerPath returns the full path of the ledger database.
func (c Config) LedgerPath() string {
	return filepath.Join(c.DataDir, c.LedgerFile)
}

// LoadConfig reads a key=value configuration file and applies it on top of
// the defaults. Blank lines and lines starting with '#' are ignored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return cfg, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, i+1, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "datadir":
			cfg.DataDir = value
		case "ledgerfile":
			cfg.LedgerFile = value
		case "gateways":
			cfg.Gateways = splitList(value)
		case "dnsupstream":
			cfg.DNSUpstream = value
		case "loglevel":
			cfg.LogLevel = value
		default:
			return cfg, fmt.Errorf("%w: line %d: unknown key %q", ErrInvalidConfigLine, i+1, key)
		}
	}

	return cfg, nil
}

// SaveConfig writes the configuration as a key=value file with keys in
// stable order. The parent directory is created if it does not exist.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	entries := map[string]string{
		"datadir":     cfg.DataDir,
		"ledgerfile":  cfg.LedgerFile,
		"gateways":    strings.Join(cfg.Gateways, ","),
		"dnsupstream": cfg.DNSUpstream,
		"loglevel":    cfg.LogLevel,
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, entries[k])
	}

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// splitList splits a comma-separated value, dropping empty elements.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
