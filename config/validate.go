// Copyright (c) 2025 The SkillMarket developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
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
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.LedgerFile == "" {
		return ErrEmptyLedgerFile
	}

	for _, gw := range cfg.Gateways {
		if err := validateGateway(gw); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidGateway, gw, err)
		}
	}

	if cfg.DNSUpstream != "" {
		if _, _, err := net.SplitHostPort(cfg.DNSUpstream); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDNSUpstream, err)
		}
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	return nil
}

// validateGateway checks that gw is an absolute http(s) URL.
func validateGateway(gw string) error {
	u, err := url.Parse(gw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
