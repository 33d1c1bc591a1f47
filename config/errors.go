// Copyright (c) 2025 The SkillMarket developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import "errors"

var (
	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrEmptyLedgerFile indicates the ledger filename is empty.
	ErrEmptyLedgerFile = errors.New("config: ledger filename must not be empty")

	// ErrInvalidGateway indicates a gateway URL is malformed.
	ErrInvalidGateway = errors.New("config: invalid gateway URL")

	// ErrInvalidDNSUpstream indicates the DNS upstream address is malformed.
	ErrInvalidDNSUpstream = errors.New("config: invalid DNS upstream address")

	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidConfigLine indicates a line in the config file is malformed.
	ErrInvalidConfigLine = errors.New("config: invalid configuration line")
)
