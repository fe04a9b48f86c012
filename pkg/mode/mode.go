// Copyright 2024 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mode provides the environment flags snapshot that drives
// logger verbosity decisions, together with a viper-backed resolver
// that assembles the snapshot from flags, environment and config file.
package mode

import (
	"strconv"
	"strings"
)

// Configuration keys understood by the Resolver.
const (
	KeyTest        = "test"
	KeyLocalDev    = "local-dev"
	KeyDevelopment = "development"
	KeyLog         = "log"
)

// Flags is an immutable snapshot of the environment flags.
type Flags struct {
	// Test is set when running under a test harness.
	Test bool `json:"test" yaml:"test"`
	// LocalDev is set when running from a local development build.
	LocalDev bool `json:"localDev" yaml:"localDev"`
	// Development is set when the development mode was requested.
	Development bool `json:"development" yaml:"development"`
	// Log is the explicit log level override. Empty means unset,
	// "0" turns logging off and any other decimal number is
	// interpreted by the logger specific level resolvers.
	Log string `json:"log,omitempty" yaml:"log,omitempty"`
}

// Mode implements the Provider interface, so a
// Flags value can be used as a fixed mode source.
func (f Flags) Mode() Flags { return f }

// LogSet reports whether the log override is present.
func (f Flags) LogSet() bool { return f.Log != "" }

// LogNumber returns the numeric value of the log override.
// Only the leading decimal digits are taken into account,
// so "3x" yields 3. A missing or non-numeric value yields 0.
func (f Flags) LogNumber() int {
	s := strings.TrimSpace(f.Log)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Provider supplies mode snapshots.
type Provider interface {
	Mode() Flags
}
