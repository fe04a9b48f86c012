// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"strconv"
	"strings"
	"time"

	"github.com/ethersphere/swarmlog/pkg/mode"
)

// Level specifies a level of verbosity for logger.
// The levels are ordered; a message of a given
// severity is emitted only when the logger level
// is greater than or equal to that severity.
type Level int32

// String implements the fmt.Stringer interface.
func (l Level) String() string {
	switch l {
	case VerbosityNone:
		return "none"
	case VerbosityError:
		return "error"
	case VerbosityWarning:
		return "warning"
	case VerbosityInfo:
		return "info"
	case VerbosityFine:
		return "fine"
	case VerbosityAll:
		return "all"
	}
	return strconv.FormatInt(int64(l), 10)
}

// ParseVerbosityLevel returns a verbosity Level parsed from the given s.
func ParseVerbosityLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "none", "off", "silent":
		return VerbosityNone, nil
	case "error":
		return VerbosityError, nil
	case "warning", "warn":
		return VerbosityWarning, nil
	case "info":
		return VerbosityInfo, nil
	case "fine", "debug":
		return VerbosityFine, nil
	case "all":
		return VerbosityAll, nil
	}
	i, err := strconv.ParseInt(s, 10, 32)
	return Level(i), err
}

const (
	// VerbosityNone will silence the logger.
	VerbosityNone = Level(iota)
	// VerbosityError allows only error messages to be printed.
	VerbosityError
	// VerbosityWarning allows only error and warning messages to be printed.
	VerbosityWarning
	// VerbosityInfo allows only error, warning and info messages to be printed.
	VerbosityInfo
	// VerbosityFine allows all messages to be printed.
	VerbosityFine
	// VerbosityAll is a placeholder used to address every
	// severity level at once, for example when registering hooks.
	VerbosityAll = Level(1<<31 - 1)
)

// LevelResolver is the logger specific policy which maps
// mode flags to the level of the logger. It is consulted
// only when none of the general rules in ComputeLevel apply.
type LevelResolver func(mode.Flags) Level

// ComputeLevel returns the effective level of a logger. The rules are
// evaluated in order and the first one that matches wins:
//
//   - no console is available: VerbosityNone;
//   - the log override is "0": VerbosityNone;
//   - test mode with test logging enabled: VerbosityFine;
//   - local development mode without a log override: VerbosityInfo;
//   - otherwise the level returned by resolver.
func ComputeLevel(flags mode.Flags, resolver LevelResolver, consoleAvailable, testLogging bool) Level {
	switch {
	case !consoleAvailable:
		return VerbosityNone
	case flags.Log == "0":
		return VerbosityNone
	case flags.Test && testLogging:
		return VerbosityFine
	case flags.LocalDev && !flags.LogSet():
		return VerbosityInfo
	case resolver == nil:
		return VerbosityNone
	}
	return resolver(flags)
}

// Console is the output sink of a logger. Log is the base capability
// used for every severity that has no dedicated method; a console may
// additionally implement InfoConsole, WarnConsole and ErrorConsole.
type Console interface {
	Log(args ...interface{})
}

// InfoConsole is implemented by consoles with a dedicated info output.
type InfoConsole interface {
	Info(args ...interface{})
}

// WarnConsole is implemented by consoles with a dedicated warning output.
type WarnConsole interface {
	Warn(args ...interface{})
}

// ErrorConsole is implemented by consoles with a dedicated error output.
type ErrorConsole interface {
	Error(args ...interface{})
}

// Scheduler runs a callback later, outside of the current call stack.
// There is no way to cancel or wait for a scheduled callback.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc is an adapter to allow the use
// of ordinary functions as schedulers.
type SchedulerFunc func(fn func())

// Schedule implements the Scheduler interface.
func (f SchedulerFunc) Schedule(fn func()) { f(fn) }

// Hook that is fired when logging
// on the associated severity log level.
// Note, the call must be non-blocking.
type Hook interface {
	Fire(Level) error
}

// Options specifies parameters that affect logger behavior.
type Options struct {
	name        string
	console     Console
	mode        mode.Provider
	suffix      string
	scheduler   Scheduler
	testLogging bool
	levelHooks  levelHooks
	now         func() time.Time
}

// Option represent Options parameters modifier.
type Option func(*Options)

// WithName tells the logger its name. The name
// is used as a label of the logger metrics.
func WithName(name string) Option {
	return func(opts *Options) { opts.name = name }
}

// WithConsole tells the logger to log to the given console.
// A logger without a console is always silent.
func WithConsole(console Console) Option {
	return func(opts *Options) { opts.console = console }
}

// WithMode tells the logger where to read the mode flags from.
// The flags are read once, when the logger is created.
func WithMode(provider mode.Provider) Option {
	return func(opts *Options) { opts.mode = provider }
}

// WithSuffix tells the logger to append the given
// suffix to the message of every error it creates.
func WithSuffix(suffix string) Option {
	return func(opts *Options) { opts.suffix = suffix }
}

// WithScheduler tells the logger which scheduler to use to raise
// suppressed errors. If not specified, the package scheduler is used.
func WithScheduler(s Scheduler) Option {
	return func(opts *Options) { opts.scheduler = s }
}

// WithTestLogging enables full verbosity when the mode reports a test run.
func WithTestLogging(enabled bool) Option {
	return func(opts *Options) { opts.testLogging = enabled }
}

// WithClock tells the logger how to read the current time
// when computing the elapsed time prefix of messages.
func WithClock(now func() time.Time) Option {
	return func(opts *Options) { opts.now = now }
}

// WithLevelHooks tells the logger to register and execute hooks at
// related severity log levels. If VerbosityAll is given, then the
// given hooks will be registered with each severity log level.
// On the other hand, if VerbosityNone is given, hooks will
// not be registered with any severity log level.
func WithLevelHooks(l Level, hooks ...Hook) Option {
	return func(opts *Options) {
		if opts.levelHooks == nil {
			opts.levelHooks = make(map[Level][]Hook)
		}
		switch l {
		case VerbosityNone:
			return
		case VerbosityAll:
			for _, ml := range []Level{
				VerbosityError,
				VerbosityWarning,
				VerbosityInfo,
				VerbosityFine,
			} {
				opts.levelHooks[ml] = append(opts.levelHooks[ml], hooks...)
			}
		default:
			opts.levelHooks[l] = append(opts.levelHooks[l], hooks...)
		}
	}
}
