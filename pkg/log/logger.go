// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"os"
	"sync"
	"time"

	m "github.com/ethersphere/swarmlog/pkg/metrics"
	"github.com/ethersphere/swarmlog/pkg/mode"
	"github.com/ethersphere/swarmlog/pkg/onerror"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
)

// startTime is the reference point of the elapsed
// time printed in front of every message.
var startTime = time.Now()

// GoScheduler runs every callback on its own goroutine.
var GoScheduler Scheduler = SchedulerFunc(func(fn func()) { go fn() })

var (
	schedulerMu sync.RWMutex
	scheduler   = GoScheduler
)

// SetScheduler replaces the package scheduler used by RethrowAsync and
// by loggers created without WithScheduler, and returns the previous one.
// Passing nil restores GoScheduler.
func SetScheduler(s Scheduler) Scheduler {
	if s == nil {
		s = GoScheduler
	}

	schedulerMu.Lock()
	defer schedulerMu.Unlock()

	prev := scheduler
	scheduler = s
	return prev
}

func packageScheduler() Scheduler {
	schedulerMu.RLock()
	defer schedulerMu.RUnlock()
	return scheduler
}

// levelHooks is a helper type for storing and
// help triggering the hooks on a logger instance.
type levelHooks map[Level][]Hook

// fire triggers all the hooks for the given level.
func (lh levelHooks) fire(level Level) error {
	var merr *multierror.Error
	for _, hook := range lh[level] {
		if err := hook.Fire(level); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}

// Logger emits messages of the enabled severities to its console.
// The level is computed once, when the logger is created, since the
// mode flags are assumed stable for the lifetime of the logger.
type Logger struct {
	// console receives the emitted messages.
	console Console

	// resolver is the logger specific level policy.
	resolver LevelResolver

	// level is the effective level of the logger.
	level Level

	// suffix is appended to the message of every error
	// created by the logger, see PrepareError.
	suffix string

	// scheduler raises suppressed errors; nil
	// means that the package scheduler is used.
	scheduler Scheduler

	// levelHooks allow triggering of registered hooks
	// on their associated severity log levels.
	levelHooks levelHooks

	metrics *metrics
	now     func() time.Time
}

// NewLogger returns a new Logger which uses resolver to decide its level.
func NewLogger(resolver LevelResolver, opts ...Option) *Logger {
	o := &Options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	var flags mode.Flags
	if o.mode != nil {
		flags = o.mode.Mode()
	}

	l := &Logger{
		console:    o.console,
		resolver:   resolver,
		suffix:     o.suffix,
		scheduler:  o.scheduler,
		levelHooks: o.levelHooks,
		metrics:    newLogMetrics(o.name),
		now:        o.now,
	}
	l.level = ComputeLevel(flags, resolver, o.console != nil, o.testLogging)
	return l
}

// Level returns the effective level of the logger.
func (l *Logger) Level() Level { return l.level }

// Suffix returns the suffix appended to errors created by the logger.
func (l *Logger) Suffix() string { return l.suffix }

// IsEnabled reports whether the logger emits anything at all.
func (l *Logger) IsEnabled() bool {
	return l.level != VerbosityNone
}

// Metrics returns the prometheus collectors of the logger.
func (l *Logger) Metrics() []prometheus.Collector {
	return m.PrometheusCollectorsFromFields(l.metrics)
}

// Fine logs a message with the fine severity.
func (l *Logger) Fine(tag string, values ...interface{}) {
	if l.level >= VerbosityFine {
		l.log(VerbosityFine, tag, values)
	}
}

// Info logs a message with the info severity.
func (l *Logger) Info(tag string, values ...interface{}) {
	if l.level >= VerbosityInfo {
		l.log(VerbosityInfo, tag, values)
	}
}

// Warn logs a message with the warning severity.
func (l *Logger) Warn(tag string, values ...interface{}) {
	if l.level >= VerbosityWarning {
		l.log(VerbosityWarning, tag, values)
	}
}

// Error logs a message with the error severity. If errors are not enabled,
// the values are turned into an error (see CreateErrorVargs) which is
// raised later through the onerror package, so the error is still visible
// to the process-wide handler while the caller carries on.
func (l *Logger) Error(tag string, values ...interface{}) {
	if err := l.error(tag, values); err != nil {
		l.rethrowAsync(err)
	}
}

// ExpectedError is like Error, but a suppressed error
// is marked as expected before it is raised.
func (l *Logger) ExpectedError(tag string, values ...interface{}) {
	if err := l.error(tag, values); err != nil {
		err.Expected = true
		l.rethrowAsync(err)
	}
}

// error logs the values if errors are enabled, otherwise
// it returns the error that should be raised instead.
func (l *Logger) error(tag string, values []interface{}) *Error {
	if l.level >= VerbosityError {
		l.log(VerbosityError, tag, values)
		return nil
	}

	err := CreateErrorVargs(values...)
	if tag != "" {
		err.Name = tag
	}
	l.prepareError(err)
	return err
}

// CreateError returns an error built from the given values with the
// logger suffix applied. The error is neither logged nor raised.
func (l *Logger) CreateError(values ...interface{}) *Error {
	err := CreateErrorVargs(values...)
	l.prepareError(err)
	return err
}

// CreateExpectedError is like CreateError, but the error is marked as expected.
func (l *Logger) CreateExpectedError(values ...interface{}) *Error {
	err := l.CreateError(values...)
	err.Expected = true
	return err
}

func (l *Logger) prepareError(err *Error) {
	PrepareError(err, l.suffix)
}

func (l *Logger) rethrowAsync(err *Error) {
	l.metrics.SuppressedErrorCount.Inc()

	s := l.scheduler
	if s == nil {
		s = packageScheduler()
	}
	s.Schedule(func() { onerror.Raise(err) })
}

// log writes the tagged values to the console method that matches
// the given level, and fires the hooks registered for that level.
func (l *Logger) log(vl Level, tag string, values []interface{}) {
	args := make([]interface{}, 0, 2+len(values))
	args = append(args, l.now().Sub(startTime).Milliseconds(), "["+tag+"]")
	args = append(args, values...)

	fn := l.console.Log
	switch vl {
	case VerbosityError:
		if c, ok := l.console.(ErrorConsole); ok {
			fn = c.Error
		}
	case VerbosityWarning:
		if c, ok := l.console.(WarnConsole); ok {
			fn = c.Warn
		}
	case VerbosityInfo:
		if c, ok := l.console.(InfoConsole); ok {
			fn = c.Info
		}
	}
	fn(args...)

	if err := l.metrics.Fire(vl); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if err := l.levelHooks.fire(vl); err != nil {
		fmt.Fprintf(os.Stderr, "log %s: failed to fire hooks: %v\n", vl, err)
	}
}
