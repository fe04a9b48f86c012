// Copyright 2024 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log_test

import (
	"testing"
	"time"

	"github.com/ethersphere/swarmlog/pkg/log"
	"github.com/ethersphere/swarmlog/pkg/mode"
	"github.com/ethersphere/swarmlog/pkg/onerror"
)

// call is a single console method invocation.
type call struct {
	method string
	args   []interface{}
}

// recordingConsole implements all the console interfaces.
type recordingConsole struct {
	calls []call
}

func (c *recordingConsole) Log(args ...interface{})   { c.record("log", args) }
func (c *recordingConsole) Info(args ...interface{})  { c.record("info", args) }
func (c *recordingConsole) Warn(args ...interface{})  { c.record("warn", args) }
func (c *recordingConsole) Error(args ...interface{}) { c.record("error", args) }

func (c *recordingConsole) record(method string, args []interface{}) {
	c.calls = append(c.calls, call{method: method, args: args})
}

// logOnlyConsole has only the base capability.
type logOnlyConsole struct {
	calls []call
}

func (c *logOnlyConsole) Log(args ...interface{}) {
	c.calls = append(c.calls, call{method: "log", args: args})
}

// queueScheduler holds the scheduled callbacks until run is called.
type queueScheduler struct {
	fns []func()
}

func (s *queueScheduler) Schedule(fn func()) { s.fns = append(s.fns, fn) }

func (s *queueScheduler) run() {
	fns := s.fns
	s.fns = nil
	for _, fn := range fns {
		fn()
	}
}

// element implements the log.Element interface.
type element struct {
	tag, id string
}

func (e element) TagName() string { return e.tag }
func (e element) ID() string      { return e.id }

// fixedLevel returns a resolver which always returns l.
func fixedLevel(l log.Level) log.LevelResolver {
	return func(mode.Flags) log.Level { return l }
}

// fixedClock returns a clock d after the package start time.
func fixedClock(d time.Duration) func() time.Time {
	return func() time.Time { return log.StartTime.Add(d) }
}

// captureRaised installs an onerror handler which records the
// raised errors, and restores the previous handler on cleanup.
func captureRaised(t *testing.T) *[]error {
	t.Helper()

	var raised []error
	prev := onerror.SetHandler(onerror.HandlerFunc(func(err error) {
		raised = append(raised, err)
	}))
	t.Cleanup(func() { onerror.SetHandler(prev) })
	return &raised
}

// mustPanic runs f and returns the *log.Error it panicked with.
func mustPanic(t *testing.T, f func()) (err *log.Error) {
	t.Helper()

	defer func() {
		r := recover()
		e, ok := r.(*log.Error)
		if !ok {
			t.Fatalf("got panic value %v (%T), want *log.Error", r, r)
		}
		err = e
	}()
	f()
	return nil
}
