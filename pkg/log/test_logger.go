// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"testing"

	"github.com/ethersphere/swarmlog/pkg/mode"
)

// NewTestLogger returns logger used for testing.
// This logger uses t.Log as console for log outputs and logs
// everything unless the given options say otherwise.
func NewTestLogger(t *testing.T, opts ...Option) *Logger {
	t.Helper()

	opts = append([]Option{WithConsole(&testConsole{t: t}), WithName(t.Name())}, opts...)

	return NewLogger(func(_ mode.Flags) Level { return VerbosityFine }, opts...)
}

type testConsole struct {
	t *testing.T
}

func (tc *testConsole) Log(args ...interface{}) {
	tc.t.Helper()
	tc.t.Log(args...)
}

func (tc *testConsole) Warn(args ...interface{}) {
	tc.t.Helper()
	tc.t.Log(append([]interface{}{"WARN"}, args...)...)
}

func (tc *testConsole) Error(args ...interface{}) {
	tc.t.Helper()
	tc.t.Log(append([]interface{}{"ERROR"}, args...)...)
}
