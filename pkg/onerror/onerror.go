// Copyright 2024 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package onerror holds the process-wide handler for errors that
// escaped their call stack, such as errors that were suppressed by a
// disabled logger and re-raised later. It plays the role of a top-level
// error event listener: whatever is raised here has no caller left to
// return to.
package onerror

import (
	"sync"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Handler handles errors that escaped their call stack.
// Note, the call should be non-blocking.
type Handler interface {
	HandleError(err error)
}

// HandlerFunc is an adapter to allow the use of
// ordinary functions as error handlers.
type HandlerFunc func(err error)

// HandleError implements the Handler interface.
func (f HandlerFunc) HandleError(err error) { f(err) }

// NewLogHandler returns a Handler which logs
// every raised error at the logrus error level.
func NewLogHandler(logger logrus.FieldLogger) Handler {
	return HandlerFunc(func(err error) {
		logger.WithError(err).Error("uncaught error")
	})
}

var (
	defaultHandler = NewLogHandler(logrus.StandardLogger())

	mu      sync.RWMutex
	handler = defaultHandler

	raised = atomic.NewUint64(0)
)

// SetHandler installs h as the process-wide handler and returns
// the previously installed one. Passing nil restores the default
// handler, which logs to the standard logrus logger.
func SetHandler(h Handler) Handler {
	if h == nil {
		h = defaultHandler
	}

	mu.Lock()
	defer mu.Unlock()

	prev := handler
	handler = h
	return prev
}

// Raise delivers err to the installed handler. Nil errors are ignored.
func Raise(err error) {
	if err == nil {
		return
	}
	raised.Inc()

	mu.RLock()
	h := handler
	mu.RUnlock()

	h.HandleError(err)
}

// Raised returns the number of errors raised since the process start.
func Raised() uint64 {
	return raised.Load()
}
