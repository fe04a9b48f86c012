// Copyright 2024 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package console provides log.Console implementations.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/ethersphere/swarmlog/pkg/log"
	"github.com/sirupsen/logrus"
)

var (
	_ log.Console      = (*Logrus)(nil)
	_ log.InfoConsole  = (*Logrus)(nil)
	_ log.WarnConsole  = (*Logrus)(nil)
	_ log.ErrorConsole = (*Logrus)(nil)

	_ log.Console      = (*Writer)(nil)
	_ log.WarnConsole  = (*Writer)(nil)
	_ log.ErrorConsole = (*Writer)(nil)
)

// Logrus writes console messages to a logrus logger, each console
// method mapped to the matching logrus level. Log, which receives the
// fine messages, writes at the debug level.
type Logrus struct {
	logger logrus.FieldLogger
}

// NewLogrus returns a console backed by logger.
func NewLogrus(logger logrus.FieldLogger) *Logrus {
	return &Logrus{logger: logger}
}

// NewLogrusWriter returns a console backed by a new logrus logger which
// writes to w using the text formatter with full timestamps.
func NewLogrusWriter(w io.Writer, level logrus.Level) *Logrus {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}
	return NewLogrus(l)
}

func (c *Logrus) Log(args ...interface{})   { c.logger.Debugln(args...) }
func (c *Logrus) Info(args ...interface{})  { c.logger.Infoln(args...) }
func (c *Logrus) Warn(args ...interface{})  { c.logger.Warnln(args...) }
func (c *Logrus) Error(args ...interface{}) { c.logger.Errorln(args...) }

// Writer writes console messages as plain lines. Warnings and errors
// are prefixed with their severity; everything else goes through Log.
type Writer struct {
	w io.Writer
}

// NewWriter returns a console writing to w.
// The writer is locked, see Lock.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: Lock(w)}
}

func (c *Writer) Log(args ...interface{}) {
	fmt.Fprintln(c.w, args...)
}

func (c *Writer) Warn(args ...interface{}) {
	fmt.Fprintln(c.w, append([]interface{}{"WARN"}, args...)...)
}

func (c *Writer) Error(args ...interface{}) {
	fmt.Fprintln(c.w, append([]interface{}{"ERROR"}, args...)...)
}

// Lock wraps io.Writer in a mutex to make it safe for concurrent use.
// In particular, *os.Files must be locked before use.
func Lock(w io.Writer) io.Writer {
	if _, ok := w.(*lockWriter); ok {
		return w // No need to layer on another lock.
	}
	return &lockWriter{w: w}
}

// lockWriter attaches mutex to io.Writer for convince of usage.
type lockWriter struct {
	sync.Mutex
	w io.Writer
}

// Write implements the io.Writer interface.
func (ls *lockWriter) Write(bs []byte) (int, error) {
	ls.Lock()
	n, err := ls.w.Write(bs)
	ls.Unlock()
	return n, err
}
