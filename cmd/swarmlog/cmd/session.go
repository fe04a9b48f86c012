// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ethersphere/swarmlog/pkg/console"
	"github.com/ethersphere/swarmlog/pkg/log"
	"github.com/ethersphere/swarmlog/pkg/metrics/registry"
	"github.com/ethersphere/swarmlog/pkg/mode"
	"github.com/ethersphere/swarmlog/pkg/onerror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// session holds the loggers of a single command invocation.
type session struct {
	resolver  *mode.Resolver
	loggers   *log.Registry
	scheduler *deferredScheduler
	metrics   *registry.Registry
	logger    *logrus.Logger

	prevHandler onerror.Handler
}

func (c *command) newSession(cmd *cobra.Command) (*session, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), c.config.GetString(optionNameVerbosity))
	if err != nil {
		return nil, err
	}

	cons, err := newConsole(cmd, c.config.GetString(optionNameConsole))
	if err != nil {
		return nil, err
	}

	s := &session{
		resolver:  mode.NewResolver(c.config),
		loggers:   log.NewRegistry(),
		scheduler: new(deferredScheduler),
		logger:    logger,
	}
	flags := s.resolver.Mode()
	s.metrics = registry.NewRegistry(modeName(flags))

	s.loggers.InitLoggerConstructor(log.DefaultConstructor(
		log.WithConsole(cons),
		log.WithMode(s.resolver),
		log.WithScheduler(s.scheduler),
		log.WithTestLogging(c.config.GetBool(optionNameTestLogging)),
	))

	s.prevHandler = onerror.SetHandler(newUncaughtHandler(logger))

	logger.WithField("mode", modeName(flags)).Debug("session started")
	return s, nil
}

// namedLogger returns the registry logger with the given name.
func (s *session) namedLogger(name string) (*log.Logger, error) {
	switch name {
	case log.UserLoggerName:
		return s.loggers.User(), nil
	case log.DevLoggerName:
		return s.loggers.Dev(), nil
	}
	return nil, fmt.Errorf("unknown logger %q", name)
}

// close delivers pending re-throws and restores the previous error handler.
func (s *session) close() {
	s.scheduler.flush()
	onerror.SetHandler(s.prevHandler)
}

func newConsole(cmd *cobra.Command, name string) (log.Console, error) {
	switch name {
	case "plain":
		return console.NewWriter(cmd.OutOrStdout()), nil
	case "logrus":
		return console.NewLogrusWriter(cmd.OutOrStdout(), logrus.TraceLevel), nil
	case "zap":
		return console.NewZapWriter(cmd.OutOrStdout(), true), nil
	}
	return nil, fmt.Errorf("unknown console %q", name)
}

func newUncaughtHandler(logger logrus.FieldLogger) onerror.Handler {
	return onerror.HandlerFunc(func(err error) {
		entry := logger.WithError(err).WithField("user_error", log.IsUserError(err))
		var e *log.Error
		if errors.As(err, &e) {
			entry = entry.WithField("expected", e.Expected)
			if e.Name != "" {
				entry = entry.WithField("tag", e.Name)
			}
		}
		entry.Error("uncaught error")
	})
}

func modeName(f mode.Flags) string {
	switch {
	case f.Test:
		return mode.KeyTest
	case f.LocalDev:
		return mode.KeyLocalDev
	case f.Development:
		return mode.KeyDevelopment
	}
	return "production"
}

// deferredScheduler runs scheduled callbacks when flushed, after the
// current command has finished its own work.
type deferredScheduler struct {
	mu  sync.Mutex
	fns []func()
}

func (s *deferredScheduler) Schedule(fn func()) {
	s.mu.Lock()
	s.fns = append(s.fns, fn)
	s.mu.Unlock()
}

func (s *deferredScheduler) flush() {
	for {
		s.mu.Lock()
		fns := s.fns
		s.fns = nil
		s.mu.Unlock()

		if len(fns) == 0 {
			return
		}
		for _, fn := range fns {
			fn()
		}
	}
}
