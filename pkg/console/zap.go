// Copyright 2024 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package console

import (
	"io"

	"github.com/ethersphere/swarmlog/pkg/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	_ log.Console      = (*Zap)(nil)
	_ log.InfoConsole  = (*Zap)(nil)
	_ log.WarnConsole  = (*Zap)(nil)
	_ log.ErrorConsole = (*Zap)(nil)
)

// Zap writes console messages to a zap logger. Log, which receives the
// fine messages, writes at the debug level.
type Zap struct {
	logger *zap.SugaredLogger
}

// NewZap returns a console backed by logger. A nil logger discards
// every message.
func NewZap(logger *zap.Logger) *Zap {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Zap{logger: logger.Sugar()}
}

// NewZapWriter returns a console backed by a new zap logger which writes
// human readable lines to w. Timestamps are left out when withTime is false.
func NewZapWriter(w io.Writer, withTime bool) *Zap {
	cfg := zap.NewDevelopmentEncoderConfig()
	if !withTime {
		cfg.TimeKey = ""
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.DebugLevel,
	)
	return NewZap(zap.New(core))
}

func (c *Zap) Log(args ...interface{})   { c.logger.Debugln(args...) }
func (c *Zap) Info(args ...interface{})  { c.logger.Infoln(args...) }
func (c *Zap) Warn(args ...interface{})  { c.logger.Warnln(args...) }
func (c *Zap) Error(args ...interface{}) { c.logger.Errorln(args...) }

// Sync flushes any buffered log entries.
func (c *Zap) Sync() error {
	return c.logger.Sync()
}
