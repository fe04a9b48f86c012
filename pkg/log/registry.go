// Copyright 2024 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"errors"
	"runtime"
	"strconv"
	"sync"

	"github.com/ethersphere/swarmlog/pkg/mode"
	"go.uber.org/atomic"
)

// Names of the registry loggers.
const (
	UserLoggerName = "user"
	DevLoggerName  = "dev"
)

// ErrConstructorNotInitialized is the panic value of User and Dev
// when no constructor was installed with InitLoggerConstructor.
var ErrConstructorNotInitialized = errors.New("log: logger constructor not initialized")

// ErrReentrantConstruction is the panic value of User and Dev when they
// are called for a logger from within the constructor of the same logger.
var ErrReentrantConstruction = errors.New("log: logger accessed during its own construction")

// Constructor creates the registry logger with the given name,
// level resolver and error message suffix.
type Constructor func(name string, resolver LevelResolver, suffix string) *Logger

// DefaultConstructor returns a Constructor which calls NewLogger
// with the given options, followed by the name and suffix options.
func DefaultConstructor(opts ...Option) Constructor {
	return func(name string, resolver LevelResolver, suffix string) *Logger {
		o := make([]Option, 0, len(opts)+2)
		o = append(o, opts...)
		o = append(o, WithName(name), WithSuffix(suffix))
		return NewLogger(resolver, o...)
	}
}

// UserResolver is the level policy of the user logger: everything is
// logged in development mode or with a log override of at least 1.
func UserResolver(flags mode.Flags) Level {
	if flags.Development || flags.LogNumber() >= 1 {
		return VerbosityFine
	}
	return VerbosityNone
}

// DevResolver is the level policy of the dev logger: a log override of
// 3 or more logs everything, 2 logs up to info, anything else is silent.
func DevResolver(flags mode.Flags) Level {
	switch n := flags.LogNumber(); {
	case n >= 3:
		return VerbosityFine
	case n >= 2:
		return VerbosityInfo
	}
	return VerbosityNone
}

// slot caches a single registry logger.
type slot struct {
	name     string
	resolver LevelResolver
	suffix   string
	logger   atomic.Value // *Logger

	// mu serializes the construction of the logger.
	mu sync.Mutex
	// builder is the id of the goroutine running the
	// constructor of the logger, zero if there is none.
	builder atomic.Int64
}

func (s *slot) load() *Logger {
	l, _ := s.logger.Load().(*Logger)
	return l
}

// Registry lazily creates and caches the user and dev loggers. Each
// logger is created at most once, on first access, by the constructor
// installed with InitLoggerConstructor; later accesses return the
// cached instance without looking at the mode flags again.
//
// The constructor of one logger may use the other one. Accessing a
// logger from within its own constructor panics with
// ErrReentrantConstruction.
type Registry struct {
	mu          sync.Mutex
	constructor Constructor

	user *slot
	dev  *slot
}

// NewRegistry returns a registry without a constructor.
func NewRegistry() *Registry {
	return &Registry{
		user: &slot{name: UserLoggerName, resolver: UserResolver, suffix: UserErrorSentinel},
		dev:  &slot{name: DevLoggerName, resolver: DevResolver},
	}
}

// InitLoggerConstructor installs the constructor used to create the
// loggers on first access. It must be called before User or Dev.
func (r *Registry) InitLoggerConstructor(c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructor = c
}

// ResetLoggerConstructorForTesting removes the installed constructor.
// Loggers that were already created stay cached.
func (r *Registry) ResetLoggerConstructorForTesting() {
	r.InitLoggerConstructor(nil)
}

// User returns the logger for messages meant for publishers. Errors
// it creates carry UserErrorSentinel, see IsUserErrorMessage.
// It panics with ErrConstructorNotInitialized if the logger does not
// exist yet and no constructor is installed.
func (r *Registry) User() *Logger {
	return r.get(r.user)
}

// Dev returns the logger for messages meant for developers.
// It panics with ErrConstructorNotInitialized if the logger does
// not exist yet and no constructor is installed.
func (r *Registry) Dev() *Logger {
	return r.get(r.dev)
}

// get returns the cached logger or creates it with the installed constructor.
func (r *Registry) get(s *slot) *Logger {
	if l := s.load(); l != nil {
		return l
	}

	id := goroutineID()
	if id != 0 && s.builder.Load() == id {
		panic(ErrReentrantConstruction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if l := s.load(); l != nil {
		return l
	}

	r.mu.Lock()
	c := r.constructor
	r.mu.Unlock()
	if c == nil {
		panic(ErrConstructorNotInitialized)
	}

	s.builder.Store(id)
	defer s.builder.Store(0)

	l := c(s.name, s.resolver, s.suffix)
	s.logger.Store(l)
	return l
}

// goroutineID returns the id of the calling goroutine as printed in
// its stack trace header, or zero if it cannot be parsed.
func goroutineID() int64 {
	var buf [64]byte
	b := bytes.TrimPrefix(buf[:runtime.Stack(buf[:], false)], []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// defaultRegistry backs the package level registry functions.
var defaultRegistry = NewRegistry()

// InitLoggerConstructor installs the constructor of the process-wide registry.
func InitLoggerConstructor(c Constructor) {
	defaultRegistry.InitLoggerConstructor(c)
}

// ResetLoggerConstructorForTesting removes the constructor of the
// process-wide registry. Loggers that were already created stay cached.
func ResetLoggerConstructorForTesting() {
	defaultRegistry.ResetLoggerConstructorForTesting()
}

// User returns the user logger of the process-wide registry.
func User() *Logger {
	return defaultRegistry.User()
}

// Dev returns the dev logger of the process-wide registry.
func Dev() *Logger {
	return defaultRegistry.Dev()
}
