// Copyright 2024 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"math"
	"reflect"
	"strings"
)

const (
	defaultAssertMessage = "Assertion failed"
	placeholder          = "%s"
)

// Assert returns v unchanged if it is truthy, see Truthy. Otherwise it
// panics with an *Error whose message is the given message with every
// "%s" replaced, in order, by the string form of the matching substitution.
// Substitutions without a placeholder are ignored. An empty message is
// replaced by "Assertion failed". Assertions are never silenced by the
// logger level.
func (l *Logger) Assert(v interface{}, message string, subs ...interface{}) interface{} {
	if !Truthy(v) {
		l.fail(message, subs)
	}
	return v
}

// AssertElement asserts that v is a non-nil Element and returns it.
func (l *Logger) AssertElement(v interface{}, message string) Element {
	el, ok := v.(Element)
	l.Assert(ok && !isNil(v), orDefault(message, "Element expected")+": %s", v)
	return el
}

// AssertString asserts that v is a string and returns it.
func (l *Logger) AssertString(v interface{}, message string) string {
	s, ok := v.(string)
	l.Assert(ok, orDefault(message, "String expected")+": %s", v)
	return s
}

// AssertNumber asserts that v is of a numeric kind and returns it as float64.
func (l *Logger) AssertNumber(v interface{}, message string) float64 {
	f, ok := toFloat(v)
	l.Assert(ok, orDefault(message, "Number expected")+": %s", v)
	return f
}

// AssertBoolean asserts that v is a bool and returns it.
func (l *Logger) AssertBoolean(v interface{}, message string) bool {
	b, ok := v.(bool)
	l.Assert(ok, orDefault(message, "Boolean expected")+": %s", v)
	return b
}

// AssertEnumValue asserts that v is one of the values of enum and returns it.
// The name of the enum is used in the failure message; it defaults to "enum".
func AssertEnumValue[V comparable](l *Logger, enum map[string]V, v V, name string) V {
	for _, ev := range enum {
		if ev == v {
			return v
		}
	}
	l.Assert(false, `Unknown %s value: "%s"`, orDefault(name, "enum"), v)
	return v
}

// Guard is the typed form of Logger.Assert, handy as an inline check:
//
//	conn := log.Guard(logger, pool.Get(), "no connection for %s", addr)
func Guard[T any](l *Logger, v T, message string, subs ...interface{}) T {
	l.Assert(v, message, subs...)
	return v
}

// fail builds the assertion error, applies the suffix and panics with it.
func (l *Logger) fail(message string, subs []interface{}) {
	err := newAssertionError(orDefault(message, defaultAssertMessage), subs)
	l.prepareError(err)
	l.metrics.AssertionFailureCount.Inc()
	panic(err)
}

func newAssertionError(message string, subs []interface{}) *Error {
	fragments := strings.Split(message, placeholder)
	n := len(fragments) - 1
	if len(subs) < n {
		n = len(subs)
	}

	var (
		msg     strings.Builder
		parts   = make([]MessagePart, 0, 2*n+1)
		element Element
	)
	for i := 0; i < n; i++ {
		msg.WriteString(fragments[i])
		parts = appendLiteral(parts, fragments[i])

		v := subs[i]
		if el, ok := v.(Element); ok && element == nil && !isNil(v) {
			element = el
		}
		msg.WriteString(FormatValue(v))
		parts = append(parts, MessagePart{Value: v, IsValue: true})
	}
	tail := strings.Join(fragments[n:], placeholder)
	msg.WriteString(tail)
	parts = appendLiteral(parts, tail)

	return &Error{
		FromAssert:        true,
		AssociatedElement: element,
		MessageArray:      parts,
		message:           msg.String(),
	}
}

func appendLiteral(parts []MessagePart, s string) []MessagePart {
	if s = strings.TrimSpace(s); s != "" {
		parts = append(parts, MessagePart{Text: s})
	}
	return parts
}

// Truthy reports whether v counts as a passing assertion value. Nil,
// false, zero numbers, NaN, the empty string and nil pointers, maps,
// slices, functions and channels are falsy; everything else is truthy.
func Truthy(v interface{}) bool {
	if isNil(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.String:
		return rv.Len() != 0
	}
	return true
}

func toFloat(v interface{}) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
