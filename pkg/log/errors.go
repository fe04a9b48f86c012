// Copyright 2024 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ethersphere/swarmlog/pkg/onerror"
)

// ErrAssertionFailed matches, through errors.Is, every error
// produced by a failed assertion.
var ErrAssertionFailed = errors.New("assertion failed")

var _ error = (*Error)(nil)

// Element is implemented by values with a displayable identity, such as
// nodes of a document. Assertion messages render elements as the lower
// cased tag name, followed by "#" and the identifier when there is one.
type Element interface {
	TagName() string
	ID() string
}

// MessagePart is a part of an assertion message: either a literal
// fragment of the message template or a substituted value kept as is.
type MessagePart struct {
	Text    string
	Value   interface{}
	IsValue bool
}

// Interface returns the value of a value part or the text of a literal part.
func (p MessagePart) Interface() interface{} {
	if p.IsValue {
		return p.Value
	}
	return p.Text
}

// Error is the error type created by loggers and assertions.
type Error struct {
	// Name is the tag of the logger call the error originates from.
	Name string

	// FromAssert is set on errors produced by failed assertions.
	FromAssert bool

	// Expected marks errors that are a known outcome
	// rather than a defect, see Logger.ExpectedError.
	Expected bool

	// AssociatedElement is the first Element among the
	// substitutions of the failed assertion, if any.
	AssociatedElement Element

	// MessageArray holds the assertion message with
	// the substituted values kept in their original form.
	MessageArray []MessagePart

	message string
	cause   error
}

// NewError returns an Error with the given message.
func NewError(message string) *Error {
	return &Error{message: message}
}

// Error implements the error interface.
func (e *Error) Error() string { return e.message }

// Unwrap returns the error this one was created from, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is reports assertion errors as ErrAssertionFailed.
func (e *Error) Is(target error) bool {
	return e.FromAssert && target == ErrAssertionFailed
}

// Values returns the message parts as a slice suitable for
// passing to a console, with the substituted values unchanged.
func (e *Error) Values() []interface{} {
	vs := make([]interface{}, len(e.MessageArray))
	for i, p := range e.MessageArray {
		vs[i] = p.Interface()
	}
	return vs
}

// PrepareError appends suffix to the message of err unless the message
// already contains it. An empty message is replaced by the suffix.
// Applying PrepareError more than once has no further effect.
func PrepareError(err *Error, suffix string) {
	if err == nil || suffix == "" {
		return
	}
	switch {
	case err.message == "":
		err.message = suffix
	case !strings.Contains(err.message, suffix):
		err.message += suffix
	}
}

// CreateErrorVargs returns an error built from the given values. The first
// value that is an error becomes the base: its message is kept and prefixed
// with the remaining values, joined by spaces, and ": ". Without an error
// among the values, the message is the values joined by spaces. Errors
// after the first one are treated as any other value.
func CreateErrorVargs(values ...interface{}) *Error {
	var (
		base error
		msg  strings.Builder
	)
	for _, v := range values {
		if err, ok := v.(error); ok && base == nil && !isNil(err) {
			base = err
			continue
		}
		if msg.Len() > 0 {
			msg.WriteByte(' ')
		}
		msg.WriteString(FormatValue(v))
	}

	if base == nil {
		return NewError(msg.String())
	}

	err := duplicateError(base)
	if msg.Len() > 0 {
		err.message = msg.String() + ": " + err.message
	}
	return err
}

// RethrowAsync builds an error from the given values, see CreateErrorVargs,
// and raises it through the onerror package from the package scheduler.
// It returns immediately.
func RethrowAsync(values ...interface{}) {
	err := CreateErrorVargs(values...)
	packageScheduler().Schedule(func() { onerror.Raise(err) })
}

// duplicateError returns a copy of err which can be modified
// without changing err. The copy unwraps to err.
func duplicateError(err error) *Error {
	e, ok := err.(*Error)
	if !ok {
		return &Error{message: err.Error(), cause: err}
	}
	c := *e
	c.MessageArray = append([]MessagePart(nil), e.MessageArray...)
	c.cause = e
	return &c
}

// FormatValue returns the string form of v used in error messages.
// Elements are rendered as their lower case tag name and id, tag#id.
func FormatValue(v interface{}) string {
	if el, ok := v.(Element); ok && !isNil(v) {
		s := strings.ToLower(el.TagName())
		if id := el.ID(); id != "" {
			s += "#" + id
		}
		return s
	}
	return fmt.Sprint(v)
}

// isNil reports whether v is nil or a nil value of a nillable kind.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
