// Copyright 2024 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ethersphere/swarmlog/pkg/log"
	"github.com/google/go-cmp/cmp"
)

func TestAssertTruthy(t *testing.T) {
	t.Parallel()

	// Assertions are not silenced by the logger level.
	l := log.NewLogger(fixedLevel(log.VerbosityNone))

	ptr := new(int)
	for _, v := range []interface{}{
		true,
		1,
		-1,
		uint8(3),
		0.5,
		"x",
		ptr,
		[]int{},
		map[string]int{},
		struct{}{},
		element{tag: "div"},
	} {
		if got := l.Assert(v, "must not fail"); !cmp.Equal(got, v, cmp.AllowUnexported(element{})) {
			t.Errorf("Assert(%#v): got %#v, want the same value", v, got)
		}
	}
}

func TestAssertFalsy(t *testing.T) {
	t.Parallel()

	l := log.NewLogger(fixedLevel(log.VerbosityFine))

	var nilMap map[string]int
	for _, v := range []interface{}{
		nil,
		false,
		0,
		0.0,
		math.NaN(),
		"",
		(*int)(nil),
		nilMap,
	} {
		v := v
		err := mustPanic(t, func() { l.Assert(v, "") })
		if got, want := err.Error(), "Assertion failed"; got != want {
			t.Errorf("Assert(%#v): got message %q, want %q", v, got, want)
		}
	}
}

func TestAssertTemplate(t *testing.T) {
	t.Parallel()

	l := log.NewLogger(fixedLevel(log.VerbosityFine))
	x := element{tag: "DIV", id: "main"}
	y := 7

	err := mustPanic(t, func() { l.Assert(false, "a %s b %s c", x, y) })

	if got, want := err.Error(), "a div#main b 7 c"; got != want {
		t.Errorf("got message %q, want %q", got, want)
	}
	want := []log.MessagePart{
		{Text: "a"},
		{Value: x, IsValue: true},
		{Text: "b"},
		{Value: y, IsValue: true},
		{Text: "c"},
	}
	if diff := cmp.Diff(want, err.MessageArray, cmp.AllowUnexported(element{})); diff != "" {
		t.Errorf("message array mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]interface{}{"a", x, "b", y, "c"}, err.Values(), cmp.AllowUnexported(element{})); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if !err.FromAssert {
		t.Error("FromAssert is not set")
	}
	if !errors.Is(err, log.ErrAssertionFailed) {
		t.Error("error is not an assertion failure")
	}
	if err.AssociatedElement != x {
		t.Errorf("got associated element %v, want %v", err.AssociatedElement, x)
	}
}

func TestAssertTemplateEdgeCases(t *testing.T) {
	t.Parallel()

	l := log.NewLogger(fixedLevel(log.VerbosityFine))

	testCases := []struct {
		name    string
		message string
		subs    []interface{}
		want    string
		parts   []log.MessagePart
	}{
		{
			name:    "extra substitutions are ignored",
			message: "only %s",
			subs:    []interface{}{1, 2},
			want:    "only 1",
			parts:   []log.MessagePart{{Text: "only"}, {Value: 1, IsValue: true}},
		},
		{
			name:    "missing substitutions keep the placeholder",
			message: "%s and %s",
			subs:    []interface{}{1},
			want:    "1 and %s",
			parts:   []log.MessagePart{{Value: 1, IsValue: true}, {Text: "and %s"}},
		},
		{
			name:    "no placeholders",
			message: "plain",
			subs:    []interface{}{1},
			want:    "plain",
			parts:   []log.MessagePart{{Text: "plain"}},
		},
		{
			name:    "adjacent placeholders",
			message: "%s%s",
			subs:    []interface{}{"a", nil},
			want:    "a<nil>",
			parts:   []log.MessagePart{{Value: "a", IsValue: true}, {Value: nil, IsValue: true}},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := mustPanic(t, func() { l.Assert(false, tc.message, tc.subs...) })
			if got := err.Error(); got != tc.want {
				t.Errorf("got message %q, want %q", got, tc.want)
			}
			if diff := cmp.Diff(tc.parts, err.MessageArray); diff != "" {
				t.Errorf("message array mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAssertFirstElement(t *testing.T) {
	t.Parallel()

	l := log.NewLogger(fixedLevel(log.VerbosityFine))
	first := element{tag: "img"}
	second := element{tag: "span", id: "s"}

	err := mustPanic(t, func() { l.Assert(0, "%s %s %s", "text", first, second) })

	if err.AssociatedElement != first {
		t.Errorf("got associated element %v, want %v", err.AssociatedElement, first)
	}
	if got, want := err.Error(), "text img span#s"; got != want {
		t.Errorf("got message %q, want %q", got, want)
	}
}

func TestAssertSuffix(t *testing.T) {
	t.Parallel()

	l := log.NewLogger(fixedLevel(log.VerbosityNone), log.WithSuffix(log.UserErrorSentinel))

	err := mustPanic(t, func() { l.Assert(false, "broken %s", "markup") })

	if got, want := err.Error(), "broken markup"+log.UserErrorSentinel; got != want {
		t.Errorf("got message %q, want %q", got, want)
	}
	if !log.IsUserErrorMessage(err.Error()) {
		t.Error("assertion error is not a user error")
	}
}

func TestAssertTyped(t *testing.T) {
	t.Parallel()

	l := log.NewLogger(fixedLevel(log.VerbosityFine))

	if got := l.AssertString("value", ""); got != "value" {
		t.Errorf("AssertString: got %q, want %q", got, "value")
	}
	if got := l.AssertNumber(int8(3), ""); got != 3 {
		t.Errorf("AssertNumber: got %v, want 3", got)
	}
	if got := l.AssertNumber(0.0, ""); got != 0 {
		t.Errorf("AssertNumber: got %v, want 0", got)
	}
	if got := l.AssertBoolean(false, ""); got {
		t.Errorf("AssertBoolean: got %t, want false", got)
	}
	el := element{tag: "p"}
	if got := l.AssertElement(el, ""); got != el {
		t.Errorf("AssertElement: got %v, want %v", got, el)
	}

	testCases := []struct {
		name string
		f    func()
		want string
	}{
		{"string", func() { l.AssertString(3, "") }, "String expected: 3"},
		{"string custom", func() { l.AssertString(nil, "Bad src") }, "Bad src: <nil>"},
		{"number", func() { l.AssertNumber("3", "") }, "Number expected: 3"},
		{"boolean", func() { l.AssertBoolean(1, "") }, "Boolean expected: 1"},
		{"element", func() { l.AssertElement("div", "") }, "Element expected: div"},
		{"element nil", func() { l.AssertElement(nil, "") }, "Element expected: <nil>"},
	}
	for _, tc := range testCases {
		if got := mustPanic(t, tc.f).Error(); got != tc.want {
			t.Errorf("%s: got message %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAssertEnumValue(t *testing.T) {
	t.Parallel()

	l := log.NewLogger(fixedLevel(log.VerbosityFine))
	color := map[string]int{"A": 1, "B": 2}

	if got := log.AssertEnumValue(l, color, 2, "Color"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}

	err := mustPanic(t, func() { log.AssertEnumValue(l, color, 3, "Color") })
	if msg := err.Error(); !strings.Contains(msg, "Color") || !strings.Contains(msg, "3") {
		t.Errorf("message %q does not name the enum and the value", msg)
	}
	if got, want := err.Error(), `Unknown Color value: "3"`; got != want {
		t.Errorf("got message %q, want %q", got, want)
	}

	err = mustPanic(t, func() { log.AssertEnumValue(l, map[string]string{"X": "x"}, "y", "") })
	if got, want := err.Error(), `Unknown enum value: "y"`; got != want {
		t.Errorf("got message %q, want %q", got, want)
	}
}

func TestGuard(t *testing.T) {
	t.Parallel()

	l := log.NewLogger(fixedLevel(log.VerbosityFine))

	if got := log.Guard(l, "ok", "unused"); got != "ok" {
		t.Errorf("got %q, want %q", got, "ok")
	}
	err := mustPanic(t, func() { log.Guard(l, 0, "empty %s", "queue") })
	if got, want := err.Error(), "empty queue"; got != want {
		t.Errorf("got message %q, want %q", got, want)
	}
}
