// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ethersphere/swarmlog/cmd/swarmlog/cmd"
)

func TestEmitCmd(t *testing.T) {
	for _, tc := range []struct {
		name       string
		args       []string
		wantPrefix string
		wantSuffix string
	}{
		{
			name:       "user warn",
			args:       []string{"--development", "--logger", "user", "--severity", "warn", "img", "hello", "world"},
			wantPrefix: "WARN ",
			wantSuffix: " [img] hello world\n",
		},
		{
			name:       "dev fine",
			args:       []string{"--log", "3", "--severity", "fine", "amp-bind", "ready"},
			wantSuffix: " [amp-bind] ready\n",
		},
		{
			name:       "numeric severity",
			args:       []string{"--log", "2", "--severity", "2", "amp-bind", "slow"},
			wantPrefix: "WARN ",
			wantSuffix: " [amp-bind] slow\n",
		},
		{
			name:       "dev error",
			args:       []string{"--log", "2", "--severity", "error", "amp-bind", "failed"},
			wantPrefix: "ERROR ",
			wantSuffix: " [amp-bind] failed\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var outputBuf, errorBuf bytes.Buffer
			if err := newCommand(t,
				cmd.WithArgs(append([]string{"emit"}, tc.args...)...),
				cmd.WithOutput(&outputBuf),
				cmd.WithErrorOutput(&errorBuf),
			).Execute(); err != nil {
				t.Fatal(err)
			}

			got := outputBuf.String()
			if !strings.HasPrefix(got, tc.wantPrefix) || !strings.HasSuffix(got, tc.wantSuffix) {
				t.Errorf("got output %q, want prefix %q and suffix %q", got, tc.wantPrefix, tc.wantSuffix)
			}
			if errorBuf.Len() != 0 {
				t.Errorf("got error output %q, want none", errorBuf.String())
			}
		})
	}
}

func TestEmitCmdDropped(t *testing.T) {
	var outputBuf, errorBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("emit", "--log", "2", "--severity", "fine", "tag", "dropped"),
		cmd.WithOutput(&outputBuf),
		cmd.WithErrorOutput(&errorBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	if outputBuf.Len() != 0 || errorBuf.Len() != 0 {
		t.Errorf("got output %q and error output %q, want none", outputBuf.String(), errorBuf.String())
	}
}

func TestEmitCmdSuppressedError(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "dev",
			args: []string{"--logger", "dev", "tag", "boom"},
			want: []string{`msg="uncaught error"`, "error=boom", "tag=tag", "user_error=false", "expected=false"},
		},
		{
			name: "user",
			args: []string{"--logger", "user", "tag", "boom"},
			want: []string{`msg="uncaught error"`, "tag=tag", "user_error=true", "expected=false"},
		},
		{
			name: "expected",
			args: []string{"--logger", "dev", "--expected", "tag", "boom"},
			want: []string{`msg="uncaught error"`, "expected=true"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var outputBuf, errorBuf bytes.Buffer
			if err := newCommand(t,
				cmd.WithArgs(append([]string{"emit", "--log", "0", "--severity", "error"}, tc.args...)...),
				cmd.WithOutput(&outputBuf),
				cmd.WithErrorOutput(&errorBuf),
			).Execute(); err != nil {
				t.Fatal(err)
			}

			if outputBuf.Len() != 0 {
				t.Errorf("got output %q, want none", outputBuf.String())
			}
			got := errorBuf.String()
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Errorf("error output %q does not contain %q", got, w)
				}
			}
		})
	}
}

func TestEmitCmdMetrics(t *testing.T) {
	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("emit", "--log", "1", "--logger", "user", "--severity", "warn", "--metrics", "tag", "careful"),
		cmd.WithOutput(&outputBuf),
		cmd.WithErrorOutput(new(bytes.Buffer)),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	got := outputBuf.String()
	for _, w := range []string{
		"[tag] careful\n",
		`swarmlog_log_warn_count{logger="user"} 1`,
		`swarmlog_log_error_count{logger="user"} 0`,
		`swarmlog_info{mode="production",version="`,
	} {
		if !strings.Contains(got, w) {
			t.Errorf("output %q does not contain %q", got, w)
		}
	}
}

func TestEmitCmdErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
	}{
		{name: "no tag"},
		{name: "unknown logger", args: []string{"--logger", "ops", "tag"}},
		{name: "unknown severity", args: []string{"--severity", "panic", "tag"}},
		{name: "severity none", args: []string{"--severity", "none", "tag"}},
		{name: "severity all", args: []string{"--severity", "all", "tag"}},
		{name: "unknown console", args: []string{"--console", "html", "tag"}},
		{name: "unknown verbosity", args: []string{"--verbosity", "loud", "tag"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := newCommand(t,
				cmd.WithArgs(append([]string{"emit"}, tc.args...)...),
				cmd.WithOutput(new(bytes.Buffer)),
				cmd.WithErrorOutput(new(bytes.Buffer)),
			).Execute()
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestEmitCmdLogrusConsole(t *testing.T) {
	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("emit", "--console", "logrus", "--local-dev", "--severity", "info", "tag", "hello"),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	got := outputBuf.String()
	for _, w := range []string{"level=info", "[tag] hello"} {
		if !strings.Contains(got, w) {
			t.Errorf("output %q does not contain %q", got, w)
		}
	}
}

func TestEmitCmdZapConsole(t *testing.T) {
	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("emit", "--console", "zap", "--log", "1", "--logger", "user", "--severity", "warn", "tag", "hello"),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	got := outputBuf.String()
	for _, w := range []string{"\tWARN\t", "[tag] hello\n"} {
		if !strings.Contains(got, w) {
			t.Errorf("output %q does not contain %q", got, w)
		}
	}
}

func TestEmitCmdLogrusConsoleFine(t *testing.T) {
	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("emit", "--console", "logrus", "--log", "3", "--severity", "fine", "tag", "details"),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	got := outputBuf.String()
	for _, w := range []string{"level=debug", "[tag] details"} {
		if !strings.Contains(got, w) {
			t.Errorf("output %q does not contain %q", got, w)
		}
	}
}
