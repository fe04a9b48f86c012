// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/ethersphere/swarmlog/pkg/log"
	"github.com/spf13/cobra"
)

func (c *command) initAssertCmd() {
	cmd := &cobra.Command{
		Use:   "assert [VALUE...]",
		Short: "Run a failing assertion and print the resulting error",
		Long: `Run a failing assertion and print the resulting error.

The message template may contain %s placeholders which are replaced by
the values in order. A value written as <tag#id> stands for an element.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := c.newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			l, err := s.namedLogger(c.config.GetString(optionNameLogger))
			if err != nil {
				return err
			}

			e := failAssertion(l, c.config.GetString(optionNameMessage), parseValues(args))
			if e == nil {
				return nil
			}
			return writeAssertionError(cmd.OutOrStdout(), e)
		},
	}

	cmd.Flags().String(optionNameLogger, log.DevLoggerName, "logger name: user, dev")
	cmd.Flags().String(optionNameMessage, "", "assertion message template")

	c.root.AddCommand(cmd)
}

func failAssertion(l *log.Logger, message string, values []interface{}) (e *log.Error) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(*log.Error)
			if !ok {
				panic(r)
			}
			e = err
		}
	}()
	l.Assert(false, message, values...)
	return nil
}

func writeAssertionError(w io.Writer, e *log.Error) (err error) {
	p := func(format string, a ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, a...)
	}

	p("message: %s\n", e.Error())
	for _, part := range e.MessageArray {
		if part.IsValue {
			p("value: %s\n", log.FormatValue(part.Value))
		} else {
			p("text: %s\n", part.Text)
		}
	}
	if e.AssociatedElement != nil {
		p("element: %s\n", log.FormatValue(e.AssociatedElement))
	}
	return err
}

// element is an element given on the command line as <tag#id>.
type element struct {
	tag string
	id  string
}

func (e element) TagName() string { return e.tag }
func (e element) ID() string      { return e.id }

// parseValues converts command line arguments to logger values.
func parseValues(args []string) []interface{} {
	values := make([]interface{}, 0, len(args))
	for _, a := range args {
		if strings.HasPrefix(a, "<") && strings.HasSuffix(a, ">") && len(a) > 2 {
			tag, id, _ := strings.Cut(a[1:len(a)-1], "#")
			values = append(values, element{tag: tag, id: id})
			continue
		}
		values = append(values, a)
	}
	return values
}
