// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/ethersphere/swarmlog/pkg/log"
	"github.com/spf13/cobra"
)

func (c *command) initEmitCmd() {
	cmd := &cobra.Command{
		Use:   "emit TAG [VALUE...]",
		Short: "Emit a message through the user or dev logger",
		Long: `Emit a message through the user or dev logger.

Messages below the effective level of the logger are dropped. Errors
which are not emitted are re-thrown as uncaught errors once the
command is done.`,
		Args: cobra.MinimumNArgs(1),
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

			tag, values := args[0], parseValues(args[1:])
			severity := c.config.GetString(optionNameSeverity)
			level, err := log.ParseVerbosityLevel(severity)
			if err != nil {
				return fmt.Errorf("parse severity %q: %w", severity, err)
			}
			switch level {
			case log.VerbosityFine:
				l.Fine(tag, values...)
			case log.VerbosityInfo:
				l.Info(tag, values...)
			case log.VerbosityWarning:
				l.Warn(tag, values...)
			case log.VerbosityError:
				if c.config.GetBool(optionNameExpected) {
					l.ExpectedError(tag, values...)
				} else {
					l.Error(tag, values...)
				}
			default:
				return fmt.Errorf("severity %q is not a message severity", severity)
			}

			if !c.config.GetBool(optionNameMetrics) {
				return nil
			}
			// deliver pending re-throws before printing the metrics
			s.scheduler.flush()
			s.metrics.Register(l)
			return s.metrics.WriteText(cmd.OutOrStdout())
		},
	}

	cmd.Flags().String(optionNameLogger, log.DevLoggerName, "logger name: user, dev")
	cmd.Flags().String(optionNameSeverity, "info", "message severity: fine, info, warn, error or 1-4")
	cmd.Flags().Bool(optionNameExpected, false, "mark a suppressed error as expected")
	cmd.Flags().Bool(optionNameMetrics, false, "print the logger metrics after emitting")

	c.root.AddCommand(cmd)
}
