// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/ethersphere/swarmlog/pkg/mode"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

type levelsReport struct {
	Mode mode.Flags `json:"mode" yaml:"mode"`
	User string     `json:"user" yaml:"user"`
	Dev  string     `json:"dev" yaml:"dev"`
}

func (c *command) initLevelsCmd() {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print the effective levels of the user and dev loggers",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := c.newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			report := levelsReport{
				Mode: s.resolver.Mode(),
				User: s.loggers.User().Level().String(),
				Dev:  s.loggers.Dev().Level().String(),
			}

			var out []byte
			switch o := c.config.GetString(optionNameOutput); o {
			case "text":
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "user: %s\ndev: %s\n", report.User, report.Dev)
				return err
			case "yaml":
				out, err = yaml.Marshal(report)
			case "json":
				out, err = json.MarshalIndent(report, "", "  ")
				out = append(out, '\n')
			default:
				return fmt.Errorf("unknown output format %q", o)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().String(optionNameOutput, "text", "output format: text, yaml, json")

	c.root.AddCommand(cmd)
}
