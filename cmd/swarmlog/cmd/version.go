// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/ethersphere/swarmlog"
	"github.com/spf13/cobra"
)

const optionNameCommitTime = "commit-time"

func (c *command) initVersionCmd() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(swarmlog.Version)
			if c.config.GetBool(optionNameCommitTime) {
				cmd.Println(swarmlog.CommitTime())
			}
		},
	}

	cmd.Flags().Bool(optionNameCommitTime, false, "also print the unix time of the build commit")

	c.root.AddCommand(cmd)
}
