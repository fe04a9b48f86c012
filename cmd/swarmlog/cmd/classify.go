// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ethersphere/swarmlog/pkg/log"
	"github.com/spf13/cobra"
)

func (c *command) initClassifyCmd() {
	c.root.AddCommand(&cobra.Command{
		Use:   "classify [MESSAGE...]",
		Short: "Tell user errors from internal ones",
		Long: `Tell user errors from internal ones.

Prints "user" for every message which carries the user error marker and
"internal" for any other. Messages are read one per line from the
standard input if none are given as arguments.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			w := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, m := range args {
					if err := classify(w, m); err != nil {
						return err
					}
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if err := classify(w, scanner.Text()); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	})
}

func classify(w io.Writer, message string) (err error) {
	class := "internal"
	if log.IsUserErrorMessage(message) {
		class = "user"
	}
	_, err = fmt.Fprintln(w, class)
	return err
}
