// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/spf13/cobra"
)

func init() {
	subcommands = append(subcommands, func() subcommand {
		return subcommand{
			Command: cobra.Command{
				Use:   "dump [VALUE...]",
				Short: "Dump the raw node structure of the tree (for debugging)",
			},
			RunE: func(tree treeOps, cmd *cobra.Command, _ []string) error {
				tree.Dump(cmd.OutOrStdout())
				return nil
			},
		}
	})
}
