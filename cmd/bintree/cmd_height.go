// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/spf13/cobra"

	"git.lukeshu.com/bintree-ng/lib/textui"
)

func init() {
	subcommands = append(subcommands, func() subcommand {
		return subcommand{
			Command: cobra.Command{
				Use:   "height [VALUE...]",
				Short: "Report the height and size of the tree",
			},
			RunE: func(tree treeOps, cmd *cobra.Command, _ []string) error {
				_, err := textui.Fprintf(cmd.OutOrStdout(), "height: %d\nnodes: %d\n", tree.Height(), tree.Len())
				return err
			},
		}
	})
}
