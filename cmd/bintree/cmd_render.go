// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"git.lukeshu.com/bintree-ng/lib/textui"
)

func init() {
	subcommands = append(subcommands, func() subcommand {
		var deleteFlag []string
		cmd := subcommand{
			Command: cobra.Command{
				Use:   "render [flags] [VALUE...]",
				Short: "Draw the tree as ASCII art",
			},
			RunE: func(tree treeOps, cmd *cobra.Command, _ []string) error {
				ctx := cmd.Context()
				for _, val := range deleteFlag {
					if err := tree.Delete(ctx, val); err != nil {
						return err
					}
				}
				lines := tree.Render()
				dlog.Debugf(ctx, "rendered %v lines", len(lines))
				return textui.Fprintln(cmd.OutOrStdout(), lines...)
			},
		}
		cmd.Flags().StringArrayVar(&deleteFlag, "delete", nil, "delete `value` from the tree before drawing it (may be given multiple times)")
		return cmd
	})
}
