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
		var valueFlag string
		cmd := subcommand{
			Command: cobra.Command{
				Use:   "delete --value=VALUE [VALUE...]",
				Short: "Delete a value, and draw the resulting tree",
			},
			RunE: func(tree treeOps, cmd *cobra.Command, _ []string) error {
				if err := tree.Delete(cmd.Context(), valueFlag); err != nil {
					return err
				}
				return textui.Fprintln(cmd.OutOrStdout(), tree.Render()...)
			},
		}
		cmd.Flags().StringVar(&valueFlag, "value", "", "the `value` to delete")
		if err := cmd.MarkFlagRequired("value"); err != nil {
			panic(err)
		}
		return cmd
	})
}
