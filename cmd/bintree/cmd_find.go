// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"git.lukeshu.com/bintree-ng/lib/textui"
)

func init() {
	subcommands = append(subcommands, func() subcommand {
		var valueFlag string
		cmd := subcommand{
			Command: cobra.Command{
				Use:   "find --value=VALUE [VALUE...]",
				Short: "Locate a value, and draw the subtree rooted at it",
			},
			RunE: func(tree treeOps, cmd *cobra.Command, _ []string) error {
				lines, err := tree.Find(cmd.Context(), valueFlag)
				if err != nil {
					return err
				}
				if lines == nil {
					return fmt.Errorf("value %q: not found", valueFlag)
				}
				return textui.Fprintln(cmd.OutOrStdout(), lines...)
			},
		}
		cmd.Flags().StringVar(&valueFlag, "value", "", "the `value` to look for")
		if err := cmd.MarkFlagRequired("value"); err != nil {
			panic(err)
		}
		return cmd
	})
}
