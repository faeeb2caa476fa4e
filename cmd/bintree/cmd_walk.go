// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/spf13/cobra"
)

func init() {
	subcommands = append(subcommands, func() subcommand {
		order := inOrder
		var jsonFlag bool
		cmd := subcommand{
			Command: cobra.Command{
				Use:   "walk [flags] [VALUE...]",
				Short: "List the values of the tree in depth-first order",
			},
			RunE: func(tree treeOps, cmd *cobra.Command, _ []string) error {
				vals := tree.Walk(order)
				if jsonFlag {
					return writeJSON(cmd.OutOrStdout(), vals, lowmemjson.ReEncoderConfig{
						Indent:                "\t",
						CompactIfUnder:        80, //nolint:gomnd // This is what looks nice.
						ForceTrailingNewlines: true,
					})
				}
				for _, val := range vals {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), val); err != nil {
						return err
					}
				}
				return nil
			},
		}
		cmd.Flags().Var(&order, "order", "traversal `order` (pre, in, or post)")
		cmd.Flags().BoolVar(&jsonFlag, "json", false, "write the values as a JSON array")
		return cmd
	})
}
