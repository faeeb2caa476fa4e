// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Command bintree builds a level-order binary tree out of the values
// given on the command line, and then inspects or modifies it.
package main

import (
	"context"
	"io"
	"os"

	"github.com/datawire/dlib/derror"
	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/bintree-ng/lib/textui"
)

type subcommand struct {
	cobra.Command
	RunE func(treeOps, *cobra.Command, []string) error
}

// subcommands holds constructors rather than commands, so that each
// argparser gets its own flag storage.
var subcommands []func() subcommand

func main() {
	argparser := newArgparser(os.Stdout, os.Stderr)
	if err := argparser.ExecuteContext(context.Background()); err != nil {
		textui.Fprintf(os.Stderr, "%v: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}

func newArgparser(stdout, stderr io.Writer) *cobra.Command {
	logLevelFlag := textui.LogLevelFlag{
		Level: dlog.LogLevelInfo,
	}
	var typeFlag valueTypeFlag
	var inputFlag string

	argparser := &cobra.Command{
		Use:   "bintree {[flags]|SUBCOMMAND}",
		Short: "Build a level-order binary tree and inspect it",

		Args: cliutil.WrapPositionalArgs(cliutil.OnlySubcommands),
		RunE: cliutil.RunSubcommands,

		SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
		SilenceUsage:  true, // our FlagErrorFunc will handle it

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	argparser.SetOut(stdout)
	argparser.SetErr(stderr)
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
	argparser.PersistentFlags().Var(&logLevelFlag, "verbosity", "set the verbosity")
	argparser.PersistentFlags().Var(&typeFlag, "type", "parse values as `type` (string, int, or uint)")
	argparser.PersistentFlags().StringVar(&inputFlag, "input", "", "insert the values in the JSON array in `values.json` before any VALUE arguments")
	if err := argparser.MarkPersistentFlagFilename("input", "json"); err != nil {
		panic(err)
	}

	for _, newChild := range subcommands {
		child := newChild()
		cmd := child.Command
		runE := child.RunE
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := textui.NewLogger(stderr, logLevelFlag.Level)
			ctx = dlog.WithLogger(ctx, logger)
			ctx = dlog.WithField(ctx, "bintree.cmd", cmd.Name())
			dlog.SetFallbackLogger(logger.WithField("bintree.THIS_IS_A_BUG", true))

			grp := dgroup.NewGroup(ctx, dgroup.GroupConfig{
				EnableSignalHandling: true,
			})
			grp.Go("main", func(ctx context.Context) (err error) {
				defer func() {
					if _err := derror.PanicToError(recover()); _err != nil {
						err = _err
					}
				}()
				tree := typeFlag.NewTree()
				if inputFlag != "" {
					if err := readJSONFile(ctx, inputFlag, tree); err != nil {
						return err
					}
				}
				for _, arg := range args {
					if err := tree.Insert(ctx, arg); err != nil {
						return err
					}
				}
				dlog.Debugf(ctx, "built tree: %v nodes", tree.Len())

				cmd.SetContext(ctx)
				return runE(tree, cmd, args)
			})
			return grp.Wait()
		}
		argparser.AddCommand(&cmd)
	}

	return argparser
}
