// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"context"
	"io"
	"os"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"
)

func readJSONFile(ctx context.Context, filename string, tree treeOps) error {
	fh, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = fh.Close()
	}()
	ctx = dlog.WithField(ctx, "bintree.input", filename)
	dlog.Debug(ctx, "reading values...")
	if err := tree.LoadJSON(ctx, bufio.NewReader(fh)); err != nil {
		return err
	}
	dlog.Debugf(ctx, "... done reading: %v nodes", tree.Len())
	return nil
}

func writeJSON(w io.Writer, obj any, cfg lowmemjson.ReEncoderConfig) (err error) {
	buffer := bufio.NewWriter(w)
	defer func() {
		if _err := buffer.Flush(); err == nil && _err != nil {
			err = _err
		}
	}()
	return lowmemjson.NewEncoder(lowmemjson.NewReEncoder(buffer, cfg)).Encode(obj)
}
