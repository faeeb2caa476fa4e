// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package bintree

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched (via errors.Is) by the error that Delete
// returns when no node holds the requested value.
var ErrNotFound = errors.New("node does not exist")

// NotFoundError is the error returned by Delete when no node holds
// Value.
type NotFoundError[T comparable] struct {
	Value T
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("bintree: value %v: %v", e.Value, ErrNotFound)
}

func (e *NotFoundError[T]) Unwrap() error {
	return ErrNotFound
}
