// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package decor

import "errors"

var (
	// ErrDetached is returned by operations on a decoration after Detach.
	ErrDetached = errors.New("decor: decoration detached")

	// ErrWindowGone is returned when the window behind a WindowRef no
	// longer exists.
	ErrWindowGone = errors.New("decor: window gone")
)
