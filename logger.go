// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package decor

import (
	"log/slog"

	"github.com/gogpu/decor/internal/dlog"
)

// SetLogger configures the logger for decor and all its sub-packages.
// By default, decor produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Log levels used by decor:
//   - [slog.LevelDebug]: layout passes and raster regeneration
//   - [slog.LevelWarn]: skipped layout tokens, font and icon fallbacks,
//     failing theme matchers
//
// Example:
//
//	decor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	dlog.Set(l)
}

// Logger returns the current logger used by decor.
func Logger() *slog.Logger {
	return dlog.L()
}
