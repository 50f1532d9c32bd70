// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/decor/internal/dlog"
)

// Watch reloads the file at path whenever it changes and passes the new
// store to fn. Reload errors are passed to fn as well; the caller keeps
// its previous store in that case. Watch blocks until ctx is done.
//
// The directory is watched rather than the file so that editors that
// replace the file on save are followed.
func Watch(ctx context.Context, path string, fn func(*Store, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer func() { _ = w.Close() }()

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			dlog.L().Debug("decor: config changed", "path", path, "op", ev.Op.String())
			s, err := Load(path)
			fn(s, err)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			dlog.L().Warn("decor: config watcher", "path", path, "err", err)
		}
	}
}
