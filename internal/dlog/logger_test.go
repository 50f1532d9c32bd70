// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsSilent(t *testing.T) {
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		assert.False(t, L().Enabled(context.Background(), level))
	}
}

func TestSetAndReset(t *testing.T) {
	orig := L()
	t.Cleanup(func() { Set(orig) })

	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	L().Debug("corner cache rebuilt", "radius", 8)
	assert.Contains(t, buf.String(), "corner cache rebuilt")

	Set(nil)
	assert.False(t, L().Enabled(context.Background(), slog.LevelWarn))
}
