// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout partitions a decoration frame into placed areas and turns
// pointer input on those areas into window actions.
//
// Areas live on two layers. The background layer (corners, border
// segments, accent segments) tiles the ring between the frame and the
// client content and defines the input region. The foreground layer
// (title, ellipsis, icon, buttons) sits on top of it. Within a layer,
// areas never overlap.
//
// The arrangement of foreground elements comes from a layout string such
// as
//
//	p icon p title | minimize maximize close p
//
// where "-" moves on to the next edge (top, left, bottom, right), "|" is a
// flexible spacer and "a" toggles an accent run.
package layout
