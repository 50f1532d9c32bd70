// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package decor

import (
	"weak"

	"github.com/gogpu/gg"

	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/theme"
)

// Texture is a host-side handle to an uploaded raster.
type Texture any

// Renderer is the capability set a decoration needs from the host
// compositor. All rectangles are in frame coordinates in logical pixels.
type Renderer interface {
	// Upload copies r into a GPU texture.
	Upload(r *theme.Raster) (Texture, error)

	// Release frees a texture returned by Upload.
	Release(t Texture)

	// DrawTexturedQuad draws t into dst, limited to clip. orient tells how
	// the raster is turned relative to dst.
	DrawTexturedQuad(t Texture, dst, clip geom.Rect, orient theme.Orientation)

	// DrawRect fills dst with c, limited to clip.
	DrawRect(dst geom.Rect, c gg.RGBA, clip geom.Rect)

	// MarkDamaged schedules region for repaint.
	MarkDamaged(region geom.Region)
}

// Window is the host window a decoration belongs to.
type Window interface {
	Title() string
	AppID() string
	Activated() bool
	Tiled() geom.EdgeMask
	Fullscreen() bool

	// Size returns the frame size, decorations included.
	Size() geom.Size

	RequestMove()
	RequestResize(edges geom.EdgeMask)
	RequestClose()
	// RequestTile tiles the window to edges; zero restores it.
	RequestTile(edges geom.EdgeMask)
	RequestMinimize()
}

// WindowRef is a handle to a Window that does not keep it alive. It is
// resolved on every use; a failed resolution means the window is gone.
type WindowRef struct {
	resolve func() (Window, bool)
}

// WeakWindow returns a handle to w that does not keep w alive.
func WeakWindow[T any, PT interface {
	*T
	Window
}](w PT) WindowRef {
	p := weak.Make((*T)(w))
	return WindowRef{resolve: func() (Window, bool) {
		v := p.Value()
		if v == nil {
			return nil, false
		}
		return PT(v), true
	}}
}

// StrongWindow returns a handle that always resolves to w, for hosts
// that manage window lifetime themselves.
func StrongWindow(w Window) WindowRef {
	return WindowRef{resolve: func() (Window, bool) { return w, w != nil }}
}

// Get resolves the handle.
func (r WindowRef) Get() (Window, bool) {
	if r.resolve == nil {
		return nil, false
	}
	return r.resolve()
}

// WindowState is the part of the window state that affects margins.
type WindowState struct {
	Fullscreen bool
	Tiled      geom.EdgeMask
}
