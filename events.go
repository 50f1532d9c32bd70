// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package decor

import (
	"fmt"

	"github.com/gogpu/decor/geom"
)

// EventKind identifies a window change.
type EventKind uint8

const (
	EventTitleChanged EventKind = iota
	EventAppIDChanged
	EventGeometryChanged
	EventActivationChanged
	EventFullscreenChanged
	EventTiledChanged
)

func (k EventKind) String() string {
	switch k {
	case EventTitleChanged:
		return "title"
	case EventAppIDChanged:
		return "app-id"
	case EventGeometryChanged:
		return "geometry"
	case EventActivationChanged:
		return "activation"
	case EventFullscreenChanged:
		return "fullscreen"
	case EventTiledChanged:
		return "tiled"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// WindowEvent notifies a decoration of a window change. Size is only
// used by EventGeometryChanged.
type WindowEvent struct {
	Kind EventKind
	Size geom.Size
}

// HandleEvent applies a window change. Layout changes take effect before
// it returns; rasters are rebuilt on the next Render.
func (d *Decoration) HandleEvent(ev WindowEvent) {
	if d.detached {
		return
	}
	win, ok := d.ref.Get()
	if !ok {
		Logger().Debug("decor: event for a gone window", "event", ev.Kind)
		return
	}
	before := d.InputRegion()
	switch ev.Kind {
	case EventTitleChanged:
		title := titleText(win)
		if title == d.title {
			return
		}
		d.title = title
		d.titleDirty = true
		d.relayout()
	case EventAppIDChanged:
		if id := win.AppID(); id != d.appID {
			d.appID = id
			d.iconDirty = true
		}
	case EventGeometryChanged:
		d.size = ev.Size
		d.relayout()
	case EventActivationChanged:
		d.active = win.Activated()
	case EventFullscreenChanged:
		d.state.Fullscreen = win.Fullscreen()
		d.relayout()
	case EventTiledChanged:
		d.state.Tiled = win.Tiled()
	}
	d.damageFrame(before)
}
