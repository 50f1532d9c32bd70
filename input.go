// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package decor

import (
	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/layout"
)

func (d *Decoration) interactive() bool {
	return !d.detached && !d.state.Fullscreen
}

// PointerEnter is called when the pointer enters the frame at (x, y).
func (d *Decoration) PointerEnter(x, y float64) {
	d.PointerMove(x, y)
}

// PointerMove is called for pointer motion inside the frame.
func (d *Decoration) PointerMove(x, y float64) {
	if d.interactive() {
		d.dispatch(d.lay.HandleMotion(x, y))
	}
}

// PointerLeave is called when the pointer leaves the frame or input focus
// is lost. Hover and any press in progress are forgotten.
func (d *Decoration) PointerLeave() {
	if !d.detached {
		d.lay.HandleFocusLost()
	}
}

// PointerButton is called for a button press or release at the last
// pointer position.
func (d *Decoration) PointerButton(pressed bool) {
	if d.interactive() {
		d.dispatch(d.lay.HandlePress(pressed))
	}
}

// TouchDown starts tracking finger id. Further fingers are ignored until
// it is lifted.
func (d *Decoration) TouchDown(id int32, x, y float64) {
	if d.touch.active || !d.interactive() {
		return
	}
	d.touch = touchState{active: true, id: id}
	d.PointerMove(x, y)
	d.PointerButton(true)
}

// TouchMove moves the tracked finger.
func (d *Decoration) TouchMove(id int32, x, y float64) {
	if d.touch.active && d.touch.id == id {
		d.PointerMove(x, y)
	}
}

// TouchUp lifts the tracked finger.
func (d *Decoration) TouchUp(id int32) {
	if !d.touch.active || d.touch.id != id {
		return
	}
	d.touch = touchState{}
	d.PointerButton(false)
	d.PointerLeave()
}

// dispatch forwards an action to the window. A gone window is skipped.
func (d *Decoration) dispatch(resp layout.ActionResponse) {
	if resp.Action == layout.ActionNone {
		return
	}
	win, ok := d.ref.Get()
	if !ok {
		return
	}
	Logger().Debug("decor: action", "action", resp.Action, "edges", resp.Edges)
	switch resp.Action {
	case layout.ActionMove:
		win.RequestMove()
	case layout.ActionResize:
		win.RequestResize(resp.Edges)
	case layout.ActionClose:
		win.RequestClose()
	case layout.ActionToggleMaximize:
		if win.Tiled() != 0 {
			win.RequestTile(0)
		} else {
			win.RequestTile(geom.EdgeMaskAll)
		}
	case layout.ActionMinimize:
		win.RequestMinimize()
	}
}
