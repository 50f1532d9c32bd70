// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"math"

	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/theme"
)

// Action is a window management request produced by pointer input.
type Action uint8

const (
	ActionNone Action = iota
	ActionMove
	ActionResize
	ActionClose
	ActionToggleMaximize
	ActionMinimize
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionResize:
		return "resize"
	case ActionClose:
		return "close"
	case ActionToggleMaximize:
		return "toggle-maximize"
	case ActionMinimize:
		return "minimize"
	default:
		return "none"
	}
}

// ActionResponse is the outcome of one input event. Edges is only set for
// ActionResize.
type ActionResponse struct {
	Action Action
	Edges  geom.EdgeMask
}

// DragThreshold is the distance in logical pixels the pointer must travel
// while pressed before a move or resize starts.
const DragThreshold = 3.0

type pointer struct {
	at      geom.Point
	inside  bool
	hovered *ButtonArea

	pressed bool
	pressAt geom.Point
	target  Area
	dragged bool
}

// SetDamageHandler registers fn to receive the rectangles of buttons whose
// hover state changed.
func (l *Layout) SetDamageHandler(fn func(geom.Rect)) {
	l.onDamage = fn
}

func (l *Layout) damage(r geom.Rect) {
	if l.onDamage != nil && !r.Empty() {
		l.onDamage(r)
	}
}

// Hovered returns the button under the pointer, if any.
func (l *Layout) Hovered() (*ButtonArea, bool) {
	return l.ptr.hovered, l.ptr.hovered != nil
}

// IsHovered reports whether a button of the given kind is hovered.
func (l *Layout) IsHovered(kind theme.ButtonKind) bool {
	return l.ptr.hovered != nil && l.ptr.hovered.Kind == kind
}

func (l *Layout) setHover(b *ButtonArea) {
	old := l.ptr.hovered
	if old == b {
		return
	}
	l.ptr.hovered = b
	if old != nil {
		l.damage(old.Rect)
	}
	if b != nil {
		l.damage(b.Rect)
	}
}

// refreshHover re-resolves the hovered button after the areas changed.
func (l *Layout) refreshHover() {
	if !l.ptr.inside {
		l.ptr.hovered = nil
		return
	}
	b, _ := l.HitTest(l.ptr.at.X, l.ptr.at.Y).(*ButtonArea)
	if old := l.ptr.hovered; old != nil && b != nil && old.Kind == b.Kind && old.Rect == b.Rect {
		l.ptr.hovered = b
		return
	}
	l.ptr.hovered = nil
	l.setHover(b)
}

// ResizeEdges returns the edges a drag starting at (x, y) would resize.
// The sensitive strip is as wide as the thinnest non-zero border.
func (l *Layout) ResizeEdges(x, y float64) geom.EdgeMask {
	strip := 0
	for _, v := range []int{l.border.Left, l.border.Top, l.border.Right, l.border.Bottom} {
		if v > 0 && (strip == 0 || v < strip) {
			strip = v
		}
	}
	if strip == 0 {
		return 0
	}
	s := float64(strip)
	w, h := float64(l.size.W), float64(l.size.H)
	var m geom.EdgeMask
	if x < s {
		m |= geom.EdgeMaskLeft
	} else if x >= w-s {
		m |= geom.EdgeMaskRight
	}
	if y < s {
		m |= geom.EdgeMaskTop
	} else if y >= h-s {
		m |= geom.EdgeMaskBottom
	}
	return m
}

// HandleMotion records the pointer position. It starts a move or resize
// once a press has travelled past DragThreshold.
func (l *Layout) HandleMotion(x, y float64) ActionResponse {
	l.ptr.at = geom.Pt(x, y)
	l.ptr.inside = true
	b, _ := l.HitTest(x, y).(*ButtonArea)
	l.setHover(b)

	if !l.ptr.pressed || l.ptr.dragged {
		return ActionResponse{}
	}
	d := l.ptr.at.Sub(l.ptr.pressAt)
	if math.Hypot(d.X, d.Y) < DragThreshold {
		return ActionResponse{}
	}
	l.ptr.dragged = true
	if _, ok := l.ptr.target.(*ButtonArea); ok {
		return ActionResponse{}
	}
	if edges := l.ResizeEdges(l.ptr.pressAt.X, l.ptr.pressAt.Y); edges != 0 {
		return ActionResponse{Action: ActionResize, Edges: edges}
	}
	return ActionResponse{Action: ActionMove}
}

// HandlePress processes a button press or release at the last motion
// position. A press never produces an action by itself; a release on the
// same button that was pressed produces that button's action.
func (l *Layout) HandlePress(pressed bool) ActionResponse {
	if pressed {
		if !l.ptr.inside {
			return ActionResponse{}
		}
		target := l.HitTest(l.ptr.at.X, l.ptr.at.Y)
		if target == nil {
			return ActionResponse{}
		}
		l.ptr.pressed = true
		l.ptr.pressAt = l.ptr.at
		l.ptr.target = target
		l.ptr.dragged = false
		return ActionResponse{}
	}

	if !l.ptr.pressed {
		return ActionResponse{}
	}
	target, dragged := l.ptr.target, l.ptr.dragged
	l.resetPress()
	if dragged {
		return ActionResponse{}
	}
	pb, ok := target.(*ButtonArea)
	if !ok {
		return ActionResponse{}
	}
	cur, ok := l.HitTest(l.ptr.at.X, l.ptr.at.Y).(*ButtonArea)
	if !ok || cur.Kind != pb.Kind {
		return ActionResponse{}
	}
	switch pb.Kind {
	case theme.ButtonClose:
		return ActionResponse{Action: ActionClose}
	case theme.ButtonMaximize:
		return ActionResponse{Action: ActionToggleMaximize}
	default:
		return ActionResponse{Action: ActionMinimize}
	}
}

// HandleFocusLost forgets hover and any press in progress without
// producing an action.
func (l *Layout) HandleFocusLost() {
	l.ptr.inside = false
	l.setHover(nil)
	l.resetPress()
}

func (l *Layout) resetPress() {
	l.ptr.pressed = false
	l.ptr.dragged = false
	l.ptr.target = nil
}
