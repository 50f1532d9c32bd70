// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"fmt"
	"sync"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/geom"
)

// Request is one window management request made through a Window.
type Request struct {
	Kind  string // "move", "resize", "close", "tile" or "minimize"
	Edges geom.EdgeMask
}

func (r Request) String() string {
	if r.Kind == "resize" || r.Kind == "tile" {
		return fmt.Sprintf("%s(%s)", r.Kind, r.Edges)
	}
	return r.Kind
}

// Window is an in-memory decor.Window. Setters return the event the
// host would deliver to the decoration.
type Window struct {
	mu         sync.Mutex
	title      string
	appID      string
	activated  bool
	fullscreen bool
	tiled      geom.EdgeMask
	size       geom.Size
	requests   []Request
}

var _ decor.Window = (*Window)(nil)

// NewWindow returns an activated window.
func NewWindow(title, appID string, size geom.Size) *Window {
	return &Window{title: title, appID: appID, size: size, activated: true}
}

func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

func (w *Window) AppID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.appID
}

func (w *Window) Activated() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.activated
}

func (w *Window) Tiled() geom.EdgeMask {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tiled
}

func (w *Window) Fullscreen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fullscreen
}

func (w *Window) Size() geom.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

func (w *Window) SetTitle(s string) decor.WindowEvent {
	w.mu.Lock()
	w.title = s
	w.mu.Unlock()
	return decor.WindowEvent{Kind: decor.EventTitleChanged}
}

func (w *Window) SetAppID(s string) decor.WindowEvent {
	w.mu.Lock()
	w.appID = s
	w.mu.Unlock()
	return decor.WindowEvent{Kind: decor.EventAppIDChanged}
}

func (w *Window) SetActivated(v bool) decor.WindowEvent {
	w.mu.Lock()
	w.activated = v
	w.mu.Unlock()
	return decor.WindowEvent{Kind: decor.EventActivationChanged}
}

func (w *Window) SetFullscreen(v bool) decor.WindowEvent {
	w.mu.Lock()
	w.fullscreen = v
	w.mu.Unlock()
	return decor.WindowEvent{Kind: decor.EventFullscreenChanged}
}

func (w *Window) SetTiled(m geom.EdgeMask) decor.WindowEvent {
	w.mu.Lock()
	w.tiled = m
	w.mu.Unlock()
	return decor.WindowEvent{Kind: decor.EventTiledChanged}
}

func (w *Window) SetSize(s geom.Size) decor.WindowEvent {
	w.mu.Lock()
	w.size = s
	w.mu.Unlock()
	return decor.WindowEvent{Kind: decor.EventGeometryChanged, Size: s}
}

// Requests returns the requests made so far.
func (w *Window) Requests() []Request {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Request(nil), w.requests...)
}

func (w *Window) record(kind string, edges geom.EdgeMask) {
	w.mu.Lock()
	w.requests = append(w.requests, Request{Kind: kind, Edges: edges})
	w.mu.Unlock()
}

func (w *Window) RequestMove()                      { w.record("move", 0) }
func (w *Window) RequestResize(edges geom.EdgeMask) { w.record("resize", edges) }
func (w *Window) RequestClose()                     { w.record("close", 0) }
func (w *Window) RequestMinimize()                  { w.record("minimize", 0) }

// RequestTile records the request and applies it, as a compositor would.
func (w *Window) RequestTile(edges geom.EdgeMask) {
	w.record("tile", edges)
	w.mu.Lock()
	w.tiled = edges
	w.mu.Unlock()
}
