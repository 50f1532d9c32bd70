// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package decor

import (
	"github.com/gogpu/decor/compositor"
	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/layout"
	"github.com/gogpu/decor/theme"
)

// Stats counts raster regenerations since the decoration was created.
// Active and inactive variants are rendered together and count once.
type Stats struct {
	Title   int
	Icon    int
	Buttons int // per button kind and hover state
	Corners int
	Accents int
}

type titleCache struct {
	valid bool
	text  string
	scale float64
	title compositor.Pair
	dots  compositor.Pair
}

type iconCache struct {
	valid bool
	appID string
	scale float64
	r     *theme.Raster
}

type buttonKey struct {
	kind    theme.ButtonKind
	hovered bool
}

type touchState struct {
	active bool
	id     int32
}

// Decoration is the decoration of one window. It is not safe for
// concurrent use; all methods must be called from the host's event
// thread.
type Decoration struct {
	ref  WindowRef
	r    Renderer
	th   *theme.Theme
	lay  *layout.Layout
	comp *compositor.Compositor

	size     geom.Size
	title    string
	appID    string
	active   bool
	state    WindowState
	detached bool

	titleDirty bool
	iconDirty  bool
	titles     titleCache
	icon       iconCache
	buttons    map[buttonKey]compositor.Pair
	btnScale   float64
	textures   map[*theme.Raster]Texture
	stats      Stats

	touch touchState
}

// New creates the decoration of the window behind ref, drawing with th
// through r. It fails with ErrWindowGone if ref does not resolve.
func New(ref WindowRef, th *theme.Theme, r Renderer) (*Decoration, error) {
	win, ok := ref.Get()
	if !ok {
		return nil, ErrWindowGone
	}
	d := &Decoration{
		ref:        ref,
		r:          r,
		size:       win.Size(),
		title:      titleText(win),
		appID:      win.AppID(),
		active:     win.Activated(),
		state:      WindowState{Fullscreen: win.Fullscreen(), Tiled: win.Tiled()},
		titleDirty: true,
		iconDirty:  true,
		textures:   make(map[*theme.Raster]Texture),
	}
	d.setTheme(th)
	return d, nil
}

func titleText(w Window) string {
	return theme.NormalizeTitle(w.Title())
}

// Theme returns the theme in use.
func (d *Decoration) Theme() *theme.Theme { return d.th }

// SetTheme switches to th. Every cached raster is dropped and the frame
// is laid out again.
func (d *Decoration) SetTheme(th *theme.Theme) {
	if d.detached {
		return
	}
	before := d.InputRegion()
	d.setTheme(th)
	d.damageFrame(before)
}

func (d *Decoration) setTheme(th *theme.Theme) {
	d.th = th
	d.lay = layout.New(th.Options())
	d.lay.SetDamageHandler(d.damageRect)
	if d.comp == nil {
		d.comp = compositor.New(th)
	} else {
		d.comp.SetTheme(th)
	}
	d.titles = titleCache{}
	d.icon = iconCache{}
	d.buttons = nil
	d.titleDirty, d.iconDirty = true, true
	d.relayout()
}

// Layout returns the current area layout.
func (d *Decoration) Layout() *layout.Layout { return d.lay }

// Size returns the frame size.
func (d *Decoration) Size() geom.Size { return d.size }

// Active reports the activation state last seen.
func (d *Decoration) Active() bool { return d.active }

// State returns the window state last seen.
func (d *Decoration) State() WindowState { return d.state }

// Margins returns the border insets the window content must leave for
// the decoration in state s.
func (d *Decoration) Margins(s WindowState) geom.Insets {
	if s.Fullscreen {
		return geom.Insets{}
	}
	opts := d.th.Options()
	if s.Tiled != 0 && opts.NoMarginsWhenTiled {
		return geom.Insets{}
	}
	return opts.Border()
}

// InputRegion returns the frame region that accepts input. It is empty
// while the window is fullscreen.
func (d *Decoration) InputRegion() geom.Region {
	if d.detached || d.state.Fullscreen {
		return geom.Region{}
	}
	return d.lay.InputRegion()
}

// HitTest returns the area under (x, y), or nil.
func (d *Decoration) HitTest(x, y float64) layout.Area {
	if d.detached || d.state.Fullscreen {
		return nil
	}
	return d.lay.HitTest(x, y)
}

// Stats returns the regeneration counters.
func (d *Decoration) Stats() Stats {
	s := d.stats
	cs := d.comp.Stats()
	s.Corners, s.Accents = cs.Corners, cs.Accents
	return s
}

// Detach releases every texture and drops the window handle. The
// decoration is inert afterwards.
func (d *Decoration) Detach() {
	if d.detached {
		return
	}
	for ras, tex := range d.textures {
		d.r.Release(tex)
		delete(d.textures, ras)
	}
	d.lay.SetDamageHandler(nil)
	d.comp.Reset()
	d.titles = titleCache{}
	d.icon = iconCache{}
	d.buttons = nil
	d.ref = WindowRef{}
	d.detached = true
	Logger().Debug("decor: detached", "app_id", d.appID)
}

// Detached reports whether Detach was called.
func (d *Decoration) Detached() bool { return d.detached }

func (d *Decoration) relayout() {
	full, dots := d.th.TitleSize(d.title)
	d.lay.Resize(d.size.W, d.size.H, full, dots)
}

func (d *Decoration) damageRect(r geom.Rect) {
	if d.r != nil && !d.detached {
		d.r.MarkDamaged(geom.RegionOf(r))
	}
}

// damageFrame marks the decoration ring before and after a change.
func (d *Decoration) damageFrame(before geom.Region) {
	if d.r == nil || d.detached {
		return
	}
	var g geom.Region
	g.Union(before)
	g.Union(d.InputRegion())
	if !g.Empty() {
		d.r.MarkDamaged(g)
	}
}
