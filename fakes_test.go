// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package decor

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
	"unicode/utf8"

	"github.com/gogpu/gg"

	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/theme"
)

// monoText gives every rune an advance of half the pixel size.
type monoText struct{}

func (monoText) Measure(s string, px float64) (float64, float64) {
	return float64(utf8.RuneCountInString(s)) * px / 2, px * 1.25
}

func (monoText) Ascent(px float64) float64 { return px }

func (m monoText) Draw(dst draw.Image, s string, px, x, y float64, col color.Color) {
	w, _ := m.Measure(s, px)
	draw.Draw(dst, image.Rect(int(x), int(y-px), int(x+w), int(y)), image.NewUniform(col), image.Point{}, draw.Src)
}

type noIcons struct{}

func (noIcons) Load(string, int) (image.Image, error) { return nil, theme.ErrIconNotFound }

type fakeTexture struct {
	id int
	r  *theme.Raster
}

type quadCall struct {
	tex       *fakeTexture
	dst, clip geom.Rect
	orient    theme.Orientation
}

type rectCall struct {
	dst, clip geom.Rect
	color     gg.RGBA
}

type fakeRenderer struct {
	next     int
	uploads  int
	releases int
	live     map[int]*theme.Raster
	quads    []quadCall
	rects    []rectCall
	damage   []geom.Region
	fail     error
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{live: make(map[int]*theme.Raster)}
}

func (f *fakeRenderer) Upload(r *theme.Raster) (Texture, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.next++
	f.uploads++
	f.live[f.next] = r
	return &fakeTexture{id: f.next, r: r}, nil
}

func (f *fakeRenderer) Release(t Texture) {
	f.releases++
	delete(f.live, t.(*fakeTexture).id)
}

func (f *fakeRenderer) DrawTexturedQuad(t Texture, dst, clip geom.Rect, orient theme.Orientation) {
	f.quads = append(f.quads, quadCall{tex: t.(*fakeTexture), dst: dst, clip: clip, orient: orient})
}

func (f *fakeRenderer) DrawRect(dst geom.Rect, c gg.RGBA, clip geom.Rect) {
	f.rects = append(f.rects, rectCall{dst: dst, clip: clip, color: c})
}

func (f *fakeRenderer) MarkDamaged(g geom.Region) {
	f.damage = append(f.damage, g)
}

func (f *fakeRenderer) resetCalls() {
	f.quads, f.rects, f.damage = nil, nil, nil
}

type fakeWindow struct {
	title, appID string
	activated    bool
	fullscreen   bool
	tiled        geom.EdgeMask
	size         geom.Size

	moves, closes, minimizes int
	resizes                  []geom.EdgeMask
	tiles                    []geom.EdgeMask
}

func (w *fakeWindow) Title() string                 { return w.title }
func (w *fakeWindow) AppID() string                 { return w.appID }
func (w *fakeWindow) Activated() bool               { return w.activated }
func (w *fakeWindow) Tiled() geom.EdgeMask          { return w.tiled }
func (w *fakeWindow) Fullscreen() bool              { return w.fullscreen }
func (w *fakeWindow) Size() geom.Size               { return w.size }
func (w *fakeWindow) RequestMove()                  { w.moves++ }
func (w *fakeWindow) RequestResize(e geom.EdgeMask) { w.resizes = append(w.resizes, e) }
func (w *fakeWindow) RequestClose()                 { w.closes++ }
func (w *fakeWindow) RequestTile(e geom.EdgeMask)   { w.tiles = append(w.tiles, e) }
func (w *fakeWindow) RequestMinimize()              { w.minimizes++ }

// testOptions lays out a 20px title band:
// icon 8..20, title 24..248, minimize 248, maximize 264, close 280.
func testOptions(mutate func(*theme.Options)) theme.Options {
	o := theme.DefaultOptions()
	o.FontSize = 10
	o.BorderSize = "20 4"
	o.CornerRadius = 8
	o.RoundOn = "all"
	o.OutlineSize = 1
	o.ButtonSize = 12
	o.IconSize = 12
	o.PaddingSize = 4
	o.Layout = "icon p title | minimize maximize close"
	if mutate != nil {
		mutate(&o)
	}
	return o
}

func testTheme(mutate func(*theme.Options)) *theme.Theme {
	return theme.New(testOptions(mutate), theme.WithTextBackend(monoText{}), theme.WithIconLoader(noIcons{}))
}

func newWindow() *fakeWindow {
	return &fakeWindow{title: "hello", appID: "org.example.App", activated: true, size: geom.Size{W: 300, H: 200}}
}

func newTestDecoration(t *testing.T, mutate func(*theme.Options)) (*Decoration, *fakeWindow, *fakeRenderer) {
	t.Helper()
	w := newWindow()
	r := newFakeRenderer()
	d, err := New(StrongWindow(w), testTheme(mutate), r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d, w, r
}

func fullDamage(d *Decoration) geom.Region {
	return geom.RegionOf(geom.RectFromSize(d.Size()))
}
