// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/theme"
)

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func solidRaster(w, h int, c gg.RGBA) *theme.Raster {
	r := theme.NewRaster(w, h)
	r.Pixmap().Clear(c)
	return r
}

func TestDrawRectFillsClippedArea(t *testing.T) {
	r := New(20, 20, 1)
	defer r.Close()

	r.DrawRect(geom.R(0, 0, 20, 20), gg.RGBA{R: 1, A: 1}, geom.R(5, 5, 5, 5))

	img := r.Image()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, rgba(img, 7, 7))
	assert.Zero(t, rgba(img, 2, 2).A)
	assert.Zero(t, rgba(img, 12, 7).A)
}

func TestDrawRectSkipsTransparent(t *testing.T) {
	r := New(8, 8, 1)
	defer r.Close()

	r.DrawRect(geom.R(0, 0, 8, 8), gg.RGBA{R: 1}, geom.R(0, 0, 8, 8))
	assert.Zero(t, rgba(r.Image(), 4, 4).A)
}

func TestDrawTexturedQuadScalesToDevice(t *testing.T) {
	r := New(16, 16, 2)
	defer r.Close()

	tex, err := r.Upload(solidRaster(8, 8, gg.RGBA{B: 1, A: 1}))
	require.NoError(t, err)
	r.DrawTexturedQuad(tex, geom.R(2, 2, 4, 4), geom.R(0, 0, 16, 16), 0)

	img := r.Image()
	assert.Equal(t, 32, img.Bounds().Dx())
	c := rgba(img, 8, 8)
	assert.EqualValues(t, 255, c.A)
	assert.Greater(t, c.B, uint8(200))
	assert.Zero(t, rgba(img, 1, 1).A)
	assert.Zero(t, rgba(img, 20, 20).A)
}

func TestDrawTexturedQuadHonorsClip(t *testing.T) {
	r := New(16, 16, 1)
	defer r.Close()

	tex, err := r.Upload(solidRaster(8, 8, gg.RGBA{G: 1, A: 1}))
	require.NoError(t, err)
	r.DrawTexturedQuad(tex, geom.R(0, 0, 8, 8), geom.R(0, 0, 4, 8), 0)

	img := r.Image()
	assert.Greater(t, rgba(img, 2, 4).G, uint8(200))
	assert.Zero(t, rgba(img, 6, 4).A)
}

func TestSrcRect(t *testing.T) {
	tests := []struct {
		name     string
		dst, vis geom.Rect
		sw, sh   int
		want     image.Rectangle
	}{
		{"whole", geom.R(10, 10, 4, 4), geom.R(10, 10, 4, 4), 8, 8, image.Rect(0, 0, 8, 8)},
		{"right half", geom.R(10, 10, 4, 4), geom.R(12, 10, 2, 4), 8, 8, image.Rect(4, 0, 8, 8)},
		{"rounds outwards", geom.R(0, 0, 3, 3), geom.R(1, 1, 1, 1), 4, 4, image.Rect(1, 1, 3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, srcRect(tt.dst, tt.vis, tt.sw, tt.sh))
		})
	}
}

func TestTextureViewsAreOriented(t *testing.T) {
	r := New(4, 4, 1)
	defer r.Close()

	h, err := r.Upload(solidRaster(6, 2, gg.RGBA{R: 1, A: 1}))
	require.NoError(t, err)
	tex := h.(*Texture)

	w, hh := tex.view(0).Bounds()
	assert.Equal(t, []int{6, 2}, []int{w, hh})
	w, hh = tex.view(theme.OrientVertical).Bounds()
	assert.Equal(t, []int{2, 6}, []int{w, hh})
	assert.Same(t, tex.view(theme.OrientVertical), tex.view(theme.OrientVertical))
}

func TestReleaseCountsLiveTextures(t *testing.T) {
	r := New(4, 4, 1)
	defer r.Close()

	a, _ := r.Upload(solidRaster(1, 1, gg.RGBA{A: 1}))
	b, _ := r.Upload(solidRaster(1, 1, gg.RGBA{A: 1}))
	assert.Equal(t, 2, r.Live())

	r.Release(a)
	r.Release(a)
	r.Release("not a texture")
	assert.Equal(t, 1, r.Live())
	assert.True(t, a.(*Texture).Released())
	assert.False(t, b.(*Texture).Released())
}

func TestTakeDamage(t *testing.T) {
	r := New(4, 4, 1)
	defer r.Close()

	r.MarkDamaged(geom.RegionOf(geom.R(0, 0, 2, 2)))
	r.MarkDamaged(geom.RegionOf(geom.R(1, 1, 2, 2)))
	g := r.TakeDamage()
	assert.Equal(t, 7, g.Area())
	assert.True(t, r.TakeDamage().Empty())
}

func testTheme() *theme.Theme {
	o := theme.DefaultOptions()
	o.FontSize = 10
	o.BorderSize = "20 4"
	o.OutlineSize = 1
	o.CornerRadius = 8
	o.Layout = "icon p title | minimize maximize close"
	o.BorderColors = theme.ColorSet{Active: gg.RGBA{R: 1, A: 1}, Inactive: gg.RGBA{B: 1, A: 1}}
	o.OutlineColors = theme.ColorSet{Active: gg.RGBA{G: 1, A: 1}, Inactive: gg.RGBA{G: 1, A: 1}}
	return theme.New(o, theme.WithFontData(goregular.TTF))
}

func TestDecorationRendersIntoImage(t *testing.T) {
	size := geom.Size{W: 300, H: 200}
	r := New(size.W, size.H, 1)
	defer r.Close()
	w := NewWindow("Terminal", "org.example.Term", size)

	d, err := decor.New(decor.StrongWindow(w), testTheme(), r)
	require.NoError(t, err)

	require.NoError(t, d.Render(geom.RegionOf(geom.RectFromSize(size)), 1))
	img := r.Image()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, rgba(img, 2, 100), "left border")
	assert.Equal(t, color.RGBA{G: 255, A: 255}, rgba(img, 0, 100), "left outline")
	assert.Zero(t, rgba(img, 150, 100).A, "client area untouched")
	assert.Positive(t, r.Live())

	d.HandleEvent(w.SetActivated(false))
	require.NoError(t, d.Render(r.TakeDamage(), 1))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, rgba(r.Image(), 2, 100))

	d.Detach()
	assert.Zero(t, r.Live())
}

func TestWindowRecordsRequests(t *testing.T) {
	w := NewWindow("t", "a", geom.Size{W: 10, H: 10})
	w.RequestMove()
	w.RequestResize(geom.EdgeMaskLeft)
	w.RequestTile(geom.EdgeMaskAll)
	w.RequestClose()

	assert.Equal(t, []Request{
		{Kind: "move"},
		{Kind: "resize", Edges: geom.EdgeMaskLeft},
		{Kind: "tile", Edges: geom.EdgeMaskAll},
		{Kind: "close"},
	}, w.Requests())
	assert.Equal(t, geom.EdgeMaskAll, w.Tiled())
	assert.Equal(t, "resize(left)", w.Requests()[1].String())
}

func TestNewPresenterRequiresProvider(t *testing.T) {
	_, err := NewPresenter(nil, 10, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ggcanvas.ErrNilProvider)
}
