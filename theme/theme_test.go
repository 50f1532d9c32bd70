// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package theme

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"testing"
	"unicode/utf8"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/internal/dlog"
)

// monoText is a fixed-advance backend: every rune is half the pixel size
// wide and a line is 1.25 times the pixel size tall.
type monoText struct{}

func (monoText) Measure(s string, px float64) (float64, float64) {
	return float64(utf8.RuneCountInString(s)) * px / 2, px * 1.25
}

func (monoText) Ascent(px float64) float64 { return px }

func (m monoText) Draw(dst draw.Image, s string, px, x, y float64, col color.Color) {
	w, _ := m.Measure(s, px)
	r := image.Rect(int(x), int(y-px), int(x+w), int(y))
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}

type noIcons struct{}

func (noIcons) Load(string, int) (image.Image, error) { return nil, ErrIconNotFound }

type solidIcon struct{ called int }

func (s *solidIcon) Load(_ string, size int) (image.Image, error) {
	s.called++
	img := image.NewRGBA(image.Rect(0, 0, size*2, size*2))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 255, A: 255}), image.Point{}, draw.Src)
	return img, nil
}

func newTestTheme(t *testing.T, mutate func(*Options)) *Theme {
	t.Helper()
	opts := DefaultOptions()
	opts.FontSize = 10
	if mutate != nil {
		mutate(&opts)
	}
	return New(opts, WithTextBackend(monoText{}), WithIconLoader(noIcons{}))
}

func TestMeasureTextMonotone(t *testing.T) {
	th := newTestTheme(t, nil)
	full := th.MeasureText("hello world", 0)
	assert.Equal(t, geom.Size{W: 55, H: 13}, full)

	prev := 0
	for _, limit := range []int{1, 10, 30, 55, 100} {
		got := th.MeasureText("hello world", limit)
		assert.LessOrEqual(t, got.W, limit)
		assert.GreaterOrEqual(t, got.W, prev)
		prev = got.W
	}
	assert.Equal(t, geom.Size{}, th.MeasureText("", 10))
}

func TestTitleSize(t *testing.T) {
	th := newTestTheme(t, nil)
	full, dots := th.TitleSize("abcd")
	assert.Equal(t, 20, full.W)
	assert.Equal(t, 15, dots.W)
}

func TestRasterizeTitle(t *testing.T) {
	th := newTestTheme(t, nil)

	r := th.RasterizeTitle("abcd", true, 1, 0, 0)
	require.Equal(t, geom.Size{W: 20, H: 13}, r.Size())
	assert.Equal(t, uint8(255), r.Alpha(5, 5))

	capped := th.RasterizeTitle("abcd", true, 2, 6, 0)
	assert.Equal(t, 12, capped.Width())
	assert.Equal(t, 25, capped.Height())

	vert := th.RasterizeTitle("abcd", true, 1, 0, OrientationFor(geom.EdgeRight))
	assert.Equal(t, geom.Size{W: 13, H: 20}, vert.Size())

	left := th.RasterizeTitle("abcd", true, 1, 0, OrientationFor(geom.EdgeLeft))
	assert.Equal(t, geom.Size{W: 13, H: 20}, left.Size())
	// Glyph block occupies rows [0,10) of the horizontal raster; after
	// rotation it sits at the right for top-down text and at the left for
	// bottom-up text.
	assert.Equal(t, uint8(255), vert.Alpha(12, 0))
	assert.Equal(t, uint8(0), vert.Alpha(0, 0))
	assert.Equal(t, uint8(255), left.Alpha(0, 19))
	assert.Equal(t, uint8(0), left.Alpha(12, 19))

	assert.True(t, th.RasterizeTitle("", true, 1, 0, 0).Empty())
}

func TestRasterizeTitleColors(t *testing.T) {
	th := newTestTheme(t, func(o *Options) {
		o.TitleColors = ColorSet{Active: hexColor("#ff0000"), Inactive: hexColor("#0000ff")}
	})
	a := th.RasterizeTitle("x", true, 1, 0, 0).Data()
	i := th.RasterizeTitle("x", false, 1, 0, 0).Data()
	// First pixel of the glyph block.
	assert.Equal(t, uint8(255), a[0])
	assert.Equal(t, uint8(0), a[2])
	assert.Equal(t, uint8(0), i[0])
	assert.Equal(t, uint8(255), i[2])
}

func TestRasterizeIcon(t *testing.T) {
	th := newTestTheme(t, nil)
	ph := th.RasterizeIcon("org.example.app", 1)
	require.Equal(t, geom.Size{W: 18, H: 18}, ph.Size())
	assert.Equal(t, uint8(255), ph.Alpha(9, 9))
	assert.Equal(t, uint8(0), ph.Alpha(0, 0))

	again := th.RasterizeIcon("org.example.app", 1)
	assert.Equal(t, ph.Data(), again.Data(), "placeholder must be deterministic")

	src := &solidIcon{}
	th = New(th.Options(), WithTextBackend(monoText{}), WithIconLoader(src))
	r := th.RasterizeIcon("app", 2)
	assert.Equal(t, geom.Size{W: 36, H: 36}, r.Size())
	assert.Equal(t, 1, src.called)
	assert.Equal(t, uint8(255), r.Data()[(18*36+18)*4])
}

func TestRasterizeCorner(t *testing.T) {
	th := newTestTheme(t, func(o *Options) {
		o.CornerRadius = 10
		o.OutlineSize = 1
		o.OutlineColors = ColorSet{Active: hexColor("#ff0000"), Inactive: hexColor("#ff0000")}
		o.BorderColors = ColorSet{Active: hexColor("#00ff00"), Inactive: hexColor("#00ff00")}
	})

	tr := th.RasterizeCorner(true, 10, geom.Identity2(), geom.Size{W: 10, H: 20})
	require.Equal(t, geom.Size{W: 10, H: 20}, tr.Size())
	// Outside the arc at the outer corner.
	assert.Equal(t, uint8(0), tr.Alpha(9, 0))
	// Deep inside: border color.
	px := tr.Data()[(15*10+2)*4:]
	assert.Equal(t, uint8(255), px[1])
	assert.Equal(t, uint8(0), px[0])
	// Along the right edge below the arc: outline color.
	px = tr.Data()[(15*10+9)*4:]
	assert.Equal(t, uint8(255), px[0])

	tl := th.RasterizeCorner(true, 10, geom.CornerTransform(geom.CornerTopLeft), geom.Size{W: 10, H: 20})
	assert.Equal(t, uint8(0), tl.Alpha(0, 0))
	assert.Equal(t, uint8(255), tl.Alpha(9, 2))

	bl := th.RasterizeCorner(true, 10, geom.CornerTransform(geom.CornerBottomLeft), geom.Size{W: 10, H: 20})
	assert.Equal(t, uint8(0), bl.Alpha(0, 19))
	assert.Equal(t, uint8(255), bl.Alpha(9, 17))

	square := th.RasterizeCorner(true, 0, geom.Identity2(), geom.Size{W: 10, H: 20})
	assert.Equal(t, uint8(255), square.Alpha(9, 0))

	scaled := th.RasterizeCorner(true, 10, geom.Scale2(2), geom.Size{W: 10, H: 20})
	assert.Equal(t, geom.Size{W: 20, H: 40}, scaled.Size())
}

func TestRasterizeButton(t *testing.T) {
	th := newTestTheme(t, func(o *Options) {
		o.ButtonSize = 16
		o.CloseColors = HoverSet{Normal: hexColor("#800000"), Hovered: hexColor("#ff0000")}
		o.TitleColors.Inactive = hexColor("#0000ff")
	})
	normal := th.RasterizeButton(ButtonClose, false, true, 1)
	hovered := th.RasterizeButton(ButtonClose, true, true, 1)
	require.Equal(t, geom.Size{W: 16, H: 16}, normal.Size())
	c := (8*16 + 8) * 4
	assert.Less(t, normal.Data()[c], hovered.Data()[c])
	assert.Equal(t, uint8(0), normal.Alpha(0, 0))

	inactive := th.RasterizeButton(ButtonClose, false, false, 1)
	assert.Equal(t, normal.Data(), inactive.Data(), "inactive_buttons is off")

	th = newTestTheme(t, func(o *Options) {
		o.InactiveButtons = true
		o.TitleColors.Inactive = hexColor("#0000ff")
	})
	inactive = th.RasterizeButton(ButtonClose, false, false, 1)
	assert.Equal(t, uint8(255), inactive.Data()[c+2])

	sym := newTestTheme(t, func(o *Options) { o.ButtonStyle = "symbol" })
	for _, k := range []ButtonKind{ButtonMinimize, ButtonMaximize, ButtonClose} {
		plain := th.RasterizeButton(k, false, true, 1)
		glyph := sym.RasterizeButton(k, false, true, 1)
		assert.NotEqual(t, plain.Data(), glyph.Data(), k.String())
	}
}

func TestFillLogsFailuresOnly(t *testing.T) {
	var buf bytes.Buffer
	dlog.Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { dlog.Set(nil) })

	dc := gg.NewContext(4, 4)
	defer func() { _ = dc.Close() }()
	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawRectangle(0, 0, 4, 4)
	fill(dc, "square")
	assert.Equal(t, uint8(255), dc.ResizeTarget().Data()[3])

	th := newTestTheme(t, func(o *Options) { o.ButtonStyle = "symbol" })
	th.RasterizeButton(ButtonClose, false, true, 1)
	th.RasterizeCorner(true, 8, geom.Identity2(), geom.Size{W: 8, H: 8})
	th.RasterizeIcon("app", 1)
	assert.Empty(t, buf.String())
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "café a b", NormalizeTitle("café a\nb"))
}

func TestWithFontDataRejectsGarbage(t *testing.T) {
	th := New(DefaultOptions(), WithTextBackend(monoText{}), WithFontData([]byte("nope")), WithIconLoader(noIcons{}))
	_, ok := th.Text().(monoText)
	assert.True(t, ok)
}

func TestFallbackFontMeasures(t *testing.T) {
	ft := fallbackFont()
	w1, h := ft.Measure("a", 14)
	w2, _ := ft.Measure("ab", 14)
	assert.Positive(t, w1)
	assert.Positive(t, h)
	assert.Greater(t, w2, w1)
	assert.Positive(t, ft.Ascent(14))
}

func hexColor(s string) gg.RGBA {
	c, _ := ParseColor(s)
	return c
}
