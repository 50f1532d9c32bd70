// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"errors"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/theme"
)

// ErrForeignTexture is returned for texture handles not made by Upload.
var ErrForeignTexture = errors.New("soft: texture not created by this renderer")

// Texture is the handle Upload returns. Oriented copies of the raster are
// built on first use.
type Texture struct {
	raster   *theme.Raster
	views    map[theme.Orientation]*gg.ImageBuf
	released bool
}

// Raster returns the uploaded raster.
func (t *Texture) Raster() *theme.Raster { return t.raster }

// Released reports whether the texture was released.
func (t *Texture) Released() bool { return t.released }

func (t *Texture) view(o theme.Orientation) *gg.ImageBuf {
	if v, ok := t.views[o]; ok {
		return v
	}
	v := gg.ImageBufFromImage(t.raster.Orient(o).Pixmap().ToImage())
	t.views[o] = v
	return v
}

// Renderer draws decorations into a gg.Context in logical coordinates.
// The context's device scale maps them to pixels.
type Renderer struct {
	dc     *gg.Context
	owned  bool
	scale  float64
	damage geom.Region
	live   int
}

var _ decor.Renderer = (*Renderer)(nil)

// New returns a renderer with its own w×h logical context at scale.
func New(w, h int, scale float64) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	var opts []gg.ContextOption
	if scale != 1 {
		opts = append(opts, gg.WithDeviceScale(scale))
	}
	return &Renderer{dc: gg.NewContext(w, h, opts...), owned: true, scale: scale}
}

// On returns a renderer drawing into dc, which is not closed by Close.
func On(dc *gg.Context, scale float64) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	return &Renderer{dc: dc, scale: scale}
}

// Context returns the target context.
func (r *Renderer) Context() *gg.Context { return r.dc }

// Scale returns the device scale.
func (r *Renderer) Scale() float64 { return r.scale }

// Live returns the number of uploaded textures not yet released.
func (r *Renderer) Live() int { return r.live }

func (r *Renderer) Upload(ras *theme.Raster) (decor.Texture, error) {
	r.live++
	return &Texture{raster: ras, views: make(map[theme.Orientation]*gg.ImageBuf, 1)}, nil
}

func (r *Renderer) Release(t decor.Texture) {
	tex, ok := t.(*Texture)
	if !ok || tex.released {
		return
	}
	tex.released = true
	tex.views = nil
	r.live--
}

// DrawTexturedQuad stretches the oriented raster over dst and draws the
// part inside clip.
func (r *Renderer) DrawTexturedQuad(t decor.Texture, dst, clip geom.Rect, orient theme.Orientation) {
	tex, ok := t.(*Texture)
	if !ok || tex.released || tex.raster.Empty() || dst.Empty() {
		if !ok {
			decor.Logger().Warn("soft: draw skipped", "err", ErrForeignTexture)
		}
		return
	}
	vis := dst.Intersect(clip)
	if vis.Empty() {
		return
	}
	img := tex.view(orient)
	sw, sh := img.Bounds()
	src := srcRect(dst, vis, sw, sh)
	if src.Empty() {
		return
	}
	r.dc.DrawImageEx(img, gg.DrawImageOptions{
		X:             float64(vis.X),
		Y:             float64(vis.Y),
		DstWidth:      float64(vis.W),
		DstHeight:     float64(vis.H),
		SrcRect:       &src,
		Interpolation: gg.InterpBilinear,
	})
}

// srcRect maps the visible part vis of dst onto a sw×sh source, rounding
// outwards.
func srcRect(dst, vis geom.Rect, sw, sh int) image.Rectangle {
	fx := float64(sw) / float64(dst.W)
	fy := float64(sh) / float64(dst.H)
	x0 := int(math.Floor(float64(vis.X-dst.X) * fx))
	y0 := int(math.Floor(float64(vis.Y-dst.Y) * fy))
	x1 := int(math.Ceil(float64(vis.Right()-dst.X) * fx))
	y1 := int(math.Ceil(float64(vis.Bottom()-dst.Y) * fy))
	return image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, sw, sh))
}

func (r *Renderer) DrawRect(dst geom.Rect, c gg.RGBA, clip geom.Rect) {
	vis := dst.Intersect(clip)
	if vis.Empty() || c.A == 0 {
		return
	}
	r.dc.SetRGBA(c.R, c.G, c.B, c.A)
	r.dc.DrawRectangle(float64(vis.X), float64(vis.Y), float64(vis.W), float64(vis.H))
	if err := r.dc.Fill(); err != nil {
		decor.Logger().Warn("soft: fill failed", "rect", vis, "err", err)
	}
}

func (r *Renderer) MarkDamaged(region geom.Region) {
	r.damage.Union(region)
}

// TakeDamage returns the accumulated damage and resets it.
func (r *Renderer) TakeDamage() geom.Region {
	g := r.damage
	r.damage = geom.Region{}
	return g
}

// Image returns a copy of the rendered pixels.
func (r *Renderer) Image() image.Image { return r.dc.Image() }

// SavePNG writes the rendered pixels to path.
func (r *Renderer) SavePNG(path string) error { return r.dc.SavePNG(path) }

// Clear makes the whole target transparent.
func (r *Renderer) Clear() { r.dc.Clear() }

// Close releases the context if the renderer created it.
func (r *Renderer) Close() error {
	if !r.owned {
		return nil
	}
	return r.dc.Close()
}
