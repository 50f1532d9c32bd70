// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package theme

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/decor/geom"
)

// Raster is an owned RGBA pixel buffer ready for upload.
type Raster struct {
	pm *gg.Pixmap
}

// NewRaster allocates a transparent raster of the given size.
func NewRaster(w, h int) *Raster {
	return &Raster{pm: gg.NewPixmap(max(w, 0), max(h, 0))}
}

// RasterFromPixmap wraps pm without copying.
func RasterFromPixmap(pm *gg.Pixmap) *Raster {
	return &Raster{pm: pm}
}

// rasterFromRGBA copies img into a new raster.
func rasterFromRGBA(img *image.RGBA) *Raster {
	b := img.Bounds()
	r := NewRaster(b.Dx(), b.Dy())
	dst := r.pm.Data()
	row := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(dst[y*row:(y+1)*row], img.Pix[off:off+row])
	}
	return r
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.pm.Width() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.pm.Height() }

// Size returns the raster dimensions.
func (r *Raster) Size() geom.Size { return geom.Size{W: r.Width(), H: r.Height()} }

// Empty reports whether the raster has no pixels.
func (r *Raster) Empty() bool { return r == nil || r.Width() == 0 || r.Height() == 0 }

// Data returns the RGBA bytes, row-major with stride Width*4.
func (r *Raster) Data() []uint8 { return r.pm.Data() }

// Pixmap exposes the backing pixmap.
func (r *Raster) Pixmap() *gg.Pixmap { return r.pm }

// Format is the texture format of Data.
func (r *Raster) Format() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }

// Alpha returns the alpha byte at (x, y), or 0 outside the raster.
func (r *Raster) Alpha(x, y int) uint8 {
	if x < 0 || y < 0 || x >= r.Width() || y >= r.Height() {
		return 0
	}
	return r.pm.Data()[(y*r.Width()+x)*4+3]
}

// ApplyMask multiplies every pixel by the matching 8-bit coverage value.
// mask must hold Width*Height entries.
func (r *Raster) ApplyMask(mask []uint8) {
	data := r.pm.Data()
	for i, m := range mask {
		if m == 255 {
			continue
		}
		p := data[i*4 : i*4+4]
		for j := range p {
			p[j] = uint8(uint16(p[j]) * uint16(m) / 255)
		}
	}
}
