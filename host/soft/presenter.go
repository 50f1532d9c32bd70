// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/geom"
)

// Presenter renders decorations into a ggcanvas.Canvas and puts the
// canvas on screen through a gpucontext.TextureDrawer.
type Presenter struct {
	canvas *ggcanvas.Canvas
	r      *Renderer
}

// NewPresenter creates a w×h logical canvas on provider. The device scale
// comes from the provider when it is also a gpucontext.WindowProvider.
func NewPresenter(provider gpucontext.DeviceProvider, w, h int) (*Presenter, error) {
	c, err := ggcanvas.New(provider, w, h)
	if err != nil {
		return nil, fmt.Errorf("soft: create canvas: %w", err)
	}
	return &Presenter{canvas: c, r: On(c.Context(), c.DeviceScale())}, nil
}

// Renderer returns the renderer decorations presented here must use.
func (p *Presenter) Renderer() *Renderer { return p.r }

// Resize changes the canvas size. Its content is cleared.
func (p *Presenter) Resize(w, h int) error {
	if err := p.canvas.Resize(w, h); err != nil {
		return fmt.Errorf("soft: resize canvas: %w", err)
	}
	p.r.dc = p.canvas.Context()
	return nil
}

// Draw renders the damaged parts of d into the canvas and marks them for
// upload.
func (p *Presenter) Draw(d *decor.Decoration, damage geom.Region) error {
	var rerr error
	err := p.canvas.Draw(func(dc *gg.Context) {
		p.r.dc = dc
		rerr = d.Render(damage, p.r.scale)
	})
	if err != nil {
		return fmt.Errorf("soft: draw: %w", err)
	}
	if rerr != nil {
		return rerr
	}
	for _, r := range damage.Rects() {
		p.canvas.MarkDirtyRegion(physical(r, p.r.scale))
	}
	return nil
}

// Present puts the canvas on screen.
func (p *Presenter) Present(dst gpucontext.TextureDrawer) error {
	if err := p.canvas.RenderTo(dst); err != nil {
		return fmt.Errorf("soft: present: %w", err)
	}
	return nil
}

func (p *Presenter) Close() error {
	return p.canvas.Close()
}

func physical(r geom.Rect, scale float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.X)*scale)),
		int(math.Floor(float64(r.Y)*scale)),
		int(math.Ceil(float64(r.Right())*scale)),
		int(math.Ceil(float64(r.Bottom())*scale)),
	)
}
