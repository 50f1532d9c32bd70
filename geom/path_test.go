// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quarterRound(r, h float64) *Path {
	p := NewPath(Pt(0, 0))
	p.Arc(0, r, r, -math.Pi/2, math.Pi/2)
	p.LineTo(r, h).LineTo(0, h).Close()
	return p
}

func TestMatrix2Reflections(t *testing.T) {
	for _, c := range Corners {
		m := CornerTransform(c)
		assert.Equal(t, c != CornerTopRight && c != CornerBottomLeft, m.Reflects(), c.String())
		assert.Equal(t, Identity2(), m.Multiply(m), "reflections are involutions")
	}
	m := Matrix2{A: 2, B: 1, C: 1, D: 1}
	assert.Equal(t, Identity2(), m.Multiply(m.Invert()))
}

func TestEdgeTransformCornerMapping(t *testing.T) {
	tests := []struct {
		edge Edge
		// physical corner of each canonical corner tl, tr, br, bl
		want [4]Corner
	}{
		{EdgeTop, [4]Corner{CornerTopLeft, CornerTopRight, CornerBottomRight, CornerBottomLeft}},
		{EdgeBottom, [4]Corner{CornerBottomLeft, CornerBottomRight, CornerTopRight, CornerTopLeft}},
		{EdgeLeft, [4]Corner{CornerTopLeft, CornerBottomLeft, CornerBottomRight, CornerTopRight}},
		{EdgeRight, [4]Corner{CornerTopRight, CornerBottomRight, CornerBottomLeft, CornerTopLeft}},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			m := EdgeTransform(tt.edge)
			turns := EdgeQuarterTurns(tt.edge)
			local := Size{W: 20, H: 4}
			if !tt.edge.Horizontal() {
				local = Size{W: 4, H: 20}
			}
			canon := [4]Point{Pt(0, 0), Pt(20, 0), Pt(20, 4), Pt(0, 4)}
			phys := [4]Point{
				Pt(0, 0),
				Pt(float64(local.W), 0),
				Pt(float64(local.W), float64(local.H)),
				Pt(0, float64(local.H)),
			}
			for c, p := range canon {
				got := MapCorner(Corner(c), turns, m.Reflects())
				assert.Equal(t, tt.want[c], got)
				assert.Equal(t, Corner(c), CanonicalCorner(got, turns, m.Reflects()))
				q := m.Apply(p).Add(EdgeOrigin(tt.edge, local))
				assert.InDelta(t, phys[got].X, q.X, 1e-9)
				assert.InDelta(t, phys[got].Y, q.Y, 1e-9)
			}
		})
	}
}

func TestPathTransformMatchesPointwise(t *testing.T) {
	p := quarterRound(8, 10)
	for _, c := range Corners {
		m := CornerTransform(c)
		off := Pt(8, 10)
		got := p.Transform(m, off).Flatten(0.05)
		want := p.Flatten(0.05)
		require.Len(t, got, len(want), c.String())
		for i := range want {
			w := m.Apply(want[i]).Add(off)
			assert.InDelta(t, w.X, got[i].X, 1e-9)
			assert.InDelta(t, w.Y, got[i].Y, 1e-9)
		}
	}
}

func TestPathScaleTransformsRadius(t *testing.T) {
	p := quarterRound(4, 4).Transform(Scale2(2), Point{})
	lo, hi := p.Bounds()
	assert.InDelta(t, 0, lo.X, 1e-9)
	assert.InDelta(t, 8, hi.X, 1e-9)
	assert.InDelta(t, 8, hi.Y, 1e-9)
}

func TestSelfIntersects(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	bowtie := []Point{Pt(0, 0), Pt(1, 1), Pt(1, 0), Pt(0, 1)}
	assert.False(t, SelfIntersects(square))
	assert.True(t, SelfIntersects(bowtie))
	assert.InDelta(t, 1, SignedArea(square), 1e-9)
}

func TestPathEmit(t *testing.T) {
	var rec recordSink
	quarterRound(8, 8).Emit(&rec, 0.1)
	assert.Equal(t, 1, rec.moves)
	assert.Positive(t, rec.lines)
	assert.True(t, rec.closed)
}

type recordSink struct {
	moves, lines int
	closed       bool
}

func (r *recordSink) MoveTo(x, y float64) { r.moves++ }
func (r *recordSink) LineTo(x, y float64) { r.lines++ }
func (r *recordSink) ClosePath()          { r.closed = true }
