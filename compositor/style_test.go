// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/decor/geom"
)

func TestParseCornerStyle(t *testing.T) {
	const (
		F = CornerFlat
		R = CornerRound
		D = CornerDiagonal
	)
	tests := []struct {
		in   string
		want CornerStyle
	}{
		{"", CornerStyle{}},
		{"tr bl", CornerStyle{Kinds: [4]CornerKind{F, R, F, R}}},
		{"tl,/br", CornerStyle{Kinds: [4]CornerKind{R, F, D, F}}},
		{`\tr !tl bogus`, CornerStyle{Kinds: [4]CornerKind{F, D, F, F}}},
		{"a", CornerStyle{Kinds: [4]CornerKind{R, R, R, R}, Retract: true}},
		{"a !bl", CornerStyle{Kinds: [4]CornerKind{R, R, R, F}, Retract: true}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCornerStyle(tt.in))
		})
	}
}

func TestCanonicalRetargeting(t *testing.T) {
	st := ParseCornerStyle("tr")
	tests := []struct {
		edge geom.Edge
		want geom.Corner // canonical corner that ends up rounded
	}{
		{geom.EdgeTop, geom.CornerTopRight},
		{geom.EdgeBottom, geom.CornerBottomRight},
		{geom.EdgeLeft, geom.CornerBottomLeft},
		{geom.EdgeRight, geom.CornerTopLeft},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			got := st.Canonical(tt.edge)
			for _, c := range geom.Corners {
				want := CornerFlat
				if c == tt.want {
					want = CornerRound
				}
				assert.Equal(t, want, got.Kinds[c], c.String())
			}
		})
	}
}

// The canonical corner picked for each edge must land on the physical
// corner the style named once the edge transform is applied.
func TestCanonicalMatchesGeometry(t *testing.T) {
	const length, thick = 40.0, 10.0
	canonical := map[geom.Corner]geom.Point{
		geom.CornerTopLeft:     geom.Pt(0, 0),
		geom.CornerTopRight:    geom.Pt(length, 0),
		geom.CornerBottomRight: geom.Pt(length, thick),
		geom.CornerBottomLeft:  geom.Pt(0, thick),
	}
	for _, e := range geom.Edges {
		m := geom.EdgeTransform(e)
		sz := geom.Size{W: int(length), H: int(thick)}
		if !e.Horizontal() {
			sz = geom.Size{W: int(thick), H: int(length)}
		}
		origin := geom.EdgeOrigin(e, sz)
		for _, phys := range geom.Corners {
			st := CornerStyle{}
			st.Kinds[phys] = CornerRound
			can := st.Canonical(e)
			var c geom.Corner
			for _, k := range geom.Corners {
				if can.Kinds[k] == CornerRound {
					c = k
				}
			}
			p := m.Apply(canonical[c]).Add(origin)
			wantX, wantY := 0.0, 0.0
			if !phys.Left() {
				wantX = float64(sz.W)
			}
			if !phys.Top() {
				wantY = float64(sz.H)
			}
			assert.Equal(t, geom.Pt(wantX, wantY), p, "%v %v", e, phys)
		}
	}
}

func TestCornerStyleString(t *testing.T) {
	assert.Equal(t, "!tl tr /br !bl", ParseCornerStyle(`tr \br`).String())
	assert.Equal(t, "tl tr br bl retract", ParseCornerStyle("a").String())
}
