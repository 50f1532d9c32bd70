// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/decor/geom"
)

var (
	// ErrBorderSpec is returned for a border_size value that is not one,
	// two or four non-negative integers.
	ErrBorderSpec = errors.New("theme: invalid border size")

	// ErrColor is returned for an unparsable color value.
	ErrColor = errors.New("theme: invalid color")
)

// ParseBorder parses a border size spec. One value applies to every side,
// two values are top and the other three sides, four values are top, left,
// bottom, right.
func ParseBorder(s string) (geom.Insets, error) {
	fields := strings.Fields(s)
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return geom.Insets{}, fmt.Errorf("%w: %q", ErrBorderSpec, s)
		}
		vals[i] = v
	}
	switch len(vals) {
	case 1:
		return geom.Insets{Left: vals[0], Top: vals[0], Right: vals[0], Bottom: vals[0]}, nil
	case 2:
		return geom.Insets{Top: vals[0], Left: vals[1], Right: vals[1], Bottom: vals[1]}, nil
	case 4:
		return geom.Insets{Top: vals[0], Left: vals[1], Bottom: vals[2], Right: vals[3]}, nil
	default:
		return geom.Insets{}, fmt.Errorf("%w: %q", ErrBorderSpec, s)
	}
}

// RoundOn is the set of window corners drawn rounded.
type RoundOn [4]bool

// Has reports whether corner c is rounded.
func (r RoundOn) Has(c geom.Corner) bool {
	return r[c]
}

func (r RoundOn) String() string {
	var parts []string
	for _, c := range geom.Corners {
		if r[c] {
			parts = append(parts, c.String())
		}
	}
	if len(parts) == 4 {
		return "all"
	}
	return strings.Join(parts, " ")
}

// ParseRoundOn parses a round_on mask. "all" selects every corner and
// stops parsing; unknown words are ignored.
func ParseRoundOn(s string) RoundOn {
	var r RoundOn
	for _, w := range strings.Fields(s) {
		switch w {
		case "all":
			return RoundOn{true, true, true, true}
		case "tl":
			r[geom.CornerTopLeft] = true
		case "tr":
			r[geom.CornerTopRight] = true
		case "br":
			r[geom.CornerBottomRight] = true
		case "bl":
			r[geom.CornerBottomLeft] = true
		}
	}
	return r
}

// ParseColor accepts "#RGB", "#RRGGBB", "#RRGGBBAA" or four
// whitespace-separated floats "r g b a" in [0, 1].
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		switch len(s) {
		case 4, 7, 9:
			for _, ch := range s[1:] {
				if !strings.ContainsRune("0123456789abcdefABCDEF", ch) {
					return gg.RGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
				}
			}
			return gg.Hex(s), nil
		}
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	var v [4]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil || x < 0 || x > 1 {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
		}
		v[i] = x
	}
	return gg.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}
