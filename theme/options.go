// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package theme

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/decor/geom"
)

// ColorSet is a pair of colors for active and inactive windows.
type ColorSet struct {
	Active, Inactive gg.RGBA
}

// Pick returns the color for the given activation state.
func (c ColorSet) Pick(active bool) gg.RGBA {
	if active {
		return c.Active
	}
	return c.Inactive
}

// HoverSet is a pair of colors for a button at rest and under the pointer.
type HoverSet struct {
	Normal, Hovered gg.RGBA
}

// Options is a fully resolved theme. Fields map one-to-one onto the
// recognized configuration keys.
type Options struct {
	Font     string // font
	FontSize int    // font_size

	TitleColors  ColorSet // active_title, inactive_title
	MaxTitleSize int      // max_title_size

	BorderSize   string   // border_size: "all", "top others" or "top left bottom right"
	BorderColors ColorSet // active_border, inactive_border
	CornerRadius int      // corner_radius
	RoundOn      string   // round_on: "all" or any of "tl tr bl br"

	OutlineSize   int      // outline_size
	OutlineColors ColorSet // active_outline, inactive_outline

	ButtonSize      int      // button_size
	ButtonStyle     string   // button_style
	MinimizeColors  HoverSet // normal_min, hovered_min
	MaximizeColors  HoverSet // normal_max, hovered_max
	CloseColors     HoverSet // normal_close, hovered_close
	InactiveButtons bool     // inactive_buttons

	IconSize  int    // icon_size
	IconTheme string // icon_theme

	AccentColors ColorSet // active_accent, inactive_accent
	AccentStyle  string   // accent_style

	PaddingSize int    // padding_size
	Layout      string // layout

	IgnoreViews        string // ignore_views
	Debug              bool   // debug_mode
	NoMarginsWhenTiled bool   // no_margins_when_tiled
}

// DefaultOptions returns the built-in theme used when no configuration is
// loaded.
func DefaultOptions() Options {
	return Options{
		Font:     "sans",
		FontSize: 14,

		TitleColors:  ColorSet{Active: gg.Hex("#e6e6e6"), Inactive: gg.Hex("#8c8c8c")},
		MaxTitleSize: 750,

		BorderSize:   "30 4",
		BorderColors: ColorSet{Active: gg.Hex("#1d1f21"), Inactive: gg.Hex("#2d2f31")},
		CornerRadius: 8,
		RoundOn:      "tl tr",

		OutlineSize:   1,
		OutlineColors: ColorSet{Active: gg.Hex("#373b41"), Inactive: gg.Hex("#282a2e")},

		ButtonSize:     16,
		ButtonStyle:    "simple",
		MinimizeColors: HoverSet{Normal: gg.Hex("#c89e2b"), Hovered: gg.Hex("#f9c23e")},
		MaximizeColors: HoverSet{Normal: gg.Hex("#2ebb3a"), Hovered: gg.Hex("#29ff29")},
		CloseColors:    HoverSet{Normal: gg.Hex("#c24045"), Hovered: gg.Hex("#ff3333")},

		IconSize:  18,
		IconTheme: "hicolor",

		AccentColors: ColorSet{Active: gg.Hex("#5e81ac"), Inactive: gg.Hex("#4c566a")},
		AccentStyle:  "a",

		PaddingSize: 8,
		Layout:      "p icon p title | minimize maximize close p",
	}
}

// Border returns the parsed border insets. A malformed spec yields zero
// insets; config resolution rejects those before they get here.
func (o Options) Border() geom.Insets {
	in, err := ParseBorder(o.BorderSize)
	if err != nil {
		return geom.Insets{}
	}
	return in
}

// RoundMask returns the parsed round-on mask.
func (o Options) RoundMask() RoundOn {
	return ParseRoundOn(o.RoundOn)
}

// Buttons returns the hover colors for kind.
func (o Options) Buttons(kind ButtonKind) HoverSet {
	switch kind {
	case ButtonMinimize:
		return o.MinimizeColors
	case ButtonMaximize:
		return o.MaximizeColors
	default:
		return o.CloseColors
	}
}
