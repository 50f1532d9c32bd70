// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gogpu/gg"

	"github.com/gogpu/decor/internal/dlog"
	"github.com/gogpu/decor/theme"
)

type resolver struct {
	s    *Store
	name string
	errs []error
}

func (r *resolver) str(key string) string {
	v, ok := r.s.Lookup(r.name, key)
	if !ok {
		r.errs = append(r.errs, fmt.Errorf("%w: %s", ErrMissingDefault, key))
	}
	return v
}

func (r *resolver) integer(key string) int {
	v := r.str(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		r.errs = append(r.errs, fmt.Errorf("%w: %s = %q", ErrValue, key, v))
	}
	return n
}

func (r *resolver) flag(key string) bool {
	v := r.str(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%w: %s = %q", ErrValue, key, v))
	}
	return b
}

func (r *resolver) color(key string) gg.RGBA {
	v := r.str(key)
	if v == "" {
		return gg.RGBA{}
	}
	c, err := theme.ParseColor(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%w: %s: %w", ErrValue, key, err))
	}
	return c
}

func (r *resolver) colors(active, inactive string) theme.ColorSet {
	return theme.ColorSet{Active: r.color(active), Inactive: r.color(inactive)}
}

func (r *resolver) hover(normal, hovered string) theme.HoverSet {
	return theme.HoverSet{Normal: r.color(normal), Hovered: r.color(hovered)}
}

// Resolve builds the options of theme name. Every key the theme does not
// set comes from the global section. The error joins every missing or
// malformed key.
func (s *Store) Resolve(name string) (theme.Options, error) {
	r := &resolver{s: s, name: name}
	o := theme.Options{
		Font:          r.str("font"),
		FontSize:      r.integer("font_size"),
		TitleColors:   r.colors("active_title", "inactive_title"),
		MaxTitleSize:  r.integer("max_title_size"),
		BorderSize:    r.str("border_size"),
		BorderColors:  r.colors("active_border", "inactive_border"),
		CornerRadius:  r.integer("corner_radius"),
		RoundOn:       r.str("round_on"),
		OutlineSize:   r.integer("outline_size"),
		OutlineColors: r.colors("active_outline", "inactive_outline"),

		ButtonSize:      r.integer("button_size"),
		ButtonStyle:     r.str("button_style"),
		MinimizeColors:  r.hover("normal_min", "hovered_min"),
		MaximizeColors:  r.hover("normal_max", "hovered_max"),
		CloseColors:     r.hover("normal_close", "hovered_close"),
		InactiveButtons: r.flag("inactive_buttons"),

		IconSize:  r.integer("icon_size"),
		IconTheme: r.str("icon_theme"),

		AccentColors: r.colors("active_accent", "inactive_accent"),
		AccentStyle:  r.str("accent_style"),

		PaddingSize: r.integer("padding_size"),
		Layout:      r.str("layout"),

		IgnoreViews:        r.str("ignore_views"),
		Debug:              r.flag("debug_mode"),
		NoMarginsWhenTiled: r.flag("no_margins_when_tiled"),
	}
	if _, err := theme.ParseBorder(o.BorderSize); err != nil && o.BorderSize != "" {
		r.errs = append(r.errs, fmt.Errorf("%w: border_size: %w", ErrValue, err))
	}
	if err := errors.Join(r.errs...); err != nil {
		return theme.Options{}, fmt.Errorf("config: theme %q: %w", name, err)
	}
	return o, nil
}

// Theme is a resolved extra theme with its selection expression.
type Theme struct {
	Name    string
	Options theme.Options
	UsesIf  string
}

// ExtraThemeOptions resolves every theme listed in extra_themes. A theme
// that fails to resolve is logged and left out.
func (s *Store) ExtraThemeOptions() []Theme {
	var out []Theme
	for _, name := range s.ExtraThemes() {
		o, err := s.Resolve(name)
		if err != nil {
			dlog.L().Warn("decor: skipping extra theme", "theme", name, "err", err)
			continue
		}
		out = append(out, Theme{Name: name, Options: o, UsesIf: s.UsesIf(name)})
	}
	return out
}
