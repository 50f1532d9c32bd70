// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/decor/theme"
)

// GlobalSection is the section holding defaults for every theme.
const GlobalSection = "decor"

var (
	// ErrMissingDefault is returned when a key is set neither by a theme
	// nor by the global section.
	ErrMissingDefault = errors.New("config: missing default")

	// ErrValue is returned for values that do not parse.
	ErrValue = errors.New("config: invalid value")

	// ErrFormat is returned for unsupported file formats.
	ErrFormat = errors.New("config: unsupported format")
)

// Format is a configuration file syntax.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, path)
	}
}

// Store holds string values by section and key.
type Store struct {
	sections map[string]map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{sections: make(map[string]map[string]string)}
}

// Set stores value under section and key.
func (s *Store) Set(section, key, value string) {
	sec, ok := s.sections[section]
	if !ok {
		sec = make(map[string]string)
		s.sections[section] = sec
	}
	sec[key] = value
}

// Get returns the value stored under section and key.
func (s *Store) Get(section, key string) (string, bool) {
	v, ok := s.sections[section][key]
	return v, ok
}

// Lookup returns the value of key for theme name, falling back to the
// global section.
func (s *Store) Lookup(name, key string) (string, bool) {
	if v, ok := s.Get(name, key); ok {
		return v, true
	}
	return s.Get(GlobalSection, key)
}

// Sections returns the section names in sorted order.
func (s *Store) Sections() []string {
	return slices.Sorted(maps.Keys(s.sections))
}

// Merge copies every value of o into s, replacing existing ones.
func (s *Store) Merge(o *Store) {
	for name, sec := range o.sections {
		for k, v := range sec {
			s.Set(name, k, v)
		}
	}
}

// ExtraThemes returns the theme names listed in the global extra_themes
// key, in order.
func (s *Store) ExtraThemes() []string {
	v, _ := s.Get(GlobalSection, "extra_themes")
	return strings.Fields(v)
}

// UsesIf returns the matcher expression selecting theme name.
func (s *Store) UsesIf(name string) string {
	v, _ := s.Get(name, "uses_if")
	return v
}

// Parse reads a store from data. Top-level scalar keys belong to the
// global section.
func Parse(data []byte, f Format) (*Store, error) {
	var raw map[string]any
	var err error
	switch f {
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %d", ErrFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	s := NewStore()
	for name, v := range raw {
		sec, ok := v.(map[string]any)
		if !ok {
			s.Set(GlobalSection, name, stringify(v))
			continue
		}
		for k, v := range sec {
			s.Set(name, k, stringify(v))
		}
	}
	return s, nil
}

// Encode writes s in format f with one table per section. The result
// parses back into an equal store.
func (s *Store) Encode(f Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch f {
	case FormatTOML:
		out, err = toml.Marshal(s.sections)
	case FormatYAML:
		out, err = yaml.Marshal(s.sections)
	default:
		return nil, fmt.Errorf("%w: %d", ErrFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return out, nil
}

// Load reads the file at path over the built-in defaults.
func Load(path string) (*Store, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	file, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s := Defaults()
	s.Merge(file)
	return s, nil
}

func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = stringify(e)
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(v)
	}
}

func formatColor(c gg.RGBA) string {
	b := func(f float64) uint8 { return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255)) }
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c.R), b(c.G), b(c.B), b(c.A))
}

// Defaults returns a store whose global section holds every key with the
// value of theme.DefaultOptions.
func Defaults() *Store {
	s := NewStore()
	for k, v := range encode(theme.DefaultOptions()) {
		s.Set(GlobalSection, k, v)
	}
	return s
}

// encode maps options onto their configuration keys.
func encode(o theme.Options) map[string]string {
	itoa := strconv.Itoa
	btoa := strconv.FormatBool
	return map[string]string{
		"font":                  o.Font,
		"font_size":             itoa(o.FontSize),
		"active_title":          formatColor(o.TitleColors.Active),
		"inactive_title":        formatColor(o.TitleColors.Inactive),
		"max_title_size":        itoa(o.MaxTitleSize),
		"border_size":           o.BorderSize,
		"active_border":         formatColor(o.BorderColors.Active),
		"inactive_border":       formatColor(o.BorderColors.Inactive),
		"corner_radius":         itoa(o.CornerRadius),
		"round_on":              o.RoundOn,
		"outline_size":          itoa(o.OutlineSize),
		"active_outline":        formatColor(o.OutlineColors.Active),
		"inactive_outline":      formatColor(o.OutlineColors.Inactive),
		"button_size":           itoa(o.ButtonSize),
		"button_style":          o.ButtonStyle,
		"normal_min":            formatColor(o.MinimizeColors.Normal),
		"hovered_min":           formatColor(o.MinimizeColors.Hovered),
		"normal_max":            formatColor(o.MaximizeColors.Normal),
		"hovered_max":           formatColor(o.MaximizeColors.Hovered),
		"normal_close":          formatColor(o.CloseColors.Normal),
		"hovered_close":         formatColor(o.CloseColors.Hovered),
		"inactive_buttons":      btoa(o.InactiveButtons),
		"icon_size":             itoa(o.IconSize),
		"icon_theme":            o.IconTheme,
		"active_accent":         formatColor(o.AccentColors.Active),
		"inactive_accent":       formatColor(o.AccentColors.Inactive),
		"accent_style":          o.AccentStyle,
		"padding_size":          itoa(o.PaddingSize),
		"layout":                o.Layout,
		"ignore_views":          o.IgnoreViews,
		"debug_mode":            btoa(o.Debug),
		"no_margins_when_tiled": btoa(o.NoMarginsWhenTiled),
	}
}
