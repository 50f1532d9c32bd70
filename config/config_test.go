// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/decor/theme"
)

const sampleTOML = `
font_size = 12

[decor]
border_size = [30, 4]
active_title = "#ff0000"
extra_themes = "dialog tool"

[dialog]
uses_if = 'app_id is "pinentry"'
corner_radius = 0
round_on = "all"
debug_mode = true

[tool]
active_title = "1 1 1 0.5"
`

const sampleYAML = `
font_size: 12
decor:
  border_size: [30, 4]
  active_title: "#ff0000"
  extra_themes: dialog tool
dialog:
  uses_if: app_id is "pinentry"
  corner_radius: 0
  round_on: all
  debug_mode: true
tool:
  active_title: "1 1 1 0.5"
`

func TestDefaultsRoundTrip(t *testing.T) {
	o, err := Defaults().Resolve("anything")
	require.NoError(t, err)
	assert.Equal(t, theme.DefaultOptions(), o)
}

func TestParseFormats(t *testing.T) {
	for _, tt := range []struct {
		name string
		data string
		f    Format
	}{
		{"toml", sampleTOML, FormatTOML},
		{"yaml", sampleYAML, FormatYAML},
	} {
		t.Run(tt.name, func(t *testing.T) {
			file, err := Parse([]byte(tt.data), tt.f)
			require.NoError(t, err)
			s := Defaults()
			s.Merge(file)

			assert.Equal(t, []string{"decor", "dialog", "tool"}, s.Sections())
			assert.Equal(t, []string{"dialog", "tool"}, s.ExtraThemes())
			assert.Equal(t, `app_id is "pinentry"`, s.UsesIf("dialog"))
			assert.Empty(t, s.UsesIf("tool"))

			def, err := s.Resolve(GlobalSection)
			require.NoError(t, err)
			assert.Equal(t, 12, def.FontSize)
			assert.Equal(t, "30 4", def.BorderSize)
			assert.Equal(t, gg.Hex("#ff0000"), def.TitleColors.Active)
			assert.Equal(t, 8, def.CornerRadius)

			dialog, err := s.Resolve("dialog")
			require.NoError(t, err)
			assert.Equal(t, 0, dialog.CornerRadius)
			assert.Equal(t, "all", dialog.RoundOn)
			assert.True(t, dialog.Debug)
			assert.Equal(t, "30 4", dialog.BorderSize, "falls back to the global section")
			assert.Equal(t, 12, dialog.FontSize)

			tool, err := s.Resolve("tool")
			require.NoError(t, err)
			assert.Equal(t, gg.RGBA{R: 1, G: 1, B: 1, A: 0.5}, tool.TitleColors.Active)

			extra := s.ExtraThemeOptions()
			require.Len(t, extra, 2)
			assert.Equal(t, "dialog", extra[0].Name)
			assert.Equal(t, dialog, extra[0].Options)
		})
	}
}

func TestResolveMissingDefault(t *testing.T) {
	s := NewStore()
	s.Set("dialog", "font", "serif")
	_, err := s.Resolve("dialog")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDefault)
	assert.Contains(t, err.Error(), "font_size")
	assert.NotContains(t, err.Error(), "missing default: font\n")
}

func TestResolveBadValues(t *testing.T) {
	for key, value := range map[string]string{
		"font_size":        "big",
		"corner_radius":    "-1",
		"active_border":    "#zzzzzz",
		"inactive_buttons": "maybe",
		"border_size":      "1 2 3",
	} {
		t.Run(key, func(t *testing.T) {
			s := Defaults()
			s.Set("broken", key, value)
			_, err := s.Resolve("broken")
			assert.ErrorIs(t, err, ErrValue)
			_, err = s.Resolve("other")
			assert.NoError(t, err)
		})
	}
}

func TestBrokenExtraThemeIsSkipped(t *testing.T) {
	s := Defaults()
	s.Set(GlobalSection, "extra_themes", "broken good")
	s.Set("broken", "font_size", "huge")
	s.Set("good", "corner_radius", "3")

	extra := s.ExtraThemeOptions()
	require.Len(t, extra, 1)
	assert.Equal(t, "good", extra[0].Name)
	assert.Equal(t, 3, extra[0].Options.CornerRadius)
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("/etc/decor.TOML")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)
	f, err = FormatFor("decor.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	_, err = FormatFor("decor.ini")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("[decor\nfont ="), FormatTOML)
	assert.Error(t, err)
	_, err = Parse([]byte("decor: [unclosed"), FormatYAML)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decor.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0o600))
	s, err := Load(path)
	require.NoError(t, err)
	o, err := s.Resolve("dialog")
	require.NoError(t, err)
	assert.Equal(t, 0, o.CornerRadius)
	assert.Equal(t, theme.DefaultOptions().Layout, o.Layout)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("font_size: 10\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan *Store, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(s *Store, err error) {
			if err != nil {
				return
			}
			select {
			case got <- s:
			default:
			}
		})
	}()

	var s *Store
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("font_size: 20\n"), 0o600)
		select {
		case s = <-got:
			return true
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)
	v, _ := s.Get(GlobalSection, "font_size")
	assert.Equal(t, "20", v)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestEncodeRoundTrip(t *testing.T) {
	in, err := Parse([]byte(sampleTOML), FormatTOML)
	require.NoError(t, err)

	for _, f := range []Format{FormatTOML, FormatYAML} {
		data, err := in.Encode(f)
		require.NoError(t, err)
		out, err := Parse(data, f)
		require.NoError(t, err)
		assert.Equal(t, in, out, "format %d", f)
	}

	_, err = in.Encode(Format(9))
	assert.ErrorIs(t, err, ErrFormat)
}
