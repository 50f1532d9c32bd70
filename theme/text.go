// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package theme

import (
	"fmt"
	"image/color"
	"image/draw"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/decor/internal/cache"
	"github.com/gogpu/decor/internal/dlog"
)

// TextBackend measures and draws single-line text at a pixel size.
// Measure must be monotone in the text: a prefix never measures wider
// than the full string.
type TextBackend interface {
	// Measure returns the advance width and line height of s.
	Measure(s string, px float64) (w, h float64)
	// Ascent returns the distance from the top of a line to its baseline.
	Ascent(px float64) float64
	// Draw renders s with its baseline origin at (x, y).
	Draw(dst draw.Image, s string, px, x, y float64, col color.Color)
}

// NormalizeTitle returns s in NFC form with control characters and line
// breaks replaced by spaces.
func NormalizeTitle(s string) string {
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}

// FontText is a TextBackend on top of gg/text. Faces are created lazily
// per pixel size and kept in a sharded cache.
type FontText struct {
	src   *text.FontSource
	faces *cache.ShardedCache[uint64, text.Face]
}

// NewFontText wraps raw TrueType/OpenType data.
func NewFontText(data []byte) (*FontText, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("theme: load font: %w", err)
	}
	return &FontText{
		src:   src,
		faces: cache.NewSharded[uint64, text.Face](64, cache.Uint64Hasher),
	}, nil
}

func (f *FontText) face(px float64) text.Face {
	return f.faces.GetOrCreate(math.Float64bits(px), func() text.Face {
		return f.src.Face(px)
	})
}

// Measure implements TextBackend.
func (f *FontText) Measure(s string, px float64) (w, h float64) {
	face := f.face(px)
	w, _ = text.Measure(s, face)
	return w, face.Metrics().LineHeight()
}

// Ascent implements TextBackend.
func (f *FontText) Ascent(px float64) float64 {
	return f.face(px).Metrics().Ascent
}

// Draw implements TextBackend.
func (f *FontText) Draw(dst draw.Image, s string, px, x, y float64, col color.Color) {
	text.Draw(dst, s, f.face(px), x, y, col)
}

var (
	fontMu    sync.Mutex
	fontByKey = map[string]*FontText{}
	fontMap   *fontscan.FontMap
)

// ResolveFont looks up family among the system fonts and falls back to the
// bundled Go Regular face when it cannot be found or loaded. Results are
// memoized per family name.
func ResolveFont(family string) *FontText {
	fontMu.Lock()
	defer fontMu.Unlock()
	if ft, ok := fontByKey[family]; ok {
		return ft
	}
	ft := loadSystemFont(family)
	if ft == nil {
		ft = fallbackFont()
	}
	fontByKey[family] = ft
	return ft
}

func loadSystemFont(family string) *FontText {
	if family == "" {
		return nil
	}
	if fontMap == nil {
		fontMap = fontscan.NewFontMap(nil)
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		if err := fontMap.UseSystemFonts(dir); err != nil {
			dlog.L().Warn("decor: system font scan failed", "err", err)
		}
	}
	loc, ok := fontMap.FindSystemFont(family)
	if !ok {
		dlog.L().Debug("decor: font not found, using fallback", "family", family)
		return nil
	}
	data, err := os.ReadFile(loc.File)
	if err != nil {
		dlog.L().Warn("decor: read font", "file", loc.File, "err", err)
		return nil
	}
	ft, err := NewFontText(data)
	if err != nil {
		dlog.L().Warn("decor: parse font", "file", loc.File, "err", err)
		return nil
	}
	return ft
}

var fallback = sync.OnceValue(func() *FontText {
	ft, err := NewFontText(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return ft
})

func fallbackFont() *FontText { return fallback() }
