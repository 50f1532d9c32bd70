// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package theme

import (
	"bytes"
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	_ "image/jpeg" // icon decoders
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/gogpu/gg"
	"github.com/h2non/filetype"
	xdraw "golang.org/x/image/draw"
)

// ErrIconNotFound is returned when no icon file matches an app id.
var ErrIconNotFound = errors.New("theme: icon not found")

// IconLoader finds the image for an application id.
type IconLoader interface {
	Load(appID string, size int) (image.Image, error)
}

// XDGIcons searches freedesktop icon theme directories below Root.
type XDGIcons struct {
	Root  fs.FS    // file system, rooted at "/" for the host
	Dirs  []string // base directories relative to Root
	Theme string   // preferred theme, "hicolor" is always searched after it
}

// SystemIcons returns a loader over the usual XDG data directories.
func SystemIcons(theme string) *XDGIcons {
	dirs := []string{"usr/share/icons", "usr/local/share/icons", "usr/share/pixmaps"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append([]string{strings.TrimPrefix(path.Join(home, ".local/share/icons"), "/")}, dirs...)
	}
	return &XDGIcons{Root: os.DirFS("/"), Dirs: dirs, Theme: theme}
}

var iconSizes = []int{512, 256, 128, 96, 64, 48, 32, 24, 22, 16}

func (x *XDGIcons) candidates(appID string, size int) []string {
	themes := []string{x.Theme}
	if x.Theme != "hicolor" {
		themes = append(themes, "hicolor")
	}
	names := []string{appID}
	if lower := strings.ToLower(appID); lower != appID {
		names = append(names, lower)
	}
	// Smallest size that is at least the requested one first, then larger,
	// then smaller.
	var sizes []int
	for i := len(iconSizes) - 1; i >= 0; i-- {
		if iconSizes[i] >= size {
			sizes = append(sizes, iconSizes[i])
		}
	}
	for _, s := range iconSizes {
		if s < size {
			sizes = append(sizes, s)
		}
	}
	var out []string
	for _, dir := range x.Dirs {
		for _, name := range names {
			for _, th := range themes {
				if th == "" {
					continue
				}
				for _, s := range sizes {
					out = append(out, path.Join(dir, th, fmt.Sprintf("%dx%d", s, s), "apps", name+".png"))
				}
			}
			out = append(out, path.Join(dir, name+".png"))
		}
	}
	return out
}

// Load implements IconLoader.
func (x *XDGIcons) Load(appID string, size int) (image.Image, error) {
	if appID == "" || strings.ContainsAny(appID, "/\x00") {
		return nil, ErrIconNotFound
	}
	for _, p := range x.candidates(appID, size) {
		data, err := fs.ReadFile(x.Root, p)
		if err != nil {
			continue
		}
		if !filetype.IsImage(data) {
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			continue
		}
		return img, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrIconNotFound, appID)
}

// scaleIcon resamples img to size x size.
func scaleIcon(img image.Image, size int) *Raster {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return rasterFromRGBA(dst)
}

// placeholderIcon draws a filled disc whose hue is derived from appID.
func placeholderIcon(appID string, size int) *Raster {
	h := fnv.New32a()
	_, _ = h.Write([]byte(appID))
	sum := h.Sum32()
	hue := float64(sum%360) / 360

	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()
	r, g, b := hsvToRGB(hue, 0.45, 0.85)
	dc.SetRGBA(r, g, b, 1)
	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	fill(dc, "placeholder icon")
	return &Raster{pm: dc.ResizeTarget()}
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
