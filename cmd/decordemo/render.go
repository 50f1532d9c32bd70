// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/config"
	"github.com/gogpu/decor/geom"
	"github.com/gogpu/decor/host/soft"
	"github.com/gogpu/decor/match"
)

type renderFlags struct {
	title, appID string
	width        int
	height       int
	scale        float64
	inactive     bool
	maximized    bool
	input        string
	out          string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.title, "title", "Terminal", "window title")
	fl.StringVar(&f.appID, "app-id", "org.example.Terminal", "window app_id")
	fl.IntVar(&f.width, "width", 640, "frame width in logical pixels")
	fl.IntVar(&f.height, "height", 400, "frame height in logical pixels")
	fl.Float64Var(&f.scale, "scale", 1, "output scale")
	fl.BoolVar(&f.inactive, "inactive", false, "render the inactive variant")
	fl.BoolVar(&f.maximized, "maximized", false, "tile the window to every edge")
	fl.StringVar(&f.input, "input", "", `pointer script, e.g. "move 150 10; press; release"`)
	fl.StringVarP(&f.out, "output", "o", "decor.png", "PNG file to write")
}

// scene is a decorated in-memory window.
type scene struct {
	win   *soft.Window
	r     *soft.Renderer
	d     *decor.Decoration
	theme string
}

func (f *renderFlags) build(m func(decor.Renderer) (*decor.Manager, error)) (*scene, error) {
	if f.width <= 0 || f.height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", f.width, f.height)
	}
	size := geom.Size{W: f.width, H: f.height}
	r := soft.New(size.W, size.H, f.scale)
	mgr, err := m(r)
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	w := soft.NewWindow(f.title, f.appID, size)
	w.SetActivated(!f.inactive)
	if f.maximized {
		w.SetTiled(geom.EdgeMaskAll)
	}
	d, ok := mgr.Decorate(decor.StrongWindow(w))
	if !ok {
		_ = r.Close()
		return nil, errIgnored
	}
	name, _ := mgr.ThemeFor(match.View{AppID: f.appID, Title: f.title})
	if name == "" {
		name = config.GlobalSection
	}
	return &scene{win: w, r: r, d: d, theme: name}, nil
}

var errIgnored = errors.New("window is ignored by ignore_views")

func (s *scene) draw() error {
	s.r.Clear()
	return s.d.Render(geom.RegionOf(geom.RectFromSize(s.d.Size())), s.r.Scale())
}

func (s *scene) close() {
	s.d.Detach()
	_ = s.r.Close()
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Decorate a synthetic window and write it to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, err := parseScript(f.input)
			if err != nil {
				return err
			}
			store, err := loadStore()
			if err != nil {
				return err
			}
			sc, err := f.build(func(r decor.Renderer) (*decor.Manager, error) {
				return buildManager(store, r)
			})
			if err != nil {
				return err
			}
			defer sc.close()

			replay(sc.d, steps)
			if err := sc.draw(); err != nil {
				return err
			}
			if err := sc.r.SavePNG(f.out); err != nil {
				return fmt.Errorf("write %s: %w", f.out, err)
			}

			out := cmd.OutOrStdout()
			st := sc.d.Stats()
			fmt.Fprintf(out, "wrote %s (theme %s, %d title, %d icon, %d corner, %d accent rasters)\n",
				f.out, sc.theme, st.Title, st.Icon, st.Corners, st.Accents)
			for _, req := range sc.win.Requests() {
				fmt.Fprintf(out, "request: %s\n", req)
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
