// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package soft is a software host for decorations.
//
// Renderer implements decor.Renderer on a gg.Context, so a decoration can
// be drawn into an image without a GPU compositor. Window is an in-memory
// decor.Window that records the requests a decoration makes. Presenter
// puts a Renderer on a ggcanvas.Canvas for hosts that do have a GPU
// device.
//
//	r := soft.New(300, 200, 2)
//	w := soft.NewWindow("Terminal", "org.example.Term", geom.Size{W: 300, H: 200})
//	d, _ := decor.New(decor.StrongWindow(w), th, r)
//	_ = d.Render(r.TakeDamage(), r.Scale())
//	_ = r.SavePNG("frame.png")
package soft
