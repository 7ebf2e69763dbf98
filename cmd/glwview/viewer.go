// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package main

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glw/config"
	"cogentcore.org/glw/gpu/glfwgpu"
	"cogentcore.org/glw/gpu/shaders"
)

// run opens the window and draws the scene until the window is closed,
// the frame limit is reached, or the capture is saved.
func run(cfg *config.Config) error {
	win, terminate, err := glfwgpu.CreateWindow(glfwgpu.Options{
		Title:  cfg.Window.Title,
		Size:   image.Pt(cfg.Window.Width, cfg.Window.Height),
		VSync:  cfg.Window.VSync,
		Hidden: cfg.Capture != "",
	})
	if err != nil {
		return err
	}
	defer terminate()

	s, err := newScene(win.Context, cfg)
	if err != nil {
		return err
	}
	defer s.delete()

	var changed <-chan string
	if cfg.Watch && len(s.files) > 0 {
		w, err := shaders.NewWatcher(s.files...)
		if err != nil {
			return err
		}
		defer func() { errors.Log(w.Close()) }()
		changed = w.Changed()
		slog.Info("glwview: watching shaders", "files", s.files)
	}

	start := time.Now()
	for frame := 0; win.Poll(); frame++ {
		select {
		case name := <-changed:
			slog.Info("glwview: shader changed", "file", name)
			s.reload()
		default:
		}
		size := win.FrameBufferSize()
		aspect := float32(size.X) / float32(max(size.Y, 1))
		angle := float32(time.Since(start).Seconds()) * 0.5
		if cfg.Capture != "" {
			angle = 0
		}
		if err := s.draw(aspect, angle); err != nil {
			return err
		}
		if cfg.Capture != "" {
			return s.capture(size.X, size.Y, cfg.Capture)
		}
		win.SwapBuffers()
		if cfg.Frames > 0 && frame+1 >= cfg.Frames {
			break
		}
	}
	return nil
}
