// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Package glfwgpu opens desktop windows with an OpenGL 4.1 core
// context using glfw and returns a [gpu.Context] drawing into them.
package glfwgpu

import (
	"image"
	"log/slog"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glw/gpu"
	"cogentcore.org/glw/gpu/device/gldevice"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// Init initializes glfw.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down glfw; call as the last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// Options configure a new window.
type Options struct {
	Title string

	// Size is the requested window size in screen coordinates.
	Size image.Point

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool

	// Hidden creates the window without showing it, for offscreen
	// rendering and captures.
	Hidden bool
}

// Window is a glfw window whose GL context backs Context.
type Window struct {
	Window  *glfw.Window
	Device  *gldevice.Device
	Context *gpu.Context

	resize func(size image.Point)
}

// NewWindow makes a window with an OpenGL 4.1 core context, makes the
// context current, and loads the GL functions through glfw.
// [Init] must have been called.
func NewWindow(opts Options) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.True)
	}
	gw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	gw.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	dev, err := gldevice.New(glfw.GetProcAddress)
	if err != nil {
		gw.Destroy()
		return nil, err
	}
	slog.Info("glfwgpu: opened window", "title", opts.Title, "gl", dev.Version, "renderer", dev.Renderer)
	w := &Window{Window: gw, Device: dev, Context: gpu.NewContext(dev)}
	fb := w.FrameBufferSize()
	w.Context.SetViewport(0, 0, fb.X, fb.Y)
	gw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.Context.SetViewport(0, 0, width, height)
		if w.resize != nil {
			w.resize(image.Pt(width, height))
		}
	})
	return w, nil
}

// SetResize sets the function called with the new framebuffer size
// when the window is resized.
func (w *Window) SetResize(fun func(size image.Point)) {
	w.resize = fun
}

// FrameBufferSize returns the size of the default framebuffer in
// pixels, which can differ from the window size on high DPI displays.
func (w *Window) FrameBufferSize() image.Point {
	width, height := w.Window.GetFramebufferSize()
	return image.Pt(width, height)
}

// Poll processes pending events and returns false once the window
// has been asked to close.
func (w *Window) Poll() bool {
	if w.Window.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

// SetShouldClose asks the window to close at the next [Window.Poll].
func (w *Window) SetShouldClose() {
	w.Window.SetShouldClose(true)
}

// SwapBuffers shows the frame drawn to the default framebuffer.
func (w *Window) SwapBuffers() {
	w.Window.SwapBuffers()
}

// Destroy destroys the window and its GL context.
func (w *Window) Destroy() {
	w.Window.Destroy()
}

// CreateWindow is a helper for simple programs that initializes glfw
// and opens a window. The returned terminate function destroys the
// window and terminates glfw.
func CreateWindow(opts Options) (w *Window, terminate func(), err error) {
	if err = Init(); err != nil {
		return
	}
	w, err = NewWindow(opts)
	if err != nil {
		Terminate()
		return
	}
	terminate = func() {
		w.Destroy()
		Terminate()
	}
	return
}
