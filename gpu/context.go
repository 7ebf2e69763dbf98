// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu is a safety layer over an immediate-mode graphics device.
// It creates and owns device resources (buffers, vertex arrays, programs,
// textures, framebuffers), describes the layout of typed vertex data,
// resolves attribute, uniform and uniform block names to slots, and
// dispatches draws.
//
// A [Context] wraps one [device.Device]. The device has global, mutable
// binding state, so every operation binds only what it needs and
// returns the buffer slots and texture unit 0 to a neutral (unbound)
// state before returning. Nothing in this package is safe for
// concurrent use: a single goroutine, locked to its OS thread, must own
// the Context and every resource created from it.
//
// Resources are released explicitly with Delete. The Context counts
// live resources per kind, so leaks are visible with [Context.Live].
package gpu

//go:generate core generate

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glw/gpu/device"
)

// BindingPoint is a uniform buffer binding point index.
type BindingPoint uint32

// Context is the process-wide handle to the graphics device.
// Only one Context may exist per device.
type Context struct {

	// Debug enables checking, after every operation, that the device
	// binding state is neutral and that the device recorded no error.
	// A failed check panics.
	Debug bool

	dev device.Device
	st  *state

	nextBinding BindingPoint
	defaultFB   *FrameBuffer
	live        map[ResourceKinds]int
}

// NewContext returns a new Context for the given device, which must
// have a current drawable surface. It enables depth testing.
func NewContext(dev device.Device) *Context {
	c := &Context{dev: dev, live: map[ResourceKinds]int{}}
	c.st = newState(dev)
	c.defaultFB = &FrameBuffer{ctx: c, hasDepth: true}
	dev.DepthFunc(device.LESS)
	dev.Enable(device.DEPTH_TEST)
	slog.Debug("gpu: context created")
	return c
}

// Device returns the underlying device.
func (c *Context) Device() device.Device {
	return c.dev
}

// NewBindingPoint returns a new uniform buffer binding point.
// Binding points are allocated in increasing order from 0.
func (c *Context) NewBindingPoint() BindingPoint {
	bp := c.nextBinding
	c.nextBinding++
	return bp
}

// DefaultFrameBuffer returns the framebuffer of the drawable surface.
func (c *Context) DefaultFrameBuffer() *FrameBuffer {
	return c.defaultFB
}

// Live returns the number of live resources of the given kind.
func (c *Context) Live(kind ResourceKinds) int {
	return c.live[kind]
}

// LiveTotal returns the number of live resources of all kinds.
func (c *Context) LiveTotal() int {
	n := 0
	for _, v := range c.live {
		n += v
	}
	return n
}

func (c *Context) created(kind ResourceKinds, id uint32) {
	c.live[kind]++
	slog.Debug("gpu: created", "kind", kind, "id", id)
}

func (c *Context) deleted(kind ResourceKinds, id uint32) {
	c.live[kind]--
	slog.Debug("gpu: deleted", "kind", kind, "id", id)
}

// SetClearColor sets the color used by [FrameBuffer.Clear].
func (c *Context) SetClearColor(r, g, b, a float32) {
	c.dev.ClearColor(r, g, b, a)
}

// SetLineWidth sets the rasterized width of lines.
func (c *Context) SetLineWidth(w float32) {
	c.dev.LineWidth(w)
}

// SetPointSize sets the rasterized size of points, unless
// [Context.EnableProgramPointSize] has been called.
func (c *Context) SetPointSize(s float32) {
	c.dev.PointSize(s)
}

// EnableProgramPointSize makes vertex shaders set the point size.
func (c *Context) EnableProgramPointSize() {
	c.dev.Enable(device.PROGRAM_POINT_SIZE)
}

// SetViewport sets the viewport rectangle.
func (c *Context) SetViewport(x, y, width, height int) {
	c.dev.Viewport(x, y, width, height)
}

// Clear clears the color and depth of the current framebuffer.
func (c *Context) Clear() {
	c.dev.Clear(device.COLOR_BUFFER_BIT | device.DEPTH_BUFFER_BIT)
}

// done is called at the end of every public operation.
func (c *Context) done(op string) {
	if !c.Debug {
		return
	}
	if err := c.st.neutral(); err != nil {
		panic(fmt.Sprintf("gpu: %s: %v", op, err))
	}
	if code := c.dev.GetError(); code != device.NO_ERROR {
		panic(fmt.Sprintf("gpu: %s: device error: %s", op, device.ErrorString(code)))
	}
}
