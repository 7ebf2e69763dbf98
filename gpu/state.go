// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/glw/gpu/device"
)

// state issues every binding call of the package and tracks what is
// bound, so the bind, use, unbind discipline can be checked.
// The element array binding is part of the bound vertex array and is
// only tracked while no vertex array is bound.
type state struct {
	dev device.Device

	buffers map[device.Enum]device.Buffer
	vao     device.VertexArray
	program device.Program
	texture device.Texture
	fb      device.Framebuffer
}

func newState(dev device.Device) *state {
	return &state{dev: dev, buffers: map[device.Enum]device.Buffer{}}
}

func (s *state) bindBuffer(target device.Enum, b device.Buffer) {
	s.dev.BindBuffer(target, b)
	if target == device.ELEMENT_ARRAY_BUFFER && s.vao != 0 {
		return
	}
	s.buffers[target] = b
}

// withBuffer binds b to target for the duration of fn.
func (s *state) withBuffer(target device.Enum, b device.Buffer, fn func()) {
	s.bindBuffer(target, b)
	fn()
	s.bindBuffer(target, 0)
}

func (s *state) bindVertexArray(a device.VertexArray) {
	s.dev.BindVertexArray(a)
	s.vao = a
}

// withVertexArray binds a for the duration of fn.
func (s *state) withVertexArray(a device.VertexArray, fn func()) {
	s.bindVertexArray(a)
	fn()
	s.bindVertexArray(0)
}

func (s *state) useProgram(p device.Program) {
	s.dev.UseProgram(p)
	s.program = p
}

// withTexture binds t to texture unit 0 for the duration of fn.
// A zero t leaves the unit untouched.
func (s *state) withTexture(t device.Texture, fn func()) {
	if t == 0 {
		fn()
		return
	}
	s.dev.ActiveTexture(device.TEXTURE0)
	s.dev.BindTexture(device.TEXTURE_2D, t)
	s.texture = t
	fn()
	s.dev.BindTexture(device.TEXTURE_2D, 0)
	s.texture = 0
}

func (s *state) bindFramebuffer(f device.Framebuffer) {
	s.dev.BindFramebuffer(device.FRAMEBUFFER, f)
	s.fb = f
}

// forget drops tracked bindings of deleted objects, which the device
// unbinds itself.
func (s *state) forget(kind ResourceKinds, id uint32) {
	switch kind {
	case BufferResource:
		for t, b := range s.buffers {
			if uint32(b) == id {
				s.buffers[t] = 0
			}
		}
	case VertexArrayResource:
		if uint32(s.vao) == id {
			s.vao = 0
		}
	case ProgramResource:
		if uint32(s.program) == id {
			s.program = 0
		}
	case TextureResource:
		if uint32(s.texture) == id {
			s.texture = 0
		}
	case FrameBufferResource:
		if uint32(s.fb) == id {
			s.fb = 0
		}
	}
}

// neutral returns an error describing any buffer slot, vertex array or
// texture unit 0 binding left in place.
func (s *state) neutral() error {
	for t, b := range s.buffers {
		if b != 0 {
			return fmt.Errorf("buffer %d left bound to target %#x", b, uint32(t))
		}
	}
	if s.vao != 0 {
		return fmt.Errorf("vertex array %d left bound", s.vao)
	}
	if s.texture != 0 {
		return fmt.Errorf("texture %d left bound to unit 0", s.texture)
	}
	return nil
}
