// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package softdevice provides an in-memory implementation of
// device.Device. It keeps the same global binding state a GL context
// does (bound buffer per target, bound vertex array, current program,
// texture units, bound framebuffer), stores buffer and texture contents
// byte-for-byte, parses GLSL declarations to resolve attributes,
// uniforms and uniform blocks, checks framebuffer completeness and
// records every draw call. Errors are recorded as GL error flags and
// returned by GetError.
//
// It does not rasterize: draws are validated and recorded only.
package softdevice

import (
	"log/slog"
	"slices"

	"cogentcore.org/glw/gpu/device"
)

// Attrib is the state of one vertex attribute slot in a vertex array.
type Attrib struct {
	Buffer     device.Buffer
	Size       int
	Type       device.Enum
	Integer    bool
	Normalized bool
	Stride     int
	Offset     int
	Enabled    bool
}

type buffer struct {
	data  []byte
	usage device.Enum
}

type vertexArray struct {
	attribs  map[uint32]*Attrib
	elements device.Buffer
}

// Device is the software device. The zero value is not usable; call New.
type Device struct {

	// FailAllocations makes every Gen* and Create* call return 0,
	// simulating an exhausted device.
	FailAllocations bool

	// DefaultWidth and DefaultHeight are the size of the default framebuffer.
	DefaultWidth, DefaultHeight int

	// Draws records every draw call in issue order.
	Draws []Draw

	nextID uint32

	buffers      map[device.Buffer]*buffer
	vaos         map[device.VertexArray]*vertexArray
	shaders      map[device.Shader]*shader
	programs     map[device.Program]*program
	textures     map[device.Texture]*texture
	framebuffers map[device.Framebuffer]*framebuffer

	bound        map[device.Enum]device.Buffer
	uniformBases map[uint32]device.Buffer
	vao          device.VertexArray
	current      device.Program
	activeUnit   int
	units        map[int]device.Texture
	drawFB       device.Framebuffer
	readFB       device.Framebuffer

	backbuffer []byte
	errs       []device.Enum

	clearColor [4]float32
	viewport   [4]int
	caps       map[device.Enum]bool
	depthFunc  device.Enum
	lineWidth  float32
	pointSize  float32
}

var _ device.Device = (*Device)(nil)

// New returns a software device with a default framebuffer of the given size.
func New(width, height int) *Device {
	d := &Device{
		DefaultWidth:  width,
		DefaultHeight: height,
		buffers:       map[device.Buffer]*buffer{},
		vaos:          map[device.VertexArray]*vertexArray{0: {attribs: map[uint32]*Attrib{}}},
		shaders:       map[device.Shader]*shader{},
		programs:      map[device.Program]*program{},
		textures:      map[device.Texture]*texture{},
		framebuffers:  map[device.Framebuffer]*framebuffer{},
		bound:         map[device.Enum]device.Buffer{},
		uniformBases:  map[uint32]device.Buffer{},
		units:         map[int]device.Texture{},
		caps:          map[device.Enum]bool{},
		backbuffer:    make([]byte, width*height*4),
		viewport:      [4]int{0, 0, width, height},
		depthFunc:     device.LESS,
		lineWidth:     1,
		pointSize:     1,
	}
	return d
}

func (d *Device) setError(code device.Enum, op string) {
	slog.Debug("softdevice: error", "op", op, "error", device.ErrorString(code))
	d.errs = append(d.errs, code)
}

func (d *Device) newID() (uint32, bool) {
	if d.FailAllocations {
		return 0, false
	}
	d.nextID++
	return d.nextID, true
}

// GetError returns and clears the oldest recorded error.
func (d *Device) GetError() device.Enum {
	if len(d.errs) == 0 {
		return device.NO_ERROR
	}
	e := d.errs[0]
	d.errs = d.errs[1:]
	return e
}

// Errors returns all pending errors and clears them.
func (d *Device) Errors() []device.Enum {
	errs := d.errs
	d.errs = nil
	return errs
}

// Live returns the number of live device objects of all kinds,
// which is used to detect resource leaks.
func (d *Device) Live() int {
	return len(d.buffers) + len(d.vaos) - 1 + len(d.shaders) + len(d.programs) + len(d.textures) + len(d.framebuffers)
}

////////////////////////////////////////////////////////////////
// Buffers

func validBufferTarget(target device.Enum) bool {
	switch target {
	case device.ARRAY_BUFFER, device.ELEMENT_ARRAY_BUFFER, device.UNIFORM_BUFFER:
		return true
	}
	return false
}

func (d *Device) GenBuffer() device.Buffer {
	id, ok := d.newID()
	if !ok {
		return 0
	}
	b := device.Buffer(id)
	d.buffers[b] = &buffer{}
	return b
}

func (d *Device) DeleteBuffer(b device.Buffer) {
	if b == 0 {
		return
	}
	delete(d.buffers, b)
	for t, bb := range d.bound {
		if bb == b {
			d.bound[t] = 0
		}
	}
	for _, va := range d.vaos {
		if va.elements == b {
			va.elements = 0
		}
	}
}

// BoundBuffer returns the buffer bound to target. For ELEMENT_ARRAY_BUFFER
// this is the binding stored in the currently bound vertex array.
func (d *Device) BoundBuffer(target device.Enum) device.Buffer {
	if target == device.ELEMENT_ARRAY_BUFFER {
		return d.vaos[d.vao].elements
	}
	return d.bound[target]
}

func (d *Device) BindBuffer(target device.Enum, b device.Buffer) {
	if !validBufferTarget(target) {
		d.setError(device.INVALID_ENUM, "BindBuffer")
		return
	}
	if b != 0 {
		if _, ok := d.buffers[b]; !ok {
			d.setError(device.INVALID_OPERATION, "BindBuffer")
			return
		}
	}
	if target == device.ELEMENT_ARRAY_BUFFER {
		d.vaos[d.vao].elements = b
		return
	}
	d.bound[target] = b
}

func (d *Device) BindBufferBase(target device.Enum, index uint32, b device.Buffer) {
	if target != device.UNIFORM_BUFFER {
		d.setError(device.INVALID_ENUM, "BindBufferBase")
		return
	}
	d.uniformBases[index] = b
	d.bound[target] = b
}

// UniformBase returns the buffer bound to the indexed uniform binding point.
func (d *Device) UniformBase(index uint32) device.Buffer {
	return d.uniformBases[index]
}

func (d *Device) targetBuffer(target device.Enum, op string) *buffer {
	if !validBufferTarget(target) {
		d.setError(device.INVALID_ENUM, op)
		return nil
	}
	b := d.BoundBuffer(target)
	if b == 0 {
		d.setError(device.INVALID_OPERATION, op)
		return nil
	}
	return d.buffers[b]
}

func (d *Device) BufferData(target device.Enum, data []byte, usage device.Enum) {
	buf := d.targetBuffer(target, "BufferData")
	if buf == nil {
		return
	}
	buf.data = slices.Clone(data)
	if buf.data == nil {
		buf.data = []byte{}
	}
	buf.usage = usage
}

func (d *Device) BufferSubData(target device.Enum, offset int, data []byte) {
	buf := d.targetBuffer(target, "BufferSubData")
	if buf == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(buf.data) {
		d.setError(device.INVALID_VALUE, "BufferSubData")
		return
	}
	copy(buf.data[offset:], data)
}

func (d *Device) GetBufferSubData(target device.Enum, offset int, data []byte) {
	buf := d.targetBuffer(target, "GetBufferSubData")
	if buf == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(buf.data) {
		d.setError(device.INVALID_VALUE, "GetBufferSubData")
		return
	}
	copy(data, buf.data[offset:])
}

// BufferContents returns a copy of the contents and the usage hint of b.
func (d *Device) BufferContents(b device.Buffer) ([]byte, device.Enum, bool) {
	buf, ok := d.buffers[b]
	if !ok {
		return nil, 0, false
	}
	return slices.Clone(buf.data), buf.usage, true
}

////////////////////////////////////////////////////////////////
// Vertex arrays

func (d *Device) GenVertexArray() device.VertexArray {
	id, ok := d.newID()
	if !ok {
		return 0
	}
	a := device.VertexArray(id)
	d.vaos[a] = &vertexArray{attribs: map[uint32]*Attrib{}}
	return a
}

func (d *Device) DeleteVertexArray(a device.VertexArray) {
	if a == 0 {
		return
	}
	delete(d.vaos, a)
	if d.vao == a {
		d.vao = 0
	}
}

func (d *Device) BindVertexArray(a device.VertexArray) {
	if _, ok := d.vaos[a]; !ok {
		d.setError(device.INVALID_OPERATION, "BindVertexArray")
		return
	}
	d.vao = a
}

// BoundVertexArray returns the currently bound vertex array.
func (d *Device) BoundVertexArray() device.VertexArray {
	return d.vao
}

// Attribs returns a copy of the attribute state of vertex array a.
func (d *Device) Attribs(a device.VertexArray) map[uint32]Attrib {
	va, ok := d.vaos[a]
	if !ok {
		return nil
	}
	m := make(map[uint32]Attrib, len(va.attribs))
	for i, at := range va.attribs {
		m[i] = *at
	}
	return m
}

// ElementBuffer returns the index buffer recorded in vertex array a.
func (d *Device) ElementBuffer(a device.VertexArray) device.Buffer {
	if va, ok := d.vaos[a]; ok {
		return va.elements
	}
	return 0
}

func (d *Device) attrib(index uint32, op string) *Attrib {
	if d.vao == 0 {
		d.setError(device.INVALID_OPERATION, op)
		return nil
	}
	va := d.vaos[d.vao]
	at, ok := va.attribs[index]
	if !ok {
		at = &Attrib{}
		va.attribs[index] = at
	}
	return at
}

func (d *Device) VertexAttribPointer(index uint32, size int, typ device.Enum, normalized bool, stride, offset int) {
	if size < 1 || size > 4 || stride < 0 {
		d.setError(device.INVALID_VALUE, "VertexAttribPointer")
		return
	}
	b := d.bound[device.ARRAY_BUFFER]
	if b == 0 {
		d.setError(device.INVALID_OPERATION, "VertexAttribPointer")
		return
	}
	at := d.attrib(index, "VertexAttribPointer")
	if at == nil {
		return
	}
	at.Buffer, at.Size, at.Type, at.Normalized, at.Stride, at.Offset = b, size, typ, normalized, stride, offset
	at.Integer = false
}

func (d *Device) VertexAttribIPointer(index uint32, size int, typ device.Enum, stride, offset int) {
	if size < 1 || size > 4 || stride < 0 {
		d.setError(device.INVALID_VALUE, "VertexAttribIPointer")
		return
	}
	if typ == device.FLOAT {
		d.setError(device.INVALID_ENUM, "VertexAttribIPointer")
		return
	}
	b := d.bound[device.ARRAY_BUFFER]
	if b == 0 {
		d.setError(device.INVALID_OPERATION, "VertexAttribIPointer")
		return
	}
	at := d.attrib(index, "VertexAttribIPointer")
	if at == nil {
		return
	}
	at.Buffer, at.Size, at.Type, at.Normalized, at.Stride, at.Offset = b, size, typ, false, stride, offset
	at.Integer = true
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	at := d.attrib(index, "EnableVertexAttribArray")
	if at == nil {
		return
	}
	at.Enabled = true
}
