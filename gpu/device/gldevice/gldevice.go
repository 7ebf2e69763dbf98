// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gldevice implements device.Device on top of OpenGL 4.1 core,
// using github.com/go-gl/gl. The GL context must be current on the
// calling OS thread for every call.
package gldevice

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	"cogentcore.org/glw/gpu/device"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// ProcAddressFunc resolves a GL entry point name to its function
// pointer, returning nil if the platform does not provide it.
type ProcAddressFunc func(name string) unsafe.Pointer

// Device is the OpenGL implementation of device.Device.
type Device struct {

	// Version is the GL_VERSION string reported after initialization.
	Version string

	// Renderer is the GL_RENDERER string reported after initialization.
	Renderer string
}

// New loads all GL entry points through the given resolver, which is
// the only coupling to the windowing platform, and returns the device.
func New(getProcAddress ProcAddressFunc) (*Device, error) {
	if err := gl.InitWithProcAddrFunc(getProcAddress); err != nil {
		return nil, fmt.Errorf("gldevice: loading GL functions: %w", err)
	}
	d := &Device{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}
	slog.Debug("gldevice: initialized", "version", d.Version, "renderer", d.Renderer)
	return d, nil
}

var _ device.Device = (*Device)(nil)

// ptr returns a pointer to the first byte of b, or nil when b is empty.
func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// cstr returns a null terminated copy of s for passing to GL.
func cstr(s string) *uint8 {
	if !strings.HasSuffix(s, "\x00") {
		s += "\x00"
	}
	return gl.Str(s)
}

func (d *Device) GenBuffer() device.Buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	return device.Buffer(id)
}

func (d *Device) DeleteBuffer(b device.Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (d *Device) BindBuffer(target device.Enum, b device.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (d *Device) BindBufferBase(target device.Enum, index uint32, b device.Buffer) {
	gl.BindBufferBase(uint32(target), index, uint32(b))
}

func (d *Device) BufferData(target device.Enum, data []byte, usage device.Enum) {
	gl.BufferData(uint32(target), len(data), ptr(data), uint32(usage))
}

func (d *Device) BufferSubData(target device.Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(data), ptr(data))
}

func (d *Device) GetBufferSubData(target device.Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.GetBufferSubData(uint32(target), offset, len(data), ptr(data))
}

func (d *Device) GenVertexArray() device.VertexArray {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return device.VertexArray(id)
}

func (d *Device) DeleteVertexArray(a device.VertexArray) {
	id := uint32(a)
	gl.DeleteVertexArrays(1, &id)
}

func (d *Device) BindVertexArray(a device.VertexArray) {
	gl.BindVertexArray(uint32(a))
}

func (d *Device) VertexAttribPointer(index uint32, size int, typ device.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(index, int32(size), uint32(typ), normalized, int32(stride), gl.PtrOffset(offset))
}

func (d *Device) VertexAttribIPointer(index uint32, size int, typ device.Enum, stride, offset int) {
	gl.VertexAttribIPointer(index, int32(size), uint32(typ), int32(stride), gl.PtrOffset(offset))
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Device) CreateShader(typ device.Enum) device.Shader {
	return device.Shader(gl.CreateShader(uint32(typ)))
}

func (d *Device) ShaderSource(s device.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (d *Device) CompileShader(s device.Shader) {
	gl.CompileShader(uint32(s))
}

func (d *Device) GetShaderi(s device.Shader, pname device.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s), uint32(pname), &v)
	return int(v)
}

func (d *Device) GetShaderInfoLog(s device.Shader) string {
	n := d.GetShaderi(s, device.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetShaderInfoLog(uint32(s), int32(len(buf)), nil, &buf[0])
	return gl.GoStr(&buf[0])
}

func (d *Device) DeleteShader(s device.Shader) {
	gl.DeleteShader(uint32(s))
}

func (d *Device) CreateProgram() device.Program {
	return device.Program(gl.CreateProgram())
}

func (d *Device) AttachShader(p device.Program, s device.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (d *Device) DetachShader(p device.Program, s device.Shader) {
	gl.DetachShader(uint32(p), uint32(s))
}

func (d *Device) LinkProgram(p device.Program) {
	gl.LinkProgram(uint32(p))
}

func (d *Device) GetProgrami(p device.Program, pname device.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p), uint32(pname), &v)
	return int(v)
}

func (d *Device) GetProgramInfoLog(p device.Program) string {
	n := d.GetProgrami(p, device.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetProgramInfoLog(uint32(p), int32(len(buf)), nil, &buf[0])
	return gl.GoStr(&buf[0])
}

func (d *Device) DeleteProgram(p device.Program) {
	gl.DeleteProgram(uint32(p))
}

func (d *Device) UseProgram(p device.Program) {
	gl.UseProgram(uint32(p))
}

func (d *Device) GetActiveAttrib(p device.Program, index uint32, name []byte) (length, size int, typ device.Enum) {
	if len(name) == 0 {
		return 0, 0, device.INVALID_TYPE
	}
	var ln, sz int32
	var tp uint32
	gl.GetActiveAttrib(uint32(p), index, int32(len(name)), &ln, &sz, &tp, &name[0])
	return int(ln), int(sz), device.Enum(tp)
}

func (d *Device) GetAttribLocation(p device.Program, name string) int {
	return int(gl.GetAttribLocation(uint32(p), cstr(name)))
}

func (d *Device) GetUniformLocation(p device.Program, name string) int {
	return int(gl.GetUniformLocation(uint32(p), cstr(name)))
}

func (d *Device) GetUniformBlockIndex(p device.Program, name string) uint32 {
	return gl.GetUniformBlockIndex(uint32(p), cstr(name))
}

func (d *Device) UniformBlockBinding(p device.Program, block, binding uint32) {
	gl.UniformBlockBinding(uint32(p), block, binding)
}

func (d *Device) Uniform1f(loc int, v float32)    { gl.Uniform1f(int32(loc), v) }
func (d *Device) Uniform1i(loc int, v int32)      { gl.Uniform1i(int32(loc), v) }
func (d *Device) Uniform1ui(loc int, v uint32)    { gl.Uniform1ui(int32(loc), v) }
func (d *Device) Uniform2f(loc int, x, y float32) { gl.Uniform2f(int32(loc), x, y) }

func (d *Device) Uniform3f(loc int, x, y, z float32) {
	gl.Uniform3f(int32(loc), x, y, z)
}

func (d *Device) Uniform4f(loc int, x, y, z, w float32) {
	gl.Uniform4f(int32(loc), x, y, z, w)
}

func (d *Device) UniformMatrix3fv(loc int, count int, transpose bool, v []float32) {
	if len(v) < 9*count || count == 0 {
		return
	}
	gl.UniformMatrix3fv(int32(loc), int32(count), transpose, &v[0])
}

func (d *Device) UniformMatrix4fv(loc int, count int, transpose bool, v []float32) {
	if len(v) < 16*count || count == 0 {
		return
	}
	gl.UniformMatrix4fv(int32(loc), int32(count), transpose, &v[0])
}

func (d *Device) GenTexture() device.Texture {
	var id uint32
	gl.GenTextures(1, &id)
	return device.Texture(id)
}

func (d *Device) DeleteTexture(t device.Texture) {
	id := uint32(t)
	gl.DeleteTextures(1, &id)
}

func (d *Device) ActiveTexture(unit device.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (d *Device) BindTexture(target device.Enum, t device.Texture) {
	gl.BindTexture(uint32(target), uint32(t))
}

func (d *Device) TexImage2D(target device.Enum, level int, internalFormat device.Enum, width, height int, format, typ device.Enum, pixels []byte) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(typ), ptr(pixels))
}

func (d *Device) TexParameteri(target, pname device.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (d *Device) GetTexImage(target device.Enum, level int, format, typ device.Enum, pixels []byte) {
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.GetTexImage(uint32(target), int32(level), uint32(format), uint32(typ), ptr(pixels))
}

func (d *Device) GenFramebuffer() device.Framebuffer {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return device.Framebuffer(id)
}

func (d *Device) DeleteFramebuffer(f device.Framebuffer) {
	id := uint32(f)
	gl.DeleteFramebuffers(1, &id)
}

func (d *Device) BindFramebuffer(target device.Enum, f device.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(f))
}

func (d *Device) FramebufferTexture2D(target, attachment, texTarget device.Enum, t device.Texture, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t), int32(level))
}

func (d *Device) CheckFramebufferStatus(target device.Enum) device.Enum {
	return device.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (d *Device) ReadPixels(x, y, width, height int, format, typ device.Enum, pixels []byte) {
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), ptr(pixels))
}

func (d *Device) DrawArrays(mode device.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (d *Device) DrawElements(mode device.Enum, count int, typ device.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(typ), gl.PtrOffset(offset))
}

func (d *Device) MultiDrawArrays(mode device.Enum, first, count []int32) {
	if len(first) == 0 || len(first) != len(count) {
		return
	}
	gl.MultiDrawArrays(uint32(mode), &first[0], &count[0], int32(len(first)))
}

func (d *Device) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (d *Device) Clear(mask device.Enum)        { gl.Clear(uint32(mask)) }

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Device) Enable(capability device.Enum)  { gl.Enable(uint32(capability)) }
func (d *Device) Disable(capability device.Enum) { gl.Disable(uint32(capability)) }
func (d *Device) DepthFunc(fn device.Enum)       { gl.DepthFunc(uint32(fn)) }
func (d *Device) LineWidth(w float32)            { gl.LineWidth(w) }
func (d *Device) PointSize(s float32)            { gl.PointSize(s) }
func (d *Device) GetError() device.Enum          { return device.Enum(gl.GetError()) }
