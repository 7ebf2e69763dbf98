// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package device defines the Device interface: the complete set of
// immediate-mode graphics calls used by the gpu package, expressed
// with Go types. A Device wraps one implicit, globally mutable,
// single-threaded graphics context, and every call is issued against it.
//
// Implementations:
//   - gldevice: OpenGL 4.1 core via github.com/go-gl/gl.
//   - softdevice: an in-memory reference device used for tests and
//     headless tools.
package device

// Handle types. A zero value is never a valid object.
type (
	Buffer      uint32
	VertexArray uint32
	Shader      uint32
	Program     uint32
	Texture     uint32
	Framebuffer uint32
)

// Device is the immediate-mode graphics API. Method names and argument
// order follow the corresponding GL entry points.
// None of the methods are safe for concurrent use.
type Device interface {

	// GenBuffer returns a new buffer name, or 0 on failure.
	GenBuffer() Buffer
	DeleteBuffer(b Buffer)
	BindBuffer(target Enum, b Buffer)
	BindBufferBase(target Enum, index uint32, b Buffer)

	// BufferData (re)allocates storage of the buffer bound to target
	// and copies data into it.
	BufferData(target Enum, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)

	// GetBufferSubData reads len(data) bytes starting at offset
	// from the buffer bound to target.
	GetBufferSubData(target Enum, offset int, data []byte)

	// GenVertexArray returns a new vertex array name, or 0 on failure.
	GenVertexArray() VertexArray
	DeleteVertexArray(a VertexArray)
	BindVertexArray(a VertexArray)

	// VertexAttribPointer records a float attribute source for the
	// buffer currently bound to ARRAY_BUFFER in the bound vertex array.
	VertexAttribPointer(index uint32, size int, typ Enum, normalized bool, stride, offset int)

	// VertexAttribIPointer is the integer attribute variant: values
	// are never converted to floating point.
	VertexAttribIPointer(index uint32, size int, typ Enum, stride, offset int)
	EnableVertexAttribArray(index uint32)

	CreateShader(typ Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	// GetActiveAttrib writes the name of the active attribute at index into
	// name, truncated to len(name)-1 bytes plus a terminating zero, and
	// returns the number of name bytes written (excluding the terminator).
	GetActiveAttrib(p Program, index uint32, name []byte) (length, size int, typ Enum)

	// GetAttribLocation returns -1 if name is not an active attribute.
	GetAttribLocation(p Program, name string) int

	// GetUniformLocation returns -1 if name is not an active uniform.
	GetUniformLocation(p Program, name string) int

	// GetUniformBlockIndex returns INVALID_INDEX if there is no such block.
	GetUniformBlockIndex(p Program, name string) uint32
	UniformBlockBinding(p Program, block, binding uint32)

	Uniform1f(loc int, v float32)
	Uniform1i(loc int, v int32)
	Uniform1ui(loc int, v uint32)
	Uniform2f(loc int, x, y float32)
	Uniform3f(loc int, x, y, z float32)
	Uniform4f(loc int, x, y, z, w float32)
	UniformMatrix3fv(loc int, count int, transpose bool, v []float32)
	UniformMatrix4fv(loc int, count int, transpose bool, v []float32)

	// GenTexture returns a new texture name, or 0 on failure.
	GenTexture() Texture
	DeleteTexture(t Texture)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)

	// TexImage2D allocates storage for the bound texture; pixels may be nil.
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, pixels []byte)
	TexParameteri(target, pname Enum, param int32)
	GetTexImage(target Enum, level int, format, typ Enum, pixels []byte)

	// GenFramebuffer returns a new framebuffer name, or 0 on failure.
	GenFramebuffer() Framebuffer
	DeleteFramebuffer(f Framebuffer)
	BindFramebuffer(target Enum, f Framebuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	CheckFramebufferStatus(target Enum) Enum
	ReadPixels(x, y, width, height int, format, typ Enum, pixels []byte)

	DrawArrays(mode Enum, first, count int)

	// DrawElements draws count indices of type typ read from the
	// ELEMENT_ARRAY_BUFFER bound in the current vertex array, starting
	// at byte offset.
	DrawElements(mode Enum, count int, typ Enum, offset int)
	MultiDrawArrays(mode Enum, first, count []int32)

	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int)
	Enable(capability Enum)
	Disable(capability Enum)
	DepthFunc(fn Enum)
	LineWidth(w float32)
	PointSize(s float32)

	// GetError returns and clears the oldest recorded error flag.
	GetError() Enum
}

// ErrorString returns a readable name for a GetError code.
func ErrorString(code Enum) string {
	switch code {
	case NO_ERROR:
		return "no error"
	case INVALID_ENUM:
		return "invalid enum"
	case INVALID_VALUE:
		return "invalid value"
	case INVALID_OPERATION:
		return "invalid operation"
	case OUT_OF_MEMORY:
		return "out of memory"
	}
	return "unknown error"
}
