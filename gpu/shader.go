// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"io/fs"
	"os"

	"cogentcore.org/glw/gpu/device"
)

// ShaderKinds are the shader stages.
type ShaderKinds int32 //enums:enum

const (
	VertexShader ShaderKinds = iota
	FragmentShader
	GeometryShader
)

func (k ShaderKinds) enum() device.Enum {
	switch k {
	case FragmentShader:
		return device.FRAGMENT_SHADER
	case GeometryShader:
		return device.GEOMETRY_SHADER
	}
	return device.VERTEX_SHADER
}

// Shader is one compiled shader stage. A shader may be used to build
// any number of programs and should be deleted once they are built.
type Shader struct {
	ctx     *Context
	id      device.Shader
	kind    ShaderKinds
	deleted bool
}

// NewShader compiles GLSL source for the given stage.
// A compilation failure returns a [*CompileError] with the device log.
func NewShader(ctx *Context, kind ShaderKinds, src string) (*Shader, error) {
	id := ctx.dev.CreateShader(kind.enum())
	if id == 0 {
		return nil, ErrCouldNotCreateShader
	}
	ctx.dev.ShaderSource(id, src)
	ctx.dev.CompileShader(id)
	if ctx.dev.GetShaderi(id, device.COMPILE_STATUS) == device.FALSE {
		log := ctx.dev.GetShaderInfoLog(id)
		ctx.dev.DeleteShader(id)
		return nil, &CompileError{Kind: kind, Log: log}
	}
	ctx.created(ShaderResource, uint32(id))
	ctx.done("NewShader")
	return &Shader{ctx: ctx, id: id, kind: kind}, nil
}

// NewShaderFromFile compiles the GLSL source file at path.
// A read failure returns a [*FileError] wrapping the I/O error.
func NewShaderFromFile(ctx *Context, kind ShaderKinds, path string) (*Shader, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return NewShader(ctx, kind, string(b))
}

// NewShaderFromFS compiles the GLSL source file name in fsys,
// typically an embed.FS.
func NewShaderFromFS(ctx *Context, kind ShaderKinds, fsys fs.FS, name string) (*Shader, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &FileError{Path: name, Err: err}
	}
	return NewShader(ctx, kind, string(b))
}

// Kind returns the stage of the shader.
func (s *Shader) Kind() ShaderKinds { return s.kind }

// Raw returns the resource identifier of the shader.
func (s *Shader) Raw() RawResource {
	return RawResource{ID: uint32(s.id), Kind: ShaderResource}
}

// Delete releases the shader. Programs built from it are unaffected.
func (s *Shader) Delete() {
	if s.deleted {
		return
	}
	s.deleted = true
	s.ctx.dev.DeleteShader(s.id)
	s.ctx.deleted(ShaderResource, uint32(s.id))
}
