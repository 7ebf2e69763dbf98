// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axes draws the unit X, Y and Z axes as red, green and blue
// lines, to show the orientation of a model transform.
package axes

import (
	"embed"

	"cogentcore.org/core/math32"
	"cogentcore.org/glw/gpu"
	"cogentcore.org/glw/gpu/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders
var shaderFS embed.FS

var paths = shaders.Paths{Vertex: "shaders/axes.vert", Fragment: "shaders/axes.frag"}

// Builder holds the line buffer and program shared by every [Axes]
// made from it.
type Builder struct {
	buf  *gpu.Buffer[math32.Vector3]
	prog *gpu.Program
}

// NewBuilder uploads the axis lines and builds their program.
func NewBuilder(ctx *gpu.Context) (*Builder, error) {
	lines := []math32.Vector3{
		{}, math32.Vec3(1, 0, 0),
		{}, math32.Vec3(0, 1, 0),
		{}, math32.Vec3(0, 0, 1),
	}
	buf, err := gpu.NewArrayBuffer(ctx, lines)
	if err != nil {
		return nil, err
	}
	prog, err := shaders.Build(ctx, shaderFS, paths, func(b *gpu.ProgramBuilder) {
		b.Attributes("position")
	})
	if err != nil {
		buf.Delete()
		return nil, err
	}
	b := &Builder{buf: buf, prog: prog}
	v, err := gpu.DirectView(buf)
	if err == nil {
		err = prog.Bind("position", v)
	}
	if err != nil {
		b.Delete()
		return nil, err
	}
	return b, nil
}

// Program returns the program drawing the axes.
func (b *Builder) Program() *gpu.Program { return b.prog }

// Axes returns new axes with the identity model transform.
func (b *Builder) Axes() (*Axes, error) {
	model, err := gpu.UniformOf[mgl32.Mat4](b.prog, "model")
	if err != nil {
		return nil, err
	}
	vp, err := gpu.UniformOf[mgl32.Mat4](b.prog, "view_projection")
	if err != nil {
		return nil, err
	}
	return &Axes{Model: mgl32.Ident4(), model: model, vp: vp, b: b}, nil
}

// Delete deletes the buffer and program. Axes made from b can no
// longer be drawn.
func (b *Builder) Delete() {
	b.prog.Delete()
	b.buf.Delete()
}

// Axes is one placement of the axes of a [Builder].
type Axes struct {

	// Model is the model transform of the axes.
	Model mgl32.Mat4

	model, vp *gpu.Uniform[mgl32.Mat4]
	b         *Builder
}

// SetModel sets the model transform.
func (a *Axes) SetModel(m mgl32.Mat4) { a.Model = m }

// SetPos moves the origin of the axes to pos, keeping the rest of the
// model transform.
func (a *Axes) SetPos(pos mgl32.Vec3) {
	for i := range 3 {
		a.Model[12+i] = pos[i]
	}
}

// Draw draws the axes as lines with the given view projection.
func (a *Axes) Draw(viewProjection mgl32.Mat4) error {
	if a.b.buf.Deleted() {
		return gpu.ErrDeleted
	}
	a.vp.Pass(viewProjection)
	a.model.Pass(a.Model)
	return a.b.prog.Draw(gpu.Lines)
}
