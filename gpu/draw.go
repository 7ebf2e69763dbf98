// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/glw/gpu/device"
)

// Primitives are the primitive topologies of draws.
type Primitives int32 //enums:enum

const (
	Triangles Primitives = iota
	TriangleStrip
	Lines
	LineStrip
	Points
)

func (p Primitives) enum() device.Enum {
	switch p {
	case TriangleStrip:
		return device.TRIANGLE_STRIP
	case Lines:
		return device.LINES
	case LineStrip:
		return device.LINE_STRIP
	case Points:
		return device.POINTS
	}
	return device.TRIANGLES
}

// Range is a run of Count vertices starting at Start.
type Range struct {
	Start, Count int
}

// SetIndices attaches an index buffer to p: draws become indexed,
// drawing every index of buf.
func SetIndices[I Index](p *Program, buf *Buffer[I]) error {
	ab, err := buf.Any()
	if err != nil {
		return err
	}
	return p.SetIndicesAny(ab)
}

// SetIndicesAny attaches an index buffer whose index width is only
// known at run time. Its layout must be a single unsigned integer.
func (p *Program) SetIndicesAny(buf AnyBuffer) error {
	l := buf.layout
	if l.Components != 1 || !l.Scalar.IsUnsigned() {
		return ErrNotAnIndexLayout
	}
	if p.deleted || buf.res == nil || buf.res.deleted {
		return ErrDeleted
	}
	st := p.ctx.st
	st.withVertexArray(p.vao, func() {
		st.bindBuffer(device.ELEMENT_ARRAY_BUFFER, buf.res.id)
	})
	p.indices = &buf
	p.ctx.done("Program.SetIndices")
	return nil
}

// ClearIndices detaches the index buffer: draws become direct again.
func (p *Program) ClearIndices() {
	if p.indices == nil {
		return
	}
	st := p.ctx.st
	st.withVertexArray(p.vao, func() {
		st.bindBuffer(device.ELEMENT_ARRAY_BUFFER, 0)
	})
	p.indices = nil
	p.ctx.done("Program.ClearIndices")
}

// Indices returns the attached index buffer.
func (p *Program) Indices() (AnyBuffer, bool) {
	if p.indices == nil {
		return AnyBuffer{}, false
	}
	return *p.indices, true
}

// draw makes p current and runs fn with its vertex array and texture bound.
func (p *Program) draw(op string, fn func(dev device.Device)) error {
	if p.deleted {
		return ErrDeleted
	}
	ctx := p.ctx
	ctx.st.useProgram(p.linked.id)
	var tex device.Texture
	if p.texture != nil && !p.texture.deleted {
		tex = p.texture.id
	}
	ctx.st.withTexture(tex, func() {
		ctx.st.withVertexArray(p.vao, func() {
			fn(ctx.dev)
		})
	})
	ctx.done(op)
	return nil
}

// Draw draws with the given primitives. With indices attached, every
// index is drawn with the index type of the index buffer; otherwise the
// first [Program.VertexCount] vertices are drawn, or
// [ErrNoBufferAttached] is returned if nothing was bound.
func (p *Program) Draw(mode Primitives) error {
	if p.indices != nil {
		ib := *p.indices
		if ib.res.deleted {
			return ErrDeleted
		}
		return p.draw("Program.Draw", func(dev device.Device) {
			dev.DrawElements(mode.enum(), ib.n, ib.layout.Scalar.Enum(), 0)
		})
	}
	if !p.hasVertices {
		return ErrNoBufferAttached
	}
	return p.DrawRange(mode, 0, p.vertexCount)
}

// DrawRange draws count vertices starting at start, ignoring indices.
func (p *Program) DrawRange(mode Primitives, start, count int) error {
	if start < 0 || count < 0 {
		return ErrRangeOutOfBounds
	}
	return p.draw("Program.DrawRange", func(dev device.Device) {
		dev.DrawArrays(mode.enum(), start, count)
	})
}

// DrawRanges draws every range with one multi-draw call, ignoring
// indices.
func (p *Program) DrawRanges(mode Primitives, ranges []Range) error {
	firsts := make([]int32, len(ranges))
	counts := make([]int32, len(ranges))
	for i, r := range ranges {
		if r.Start < 0 || r.Count < 0 {
			return ErrRangeOutOfBounds
		}
		firsts[i], counts[i] = int32(r.Start), int32(r.Count)
	}
	return p.draw("Program.DrawRanges", func(dev device.Device) {
		dev.MultiDrawArrays(mode.enum(), firsts, counts)
	})
}
