// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"cogentcore.org/glw/gpu/device"
)

// MaxAttributeNameLength is the longest attribute name, in bytes,
// that is resolved when enumerating the active attributes of a program.
const MaxAttributeNameLength = 64

// ProgramBuilder configures and links a [Program].
type ProgramBuilder struct {
	vert, frag, geom *Shader
	sampler          string
	texture          *Texture
	attributes       []string
}

// NewProgramBuilder returns a builder for a program with the given
// vertex and fragment stages.
func NewProgramBuilder(vert, frag *Shader) *ProgramBuilder {
	return &ProgramBuilder{vert: vert, frag: frag}
}

// Geometry adds a geometry stage.
func (b *ProgramBuilder) Geometry(geom *Shader) *ProgramBuilder {
	b.geom = geom
	return b
}

// Texture attaches tex to the program: the sampler uniform of the
// given name reads texture unit 0, where tex is bound during draws.
func (b *ProgramBuilder) Texture(sampler string, tex *Texture) *ProgramBuilder {
	b.sampler, b.texture = sampler, tex
	return b
}

// Attributes restricts the resolved attributes to the given names,
// each of which must be active in the linked program. Without it,
// every active attribute is resolved.
func (b *ProgramBuilder) Attributes(names ...string) *ProgramBuilder {
	b.attributes = names
	return b
}

// attribute is a resolved vertex attribute.
type attribute struct {
	slot uint32
	typ  device.Enum
}

// linkedProgram is the device program and its attribute slots, shared
// by a program and its duplicates. It is read-only once built.
type linkedProgram struct {
	id      device.Program
	attribs map[string]attribute
	refs    int
}

// Program is a linked shader program with its own vertex array: the
// attribute bindings, optional index buffer and attached texture used
// by its draws. Duplicates share the linked program but have their
// own vertex array and bindings.
type Program struct {
	ctx     *Context
	linked  *linkedProgram
	vao     device.VertexArray
	texture *Texture
	indices *AnyBuffer

	// vertexCount is the largest number of vertices bound to an attribute
	vertexCount int
	hasVertices bool

	deleted bool
}

// Build links the program and resolves its attributes.
// Link failures return a [*LinkError] with the device log; names given
// to [ProgramBuilder.Attributes] that are not active return an
// [*UndeclaredAttributeError].
func (b *ProgramBuilder) Build() (*Program, error) {
	for _, name := range b.attributes {
		checkName(name)
	}
	if b.texture != nil {
		checkName(b.sampler)
	}
	ctx := b.vert.ctx
	dev := ctx.dev
	id := dev.CreateProgram()
	if id == 0 {
		return nil, ErrCouldNotCreateProgram
	}
	stages := []*Shader{b.vert, b.frag}
	if b.geom != nil {
		stages = append(stages, b.geom)
	}
	for _, s := range stages {
		dev.AttachShader(id, s.id)
	}
	dev.LinkProgram(id)
	ok := dev.GetProgrami(id, device.LINK_STATUS) != device.FALSE
	log := dev.GetProgramInfoLog(id)
	for _, s := range stages {
		dev.DetachShader(id, s.id)
	}
	if !ok {
		dev.DeleteProgram(id)
		return nil, &LinkError{Log: log}
	}

	var attribs map[string]attribute
	var err error
	if b.attributes != nil {
		attribs, err = namedAttributes(dev, id, b.attributes)
	} else {
		attribs, err = activeAttributes(dev, id)
	}
	if err != nil {
		dev.DeleteProgram(id)
		return nil, err
	}

	var sampler int
	if b.texture != nil {
		sampler = dev.GetUniformLocation(id, b.sampler)
		if sampler < 0 {
			dev.DeleteProgram(id)
			return nil, &UndeclaredUniformError{Name: b.sampler}
		}
	}

	vao := dev.GenVertexArray()
	if vao == 0 {
		dev.DeleteProgram(id)
		return nil, ErrCouldNotCreateVAO
	}
	ctx.created(ProgramResource, uint32(id))
	ctx.created(VertexArrayResource, uint32(vao))
	p := &Program{
		ctx:     ctx,
		linked:  &linkedProgram{id: id, attribs: attribs, refs: 1},
		vao:     vao,
		texture: b.texture,
	}
	if b.texture != nil {
		ctx.st.useProgram(id)
		dev.Uniform1i(sampler, 0)
	}
	slog.Debug("gpu: program linked", "id", id, "attributes", len(attribs))
	ctx.done("ProgramBuilder.Build")
	return p, nil
}

func namedAttributes(dev device.Device, id device.Program, names []string) (map[string]attribute, error) {
	attribs := make(map[string]attribute, len(names))
	for _, name := range names {
		loc := dev.GetAttribLocation(id, name)
		if loc < 0 {
			return nil, &UndeclaredAttributeError{Name: name}
		}
		attribs[name] = attribute{slot: uint32(loc), typ: device.INVALID_TYPE}
	}
	return attribs, nil
}

// activeAttributes enumerates the active attributes of a linked program.
// Built-in inputs (gl_ prefix) have no location and are skipped.
func activeAttributes(dev device.Device, id device.Program) (map[string]attribute, error) {
	n := dev.GetProgrami(id, device.ACTIVE_ATTRIBUTES)
	if dev.GetProgrami(id, device.ACTIVE_ATTRIBUTE_MAX_LENGTH) > MaxAttributeNameLength+1 {
		return nil, ErrAttributeNameTooLong
	}
	buf := make([]byte, MaxAttributeNameLength+1)
	attribs := make(map[string]attribute, n)
	for i := range n {
		length, _, typ := dev.GetActiveAttrib(id, uint32(i), buf)
		if length > MaxAttributeNameLength {
			return nil, ErrAttributeNameTooLong
		}
		raw := buf[:length]
		if !utf8.Valid(raw) {
			return nil, ErrAttributeNameEncoding
		}
		name := string(raw)
		if strings.HasPrefix(name, "gl_") {
			continue
		}
		loc := dev.GetAttribLocation(id, name)
		if loc < 0 {
			continue
		}
		attribs[name] = attribute{slot: uint32(loc), typ: typ}
	}
	return attribs, nil
}

// Raw returns the resource identifier of the linked program, which is
// shared by duplicates.
func (p *Program) Raw() RawResource {
	return RawResource{ID: uint32(p.linked.id), Kind: ProgramResource}
}

// VertexArray returns the resource identifier of the vertex array of p.
func (p *Program) VertexArray() RawResource {
	return RawResource{ID: uint32(p.vao), Kind: VertexArrayResource}
}

// AttributeSlot returns the slot of the named attribute.
func (p *Program) AttributeSlot(name string) (uint32, bool) {
	a, ok := p.linked.attribs[name]
	return a.slot, ok
}

// AttributeNames returns the sorted names of the resolved attributes.
func (p *Program) AttributeNames() []string {
	names := make([]string, 0, len(p.linked.attribs))
	for name := range p.linked.attribs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// VertexCount returns the number of vertices drawn by a direct draw:
// the largest element count of any view bound so far. It returns
// false if nothing has been bound.
func (p *Program) VertexCount() (int, bool) {
	return p.vertexCount, p.hasVertices
}

// Texture returns the texture attached to the program, or nil.
func (p *Program) Texture() *Texture { return p.texture }

// SetTexture sets the texture bound to unit 0 during draws; nil
// removes it.
func (p *Program) SetTexture(tex *Texture) { p.texture = tex }

// SetCurrent makes p the current program of the device.
func (p *Program) SetCurrent() {
	p.ctx.st.useProgram(p.linked.id)
}

// Bind attaches the view to the named attribute of the vertex array of
// p. Integer layouts are bound as integer attributes and float layouts
// as float attributes. The vertex count of p grows to the view length
// if that is larger; it never shrinks. An undeclared name returns an
// [*UndeclaredAttributeError] without touching the device.
func (p *Program) Bind(name string, v View) error {
	checkName(name)
	a, ok := p.linked.attribs[name]
	if !ok {
		return &UndeclaredAttributeError{Name: name}
	}
	if p.deleted || v.res == nil || v.res.deleted {
		return ErrDeleted
	}
	ctx := p.ctx
	dev := ctx.dev
	ctx.st.withVertexArray(p.vao, func() {
		ctx.st.withBuffer(device.ARRAY_BUFFER, v.res.id, func() {
			l := v.Layout
			if l.Scalar.IsInteger() {
				dev.VertexAttribIPointer(a.slot, l.Components, l.Scalar.Enum(), v.Stride, v.Offset)
			} else {
				dev.VertexAttribPointer(a.slot, l.Components, l.Scalar.Enum(), false, v.Stride, v.Offset)
			}
			dev.EnableVertexAttribArray(a.slot)
		})
	})
	if !p.hasVertices || v.N > p.vertexCount {
		p.vertexCount = v.N
	}
	p.hasVertices = true
	ctx.done("Program.Bind")
	return nil
}

// BindUniformBlock associates the named uniform block of p with the
// binding point of ub. An undeclared block returns an
// [*UndeclaredUniformBlockError].
func (p *Program) BindUniformBlock(name string, ub interface{ BindingPoint() BindingPoint }) error {
	checkName(name)
	if p.deleted {
		return ErrDeleted
	}
	dev := p.ctx.dev
	idx := dev.GetUniformBlockIndex(p.linked.id, name)
	if idx == device.INVALID_INDEX {
		return &UndeclaredUniformBlockError{Name: name}
	}
	dev.UniformBlockBinding(p.linked.id, idx, uint32(ub.BindingPoint()))
	p.ctx.done("Program.BindUniformBlock")
	return nil
}

// Duplicate returns a program sharing the linked program and attribute
// slots of p, with its own empty vertex array. It keeps the texture
// of p and has no indices.
func (p *Program) Duplicate() (*Program, error) {
	if p.deleted {
		return nil, ErrDeleted
	}
	vao := p.ctx.dev.GenVertexArray()
	if vao == 0 {
		return nil, ErrCouldNotCreateVAO
	}
	p.ctx.created(VertexArrayResource, uint32(vao))
	p.linked.refs++
	return &Program{ctx: p.ctx, linked: p.linked, vao: vao, texture: p.texture}, nil
}

// Delete releases the vertex array of p, and the linked program once
// p is the last program sharing it. The attached texture and index
// buffer are not deleted.
func (p *Program) Delete() {
	if p.deleted {
		return
	}
	p.deleted = true
	ctx := p.ctx
	ctx.dev.DeleteVertexArray(p.vao)
	ctx.st.forget(VertexArrayResource, uint32(p.vao))
	ctx.deleted(VertexArrayResource, uint32(p.vao))
	p.linked.refs--
	if p.linked.refs == 0 {
		ctx.dev.DeleteProgram(p.linked.id)
		ctx.st.forget(ProgramResource, uint32(p.linked.id))
		ctx.deleted(ProgramResource, uint32(p.linked.id))
	}
}
