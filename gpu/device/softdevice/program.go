// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softdevice

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/glw/gpu/device"
)

type shader struct {
	typ      device.Enum
	source   string
	compiled bool
	log      string
	decls    []decl
	blocks   []string
}

type attribute struct {
	name     string
	typ      device.Enum
	location int
}

type uniform struct {
	name     string
	typ      string
	location int
}

type program struct {
	attached []device.Shader
	linked   bool
	log      string

	attribs  []attribute
	uniforms []uniform
	blocks   []string
	bindings map[uint32]uint32
	values   map[int]any
}

////////////////////////////////////////////////////////////////
// Shaders

func (d *Device) CreateShader(typ device.Enum) device.Shader {
	switch typ {
	case device.VERTEX_SHADER, device.FRAGMENT_SHADER, device.GEOMETRY_SHADER:
	default:
		d.setError(device.INVALID_ENUM, "CreateShader")
		return 0
	}
	id, ok := d.newID()
	if !ok {
		return 0
	}
	s := device.Shader(id)
	d.shaders[s] = &shader{typ: typ}
	return s
}

func (d *Device) shader(s device.Shader, op string) *shader {
	sh, ok := d.shaders[s]
	if !ok {
		d.setError(device.INVALID_VALUE, op)
	}
	return sh
}

func (d *Device) ShaderSource(s device.Shader, src string) {
	if sh := d.shader(s, "ShaderSource"); sh != nil {
		sh.source = src
	}
}

func (d *Device) CompileShader(s device.Shader) {
	sh := d.shader(s, "CompileShader")
	if sh == nil {
		return
	}
	sh.decls, sh.blocks, sh.log = compileGLSL(sh.source)
	sh.compiled = sh.log == ""
}

func (d *Device) GetShaderi(s device.Shader, pname device.Enum) int {
	sh := d.shader(s, "GetShaderi")
	if sh == nil {
		return 0
	}
	switch pname {
	case device.COMPILE_STATUS:
		if sh.compiled {
			return device.TRUE
		}
		return device.FALSE
	case device.INFO_LOG_LENGTH:
		if sh.log == "" {
			return 0
		}
		return len(sh.log) + 1
	}
	d.setError(device.INVALID_ENUM, "GetShaderi")
	return 0
}

func (d *Device) GetShaderInfoLog(s device.Shader) string {
	if sh := d.shader(s, "GetShaderInfoLog"); sh != nil {
		return sh.log
	}
	return ""
}

func (d *Device) DeleteShader(s device.Shader) {
	if s == 0 {
		return
	}
	delete(d.shaders, s)
}

////////////////////////////////////////////////////////////////
// Programs

func (d *Device) CreateProgram() device.Program {
	id, ok := d.newID()
	if !ok {
		return 0
	}
	p := device.Program(id)
	d.programs[p] = &program{bindings: map[uint32]uint32{}, values: map[int]any{}}
	return p
}

func (d *Device) program(p device.Program, op string) *program {
	pr, ok := d.programs[p]
	if !ok {
		d.setError(device.INVALID_VALUE, op)
	}
	return pr
}

func (d *Device) AttachShader(p device.Program, s device.Shader) {
	pr := d.program(p, "AttachShader")
	if pr == nil || d.shader(s, "AttachShader") == nil {
		return
	}
	if slices.Contains(pr.attached, s) {
		d.setError(device.INVALID_OPERATION, "AttachShader")
		return
	}
	pr.attached = append(pr.attached, s)
}

func (d *Device) DetachShader(p device.Program, s device.Shader) {
	pr := d.program(p, "DetachShader")
	if pr == nil {
		return
	}
	i := slices.Index(pr.attached, s)
	if i < 0 {
		d.setError(device.INVALID_OPERATION, "DetachShader")
		return
	}
	pr.attached = slices.Delete(pr.attached, i, i+1)
}

// stage returns the single attached compiled shader of type typ.
func (d *Device) stage(pr *program, typ device.Enum) (*shader, string) {
	var found *shader
	for _, s := range pr.attached {
		sh := d.shaders[s]
		if sh == nil || sh.typ != typ {
			continue
		}
		if found != nil {
			return nil, "error: more than one shader of the same stage attached\n"
		}
		if !sh.compiled {
			return nil, "error: linking with uncompiled shader\n"
		}
		found = sh
	}
	return found, ""
}

func stageOutputs(sh *shader) map[string]bool {
	outs := map[string]bool{}
	for _, dc := range sh.decls {
		if dc.storage == "out" || dc.storage == "varying" {
			outs[dc.name] = true
		}
	}
	return outs
}

func matchInputs(stageName string, sh *shader, outs map[string]bool) string {
	for _, dc := range sh.decls {
		if dc.storage != "in" && dc.storage != "varying" {
			continue
		}
		if !outs[dc.name] {
			return fmt.Sprintf("error: %s shader input `%s' has no matching output in the previous stage\n", stageName, dc.name)
		}
	}
	return ""
}

func (d *Device) LinkProgram(p device.Program) {
	pr := d.program(p, "LinkProgram")
	if pr == nil {
		return
	}
	pr.linked, pr.log = false, ""
	pr.attribs, pr.uniforms, pr.blocks = nil, nil, nil

	vert, lg := d.stage(pr, device.VERTEX_SHADER)
	if lg == "" && vert == nil {
		lg = "error: program lacks a vertex shader\n"
	}
	var frag, geom *shader
	if lg == "" {
		frag, lg = d.stage(pr, device.FRAGMENT_SHADER)
		if lg == "" && frag == nil {
			lg = "error: program lacks a fragment shader\n"
		}
	}
	if lg == "" {
		geom, lg = d.stage(pr, device.GEOMETRY_SHADER)
	}
	if lg == "" {
		outs := stageOutputs(vert)
		if geom != nil {
			lg = matchInputs("geometry", geom, outs)
			outs = stageOutputs(geom)
		}
		if lg == "" {
			lg = matchInputs("fragment", frag, outs)
		}
	}
	if lg != "" {
		pr.log = lg
		return
	}

	// attributes: explicit locations first, then the lowest free slots
	used := map[int]bool{}
	for _, dc := range vert.decls {
		if dc.storage == "in" && dc.location >= 0 {
			for i := range slotsOf(dc.typ) {
				used[dc.location+i] = true
			}
		}
	}
	next := 0
	for _, dc := range vert.decls {
		if dc.storage != "in" {
			continue
		}
		loc := dc.location
		if loc < 0 {
			for used[next] {
				next++
			}
			loc = next
			for i := range slotsOf(dc.typ) {
				used[loc+i] = true
			}
		}
		pr.attribs = append(pr.attribs, attribute{name: dc.name, typ: glslTypes[dc.typ], location: loc})
	}

	// uniforms and blocks are shared across stages by name
	loc := 0
	for _, sh := range []*shader{vert, geom, frag} {
		if sh == nil {
			continue
		}
		for _, dc := range sh.decls {
			if dc.storage != "uniform" || slices.ContainsFunc(pr.uniforms, func(u uniform) bool { return u.name == dc.name }) {
				continue
			}
			pr.uniforms = append(pr.uniforms, uniform{name: dc.name, typ: dc.typ, location: loc})
			n := max(dc.arrayLen, 1)
			for i := 1; i < n; i++ {
				pr.uniforms = append(pr.uniforms, uniform{name: fmt.Sprintf("%s[%d]", dc.name, i), typ: dc.typ, location: loc + i})
			}
			loc += n
		}
		for _, b := range sh.blocks {
			if !slices.Contains(pr.blocks, b) {
				pr.blocks = append(pr.blocks, b)
			}
		}
	}
	pr.linked = true
}

func (d *Device) GetProgrami(p device.Program, pname device.Enum) int {
	pr := d.program(p, "GetProgrami")
	if pr == nil {
		return 0
	}
	switch pname {
	case device.LINK_STATUS:
		if pr.linked {
			return device.TRUE
		}
		return device.FALSE
	case device.INFO_LOG_LENGTH:
		if pr.log == "" {
			return 0
		}
		return len(pr.log) + 1
	case device.ACTIVE_ATTRIBUTES:
		return len(pr.attribs)
	case device.ACTIVE_ATTRIBUTE_MAX_LENGTH:
		mx := 0
		for _, a := range pr.attribs {
			mx = max(mx, len(a.name)+1)
		}
		return mx
	case device.ACTIVE_UNIFORMS:
		return len(pr.uniforms)
	case device.ACTIVE_UNIFORM_BLOCKS:
		return len(pr.blocks)
	}
	d.setError(device.INVALID_ENUM, "GetProgrami")
	return 0
}

func (d *Device) GetProgramInfoLog(p device.Program) string {
	if pr := d.program(p, "GetProgramInfoLog"); pr != nil {
		return pr.log
	}
	return ""
}

func (d *Device) DeleteProgram(p device.Program) {
	if p == 0 {
		return
	}
	delete(d.programs, p)
	if d.current == p {
		d.current = 0
	}
}

func (d *Device) UseProgram(p device.Program) {
	if p != 0 {
		pr := d.program(p, "UseProgram")
		if pr == nil {
			return
		}
		if !pr.linked {
			d.setError(device.INVALID_OPERATION, "UseProgram")
			return
		}
	}
	d.current = p
}

// CurrentProgram returns the program made current by UseProgram.
func (d *Device) CurrentProgram() device.Program {
	return d.current
}

func (d *Device) GetActiveAttrib(p device.Program, index uint32, name []byte) (length, size int, typ device.Enum) {
	pr := d.program(p, "GetActiveAttrib")
	if pr == nil {
		return 0, 0, device.INVALID_TYPE
	}
	if int(index) >= len(pr.attribs) {
		d.setError(device.INVALID_VALUE, "GetActiveAttrib")
		return 0, 0, device.INVALID_TYPE
	}
	if len(name) == 0 {
		return 0, 1, pr.attribs[index].typ
	}
	a := pr.attribs[index]
	n := copy(name[:len(name)-1], a.name)
	name[n] = 0
	return n, 1, a.typ
}

func (d *Device) GetAttribLocation(p device.Program, name string) int {
	pr := d.program(p, "GetAttribLocation")
	if pr == nil {
		return -1
	}
	if !pr.linked {
		d.setError(device.INVALID_OPERATION, "GetAttribLocation")
		return -1
	}
	name = strings.TrimSuffix(name, "\x00")
	for _, a := range pr.attribs {
		if a.name == name {
			return a.location
		}
	}
	return -1
}

func (d *Device) GetUniformLocation(p device.Program, name string) int {
	pr := d.program(p, "GetUniformLocation")
	if pr == nil {
		return -1
	}
	if !pr.linked {
		d.setError(device.INVALID_OPERATION, "GetUniformLocation")
		return -1
	}
	name = strings.TrimSuffix(name, "\x00")
	name = strings.TrimSuffix(name, "[0]")
	for _, u := range pr.uniforms {
		if u.name == name {
			return u.location
		}
	}
	return -1
}

func (d *Device) GetUniformBlockIndex(p device.Program, name string) uint32 {
	pr := d.program(p, "GetUniformBlockIndex")
	if pr == nil {
		return device.INVALID_INDEX
	}
	i := slices.Index(pr.blocks, strings.TrimSuffix(name, "\x00"))
	if i < 0 {
		return device.INVALID_INDEX
	}
	return uint32(i)
}

func (d *Device) UniformBlockBinding(p device.Program, block, binding uint32) {
	pr := d.program(p, "UniformBlockBinding")
	if pr == nil {
		return
	}
	if int(block) >= len(pr.blocks) {
		d.setError(device.INVALID_VALUE, "UniformBlockBinding")
		return
	}
	pr.bindings[block] = binding
}

// BlockBinding returns the binding point assigned to the named
// uniform block of program p.
func (d *Device) BlockBinding(p device.Program, name string) (uint32, bool) {
	pr, ok := d.programs[p]
	if !ok {
		return 0, false
	}
	i := slices.Index(pr.blocks, name)
	if i < 0 {
		return 0, false
	}
	b, ok := pr.bindings[uint32(i)]
	return b, ok
}

// AttachedShaders returns the shaders currently attached to p.
func (d *Device) AttachedShaders(p device.Program) []device.Shader {
	if pr, ok := d.programs[p]; ok {
		return slices.Clone(pr.attached)
	}
	return nil
}

////////////////////////////////////////////////////////////////
// Uniform values

// UniformValue is a value written to a uniform location.
// Transpose is only meaningful for matrices.
type UniformValue struct {
	Func      string
	Floats    []float32
	Ints      []int32
	Uints     []uint32
	Count     int
	Transpose bool
}

func (d *Device) setUniform(loc int, op string, v UniformValue) {
	if loc == -1 {
		return
	}
	pr := d.programs[d.current]
	if pr == nil {
		d.setError(device.INVALID_OPERATION, op)
		return
	}
	if !slices.ContainsFunc(pr.uniforms, func(u uniform) bool { return u.location == loc }) {
		d.setError(device.INVALID_OPERATION, op)
		return
	}
	v.Func = op
	pr.values[loc] = v
}

// Uniform returns the last value written to the named uniform of p.
func (d *Device) Uniform(p device.Program, name string) (UniformValue, bool) {
	pr, ok := d.programs[p]
	if !ok {
		return UniformValue{}, false
	}
	for _, u := range pr.uniforms {
		if u.name == name {
			v, ok := pr.values[u.location].(UniformValue)
			return v, ok
		}
	}
	return UniformValue{}, false
}

func (d *Device) Uniform1f(loc int, v float32) {
	d.setUniform(loc, "Uniform1f", UniformValue{Floats: []float32{v}, Count: 1})
}

func (d *Device) Uniform1i(loc int, v int32) {
	d.setUniform(loc, "Uniform1i", UniformValue{Ints: []int32{v}, Count: 1})
}

func (d *Device) Uniform1ui(loc int, v uint32) {
	d.setUniform(loc, "Uniform1ui", UniformValue{Uints: []uint32{v}, Count: 1})
}

func (d *Device) Uniform2f(loc int, x, y float32) {
	d.setUniform(loc, "Uniform2f", UniformValue{Floats: []float32{x, y}, Count: 1})
}

func (d *Device) Uniform3f(loc int, x, y, z float32) {
	d.setUniform(loc, "Uniform3f", UniformValue{Floats: []float32{x, y, z}, Count: 1})
}

func (d *Device) Uniform4f(loc int, x, y, z, w float32) {
	d.setUniform(loc, "Uniform4f", UniformValue{Floats: []float32{x, y, z, w}, Count: 1})
}

func (d *Device) UniformMatrix3fv(loc int, count int, transpose bool, v []float32) {
	if len(v) < 9*count {
		d.setError(device.INVALID_VALUE, "UniformMatrix3fv")
		return
	}
	d.setUniform(loc, "UniformMatrix3fv", UniformValue{Floats: slices.Clone(v[:9*count]), Count: count, Transpose: transpose})
}

func (d *Device) UniformMatrix4fv(loc int, count int, transpose bool, v []float32) {
	if len(v) < 16*count {
		d.setError(device.INVALID_VALUE, "UniformMatrix4fv")
		return
	}
	d.setUniform(loc, "UniformMatrix4fv", UniformValue{Floats: slices.Clone(v[:16*count]), Count: count, Transpose: transpose})
}
