// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides indexed triangle meshes of interleaved
// vertices, decoded from Wavefront OBJ files or generated, and binds
// them to program attributes.
package mesh

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/glw/gpu"
	fmath "github.com/chewxy/math32"
)

// Vertex is an interleaved mesh vertex. Its fields are bound to the
// attributes position, normal and uv.
type Vertex struct {
	Position math32.Vector3
	Normal   math32.Vector3
	UV       math32.Vector2
}

// Attributes maps the attribute names of a program to the fields of
// [Vertex] they are bound to.
var Attributes = map[string]string{
	"position": "Position",
	"normal":   "Normal",
	"uv":       "UV",
}

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32

	// Warnings lists input that was ignored while decoding.
	Warnings []string
}

// Bounds returns the minimum and maximum corners of the bounding box
// of the mesh positions. Both are zero for an empty mesh.
func (m *Mesh) Bounds() (min, max math32.Vector3) {
	if len(m.Vertices) == 0 {
		return
	}
	inf := fmath.Inf(1)
	min = math32.Vec3(inf, inf, inf)
	max = math32.Vec3(-inf, -inf, -inf)
	for _, v := range m.Vertices {
		p := v.Position
		min = math32.Vec3(fmath.Min(min.X, p.X), fmath.Min(min.Y, p.Y), fmath.Min(min.Z, p.Z))
		max = math32.Vec3(fmath.Max(max.X, p.X), fmath.Max(max.Y, p.Y), fmath.Max(max.Z, p.Z))
	}
	return
}

// Sphere returns the center and radius of a sphere that holds the mesh.
func (m *Mesh) Sphere() (center math32.Vector3, radius float32) {
	min, max := m.Bounds()
	center = min.Add(max).MulScalar(0.5)
	d := max.Sub(min)
	radius = 0.5 * fmath.Sqrt(d.X*d.X+d.Y*d.Y+d.Z*d.Z)
	return
}

// Buffers holds a mesh uploaded to the device.
type Buffers = gpu.IndexedBuffer[Vertex, uint32]

// Upload creates static vertex and index buffers for the mesh.
func (m *Mesh) Upload(ctx *gpu.Context) (*Buffers, error) {
	return gpu.NewIndexedBuffer(ctx, m.Vertices, m.Indices)
}

// Bind binds the vertex fields of bufs to the attributes of p named in
// [Attributes], skipping those p does not declare, and sets the index
// buffer of p.
func Bind(p *gpu.Program, bufs *Buffers) error {
	for attr, field := range Attributes {
		if _, ok := p.AttributeSlot(attr); !ok {
			continue
		}
		v, err := gpu.FieldView(bufs.Vertices, field)
		if err != nil {
			return err
		}
		if err := p.Bind(attr, v); err != nil {
			return err
		}
	}
	return gpu.SetIndices(p, bufs.Indices)
}

func normalize(v math32.Vector3) math32.Vector3 {
	l := fmath.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

// Cube returns a cube of the given edge length centered at the origin,
// with outward facing normals and one texture square per face.
func Cube(size float32) *Mesh {
	h := size / 2
	faces := []struct {
		normal, u, v math32.Vector3
	}{
		{math32.Vec3(1, 0, 0), math32.Vec3(0, 0, -1), math32.Vec3(0, 1, 0)},
		{math32.Vec3(-1, 0, 0), math32.Vec3(0, 0, 1), math32.Vec3(0, 1, 0)},
		{math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, -1)},
		{math32.Vec3(0, -1, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1)},
		{math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)},
		{math32.Vec3(0, 0, -1), math32.Vec3(-1, 0, 0), math32.Vec3(0, 1, 0)},
	}
	corners := [4]math32.Vector2{math32.Vec2(0, 0), math32.Vec2(1, 0), math32.Vec2(1, 1), math32.Vec2(0, 1)}
	m := &Mesh{Name: "cube"}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, c := range corners {
			p := f.normal.Add(f.u.MulScalar(2*c.X - 1)).Add(f.v.MulScalar(2*c.Y - 1)).MulScalar(h)
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: f.normal, UV: c})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base+2, base+3, base)
	}
	return m
}
