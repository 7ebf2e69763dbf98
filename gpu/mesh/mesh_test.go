// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/core/math32"
	"cogentcore.org/glw/gpu"
	"cogentcore.org/glw/gpu/device"
	"cogentcore.org/glw/gpu/device/softdevice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `# a unit quad
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 1
usemtl none
f 1/1 2 3/2 4
`

func TestDecodeComputedNormals(t *testing.T) {
	m, err := Decode(strings.NewReader(quadOBJ))
	require.NoError(t, err)
	assert.Equal(t, "quad", m.Name)
	require.Len(t, m.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
	for i, v := range m.Vertices {
		assert.InDelta(t, 1, v.Normal.Z, 1e-6, "vertex %d", i)
		assert.Zero(t, v.Normal.X)
		assert.Zero(t, v.Normal.Y)
	}
	assert.Equal(t, math32.Vec2(1, 1), m.Vertices[2].UV)
	assert.Equal(t, math32.Vec2(0, 0), m.Vertices[1].UV)
	require.Len(t, m.Warnings, 1)
	assert.Contains(t, m.Warnings[0], "usemtl")
}

func TestDecodeNormalsAndRelativeIndices(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 -1
f -3//1 -2//-1 -1//1
f 1//1 3//1 2//1
`
	m, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 3, "corners are shared")
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 1}, m.Indices)
	for _, v := range m.Vertices {
		assert.Equal(t, math32.Vec3(0, 0, -1), v.Normal)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"zero index":     "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"out of range":   "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
		"bad normal":     "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2 3\n",
		"two corners":    "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"short vertex":   "v 0 0\n",
		"bad float":      "v 0 x 0\n",
		"bad face index": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf a 2 3\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(src))
			assert.ErrorContains(t, err, "mesh: line ")
		})
	}
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{"models/quad.obj": {Data: []byte(quadOBJ)}}
	m, err := OpenFS(fsys, "models/quad.obj")
	require.NoError(t, err)
	assert.Len(t, m.Indices, 6)
	_, err = OpenFS(fsys, "models/none.obj")
	assert.Error(t, err)
	_, err = Open("testdata/none.obj")
	assert.Error(t, err)
}

func TestCube(t *testing.T) {
	m := Cube(2)
	assert.Len(t, m.Vertices, 24)
	assert.Len(t, m.Indices, 36)
	min, max := m.Bounds()
	assert.Equal(t, math32.Vec3(-1, -1, -1), min)
	assert.Equal(t, math32.Vec3(1, 1, 1), max)
	c, r := m.Sphere()
	assert.Equal(t, math32.Vec3(0, 0, 0), c)
	assert.InDelta(t, 1.7320508, r, 1e-5)

	for i := 0; i < len(m.Indices); i += 3 {
		a, b, cc := m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
		n := b.Position.Sub(a.Position).Cross(cc.Position.Sub(a.Position))
		assert.Positive(t, n.Dot(a.Normal), "triangle %d winds counter-clockwise seen from outside", i/3)
	}

	empty := &Mesh{}
	min, max = empty.Bounds()
	assert.Zero(t, min)
	assert.Zero(t, max)
}

func TestUploadBind(t *testing.T) {
	dev := softdevice.New(8, 8)
	ctx := gpu.NewContext(dev)
	ctx.Debug = true

	vs, err := gpu.NewShader(ctx, gpu.VertexShader, `#version 410 core
in vec3 position;
in vec3 normal;
out vec3 vNormal;
void main() {
	vNormal = normal;
	gl_Position = vec4(position, 1.0);
}
`)
	require.NoError(t, err)
	defer vs.Delete()
	fs, err := gpu.NewShader(ctx, gpu.FragmentShader, `#version 410 core
in vec3 vNormal;
out vec4 color;
void main() {
	color = vec4(vNormal, 1.0);
}
`)
	require.NoError(t, err)
	defer fs.Delete()
	p, err := gpu.NewProgramBuilder(vs, fs).Build()
	require.NoError(t, err)
	defer p.Delete()

	m := Cube(1)
	bufs, err := m.Upload(ctx)
	require.NoError(t, err)
	defer bufs.Delete()
	require.NoError(t, Bind(p, bufs))

	vao := device.VertexArray(p.VertexArray().ID)
	attribs := dev.Attribs(vao)
	slot, _ := p.AttributeSlot("normal")
	assert.Equal(t, 12, attribs[slot].Offset)
	assert.Equal(t, 32, attribs[slot].Stride)
	assert.Equal(t, device.Buffer(bufs.Indices.Raw().ID), dev.ElementBuffer(vao))

	require.NoError(t, p.Draw(gpu.Triangles))
	require.Len(t, dev.Draws, 1)
	assert.True(t, dev.Draws[0].Indexed)
	assert.Equal(t, 36, dev.Draws[0].IndexCount)
	assert.Empty(t, dev.Errors())
}
