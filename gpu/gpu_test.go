// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/glw/gpu/device"
	"cogentcore.org/glw/gpu/device/softdevice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVert = `#version 410 core
in vec3 position;
in vec3 normal;
uniform mat4 mvp;
uniform mat3 normalMatrix;
uniform vec2 offset;
uniform vec3 light;
uniform float scale;
uniform int mode;
uniform uint flags;
uniform mat4 bones[2];
uniform Camera {
	mat4 view;
};
out vec3 vNormal;
void main() {
	vNormal = normalMatrix * normal;
	gl_Position = mvp * vec4(position * scale, 1.0);
}
`

const testFrag = `#version 410 core
in vec3 vNormal;
uniform sampler2D tex;
uniform vec4 tint;
out vec4 color;
void main() {
	color = tint * texture(tex, vNormal.xy);
}
`

// Vertex is array-of-structs vertex data.
type Vertex struct {
	Position math32.Vector3
	Normal   math32.Vector3
	UV       [2]float32
	ID       uint32
}

// newTestContext returns a debug context over a software device, and
// checks at the end of the test that nothing is left bound.
func newTestContext(t *testing.T) (*Context, *softdevice.Device) {
	dev := softdevice.New(8, 8)
	ctx := NewContext(dev)
	ctx.Debug = true
	t.Cleanup(func() {
		assertNeutral(t, dev)
		assert.Empty(t, dev.Errors())
	})
	return ctx, dev
}

func assertNeutral(t *testing.T, dev *softdevice.Device) {
	t.Helper()
	assert.Zero(t, dev.BoundBuffer(device.ARRAY_BUFFER), "array buffer slot")
	assert.Zero(t, dev.BoundBuffer(device.ELEMENT_ARRAY_BUFFER), "element buffer slot")
	assert.Zero(t, dev.BoundBuffer(device.UNIFORM_BUFFER), "uniform buffer slot")
	assert.Zero(t, dev.BoundTexture(0), "texture unit 0")
	assert.Zero(t, dev.BoundVertexArray(), "vertex array")
}

func newTestShaders(t *testing.T, ctx *Context, vert, frag string) (*Shader, *Shader) {
	vs, err := NewShader(ctx, VertexShader, vert)
	require.NoError(t, err)
	fs, err := NewShader(ctx, FragmentShader, frag)
	require.NoError(t, err)
	t.Cleanup(func() {
		vs.Delete()
		fs.Delete()
	})
	return vs, fs
}

func newTestProgram(t *testing.T, ctx *Context) *Program {
	vs, fs := newTestShaders(t, ctx, testVert, testFrag)
	p, err := NewProgramBuilder(vs, fs).Build()
	require.NoError(t, err)
	return p
}

func TestContext(t *testing.T) {
	ctx, dev := newTestContext(t)
	assert.True(t, dev.Enabled(device.DEPTH_TEST))
	assert.Equal(t, device.LESS, dev.State().DepthFunc)

	assert.Equal(t, BindingPoint(0), ctx.NewBindingPoint())
	assert.Equal(t, BindingPoint(1), ctx.NewBindingPoint())
	assert.Equal(t, BindingPoint(2), ctx.NewBindingPoint())

	ctx.SetClearColor(0.5, 0.25, 0, 1)
	ctx.SetLineWidth(2)
	ctx.SetPointSize(3)
	ctx.SetViewport(1, 2, 3, 4)
	ctx.EnableProgramPointSize()
	st := dev.State()
	assert.Equal(t, [4]float32{0.5, 0.25, 0, 1}, st.ClearColor)
	assert.Equal(t, float32(2), st.LineWidth)
	assert.Equal(t, float32(3), st.PointSize)
	assert.Equal(t, [4]int{1, 2, 3, 4}, st.Viewport)
	assert.True(t, dev.Enabled(device.PROGRAM_POINT_SIZE))

	fb := ctx.DefaultFrameBuffer()
	assert.Zero(t, fb.Raw().ID)
	assert.True(t, fb.HasDepth())
	assert.Same(t, fb, ctx.DefaultFrameBuffer())
}

func TestLiveResources(t *testing.T) {
	ctx, dev := newTestContext(t)
	buf, err := NewArrayBuffer(ctx, []float32{1, 2, 3})
	require.NoError(t, err)
	tex, err := NewEmptyTexture(ctx, RGBA, 2, 2)
	require.NoError(t, err)
	p := newTestProgram(t, ctx)
	dup, err := p.Duplicate()
	require.NoError(t, err)

	assert.Equal(t, 1, ctx.Live(BufferResource))
	assert.Equal(t, 1, ctx.Live(TextureResource))
	assert.Equal(t, 1, ctx.Live(ProgramResource))
	assert.Equal(t, 2, ctx.Live(VertexArrayResource))
	assert.Equal(t, 2, ctx.Live(ShaderResource))

	buf.Delete()
	buf.Delete()
	tex.Delete()
	p.Delete()
	assert.Equal(t, 1, ctx.Live(ProgramResource), "duplicate still shares the program")
	dup.Delete()
	assert.Zero(t, ctx.Live(ProgramResource))
	assert.Zero(t, ctx.Live(VertexArrayResource))
	assert.Equal(t, 2, ctx.LiveTotal(), "only the shaders remain")
	assert.Equal(t, 2, dev.Live())
}

func TestDebugPanicsOnLeftBinding(t *testing.T) {
	ctx, dev := newTestContext(t)
	b := dev.GenBuffer()
	ctx.st.bindBuffer(device.ARRAY_BUFFER, b)
	assert.Panics(t, func() { ctx.done("test") })
	ctx.st.bindBuffer(device.ARRAY_BUFFER, 0)
	dev.DeleteBuffer(b)
	assert.NotPanics(t, func() { ctx.done("test") })
}
