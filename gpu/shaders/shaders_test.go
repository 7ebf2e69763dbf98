// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/glw/gpu"
	"cogentcore.org/glw/gpu/device"
	"cogentcore.org/glw/gpu/device/softdevice"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFS = fstest.MapFS{
	"glsl/common.glsl":    {Data: []byte("#include \"lib/light.glsl\"\nuniform mat4 mvp;\n")},
	"glsl/lib/light.glsl": {Data: []byte("uniform vec3 light;\n")},
	"glsl/basic.vert": {Data: []byte(`#version 410 core
#include "common.glsl"
in vec3 position;
void main() {
	gl_Position = mvp * vec4(position + light, 1.0);
}
`)},
	"glsl/basic.frag": {Data: []byte(`#version 410 core
uniform vec4 tint;
out vec4 color;
void main() {
	color = tint;
}
`)},
	"glsl/broken.frag":  {Data: []byte("void main() {\n")},
	"glsl/a.glsl":       {Data: []byte("#include \"b.glsl\"\n")},
	"glsl/b.glsl":       {Data: []byte("#include \"a.glsl\"\n")},
	"glsl/cycle.vert":   {Data: []byte("#include \"a.glsl\"\nvoid main() {}\n")},
	"glsl/missing.vert": {Data: []byte("#include \"nope.glsl\"\nvoid main() {}\n")},
}

func newTestContext(t *testing.T) (*gpu.Context, *softdevice.Device) {
	dev := softdevice.New(8, 8)
	ctx := gpu.NewContext(dev)
	ctx.Debug = true
	t.Cleanup(func() {
		assert.Zero(t, ctx.LiveTotal(), "leaked resources")
		assert.Empty(t, dev.Errors())
	})
	return ctx, dev
}

func TestKindOf(t *testing.T) {
	tests := map[string]gpu.ShaderKinds{
		"a.vert": gpu.VertexShader, "a.VS": gpu.VertexShader,
		"b.frag": gpu.FragmentShader, "b.fs": gpu.FragmentShader,
		"c.geom": gpu.GeometryShader, "c.gs": gpu.GeometryShader,
	}
	for name, want := range tests {
		k, ok := KindOf(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, k, name)
	}
	_, ok := KindOf("common.glsl")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	src, err := Load(testFS, "glsl/basic.vert")
	require.NoError(t, err)
	lines := strings.Split(src, "\n")
	assert.Equal(t, "#version 410 core", lines[0])
	assert.Equal(t, `// #include "common.glsl"`, lines[1])
	assert.Equal(t, `// #include "lib/light.glsl"`, lines[2])
	assert.Equal(t, "uniform vec3 light;", lines[3])
	assert.Equal(t, "uniform mat4 mvp;", lines[4])
	assert.Equal(t, "in vec3 position;", lines[5], "included files add no blank lines")
	assert.Contains(t, src, "in vec3 position;")

	_, err = Load(testFS, "glsl/none.vert")
	var fe *gpu.FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "glsl/none.vert", fe.Path)
}

func TestIncludeErrors(t *testing.T) {
	_, err := Load(testFS, "glsl/cycle.vert")
	assert.ErrorContains(t, err, "cycle")

	_, err = Load(testFS, "glsl/missing.vert")
	var fe *gpu.FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "nope.glsl", fe.Path)

	_, err = Include(testFS, "glsl", "#include \"common.glsl\n")
	assert.ErrorContains(t, err, "no final quote")

	src, err := Include(testFS, "glsl", "  #include \"lib/light.glsl\"\nvoid main() {}")
	require.NoError(t, err)
	assert.Contains(t, src, "uniform vec3 light;")
}

func TestBuild(t *testing.T) {
	ctx, dev := newTestContext(t)
	p, err := Build(ctx, testFS, Paths{Vertex: "glsl/basic.vert", Fragment: "glsl/basic.frag"}, nil)
	require.NoError(t, err)
	defer p.Delete()
	assert.Equal(t, 1, ctx.Live(gpu.ProgramResource), "shaders are deleted after linking")
	_, ok := p.AttributeSlot("position")
	assert.True(t, ok)
	_, err = gpu.UniformOf[mgl32.Mat4](p, "mvp")
	assert.NoError(t, err, "uniform from an included file")
	light, err := gpu.UniformOf[mgl32.Vec3](p, "light")
	require.NoError(t, err, "uniform from a nested include")
	light.Pass(mgl32.Vec3{1, 2, 3})
	v, ok := dev.Uniform(device.Program(p.Raw().ID), "light")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2, 3}, v.Floats)

	called := false
	p2, err := Build(ctx, testFS, Paths{Vertex: "glsl/basic.vert", Fragment: "glsl/basic.frag"}, func(b *gpu.ProgramBuilder) {
		called = true
		b.Attributes("position")
	})
	require.NoError(t, err)
	defer p2.Delete()
	assert.True(t, called)
	assert.Equal(t, []string{"position"}, p2.AttributeNames())
}

func TestBuildErrors(t *testing.T) {
	ctx, _ := newTestContext(t)
	_, err := Build(ctx, testFS, Paths{Vertex: "glsl/basic.vert", Fragment: "glsl/broken.frag"}, nil)
	var ce *gpu.CompileError
	assert.ErrorAs(t, err, &ce)

	_, err = Build(ctx, testFS, Paths{Vertex: "glsl/basic.vert", Fragment: "glsl/common.glsl"}, nil)
	assert.ErrorContains(t, err, "unknown shader stage")
}

func TestRebuild(t *testing.T) {
	ctx, _ := newTestContext(t)
	ps := Paths{Vertex: "glsl/basic.vert", Fragment: "glsl/basic.frag"}
	p, err := Rebuild(ctx, testFS, ps, nil, nil)
	require.NoError(t, err)

	bad := ps
	bad.Fragment = "glsl/broken.frag"
	kept, err := Rebuild(ctx, testFS, bad, nil, p)
	assert.Error(t, err)
	assert.Same(t, p, kept, "the last good program is kept")

	next, err := Rebuild(ctx, testFS, ps, nil, p)
	require.NoError(t, err)
	assert.NotSame(t, p, next)
	assert.Equal(t, 1, ctx.Live(gpu.ProgramResource), "the old program is deleted")
	next.Delete()
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "a.vert")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(vert, []byte("void main() {}\n"), 0o644))

	w, err := NewWatcher(vert)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(vert, []byte("void main() { }\n"), 0o644))
	select {
	case name := <-w.Changed():
		assert.Equal(t, vert, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, err = NewWatcher(filepath.Join(dir, "missing", "b.frag"))
	assert.Error(t, err)
}
