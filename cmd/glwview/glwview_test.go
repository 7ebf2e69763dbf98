// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/glw/config"
	"cogentcore.org/glw/gpu"
	"cogentcore.org/glw/gpu/device"
	"cogentcore.org/glw/gpu/device/softdevice"
	"cogentcore.org/glw/gpu/imagex"
	"cogentcore.org/glw/gpu/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestSceneBuiltin(t *testing.T) {
	ctx, dev := newTestContext(t)
	cfg := config.Default()
	s, err := newScene(ctx, cfg)
	require.NoError(t, err)
	defer s.delete()
	assert.Empty(t, s.files)
	assert.Equal(t, cfg.ClearColor, dev.State().ClearColor)

	require.NoError(t, s.draw(1, 0))
	require.Len(t, dev.Draws, 1)
	d := dev.Draws[0]
	assert.True(t, d.Indexed)
	assert.Equal(t, 36, d.IndexCount)
	assert.Zero(t, d.Texture)

	prog := device.Program(s.prog.Raw().ID)
	textured, ok := dev.Uniform(prog, "textured")
	require.True(t, ok)
	assert.Equal(t, []int32{0}, textured.Ints)
	mvp, ok := dev.Uniform(prog, "mvp")
	require.True(t, ok)
	assert.Len(t, mvp.Floats, 16)
	tint, ok := dev.Uniform(prog, "tint")
	require.True(t, ok, "uniform from the included lighting file")
	assert.Equal(t, []float32{0.8, 0.8, 0.85, 1}, tint.Floats)

	fn := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, s.capture(8, 8, fn))
	img, err := imagex.Open(fn, gpu.RGBA8, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Width)
	assert.Equal(t, 8, img.Height)
}

func TestSceneTexture(t *testing.T) {
	ctx, dev := newTestContext(t)
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	fn := filepath.Join(dir, "tex.png")
	require.NoError(t, imagex.Save(imagex.ToGPU(src), fn))

	cfg := config.Default()
	cfg.Texture = fn
	s, err := newScene(ctx, cfg)
	require.NoError(t, err)
	defer s.delete()
	w, h := s.tex.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)

	require.NoError(t, s.draw(2, 0.5))
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, device.Texture(s.tex.Raw().ID), dev.Draws[0].Texture)
	textured, _ := dev.Uniform(device.Program(s.prog.Raw().ID), "textured")
	assert.Equal(t, []int32{1}, textured.Ints)

	cfg.Texture = filepath.Join(dir, "none.png")
	_, err = newScene(ctx, cfg)
	assert.Error(t, err)
}

func TestSceneMeshErrors(t *testing.T) {
	ctx, _ := newTestContext(t)
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Mesh = filepath.Join(dir, "none.obj")
	_, err := newScene(ctx, cfg)
	assert.Error(t, err)

	cfg.Mesh = filepath.Join(dir, "tri.obj")
	require.NoError(t, os.WriteFile(cfg.Mesh, []byte("o tri\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644))
	s, err := newScene(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, s.bufs.Vertices.Len())
	s.delete()
}

const diskVert = `#version 410 core
in vec3 position;
uniform mat4 mvp;
void main() {
	gl_Position = mvp * vec4(position, 1.0);
}
`

const diskFrag = `#version 410 core
out vec4 color;
void main() {
	color = vec4(1.0);
}
`

func TestSceneReload(t *testing.T) {
	ctx, dev := newTestContext(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vert"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "frag"), 0o755))
	vert := filepath.Join(dir, "vert", "flat.vert")
	frag := filepath.Join(dir, "frag", "flat.frag")
	require.NoError(t, os.WriteFile(vert, []byte(diskVert), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte(diskFrag), 0o644))

	cfg := config.Default()
	cfg.Shaders = shaders.Paths{Vertex: vert, Fragment: frag}
	s, err := newScene(ctx, cfg)
	require.NoError(t, err)
	defer s.delete()
	assert.Equal(t, []string{vert, frag}, s.files)
	assert.Nil(t, s.tint, "uniforms the shaders leave out are skipped")
	require.NoError(t, s.draw(1, 0))

	first := s.prog
	require.NoError(t, os.WriteFile(frag, []byte("void main() {"), 0o644))
	s.reload()
	assert.Same(t, first, s.prog, "a broken shader keeps the last good program")

	require.NoError(t, os.WriteFile(frag, []byte(diskFrag), 0o644))
	s.reload()
	assert.NotSame(t, first, s.prog)
	assert.Equal(t, 1, ctx.Live(gpu.ProgramResource))
	require.NoError(t, s.draw(1, 0))
	assert.Equal(t, device.Program(s.prog.Raw().ID), dev.Draws[1].Program)
	assert.True(t, dev.Draws[1].Indexed, "the mesh is bound to the rebuilt program")
}

const samplerFrag = `#version 410 core
uniform sampler2D image;
out vec4 color;
void main() {
	color = texture(image, vec2(0.5));
}
`

func TestSceneSampler(t *testing.T) {
	ctx, dev := newTestContext(t)
	dir := t.TempDir()
	tex := filepath.Join(dir, "tex.png")
	require.NoError(t, imagex.Save(gpu.NewImage(gpu.RGBA8, 2, 2), tex))
	vert := filepath.Join(dir, "flat.vert")
	frag := filepath.Join(dir, "flat.frag")
	require.NoError(t, os.WriteFile(vert, []byte(diskVert), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte(samplerFrag), 0o644))

	cfg := config.Default()
	cfg.Shaders = shaders.Paths{Vertex: vert, Fragment: frag}
	cfg.Texture = tex
	_, err := newScene(ctx, cfg)
	var ue *gpu.UndeclaredUniformError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "tex", ue.Name)

	cfg.Sampler = "image"
	s, err := newScene(ctx, cfg)
	require.NoError(t, err)
	defer s.delete()
	require.NoError(t, s.draw(1, 0))
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, device.Texture(s.tex.Raw().ID), dev.Draws[0].Texture)
}

func TestSceneAxes(t *testing.T) {
	ctx, dev := newTestContext(t)
	cfg := config.Default()
	cfg.Axes = true
	s, err := newScene(ctx, cfg)
	require.NoError(t, err)
	defer s.delete()
	require.NotNil(t, s.axes)

	s.primitive = gpu.Points
	require.NoError(t, s.draw(1, 0.5))
	require.Len(t, dev.Draws, 2)
	assert.Equal(t, device.POINTS, dev.Draws[0].Mode)
	d := dev.Draws[1]
	assert.Equal(t, device.LINES, d.Mode)
	assert.Equal(t, 6, d.Count)
	assert.Equal(t, device.Program(s.axesBuilder.Program().Raw().ID), d.Program)
	assert.Equal(t, 2, ctx.Live(gpu.ProgramResource))
}

func TestDiskFS(t *testing.T) {
	dir := t.TempDir()
	ps := shaders.Paths{
		Vertex:   filepath.Join(dir, "a", "x.vert"),
		Fragment: filepath.Join(dir, "b", "c", "y.frag"),
		Geometry: filepath.Join(dir, "a", "z.geom"),
	}
	_, rel, files, err := diskFS(ps)
	require.NoError(t, err)
	assert.Equal(t, shaders.Paths{Vertex: "a/x.vert", Fragment: "b/c/y.frag", Geometry: "a/z.geom"}, rel)
	assert.Equal(t, []string{ps.Vertex, ps.Fragment, ps.Geometry}, files)

	assert.True(t, within(dir, filepath.Join(dir, "a")))
	assert.False(t, within(filepath.Join(dir, "a"), filepath.Join(dir, "b")))
	assert.True(t, within(dir, filepath.Join(dir, "..a")))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "view.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("frames = 5\n[window]\nwidth = 100\n"), 0o644))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--height", "50", "--watch", "--axes", "--sampler", "image", "--primitive", "Lines", "--vert", "a.vert", "--frag", "a.frag", "--log-level", "warn"}))
	cfg, err := loadConfig(cmd, cfgFile, []string{"bunny.obj"})
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Window.Width, "from the file")
	assert.Equal(t, 50, cfg.Window.Height, "from a flag")
	assert.Equal(t, 5, cfg.Frames)
	assert.True(t, cfg.Watch)
	assert.True(t, cfg.Axes)
	assert.Equal(t, "image", cfg.Sampler)
	assert.Equal(t, gpu.Lines, cfg.Primitive)
	assert.True(t, cfg.Window.VSync, "unset flags keep the configured value")
	assert.Equal(t, shaders.Paths{Vertex: "a.vert", Fragment: "a.frag"}, cfg.Shaders)
	assert.Equal(t, "bunny.obj", cfg.Mesh)
	assert.Equal(t, "warn", cfg.LogLevel)

	cmd = newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--width", "0"}))
	_, err = loadConfig(cmd, "", nil)
	assert.ErrorContains(t, err, "window size")

	cmd = newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--primitive", "Quads"}))
	_, err = loadConfig(cmd, "", nil)
	assert.ErrorContains(t, err, "Quads")

	_, err = loadConfig(newRootCmd(), filepath.Join(dir, "none.toml"), nil)
	assert.Error(t, err)
}

func TestInitCmd(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "view.yaml")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"init", fn})
	require.NoError(t, cmd.Execute())
	cfg, err := config.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
