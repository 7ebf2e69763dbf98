// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/glw/gpu"
	"cogentcore.org/glw/gpu/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, Window{Title: "glwview", Width: 800, Height: 600, VSync: true}, c.Window)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "tex", c.Sampler)
	assert.False(t, c.Axes)
	assert.Equal(t, gpu.Triangles, c.Primitive)
	assert.Empty(t, c.Mesh)
	assert.Equal(t, float32(1), c.ClearColor[3])
	assert.NoError(t, c.Validate())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tomlFile := filepath.Join(dir, "view.toml")
	require.NoError(t, os.WriteFile(tomlFile, []byte(`mesh = "bunny.obj"
watch = true
primitive = "Points"

[window]
title = "bunny"
width = 320

[shaders]
vertex = "phong.vert"
fragment = "phong.frag"
`), 0o644))
	yamlFile := filepath.Join(dir, "view.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte(`mesh: bunny.obj
watch: true
primitive: Points
window:
  title: bunny
  width: 320
shaders:
  vertex: phong.vert
  fragment: phong.frag
`), 0o644))

	for _, fn := range []string{tomlFile, yamlFile} {
		t.Run(filepath.Ext(fn), func(t *testing.T) {
			c, err := Open(fn)
			require.NoError(t, err)
			assert.Equal(t, "bunny.obj", c.Mesh)
			assert.True(t, c.Watch)
			assert.Equal(t, gpu.Points, c.Primitive)
			assert.Equal(t, Window{Title: "bunny", Width: 320, Height: 600, VSync: true}, c.Window, "unset fields keep their defaults")
			assert.Equal(t, shaders.Paths{Vertex: "phong.vert", Fragment: "phong.frag"}, c.Shaders)
			assert.NoError(t, c.Validate())
		})
	}

	_, err := Open(filepath.Join(dir, "none.toml"))
	assert.Error(t, err)
	ini := filepath.Join(dir, "view.ini")
	require.NoError(t, os.WriteFile(ini, nil, 0o644))
	_, err = Open(ini)
	assert.ErrorContains(t, err, "unknown file type")
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("window = 3 = 4"), 0o644))
	_, err = Open(bad)
	assert.ErrorContains(t, err, "bad.toml")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	c := Default()
	c.Mesh = "teapot.obj"
	c.Frames = 10
	c.Primitive = gpu.Lines
	c.ClearColor = [4]float32{0.25, 0.5, 0.75, 1}
	c.Shaders = shaders.Paths{Vertex: "a.vert", Fragment: "a.frag", Geometry: "a.geom"}
	for _, name := range []string{"c.toml", "c.yml"} {
		t.Run(name, func(t *testing.T) {
			fn := filepath.Join(dir, name)
			require.NoError(t, c.Save(fn))
			back, err := Open(fn)
			require.NoError(t, err)
			assert.Equal(t, c, back)
		})
	}
	assert.Error(t, c.Save(filepath.Join(dir, "c.json")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   string
	}{
		{"size", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"vertex only", func(c *Config) { c.Shaders.Vertex = "a.vert" }, "both a vertex and a fragment"},
		{"geometry only", func(c *Config) { c.Shaders.Geometry = "a.geom" }, "geometry shader"},
		{"sampler", func(c *Config) { c.Texture = "a.png"; c.Sampler = "" }, "sampler name"},
		{"clear color", func(c *Config) { c.ClearColor[1] = 2 }, "component 1"},
		{"capture", func(c *Config) { c.Capture = "out.xcf" }, "not recognized"},
		{"capture webp", func(c *Config) { c.Capture = "out.webp" }, "can not be written"},
		{"frames", func(c *Config) { c.Frames = -1 }, "negative"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			assert.ErrorContains(t, c.Validate(), tt.want)
		})
	}

	c := Default()
	c.Window.Height = -1
	c.LogLevel = "loud"
	err := c.Validate()
	assert.ErrorContains(t, err, "window size")
	assert.ErrorContains(t, err, "loud", "all problems are reported")
}
