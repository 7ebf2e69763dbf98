// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the glwview viewer,
// read from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/glw/gpu"
	"cogentcore.org/glw/gpu/imagex"
	"cogentcore.org/glw/gpu/shaders"
	"cogentcore.org/glw/logx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of the viewer.
type Config struct {

	// Window configures the window.
	Window Window `toml:"window" yaml:"window"`

	// Mesh is the OBJ file to show; empty shows a cube.
	Mesh string `toml:"mesh,omitempty" yaml:"mesh,omitempty"`

	// Shaders are the shader files; empty uses the built in shaders.
	Shaders shaders.Paths `toml:"shaders" yaml:"shaders"`

	// Texture is an image file sampled by the fragment shader.
	Texture string `toml:"texture,omitempty" yaml:"texture,omitempty"`

	// Sampler is the sampler uniform of the fragment shader that reads
	// the texture. Shaders must declare it when a texture is set.
	Sampler string `toml:"sampler" yaml:"sampler" default:"tex"`

	// Primitive is how the mesh triangles are drawn: as Triangles, or
	// as Lines or Points to show the vertices.
	Primitive gpu.Primitives `toml:"primitive" yaml:"primitive"`

	// Axes draws the X, Y and Z axes of the model in red, green and blue.
	Axes bool `toml:"axes" yaml:"axes"`

	// ClearColor is the RGBA background color, each in [0, 1].
	ClearColor [4]float32 `toml:"clear_color" yaml:"clear_color"`

	// Capture is an image file to save the first frame to; the viewer
	// exits once it is written.
	Capture string `toml:"capture,omitempty" yaml:"capture,omitempty"`

	// Watch rebuilds the program when a shader file changes.
	Watch bool `toml:"watch" yaml:"watch"`

	// Frames is the number of frames to draw before exiting;
	// 0 draws until the window is closed.
	Frames int `toml:"frames" yaml:"frames"`

	// LogLevel is the minimum level of log messages shown.
	LogLevel string `toml:"log_level" yaml:"log_level" default:"info"`
}

// Window configures the viewer window.
type Window struct {
	Title  string `toml:"title" yaml:"title" default:"glwview"`
	Width  int    `toml:"width" yaml:"width" default:"800"`
	Height int    `toml:"height" yaml:"height" default:"600"`
	VSync  bool   `toml:"vsync" yaml:"vsync" default:"true"`
}

// Default returns the default configuration.
func Default() *Config {
	c := &Config{}
	errors.Log(reflectx.SetFromDefaultTags(c))
	c.ClearColor = [4]float32{0.1, 0.1, 0.12, 1}
	return c
}

// Open reads the configuration file of the given name over the
// defaults, as TOML or YAML depending on its extension.
func Open(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c := Default()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	default:
		return nil, fmt.Errorf("config: unknown file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	return c, nil
}

// Save writes the configuration to the file of the given name,
// as TOML or YAML depending on its extension.
func (c *Config) Save(filename string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		b, err = toml.Marshal(c)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("config: unknown file type %q", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}

// Validate returns all the problems of the configuration joined,
// or nil.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: window size %dx%d is not positive", c.Window.Width, c.Window.Height))
	}
	if (c.Shaders.Vertex == "") != (c.Shaders.Fragment == "") {
		errs = append(errs, errors.New("config: shaders need both a vertex and a fragment file"))
	}
	if c.Shaders.Geometry != "" && c.Shaders.Vertex == "" {
		errs = append(errs, errors.New("config: a geometry shader needs vertex and fragment files"))
	}
	if c.Texture != "" && c.Sampler == "" {
		errs = append(errs, errors.New("config: a texture needs a sampler name"))
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("config: clear color component %d is %g, not in [0, 1]", i, v))
		}
	}
	if c.Capture != "" {
		if _, err := imagex.WriteFormat(c.Capture); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("config: frames %d is negative", c.Frames))
	}
	if _, err := logx.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
