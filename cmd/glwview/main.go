// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glwview shows a mesh in a window, shaded by built in or
// user supplied GLSL shaders, and can save the rendered frame to an
// image file.
package main

import (
	"os"

	"cogentcore.org/glw/config"
	"cogentcore.org/glw/logx"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:          "glwview [mesh.obj]",
		Short:        "View a mesh with OpenGL shaders",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, cfgFile, args)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&cfgFile, "config", "c", "", "TOML or YAML configuration file")
	f.String("title", "", "window title")
	f.Int("width", 0, "window width")
	f.Int("height", 0, "window height")
	f.Bool("vsync", true, "synchronize frames with the display")
	f.String("vert", "", "vertex shader file")
	f.String("frag", "", "fragment shader file")
	f.String("geom", "", "geometry shader file")
	f.String("texture", "", "image file sampled by the fragment shader")
	f.String("sampler", "", "sampler uniform of the fragment shader reading the texture (default tex)")
	f.String("primitive", "", "draw the mesh as Triangles, Lines or Points")
	f.Bool("axes", false, "draw the axes of the model")
	f.String("capture", "", "save the first frame to this image file and exit")
	f.BoolP("watch", "w", false, "rebuild the program when a shader file changes")
	f.Int("frames", 0, "number of frames to draw before exiting, 0 for no limit")
	f.String("log-level", "", "minimum level of log messages: debug, info, warn or error")
	cmd.AddCommand(newInitCmd())
	return cmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init file.toml|file.yaml",
		Short: "Write the default configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Default().Save(args[0])
		},
	}
}

// loadConfig returns the configuration of cfgFile, or the default one,
// with the flags set on cmd and the mesh argument applied over it.
func loadConfig(cmd *cobra.Command, cfgFile string, args []string) (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Open(cfgFile); err != nil {
			return nil, err
		}
	}
	f := cmd.Flags()
	strs := map[string]*string{
		"title":     &cfg.Window.Title,
		"vert":      &cfg.Shaders.Vertex,
		"frag":      &cfg.Shaders.Fragment,
		"geom":      &cfg.Shaders.Geometry,
		"texture":   &cfg.Texture,
		"sampler":   &cfg.Sampler,
		"capture":   &cfg.Capture,
		"log-level": &cfg.LogLevel,
	}
	for name, p := range strs {
		if f.Changed(name) {
			*p, _ = f.GetString(name)
		}
	}
	ints := map[string]*int{
		"width":  &cfg.Window.Width,
		"height": &cfg.Window.Height,
		"frames": &cfg.Frames,
	}
	for name, p := range ints {
		if f.Changed(name) {
			*p, _ = f.GetInt(name)
		}
	}
	bools := map[string]*bool{
		"vsync": &cfg.Window.VSync,
		"watch": &cfg.Watch,
		"axes":  &cfg.Axes,
	}
	for name, p := range bools {
		if f.Changed(name) {
			*p, _ = f.GetBool(name)
		}
	}
	if f.Changed("primitive") {
		p, _ := f.GetString("primitive")
		if err := cfg.Primitive.SetString(p); err != nil {
			return nil, err
		}
	}
	if len(args) > 0 {
		cfg.Mesh = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lvl, err := logx.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logx.UserLevel = lvl
	logx.SetDefault(os.Stderr)
	return cfg, nil
}
