// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders loads GLSL sources from files, resolving
// #include "file" lines, and builds programs from them.
package shaders

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/stringsx"
	"cogentcore.org/glw/gpu"
)

// KindOf returns the shader stage of a file from its extension:
// .vert and .vs are vertex, .frag and .fs are fragment, .geom and .gs
// are geometry shaders.
func KindOf(name string) (gpu.ShaderKinds, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".vert", ".vs":
		return gpu.VertexShader, true
	case ".frag", ".fs":
		return gpu.FragmentShader, true
	case ".geom", ".gs":
		return gpu.GeometryShader, true
	}
	return 0, false
}

// Load reads the named file of fsys and expands its includes.
// Read failures are returned as [*gpu.FileError].
func Load(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", &gpu.FileError{Path: name, Err: err}
	}
	return include(fsys, path.Dir(name), string(b), []string{name})
}

// Include expands every #include "file" line of code with the contents
// of the file, looked up in fsys first as given and then relative to
// dir. Included files may include others; cycles are an error.
func Include(fsys fs.FS, dir, code string) (string, error) {
	return include(fsys, dir, code, nil)
}

func include(fsys fs.FS, dir, code string, stack []string) (string, error) {
	fl := stringsx.SplitLines(code)
	for li := len(fl) - 1; li >= 0; li-- {
		ln := strings.TrimSpace(fl[li])
		if !strings.HasPrefix(ln, `#include "`) {
			continue
		}
		fn := ln[10:]
		qi := strings.Index(fn, `"`)
		if qi < 0 {
			return "", fmt.Errorf("shaders: malformed #include: no final quote: %s", ln)
		}
		fname := fn[:qi]
		found := fname
		b, err := fs.ReadFile(fsys, fname)
		if err != nil {
			found = path.Join(dir, fname)
			b, err = fs.ReadFile(fsys, found)
			if err != nil {
				return "", &gpu.FileError{Path: fname, Err: err}
			}
		}
		if slices.Contains(stack, found) {
			return "", fmt.Errorf("shaders: #include cycle: %s", strings.Join(append(stack, found), " -> "))
		}
		inc, err := include(fsys, path.Dir(found), string(b), append(slices.Clone(stack), found))
		if err != nil {
			return "", err
		}
		ol := stringsx.SplitLines(inc)
		if n := len(ol); n > 0 && ol[n-1] == "" {
			ol = ol[:n-1]
		}
		fl[li] = "// " + ln
		fl = slices.Insert(fl, li+1, ol...)
	}
	return strings.Join(fl, "\n"), nil
}

// Paths are the files of the stages of a program.
// Geometry is optional.
type Paths struct {
	Vertex   string `toml:"vertex" yaml:"vertex"`
	Fragment string `toml:"fragment" yaml:"fragment"`
	Geometry string `toml:"geometry,omitempty" yaml:"geometry,omitempty"`
}

// Compile loads and compiles the shader of the named file,
// with the stage given by its extension.
func Compile(ctx *gpu.Context, fsys fs.FS, name string) (*gpu.Shader, error) {
	kind, ok := KindOf(name)
	if !ok {
		return nil, fmt.Errorf("shaders: unknown shader stage of %q", name)
	}
	src, err := Load(fsys, name)
	if err != nil {
		return nil, err
	}
	return gpu.NewShader(ctx, kind, src)
}

// Build compiles the stages of ps and links them into a program.
// The shaders are deleted once the program is built. Configure is
// called on the builder before linking if it is not nil.
func Build(ctx *gpu.Context, fsys fs.FS, ps Paths, configure func(b *gpu.ProgramBuilder)) (*gpu.Program, error) {
	names := []string{ps.Vertex, ps.Fragment}
	if ps.Geometry != "" {
		names = append(names, ps.Geometry)
	}
	var stages []*gpu.Shader
	defer func() {
		for _, s := range stages {
			s.Delete()
		}
	}()
	for _, name := range names {
		s, err := Compile(ctx, fsys, name)
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	b := gpu.NewProgramBuilder(stages[0], stages[1])
	if len(stages) == 3 {
		b.Geometry(stages[2])
	}
	if configure != nil {
		configure(b)
	}
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	slog.Debug("shaders: built program", "vertex", ps.Vertex, "fragment", ps.Fragment)
	return p, nil
}

// Rebuild builds a new program from ps, returning old unchanged and
// the error if that fails, so a running viewer keeps drawing with the
// last good program. Otherwise old is deleted.
func Rebuild(ctx *gpu.Context, fsys fs.FS, ps Paths, configure func(b *gpu.ProgramBuilder), old *gpu.Program) (*gpu.Program, error) {
	p, err := Build(ctx, fsys, ps, configure)
	if err != nil {
		return old, errors.Log(err)
	}
	if old != nil {
		old.Delete()
	}
	return p, nil
}
