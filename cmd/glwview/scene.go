// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/glw/config"
	"cogentcore.org/glw/gpu"
	"cogentcore.org/glw/gpu/axes"
	"cogentcore.org/glw/gpu/imagex"
	"cogentcore.org/glw/gpu/mesh"
	"cogentcore.org/glw/gpu/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders
var builtinShaders embed.FS

var builtinPaths = shaders.Paths{Vertex: "shaders/phong.vert", Fragment: "shaders/phong.frag"}

// maxTextureSize is the texture size every GL 4.1 device supports.
const maxTextureSize = 4096

// scene is a mesh uploaded to the device with the program drawing it.
type scene struct {
	ctx   *gpu.Context
	fsys  fs.FS
	paths shaders.Paths

	// sampler is the sampler uniform reading tex.
	sampler string

	// files are the shader files on disk, empty for built in shaders.
	files []string

	bufs      *mesh.Buffers
	primitive gpu.Primitives
	center    math32.Vector3
	scale     float32
	tex       *gpu.Texture
	prog      *gpu.Program

	axesBuilder *axes.Builder
	axes        *axes.Axes

	mvp, model *gpu.Uniform[mgl32.Mat4]
	light      *gpu.Uniform[mgl32.Vec3]
	tint       *gpu.Uniform[mgl32.Vec4]
	textured   *gpu.Uniform[int32]
}

func newScene(ctx *gpu.Context, cfg *config.Config) (*scene, error) {
	s := &scene{ctx: ctx, fsys: builtinShaders, paths: builtinPaths, sampler: "tex", primitive: cfg.Primitive}
	if cfg.Shaders.Vertex != "" {
		s.sampler = cfg.Sampler
		var err error
		s.fsys, s.paths, s.files, err = diskFS(cfg.Shaders)
		if err != nil {
			return nil, err
		}
	}
	m := mesh.Cube(1)
	if cfg.Mesh != "" {
		var err error
		if m, err = mesh.Open(cfg.Mesh); err != nil {
			return nil, err
		}
	}
	for _, w := range m.Warnings {
		slog.Debug("glwview: mesh", "file", cfg.Mesh, "warning", w)
	}
	slog.Info("glwview: loaded mesh", "name", m.Name, "vertices", len(m.Vertices), "triangles", len(m.Indices)/3)
	center, radius := m.Sphere()
	s.center, s.scale = center, 1
	if radius > 0 {
		s.scale = 1 / radius
	}
	var err error
	if s.bufs, err = m.Upload(ctx); err != nil {
		return nil, err
	}
	if cfg.Texture != "" {
		if err := s.loadTexture(cfg.Texture); err != nil {
			s.delete()
			return nil, err
		}
	}
	if s.prog, err = shaders.Build(ctx, s.fsys, s.paths, s.configure); err != nil {
		s.delete()
		return nil, err
	}
	if err := s.bind(); err != nil {
		s.delete()
		return nil, err
	}
	if cfg.Axes {
		if err := s.loadAxes(); err != nil {
			s.delete()
			return nil, err
		}
	}
	c := cfg.ClearColor
	ctx.SetClearColor(c[0], c[1], c[2], c[3])
	return s, nil
}

func (s *scene) loadTexture(filename string) error {
	img, err := imagex.Open(filename, gpu.RGBA8, maxTextureSize)
	if err != nil {
		return err
	}
	s.tex, err = gpu.NewTexture(s.ctx, img)
	if err != nil {
		return err
	}
	s.tex.Repeat()
	return nil
}

func (s *scene) loadAxes() error {
	var err error
	if s.axesBuilder, err = axes.NewBuilder(s.ctx); err != nil {
		return err
	}
	s.axes, err = s.axesBuilder.Axes()
	return err
}

func (s *scene) configure(b *gpu.ProgramBuilder) {
	if s.tex != nil {
		b.Texture(s.sampler, s.tex)
	}
}

// bind binds the mesh to the program and resolves its uniforms.
func (s *scene) bind() error {
	if err := mesh.Bind(s.prog, s.bufs); err != nil {
		return err
	}
	s.mvp = uniformOf[mgl32.Mat4](s.prog, "mvp")
	s.model = uniformOf[mgl32.Mat4](s.prog, "model")
	s.light = uniformOf[mgl32.Vec3](s.prog, "light")
	s.tint = uniformOf[mgl32.Vec4](s.prog, "tint")
	s.textured = uniformOf[int32](s.prog, "textured")
	return nil
}

// reload rebuilds the program from the shader files, keeping the
// current one if that fails.
func (s *scene) reload() {
	p, err := shaders.Rebuild(s.ctx, s.fsys, s.paths, s.configure, s.prog)
	if err != nil || p == s.prog {
		return
	}
	s.prog = p
	if err := s.bind(); err != nil {
		slog.Error("glwview: binding the rebuilt program", "err", err)
		return
	}
	slog.Info("glwview: rebuilt program")
}

// uniformOf resolves the named uniform of p, or returns nil if p does
// not declare it, so that user shaders can leave any of them out.
func uniformOf[T gpu.UniformValue](p *gpu.Program, name string) *gpu.Uniform[T] {
	u, err := gpu.UniformOf[T](p, name)
	if err != nil {
		slog.Debug("glwview: uniform not set", "name", name, "err", err)
		return nil
	}
	return u
}

func pass[T gpu.UniformValue](u *gpu.Uniform[T], v T) {
	if u != nil {
		u.Pass(v)
	}
}

// draw clears the default framebuffer and draws the mesh turned by
// angle radians about the vertical axis.
func (s *scene) draw(aspect, angle float32) error {
	c := s.center
	model := mgl32.HomogRotate3DY(angle).
		Mul4(mgl32.Scale3D(s.scale, s.scale, s.scale)).
		Mul4(mgl32.Translate3D(-c.X, -c.Y, -c.Z))
	proj := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 3.5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	vp := proj.Mul4(view)
	pass(s.mvp, vp.Mul4(model))
	pass(s.model, model)
	pass(s.light, mgl32.Vec3{1, 1, 2})
	pass(s.tint, mgl32.Vec4{0.8, 0.8, 0.85, 1})
	if s.tex != nil {
		pass(s.textured, 1)
	} else {
		pass(s.textured, 0)
	}
	s.ctx.DefaultFrameBuffer().Clear()
	if err := s.prog.Draw(s.primitive); err != nil {
		return err
	}
	if s.axes == nil {
		return nil
	}
	s.axes.SetModel(mgl32.HomogRotate3DY(angle))
	return s.axes.Draw(vp)
}

// capture saves the given size of the default framebuffer to the
// image file of the given name.
func (s *scene) capture(width, height int, filename string) error {
	img, err := s.ctx.DefaultFrameBuffer().Capture(0, 0, width, height)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, filename); err != nil {
		return err
	}
	slog.Info("glwview: saved frame", "file", filename, "width", width, "height", height)
	return nil
}

func (s *scene) delete() {
	if s.prog != nil {
		s.prog.Delete()
	}
	if s.tex != nil {
		s.tex.Delete()
	}
	if s.bufs != nil {
		s.bufs.Delete()
	}
	if s.axesBuilder != nil {
		s.axesBuilder.Delete()
	}
}

// diskFS returns a file system rooted at the deepest directory holding
// all the shader files of ps, the paths of the files in it, and their
// absolute paths.
func diskFS(ps shaders.Paths) (fs.FS, shaders.Paths, []string, error) {
	names := []*string{&ps.Vertex, &ps.Fragment}
	if ps.Geometry != "" {
		names = append(names, &ps.Geometry)
	}
	var files []string
	for _, n := range names {
		abs, err := filepath.Abs(*n)
		if err != nil {
			return nil, ps, nil, err
		}
		files = append(files, abs)
	}
	root := filepath.Dir(files[0])
	for _, f := range files {
		for !within(root, f) {
			root = filepath.Dir(root)
		}
	}
	for i, n := range names {
		rel, err := filepath.Rel(root, files[i])
		if err != nil {
			return nil, ps, nil, err
		}
		*n = filepath.ToSlash(rel)
	}
	return os.DirFS(root), ps, files, nil
}

func within(dir, file string) bool {
	rel, err := filepath.Rel(dir, file)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
