// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RowMajor4 is a 4x4 matrix stored row by row. It is uploaded with
// transposition, so shaders see the same matrix as a column-major
// math32.Matrix4 would give them.
type RowMajor4 [16]float32

// UniformValue are the Go types that can be passed to a uniform.
// math32.Matrix3, math32.Matrix4, mgl32.Mat3 and mgl32.Mat4 are
// column-major.
type UniformValue interface {
	float32 | int32 | uint32 |
		math32.Vector2 | math32.Vector3 | math32.Vector4 |
		mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4 |
		math32.Matrix3 | math32.Matrix4 | mgl32.Mat3 | mgl32.Mat4 |
		RowMajor4 | []RowMajor4 | []math32.Matrix4
}

// Uniform is a resolved uniform of a program, written with values of
// type T.
type Uniform[T UniformValue] struct {
	program  *Program
	name     string
	location int
}

// UniformOf resolves the named uniform of p. The location is not
// cached by p: resolve once and keep the Uniform. An undeclared or
// inactive name returns an [*UndeclaredUniformError].
func UniformOf[T UniformValue](p *Program, name string) (*Uniform[T], error) {
	checkName(name)
	if p.deleted {
		return nil, ErrDeleted
	}
	loc := p.ctx.dev.GetUniformLocation(p.linked.id, name)
	if loc < 0 {
		return nil, &UndeclaredUniformError{Name: name}
	}
	return &Uniform[T]{program: p, name: name, location: loc}, nil
}

// Name returns the name of the uniform.
func (u *Uniform[T]) Name() string { return u.name }

// Location returns the device location of the uniform.
func (u *Uniform[T]) Location() int { return u.location }

// Pass makes the program of u current and writes v.
// It does nothing once the program has been deleted.
func (u *Uniform[T]) Pass(v T) {
	p := u.program
	if p.deleted {
		return
	}
	p.ctx.st.useProgram(p.linked.id)
	dev := p.ctx.dev
	loc := u.location
	switch x := any(v).(type) {
	case float32:
		dev.Uniform1f(loc, x)
	case int32:
		dev.Uniform1i(loc, x)
	case uint32:
		dev.Uniform1ui(loc, x)
	case math32.Vector2:
		dev.Uniform2f(loc, x.X, x.Y)
	case math32.Vector3:
		dev.Uniform3f(loc, x.X, x.Y, x.Z)
	case math32.Vector4:
		dev.Uniform4f(loc, x.X, x.Y, x.Z, x.W)
	case mgl32.Vec2:
		dev.Uniform2f(loc, x[0], x[1])
	case mgl32.Vec3:
		dev.Uniform3f(loc, x[0], x[1], x[2])
	case mgl32.Vec4:
		dev.Uniform4f(loc, x[0], x[1], x[2], x[3])
	case math32.Matrix3:
		dev.UniformMatrix3fv(loc, 1, false, x[:])
	case mgl32.Mat3:
		dev.UniformMatrix3fv(loc, 1, false, x[:])
	case math32.Matrix4:
		dev.UniformMatrix4fv(loc, 1, false, x[:])
	case mgl32.Mat4:
		dev.UniformMatrix4fv(loc, 1, false, x[:])
	case RowMajor4:
		dev.UniformMatrix4fv(loc, 1, true, x[:])
	case []RowMajor4:
		if len(x) > 0 {
			dev.UniformMatrix4fv(loc, len(x), true, flatten(x))
		}
	case []math32.Matrix4:
		if len(x) > 0 {
			dev.UniformMatrix4fv(loc, len(x), false, flatten(x))
		}
	default:
		panic(fmt.Sprintf("gpu: uniform %q: unsupported value type %T", u.name, v))
	}
	p.ctx.done("Uniform.Pass")
}

func flatten[M ~[16]float32](ms []M) []float32 {
	fs := make([]float32, 0, 16*len(ms))
	for _, m := range ms {
		fs = append(fs, m[:]...)
	}
	return fs
}
