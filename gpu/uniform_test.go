// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/glw/gpu/device"
	"cogentcore.org/glw/gpu/device/softdevice"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []float32 {
	fs := make([]float32, n)
	for i := range fs {
		fs[i] = float32(i + 1)
	}
	return fs
}

func passUniform[T UniformValue](t *testing.T, p *Program, name string, v T) {
	t.Helper()
	u, err := UniformOf[T](p, name)
	require.NoError(t, err)
	assert.Equal(t, name, u.Name())
	u.Pass(v)
}

func TestUniformPass(t *testing.T) {
	ctx, dev := newTestContext(t)
	p := newTestProgram(t, ctx)
	defer p.Delete()
	id := device.Program(p.Raw().ID)

	var m4 math32.Matrix4
	copy(m4[:], seq(16))
	var m3 math32.Matrix3
	copy(m3[:], seq(9))

	tests := []struct {
		name string
		pass func()
		want softdevice.UniformValue
	}{
		{"scale", func() { passUniform(t, p, "scale", float32(2.5)) },
			softdevice.UniformValue{Func: "Uniform1f", Floats: []float32{2.5}, Count: 1}},
		{"mode", func() { passUniform(t, p, "mode", int32(-3)) },
			softdevice.UniformValue{Func: "Uniform1i", Ints: []int32{-3}, Count: 1}},
		{"flags", func() { passUniform(t, p, "flags", uint32(7)) },
			softdevice.UniformValue{Func: "Uniform1ui", Uints: []uint32{7}, Count: 1}},
		{"offset", func() { passUniform(t, p, "offset", math32.Vec2(1, 2)) },
			softdevice.UniformValue{Func: "Uniform2f", Floats: []float32{1, 2}, Count: 1}},
		{"light", func() { passUniform(t, p, "light", math32.Vec3(1, 2, 3)) },
			softdevice.UniformValue{Func: "Uniform3f", Floats: []float32{1, 2, 3}, Count: 1}},
		{"tint", func() { passUniform(t, p, "tint", math32.Vec4(1, 2, 3, 4)) },
			softdevice.UniformValue{Func: "Uniform4f", Floats: []float32{1, 2, 3, 4}, Count: 1}},
		{"mvp", func() { passUniform(t, p, "mvp", m4) },
			softdevice.UniformValue{Func: "UniformMatrix4fv", Floats: seq(16), Count: 1}},
		{"normalMatrix", func() { passUniform(t, p, "normalMatrix", m3) },
			softdevice.UniformValue{Func: "UniformMatrix3fv", Floats: seq(9), Count: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.pass()
			assert.Equal(t, id, dev.CurrentProgram())
			got, ok := dev.Uniform(id, tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUniformMathgl(t *testing.T) {
	ctx, dev := newTestContext(t)
	p := newTestProgram(t, ctx)
	defer p.Delete()
	id := device.Program(p.Raw().ID)

	passUniform(t, p, "light", mgl32.Vec3{4, 5, 6})
	got, _ := dev.Uniform(id, "light")
	assert.Equal(t, []float32{4, 5, 6}, got.Floats)

	passUniform(t, p, "offset", mgl32.Vec2{7, 8})
	got, _ = dev.Uniform(id, "offset")
	assert.Equal(t, []float32{7, 8}, got.Floats)

	passUniform(t, p, "tint", mgl32.Vec4{1, 0, 0, 1})
	got, _ = dev.Uniform(id, "tint")
	assert.Equal(t, []float32{1, 0, 0, 1}, got.Floats)

	m := mgl32.Translate3D(1, 2, 3)
	passUniform(t, p, "mvp", m)
	got, _ = dev.Uniform(id, "mvp")
	assert.Equal(t, m[:], got.Floats)
	assert.False(t, got.Transpose)
	assert.Equal(t, float32(1), got.Floats[12], "column-major translation")

	passUniform(t, p, "normalMatrix", mgl32.Ident3())
	got, _ = dev.Uniform(id, "normalMatrix")
	assert.Equal(t, []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, got.Floats)
}

func TestUniformRowMajor(t *testing.T) {
	ctx, dev := newTestContext(t)
	p := newTestProgram(t, ctx)
	defer p.Delete()
	id := device.Program(p.Raw().ID)

	var rm RowMajor4
	copy(rm[:], seq(16))
	passUniform(t, p, "mvp", rm)
	got, _ := dev.Uniform(id, "mvp")
	assert.True(t, got.Transpose)
	assert.Equal(t, seq(16), got.Floats)

	bones := []RowMajor4{rm, rm}
	passUniform(t, p, "bones", bones)
	got, _ = dev.Uniform(id, "bones")
	assert.True(t, got.Transpose)
	assert.Equal(t, 2, got.Count)
	assert.Len(t, got.Floats, 32)

	cm := []math32.Matrix4{{0: 1}, {15: 1}}
	passUniform(t, p, "bones", cm)
	got, _ = dev.Uniform(id, "bones")
	assert.False(t, got.Transpose)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, float32(1), got.Floats[0])
	assert.Equal(t, float32(1), got.Floats[31])

	u, err := UniformOf[[]math32.Matrix4](p, "bones[0]")
	require.NoError(t, err)
	u.Pass(nil)
	after, _ := dev.Uniform(id, "bones")
	assert.Equal(t, got, after, "empty slices are not written")
}

func TestUndeclaredUniform(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestProgram(t, ctx)
	defer p.Delete()
	_, err := UniformOf[float32](p, "gamma")
	var ue *UndeclaredUniformError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "gamma", ue.Name)
}

func TestUniformSharedByDuplicates(t *testing.T) {
	ctx, dev := newTestContext(t)
	p := newTestProgram(t, ctx)
	dup, err := p.Duplicate()
	require.NoError(t, err)
	defer dup.Delete()
	defer p.Delete()

	passUniform(t, dup, "scale", float32(3))
	got, ok := dev.Uniform(device.Program(p.Raw().ID), "scale")
	require.True(t, ok)
	assert.Equal(t, []float32{3}, got.Floats)
}

func TestBindUniformBlock(t *testing.T) {
	ctx, dev := newTestContext(t)
	p := newTestProgram(t, ctx)
	defer p.Delete()

	ctx.NewBindingPoint()
	ubuf, err := NewUniformBuffer(ctx, []cameraBlock{{}})
	require.NoError(t, err)
	defer ubuf.Delete()
	ub, err := RegisterUniformBuffer(ctx, ubuf)
	require.NoError(t, err)
	require.Equal(t, BindingPoint(1), ub.BindingPoint())

	require.NoError(t, p.BindUniformBlock("Camera", ub))
	bp, ok := dev.BlockBinding(device.Program(p.Raw().ID), "Camera")
	require.True(t, ok)
	assert.Equal(t, uint32(1), bp)

	var ue *UndeclaredUniformBlockError
	require.ErrorAs(t, p.BindUniformBlock("Lights", ub), &ue)
	assert.Equal(t, "Lights", ue.Name)
}

func TestDeletedProgramUniforms(t *testing.T) {
	ctx, dev := newTestContext(t)
	p := newTestProgram(t, ctx)
	id := device.Program(p.Raw().ID)
	u, err := UniformOf[float32](p, "scale")
	require.NoError(t, err)
	ubuf, err := NewUniformBuffer(ctx, []cameraBlock{{}})
	require.NoError(t, err)
	defer ubuf.Delete()
	ub, err := RegisterUniformBuffer(ctx, ubuf)
	require.NoError(t, err)

	p.Delete()
	u.Pass(2)
	_, ok := dev.Uniform(id, "scale")
	assert.False(t, ok)
	_, err = UniformOf[float32](p, "scale")
	assert.ErrorIs(t, err, ErrDeleted)
	assert.ErrorIs(t, p.BindUniformBlock("Camera", ub), ErrDeleted)
}
