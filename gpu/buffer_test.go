// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/glw/gpu/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVertices(n int) []Vertex {
	vs := make([]Vertex, n)
	for i := range vs {
		f := float32(i)
		vs[i] = Vertex{
			Position: math32.Vec3(f, 2*f, 3*f),
			Normal:   math32.Vec3(0, 0, 1),
			UV:       [2]float32{f / 2, 1 - f/2},
			ID:       uint32(i),
		}
	}
	return vs
}

func TestBufferRoundTrip(t *testing.T) {
	for _, usage := range []Usages{Static, Dynamic} {
		t.Run(usage.String(), func(t *testing.T) {
			ctx, dev := newTestContext(t)
			data := testVertices(17)
			buf, err := NewBuffer(ctx, ArrayBuffer, usage, data)
			require.NoError(t, err)
			defer buf.Delete()

			assert.Equal(t, 17, buf.Len())
			assert.Equal(t, 17*sizeOf[Vertex](), buf.Bytes())
			assert.Equal(t, ArrayBuffer, buf.Kind())
			assert.Equal(t, usage, buf.Usage())

			raw, u, ok := dev.BufferContents(device.Buffer(buf.Raw().ID))
			require.True(t, ok)
			assert.Equal(t, bytesOf(data), raw, "byte-exact copy")
			assert.Equal(t, usage.enum(), u)

			got, err := buf.Read()
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestBufferEmpty(t *testing.T) {
	ctx, _ := newTestContext(t)
	buf, err := NewArrayBuffer[float32](ctx, nil)
	require.NoError(t, err)
	defer buf.Delete()
	assert.Zero(t, buf.Len())
	got, err := buf.Read()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBufferReplace(t *testing.T) {
	ctx, _ := newTestContext(t)
	buf, err := NewBuffer(ctx, ArrayBuffer, Dynamic, []float32{1, 2, 3, 4, 5})
	require.NoError(t, err)
	defer buf.Delete()

	require.NoError(t, buf.Replace(1, []float32{20, 30}))
	got, err := buf.Read()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 20, 30, 4, 5}, got)

	assert.ErrorIs(t, buf.Replace(4, []float32{1, 2}), ErrRangeOutOfBounds)
	assert.ErrorIs(t, buf.Replace(-1, []float32{1}), ErrRangeOutOfBounds)
}

func TestBufferDeleted(t *testing.T) {
	ctx, _ := newTestContext(t)
	buf, err := NewArrayBuffer(ctx, []float32{1})
	require.NoError(t, err)
	buf.Delete()
	assert.True(t, buf.Deleted())
	_, err = buf.Read()
	assert.ErrorIs(t, err, ErrDeleted)
	assert.ErrorIs(t, buf.Replace(0, []float32{2}), ErrDeleted)
	_, err = DirectView(buf)
	assert.ErrorIs(t, err, ErrDeleted)
	assert.Zero(t, ctx.LiveTotal())
}

func TestBufferCouldNotCreate(t *testing.T) {
	ctx, dev := newTestContext(t)
	dev.FailAllocations = true
	_, err := NewArrayBuffer(ctx, []float32{1})
	assert.ErrorIs(t, err, ErrCouldNotCreateBuffer)
	assert.Zero(t, ctx.LiveTotal())
}

func TestBufferNeutralBinding(t *testing.T) {
	ctx, dev := newTestContext(t)
	kinds := []BufferKinds{ArrayBuffer, IndexBuffer, UniformBuffer}
	for _, k := range kinds {
		buf, err := NewBuffer(ctx, k, Static, []uint16{1, 2, 3})
		require.NoError(t, err)
		assert.Zero(t, dev.BoundBuffer(k.target()), k.String())
		_, err = buf.Read()
		require.NoError(t, err)
		assert.Zero(t, dev.BoundBuffer(k.target()), k.String())
		buf.Delete()
	}
	assert.Zero(t, dev.Live())
}

func TestInterpretAs(t *testing.T) {
	ctx, _ := newTestContext(t)
	buf, err := NewArrayBuffer(ctx, []float32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	defer buf.Delete()

	vecs, err := InterpretAs[math32.Vector3](buf, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, vecs.Len())
	got, err := vecs.Read()
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector3{math32.Vec3(1, 2, 3), math32.Vec3(4, 5, 6)}, got)

	_, err = InterpretAs[math32.Vector4](buf, 1)
	assert.NoError(t, err, "smaller than the storage")
	_, err = InterpretAs[math32.Vector4](buf, 2)
	assert.ErrorIs(t, err, ErrBufferTooSmallForConversion)

	vecs.Delete()
	assert.True(t, buf.Deleted(), "storage is shared")
	_, err = InterpretAs[float32](buf, 1)
	assert.ErrorIs(t, err, ErrDeleted)
}

func TestAnyBuffer(t *testing.T) {
	ctx, _ := newTestContext(t)
	buf, err := NewArrayBuffer(ctx, []math32.Vector2{math32.Vec2(1, 2), math32.Vec2(3, 4), math32.Vec2(5, 6)})
	require.NoError(t, err)
	ab, err := buf.Any()
	require.NoError(t, err)
	assert.Equal(t, 3, ab.Len())
	assert.Equal(t, Layout{2, Float}, ab.Layout())
	assert.Equal(t, 8, ab.ElementSize())
	assert.Equal(t, buf.Raw(), ab.Raw())

	vbuf, err := NewArrayBuffer(ctx, testVertices(2))
	require.NoError(t, err)
	_, err = vbuf.Any()
	assert.ErrorIs(t, err, ErrNoLayout)

	ab.Delete()
	vbuf.Delete()
	assert.True(t, buf.Deleted())
	assert.Zero(t, ctx.LiveTotal())
}

type cameraBlock struct {
	View math32.Matrix4
}

func TestUniformBlock(t *testing.T) {
	ctx, dev := newTestContext(t)
	arr, err := NewArrayBuffer(ctx, []cameraBlock{{}})
	require.NoError(t, err)
	_, err = RegisterUniformBuffer(ctx, arr)
	assert.ErrorIs(t, err, ErrNotAUniformBuffer)
	arr.Delete()

	ubuf, err := NewUniformBuffer(ctx, []cameraBlock{{View: math32.Matrix4{0: 1, 5: 1, 10: 1, 15: 1}}})
	require.NoError(t, err)
	defer ubuf.Delete()
	assert.Equal(t, Dynamic, ubuf.Usage())

	ub, err := RegisterUniformBuffer(ctx, ubuf)
	require.NoError(t, err)
	assert.Equal(t, BindingPoint(0), ub.BindingPoint())
	assert.Equal(t, device.Buffer(ubuf.Raw().ID), dev.UniformBase(0))

	ub2, err := RegisterUniformBuffer(ctx, ubuf)
	require.NoError(t, err)
	assert.Equal(t, BindingPoint(1), ub2.BindingPoint())

	next := cameraBlock{View: math32.Matrix4{0: 2, 5: 2, 10: 2, 15: 1}}
	require.NoError(t, ub.Update([]cameraBlock{next}))
	got, err := ub.Read()
	require.NoError(t, err)
	assert.Equal(t, []cameraBlock{next}, got)
}

func TestIndexedBuffer(t *testing.T) {
	ctx, dev := newTestContext(t)
	ib, err := NewIndexedBuffer(ctx, testVertices(4), []uint16{0, 1, 2, 2, 3, 0})
	require.NoError(t, err)
	assert.Equal(t, IndexBuffer, ib.Indices.Kind())
	assert.Equal(t, 6, ib.Indices.Len())
	ib.Delete()
	assert.Zero(t, ctx.LiveTotal())
	assert.Zero(t, dev.Live())
}
