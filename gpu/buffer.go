// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"unsafe"

	"cogentcore.org/glw/gpu/device"
)

// BufferKinds are the kinds of device buffers.
type BufferKinds int32 //enums:enum

const (
	// ArrayBuffer holds vertex attribute data.
	ArrayBuffer BufferKinds = iota

	// IndexBuffer holds vertex indices for indexed draws.
	IndexBuffer

	// UniformBuffer holds the data of a uniform block.
	UniformBuffer
)

func (k BufferKinds) target() device.Enum {
	switch k {
	case IndexBuffer:
		return device.ELEMENT_ARRAY_BUFFER
	case UniformBuffer:
		return device.UNIFORM_BUFFER
	}
	return device.ARRAY_BUFFER
}

// Usages are buffer update policies.
type Usages int32 //enums:enum

const (
	// Static buffers are written once and drawn many times.
	Static Usages = iota

	// Dynamic buffers are rewritten often.
	Dynamic
)

func (u Usages) enum() device.Enum {
	if u == Dynamic {
		return device.DYNAMIC_DRAW
	}
	return device.STATIC_DRAW
}

// bufferResource is the device buffer shared by every typed or untyped
// view of it.
type bufferResource struct {
	ctx     *Context
	id      device.Buffer
	size    int
	kind    BufferKinds
	usage   Usages
	deleted bool
}

func (r *bufferResource) delete() {
	if r.deleted {
		return
	}
	r.deleted = true
	r.ctx.dev.DeleteBuffer(r.id)
	r.ctx.st.forget(BufferResource, uint32(r.id))
	r.ctx.deleted(BufferResource, uint32(r.id))
}

// bytesOf returns the memory of data as bytes, without copying.
func bytesOf[A any](data []A) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero A
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*int(unsafe.Sizeof(zero)))
}

func sizeOf[A any]() int {
	var zero A
	return int(unsafe.Sizeof(zero))
}

// Buffer is a device buffer holding Len elements of type A.
// The device size of the buffer is always Len * sizeof(A), except
// for buffers obtained by [InterpretAs], which may be smaller than
// the underlying storage.
type Buffer[A any] struct {
	res *bufferResource
	n   int
}

// NewBuffer returns a buffer of the given kind and usage holding a
// byte-exact copy of data. No buffer of that kind is bound afterwards.
// A must not contain Go pointers.
func NewBuffer[A any](ctx *Context, kind BufferKinds, usage Usages, data []A) (*Buffer[A], error) {
	id := ctx.dev.GenBuffer()
	if id == 0 {
		return nil, ErrCouldNotCreateBuffer
	}
	b := &Buffer[A]{
		res: &bufferResource{ctx: ctx, id: id, size: len(data) * sizeOf[A](), kind: kind, usage: usage},
		n:   len(data),
	}
	ctx.st.withBuffer(kind.target(), id, func() {
		ctx.dev.BufferData(kind.target(), bytesOf(data), usage.enum())
	})
	ctx.created(BufferResource, uint32(id))
	ctx.done("NewBuffer")
	return b, nil
}

// NewArrayBuffer returns a static vertex data buffer.
func NewArrayBuffer[A any](ctx *Context, data []A) (*Buffer[A], error) {
	return NewBuffer(ctx, ArrayBuffer, Static, data)
}

// NewIndexBuffer returns a static index buffer.
func NewIndexBuffer[I Index](ctx *Context, data []I) (*Buffer[I], error) {
	return NewBuffer(ctx, IndexBuffer, Static, data)
}

// NewUniformBuffer returns a dynamic uniform buffer. Register it with
// [RegisterUniformBuffer] to bind it to programs.
func NewUniformBuffer[A any](ctx *Context, data []A) (*Buffer[A], error) {
	return NewBuffer(ctx, UniformBuffer, Dynamic, data)
}

// Raw returns the resource identifier of the buffer.
func (b *Buffer[A]) Raw() RawResource {
	return RawResource{ID: uint32(b.res.id), Kind: BufferResource}
}

// Len returns the number of elements in the buffer.
func (b *Buffer[A]) Len() int { return b.n }

// Bytes returns the size of the buffer contents in bytes.
func (b *Buffer[A]) Bytes() int { return b.n * sizeOf[A]() }

// Kind returns the kind of the buffer.
func (b *Buffer[A]) Kind() BufferKinds { return b.res.kind }

// Usage returns the update policy of the buffer.
func (b *Buffer[A]) Usage() Usages { return b.res.usage }

// Layout returns the device layout of the elements of the buffer,
// if A has one.
func (b *Buffer[A]) Layout() (Layout, bool) {
	return LayoutOf[A]()
}

// Deleted returns whether the buffer has been deleted.
func (b *Buffer[A]) Deleted() bool { return b.res.deleted }

// Replace overwrites the elements starting at element offset with data.
func (b *Buffer[A]) Replace(offset int, data []A) error {
	if b.res.deleted {
		return ErrDeleted
	}
	if offset < 0 || offset+len(data) > b.n {
		return ErrRangeOutOfBounds
	}
	ctx := b.res.ctx
	target := b.res.kind.target()
	ctx.st.withBuffer(target, b.res.id, func() {
		ctx.dev.BufferSubData(target, offset*sizeOf[A](), bytesOf(data))
	})
	ctx.done("Buffer.Replace")
	return nil
}

// Read reads the contents of the buffer back from the device.
func (b *Buffer[A]) Read() ([]A, error) {
	if b.res.deleted {
		return nil, ErrDeleted
	}
	data := make([]A, b.n)
	ctx := b.res.ctx
	target := b.res.kind.target()
	ctx.st.withBuffer(target, b.res.id, func() {
		ctx.dev.GetBufferSubData(target, 0, bytesOf(data))
	})
	ctx.done("Buffer.Read")
	return data, nil
}

// Delete releases the device buffer. It is shared with every buffer
// obtained from b by [InterpretAs] or [Buffer.Any].
func (b *Buffer[A]) Delete() {
	b.res.delete()
}

// Any returns the type-erased form of b. A must have a device layout.
func (b *Buffer[A]) Any() (AnyBuffer, error) {
	l, ok := LayoutOf[A]()
	if !ok {
		return AnyBuffer{}, ErrNoLayout
	}
	return AnyBuffer{res: b.res, n: b.n, layout: l, elemSize: sizeOf[A]()}, nil
}

// InterpretAs returns buf reinterpreted as n elements of type B,
// sharing its device storage. The bytes are not converted.
// It fails if n elements of B do not fit in the storage of buf.
func InterpretAs[B, A any](buf *Buffer[A], n int) (*Buffer[B], error) {
	if buf.res.deleted {
		return nil, ErrDeleted
	}
	if n < 0 || n*sizeOf[B]() > buf.res.size {
		return nil, ErrBufferTooSmallForConversion
	}
	return &Buffer[B]{res: buf.res, n: n}, nil
}

// AnyBuffer is a buffer whose element type is only known at run time,
// through its layout.
type AnyBuffer struct {
	res      *bufferResource
	n        int
	layout   Layout
	elemSize int
}

// Raw returns the resource identifier of the buffer.
func (b AnyBuffer) Raw() RawResource {
	if b.res == nil {
		return RawResource{Kind: BufferResource}
	}
	return RawResource{ID: uint32(b.res.id), Kind: BufferResource}
}

// Len returns the number of elements in the buffer.
func (b AnyBuffer) Len() int { return b.n }

// Layout returns the layout of the elements.
func (b AnyBuffer) Layout() Layout { return b.layout }

// ElementSize returns the size of one element in bytes.
func (b AnyBuffer) ElementSize() int { return b.elemSize }

// Delete releases the device buffer.
func (b AnyBuffer) Delete() {
	if b.res != nil {
		b.res.delete()
	}
}

// Index are the Go types of vertex indices.
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

// UniformBlock is a uniform buffer bound to its own binding point.
// Programs refer to it with [Program.BindUniformBlock].
type UniformBlock[A any] struct {
	*Buffer[A]
	binding BindingPoint
}

// RegisterUniformBuffer allocates a binding point for buf, which must
// be of kind [UniformBuffer], and binds buf to it.
func RegisterUniformBuffer[A any](ctx *Context, buf *Buffer[A]) (*UniformBlock[A], error) {
	if buf.res.kind != UniformBuffer {
		return nil, ErrNotAUniformBuffer
	}
	if buf.res.deleted {
		return nil, ErrDeleted
	}
	bp := ctx.NewBindingPoint()
	ctx.dev.BindBufferBase(device.UNIFORM_BUFFER, uint32(bp), buf.res.id)
	ctx.st.bindBuffer(device.UNIFORM_BUFFER, 0)
	ctx.done("RegisterUniformBuffer")
	return &UniformBlock[A]{Buffer: buf, binding: bp}, nil
}

// BindingPoint returns the binding point of the buffer.
func (u *UniformBlock[A]) BindingPoint() BindingPoint {
	return u.binding
}

// Update overwrites the buffer contents from the start.
func (u *UniformBlock[A]) Update(data []A) error {
	return u.Replace(0, data)
}

// IndexedBuffer pairs vertex data with the indices drawing it.
type IndexedBuffer[A any, I Index] struct {
	Vertices *Buffer[A]
	Indices  *Buffer[I]
}

// NewIndexedBuffer returns static vertex and index buffers for the
// given data.
func NewIndexedBuffer[A any, I Index](ctx *Context, vertices []A, indices []I) (*IndexedBuffer[A, I], error) {
	vb, err := NewArrayBuffer(ctx, vertices)
	if err != nil {
		return nil, err
	}
	ib, err := NewIndexBuffer(ctx, indices)
	if err != nil {
		vb.Delete()
		return nil, err
	}
	return &IndexedBuffer[A, I]{Vertices: vb, Indices: ib}, nil
}

// Delete releases both buffers.
func (ib *IndexedBuffer[A, I]) Delete() {
	ib.Vertices.Delete()
	ib.Indices.Delete()
}
