// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "reflect"

// View describes bindable vertex data: N values of the given layout,
// the first at byte Offset in a buffer and each next one Stride bytes
// further. A Stride of 0 means the values are tightly packed.
// A View does not own its buffer and is only valid while the buffer
// is alive.
type View struct {
	res *bufferResource

	N      int
	Stride int
	Offset int
	Layout Layout

	// step is the distance between elements used for ranges: Stride,
	// or the element size of a packed view.
	step int
}

// Buffer returns the identifier of the viewed buffer.
func (v View) Buffer() RawResource {
	return RawResource{ID: uint32(v.res.id), Kind: BufferResource}
}

// Len returns the number of values in the view.
func (v View) Len() int { return v.N }

// DirectView returns a view of all elements of buf, tightly packed.
// A must have a device layout; views of struct fields are made with
// [FieldView].
func DirectView[A any](buf *Buffer[A]) (View, error) {
	l, ok := LayoutOf[A]()
	if !ok {
		return View{}, ErrNoLayout
	}
	if buf.res.deleted {
		return View{}, ErrDeleted
	}
	return View{res: buf.res, N: buf.n, Layout: l, step: sizeOf[A]()}, nil
}

// DirectViewAny returns a view of all elements of buf, tightly packed.
func DirectViewAny(buf AnyBuffer) View {
	return View{res: buf.res, N: buf.n, Layout: buf.layout, step: buf.elemSize}
}

// FieldView returns a view of the named field of every element of buf,
// which holds structs. The offset is the field offset, the stride is
// the struct size and the layout is the field layout.
func FieldView[A any](buf *Buffer[A], field string) (View, error) {
	t := reflect.TypeFor[A]()
	sl, err := structLayoutOfType(t)
	if err != nil {
		return View{}, err
	}
	f, ok := sl.Field(field)
	if !ok {
		return View{}, &FieldError{Type: t.String(), Field: field, Err: ErrUnknownField}
	}
	if !f.HasLayout {
		return View{}, &FieldError{Type: t.String(), Field: field, Err: ErrUnsupportedFieldType}
	}
	if buf.res.deleted {
		return View{}, ErrDeleted
	}
	return View{res: buf.res, N: buf.n, Stride: sl.Size, Offset: f.Offset, Layout: f.Layout, step: sl.Size}, nil
}

// Range returns the view of values [start, end) of v.
func (v View) Range(start, end int) (View, error) {
	if start < 0 || end < start || end > v.N {
		return View{}, ErrRangeOutOfBounds
	}
	r := v
	r.Offset += start * v.step
	r.N = end - start
	return r, nil
}
