// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"reflect"
	"sync"

	"cogentcore.org/glw/gpu/device"
)

// Scalars are the scalar kinds of vertex data.
type Scalars int32 //enums:enum

const (
	Float Scalars = iota
	Int
	Uint
	Byte
	Ubyte
	Short
	Ushort
)

// Size returns the size of the scalar in bytes.
func (s Scalars) Size() int {
	switch s {
	case Byte, Ubyte:
		return 1
	case Short, Ushort:
		return 2
	}
	return 4
}

// IsInteger returns whether the scalar is an integer kind. Integer
// attributes are read by the device as integers, never converted to
// floating point.
func (s Scalars) IsInteger() bool {
	return s != Float
}

// IsUnsigned returns whether the scalar is an unsigned integer kind.
func (s Scalars) IsUnsigned() bool {
	return s == Uint || s == Ubyte || s == Ushort
}

// Enum returns the device type constant of the scalar.
func (s Scalars) Enum() device.Enum {
	switch s {
	case Int:
		return device.INT
	case Uint:
		return device.UNSIGNED_INT
	case Byte:
		return device.BYTE
	case Ubyte:
		return device.UNSIGNED_BYTE
	case Short:
		return device.SHORT
	case Ushort:
		return device.UNSIGNED_SHORT
	}
	return device.FLOAT
}

// Layout describes how one value is laid out for the device:
// Components scalars of kind Scalar, tightly packed.
type Layout struct {
	Components int
	Scalar     Scalars
}

// Size returns the size of a value of the layout in bytes.
func (l Layout) Size() int {
	return l.Components * l.Scalar.Size()
}

func (l Layout) String() string {
	return fmt.Sprintf("%d x %s", l.Components, l.Scalar)
}

var (
	layoutsMu sync.RWMutex
	layouts   = map[reflect.Type]Layout{}
	structs   = map[reflect.Type]*StructLayout{}
)

// RegisterLayout declares the device layout of values of type A,
// taking precedence over the layout derived from its Go type.
// It returns an error if the size of A does not match the layout.
// Layouts must be registered before any struct containing A is viewed.
func RegisterLayout[A any](l Layout) error {
	t := reflect.TypeFor[A]()
	if int(t.Size()) != l.Size() || l.Components < 1 || l.Components > 4 {
		return fmt.Errorf("gpu: layout %v does not fit type %v of size %d", l, t, t.Size())
	}
	layoutsMu.Lock()
	layouts[t] = l
	layoutsMu.Unlock()
	return nil
}

// LayoutOf returns the device layout of values of type A.
// Without a registered layout, it is derived from the Go type:
// float32, int32, uint32, int8, uint8, int16 and uint16 (or types
// with these underlying kinds) have one component; arrays of one to
// four of them, and structs of one to four fields of one of them with
// no padding (such as math32.Vector3), have one component per element.
func LayoutOf[A any]() (Layout, bool) {
	return layoutOfType(reflect.TypeFor[A]())
}

func layoutOfType(t reflect.Type) (Layout, bool) {
	layoutsMu.RLock()
	l, ok := layouts[t]
	layoutsMu.RUnlock()
	if ok {
		return l, true
	}
	switch t.Kind() {
	case reflect.Array:
		s, ok := scalarOf(t.Elem().Kind())
		if !ok || t.Len() < 1 || t.Len() > 4 {
			return Layout{}, false
		}
		return Layout{t.Len(), s}, true
	case reflect.Struct:
		n := t.NumField()
		if n < 1 || n > 4 {
			return Layout{}, false
		}
		s, ok := scalarOf(t.Field(0).Type.Kind())
		if !ok {
			return Layout{}, false
		}
		for i := 1; i < n; i++ {
			if fs, ok := scalarOf(t.Field(i).Type.Kind()); !ok || fs != s {
				return Layout{}, false
			}
		}
		if int(t.Size()) != n*s.Size() {
			return Layout{}, false
		}
		return Layout{n, s}, true
	}
	s, ok := scalarOf(t.Kind())
	if !ok {
		return Layout{}, false
	}
	return Layout{1, s}, true
}

func scalarOf(k reflect.Kind) (Scalars, bool) {
	switch k {
	case reflect.Float32:
		return Float, true
	case reflect.Int32:
		return Int, true
	case reflect.Uint32:
		return Uint, true
	case reflect.Int8:
		return Byte, true
	case reflect.Uint8:
		return Ubyte, true
	case reflect.Int16:
		return Short, true
	case reflect.Uint16:
		return Ushort, true
	}
	return 0, false
}

// Field is one field of a [StructLayout].
type Field struct {
	Name string

	// Offset is the byte offset of the field within the struct.
	Offset int

	// Layout is the device layout of the field; it is only valid
	// if HasLayout is true.
	Layout    Layout
	HasLayout bool
}

// StructLayout lists the fields of a struct type with their byte
// offsets and device layouts. It is the unit of array-of-structs
// vertex data: each field can be viewed as its own attribute column.
type StructLayout struct {
	Type   reflect.Type
	Size   int
	Fields []Field
}

// Field returns the field of the given name.
func (sl *StructLayout) Field(name string) (Field, bool) {
	for _, f := range sl.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// StructLayoutOf returns the layout of struct type A. Offsets come from
// the type description; no value of A is ever read. The result is
// computed once per type and cached.
func StructLayoutOf[A any]() (*StructLayout, error) {
	return structLayoutOfType(reflect.TypeFor[A]())
}

func structLayoutOfType(t reflect.Type) (*StructLayout, error) {
	layoutsMu.RLock()
	sl, ok := structs[t]
	layoutsMu.RUnlock()
	if ok {
		return sl, nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("gpu: %v is not a struct type", t)
	}
	sl = &StructLayout{Type: t, Size: int(t.Size())}
	for i := range t.NumField() {
		sf := t.Field(i)
		f := Field{Name: sf.Name, Offset: int(sf.Offset)}
		f.Layout, f.HasLayout = layoutOfType(sf.Type)
		sl.Fields = append(sl.Fields, f)
	}
	layoutsMu.Lock()
	structs[t] = sl
	layoutsMu.Unlock()
	return sl, nil
}
