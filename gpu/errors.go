// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
)

// Allocation failures: the device returned a zero handle.
var (
	ErrCouldNotCreateBuffer      = errors.New("gpu: could not create buffer")
	ErrCouldNotCreateTexture     = errors.New("gpu: could not create texture")
	ErrCouldNotCreateVAO         = errors.New("gpu: could not create vertex array")
	ErrCouldNotCreateProgram     = errors.New("gpu: could not create program")
	ErrCouldNotCreateShader      = errors.New("gpu: could not create shader")
	ErrCouldNotCreateFrameBuffer = errors.New("gpu: could not create framebuffer")
)

// Usage and input failures.
var (
	ErrAttributeNameTooLong        = errors.New("gpu: attribute name too long")
	ErrAttributeNameEncoding       = errors.New("gpu: attribute name is not valid UTF-8")
	ErrNoBufferAttached            = errors.New("gpu: no buffer attached to program")
	ErrBufferTooSmallForConversion = errors.New("gpu: buffer too small for conversion")
	ErrNotAUniformBuffer           = errors.New("gpu: buffer is not a uniform buffer")
	ErrUnsupportedImageLayout      = errors.New("gpu: unsupported image layout")
	ErrImageDataSize               = errors.New("gpu: image data size does not match its dimensions")
	ErrRangeOutOfBounds            = errors.New("gpu: range out of bounds")
	ErrNoLayout                    = errors.New("gpu: element type has no device layout")
	ErrNotAnIndexLayout            = errors.New("gpu: buffer layout is not a single unsigned integer")
	ErrDeleted                     = errors.New("gpu: resource has been deleted")
)

// CompileError is returned when a shader stage fails to compile.
// Log is the device diagnostic, verbatim.
type CompileError struct {
	Kind ShaderKinds
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu: %v compile error: %s", e.Kind, strings.TrimSpace(e.Log))
}

// LinkError is returned when a program fails to link.
// Log is the device diagnostic, verbatim.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "gpu: program link error: " + strings.TrimSpace(e.Log)
}

// UndeclaredAttributeError is returned when an attribute name
// is not active in a linked program.
type UndeclaredAttributeError struct {
	Name string
}

func (e *UndeclaredAttributeError) Error() string {
	return fmt.Sprintf("gpu: attribute %q is not declared or not active", e.Name)
}

// UndeclaredUniformError is returned when a uniform name
// is not active in a linked program.
type UndeclaredUniformError struct {
	Name string
}

func (e *UndeclaredUniformError) Error() string {
	return fmt.Sprintf("gpu: uniform %q is not declared or not active", e.Name)
}

// UndeclaredUniformBlockError is returned when a uniform block name
// is not declared in a linked program.
type UndeclaredUniformBlockError struct {
	Name string
}

func (e *UndeclaredUniformBlockError) Error() string {
	return fmt.Sprintf("gpu: uniform block %q is not declared", e.Name)
}

// IncompleteFrameBufferError is returned when the device reports a
// framebuffer as incomplete.
type IncompleteFrameBufferError struct {
	Status FrameBufferStatus
}

func (e *IncompleteFrameBufferError) Error() string {
	return "gpu: incomplete framebuffer: " + e.Status.String()
}

// FileError wraps a failure to read a shader source file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("gpu: reading %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// FieldError is returned when a struct field can not be viewed.
// Err is [ErrUnknownField] or [ErrUnsupportedFieldType].
type FieldError struct {
	Type  string
	Field string
	Err   error
}

var (
	ErrUnknownField         = errors.New("unknown field")
	ErrUnsupportedFieldType = errors.New("field type has no device layout")
)

func (e *FieldError) Error() string {
	return fmt.Sprintf("gpu: %s.%s: %v", e.Type, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// checkName panics if name contains a NUL byte: such a name can never
// match a shader identifier and indicates a programming error.
func checkName(name string) {
	if strings.IndexByte(name, 0) >= 0 {
		panic(fmt.Sprintf("gpu: name %q contains a NUL byte", name))
	}
}
