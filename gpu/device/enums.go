// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package device

// Enum is a device symbolic constant. Values are the OpenGL ones,
// so a GL backed Device can pass them through unchanged.
type Enum uint32

const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR = 0x0

	// buffer targets and usage
	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	UNIFORM_BUFFER       Enum = 0x8A11
	STATIC_DRAW          Enum = 0x88E4
	DYNAMIC_DRAW         Enum = 0x88E8

	// scalar types
	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406

	// GLSL attribute types reported by GetActiveAttrib
	FLOAT_VEC2   Enum = 0x8B50
	FLOAT_VEC3   Enum = 0x8B51
	FLOAT_VEC4   Enum = 0x8B52
	INT_VEC2     Enum = 0x8B53
	INT_VEC3     Enum = 0x8B54
	INT_VEC4     Enum = 0x8B55
	FLOAT_MAT3   Enum = 0x8B5B
	FLOAT_MAT4   Enum = 0x8B5C
	UINT_VEC2    Enum = 0x8DC6
	UINT_VEC3    Enum = 0x8DC7
	UINT_VEC4    Enum = 0x8DC8
	SAMPLER_2D   Enum = 0x8B5E
	INVALID_TYPE Enum = 0

	// shaders and programs
	VERTEX_SHADER               Enum   = 0x8B31
	FRAGMENT_SHADER             Enum   = 0x8B30
	GEOMETRY_SHADER             Enum   = 0x8DD9
	COMPILE_STATUS              Enum   = 0x8B81
	LINK_STATUS                 Enum   = 0x8B82
	INFO_LOG_LENGTH             Enum   = 0x8B84
	ACTIVE_ATTRIBUTES           Enum   = 0x8B89
	ACTIVE_ATTRIBUTE_MAX_LENGTH Enum   = 0x8B8A
	ACTIVE_UNIFORMS             Enum   = 0x8B86
	ACTIVE_UNIFORM_BLOCKS       Enum   = 0x8A36
	INVALID_INDEX               uint32 = 0xFFFFFFFF

	// textures
	TEXTURE_2D         Enum = 0x0DE1
	TEXTURE0           Enum = 0x84C0
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	NEAREST            Enum = 0x2600
	LINEAR             Enum = 0x2601
	REPEAT             Enum = 0x2901
	CLAMP_TO_BORDER    Enum = 0x812D
	CLAMP_TO_EDGE      Enum = 0x812F
	RED                Enum = 0x1903
	RG                 Enum = 0x8227
	RGB                Enum = 0x1907
	RGBA               Enum = 0x1908
	DEPTH_COMPONENT    Enum = 0x1902
	DEPTH_STENCIL      Enum = 0x84F9
	UNSIGNED_INT_24_8  Enum = 0x84FA
	PACK_ALIGNMENT     Enum = 0x0D05
	UNPACK_ALIGNMENT   Enum = 0x0CF5

	// framebuffers
	FRAMEBUFFER                               Enum = 0x8D40
	READ_FRAMEBUFFER                          Enum = 0x8CA8
	DRAW_FRAMEBUFFER                          Enum = 0x8CA9
	COLOR_ATTACHMENT0                         Enum = 0x8CE0
	DEPTH_ATTACHMENT                          Enum = 0x8D00
	STENCIL_ATTACHMENT                        Enum = 0x8D20
	FRAMEBUFFER_COMPLETE                      Enum = 0x8CD5
	FRAMEBUFFER_UNDEFINED                     Enum = 0x8219
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         Enum = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT Enum = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER        Enum = 0x8CDB
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER        Enum = 0x8CDC
	FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE        Enum = 0x8CD1
	FRAMEBUFFER_UNSUPPORTED                   Enum = 0x8CDD
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        Enum = 0x8D56
	FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS      Enum = 0x8DA8

	// primitives
	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005

	// render state
	COLOR_BUFFER_BIT   Enum = 0x4000
	DEPTH_BUFFER_BIT   Enum = 0x0100
	STENCIL_BUFFER_BIT Enum = 0x0400
	DEPTH_TEST         Enum = 0x0B71
	PROGRAM_POINT_SIZE Enum = 0x8642
	LESS               Enum = 0x0201

	// errors
	INVALID_ENUM      Enum = 0x0500
	INVALID_VALUE     Enum = 0x0501
	INVALID_OPERATION Enum = 0x0502
	OUT_OF_MEMORY     Enum = 0x0505
)
