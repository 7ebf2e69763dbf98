// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softdevice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/glw/gpu/device"
)

// decl is one GLSL global declaration (in, out, uniform).
type decl struct {
	storage  string
	typ      string
	name     string
	arrayLen int // 0 if not an array
	location int // -1 if no explicit layout location
}

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`//[^\n]*`)

	// names allow any non-space bytes so drivers returning odd names can be simulated
	declRe     = regexp.MustCompile(`(?m)^\s*(?:layout\s*\(([^)]*)\)\s*)?(?:(?:flat|smooth|noperspective)\s+)?(in|out|attribute|varying|uniform)\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+([^\s;\[\]{]+)\s*(?:\[\s*(\d*)\s*\])?\s*;`)
	blockRe    = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?uniform\s+(\w+)\s*\{`)
	locationRe = regexp.MustCompile(`location\s*=\s*(\d+)`)
	mainRe     = regexp.MustCompile(`\bvoid\s+main\s*\(`)
	errorRe    = regexp.MustCompile(`(?m)^\s*#error\s*(.*)$`)
)

func stripComments(src string) string {
	src = blockComment.ReplaceAllString(src, "")
	return lineComment.ReplaceAllString(src, "")
}

// lineOf returns the 1-based line number of byte offset off in src.
func lineOf(src string, off int) int {
	return strings.Count(src[:off], "\n") + 1
}

// compileGLSL checks src for the errors the software device detects and
// returns its declarations, or a non-empty info log.
func compileGLSL(src string) ([]decl, []string, string) {
	code := stripComments(src)
	if m := errorRe.FindStringSubmatchIndex(code); m != nil {
		return nil, nil, fmt.Sprintf("ERROR: 0:%d: '#error' : %s\n", lineOf(code, m[0]), strings.TrimSpace(code[m[2]:m[3]]))
	}
	depth := 0
	for i, c := range code {
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return nil, nil, fmt.Sprintf("ERROR: 0:%d: '}' : syntax error: unexpected closing brace\n", lineOf(code, i))
			}
		}
	}
	if depth != 0 {
		return nil, nil, fmt.Sprintf("ERROR: 0:%d: '' : syntax error: unexpected end of file\n", lineOf(code, len(code)))
	}
	if !mainRe.MatchString(code) {
		return nil, nil, "ERROR: 0:1: 'main' : function not defined\n"
	}

	var decls []decl
	for _, m := range declRe.FindAllStringSubmatch(code, -1) {
		dc := decl{storage: m[2], typ: m[3], name: m[4], location: -1}
		switch dc.storage {
		case "attribute":
			dc.storage = "in"
		case "varying":
			dc.storage = ""
		}
		if m[5] != "" {
			dc.arrayLen, _ = strconv.Atoi(m[5])
		}
		if lm := locationRe.FindStringSubmatch(m[1]); lm != nil {
			dc.location, _ = strconv.Atoi(lm[1])
		}
		decls = append(decls, dc)
	}
	// "varying" is an output in vertex shaders and an input in fragment shaders
	for i := range decls {
		if decls[i].storage == "" {
			decls[i].storage = "varying"
		}
	}
	var blocks []string
	for _, m := range blockRe.FindAllStringSubmatch(code, -1) {
		blocks = append(blocks, m[1])
	}
	return decls, blocks, ""
}

// glslTypes maps GLSL type names to attribute type enums.
var glslTypes = map[string]device.Enum{
	"float":     device.FLOAT,
	"vec2":      device.FLOAT_VEC2,
	"vec3":      device.FLOAT_VEC3,
	"vec4":      device.FLOAT_VEC4,
	"int":       device.INT,
	"ivec2":     device.INT_VEC2,
	"ivec3":     device.INT_VEC3,
	"ivec4":     device.INT_VEC4,
	"uint":      device.UNSIGNED_INT,
	"uvec2":     device.UINT_VEC2,
	"uvec3":     device.UINT_VEC3,
	"uvec4":     device.UINT_VEC4,
	"mat3":      device.FLOAT_MAT3,
	"mat4":      device.FLOAT_MAT4,
	"sampler2D": device.SAMPLER_2D,
}

// slotsOf returns the number of attribute or uniform locations a type uses.
func slotsOf(typ string) int {
	switch typ {
	case "mat3":
		return 3
	case "mat4":
		return 4
	}
	return 1
}
