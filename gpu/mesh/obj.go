// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
)

// Decode parses a Wavefront OBJ mesh. Positions (v), texture
// coordinates (vt), normals (vn) and faces (f) are read; faces with
// more than three corners are triangulated as fans. Corners without a
// normal get the normalized sum of the normals of the faces they are
// part of. Unsupported statements are recorded in [Mesh.Warnings].
func Decode(r io.Reader) (*Mesh, error) {
	dec := &decoder{mesh: &Mesh{}, corners: map[corner]uint32{}}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		dec.line++
		if err := dec.parseLine(sc.Text()); err != nil {
			return nil, fmt.Errorf("mesh: line %d: %w", dec.line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	dec.finish()
	return dec.mesh, nil
}

// Open decodes the OBJ file of the given name.
func Open(filename string) (*Mesh, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// OpenFS decodes the OBJ file of the given name in fsys.
func OpenFS(fsys fs.FS, filename string) (*Mesh, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// corner is a face corner: indices of its position, texture coordinate
// and normal, with -1 for absent ones.
type corner struct {
	v, vt, vn int
}

type decoder struct {
	mesh      *Mesh
	line      int
	positions []math32.Vector3
	uvs       []math32.Vector2
	normals   []math32.Vector3
	corners   map[corner]uint32

	// computed lists the vertices whose normals are summed from faces.
	computed map[uint32]bool
}

func (dec *decoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	switch fields[0] {
	case "o", "g":
		if dec.mesh.Name == "" && len(fields) > 1 {
			dec.mesh.Name = fields[1]
		}
	case "v":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return err
		}
		dec.positions = append(dec.positions, math32.Vec3(v[0], v[1], v[2]))
	case "vn":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return err
		}
		dec.normals = append(dec.normals, math32.Vec3(v[0], v[1], v[2]))
	case "vt":
		v, err := parseFloats(fields[1:], 2)
		if err != nil {
			return err
		}
		dec.uvs = append(dec.uvs, math32.Vec2(v[0], v[1]))
	case "f":
		return dec.parseFace(fields[1:])
	default:
		dec.mesh.Warnings = append(dec.mesh.Warnings, fmt.Sprintf("line %d: %s not supported", dec.line, fields[0]))
	}
	return nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d values, have %d", n, len(fields))
	}
	vals := make([]float32, n)
	for i, f := range fields[:n] {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		vals[i] = float32(v)
	}
	return vals, nil
}

// resolve turns a 1-based or negative relative OBJ index into a
// 0-based index into a list of n elements.
func resolve(field string, n int) (int, error) {
	val, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	idx := val - 1
	if val < 0 {
		idx = n + val
	}
	if val == 0 || idx < 0 || idx >= n {
		return 0, fmt.Errorf("index %d out of range [1, %d]", val, n)
	}
	return idx, nil
}

func (dec *decoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("face with %d corners", len(fields))
	}
	idxs := make([]uint32, len(fields))
	for i, f := range fields {
		parts := strings.Split(f, "/")
		c := corner{v: -1, vt: -1, vn: -1}
		var err error
		if c.v, err = resolve(parts[0], len(dec.positions)); err != nil {
			return err
		}
		if len(parts) > 1 && parts[1] != "" {
			if c.vt, err = resolve(parts[1], len(dec.uvs)); err != nil {
				return err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if c.vn, err = resolve(parts[2], len(dec.normals)); err != nil {
				return err
			}
		}
		idxs[i] = dec.vertex(c)
	}
	for i := 2; i < len(idxs); i++ {
		a, b, c := idxs[0], idxs[i-1], idxs[i]
		dec.mesh.Indices = append(dec.mesh.Indices, a, b, c)
		dec.addFaceNormal(a, b, c)
	}
	return nil
}

// vertex returns the index of the vertex of c, adding it if new.
func (dec *decoder) vertex(c corner) uint32 {
	if idx, ok := dec.corners[c]; ok {
		return idx
	}
	vtx := Vertex{Position: dec.positions[c.v]}
	if c.vt >= 0 {
		vtx.UV = dec.uvs[c.vt]
	}
	idx := uint32(len(dec.mesh.Vertices))
	if c.vn >= 0 {
		vtx.Normal = dec.normals[c.vn]
	} else {
		if dec.computed == nil {
			dec.computed = map[uint32]bool{}
		}
		dec.computed[idx] = true
	}
	dec.mesh.Vertices = append(dec.mesh.Vertices, vtx)
	dec.corners[c] = idx
	return idx
}

// addFaceNormal adds the area weighted normal of triangle abc to those
// of its vertices that have no normal of their own.
func (dec *decoder) addFaceNormal(a, b, c uint32) {
	if len(dec.computed) == 0 {
		return
	}
	vs := dec.mesh.Vertices
	n := vs[b].Position.Sub(vs[a].Position).Cross(vs[c].Position.Sub(vs[a].Position))
	for _, i := range []uint32{a, b, c} {
		if dec.computed[i] {
			vs[i].Normal = vs[i].Normal.Add(n)
		}
	}
}

func (dec *decoder) finish() {
	for i := range dec.computed {
		v := &dec.mesh.Vertices[i]
		v.Normal = normalize(v.Normal)
	}
}
