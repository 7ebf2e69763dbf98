// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softdevice

import (
	"encoding/binary"
	"slices"

	"cogentcore.org/glw/gpu/device"
)

// Draw is one recorded draw call together with the state it was issued in.
type Draw struct {
	Mode device.Enum

	// First and Count are set for DrawArrays.
	First, Count int

	// Indexed draws record the index type, count, byte offset and
	// the decoded index values.
	Indexed     bool
	IndexType   device.Enum
	IndexCount  int
	IndexOffset int
	Indices     []uint32

	// Firsts and Counts are set for MultiDrawArrays.
	Firsts, Counts []int32

	VertexArray device.VertexArray
	Program     device.Program
	Texture     device.Texture
	Framebuffer device.Framebuffer
}

func validMode(mode device.Enum) bool {
	switch mode {
	case device.POINTS, device.LINES, device.LINE_STRIP, device.TRIANGLES, device.TRIANGLE_STRIP:
		return true
	}
	return false
}

// drawable checks the state shared by every draw call.
func (d *Device) drawable(mode device.Enum, op string) bool {
	if !validMode(mode) {
		d.setError(device.INVALID_ENUM, op)
		return false
	}
	if d.current == 0 || d.vao == 0 {
		d.setError(device.INVALID_OPERATION, op)
		return false
	}
	if d.drawFB != 0 && d.CheckFramebufferStatus(device.DRAW_FRAMEBUFFER) != device.FRAMEBUFFER_COMPLETE {
		d.setError(device.INVALID_OPERATION, op)
		return false
	}
	return true
}

func (d *Device) record(dr Draw) {
	dr.VertexArray = d.vao
	dr.Program = d.current
	dr.Texture = d.units[0]
	dr.Framebuffer = d.drawFB
	d.Draws = append(d.Draws, dr)
}

func (d *Device) DrawArrays(mode device.Enum, first, count int) {
	if first < 0 || count < 0 {
		d.setError(device.INVALID_VALUE, "DrawArrays")
		return
	}
	if !d.drawable(mode, "DrawArrays") {
		return
	}
	d.record(Draw{Mode: mode, First: first, Count: count})
}

func (d *Device) DrawElements(mode device.Enum, count int, typ device.Enum, offset int) {
	if count < 0 || offset < 0 {
		d.setError(device.INVALID_VALUE, "DrawElements")
		return
	}
	var size int
	switch typ {
	case device.UNSIGNED_BYTE:
		size = 1
	case device.UNSIGNED_SHORT:
		size = 2
	case device.UNSIGNED_INT:
		size = 4
	default:
		d.setError(device.INVALID_ENUM, "DrawElements")
		return
	}
	if !d.drawable(mode, "DrawElements") {
		return
	}
	buf := d.buffers[d.vaos[d.vao].elements]
	if buf == nil || offset+count*size > len(buf.data) {
		d.setError(device.INVALID_OPERATION, "DrawElements")
		return
	}
	idx := make([]uint32, count)
	for i := range idx {
		b := buf.data[offset+i*size:]
		switch size {
		case 1:
			idx[i] = uint32(b[0])
		case 2:
			idx[i] = uint32(binary.NativeEndian.Uint16(b))
		case 4:
			idx[i] = binary.NativeEndian.Uint32(b)
		}
	}
	d.record(Draw{Mode: mode, Indexed: true, IndexType: typ, IndexCount: count, IndexOffset: offset, Indices: idx})
}

func (d *Device) MultiDrawArrays(mode device.Enum, first, count []int32) {
	if len(first) != len(count) {
		d.setError(device.INVALID_VALUE, "MultiDrawArrays")
		return
	}
	for i := range first {
		if first[i] < 0 || count[i] < 0 {
			d.setError(device.INVALID_VALUE, "MultiDrawArrays")
			return
		}
	}
	if !d.drawable(mode, "MultiDrawArrays") {
		return
	}
	d.record(Draw{Mode: mode, Firsts: slices.Clone(first), Counts: slices.Clone(count)})
}

////////////////////////////////////////////////////////////////
// Render state

// State is the fixed-function render state of the device.
type State struct {
	ClearColor [4]float32
	Viewport   [4]int
	DepthFunc  device.Enum
	LineWidth  float32
	PointSize  float32
}

// State returns the current render state.
func (d *Device) State() State {
	return State{ClearColor: d.clearColor, Viewport: d.viewport, DepthFunc: d.depthFunc, LineWidth: d.lineWidth, PointSize: d.pointSize}
}

// Enabled reports whether capability is enabled.
func (d *Device) Enabled(capability device.Enum) bool {
	return d.caps[capability]
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.clearColor = [4]float32{r, g, b, a}
}

func toByte(v float32) byte {
	return byte(min(max(v, 0), 1)*255 + 0.5)
}

// Clear fills the color storage of the draw framebuffer with the clear
// color. Depth and stencil contents are not modeled.
func (d *Device) Clear(mask device.Enum) {
	if mask&^(device.COLOR_BUFFER_BIT|device.DEPTH_BUFFER_BIT|device.STENCIL_BUFFER_BIT) != 0 {
		d.setError(device.INVALID_VALUE, "Clear")
		return
	}
	if mask&device.COLOR_BUFFER_BIT == 0 {
		return
	}
	if d.drawFB != 0 && d.CheckFramebufferStatus(device.DRAW_FRAMEBUFFER) != device.FRAMEBUFFER_COMPLETE {
		d.setError(device.INVALID_OPERATION, "Clear")
		return
	}
	dst, _, _, ch := d.colorTarget(d.drawFB)
	if dst == nil {
		return
	}
	px := [4]byte{toByte(d.clearColor[0]), toByte(d.clearColor[1]), toByte(d.clearColor[2]), toByte(d.clearColor[3])}
	for i := 0; i+ch <= len(dst); i += ch {
		copy(dst[i:i+ch], px[:ch])
	}
}

func (d *Device) Viewport(x, y, width, height int) {
	if width < 0 || height < 0 {
		d.setError(device.INVALID_VALUE, "Viewport")
		return
	}
	d.viewport = [4]int{x, y, width, height}
}

func (d *Device) Enable(capability device.Enum) {
	d.caps[capability] = true
}

func (d *Device) Disable(capability device.Enum) {
	d.caps[capability] = false
}

func (d *Device) DepthFunc(fn device.Enum) {
	d.depthFunc = fn
}

func (d *Device) LineWidth(w float32) {
	if w <= 0 {
		d.setError(device.INVALID_VALUE, "LineWidth")
		return
	}
	d.lineWidth = w
}

func (d *Device) PointSize(s float32) {
	if s <= 0 {
		d.setError(device.INVALID_VALUE, "PointSize")
		return
	}
	d.pointSize = s
}
