// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softdevice

import (
	"slices"

	"cogentcore.org/glw/gpu/device"
)

type texture struct {
	width, height  int
	internalFormat device.Enum
	format, typ    device.Enum
	data           []byte
	params         map[device.Enum]int32
}

type framebuffer struct {
	attachments map[device.Enum]device.Texture
}

// channels returns the number of components of a pixel transfer format.
func channels(format device.Enum) int {
	switch format {
	case device.RED, device.DEPTH_COMPONENT, device.DEPTH_STENCIL:
		return 1
	case device.RG:
		return 2
	case device.RGB:
		return 3
	case device.RGBA:
		return 4
	}
	return 0
}

// typeSize returns the byte size of one component of a pixel transfer type.
func typeSize(typ device.Enum) int {
	switch typ {
	case device.BYTE, device.UNSIGNED_BYTE:
		return 1
	case device.SHORT, device.UNSIGNED_SHORT:
		return 2
	case device.INT, device.UNSIGNED_INT, device.FLOAT, device.UNSIGNED_INT_24_8:
		return 4
	}
	return 0
}

func pixelSize(format, typ device.Enum) int {
	if typ == device.UNSIGNED_INT_24_8 {
		return 4
	}
	return channels(format) * typeSize(typ)
}

func isDepthFormat(f device.Enum) bool {
	return f == device.DEPTH_COMPONENT || f == device.DEPTH_STENCIL
}

// convertU8 converts 8-bit pixels between channel counts, filling
// missing color channels with 0 and missing alpha with 255.
func convertU8(src []byte, from, to int) []byte {
	if from == to {
		return slices.Clone(src)
	}
	n := len(src) / from
	dst := make([]byte, n*to)
	for i := range n {
		for c := range to {
			switch {
			case c < from:
				dst[i*to+c] = src[i*from+c]
			case c == 3:
				dst[i*to+c] = 255
			}
		}
	}
	return dst
}

////////////////////////////////////////////////////////////////
// Textures

func (d *Device) GenTexture() device.Texture {
	id, ok := d.newID()
	if !ok {
		return 0
	}
	t := device.Texture(id)
	d.textures[t] = &texture{params: map[device.Enum]int32{}}
	return t
}

func (d *Device) DeleteTexture(t device.Texture) {
	if t == 0 {
		return
	}
	delete(d.textures, t)
	for u, bt := range d.units {
		if bt == t {
			d.units[u] = 0
		}
	}
}

func (d *Device) ActiveTexture(unit device.Enum) {
	if unit < device.TEXTURE0 || unit > device.TEXTURE0+31 {
		d.setError(device.INVALID_ENUM, "ActiveTexture")
		return
	}
	d.activeUnit = int(unit - device.TEXTURE0)
}

// ActiveUnit returns the index of the active texture unit.
func (d *Device) ActiveUnit() int {
	return d.activeUnit
}

func (d *Device) BindTexture(target device.Enum, t device.Texture) {
	if target != device.TEXTURE_2D {
		d.setError(device.INVALID_ENUM, "BindTexture")
		return
	}
	if t != 0 {
		if _, ok := d.textures[t]; !ok {
			d.setError(device.INVALID_OPERATION, "BindTexture")
			return
		}
	}
	d.units[d.activeUnit] = t
}

// BoundTexture returns the 2D texture bound to the given unit.
func (d *Device) BoundTexture(unit int) device.Texture {
	return d.units[unit]
}

func (d *Device) boundTexture(target device.Enum, op string) *texture {
	if target != device.TEXTURE_2D {
		d.setError(device.INVALID_ENUM, op)
		return nil
	}
	t := d.units[d.activeUnit]
	if t == 0 {
		d.setError(device.INVALID_OPERATION, op)
		return nil
	}
	return d.textures[t]
}

func (d *Device) TexImage2D(target device.Enum, level int, internalFormat device.Enum, width, height int, format, typ device.Enum, pixels []byte) {
	tex := d.boundTexture(target, "TexImage2D")
	if tex == nil {
		return
	}
	ps := pixelSize(format, typ)
	if level != 0 || width < 0 || height < 0 || ps == 0 {
		d.setError(device.INVALID_VALUE, "TexImage2D")
		return
	}
	if isDepthFormat(internalFormat) != isDepthFormat(format) {
		d.setError(device.INVALID_OPERATION, "TexImage2D")
		return
	}
	size := width * height * ps
	if pixels != nil && len(pixels) < size {
		d.setError(device.INVALID_OPERATION, "TexImage2D")
		return
	}
	tex.width, tex.height = width, height
	tex.internalFormat, tex.format, tex.typ = internalFormat, format, typ
	tex.data = make([]byte, size)
	copy(tex.data, pixels)
}

func (d *Device) TexParameteri(target, pname device.Enum, param int32) {
	tex := d.boundTexture(target, "TexParameteri")
	if tex == nil {
		return
	}
	tex.params[pname] = param
}

func (d *Device) GetTexImage(target device.Enum, level int, format, typ device.Enum, pixels []byte) {
	tex := d.boundTexture(target, "GetTexImage")
	if tex == nil {
		return
	}
	if level != 0 {
		d.setError(device.INVALID_VALUE, "GetTexImage")
		return
	}
	switch {
	case format == tex.format && typ == tex.typ:
		copy(pixels, tex.data)
	case typ == device.UNSIGNED_BYTE && tex.typ == device.UNSIGNED_BYTE && !isDepthFormat(format):
		copy(pixels, convertU8(tex.data, channels(tex.format), channels(format)))
	default:
		d.setError(device.INVALID_OPERATION, "GetTexImage")
	}
}

// TextureInfo describes the storage of a texture.
type TextureInfo struct {
	Width, Height  int
	InternalFormat device.Enum
	Params         map[device.Enum]int32
}

// Texture returns the storage description of t.
func (d *Device) Texture(t device.Texture) (TextureInfo, bool) {
	tex, ok := d.textures[t]
	if !ok {
		return TextureInfo{}, false
	}
	params := make(map[device.Enum]int32, len(tex.params))
	for k, v := range tex.params {
		params[k] = v
	}
	return TextureInfo{Width: tex.width, Height: tex.height, InternalFormat: tex.internalFormat, Params: params}, true
}

////////////////////////////////////////////////////////////////
// Framebuffers

func (d *Device) GenFramebuffer() device.Framebuffer {
	id, ok := d.newID()
	if !ok {
		return 0
	}
	f := device.Framebuffer(id)
	d.framebuffers[f] = &framebuffer{attachments: map[device.Enum]device.Texture{}}
	return f
}

func (d *Device) DeleteFramebuffer(f device.Framebuffer) {
	if f == 0 {
		return
	}
	delete(d.framebuffers, f)
	if d.drawFB == f {
		d.drawFB = 0
	}
	if d.readFB == f {
		d.readFB = 0
	}
}

func (d *Device) BindFramebuffer(target device.Enum, f device.Framebuffer) {
	if f != 0 {
		if _, ok := d.framebuffers[f]; !ok {
			d.setError(device.INVALID_OPERATION, "BindFramebuffer")
			return
		}
	}
	switch target {
	case device.FRAMEBUFFER:
		d.drawFB, d.readFB = f, f
	case device.DRAW_FRAMEBUFFER:
		d.drawFB = f
	case device.READ_FRAMEBUFFER:
		d.readFB = f
	default:
		d.setError(device.INVALID_ENUM, "BindFramebuffer")
	}
}

// BoundFramebuffer returns the framebuffer bound for drawing.
func (d *Device) BoundFramebuffer() device.Framebuffer {
	return d.drawFB
}

func (d *Device) targetFramebuffer(target device.Enum) (device.Framebuffer, bool) {
	switch target {
	case device.FRAMEBUFFER, device.DRAW_FRAMEBUFFER:
		return d.drawFB, true
	case device.READ_FRAMEBUFFER:
		return d.readFB, true
	}
	return 0, false
}

func (d *Device) FramebufferTexture2D(target, attachment, texTarget device.Enum, t device.Texture, level int) {
	f, ok := d.targetFramebuffer(target)
	if !ok || texTarget != device.TEXTURE_2D {
		d.setError(device.INVALID_ENUM, "FramebufferTexture2D")
		return
	}
	switch attachment {
	case device.COLOR_ATTACHMENT0, device.DEPTH_ATTACHMENT, device.STENCIL_ATTACHMENT:
	default:
		d.setError(device.INVALID_ENUM, "FramebufferTexture2D")
		return
	}
	if f == 0 || level != 0 {
		d.setError(device.INVALID_OPERATION, "FramebufferTexture2D")
		return
	}
	fb := d.framebuffers[f]
	if t == 0 {
		delete(fb.attachments, attachment)
		return
	}
	if _, ok := d.textures[t]; !ok {
		d.setError(device.INVALID_OPERATION, "FramebufferTexture2D")
		return
	}
	fb.attachments[attachment] = t
}

// Attachment returns the texture attached to f at attachment.
func (d *Device) Attachment(f device.Framebuffer, attachment device.Enum) device.Texture {
	if fb, ok := d.framebuffers[f]; ok {
		return fb.attachments[attachment]
	}
	return 0
}

// CheckFramebufferStatus applies these rules in order: no attachment is
// MISSING_ATTACHMENT; a deleted or storage-less texture, a color
// attachment with a depth format, or a depth or stencil attachment with
// a color format is INCOMPLETE_ATTACHMENT; attachments of different
// sizes are UNSUPPORTED.
func (d *Device) CheckFramebufferStatus(target device.Enum) device.Enum {
	f, ok := d.targetFramebuffer(target)
	if !ok {
		d.setError(device.INVALID_ENUM, "CheckFramebufferStatus")
		return 0
	}
	if f == 0 {
		return device.FRAMEBUFFER_COMPLETE
	}
	fb := d.framebuffers[f]
	if len(fb.attachments) == 0 {
		return device.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	w, h := -1, -1
	for _, at := range []device.Enum{device.COLOR_ATTACHMENT0, device.DEPTH_ATTACHMENT, device.STENCIL_ATTACHMENT} {
		t, ok := fb.attachments[at]
		if !ok {
			continue
		}
		tex := d.textures[t]
		if tex == nil || tex.data == nil || tex.width == 0 || tex.height == 0 {
			return device.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		switch at {
		case device.COLOR_ATTACHMENT0:
			if isDepthFormat(tex.internalFormat) {
				return device.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
			}
		case device.DEPTH_ATTACHMENT:
			if !isDepthFormat(tex.internalFormat) {
				return device.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
			}
		case device.STENCIL_ATTACHMENT:
			if tex.internalFormat != device.DEPTH_STENCIL {
				return device.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
			}
		}
		if w < 0 {
			w, h = tex.width, tex.height
		} else if w != tex.width || h != tex.height {
			return device.FRAMEBUFFER_UNSUPPORTED
		}
	}
	return device.FRAMEBUFFER_COMPLETE
}

// colorTarget returns the RGBA or RGB 8-bit color storage of framebuffer f,
// with its width, height and channel count.
func (d *Device) colorTarget(f device.Framebuffer) ([]byte, int, int, int) {
	if f == 0 {
		return d.backbuffer, d.DefaultWidth, d.DefaultHeight, 4
	}
	fb := d.framebuffers[f]
	tex := d.textures[fb.attachments[device.COLOR_ATTACHMENT0]]
	if tex == nil || tex.typ != device.UNSIGNED_BYTE || isDepthFormat(tex.format) {
		return nil, 0, 0, 0
	}
	return tex.data, tex.width, tex.height, channels(tex.format)
}

func (d *Device) ReadPixels(x, y, width, height int, format, typ device.Enum, pixels []byte) {
	if typ != device.UNSIGNED_BYTE || (format != device.RGBA && format != device.RGB && format != device.RED) {
		d.setError(device.INVALID_ENUM, "ReadPixels")
		return
	}
	if d.readFB != 0 && d.CheckFramebufferStatus(device.READ_FRAMEBUFFER) != device.FRAMEBUFFER_COMPLETE {
		d.setError(device.INVALID_OPERATION, "ReadPixels")
		return
	}
	src, sw, sh, sc := d.colorTarget(d.readFB)
	if src == nil {
		d.setError(device.INVALID_OPERATION, "ReadPixels")
		return
	}
	dc := channels(format)
	if x < 0 || y < 0 || width < 0 || height < 0 || x+width > sw || y+height > sh || len(pixels) < width*height*dc {
		d.setError(device.INVALID_VALUE, "ReadPixels")
		return
	}
	for row := range height {
		off := ((y+row)*sw + x) * sc
		line := convertU8(src[off:off+width*sc], sc, dc)
		copy(pixels[row*width*dc:], line)
	}
}
