// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "cogentcore.org/glw/gpu/device"

// PixelLayouts are the channel layouts and bit depths of decoded images.
// Multi-byte channels are in native byte order.
type PixelLayouts int32 //enums:enum

const (
	Mono8 PixelLayouts = iota
	MonoAlpha8
	RGB8
	RGBA8
	Mono16
	MonoAlpha16
	RGB16
	RGBA16
	RGB32F
	RGBA32F
)

// Channels returns the number of channels per pixel.
func (l PixelLayouts) Channels() int {
	switch l {
	case Mono8, Mono16:
		return 1
	case MonoAlpha8, MonoAlpha16:
		return 2
	case RGB8, RGB16, RGB32F:
		return 3
	}
	return 4
}

// ChannelSize returns the size of one channel in bytes.
func (l PixelLayouts) ChannelSize() int {
	switch l {
	case Mono16, MonoAlpha16, RGB16, RGBA16:
		return 2
	case RGB32F, RGBA32F:
		return 4
	}
	return 1
}

// PixelSize returns the size of one pixel in bytes.
func (l PixelLayouts) PixelSize() int {
	return l.Channels() * l.ChannelSize()
}

// transfer returns the device pixel transfer format and type of the
// layout. Two-channel layouts have none.
func (l PixelLayouts) transfer() (format, typ device.Enum, ok bool) {
	switch l.Channels() {
	case 1:
		format = device.RED
	case 3:
		format = device.RGB
	case 4:
		format = device.RGBA
	default:
		return 0, 0, false
	}
	switch l.ChannelSize() {
	case 2:
		typ = device.UNSIGNED_SHORT
	case 4:
		typ = device.FLOAT
	default:
		typ = device.UNSIGNED_BYTE
	}
	return format, typ, true
}

// Image is a decoded image: rows of pixels of the given layout, from
// the first row of Pix to the last, without padding.
type Image struct {
	Layout        PixelLayouts
	Width, Height int
	Pix           []byte
}

// NewImage returns a zeroed image.
func NewImage(layout PixelLayouts, width, height int) *Image {
	return &Image{Layout: layout, Width: width, Height: height, Pix: make([]byte, width*height*layout.PixelSize())}
}

// Stride returns the size of one row in bytes.
func (im *Image) Stride() int {
	return im.Width * im.Layout.PixelSize()
}

// FlipRows reverses the order of the rows of im in place.
func (im *Image) FlipRows() {
	st := im.Stride()
	tmp := make([]byte, st)
	for top, bot := 0, im.Height-1; top < bot; top, bot = top+1, bot-1 {
		a := im.Pix[top*st : (top+1)*st]
		b := im.Pix[bot*st : (bot+1)*st]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
