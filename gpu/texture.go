// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/glw/gpu/device"
)

// TextureFormats are the device storage formats of textures.
type TextureFormats int32 //enums:enum

const (
	Monochrome TextureFormats = iota
	RGB
	RGBA
	Depth
	DepthStencil
)

func (f TextureFormats) internal() device.Enum {
	switch f {
	case Monochrome:
		return device.RED
	case RGB:
		return device.RGB
	case Depth:
		return device.DEPTH_COMPONENT
	case DepthStencil:
		return device.DEPTH_STENCIL
	}
	return device.RGBA
}

// IsDepth returns whether the format holds depth values.
func (f TextureFormats) IsDepth() bool {
	return f == Depth || f == DepthStencil
}

// TextureAxes are the texture coordinate axes.
type TextureAxes int32 //enums:enum

const (
	// UAxis is the horizontal axis.
	UAxis TextureAxes = iota

	// VAxis is the vertical axis.
	VAxis
)

func (a TextureAxes) param() device.Enum {
	if a == VAxis {
		return device.TEXTURE_WRAP_T
	}
	return device.TEXTURE_WRAP_S
}

// Texture is a 2D device texture.
type Texture struct {
	ctx           *Context
	id            device.Texture
	format        TextureFormats
	width, height int

	// layout is the pixel layout read back by Read
	layout    PixelLayouts
	hasLayout bool
	deleted   bool
}

// NewTexture returns a texture holding img, stored in the format
// matching its channels: Mono8 as Monochrome, RGB8 as RGB and RGBA8
// as RGBA. Other layouts return [ErrUnsupportedImageLayout]; use
// [NewTextureStoredAs] for them.
func NewTexture(ctx *Context, img *Image) (*Texture, error) {
	var format TextureFormats
	switch img.Layout {
	case Mono8:
		format = Monochrome
	case RGB8:
		format = RGB
	case RGBA8:
		format = RGBA
	default:
		return nil, ErrUnsupportedImageLayout
	}
	return NewTextureStoredAs(ctx, img, format)
}

// NewTextureStoredAs returns a texture holding img, stored in the given
// format. Two-channel layouts return [ErrUnsupportedImageLayout], as do
// depth formats for images that are not monochrome.
func NewTextureStoredAs(ctx *Context, img *Image, format TextureFormats) (*Texture, error) {
	tf, typ, ok := img.Layout.transfer()
	if !ok || format == DepthStencil || (format == Depth && tf != device.RED) {
		return nil, ErrUnsupportedImageLayout
	}
	if format == Depth {
		tf = device.DEPTH_COMPONENT
	}
	if img.Width < 0 || img.Height < 0 || len(img.Pix) != img.Width*img.Height*img.Layout.PixelSize() {
		return nil, ErrImageDataSize
	}
	t, err := newTexture(ctx, format, img.Width, img.Height, tf, typ, img.Pix)
	if err != nil {
		return nil, err
	}
	if !format.IsDepth() {
		t.layout, t.hasLayout = img.Layout, true
	}
	return t, nil
}

// NewEmptyTexture returns a texture of the given format and size with
// uninitialized contents, typically a framebuffer attachment.
func NewEmptyTexture(ctx *Context, format TextureFormats, width, height int) (*Texture, error) {
	tf, typ := format.internal(), device.UNSIGNED_BYTE
	switch format {
	case Depth:
		typ = device.FLOAT
	case DepthStencil:
		typ = device.UNSIGNED_INT_24_8
	}
	t, err := newTexture(ctx, format, width, height, tf, typ, nil)
	if err != nil {
		return nil, err
	}
	switch format {
	case Monochrome:
		t.layout, t.hasLayout = Mono8, true
	case RGB:
		t.layout, t.hasLayout = RGB8, true
	case RGBA:
		t.layout, t.hasLayout = RGBA8, true
	}
	return t, nil
}

func newTexture(ctx *Context, format TextureFormats, width, height int, tf, typ device.Enum, pix []byte) (*Texture, error) {
	dev := ctx.dev
	id := dev.GenTexture()
	if id == 0 {
		return nil, ErrCouldNotCreateTexture
	}
	ctx.st.withTexture(id, func() {
		dev.TexImage2D(device.TEXTURE_2D, 0, format.internal(), width, height, tf, typ, pix)
		dev.TexParameteri(device.TEXTURE_2D, device.TEXTURE_MIN_FILTER, int32(device.NEAREST))
		dev.TexParameteri(device.TEXTURE_2D, device.TEXTURE_MAG_FILTER, int32(device.LINEAR))
		dev.TexParameteri(device.TEXTURE_2D, device.TEXTURE_WRAP_S, int32(device.REPEAT))
		dev.TexParameteri(device.TEXTURE_2D, device.TEXTURE_WRAP_T, int32(device.REPEAT))
	})
	ctx.created(TextureResource, uint32(id))
	ctx.done("NewTexture")
	return &Texture{ctx: ctx, id: id, format: format, width: width, height: height}, nil
}

// Raw returns the resource identifier of the texture.
func (t *Texture) Raw() RawResource {
	return RawResource{ID: uint32(t.id), Kind: TextureResource}
}

// Format returns the storage format of the texture.
func (t *Texture) Format() TextureFormats { return t.format }

// Size returns the width and height of the texture.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// Clamp makes sampling clamp to the border color along the given axes,
// or both axes if none are given.
func (t *Texture) Clamp(axes ...TextureAxes) {
	t.setWrap(device.CLAMP_TO_BORDER, axes)
}

// Repeat makes sampling repeat the texture along the given axes,
// or both axes if none are given.
func (t *Texture) Repeat(axes ...TextureAxes) {
	t.setWrap(device.REPEAT, axes)
}

func (t *Texture) setWrap(mode device.Enum, axes []TextureAxes) {
	if len(axes) == 0 {
		axes = []TextureAxes{UAxis, VAxis}
	}
	dev := t.ctx.dev
	t.ctx.st.withTexture(t.id, func() {
		for _, a := range axes {
			dev.TexParameteri(device.TEXTURE_2D, a.param(), int32(mode))
		}
	})
	t.ctx.done("Texture.setWrap")
}

// Read reads the texture back from the device, in the layout of the
// image it was created from, or the 8-bit layout of its format for
// empty textures. Depth textures can not be read and return
// [ErrUnsupportedImageLayout].
func (t *Texture) Read() (*Image, error) {
	if t.deleted {
		return nil, ErrDeleted
	}
	if !t.hasLayout {
		return nil, ErrUnsupportedImageLayout
	}
	img := NewImage(t.layout, t.width, t.height)
	tf, typ, _ := t.layout.transfer()
	dev := t.ctx.dev
	t.ctx.st.withTexture(t.id, func() {
		dev.GetTexImage(device.TEXTURE_2D, 0, tf, typ, img.Pix)
	})
	t.ctx.done("Texture.Read")
	return img, nil
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.deleted {
		return
	}
	t.deleted = true
	t.ctx.dev.DeleteTexture(t.id)
	t.ctx.st.forget(TextureResource, uint32(t.id))
	t.ctx.deleted(TextureResource, uint32(t.id))
}
