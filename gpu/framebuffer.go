// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/glw/gpu/device"
)

// FrameBufferStatus are the reasons a framebuffer is incomplete.
type FrameBufferStatus int32 //enums:enum

const (
	Undefined FrameBufferStatus = iota
	IncompleteAttachment
	IncompleteMissingAttachment
	IncompleteDrawBuffer
	IncompleteReadBuffer
	AttachmentObjectType
	Unsupported
	IncompleteMultisample
	IncompleteLayerTargets
)

var frameBufferStatuses = []struct {
	status FrameBufferStatus
	code   device.Enum
}{
	{Undefined, device.FRAMEBUFFER_UNDEFINED},
	{IncompleteAttachment, device.FRAMEBUFFER_INCOMPLETE_ATTACHMENT},
	{IncompleteMissingAttachment, device.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT},
	{IncompleteDrawBuffer, device.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER},
	{IncompleteReadBuffer, device.FRAMEBUFFER_INCOMPLETE_READ_BUFFER},
	{AttachmentObjectType, device.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE},
	{Unsupported, device.FRAMEBUFFER_UNSUPPORTED},
	{IncompleteMultisample, device.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE},
	{IncompleteLayerTargets, device.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS},
}

// Enum returns the device status code.
func (s FrameBufferStatus) Enum() device.Enum {
	for _, fs := range frameBufferStatuses {
		if fs.status == s {
			return fs.code
		}
	}
	return 0
}

// FrameBufferStatusOf returns the status of a device status code.
// It returns false for FRAMEBUFFER_COMPLETE and unknown codes.
func FrameBufferStatusOf(code device.Enum) (FrameBufferStatus, bool) {
	for _, fs := range frameBufferStatuses {
		if fs.code == code {
			return fs.status, true
		}
	}
	return 0, false
}

// FrameBuffer is a render target. The default framebuffer, returned by
// [Context.DefaultFrameBuffer], is the drawable surface.
type FrameBuffer struct {
	ctx           *Context
	id            device.Framebuffer
	hasDepth      bool
	width, height int
	deleted       bool
}

// FrameBufferBuilder attaches textures to a new framebuffer.
type FrameBufferBuilder struct {
	ctx                   *Context
	color, depth, stencil *Texture
}

// NewFrameBufferBuilder returns a builder for a framebuffer.
func NewFrameBufferBuilder(ctx *Context) *FrameBufferBuilder {
	return &FrameBufferBuilder{ctx: ctx}
}

// Color attaches a color texture.
func (b *FrameBufferBuilder) Color(t *Texture) *FrameBufferBuilder {
	b.color = t
	return b
}

// Depth attaches a depth texture.
func (b *FrameBufferBuilder) Depth(t *Texture) *FrameBufferBuilder {
	b.depth = t
	return b
}

// Stencil attaches a stencil texture, of format [DepthStencil].
func (b *FrameBufferBuilder) Stencil(t *Texture) *FrameBufferBuilder {
	b.stencil = t
	return b
}

// Build creates the framebuffer and checks its completeness. An
// incomplete framebuffer returns an [*IncompleteFrameBufferError].
// Attachments of different sizes are reported as [Unsupported]
// without asking the device.
func (b *FrameBufferBuilder) Build() (*FrameBuffer, error) {
	ctx := b.ctx
	dev := ctx.dev
	w, h := -1, -1
	for _, t := range []*Texture{b.color, b.depth, b.stencil} {
		if t == nil {
			continue
		}
		if w < 0 {
			w, h = t.width, t.height
		} else if t.width != w || t.height != h {
			return nil, &IncompleteFrameBufferError{Status: Unsupported}
		}
	}
	id := dev.GenFramebuffer()
	if id == 0 {
		return nil, ErrCouldNotCreateFrameBuffer
	}
	prev := ctx.st.fb
	ctx.st.bindFramebuffer(id)
	attach := func(at device.Enum, t *Texture) {
		if t != nil {
			dev.FramebufferTexture2D(device.FRAMEBUFFER, at, device.TEXTURE_2D, t.id, 0)
		}
	}
	attach(device.COLOR_ATTACHMENT0, b.color)
	attach(device.DEPTH_ATTACHMENT, b.depth)
	attach(device.STENCIL_ATTACHMENT, b.stencil)
	code := dev.CheckFramebufferStatus(device.FRAMEBUFFER)
	ctx.st.bindFramebuffer(prev)
	if code != device.FRAMEBUFFER_COMPLETE {
		dev.DeleteFramebuffer(id)
		status, ok := FrameBufferStatusOf(code)
		if !ok {
			status = Undefined
		}
		return nil, &IncompleteFrameBufferError{Status: status}
	}
	ctx.created(FrameBufferResource, uint32(id))
	ctx.done("FrameBufferBuilder.Build")
	return &FrameBuffer{ctx: ctx, id: id, hasDepth: b.depth != nil, width: max(w, 0), height: max(h, 0)}, nil
}

// Raw returns the resource identifier of the framebuffer; the default
// framebuffer has ID 0.
func (f *FrameBuffer) Raw() RawResource {
	return RawResource{ID: uint32(f.id), Kind: FrameBufferResource}
}

// HasDepth returns whether the framebuffer has a depth attachment.
func (f *FrameBuffer) HasDepth() bool { return f.hasDepth }

// MakeCurrent makes draws and clears render to f.
func (f *FrameBuffer) MakeCurrent() {
	f.ctx.st.bindFramebuffer(f.id)
}

// Clear makes f current and clears its color, and depth if it has any.
func (f *FrameBuffer) Clear() {
	f.MakeCurrent()
	mask := device.COLOR_BUFFER_BIT
	if f.hasDepth {
		mask |= device.DEPTH_BUFFER_BIT
	}
	f.ctx.dev.Clear(mask)
}

// Capture reads the given rectangle of the color contents of f, with
// (x, y) the bottom left corner, as an RGBA8 image whose first row is
// the top one. It makes f current.
func (f *FrameBuffer) Capture(x, y, width, height int) (*Image, error) {
	if f.deleted {
		return nil, ErrDeleted
	}
	if x < 0 || y < 0 || width < 0 || height < 0 {
		return nil, ErrRangeOutOfBounds
	}
	if f.id != 0 && (x+width > f.width || y+height > f.height) {
		return nil, ErrRangeOutOfBounds
	}
	f.MakeCurrent()
	img := NewImage(RGBA8, width, height)
	f.ctx.dev.ReadPixels(x, y, width, height, device.RGBA, device.UNSIGNED_BYTE, img.Pix)
	img.FlipRows()
	f.ctx.done("FrameBuffer.Capture")
	return img, nil
}

// Delete releases the framebuffer; its textures are not deleted.
// The default framebuffer can not be deleted.
func (f *FrameBuffer) Delete() {
	if f.deleted || f.id == 0 {
		return
	}
	f.deleted = true
	f.ctx.dev.DeleteFramebuffer(f.id)
	f.ctx.st.forget(FrameBufferResource, uint32(f.id))
	f.ctx.deleted(FrameBufferResource, uint32(f.id))
}
