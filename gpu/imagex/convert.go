// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"encoding/binary"
	"image"
	"image/color"

	"cogentcore.org/glw/gpu"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
)

// LayoutOf returns the pixel layout that holds src without loss:
// Mono8 for gray, Mono16 for 16-bit gray, RGBA16 for 16-bit color and
// RGBA8 for everything else.
func LayoutOf(src image.Image) gpu.PixelLayouts {
	switch src.(type) {
	case *image.Gray:
		return gpu.Mono8
	case *image.Gray16:
		return gpu.Mono16
	case *image.RGBA64, *image.NRGBA64:
		return gpu.RGBA16
	}
	return gpu.RGBA8
}

// ToGPU converts src to the pixel layout returned by [LayoutOf].
func ToGPU(src image.Image) *gpu.Image {
	img, _ := ToGPUAs(src, LayoutOf(src))
	return img
}

// ToGPUAs converts src to the given pixel layout. Rows are stored top
// first; 16-bit channels are stored in native byte order; color is
// not premultiplied. Float layouts return
// [gpu.ErrUnsupportedImageLayout].
func ToGPUAs(src image.Image, layout gpu.PixelLayouts) (*gpu.Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if layout == gpu.RGBA8 {
		if nrgba, ok := src.(*image.NRGBA); ok {
			return packedRGBA8(nrgba.Pix, nrgba.Stride, w, h), nil
		}
	}
	var px func(dst []byte, c color.Color)
	switch layout {
	case gpu.Mono8:
		px = func(dst []byte, c color.Color) {
			dst[0] = color.GrayModel.Convert(c).(color.Gray).Y
		}
	case gpu.MonoAlpha8:
		px = func(dst []byte, c color.Color) {
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			dst[0] = color.GrayModel.Convert(color.NRGBA{n.R, n.G, n.B, 255}).(color.Gray).Y
			dst[1] = n.A
		}
	case gpu.RGB8:
		px = func(dst []byte, c color.Color) {
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			dst[0], dst[1], dst[2] = n.R, n.G, n.B
		}
	case gpu.RGBA8:
		px = func(dst []byte, c color.Color) {
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			dst[0], dst[1], dst[2], dst[3] = n.R, n.G, n.B, n.A
		}
	case gpu.Mono16:
		px = func(dst []byte, c color.Color) {
			binary.NativeEndian.PutUint16(dst, color.Gray16Model.Convert(c).(color.Gray16).Y)
		}
	case gpu.RGB16, gpu.RGBA16:
		n := layout.Channels()
		px = func(dst []byte, c color.Color) {
			v := color.NRGBA64Model.Convert(c).(color.NRGBA64)
			ch := [4]uint16{v.R, v.G, v.B, v.A}
			for i := range n {
				binary.NativeEndian.PutUint16(dst[2*i:], ch[i])
			}
		}
	default:
		return nil, gpu.ErrUnsupportedImageLayout
	}
	img := gpu.NewImage(layout, w, h)
	ps := layout.PixelSize()
	for y := range h {
		row := img.Pix[y*img.Stride():]
		for x := range w {
			px(row[x*ps:], src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return img, nil
}

func packedRGBA8(pix []byte, stride, w, h int) *gpu.Image {
	img := gpu.NewImage(gpu.RGBA8, w, h)
	for y := range h {
		copy(img.Pix[y*img.Stride():(y+1)*img.Stride()], pix[y*stride:])
	}
	return img
}

// FromGPU returns img as a Go image: Mono8 as [*image.Gray], Mono16 as
// [*image.Gray16], RGB8 and RGBA8 as [*image.NRGBA], RGB16 and RGBA16
// as [*image.NRGBA64]. Other layouts return
// [gpu.ErrUnsupportedImageLayout].
func FromGPU(img *gpu.Image) (image.Image, error) {
	r := image.Rect(0, 0, img.Width, img.Height)
	ps := img.Layout.PixelSize()
	switch img.Layout {
	case gpu.Mono8:
		g := image.NewGray(r)
		for y := range img.Height {
			copy(g.Pix[y*g.Stride:], img.Pix[y*img.Stride():(y+1)*img.Stride()])
		}
		return g, nil
	case gpu.Mono16:
		g := image.NewGray16(r)
		for y := range img.Height {
			for x := range img.Width {
				v := binary.NativeEndian.Uint16(img.Pix[y*img.Stride()+x*ps:])
				g.SetGray16(x, y, color.Gray16{v})
			}
		}
		return g, nil
	case gpu.RGB8, gpu.RGBA8:
		n := image.NewNRGBA(r)
		for y := range img.Height {
			for x := range img.Width {
				p := img.Pix[y*img.Stride()+x*ps:]
				c := color.NRGBA{p[0], p[1], p[2], 255}
				if ps == 4 {
					c.A = p[3]
				}
				n.SetNRGBA(x, y, c)
			}
		}
		return n, nil
	case gpu.RGB16, gpu.RGBA16:
		n := image.NewNRGBA64(r)
		for y := range img.Height {
			for x := range img.Width {
				p := img.Pix[y*img.Stride()+x*ps:]
				c := color.NRGBA64{
					binary.NativeEndian.Uint16(p),
					binary.NativeEndian.Uint16(p[2:]),
					binary.NativeEndian.Uint16(p[4:]),
					0xffff,
				}
				if ps == 8 {
					c.A = binary.NativeEndian.Uint16(p[6:])
				}
				n.SetNRGBA64(x, y, c)
			}
		}
		return n, nil
	}
	return nil, gpu.ErrUnsupportedImageLayout
}

// AsRGBA returns src as an RGBA image: src itself if it already is
// one, otherwise a copy.
func AsRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	return clone.AsRGBA(src)
}

// SizeMax returns the size of an image of size sz scaled so that its
// largest dimension is maxSize.
func SizeMax(sz image.Point, maxSize int) image.Point {
	tsz := sz
	if sz.X > sz.Y {
		tsz.X = maxSize
		tsz.Y = int(float32(sz.Y) * (float32(tsz.X) / float32(sz.X)))
	} else {
		tsz.Y = maxSize
		tsz.X = int(float32(sz.X) * (float32(tsz.Y) / float32(sz.Y)))
	}
	return tsz
}

// ResizeMax scales src down so that neither dimension exceeds maxSize,
// typically the largest texture size of the device. Smaller images are
// returned unchanged.
func ResizeMax(src image.Image, maxSize int) image.Image {
	sz := src.Bounds().Size()
	if sz.X <= maxSize && sz.Y <= maxSize {
		return src
	}
	tsz := SizeMax(sz, maxSize)
	return transform.Resize(src, max(tsz.X, 1), max(tsz.Y, 1), transform.Linear)
}
