// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex reads image files into [gpu.Image] pixel data for
// textures, writes framebuffer captures to image files, and converts
// between Go images and gpu.Image.
package imagex

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	iox "cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/glw/gpu"
)

// Open decodes the image file of the given name into the given pixel
// layout. If maxSize is positive, larger images are scaled down so that
// neither dimension exceeds it.
func Open(filename string, layout gpu.PixelLayouts, maxSize int) (*gpu.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, err := Read(file, layout, maxSize)
	if err != nil {
		return nil, fmt.Errorf("imagex: %s: %w", filename, err)
	}
	return img, nil
}

// OpenFS is [Open] reading from fsys.
func OpenFS(fsys fs.FS, filename string, layout gpu.PixelLayouts, maxSize int) (*gpu.Image, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, err := Read(file, layout, maxSize)
	if err != nil {
		return nil, fmt.Errorf("imagex: %s: %w", filename, err)
	}
	return img, nil
}

// Read decodes an image in any of the formats of
// [cogentcore.org/core/base/iox/imagex.Formats] into the given layout,
// scaled down to maxSize as with [Open].
func Read(r io.Reader, layout gpu.PixelLayouts, maxSize int) (*gpu.Image, error) {
	im, _, err := iox.Read(r)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 {
		im = ResizeMax(im, maxSize)
	}
	return ToGPUAs(im, layout)
}

// WriteFormat returns the format of image files with the extension of
// filename, or an error if images can not be written in it.
func WriteFormat(filename string) (iox.Formats, error) {
	f, err := iox.ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return iox.None, fmt.Errorf("imagex: %s: %w", filename, err)
	}
	if f == iox.WebP {
		return iox.None, fmt.Errorf("imagex: %s: %v images can not be written", filename, f)
	}
	return f, nil
}

// Save writes img, typically a framebuffer capture, to the image file
// of the given name, in the format of its extension.
func Save(img *gpu.Image, filename string) error {
	if _, err := WriteFormat(filename); err != nil {
		return err
	}
	im, err := FromGPU(img)
	if err != nil {
		return err
	}
	return iox.Save(im, filename)
}

// Write encodes img to w in the given format.
func Write(img *gpu.Image, w io.Writer, f iox.Formats) error {
	im, err := FromGPU(img)
	if err != nil {
		return err
	}
	return iox.Write(im, w, f)
}
