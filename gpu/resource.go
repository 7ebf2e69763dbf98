// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// ResourceKinds are the kinds of device resources.
type ResourceKinds int32 //enums:enum

const (
	BufferResource ResourceKinds = iota
	VertexArrayResource
	ShaderResource
	ProgramResource
	TextureResource
	FrameBufferResource
)

// RawResource identifies a device resource. An ID of 0 is never valid.
type RawResource struct {
	ID   uint32
	Kind ResourceKinds
}
