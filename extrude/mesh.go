// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extrude

import (
	"cogentcore.org/splinemesh/curve"

	"cogentcore.org/core/base/slicesx"
	"cogentcore.org/core/math32"
)

// Index32Min is the total vertex count at which the index buffer
// switches from 16-bit to 32-bit elements.
const Index32Min = 65535

// Mesh holds generated ribbon mesh data: per-vertex position, normal,
// and texture coordinate arrays (3, 3, and 2 float32 per vertex), and
// a single index buffer spanning one contiguous triangle group.
// Exactly one of Index16 and Index32 is non-nil, selected by
// [Mesh.SetSize] from the total vertex count. All buffers are sized
// up front and written once per extrusion; no state is retained
// between extrusions other than the data itself.
type Mesh struct {
	// Vertex are the vertex positions, math32.Vector3 packed.
	Vertex math32.ArrayF32

	// Normal are the unit vertex normals, math32.Vector3 packed.
	Normal math32.ArrayF32

	// TexCoord are the texture coordinates, math32.Vector2 packed:
	// u is the side index (0 or 1), v is the arc length position.
	TexCoord math32.ArrayF32

	// Index16 is the index buffer when fewer than [Index32Min]
	// vertices are present.
	Index16 []uint16

	// Index32 is the index buffer when Index16 is insufficient.
	Index32 math32.ArrayU32

	// Bounds is the bounding box of all vertex positions,
	// recomputed on every extrusion.
	Bounds math32.Box3
}

// NumVertex returns the number of vertex points.
func (ms *Mesh) NumVertex() int {
	return len(ms.Vertex) / 3
}

// NumIndex returns the number of indexes in whichever index buffer
// is allocated.
func (ms *Mesh) NumIndex() int {
	if ms.Index16 != nil {
		return len(ms.Index16)
	}
	return len(ms.Index32)
}

// Index returns the i-th index regardless of the index width.
func (ms *Mesh) Index(i int) int {
	if ms.Index16 != nil {
		return int(ms.Index16[i])
	}
	return int(ms.Index32[i])
}

// Clear removes all mesh content, retaining allocated capacity for
// the next extrusion.
func (ms *Mesh) Clear() {
	ms.Vertex = ms.Vertex[:0]
	ms.Normal = ms.Normal[:0]
	ms.TexCoord = ms.TexCoord[:0]
	ms.Index16 = nil
	ms.Index32 = nil
	ms.Bounds.SetEmpty()
}

// SetSize sizes all buffers for the given total vertex and index
// counts, selecting 16-bit indexes when the vertex count is below
// [Index32Min] and 32-bit otherwise.
func (ms *Mesh) SetSize(numVertex, numIndex int) {
	ms.Vertex = slicesx.SetLength(ms.Vertex, numVertex*3)
	ms.Normal = slicesx.SetLength(ms.Normal, numVertex*3)
	ms.TexCoord = slicesx.SetLength(ms.TexCoord, numVertex*2)
	if numVertex < Index32Min {
		ms.Index16 = slicesx.SetLength(ms.Index16, numIndex)
		ms.Index32 = nil
	} else {
		ms.Index32 = slicesx.SetLength(ms.Index32, numIndex)
		ms.Index16 = nil
	}
}

// setRibbon rasterizes one curve into this mesh's buffers at the
// given offsets, dispatching on the allocated index width.
func (ms *Mesh) setRibbon(cv curve.Curve, se *Settings, vtxOff, idxOff int) math32.Box3 {
	if ms.Index16 != nil {
		return SetRibbon(cv, se, ms.Vertex, ms.Normal, ms.TexCoord, ms.Index16, vtxOff, idxOff)
	}
	return SetRibbon(cv, se, ms.Vertex, ms.Normal, ms.TexCoord, []uint32(ms.Index32), vtxOff, idxOff)
}
