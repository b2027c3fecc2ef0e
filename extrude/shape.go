// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extrude

import (
	"cogentcore.org/splinemesh/curve"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// Shape is an interface for all shape-constructing elements that can
// write themselves into shared vertex, norm, texture, and index
// arrays at a given offset.
type Shape interface {
	// N returns the number of vertex, index points in this shape element.
	N() (numVertex, numIndex int)

	// Offsets returns the starting offsets for vertexes, indexes in full
	// shape array, in terms of points, not floats.
	Offsets() (vtxOffset, idxOffset int)

	// SetOffsets sets the starting offsets for vertexes, indexes in full
	// shape array.
	SetOffsets(vtxOffset, idxOffset int)

	// Set sets points in the given allocated arrays.
	Set(vertexArray, normArray, textureArray math32.ArrayF32, indexArray math32.ArrayU32)

	// BBox returns the bounding box for the shape.
	// This is only valid after Set has been called.
	BBox() math32.Box3
}

// ShapeBase is the base shape element.
type ShapeBase struct {
	// vertex offset, in points
	VtxOff int

	// index offset, in points
	IdxOff int

	// bounding box, only valid after Set
	CBBox math32.Box3
}

// Offsets returns starting offset for vertexes, indexes in full shape
// array, in terms of points, not floats.
func (sb *ShapeBase) Offsets() (vtxOffset, idxOffset int) {
	return sb.VtxOff, sb.IdxOff
}

// SetOffsets sets starting offsets for vertexes, indexes in full shape array.
func (sb *ShapeBase) SetOffsets(vtxOffset, idxOffset int) {
	sb.VtxOff, sb.IdxOff = vtxOffset, idxOffset
}

// BBox returns the bounding box for the shape, only valid after Set.
func (sb *ShapeBase) BBox() math32.Box3 {
	return sb.CBBox
}

// Ribbon is a [Shape] that extrudes a ribbon along a curve.
type Ribbon struct {
	ShapeBase

	// Curve is the curve to extrude along.
	Curve curve.Curve

	// Width is the distance from the centerline to each side.
	Width float32

	// Segments is the number of cross-sections along the curve.
	Segments int

	// Range is the parametric range of the curve to extrude.
	Range minmax.F32
}

// NewRibbon returns a Ribbon along the given curve with the given
// width and number of segments, spanning the full curve.
func NewRibbon(cv curve.Curve, width float32, segments int) *Ribbon {
	rb := &Ribbon{}
	rb.Defaults()
	rb.Curve = cv
	rb.Width = width
	rb.Segments = segments
	return rb
}

func (rb *Ribbon) Defaults() {
	rb.Width = 0.1
	rb.Segments = 32
	rb.Range = FullRange()
}

// settings returns the normalized extrusion settings for this ribbon.
func (rb *Ribbon) settings() Settings {
	return NewSettings(rb.Segments, rb.Curve.Closed(), rb.Range, rb.Width)
}

func (rb *Ribbon) N() (numVertex, numIndex int) {
	se := rb.settings()
	return se.Counts()
}

// Set sets ribbon points in the given allocated arrays.
func (rb *Ribbon) Set(vertexArray, normArray, textureArray math32.ArrayF32, indexArray math32.ArrayU32) {
	se := rb.settings()
	rb.CBBox = SetRibbon(rb.Curve, &se, vertexArray, normArray, textureArray, []uint32(indexArray), rb.VtxOff, rb.IdxOff)
}

// Group is a group of shapes packed into one set of shared arrays,
// with each shape's offsets assigned from the running prefix sums.
type Group struct {
	ShapeBase

	// list of shapes in group
	Shapes []Shape
}

// N returns the total number of vertex, index points in this group.
func (gp *Group) N() (numVertex, numIndex int) {
	for _, sh := range gp.Shapes {
		nv, ni := sh.N()
		numVertex += nv
		numIndex += ni
	}
	return
}

// Set sets points in the given allocated arrays, also updating the
// offsets of each shape from the running prefix sums.
func (gp *Group) Set(vertexArray, normArray, textureArray math32.ArrayF32, indexArray math32.ArrayU32) {
	vo := gp.VtxOff
	io := gp.IdxOff
	gp.CBBox.SetEmpty()
	for _, sh := range gp.Shapes {
		sh.SetOffsets(vo, io)
		sh.Set(vertexArray, normArray, textureArray, indexArray)
		gp.CBBox.ExpandByBox(sh.BBox())
		nv, ni := sh.N()
		vo += nv
		io += ni
	}
}
