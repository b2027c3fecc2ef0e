// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extrude

import (
	"fmt"

	"cogentcore.org/splinemesh/curve"

	"cogentcore.org/core/math32"
)

// Index is the set of element types usable in a ribbon index buffer.
// 16-bit indexes are sufficient up to 65534 total vertices.
type Index interface {
	~uint16 | ~uint32
}

const (
	// degenTol is the squared tangent length below which the
	// cross-section orientation is considered undefined.
	degenTol = 1.0e-10

	// nudge is the parametric offset used to re-sample the curve
	// next to a degenerate point.
	nudge = 1.0e-4
)

// SetRibbon sets ribbon vertex, norm, tex, index data for one curve at
// the given starting vertex index (multiply by 3 for the float offset
// in the vertex array) and starting element index, per the given
// settings. Cross-sections are evenly spaced over the parametric
// range; when closed, the last section connects back to the first
// instead of duplicating it. Returns the bounding box of the written
// vertices.
//
// Segment counts below [MinSegments] and undersized arrays are caller
// contract violations and panic: [NewSettings] and [Mesh.SetSize]
// make them impossible by construction.
func SetRibbon[T Index](cv curve.Curve, se *Settings, vertexArray, normArray, textureArray math32.ArrayF32, indexArray []T, vtxOff, idxOff int) math32.Box3 {
	if se.Segments < MinSegments {
		panic(fmt.Sprintf("extrude.SetRibbon: segments must be at least %d, got %d", MinSegments, se.Segments))
	}
	numVertex, numIndex := se.Counts()
	if len(vertexArray) < (vtxOff+numVertex)*3 {
		panic(fmt.Sprintf("extrude.SetRibbon: vertex array length %d, need %d", len(vertexArray), (vtxOff+numVertex)*3))
	}
	if len(normArray) < (vtxOff+numVertex)*3 {
		panic(fmt.Sprintf("extrude.SetRibbon: norm array length %d, need %d", len(normArray), (vtxOff+numVertex)*3))
	}
	if len(textureArray) < (vtxOff+numVertex)*2 {
		panic(fmt.Sprintf("extrude.SetRibbon: texture array length %d, need %d", len(textureArray), (vtxOff+numVertex)*2))
	}
	if len(indexArray) < idxOff+numIndex {
		panic(fmt.Sprintf("extrude.SetRibbon: index array length %d, need %d", len(indexArray), idxOff+numIndex))
	}

	clen := cv.Length()
	div := float32(se.Segments - 1)
	if se.Closed {
		div = float32(se.Segments)
	}
	bb := math32.B3Empty()
	for i := range se.Segments {
		t := se.Range.Min + (float32(i)/div)*se.Range.Range()
		setSection(cv, se, t, clen, vertexArray, normArray, textureArray, vtxOff+2*i, &bb)
	}
	setRibbonIndexes(se, indexArray, vtxOff, idxOff)
	return bb
}

// setSection writes the two side vertices for the cross-section at t:
// side 0 at +Width along the side direction, side 1 at -Width.
// The side direction is up cross tangent, normals point away from the
// curve centerline, and the texture v coordinate is the arc length
// position t * curve length.
func setSection(cv curve.Curve, se *Settings, t, clen float32, vertexArray, normArray, textureArray math32.ArrayF32, vi int, bb *math32.Box3) {
	pos, tan, up := evalFrame(cv, se, t)
	side := up.Cross(tan).Normal()
	for s := range 2 {
		vp := pos.Add(side.MulScalar(se.Width * float32(1-2*s)))
		vertexArray.SetVector3((vi+s)*3, vp)
		normArray.SetVector3((vi+s)*3, vp.Sub(pos).Normal())
		textureArray.Set((vi+s)*2, float32(s), t*clen)
		bb.ExpandByPoint(vp)
	}
}

// evalFrame evaluates the curve at t, wrapping t for closed curves and
// clamping it otherwise. A near-zero or NaN tangent leaves the
// cross-section orientation undefined, so the curve is re-evaluated a
// small parametric step away from the nearer range boundary. This is a
// best-effort heuristic: at a true cusp the nudged tangent is still an
// approximation of the local direction.
func evalFrame(cv curve.Curve, se *Settings, t float32) (pos, tan, up math32.Vector3) {
	pos, tan, up = cv.Eval(wrapParam(cv, t))
	d := tan.LengthSquared()
	if d < degenTol || math32.IsNaN(d) {
		tn := t - nudge
		if t-se.Range.Min < se.Range.Max-t {
			tn = t + nudge
		}
		_, tan, up = cv.Eval(wrapParam(cv, tn))
	}
	tan = tan.Normal()
	return
}

// wrapParam wraps t into [0,1) for closed curves, clamps to [0,1] otherwise.
func wrapParam(cv curve.Curve, t float32) float32 {
	if cv.Closed() {
		t = math32.Mod(t, 1)
		if t < 0 {
			t++
		}
		return t
	}
	return math32.Clamp(t, 0, 1)
}

// setRibbonIndexes writes the two triangles of each quad spanning
// consecutive cross-sections, wrapping the final quad back to the
// first cross-section when closed. The winding is consistent across
// the strip and matches the side-0 / side-1 vertex layout written by
// [SetRibbon].
func setRibbonIndexes[T Index](se *Settings, indexArray []T, vtxOff, idxOff int) {
	quads := se.Segments
	if !se.Closed {
		quads--
	}
	ii := idxOff
	for i := range quads {
		ni := (i + 1) % se.Segments
		a := T(vtxOff + 2*i)
		b := T(vtxOff + 2*i + 1)
		c := T(vtxOff + 2*ni)
		d := T(vtxOff + 2*ni + 1)
		indexArray[ii] = a
		indexArray[ii+1] = b
		indexArray[ii+2] = c
		indexArray[ii+3] = b
		indexArray[ii+4] = d
		indexArray[ii+5] = c
		ii += 6
	}
}
