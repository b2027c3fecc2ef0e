// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extrude generates ribbon meshes that follow parametric
// curves: each curve is sampled at evenly spaced cross-sections, two
// mirrored side vertices are emitted per section at the given width
// from the centerline, and consecutive sections are connected by
// quads, wrapping around for closed curves. Multiple curves can be
// batched into one [Mesh] with shared vertex and index buffers.
//
// The extrusion is a pure function of (curves, width, segments,
// range): it is single-threaded, allocates all buffers before
// writing, and retains no state between calls, so hosts can re-invoke
// it freely on change notifications, timers, or on demand.
package extrude

//go:generate core generate

import (
	"log/slog"

	"cogentcore.org/splinemesh/curve"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// Extrude generates ribbons for all of the given curves into ms,
// sharing one vertex and one index buffer, replacing any prior
// content. The number of segments for each curve is its arc length
// over the extruded range times segsPerUnit. The index width for the
// whole batch is selected from the total vertex count. An empty curve
// list is logged and leaves the mesh cleared.
func Extrude(ms *Mesh, cvs []curve.Curve, width, segsPerUnit float32, rng minmax.F32) {
	ms.Clear()
	if len(cvs) == 0 {
		slog.Error("extrude.Extrude: no curves to extrude")
		return
	}
	ses := make([]Settings, len(cvs))
	totVtx, totIdx := 0, 0
	for i, cv := range cvs {
		segs := SegmentsForLength(cv.Length(), segsPerUnit, rng)
		ses[i] = NewSettings(segs, cv.Closed(), rng, width)
		nv, ni := ses[i].Counts()
		totVtx += nv
		totIdx += ni
	}
	ms.SetSize(totVtx, totIdx)
	bb := math32.B3Empty()
	vtxOff, idxOff := 0, 0
	for i, cv := range cvs {
		bb.ExpandByBox(ms.setRibbon(cv, &ses[i], vtxOff, idxOff))
		nv, ni := ses[i].Counts()
		vtxOff += nv
		idxOff += ni
	}
	ms.Bounds = bb
}

// ExtrudeCurve generates a ribbon for one curve into ms with an
// explicit segment count, replacing any prior content. A nil curve is
// logged and leaves the mesh cleared.
func ExtrudeCurve(ms *Mesh, cv curve.Curve, width float32, segments int, rng minmax.F32) {
	ms.Clear()
	if cv == nil {
		slog.Error("extrude.ExtrudeCurve: no curve to extrude")
		return
	}
	se := NewSettings(segments, cv.Closed(), rng, width)
	nv, ni := se.Counts()
	ms.SetSize(nv, ni)
	ms.Bounds = ms.setRibbon(cv, &se, 0, 0)
}

// ExtrudeCurveDensity generates a ribbon for one curve into ms with
// the segment count driven by arc length times segsPerUnit, replacing
// any prior content. A nil curve is logged and leaves the mesh cleared.
func ExtrudeCurveDensity(ms *Mesh, cv curve.Curve, width, segsPerUnit float32, rng minmax.F32) {
	ms.Clear()
	if cv == nil {
		slog.Error("extrude.ExtrudeCurveDensity: no curve to extrude")
		return
	}
	Extrude(ms, []curve.Curve{cv}, width, segsPerUnit, rng)
}

// Counts returns the vertex and index counts that extruding with the
// given parameters would produce, without extruding: for pre-sizing
// by callers managing their own buffers.
func Counts(segments int, closed bool, rng minmax.F32) (numVertex, numIndex int) {
	se := NewSettings(segments, closed, rng, 1)
	return se.Counts()
}
