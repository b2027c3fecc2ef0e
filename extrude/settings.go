// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extrude

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

const (
	// MinSegments is the minimum number of cross-sections in a ribbon.
	MinSegments = 2

	// MaxSegments is the maximum number of cross-sections in a ribbon.
	MaxSegments = 4096

	// MinWidth and MaxWidth bound the ribbon half-width.
	MinWidth = 1.0e-5
	MaxWidth = 1.0e4

	// closedTol is the tolerance within which a parametric range
	// counts as spanning the full curve.
	closedTol = 1.0e-5
)

// Settings are the normalized parameters for extruding one ribbon
// along one curve. Always construct via [NewSettings], which clamps
// and sorts everything: Segments is in [MinSegments, MaxSegments],
// Width in [MinWidth, MaxWidth], Range.Min <= Range.Max, and Closed
// is only set when the curve itself is closed and the range spans
// the full curve.
type Settings struct {
	// Segments is the number of cross-sections sampled along the curve.
	Segments int

	// Range is the parametric range of the curve to extrude.
	Range minmax.F32

	// Closed connects the last cross-section back to the first.
	Closed bool

	// Width is the distance from the curve centerline to each side.
	Width float32
}

// NewSettings returns normalized extrusion settings for the given
// requested segment count, curve closed flag, parametric range, and
// width. The ribbon is only closed when the curve is closed and the
// range spans the full [0,1] domain: a partial range of a closed
// curve produces an open-ended strip.
func NewSettings(segments int, closed bool, rng minmax.F32, width float32) Settings {
	se := Settings{}
	se.Segments = math32.Clamp(segments, MinSegments, MaxSegments)
	if rng.Min > rng.Max {
		rng.Min, rng.Max = rng.Max, rng.Min
	}
	se.Range = rng
	se.Closed = closed && math32.Abs(1-rng.Range()) < closedTol
	se.Width = math32.Clamp(width, MinWidth, MaxWidth)
	return se
}

// Counts returns the number of vertex and index points needed for
// these settings: 2 vertices per cross-section, and 6 indexes (one
// quad) per segment span, including the wraparound span when closed.
func (se *Settings) Counts() (numVertex, numIndex int) {
	numVertex = 2 * se.Segments
	quads := se.Segments
	if !se.Closed {
		quads--
	}
	numIndex = 6 * quads
	return
}

// FullRange returns the parametric range spanning the whole curve.
func FullRange() minmax.F32 {
	return minmax.F32{Min: 0, Max: 1}
}

// SegmentsForLength returns the number of segments for a curve of the
// given arc length extruded over the given parametric range at the
// given sampling density (segments per unit length). Always at least 1;
// [NewSettings] raises it to [MinSegments].
func SegmentsForLength(length, segsPerUnit float32, rng minmax.F32) int {
	n := int(math32.Ceil(length * math32.Abs(rng.Range()) * segsPerUnit))
	return max(1, n)
}
