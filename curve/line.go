// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "cogentcore.org/core/math32"

// Line is a straight line segment between two points.
type Line struct {
	// Start and End are the segment endpoints.
	Start, End math32.Vector3

	// Up is the up vector reported at every point.
	Up math32.Vector3
}

// NewLine returns a Line between the given points, with [DefaultUp].
func NewLine(start, end math32.Vector3) *Line {
	return &Line{Start: start, End: end, Up: DefaultUp}
}

func (ln *Line) Eval(t float32) (pos, tan, up math32.Vector3) {
	delta := ln.End.Sub(ln.Start)
	pos = ln.Start.Add(delta.MulScalar(t))
	tan = delta.Normal()
	up = ln.Up
	return
}

func (ln *Line) Length() float32 {
	return ln.End.Sub(ln.Start).Length()
}

func (ln *Line) Closed() bool {
	return false
}
