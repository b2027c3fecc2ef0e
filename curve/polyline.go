// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "cogentcore.org/core/math32"

// Polyline is an ordered sequence of points forming a path,
// parameterized by arc length so that uniform steps in t move
// uniform distances along the path. If Loop is set, the path
// closes back from the last point to the first.
type Polyline struct {
	// Points are the path points, in order.
	Points []math32.Vector3

	// Loop closes the path from the last point back to the first.
	Loop bool

	// Up is the up vector reported at every point.
	Up math32.Vector3

	// cumulative arc length at the end of each segment
	lens []float32

	total float32
}

// NewPolyline returns a Polyline through the given points,
// open or closed, with [DefaultUp].
func NewPolyline(points []math32.Vector3, loop bool) *Polyline {
	pl := &Polyline{Points: points, Loop: loop, Up: DefaultUp}
	pl.updateLengths()
	return pl
}

// updateLengths recomputes the cached per-segment arc lengths.
// Call after modifying Points or Loop.
func (pl *Polyline) updateLengths() {
	ns := pl.numSegs()
	pl.lens = make([]float32, ns)
	pl.total = 0
	for i := 0; i < ns; i++ {
		pl.total += pl.point(i + 1).Sub(pl.point(i)).Length()
		pl.lens[i] = pl.total
	}
}

func (pl *Polyline) numSegs() int {
	n := len(pl.Points)
	if n < 2 {
		return 0
	}
	if pl.Loop {
		return n
	}
	return n - 1
}

// point returns the i-th path point, wrapping for the loop-closing segment.
func (pl *Polyline) point(i int) math32.Vector3 {
	return pl.Points[i%len(pl.Points)]
}

func (pl *Polyline) Eval(t float32) (pos, tan, up math32.Vector3) {
	up = pl.Up
	ns := pl.numSegs()
	if ns == 0 {
		if len(pl.Points) == 1 {
			pos = pl.Points[0]
		}
		return
	}
	if pl.Loop {
		t = math32.Mod(t, 1)
		if t < 0 {
			t++
		}
	} else {
		t = math32.Clamp(t, 0, 1)
	}
	target := t * pl.total
	prev := float32(0)
	for i := 0; i < ns; i++ {
		if pl.lens[i] >= target || i == ns-1 {
			a, b := pl.point(i), pl.point(i+1)
			seg := pl.lens[i] - prev
			f := float32(0)
			if seg > 0 {
				f = (target - prev) / seg
			}
			pos = a.Lerp(b, f)
			tan = b.Sub(a).Normal()
			return
		}
		prev = pl.lens[i]
	}
	return
}

func (pl *Polyline) Length() float32 {
	return pl.total
}

func (pl *Polyline) Closed() bool {
	return pl.Loop
}
