// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "cogentcore.org/core/math32"

// lengthSamplesPerSeg is the number of chord samples per spline segment
// used to approximate the arc length.
const lengthSamplesPerSeg = 16

// CatmullRom is a Catmull-Rom spline interpolating through the given
// control points. Open splines use reflected phantom endpoints so that
// the curve passes through the first and last points; closed splines
// wrap around through all points.
type CatmullRom struct {
	// Points are the control points, interpolated in order.
	Points []math32.Vector3

	// Loop closes the spline through all control points.
	Loop bool

	// Up is the up vector reported at every point.
	Up math32.Vector3

	// chord-sampled arc length approximation
	length float32
}

// NewCatmullRom returns a CatmullRom spline through the given control
// points (at least 2), open or closed, with [DefaultUp].
func NewCatmullRom(points []math32.Vector3, loop bool) *CatmullRom {
	cr := &CatmullRom{Points: points, Loop: loop, Up: DefaultUp}
	cr.updateLength()
	return cr
}

// updateLength recomputes the cached arc length approximation.
// Call after modifying Points or Loop.
func (cr *CatmullRom) updateLength() {
	cr.length = 0
	ns := cr.numSegs()
	if ns == 0 {
		return
	}
	n := ns * lengthSamplesPerSeg
	prev, _, _ := cr.Eval(0)
	for i := 1; i <= n; i++ {
		pos, _, _ := cr.Eval(float32(i) / float32(n))
		cr.length += pos.Sub(prev).Length()
		prev = pos
	}
}

func (cr *CatmullRom) numSegs() int {
	n := len(cr.Points)
	if n < 2 {
		return 0
	}
	if cr.Loop {
		return n
	}
	return n - 1
}

// ctrl returns control point i, wrapping for closed splines and
// reflecting across the endpoints for open ones.
func (cr *CatmullRom) ctrl(i int) math32.Vector3 {
	n := len(cr.Points)
	if cr.Loop {
		return cr.Points[((i%n)+n)%n]
	}
	if i < 0 {
		return cr.Points[0].MulScalar(2).Sub(cr.Points[1])
	}
	if i >= n {
		return cr.Points[n-1].MulScalar(2).Sub(cr.Points[n-2])
	}
	return cr.Points[i]
}

func (cr *CatmullRom) Eval(t float32) (pos, tan, up math32.Vector3) {
	up = cr.Up
	ns := cr.numSegs()
	if ns == 0 {
		if len(cr.Points) == 1 {
			pos = cr.Points[0]
		}
		return
	}
	if cr.Loop {
		t = math32.Mod(t, 1)
		if t < 0 {
			t++
		}
	} else {
		t = math32.Clamp(t, 0, 1)
	}
	u := t * float32(ns)
	si := int(math32.Floor(u))
	if si >= ns {
		si = ns - 1
	}
	s := u - float32(si)

	p0 := cr.ctrl(si - 1)
	p1 := cr.ctrl(si)
	p2 := cr.ctrl(si + 1)
	p3 := cr.ctrl(si + 2)

	// standard Catmull-Rom basis
	c1 := p2.Sub(p0)
	c2 := p0.MulScalar(2).Sub(p1.MulScalar(5)).Add(p2.MulScalar(4)).Sub(p3)
	c3 := p1.MulScalar(3).Sub(p0).Sub(p2.MulScalar(3)).Add(p3)

	pos = p1.MulScalar(2).Add(c1.MulScalar(s)).Add(c2.MulScalar(s * s)).Add(c3.MulScalar(s * s * s)).MulScalar(0.5)
	tan = c1.Add(c2.MulScalar(2 * s)).Add(c3.MulScalar(3 * s * s)).MulScalar(0.5)
	return
}

func (cr *CatmullRom) Length() float32 {
	return cr.length
}

func (cr *CatmullRom) Closed() bool {
	return cr.Loop
}
