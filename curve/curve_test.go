// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-5

func assertEqualVector(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, want.X, got.X, tol)
	tolassert.EqualTol(t, want.Y, got.Y, tol)
	tolassert.EqualTol(t, want.Z, got.Z, tol)
}

func TestLine(t *testing.T) {
	ln := NewLine(math32.Vec3(0, 0, 0), math32.Vec3(10, 0, 0))
	assert.False(t, ln.Closed())
	tolassert.EqualTol(t, 10, ln.Length(), tol)

	pos, tan, up := ln.Eval(0.25)
	assertEqualVector(t, math32.Vec3(2.5, 0, 0), pos)
	assertEqualVector(t, math32.Vec3(1, 0, 0), tan)
	assertEqualVector(t, math32.Vec3(0, 1, 0), up)
}

func TestPolylineArcLength(t *testing.T) {
	// L-shaped path: two segments of very different point spacing,
	// but arc-length parameterization makes t uniform in distance.
	pl := NewPolyline([]math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(3, 0, 0),
		math32.Vec3(3, 0, 1),
	}, false)
	tolassert.EqualTol(t, 4, pl.Length(), tol)

	pos, tan, _ := pl.Eval(0.5)
	assertEqualVector(t, math32.Vec3(2, 0, 0), pos)
	assertEqualVector(t, math32.Vec3(1, 0, 0), tan)

	pos, tan, _ = pl.Eval(0.875)
	assertEqualVector(t, math32.Vec3(3, 0, 0.5), pos)
	assertEqualVector(t, math32.Vec3(0, 0, 1), tan)

	pos, _, _ = pl.Eval(1)
	assertEqualVector(t, math32.Vec3(3, 0, 1), pos)
}

func TestPolylineLoop(t *testing.T) {
	// unit square loop
	pl := NewPolyline([]math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(1, 0, 1),
		math32.Vec3(0, 0, 1),
	}, true)
	assert.True(t, pl.Closed())
	tolassert.EqualTol(t, 4, pl.Length(), tol)

	// wraps: t=1 is back at the start
	p0, _, _ := pl.Eval(0)
	p1, _, _ := pl.Eval(1)
	assertEqualVector(t, p0, p1)

	// closing segment heads back toward the first point
	_, tan, _ := pl.Eval(0.9)
	assertEqualVector(t, math32.Vec3(0, 0, -1), tan)
}

func TestCatmullRomEndpoints(t *testing.T) {
	pts := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 1, 0),
		math32.Vec3(2, 0, 0),
		math32.Vec3(3, 1, 0),
	}
	cr := NewCatmullRom(pts, false)
	assert.False(t, cr.Closed())

	// interpolates through all control points
	ns := len(pts) - 1
	for i, p := range pts {
		pos, _, _ := cr.Eval(float32(i) / float32(ns))
		assertEqualVector(t, p, pos)
	}

	// length is at least the chord length through the points
	chord := float32(0)
	for i := 1; i < len(pts); i++ {
		chord += pts[i].Sub(pts[i-1]).Length()
	}
	assert.GreaterOrEqual(t, cr.Length(), chord-tol)
}

func TestCatmullRomLoop(t *testing.T) {
	cr := NewCatmullRom([]math32.Vector3{
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 0, 1),
		math32.Vec3(-1, 0, 0),
		math32.Vec3(0, 0, -1),
	}, true)
	assert.True(t, cr.Closed())

	p0, t0, _ := cr.Eval(0)
	p1, t1, _ := cr.Eval(1)
	assertEqualVector(t, p0, p1)
	assertEqualVector(t, t0.Normal(), t1.Normal())
}

func TestCatmullRomTangent(t *testing.T) {
	cr := NewCatmullRom([]math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 1, 0),
		math32.Vec3(2, 0, 0),
	}, false)

	// tangent matches a central difference approximation in direction.
	// the comparison tolerance follows the difference step: the float32
	// approximation is only accurate to about dt, notably at the segment
	// boundary tv=0.5.
	const dt = 1.0e-3
	for _, tv := range []float32{0.2, 0.5, 0.8} {
		p0, _, _ := cr.Eval(tv - dt)
		p1, _, _ := cr.Eval(tv + dt)
		approx := p1.Sub(p0).Normal()
		_, tan, _ := cr.Eval(tv)
		tn := tan.Normal()
		tolassert.EqualTol(t, approx.X, tn.X, dt)
		tolassert.EqualTol(t, approx.Y, tn.Y, dt)
		tolassert.EqualTol(t, approx.Z, tn.Z, dt)
	}
}

func TestCircle(t *testing.T) {
	ci := NewCircle(math32.Vec3(0, 0, 0), 2)
	assert.True(t, ci.Closed())
	tolassert.EqualTol(t, 4*math32.Pi, ci.Length(), tol)

	pos, tan, _ := ci.Eval(0)
	assertEqualVector(t, math32.Vec3(2, 0, 0), pos)
	assertEqualVector(t, math32.Vec3(0, 0, 1), tan)

	pos, _, _ = ci.Eval(0.5)
	assertEqualVector(t, math32.Vec3(-2, 0, 0), pos)

	// unit tangent everywhere
	for _, tv := range []float32{0.1, 0.3, 0.7, 0.9} {
		_, tan, _ := ci.Eval(tv)
		tolassert.EqualTol(t, 1, tan.Length(), tol)
	}
}
