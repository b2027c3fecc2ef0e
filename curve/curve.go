// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve provides 3D parametric curves for mesh extrusion.
// Any curve representation (Bezier, Catmull-Rom, polyline) can be used
// by implementing the [Curve] interface.
package curve

import "cogentcore.org/core/math32"

// Curve is a 3D parametric curve that can be sampled at any point
// along its parametric domain [0,1]. Implementations must be
// deterministic for a fixed t, and safe to call repeatedly:
// the extrusion code evaluates once per sampled cross-section.
type Curve interface {
	// Eval returns the position, tangent direction, and up vector
	// at parametric coordinate t in [0,1]. The tangent need not be
	// unit length but must point in the direction of increasing t.
	Eval(t float32) (pos, tan, up math32.Vector3)

	// Length returns the total arc length of the curve.
	Length() float32

	// Closed returns true if the curve forms a closed loop,
	// with Eval(0) and Eval(1) coincident.
	Closed() bool
}

// DefaultUp is the up vector used by curve types that do not
// compute their own orientation frame.
var DefaultUp = math32.Vec3(0, 1, 0)
