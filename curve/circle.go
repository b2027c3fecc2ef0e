// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "cogentcore.org/core/math32"

// Circle is a closed circle of the given radius in the XZ plane,
// centered at Center, traversed counterclockwise when viewed from +Y.
type Circle struct {
	// Center is the center of the circle.
	Center math32.Vector3

	// Radius is the radius of the circle.
	Radius float32
}

// NewCircle returns a Circle with the given center and radius.
func NewCircle(center math32.Vector3, radius float32) *Circle {
	return &Circle{Center: center, Radius: radius}
}

func (ci *Circle) Eval(t float32) (pos, tan, up math32.Vector3) {
	ang := 2 * math32.Pi * t
	sin, cos := math32.Sincos(ang)
	pos = ci.Center.Add(math32.Vec3(cos, 0, sin).MulScalar(ci.Radius))
	tan = math32.Vec3(-sin, 0, cos)
	up = math32.Vec3(0, 1, 0)
	return
}

func (ci *Circle) Length() float32 {
	return 2 * math32.Pi * ci.Radius
}

func (ci *Circle) Closed() bool {
	return true
}
