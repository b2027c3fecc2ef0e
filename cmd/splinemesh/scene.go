// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/splinemesh/curve"

	"cogentcore.org/core/math32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Scene is a declarative list of curves to extrude, read from a TOML
// or YAML file.
type Scene struct {
	// Curves are the curves in the scene, in order.
	Curves []SceneCurve `toml:"curve" yaml:"curves"`
}

// SceneCurve describes one curve in a [Scene] file.
type SceneCurve struct {
	// Kind is the curve type: line, polyline, catmullrom, or circle.
	Kind string `toml:"kind" yaml:"kind"`

	// Points are the curve points: exactly 2 for a line, at least 2
	// for a polyline or catmullrom. Unused for a circle.
	Points [][]float32 `toml:"points" yaml:"points"`

	// Closed loops a polyline or catmullrom back to its start.
	Closed bool `toml:"closed" yaml:"closed"`

	// Center and Radius define a circle.
	Center []float32 `toml:"center" yaml:"center"`
	Radius float32   `toml:"radius" yaml:"radius"`
}

// OpenScene reads the given TOML or YAML scene file and returns its
// curves.
func OpenScene(fname string) ([]curve.Curve, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	sc := &Scene{}
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".toml":
		err = toml.Unmarshal(data, sc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, sc)
	default:
		err = fmt.Errorf("unknown scene file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", fname, err)
	}
	cvs := make([]curve.Curve, len(sc.Curves))
	for i, sd := range sc.Curves {
		cvs[i], err = sd.Curve()
		if err != nil {
			return nil, fmt.Errorf("scene: %s: curve %d: %w", fname, i, err)
		}
	}
	return cvs, nil
}

// Curve returns the [curve.Curve] this description defines.
func (sd *SceneCurve) Curve() (curve.Curve, error) {
	switch sd.Kind {
	case "line":
		pts, err := sd.points(2, 2)
		if err != nil {
			return nil, err
		}
		return curve.NewLine(pts[0], pts[1]), nil
	case "polyline":
		pts, err := sd.points(2, 0)
		if err != nil {
			return nil, err
		}
		return curve.NewPolyline(pts, sd.Closed), nil
	case "catmullrom":
		pts, err := sd.points(2, 0)
		if err != nil {
			return nil, err
		}
		return curve.NewCatmullRom(pts, sd.Closed), nil
	case "circle":
		if sd.Radius <= 0 {
			return nil, fmt.Errorf("circle needs a positive radius, got %g", sd.Radius)
		}
		ctr, err := vec3Of(sd.Center)
		if err != nil {
			return nil, err
		}
		return curve.NewCircle(ctr, sd.Radius), nil
	}
	return nil, fmt.Errorf("unknown curve kind %q", sd.Kind)
}

// points converts the raw point list, enforcing a minimum and, if
// nonzero, maximum count.
func (sd *SceneCurve) points(minPts, maxPts int) ([]math32.Vector3, error) {
	n := len(sd.Points)
	if n < minPts || (maxPts > 0 && n > maxPts) {
		if minPts == maxPts {
			return nil, fmt.Errorf("%s needs exactly %d points, got %d", sd.Kind, minPts, n)
		}
		return nil, fmt.Errorf("%s needs at least %d points, got %d", sd.Kind, minPts, n)
	}
	pts := make([]math32.Vector3, n)
	for i, p := range sd.Points {
		v, err := vec3Of(p)
		if err != nil {
			return nil, err
		}
		pts[i] = v
	}
	return pts, nil
}

func vec3Of(p []float32) (math32.Vector3, error) {
	if len(p) != 3 {
		return math32.Vector3{}, fmt.Errorf("points must have 3 components, got %d", len(p))
	}
	return math32.Vec3(p[0], p[1], p[2]), nil
}
