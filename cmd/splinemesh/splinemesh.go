// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command splinemesh extrudes ribbon meshes along the curves in a
// scene file, writing the result as an OBJ or STL mesh file.
package main

import (
	"log/slog"

	"cogentcore.org/splinemesh/extrude"
	"cogentcore.org/splinemesh/objfile"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32/minmax"
	"github.com/fsnotify/fsnotify"
)

// Config is the configuration information for the splinemesh cli.
type Config struct {

	// Input is the TOML or YAML scene file listing the curves to extrude.
	Input string `posarg:"0"`

	// Output is the mesh file to write; the format is chosen by the
	// extension, .obj or .stl.
	Output string `flag:"o,output" default:"mesh.obj"`

	// Width is the distance from the curve centerline to each ribbon side.
	Width float32 `flag:"w,width" default:"0.5"`

	// Density is the number of segments per unit of curve length.
	Density float32 `flag:"d,density" default:"4"`

	// RangeMin and RangeMax bound the parametric range to extrude.
	RangeMin float32 `default:"0"`
	RangeMax float32 `default:"1"`
}

func main() {
	opts := cli.DefaultOptions("splinemesh", "Splinemesh extrudes ribbon meshes along the curves in a scene file, writing the result as an OBJ or STL mesh file.")
	cli.Run(opts, &Config{}, Extrude, Watch)
}

// Extrude reads the scene file, extrudes all of its curves into one
// mesh, and writes the output file.
func Extrude(c *Config) error {
	cvs, err := OpenScene(c.Input)
	if err != nil {
		return err
	}
	ms := &extrude.Mesh{}
	extrude.Extrude(ms, cvs, c.Width, c.Density, minmax.F32{Min: c.RangeMin, Max: c.RangeMax})
	if err := objfile.Save(ms, c.Output); err != nil {
		return err
	}
	slog.Info("splinemesh: wrote mesh", "file", c.Output, "curves", len(cvs), "vertices", ms.NumVertex(), "indexes", ms.NumIndex())
	return nil
}

// Watch extrudes the scene once and then re-extrudes it whenever the
// scene file changes, until interrupted.
func Watch(c *Config) error {
	errors.Log(Extrude(c))
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(c.Input); err != nil {
		return err
	}
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				errors.Log(Extrude(c))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("splinemesh: watch error", "err", err)
		}
	}
}
