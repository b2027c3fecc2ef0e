// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objfile writes extruded meshes as Wavefront OBJ or binary
// STL files, for use outside of a live rendering host.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/splinemesh/extrude"
)

// Write writes the mesh in Wavefront OBJ format: positions, texture
// coordinates, normals, and triangle faces referencing all three.
func Write(w io.Writer, ms *extrude.Mesh) error {
	bw := bufio.NewWriter(w)
	nv := ms.NumVertex()
	for i := range nv {
		fmt.Fprintf(bw, "v %g %g %g\n", ms.Vertex[i*3], ms.Vertex[i*3+1], ms.Vertex[i*3+2])
	}
	for i := range nv {
		fmt.Fprintf(bw, "vt %g %g\n", ms.TexCoord[i*2], ms.TexCoord[i*2+1])
	}
	for i := range nv {
		fmt.Fprintf(bw, "vn %g %g %g\n", ms.Normal[i*3], ms.Normal[i*3+1], ms.Normal[i*3+2])
	}
	ni := ms.NumIndex()
	for i := 0; i < ni; i += 3 {
		// OBJ indexes are 1-based; positions, texture coordinates,
		// and normals share one index space here
		a, b, c := ms.Index(i)+1, ms.Index(i+1)+1, ms.Index(i+2)+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return bw.Flush()
}

// Save writes the mesh to the given file, choosing the format from
// the file extension: .obj or .stl.
func Save(ms *extrude.Mesh, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("objfile.Save: %w", err)
	}
	defer f.Close()
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".obj":
		err = Write(f, ms)
	case ".stl":
		err = WriteSTL(f, ms)
	default:
		err = fmt.Errorf("objfile.Save: unknown mesh file extension %q", ext)
	}
	return err
}
