// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objfile

import (
	"bufio"
	"encoding/binary"
	"io"

	"cogentcore.org/splinemesh/extrude"

	"cogentcore.org/core/math32"
)

// stlHeaderSize is the fixed binary STL header size in bytes.
const stlHeaderSize = 80

// WriteSTL writes the mesh in binary STL format: one face normal and
// three vertex positions per triangle. STL has no normal or texture
// coordinate channels per vertex, so the per-vertex data beyond
// position is dropped and the face normal is recomputed from the
// triangle winding.
func WriteSTL(w io.Writer, ms *extrude.Mesh) error {
	bw := bufio.NewWriter(w)
	var hdr [stlHeaderSize]byte
	copy(hdr[:], "splinemesh")
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}
	ni := ms.NumIndex()
	if err := binary.Write(bw, binary.LittleEndian, uint32(ni/3)); err != nil {
		return err
	}
	var tri [12]float32
	for i := 0; i < ni; i += 3 {
		a := vertexAt(ms, ms.Index(i))
		b := vertexAt(ms, ms.Index(i+1))
		c := vertexAt(ms, ms.Index(i+2))
		fn := math32.Normal(a, b, c)
		tri = [12]float32{fn.X, fn.Y, fn.Z, a.X, a.Y, a.Z, b.X, b.Y, b.Z, c.X, c.Y, c.Z}
		if err := binary.Write(bw, binary.LittleEndian, tri[:]); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func vertexAt(ms *extrude.Mesh, i int) math32.Vector3 {
	return math32.Vec3(ms.Vertex[i*3], ms.Vertex[i*3+1], ms.Vertex[i*3+2])
}
