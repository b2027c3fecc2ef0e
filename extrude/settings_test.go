// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extrude

import (
	"testing"

	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestNewSettingsClamps(t *testing.T) {
	se := NewSettings(0, false, FullRange(), 1)
	assert.Equal(t, MinSegments, se.Segments)

	se = NewSettings(1_000_000, false, FullRange(), 1)
	assert.Equal(t, MaxSegments, se.Segments)

	se = NewSettings(16, false, FullRange(), 0)
	assert.Equal(t, float32(MinWidth), se.Width)

	se = NewSettings(16, false, FullRange(), 1.0e9)
	assert.Equal(t, float32(MaxWidth), se.Width)
}

func TestNewSettingsRangeSorted(t *testing.T) {
	se := NewSettings(16, false, minmax.F32{Min: 0.8, Max: 0.2}, 1)
	assert.Equal(t, float32(0.2), se.Range.Min)
	assert.Equal(t, float32(0.8), se.Range.Max)
}

func TestNewSettingsClosed(t *testing.T) {
	// closed curve, full range: closed strip
	se := NewSettings(16, true, FullRange(), 1)
	assert.True(t, se.Closed)

	// closed curve, partial range: open strip
	se = NewSettings(16, true, minmax.F32{Min: 0, Max: 0.5}, 1)
	assert.False(t, se.Closed)

	// open curve is never closed, even over the full range
	se = NewSettings(16, false, FullRange(), 1)
	assert.False(t, se.Closed)

	// reversed full range still counts as full after sorting
	se = NewSettings(16, true, minmax.F32{Min: 1, Max: 0}, 1)
	assert.True(t, se.Closed)
}

func TestCounts(t *testing.T) {
	for _, segs := range []int{2, 3, 16, 4096} {
		se := NewSettings(segs, false, FullRange(), 1)
		nv, ni := se.Counts()
		assert.Equal(t, 2*segs, nv)
		assert.Equal(t, 6*(segs-1), ni)

		se = NewSettings(segs, true, FullRange(), 1)
		nv, ni = se.Counts()
		assert.Equal(t, 2*segs, nv)
		assert.Equal(t, 6*segs, ni)
	}

	// query entry point, no extrusion needed
	nv, ni := Counts(8, true, minmax.F32{Min: 0, Max: 0.5})
	assert.Equal(t, 16, nv)
	assert.Equal(t, 42, ni)
}

func TestSegmentsForLength(t *testing.T) {
	assert.Equal(t, 10, SegmentsForLength(10, 1, FullRange()))
	assert.Equal(t, 5, SegmentsForLength(10, 1, minmax.F32{Min: 0, Max: 0.5}))
	assert.Equal(t, 40, SegmentsForLength(10, 4, FullRange()))

	// never below 1, including degenerate lengths and reversed ranges
	assert.Equal(t, 1, SegmentsForLength(0, 1, FullRange()))
	assert.Equal(t, 5, SegmentsForLength(10, 1, minmax.F32{Min: 0.5, Max: 0}))
}
