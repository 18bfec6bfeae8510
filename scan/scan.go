// Package scan classifies float slices in bulk, producing index bitmaps of
// the special values an interchange consumer usually needs to filter on.
// The bitmaps are roaring bitmaps, so reports over large mostly-finite
// buffers stay small.
package scan

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/ieee754"
)

// Report holds the index sets of one scan. Indexes are positions in the
// scanned slice. A value can appear in several sets (e.g. a negative
// subnormal is in both Subnormal and Negative); NaNs count as neither
// negative nor positive here even though their sign bit is recorded by
// ieee754.Classify.
type Report struct {
	NaN       *roaring.Bitmap
	Signaling *roaring.Bitmap
	Infinite  *roaring.Bitmap
	Subnormal *roaring.Bitmap
	Zero      *roaring.Bitmap
	Negative  *roaring.Bitmap

	// Total is the number of scanned values.
	Total int
}

func newReport(total int) *Report {
	return &Report{
		NaN:       roaring.New(),
		Signaling: roaring.New(),
		Infinite:  roaring.New(),
		Subnormal: roaring.New(),
		Zero:      roaring.New(),
		Negative:  roaring.New(),
		Total:     total,
	}
}

// HasSpecials reports whether the scan saw any NaN or infinity.
func (r *Report) HasSpecials() bool {
	return !r.NaN.IsEmpty() || !r.Infinite.IsEmpty()
}

// Finite reports whether every scanned value was finite.
func (r *Report) Finite() bool {
	return !r.HasSpecials()
}

func (r *Report) record(i uint32, c ieee754.Class) {
	switch c.Kind {
	case ieee754.KindSignalingNaN:
		r.NaN.Add(i)
		r.Signaling.Add(i)
	case ieee754.KindQuietNaN:
		r.NaN.Add(i)
	case ieee754.KindInfinite:
		r.Infinite.Add(i)
		if c.Negative {
			r.Negative.Add(i)
		}
	case ieee754.KindSubnormal:
		r.Subnormal.Add(i)
		if c.Negative {
			r.Negative.Add(i)
		}
	case ieee754.KindZero:
		r.Zero.Add(i)
		if c.Negative {
			r.Negative.Add(i)
		}
	case ieee754.KindNormal:
		if c.Negative {
			r.Negative.Add(i)
		}
	}
}

// Scan classifies values in a single pass.
func Scan(values []float64) *Report {
	r := newReport(len(values))
	for i, v := range values {
		r.record(uint32(i), ieee754.Classify(v))
	}
	return r
}

// Scan32 classifies values in a single pass.
func Scan32(values []float32) *Report {
	r := newReport(len(values))
	for i, v := range values {
		r.record(uint32(i), ieee754.Classify32(v))
	}
	return r
}
