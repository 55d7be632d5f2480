// Package filter implements the spatial subsetting window described in
// spec section 4.3: trimming a grid's corner coordinates to a user's
// lat/lon window, and an incremental accept/reject oracle the data
// unpacker consults once per raw (unfiltered) sample.
package filter

import "math"

// Window is a user-supplied lat/lon box. A zero pair on either axis
// ("LonMin == LonMax == 0" or "LatMin == LatMax == 0") means that axis
// is unset and no trimming happens on it.
type Window struct {
	LonMin, LonMax float64
	LatMin, LatMax float64
}

// Skip is the number of rows or columns to drop at the front (the
// corner-1 side) and back (the corner-2 side) of one grid axis.
type Skip struct {
	Front, Back int
}

// AxisTrim computes how many samples to drop off the front and back of
// one grid axis so the remaining extent lies within [lo, hi], given the
// axis runs from corner1 to corner2 in steps of inc (inc's sign must
// match corner2-corner1, as GRIB2 grids guarantee). unset indicates the
// caller determined this axis has no window constraint.
func AxisTrim(corner1, corner2, inc float64, lo, hi float64, unset bool) Skip {
	if unset || inc == 0 {
		return Skip{}
	}
	step := math.Abs(inc)
	var front, back int
	if inc > 0 {
		if corner1 < lo {
			front = int(math.Ceil((lo - corner1) / step))
		}
		if corner2 > hi {
			back = int(math.Ceil((corner2 - hi) / step))
		}
	} else {
		if corner1 > hi {
			front = int(math.Ceil((corner1 - hi) / step))
		}
		if corner2 < lo {
			back = int(math.Ceil((lo - corner2) / step))
		}
	}
	return Skip{Front: front, Back: back}
}

// Trimmed holds the result of applying a Window to one grid axis: the
// new corner coordinates and the new point count.
type Trimmed struct {
	Corner1, Corner2 float64
	N                int
	Skip             Skip
}

// ApplyAxis rewrites corner1/corner2 by stepping inward by Front/Back
// increments, and reduces n accordingly.
func ApplyAxis(corner1, corner2, inc float64, n int, skip Skip) Trimmed {
	return Trimmed{
		Corner1: corner1 + float64(skip.Front)*inc,
		Corner2: corner2 - float64(skip.Back)*inc,
		N:       n - skip.Front - skip.Back,
		Skip:    skip,
	}
}

// RowOracle is the stateful accept/reject predicate described in spec
// section 4.3. It is fed one decision per raw (row-major, unfiltered)
// sample and must be consulted exactly ni*nj times for one message.
//
// The spec's own state-machine prose leaves the very first transition
// ambiguous (skip and nb both start at zero, so neither of its two
// branches fires). This implementation resolves that by treating
// nb == 0 while skip == 0 as "start an accepted row": nb is loaded from
// nbI and nbJ is decremented before the first value of that row is
// produced. Verified against spec's own worked example (ni=4, nj=2,
// lon1=0, lon2=30, lonInc=10, window lon in [10,20] trims to columns
// 1 and 2 of each row).
//
// NewRowOracle builds the oracle from the four derived parameters:
// skipBegin (skip at message start), skipEnd (trailing skip), skipI
// (per-row skip between the end of one accepted row and the start of
// the next), and nbI (accepted columns per row), plus the number of
// rows to accept, nbJ.
func NewRowOracle(skipBegin, skipEnd, skipI, nbI, nbJ int) *RowOracle {
	return &RowOracle{
		skip:    skipBegin,
		skipI:   skipI,
		skipEnd: skipEnd,
		nbI:     nbI,
		nbJ:     nbJ,
	}
}

// RowOracle is the accept oracle used by the data unpacker.
type RowOracle struct {
	skip    int
	nb      int
	skipI   int
	skipEnd int
	nbI     int
	nbJ     int
}

// Accept reports whether the next raw sample in row-major order falls
// inside the filtered window, advancing internal state by one sample.
func (o *RowOracle) Accept() bool {
	if o.skip > 0 {
		o.skip--
		return false
	}
	if o.nb == 0 {
		o.nb = o.nbI
		o.nbJ--
	}
	o.nb--
	accept := true
	if o.nb == 0 {
		if o.nbJ > 0 {
			o.skip = o.skipI
		} else {
			o.skip = o.skipEnd
		}
	}
	return accept
}
