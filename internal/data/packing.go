// Package data implements GRIB2 data representation templates 5.0, 5.2
// and 5.3 — simple packing, complex packing, and complex packing with
// first- or second-order spatial differencing — and the unpacker that
// reconstructs floating-point samples from them.
package data

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mmp/grib2dec/internal/bitio"
)

// ErrUnsupportedDataTemplate means the data representation template
// number is not one of 0, 2, 3. Severity is NotImplemented.
var ErrUnsupportedDataTemplate = errors.New("grib2dec: unsupported data representation template")

// ErrPointCountMismatch means section 5's value count does not equal
// the grid's ni*nj, a ParseError-severity failure.
var ErrPointCountMismatch = errors.New("grib2dec: data value count does not match grid point count")

// ErrBadSpatialOrder means template 5.3's spatial-differencing order
// byte was not 1 or 2.
var ErrBadSpatialOrder = errors.New("grib2dec: unsupported spatial differencing order")

// ErrMissingValueManagement means a non-zero missing-value management
// byte was seen; this decoder does not implement missing-value
// substitution (spec Non-goals), so any non-zero value is rejected with
// NotImplemented severity rather than silently ignored.
var ErrMissingValueManagement = errors.New("grib2dec: missing-value management is not implemented")

// Packing is the parsed content of section 5 (data representation),
// covering templates 0 (simple packing), 2 (complex packing) and 3
// (complex packing with spatial differencing).
type Packing struct {
	Template int // 0, 2, or 3

	NbValues int

	R float64 // reference value
	E int     // binary scale factor
	D int     // decimal scale factor

	SampleBits int // bits per group reference / per simple-packed sample

	// Complex packing only (templates 2 and 3).
	NG                    int // number of groups
	GroupWidthBits        int
	GroupLengthRef        int
	GroupLengthInc        int
	LastGroupLength       int
	ScaledGroupLengthBits int

	// Spatial differencing only (template 3).
	SpatialOrder int // 0, 1, or 2
	ExtraBytes   int // byte width of h1/h2/hmin, 1..4
}

// String returns a human-readable description.
func (p *Packing) String() string {
	switch p.Template {
	case 0:
		return fmt.Sprintf("Template 5.0: Simple Packing, %d values, %d bits/value, R=%g, E=%d, D=%d",
			p.NbValues, p.SampleBits, p.R, p.E, p.D)
	case 2:
		return fmt.Sprintf("Template 5.2: Complex Packing, %d values, %d groups, R=%g, E=%d, D=%d",
			p.NbValues, p.NG, p.R, p.E, p.D)
	default:
		return fmt.Sprintf("Template 5.3: Complex Packing with order-%d spatial differencing, %d values, %d groups",
			p.SpatialOrder, p.NbValues, p.NG)
	}
}

// ParsePacking reads section 5's payload (after length/id/nbValues/
// template-number, which the section parser already consumed) for
// templates 0, 2 and 3.
func ParsePacking(r *bitio.Reader, nbValues int, template uint16) (*Packing, error) {
	if template != 0 && template != 2 && template != 3 {
		return nil, errors.Wrapf(ErrUnsupportedDataTemplate, "template %d", template)
	}

	refF, err := r.FloatingPointNumber()
	if err != nil {
		return nil, err
	}
	e, err := r.MagSigned16()
	if err != nil {
		return nil, err
	}
	d, err := r.MagSigned16()
	if err != nil {
		return nil, err
	}
	sampleBits, err := r.Byte()
	if err != nil {
		return nil, err
	}
	// Original field type (Table 5.1): not interpreted by this decoder.
	if _, err := r.Byte(); err != nil {
		return nil, err
	}

	p := &Packing{
		Template:   int(template),
		NbValues:   nbValues,
		R:          refF,
		E:          int(e),
		D:          int(d),
		SampleBits: int(sampleBits),
	}

	if template == 0 {
		return p, nil
	}

	groupSplitting, err := r.Byte()
	if err != nil {
		return nil, err
	}
	_ = groupSplitting // always general-group splitting (method 1) in practice; not branched on

	missingMgmt, err := r.Byte()
	if err != nil {
		return nil, err
	}
	if missingMgmt != 0 {
		return nil, errors.Wrapf(ErrMissingValueManagement, "indicator %d", missingMgmt)
	}
	// Primary/secondary missing value substitutes: present whenever the
	// missing-value management field exists, regardless of its value.
	if _, err := r.FloatingPointNumber(); err != nil {
		return nil, err
	}
	if _, err := r.FloatingPointNumber(); err != nil {
		return nil, err
	}

	ng, err := r.Len32()
	if err != nil {
		return nil, err
	}
	groupWidthRef, err := r.Byte()
	if err != nil {
		return nil, err
	}
	groupWidthBits, err := r.Byte()
	if err != nil {
		return nil, err
	}
	groupLengthRef, err := r.Len32()
	if err != nil {
		return nil, err
	}
	groupLengthInc, err := r.Byte()
	if err != nil {
		return nil, err
	}
	lastGroupLength, err := r.Len32()
	if err != nil {
		return nil, err
	}
	scaledGroupLengthBits, err := r.Byte()
	if err != nil {
		return nil, err
	}

	// groupWidthRef occupies its own octet on the wire but this decoder's
	// unpacking algorithm (spec 4.4 step 3/6) treats each read group
	// width as an absolute bit count, so the reference is read to stay
	// aligned with the stream and then discarded.
	_ = groupWidthRef

	p.NG = int(ng)
	p.GroupWidthBits = int(groupWidthBits)
	p.GroupLengthRef = int(groupLengthRef)
	p.GroupLengthInc = int(groupLengthInc)
	p.LastGroupLength = int(lastGroupLength)
	p.ScaledGroupLengthBits = int(scaledGroupLengthBits)

	if template == 2 {
		p.SpatialOrder = 0
		p.ExtraBytes = 0
		return p, nil
	}

	spatialOrder, err := r.Byte()
	if err != nil {
		return nil, err
	}
	if spatialOrder != 1 && spatialOrder != 2 {
		return nil, errors.Wrapf(ErrBadSpatialOrder, "order %d", spatialOrder)
	}
	extraBytes, err := r.Byte()
	if err != nil {
		return nil, err
	}

	p.SpatialOrder = int(spatialOrder)
	p.ExtraBytes = int(extraBytes)
	return p, nil
}
