// Package grid decodes GRIB2 grid definition templates 3.0-3.3: regular
// latitude/longitude grids (the only grid family this decoder supports;
// Lambert/Mercator/polar-stereographic templates are a Non-goal).
package grid

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/mmp/grib2dec/internal/bitio"
)

// ErrUnsupportedGridTemplate means the grid template number is not one
// of 0-3. Its severity is NotImplemented, not ParseError (spec 4.2/7).
var ErrUnsupportedGridTemplate = errors.New("grib2dec: unsupported grid template")

// ErrBadScanMode means a grid's scanning mode sets one of the high six
// bits this decoder requires to be zero (raster order only).
var ErrBadScanMode = errors.New("grib2dec: unsupported scanning mode")

// LatLon is the canonical descriptor for an equidistant latitude/longitude
// grid, decoded from templates 3.0-3.3. Only the common prefix fields
// spec 4.2 names are captured; templates 3.1-3.3 append rotation or
// stretching octets after this prefix that Parse does not decode. The
// section 3 caller drains any such trailing octets with SectionEnd, the
// same way it drains the rest of the section.
type LatLon struct {
	EarthRadius float64 // meters

	Ni, Nj int // point counts along a parallel / meridian

	Lat1, Lon1 float64 // degrees, first grid point
	Lat2, Lon2 float64 // degrees, last grid point
	LatInc     float64 // degrees, signed so sign matches Lat2-Lat1
	LonInc     float64 // degrees, signed so sign matches Lon2-Lon1

	ScanningMode uint8
}

// String returns a human-readable description of the grid.
func (g *LatLon) String() string {
	return fmt.Sprintf("Lat/Lon grid: %d x %d points (%.3f°, %.3f°) to (%.3f°, %.3f°)",
		g.Ni, g.Nj, g.Lat1, g.Lon1, g.Lat2, g.Lon2)
}

// earth shape codes, WMO Table 3.2.
const (
	earthShapeSphericalA = 0 // 6 367 470 m
	earthShapeSphericalB = 6 // 6 371 229 m
)

func earthRadius(r *bitio.Reader) (float64, error) {
	shape, err := r.Byte()
	if err != nil {
		return 0, err
	}
	// The radius scale factor and scaled value octets are present on
	// the wire for every earth shape, not just shape 1, and are always
	// read to stay aligned with the stream even though only shape 1
	// uses them.
	radiusFactor, err := r.Byte()
	if err != nil {
		return 0, err
	}
	scaledRadius, err := r.Len32()
	if err != nil {
		return 0, err
	}
	// Remaining 10 bytes (oblate spheroid major/minor axis scale+value)
	// are unused by shapes 0/1/6 and skipped here.
	if _, err := r.Read(10); err != nil {
		return 0, err
	}

	switch shape {
	case earthShapeSphericalA:
		return 6367470, nil
	case earthShapeSphericalB:
		return 6371229, nil
	case 1:
		divisor := float64(radiusFactor)
		if divisor == 0 {
			divisor = 1
		}
		return float64(scaledRadius) / divisor, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedGridTemplate, "earth shape %d", shape)
	}
}

// Parse decodes a template 0-3 grid definition from the section 3 payload,
// positioned immediately after the template number. It consumes the
// common prefix (earth shape, Ni/Nj, basic angle, the four corners,
// increments, and scanning mode) shared by all four templates. It does
// not consume templates 3.1-3.3's trailing rotation/stretching octets;
// the caller drains those via the section's own SectionEnd.
func Parse(r *bitio.Reader) (*LatLon, error) {
	radius, err := earthRadius(r)
	if err != nil {
		return nil, err
	}

	niRaw, err := r.Len32()
	if err != nil {
		return nil, err
	}
	njRaw, err := r.Len32()
	if err != nil {
		return nil, err
	}

	basicAngle, err := r.Len32()
	if err != nil {
		return nil, err
	}
	subdivisionsRaw, err := r.Len32()
	if err != nil {
		return nil, err
	}
	// subdivisions is read as a plain big-endian word and reinterpreted
	// as an ordinary (two's-complement) signed integer, unlike the
	// corner coordinates below: an all-ones word (0xffffffff) is the WMO
	// "missing" sentinel, which lands on -1 under a two's-complement
	// read. basicAngle is defaulted to 1 when zero but is not otherwise
	// used: the coordinate divisor is subAngle alone.
	if basicAngle == 0 {
		basicAngle = 1
	}
	subdivisions := int32(subdivisionsRaw)
	subAngle := float64(subdivisions)
	if subdivisions == -1 {
		subAngle = 1000000
	}

	lat1Raw, err := r.MagSigned32()
	if err != nil {
		return nil, err
	}
	lon1Raw, err := r.MagSigned32()
	if err != nil {
		return nil, err
	}
	// Resolution and component flags: accepted permissively, per the
	// design note that the refactored path trusts scanning-mode
	// validation instead of hard-coding an expected flag byte.
	if _, err := r.Byte(); err != nil {
		return nil, err
	}
	lat2Raw, err := r.MagSigned32()
	if err != nil {
		return nil, err
	}
	lon2Raw, err := r.MagSigned32()
	if err != nil {
		return nil, err
	}
	diRaw, err := r.MagSigned32()
	if err != nil {
		return nil, err
	}
	djRaw, err := r.MagSigned32()
	if err != nil {
		return nil, err
	}
	scanningMode, err := r.Byte()
	if err != nil {
		return nil, err
	}
	// The high six bits (i-scan/j-scan direction, consecutive-point
	// ordering, row staggering, and two reserved flags) must be zero:
	// this decoder only accepts plain row-major raster order. The
	// corner/increment signs above are derived independently from the
	// corner coordinates, not from the direction bits here.
	if scanningMode&0xFC != 0 {
		return nil, errors.Wrapf(ErrBadScanMode, "mode 0x%02x", scanningMode)
	}

	scale := subAngle
	lat1 := float64(lat1Raw) / scale
	lon1 := float64(lon1Raw) / scale
	lat2 := float64(lat2Raw) / scale
	lon2 := float64(lon2Raw) / scale

	latInc := signMatch(math.Abs(float64(djRaw))/scale, lat2-lat1)
	lonInc := signMatch(math.Abs(float64(diRaw))/scale, lon2-lon1)

	return &LatLon{
		EarthRadius:  radius,
		Ni:           int(niRaw),
		Nj:           int(njRaw),
		Lat1:         lat1,
		Lon1:         lon1,
		Lat2:         lat2,
		Lon2:         lon2,
		LatInc:       latInc,
		LonInc:       lonInc,
		ScanningMode: scanningMode,
	}, nil
}

// signMatch returns magnitude with the sign of direction (zero direction
// keeps magnitude positive, matching a degenerate single-row/column axis).
func signMatch(magnitude, direction float64) float64 {
	if direction < 0 {
		return -magnitude
	}
	return magnitude
}
