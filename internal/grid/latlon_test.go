package grid

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmp/grib2dec/internal/bitio"
)

// buildTemplate assembles a template 3.0 payload (everything after the
// template number) with the given corner/increment/scan fields, earth
// shape 0 (spherical, 6367470 m), basicAngle=0, subdivisions=-1 (so the
// effective divisor is 1e6 and all coordinates are already integer
// millionths of a degree).
func buildTemplate(t *testing.T, ni, nj uint32, lat1, lon1, lat2, lon2 int32, di, dj uint32, scanMode byte) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	buf.WriteByte(0)                          // earth shape 0
	buf.WriteByte(0)                          // radius scale factor (unused for shape 0)
	buf.Write(u32(0))                         // scaled radius (unused)
	buf.Write(make([]byte, 10))               // spheroid axes, unused
	buf.Write(u32(ni))                        // Ni
	buf.Write(u32(nj))                        // Nj
	buf.Write(u32(0))                         // basic angle = 0 -> defaults to 1
	buf.Write(i32(-1))                        // subdivisions = -1 -> defaults to 1e6
	buf.Write(i32sm(lat1))                    // La1
	buf.Write(i32sm(lon1))                    // Lo1
	buf.WriteByte(0x30)                       // resolution/component flags, ignored
	buf.Write(i32sm(lat2))                    // La2
	buf.Write(i32sm(lon2))                    // Lo2
	buf.Write(i32sm(int32(di)))               // Di magnitude
	buf.Write(i32sm(int32(dj)))               // Dj magnitude
	buf.WriteByte(scanMode)                   // scanning mode
	return buf.Bytes()
}

func u32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func i32(v int32) []byte {
	return u32(uint32(v))
}

// i32sm encodes v as GRIB2 sign-magnitude: high bit is the sign.
func i32sm(v int32) []byte {
	mag := v
	sign := uint32(0)
	if v < 0 {
		mag = -v
		sign = 0x80000000
	}
	return u32(uint32(mag) | sign)
}

func parseBytes(t *testing.T, data []byte) *LatLon {
	t.Helper()
	framed := append(u32(uint32(len(data)+5)), 3)
	framed = append(framed, data...)
	r := bitio.NewReader(bytes.NewReader(framed))
	_, _, err := r.SectionBegin(int64(len(framed)))
	require.NoError(t, err)
	g, err := Parse(r)
	require.NoError(t, err)
	return g
}

func TestParseAscendingGrid(t *testing.T) {
	data := buildTemplate(t, 3, 3, 90000000, 0, 88000000, 2000000, 1000000, 1000000, 0x00)
	g := parseBytes(t, data)

	assert.EqualValues(t, 3, g.Ni)
	assert.EqualValues(t, 3, g.Nj)
	assert.InDelta(t, 90, g.Lat1, 1e-6)
	assert.InDelta(t, 0, g.Lon1, 1e-6)
	assert.InDelta(t, 88, g.Lat2, 1e-6)
	assert.InDelta(t, 2, g.Lon2, 1e-6)
	assert.InDelta(t, -1, g.LatInc, 1e-6) // descending: lat2 < lat1
	assert.InDelta(t, 1, g.LonInc, 1e-6)
	assert.InDelta(t, 6367470, g.EarthRadius, 1e-6)
}

func TestParseRejectsBadScanMode(t *testing.T) {
	data := buildTemplate(t, 2, 2, 10000000, 0, 9000000, 1000000, 1000000, 1000000, 0x08)
	framed := append(u32(uint32(len(data)+5)), 3)
	framed = append(framed, data...)
	r := bitio.NewReader(bytes.NewReader(framed))
	_, _, err := r.SectionBegin(int64(len(framed)))
	require.NoError(t, err)
	_, err = Parse(r)
	assert.ErrorIs(t, err, ErrBadScanMode)
}

func TestParseEarthShapeSphericalB(t *testing.T) {
	buf := &bytes.Buffer{}
	buf.WriteByte(6)
	buf.WriteByte(0)
	buf.Write(u32(0))
	buf.Write(make([]byte, 10))
	buf.Write(u32(2))
	buf.Write(u32(2))
	buf.Write(u32(0))
	buf.Write(i32(-1))
	buf.Write(i32sm(0))
	buf.Write(i32sm(0))
	buf.WriteByte(0)
	buf.Write(i32sm(1000000))
	buf.Write(i32sm(1000000))
	buf.Write(i32sm(1000000))
	buf.Write(i32sm(1000000))
	buf.WriteByte(0)

	g := parseBytes(t, buf.Bytes())
	assert.InDelta(t, 6371229, g.EarthRadius, 1e-6)
}
