package data

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmp/grib2dec/internal/bitio"
)

func f32(v float32) []byte {
	b := make([]byte, 4)
	u := math.Float32bits(v)
	b[0] = byte(u >> 24)
	b[1] = byte(u >> 16)
	b[2] = byte(u >> 8)
	b[3] = byte(u)
	return b
}

func i16sm(v int16) []byte {
	mag := v
	sign := uint16(0)
	if v < 0 {
		mag = -v
		sign = 0x8000
	}
	u := uint16(mag) | sign
	return []byte{byte(u >> 8), byte(u)}
}

func withSectionFraming(payload []byte) *bitio.Reader {
	header := []byte{0, 0, 0, byte(5 + len(payload)), 5}
	r := bitio.NewReader(bytes.NewReader(append(header, payload...)))
	_, _, err := r.SectionBegin(int64(len(header) + len(payload)))
	if err != nil {
		panic(err)
	}
	return r
}

func TestParsePackingSimple(t *testing.T) {
	payload := append([]byte{}, f32(10)...)
	payload = append(payload, i16sm(2)...)
	payload = append(payload, i16sm(-1)...)
	payload = append(payload, 8, 0)

	r := withSectionFraming(payload)
	p, err := ParsePacking(r, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Template)
	assert.EqualValues(t, 10, p.R)
	assert.Equal(t, 2, p.E)
	assert.Equal(t, -1, p.D)
	assert.Equal(t, 8, p.SampleBits)
}

func TestParsePackingComplexWithSpatialDifferencing(t *testing.T) {
	payload := append([]byte{}, f32(0)...)
	payload = append(payload, i16sm(0)...)
	payload = append(payload, i16sm(0)...)
	payload = append(payload, 4, 0) // sampleBits, original field type
	payload = append(payload, 1)    // group splitting method
	payload = append(payload, 0)    // missing value management
	payload = append(payload, f32(0)...)
	payload = append(payload, f32(0)...)
	payload = append(payload, 0, 0, 0, 3) // NG = 3
	payload = append(payload, 0)          // group width reference
	payload = append(payload, 4)          // group width bits
	payload = append(payload, 0, 0, 0, 5) // group length reference
	payload = append(payload, 1)          // group length increment
	payload = append(payload, 0, 0, 0, 7) // last group length
	payload = append(payload, 3)          // scaled group length bits
	payload = append(payload, 2)          // spatial order
	payload = append(payload, 4)          // extra bytes

	r := withSectionFraming(payload)
	p, err := ParsePacking(r, 100, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Template)
	assert.Equal(t, 3, p.NG)
	assert.Equal(t, 4, p.GroupWidthBits)
	assert.Equal(t, 5, p.GroupLengthRef)
	assert.Equal(t, 1, p.GroupLengthInc)
	assert.Equal(t, 3, p.ScaledGroupLengthBits)
	assert.Equal(t, 2, p.SpatialOrder)
	assert.Equal(t, 4, p.ExtraBytes)
}

func TestParsePackingRejectsUnsupportedTemplate(t *testing.T) {
	r := withSectionFraming(make([]byte, 20))
	_, err := ParsePacking(r, 4, 40)
	assert.ErrorIs(t, err, ErrUnsupportedDataTemplate)
}

func TestParsePackingRejectsMissingValueManagement(t *testing.T) {
	payload := append([]byte{}, f32(0)...)
	payload = append(payload, i16sm(0)...)
	payload = append(payload, i16sm(0)...)
	payload = append(payload, 4, 0)
	payload = append(payload, 1)
	payload = append(payload, 1) // missing value management != 0

	r := withSectionFraming(payload)
	_, err := ParsePacking(r, 4, 2)
	assert.ErrorIs(t, err, ErrMissingValueManagement)
}

func TestParsePackingRejectsBadSpatialOrder(t *testing.T) {
	payload := append([]byte{}, f32(0)...)
	payload = append(payload, i16sm(0)...)
	payload = append(payload, i16sm(0)...)
	payload = append(payload, 4, 0)
	payload = append(payload, 1)
	payload = append(payload, 0)
	payload = append(payload, f32(0)...)
	payload = append(payload, f32(0)...)
	payload = append(payload, 0, 0, 0, 1)
	payload = append(payload, 0, 4)
	payload = append(payload, 0, 0, 0, 5)
	payload = append(payload, 0)
	payload = append(payload, 0, 0, 0, 5)
	payload = append(payload, 0)
	payload = append(payload, 3) // spatial order 3 is invalid

	r := withSectionFraming(payload)
	_, err := ParsePacking(r, 100, 3)
	assert.ErrorIs(t, err, ErrBadSpatialOrder)
}
