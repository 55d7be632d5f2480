package bitio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderIntegers(t *testing.T) {
	r2 := NewReader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 20, 3, 0xAB, 0xCD, 0x12, 0x34, 0x56, 0x78}))
	id, length, err := r2.SectionBegin(100)
	require.NoError(t, err)
	assert.EqualValues(t, 3, id)
	assert.EqualValues(t, 20, length)
	assert.EqualValues(t, 15, r2.SectionRemain())

	b16, err := r2.Len16()
	require.NoError(t, err)
	assert.EqualValues(t, 0xABCD, b16)

	b32, err := r2.Len32()
	require.NoError(t, err)
	assert.EqualValues(t, 0x12345678, b32)
}

func TestReaderSectionBeginClampsToMaxLen(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 100, 5, 1, 2, 3}))
	_, length, err := r.SectionBegin(8)
	require.NoError(t, err)
	assert.EqualValues(t, 8, length)
	assert.EqualValues(t, 3, r.SectionRemain())
}

func TestReaderSectionBeginTerminator(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("7777")))
	id, length, err := r.SectionBegin(4)
	require.NoError(t, err)
	assert.EqualValues(t, 8, id)
	assert.EqualValues(t, 4, length)
	assert.EqualValues(t, 0, r.SectionRemain())
}

func TestReaderSectionOverrun(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 6, 1, 0xFF}))
	_, _, err := r.SectionBegin(100)
	require.NoError(t, err)
	_, err = r.Len16()
	assert.ErrorIs(t, err, ErrSectionOverrun)
}

func TestReaderMagSigned(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 15, 1, 0x80, 0x05}))
	_, _, err := r.SectionBegin(100)
	require.NoError(t, err)
	v, err := r.MagSigned16()
	require.NoError(t, err)
	assert.EqualValues(t, -5, v)
}

func TestReaderBitsPersistAcrossCalls(t *testing.T) {
	// 0xD2 = 1101 0010
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 6, 1, 0xD2}))
	_, _, err := r.SectionBegin(100)
	require.NoError(t, err)

	v1, err := r.Bits(3)
	require.NoError(t, err)
	assert.EqualValues(t, 0b110, v1)

	v2, err := r.Bits(5)
	require.NoError(t, err)
	assert.EqualValues(t, 0b10010, v2)
}

func TestReaderBitsEndRealigns(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 7, 1, 0xFF, 0x00}))
	_, _, err := r.SectionBegin(100)
	require.NoError(t, err)

	_, err = r.Bits(3)
	require.NoError(t, err)
	r.BitsEnd()

	v, err := r.Bits(8)
	require.NoError(t, err)
	assert.EqualValues(t, 0x00, v)
}

func TestReaderBytesDispatch(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 8, 1, 0x81, 0x80, 0x02}))
	_, _, err := r.SectionBegin(100)
	require.NoError(t, err)

	v, err := r.Bytes(1)
	require.NoError(t, err)
	assert.EqualValues(t, 0x81, v)

	v, err = r.Bytes(2)
	require.NoError(t, err)
	assert.EqualValues(t, -2, v)

	_, err = r.Bytes(3)
	assert.ErrorIs(t, err, ErrBadExtraBytes)
}

func TestReaderSectionEndSkipsPadding(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 9, 1, 0xAA, 0xBB, 0xCC, 0x01, 0x00, 0x00, 0x00, 4, 2}))
	_, _, err := r.SectionBegin(100)
	require.NoError(t, err)

	require.NoError(t, r.SectionEnd())

	id, _, err := r.SectionBegin(100)
	require.NoError(t, err)
	assert.EqualValues(t, 2, id)
}
