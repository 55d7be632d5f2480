package section

import (
	"github.com/pkg/errors"

	"github.com/mmp/grib2dec/internal/bitio"
	"github.com/mmp/grib2dec/internal/data"
)

// parseSection5 reads the data representation section: the number of
// packed values (validated against the grid's original, unfiltered
// point count), the data representation template number, then
// delegates to data.ParsePacking.
func parseSection5(r *bitio.Reader, msg *Message) error {
	nbValues, err := r.Len32()
	if err != nil {
		return err
	}
	template, err := r.Len16()
	if err != nil {
		return err
	}

	if msg.Grid == nil {
		return errors.New("grib2dec: data representation section seen before grid definition")
	}
	// The packed sample stream on the wire always spans the full,
	// unfiltered grid; the spatial filter only changes what the
	// unpacker emits, not what section 5 declares.
	if int(nbValues) != msg.GridNi*msg.GridNj {
		return errors.Wrapf(data.ErrPointCountMismatch, "have %d, want %d", nbValues, msg.GridNi*msg.GridNj)
	}

	p, err := data.ParsePacking(r, int(nbValues), template)
	if err != nil {
		return err
	}
	msg.Packing = p
	return r.SectionEnd()
}
