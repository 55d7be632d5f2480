package section

import (
	"github.com/pkg/errors"

	"github.com/mmp/grib2dec/internal/bitio"
	"github.com/mmp/grib2dec/internal/data"
)

// parseSection7 delegates to the data unpacker, writing only the
// samples the spatial filter's accept oracle selects. valuesOut, if
// it has enough capacity, is reused rather than reallocated, matching
// the decoder's single owned value buffer (spec 3/9).
func parseSection7(r *bitio.Reader, msg *Message, valuesOut []float64) error {
	if msg.Packing == nil {
		return errors.New("grib2dec: data section seen before data representation section")
	}

	want := msg.FilterResult.Lon.N * msg.FilterResult.Lat.N
	out := valuesOut
	if cap(out) < want {
		out = make([]float64, want)
	} else {
		out = out[:want]
	}

	n, err := data.Unpack(r, msg.Packing, msg.FilterResult.Oracle, out)
	if err != nil {
		return err
	}
	msg.Values = out[:n]
	return nil
}
