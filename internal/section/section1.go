package section

import (
	"github.com/pkg/errors"

	"github.com/mmp/grib2dec/internal/bitio"
)

// parseSection1 reads the identification section: originating center
// and subcenter (skipped, not exposed), master and local table
// versions, reference time significance, the six-field datetime, and
// production status and type of processed data.
func parseSection1(r *bitio.Reader, msg *Message) error {
	// Originating center and subcenter.
	if _, err := r.Read(4); err != nil {
		return err
	}
	masterTable, err := r.Byte()
	if err != nil {
		return err
	}
	if masterTable != 2 {
		return errors.Wrapf(ErrUnsupportedTable, "master table version %d", masterTable)
	}
	// Local table version, reference time significance.
	if _, err := r.Read(2); err != nil {
		return err
	}

	year, err := r.Len16()
	if err != nil {
		return err
	}
	month, err := r.Byte()
	if err != nil {
		return err
	}
	day, err := r.Byte()
	if err != nil {
		return err
	}
	hour, err := r.Byte()
	if err != nil {
		return err
	}
	minute, err := r.Byte()
	if err != nil {
		return err
	}
	second, err := r.Byte()
	if err != nil {
		return err
	}

	// Production status of processed data: not validated.
	if _, err := r.Byte(); err != nil {
		return err
	}
	typeOfData, err := r.Byte()
	if err != nil {
		return err
	}
	if typeOfData != 1 {
		return errors.Wrapf(ErrNotForecast, "type of processed data %d", typeOfData)
	}

	msg.Datetime = Datetime{
		Year:   int(year),
		Month:  int(month),
		Day:    int(day),
		Hour:   int(hour),
		Minute: int(minute),
		Second: int(second),
	}
	return r.SectionEnd()
}
