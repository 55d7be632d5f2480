package section

import "github.com/mmp/grib2dec/internal/bitio"

// parseSection4 reads the product definition section: coordinate
// count (unused), product template number (unused, only category and
// parameter byte-codes matter to this decoder), category and
// parameter. Category and parameter are composed with discipline per
// the enumeration scheme (spec 6): category = 1000*discipline+byte,
// parameter = 1000*category+byte. A real template 4.0 carries many more
// octets after parameter (generating process, forecast time, and so on)
// that this decoder does not need; SectionEnd drains them so the next
// section's header is read from the right offset.
func parseSection4(r *bitio.Reader, msg *Message) error {
	if _, err := r.Len16(); err != nil { // number of coordinate values
		return err
	}
	if _, err := r.Len16(); err != nil { // product definition template number
		return err
	}
	category, err := r.Byte()
	if err != nil {
		return err
	}
	parameter, err := r.Byte()
	if err != nil {
		return err
	}

	msg.Category = 1000*msg.Discipline + int(category)
	msg.Parameter = 1000*msg.Category + int(parameter)
	return r.SectionEnd()
}
