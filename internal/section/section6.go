package section

import "github.com/mmp/grib2dec/internal/bitio"

// parseSection6 discards the bitmap section. Missing-value bitmaps
// are outside this decoder's scope (spec Non-goals): the bitmap
// indicator is not inspected, and the section's bytes are skipped
// whatever it says.
func parseSection6(r *bitio.Reader, _ *Message) error {
	return r.SectionEnd()
}
