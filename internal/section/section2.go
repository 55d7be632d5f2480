package section

import "github.com/mmp/grib2dec/internal/bitio"

// parseSection2 discards the local use section; its content is
// center-specific and outside this decoder's scope.
func parseSection2(r *bitio.Reader, _ *Message) error {
	return r.SectionEnd()
}
