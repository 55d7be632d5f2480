package section

import (
	"github.com/pkg/errors"

	"github.com/mmp/grib2dec/internal/bitio"
	"github.com/mmp/grib2dec/internal/filter"
	"github.com/mmp/grib2dec/internal/grid"
)

// parseSection3 reads the grid definition section: source (must be
// 0), point count (unused, the template's own Ni*Nj governs), number
// of octets for optional list (unused), interpretation flag (unused),
// grid template number, then delegates to grid.Parse for templates
// 0-3. The spatial filter is applied immediately afterward, per the
// decoder's window-on-parse design.
func parseSection3(r *bitio.Reader, msg *Message) error {
	source, err := r.Byte()
	if err != nil {
		return err
	}
	if source != 0 {
		return errors.Wrapf(ErrGridSourceUnsupported, "source %d", source)
	}
	// Number of data points, octets for optional list, interpretation
	// of optional list: not used by regular lat/lon grids.
	if _, err := r.Read(6); err != nil {
		return err
	}
	template, err := r.Len16()
	if err != nil {
		return err
	}
	if template > 3 {
		return errors.Wrapf(grid.ErrUnsupportedGridTemplate, "template %d", template)
	}

	g, err := grid.Parse(r)
	if err != nil {
		return err
	}
	msg.Grid = g
	msg.GridNi, msg.GridNj = g.Ni, g.Nj
	msg.FilterResult = filter.Apply(msg.FilterWindow,
		g.Lon1, g.Lon2, g.LonInc, g.Ni,
		g.Lat1, g.Lat2, g.LatInc, g.Nj)

	g.Lon1, g.Lon2 = msg.FilterResult.Lon.Corner1, msg.FilterResult.Lon.Corner2
	g.Lat1, g.Lat2 = msg.FilterResult.Lat.Corner1, msg.FilterResult.Lat.Corner2
	g.Ni = msg.FilterResult.Lon.N
	g.Nj = msg.FilterResult.Lat.N

	return r.SectionEnd()
}
