package grib2dec

import (
	"bufio"
	"context"
	"io"

	"github.com/mmp/grib2dec/internal/bitio"
	"github.com/mmp/grib2dec/internal/filter"
	"github.com/mmp/grib2dec/internal/section"
)

// countingReader wraps a *bufio.Reader and counts the bytes actually
// delivered to its caller. Peek does not advance a bufio.Reader's read
// position, so only real Read calls (the ones the bit reader issues)
// move the counter; this lets NextMessage compute exactly how many
// bytes of a message it consumed, independent of whatever the section
// parser's own length bookkeeping says, when deciding how far to skip
// to resync after an error.
type countingReader struct {
	r *bufio.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// Decoder reads GRIB2 messages one at a time from a stream (spec §4.5,
// §5). It is single-threaded and synchronous: NextMessage blocks on
// the underlying reader and must not be called concurrently with
// itself. A Decoder owns its input for its lifetime and its value
// buffer is reused across calls; callers that need to retain Values
// past the next NextMessage call must copy them.
type Decoder struct {
	br *bufio.Reader
	cr *countingReader
	r  *bitio.Reader

	window filter.Window
	values []float64

	ended bool

	logger Logger
	ctx    context.Context
}

// NewDecoder wraps r for sequential GRIB2 decoding.
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	br := bufio.NewReader(r)
	cr := &countingReader{r: br}
	d := &Decoder{
		br:     br,
		cr:     cr,
		r:      bitio.NewReader(cr),
		logger: glogLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetSpatialFilter stores the lat/lon window applied to every message
// decoded after this call. A zero pair on either axis leaves that axis
// unfiltered (spec §4.3).
func (d *Decoder) SetSpatialFilter(lonMin, lonMax, latMin, latMax float64) {
	d.window = filter.Window{LonMin: lonMin, LonMax: lonMax, LatMin: latMin, LatMax: latMax}
}

// NextMessage decodes the next message in the stream. It returns
// (message, StatusOk, nil) on success, (nil, StatusEnd, nil) when the
// stream is exhausted, and (nil, status, err) for any failure, where
// status classifies err per spec §7. Once NextMessage has returned
// StatusEnd it keeps doing so; a Decoder cannot be resumed after its
// stream ends.
func (d *Decoder) NextMessage() (*Message, Status, error) {
	if d.ended {
		return nil, StatusEnd, nil
	}
	if d.ctx != nil && d.ctx.Err() != nil {
		d.ended = true
		return nil, StatusEnd, nil
	}

	// A message always starts with at least one byte ("G" of "GRIB");
	// peeking without consuming distinguishes a clean end of stream
	// from a mid-message truncation.
	if _, err := d.br.Peek(1); err != nil {
		d.ended = true
		return nil, StatusEnd, nil
	}

	startOffset := d.cr.n
	internal, err := section.ParseMessage(d.r, d.window, d.values)
	if err == nil && internal.Grid == nil {
		// The indicator's declared length let the state machine exit
		// before section 3 ever ran (e.g. a crafted message whose Len
		// covers only section 0/1). There is no grid to report, so
		// this is not a message this decoder can hand back.
		err = errIncompleteMessage
	}
	if err == nil {
		d.values = internal.Values
		msg := toPublicMessage(internal)
		return msg, StatusOk, nil
	}

	status := classify(err)
	parseErr := &ParseError{Status: status, Message: "grib2dec: failed to decode message", Underlying: err}

	if internal.Len == 0 {
		// Section 0 never completed (bad magic/edition, or truncated
		// before the total length was known): there is no way to know
		// how far to skip, so the stream cannot be resynced.
		d.warningf("grib2dec: ending stream, could not resync after: %v", err)
		d.ended = true
		return nil, status, parseErr
	}

	consumed := d.cr.n - startOffset
	toSkip := int64(internal.Len) - consumed
	if toSkip > 0 {
		if _, serr := d.br.Discard(int(toSkip)); serr != nil {
			d.ended = true
		}
	}
	d.warningf("grib2dec: skipping message after error: %v", err)
	return nil, status, parseErr
}

// warningf calls through to the configured Logger, if any; WithLogger(nil)
// disables logging rather than panicking on the next skipped message.
func (d *Decoder) warningf(format string, args ...any) {
	if d.logger == nil {
		return
	}
	d.logger.Warningf(format, args...)
}

// toPublicMessage copies the section state machine's internal record
// into the public Message shape (spec §9). Values is not copied: it
// still aliases the decoder's reused value buffer.
func toPublicMessage(m *section.Message) *Message {
	return &Message{
		Discipline: Discipline(m.Discipline),
		Datetime: Datetime{
			Year:   m.Datetime.Year,
			Month:  m.Datetime.Month,
			Day:    m.Datetime.Day,
			Hour:   m.Datetime.Hour,
			Minute: m.Datetime.Minute,
			Second: m.Datetime.Second,
		},
		Category:  m.Category,
		Parameter: m.Parameter,
		Grid: Grid{
			EarthRadius: m.Grid.EarthRadius,
			Ni:          m.Grid.Ni,
			Nj:          m.Grid.Nj,
			Lat1:        m.Grid.Lat1,
			Lon1:        m.Grid.Lon1,
			Lat2:        m.Grid.Lat2,
			Lon2:        m.Grid.Lon2,
			LatInc:      m.Grid.LatInc,
			LonInc:      m.Grid.LonInc,
		},
		Values: m.Values,
	}
}
