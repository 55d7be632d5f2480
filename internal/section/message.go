// Package section drives the GRIB2 section state machine (spec 4.2):
// it consumes one message by dispatching on section identifier 0-8,
// enforcing the legal section order, and accumulating a partially
// built message record.
package section

import (
	"github.com/pkg/errors"

	"github.com/mmp/grib2dec/internal/bitio"
	"github.com/mmp/grib2dec/internal/data"
	"github.com/mmp/grib2dec/internal/filter"
	"github.com/mmp/grib2dec/internal/grid"
)

// Sentinel errors the driver classifies into the public Status
// taxonomy (spec 7). The kind->status mapping lives in the root
// package, which is the only thing allowed to import both this
// package and the public API it serves.
var (
	ErrNotGrib               = errors.New("grib2dec: not a GRIB message")
	ErrUnsupportedEdition    = errors.New("grib2dec: unsupported GRIB edition")
	ErrUnsupportedTable      = errors.New("grib2dec: unsupported master table version")
	ErrNotForecast           = errors.New("grib2dec: type of processed data is not forecast")
	ErrUnexpectedSection     = errors.New("grib2dec: section appeared out of the legal order")
	ErrGridSourceUnsupported = errors.New("grib2dec: grid definition source is not 0")
)

// Datetime is the reference time decoded from section 1.
type Datetime struct {
	Year, Month, Day, Hour, Minute, Second int
}

// Message is the internal, partially-built record the state machine
// accumulates across sections. The driver copies its semantic fields
// into the public Message shape once section 8 is reached.
type Message struct {
	Len      uint64
	LenRead  uint64
	Complete bool

	Discipline int
	Datetime   Datetime

	Category  int
	Parameter int

	Grid    *grid.LatLon
	Packing *data.Packing

	// GridNi/GridNj are the grid's original, unfiltered point counts as
	// decoded from the wire, before section3 overwrites msg.Grid with
	// the post-filter extent. Section 5's value count is validated
	// against these, since the packed data stream on the wire always
	// covers the full unfiltered grid.
	GridNi, GridNj int

	// FilterWindow is the user's spatial window, applied once the grid
	// is known (section 3).
	FilterWindow filter.Window
	FilterResult filter.Result

	Values []float64
}

// section identifiers in the legal order this decoder enforces (spec
// 4.2): 0 -> 1 -> [2] -> 3 -> 4 -> 5 -> 6 -> 7 -> 8. Sections 2-7 may
// repeat for multi-field GRIB2 messages in general, but this decoder
// accepts only one production block per message, matching the
// documented single-field-per-message limitation (spec 9).
const (
	secIndicator = iota
	secIdentification
	secLocalUse
	secGridDefinition
	secProduct
	secDataRepresentation
	secBitmap
	secData
	secEnd
)

// legalNext reports whether the state machine may transition from
// `state` upon observing section `id`.
func legalNext(state int, id uint8) bool {
	switch state {
	case secIndicator:
		return id == 1
	case secIdentification:
		return id == 2 || id == 3
	case secLocalUse:
		return id == 3
	case secGridDefinition:
		return id == 4
	case secProduct:
		return id == 5
	case secDataRepresentation:
		return id == 6
	case secBitmap:
		return id == 7
	case secData:
		return id == 8
	default:
		return false
	}
}

func stateAfter(id uint8) int {
	switch id {
	case 1:
		return secIdentification
	case 2:
		return secLocalUse
	case 3:
		return secGridDefinition
	case 4:
		return secProduct
	case 5:
		return secDataRepresentation
	case 6:
		return secBitmap
	case 7:
		return secData
	case 8:
		return secEnd
	default:
		return -1
	}
}

// ParseMessage runs the section state machine over one GRIB2 message,
// starting at section 0. window is applied to the grid parsed from
// section 3. valuesOut, if non-nil and of sufficient capacity, is
// reused as the output buffer for the unpacked values (spec 3's
// "owned, reusable value buffer").
func ParseMessage(r *bitio.Reader, window filter.Window, valuesOut []float64) (*Message, error) {
	msg := &Message{FilterWindow: window}

	if err := parseSection0(r, msg); err != nil {
		return msg, err
	}

	state := secIndicator
	for !msg.Complete {
		remaining := int64(msg.Len) - int64(msg.LenRead)
		if remaining <= 0 {
			msg.Complete = true
			break
		}
		id, length, err := r.SectionBegin(remaining)
		if err != nil {
			return msg, err
		}
		if !legalNext(state, id) {
			return msg, errors.Wrapf(ErrUnexpectedSection, "section %d in state %d", id, state)
		}
		state = stateAfter(id)

		switch id {
		case 1:
			err = parseSection1(r, msg)
		case 2:
			err = parseSection2(r, msg)
		case 3:
			err = parseSection3(r, msg)
		case 4:
			err = parseSection4(r, msg)
		case 5:
			err = parseSection5(r, msg)
		case 6:
			err = parseSection6(r, msg)
		case 7:
			err = parseSection7(r, msg, valuesOut)
		case 8:
			msg.Complete = true
		}
		msg.LenRead += uint64(length)
		if err != nil {
			return msg, err
		}
	}

	return msg, nil
}
