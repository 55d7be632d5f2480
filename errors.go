package grib2dec

import (
	stderrors "errors"

	"github.com/pkg/errors"

	"github.com/mmp/grib2dec/internal/bitio"
	"github.com/mmp/grib2dec/internal/data"
	"github.com/mmp/grib2dec/internal/grid"
	"github.com/mmp/grib2dec/internal/section"
)

// errIncompleteMessage means the indicator section's declared length
// let the state machine reach section 8 (or run out of declared
// length) without ever seeing a grid definition, so there is no Grid
// to report. Severity is ParseError: the message is well-formed GRIB2
// framing, but not one this decoder can turn into a Message.
var errIncompleteMessage = errors.New("grib2dec: message completed without a grid definition")

// ParseError wraps an internal decoding failure with the Status it was
// classified as and a human-readable summary. It carries no section
// number or byte offset: failures are reported per message.
type ParseError struct {
	Status  Status
	Message string

	Underlying error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Message + ": " + e.Underlying.Error()
}

// Unwrap returns the underlying error, so errors.Is/errors.As see
// through to the sentinel that drove classification.
func (e *ParseError) Unwrap() error {
	return e.Underlying
}

// classify maps an internal sentinel error onto the public Status
// taxonomy (spec §7). The mapping is a flat errors.Is table rather
// than a type switch, since most internal packages signal failure
// with a package-level sentinel wrapped by github.com/pkg/errors.
func classify(err error) Status {
	if err == nil {
		return StatusOk
	}

	switch {
	case stderrors.Is(err, bitio.ErrEndOfStream):
		return StatusEndOfStreamError

	case stderrors.Is(err, section.ErrNotGrib),
		stderrors.Is(err, section.ErrUnsupportedEdition),
		stderrors.Is(err, section.ErrUnexpectedSection),
		stderrors.Is(err, bitio.ErrSectionOverrun),
		stderrors.Is(err, bitio.ErrBadExtraBytes),
		stderrors.Is(err, grid.ErrBadScanMode),
		stderrors.Is(err, data.ErrPointCountMismatch),
		stderrors.Is(err, data.ErrBadSpatialOrder),
		stderrors.Is(err, ErrNotForecast):
		return StatusParseError

	case stderrors.Is(err, section.ErrUnsupportedTable),
		stderrors.Is(err, section.ErrGridSourceUnsupported),
		stderrors.Is(err, grid.ErrUnsupportedGridTemplate),
		stderrors.Is(err, data.ErrUnsupportedDataTemplate),
		stderrors.Is(err, data.ErrMissingValueManagement):
		return StatusNotImplemented

	default:
		return StatusParseError
	}
}

// ErrNotForecast re-exports the internal sentinel for type-of-processed-data
// != 1 (forecast) so callers can errors.Is against it directly. The spec's
// error-taxonomy table (§7) does not name this case explicitly, but its
// prose (§4.2) calls it out as its own condition and it shares ParseError
// severity with the other fixed-field mismatches in that table.
var ErrNotForecast = section.ErrNotForecast
