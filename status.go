package grib2dec

// Status classifies the outcome of a NextMessage call (spec §6/§7).
type Status int

const (
	// StatusOk means a message was decoded successfully.
	StatusOk Status = iota

	// StatusEnd means the input is exhausted; no more messages remain.
	StatusEnd

	// StatusParseError means the message was malformed in a way this
	// decoder considers a genuine format violation (bad magic, bad
	// scan mode, mismatched point count, and the like), as opposed to
	// a well-formed but unsupported feature.
	StatusParseError

	// StatusEndOfStreamError means the input was truncated partway
	// through a section.
	StatusEndOfStreamError

	// StatusNotImplemented means the message used a well-formed but
	// unsupported feature: a grid or data template this decoder does
	// not carry, a non-default missing-value scheme, a non-zero grid
	// source, or a master table version other than 2.
	StatusNotImplemented
)

// String names a Status for logging.
func (s Status) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusEnd:
		return "End"
	case StatusParseError:
		return "ParseError"
	case StatusEndOfStreamError:
		return "EndOfStreamError"
	case StatusNotImplemented:
		return "NotImplemented"
	default:
		return "Unknown"
	}
}
