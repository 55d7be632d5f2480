// Package grib2dec decodes GRIB2 edition 2 messages: the WMO binary
// format for gridded meteorological data. It supports regular
// latitude/longitude grids (templates 3.0-3.3) and simple or complex
// packing, with or without spatial differencing (templates 5.0, 5.2,
// 5.3). It reads one message at a time from a stream, synchronously
// and single-threaded, applying an optional spatial window to trim
// both the reported grid and the emitted values.
package grib2dec

import (
	"fmt"

	"github.com/mmp/grib2dec/internal/tables"
)

// Discipline identifies the broad domain of a message's data (WMO
// Code Table 0.0). Only the disciplines below are named as constants;
// any other wire value passes through as its raw int (it is not mapped
// to DisciplineUnknown), and Name reports it from the tables package.
type Discipline int

const (
	DisciplineUnknown        Discipline = -1
	DisciplineMeteorological Discipline = 0
	DisciplineHydrologic     Discipline = 1
	DisciplineLandSurface    Discipline = 2
	DisciplineSpace          Discipline = 3
	DisciplineOceanographic  Discipline = 10
)

// Name returns the WMO table 0.0 name for d, looked up in the shared
// tables package for every value, named above or not.
func (d Discipline) Name() string {
	return tables.GetDisciplineName(int(d))
}

// Notable composed parameter codes (category = 1000*discipline +
// localCategory, parameter = 1000*category + localParameter; spec §6).
const (
	ParameterUWind = tables.ParameterUWind
	ParameterVWind = tables.ParameterVWind
)

// Datetime is the reference time decoded from section 1.
type Datetime struct {
	Year, Month, Day, Hour, Minute, Second int
}

// Grid is the public, post-filter description of a message's
// latitude/longitude grid: seven doubles (earth radius, corners,
// increments) plus the two point counts, matching spec §6's public
// Message shape.
type Grid struct {
	EarthRadius float64 // meters

	Ni, Nj int

	Lat1, Lon1 float64 // degrees
	Lat2, Lon2 float64 // degrees
	LatInc     float64 // degrees, signed
	LonInc     float64 // degrees, signed
}

// Message is one decoded GRIB2 message: metadata plus the unpacked,
// post-filter sample values. Values aliases the Decoder's owned
// buffer and is only valid until the next NextMessage call; callers
// that retain it must copy (spec §5).
type Message struct {
	Discipline Discipline
	Datetime   Datetime

	// Category and Parameter are the composed three-level codes (spec
	// §6): Category = 1000*Discipline + localCategory, Parameter =
	// 1000*Category + localParameter.
	Category  int
	Parameter int

	Grid Grid

	// Values holds exactly Grid.Ni * Grid.Nj post-filter samples in
	// row-major order.
	Values []float64
}

// String returns a human-readable summary of the message.
func (m *Message) String() string {
	return fmt.Sprintf("%s message: parameter %d, %dx%d grid, %d values",
		m.Discipline.Name(), m.Parameter, m.Grid.Ni, m.Grid.Nj, len(m.Values))
}
