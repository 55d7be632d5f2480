package tables

// WMO Code Table 4.1: Parameter Category by Product Discipline, and
// Code Table 4.2: Parameter Number by Product Discipline and Category.
//
// This decoder composes the three-level discipline/category/parameter
// identifier into single integers the way the public Message shape does:
// category = 1000*discipline + localCategory, parameter = 1000*category +
// localParameter. The tables below are keyed on those composed codes so a
// single SimpleTable lookup resolves either level without a discipline ->
// category -> parameter chain of maps.

// Discipline 0: Meteorological Products (categories 0-20, 190-191)
var categoryMeteorologicalEntries = []*Entry{
	{0, "Temperature", "Temperature", ""},
	{1, "Moisture", "Moisture", ""},
	{2, "Momentum", "Momentum", ""},
	{3, "Mass", "Mass", ""},
	{4, "Short-wave Radiation", "Short-wave radiation", ""},
	{5, "Long-wave Radiation", "Long-wave radiation", ""},
	{6, "Cloud", "Cloud", ""},
	{7, "Thermodynamic Stability", "Thermodynamic stability indices", ""},
	{8, "Aerosols", "Aerosols", ""},
	{9, "Trace Gases", "Trace gases (e.g. ozone, CO2)", ""},
	{10, "Radar", "Radar", ""},
	{13, "Nuclear/Radiology", "Nuclear/radiology", ""},
	{19, "Vegetation/Biomass", "Vegetation/biomass", ""},
	{190, "CCITT IA5 String", "CCITT IA5 string", ""},
	{191, "Miscellaneous", "Miscellaneous", ""},
}

// Discipline 1: Hydrological Products
var categoryHydrologicalEntries = []*Entry{
	{0, "Hydrology Basic", "Hydrology basic products", ""},
	{1, "Hydrology Probabilities", "Hydrology probabilities", ""},
	{2, "Inland Water", "Inland water and sediment properties", ""},
}

// Discipline 2: Land Surface Products
var categoryLandSurfaceEntries = []*Entry{
	{0, "Vegetation/Biomass", "Vegetation/biomass", ""},
	{1, "Agricultural", "Agricultural/aquacultural special products", ""},
	{3, "Soil Products", "Soil products", ""},
	{4, "Fire Weather", "Fire weather products", ""},
}

// Discipline 3: Space Products
var categorySpaceEntries = []*Entry{
	{0, "Image Format", "Image format products", ""},
	{1, "Quantitative", "Quantitative products", ""},
	{2, "Cloud Properties", "Cloud properties", ""},
}

// Discipline 10: Oceanographic Products
var categoryOceanographicEntries = []*Entry{
	{0, "Waves", "Waves", ""},
	{1, "Currents", "Currents", ""},
	{2, "Ice", "Ice", ""},
	{3, "Surface Properties", "Surface properties", ""},
	{4, "Sub-surface Properties", "Sub-surface properties", ""},
}

// compose builds the 1000*outer + inner identifier used throughout this
// package, matching the Message.Category / Message.Parameter invariant.
func compose(outer, inner int) int {
	return 1000*outer + inner
}

func withOffset(discipline int, entries []*Entry) []*Entry {
	out := make([]*Entry, len(entries))
	for i, e := range entries {
		c := *e
		c.Code = compose(discipline, e.Code)
		out[i] = &c
	}
	return out
}

// CategoryTable resolves a composed category code (1000*discipline+local)
// to its WMO Table 4.1 name.
var CategoryTable = NewSimpleTable(concatEntries(
	withOffset(0, categoryMeteorologicalEntries),
	withOffset(1, categoryHydrologicalEntries),
	withOffset(2, categoryLandSurfaceEntries),
	withOffset(3, categorySpaceEntries),
	withOffset(10, categoryOceanographicEntries),
), "Unknown category")

func concatEntries(lists ...[]*Entry) []*Entry {
	var out []*Entry
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// GetCategoryName returns the human-readable name of a composed category code.
func GetCategoryName(category int) string {
	return CategoryTable.Name(category)
}

// Discipline 0, Category 0: Temperature parameters (category code 0)
var parameterTemperatureEntries = []*Entry{
	{0, "Temperature", "Temperature", "K"},
	{1, "Virtual Temperature", "Virtual temperature", "K"},
	{2, "Potential Temperature", "Potential temperature", "K"},
	{4, "Maximum Temperature", "Maximum temperature", "K"},
	{5, "Minimum Temperature", "Minimum temperature", "K"},
	{6, "Dew Point Temperature", "Dew point temperature", "K"},
	{7, "Dew Point Depression", "Dew point depression (or deficit)", "K"},
	{17, "Skin Temperature", "Skin temperature", "K"},
}

// Discipline 0, Category 1: Moisture parameters (category code 1)
var parameterMoistureEntries = []*Entry{
	{0, "Specific Humidity", "Specific humidity", "kg/kg"},
	{1, "Relative Humidity", "Relative humidity", "%"},
	{3, "Precipitable Water", "Precipitable water", "kg/m^2"},
	{8, "Total Precipitation", "Total precipitation", "kg/m^2"},
	{11, "Snow Depth", "Snow depth", "m"},
}

// Discipline 0, Category 2: Momentum parameters (category code 2)
var parameterMomentumEntries = []*Entry{
	{0, "Wind Direction", "Wind direction (from which blowing)", "deg"},
	{1, "Wind Speed", "Wind speed", "m/s"},
	{2, "U-Component of Wind", "U-component of wind", "m/s"},
	{3, "V-Component of Wind", "V-component of wind", "m/s"},
	{8, "Vertical Velocity (Pressure)", "Vertical velocity (pressure)", "Pa/s"},
	{10, "Absolute Vorticity", "Absolute vorticity", "1/s"},
}

// Discipline 0, Category 3: Mass parameters (category code 3)
var parameterMassEntries = []*Entry{
	{0, "Pressure", "Pressure", "Pa"},
	{1, "Pressure Reduced to MSL", "Pressure reduced to MSL", "Pa"},
	{5, "Geopotential Height", "Geopotential height", "gpm"},
	{6, "Geometric Height", "Geometric height", "m"},
}

// ParameterTable resolves a composed parameter code (1000*category+local)
// to its WMO Table 4.2 name. Only the categories above are populated; any
// other composed code falls back to "Unknown parameter".
var ParameterTable = NewSimpleTable(concatEntries(
	withOffset(0, parameterTemperatureEntries),
	withOffset(1, parameterMoistureEntries),
	withOffset(2, parameterMomentumEntries),
	withOffset(3, parameterMassEntries),
), "Unknown parameter")

// Notable composed parameter codes referenced directly by spec.md.
const (
	ParameterUWind = 2002 // U-component of wind
	ParameterVWind = 2003 // V-component of wind
)

// GetParameterName returns the human-readable name of a composed parameter code.
func GetParameterName(parameter int) string {
	return ParameterTable.Name(parameter)
}
