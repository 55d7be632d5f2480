package filter

// Result is the outcome of applying a Window to a grid: the rewritten
// corner coordinates/point counts for both axes and the oracle that
// will drive the unpacker over the original (untrimmed) raster.
type Result struct {
	Lon, Lat Trimmed
	Oracle   *RowOracle
}

// Apply computes the spec section 4.3 grid trim and accept oracle for a
// lat/lon grid. lon1/lon2/lonInc describe the i axis (lonInc signed so
// its sign matches lon2-lon1); lat1/lat2/latInc describe the j axis.
// niOriginal/njOriginal are the untrimmed point counts.
func Apply(w Window, lon1, lon2, lonInc float64, niOriginal int, lat1, lat2, latInc float64, njOriginal int) Result {
	lonUnset := w.LonMin == 0 && w.LonMax == 0
	latUnset := w.LatMin == 0 && w.LatMax == 0

	lonSkip := AxisTrim(lon1, lon2, lonInc, w.LonMin, w.LonMax, lonUnset)
	latSkip := AxisTrim(lat1, lat2, latInc, w.LatMin, w.LatMax, latUnset)

	lonTrim := ApplyAxis(lon1, lon2, lonInc, niOriginal, lonSkip)
	latTrim := ApplyAxis(lat1, lat2, latInc, njOriginal, latSkip)

	skipBegin := latSkip.Front*niOriginal + lonSkip.Front
	skipI := lonSkip.Back + lonSkip.Front
	skipEnd := lonSkip.Back + latSkip.Back*niOriginal

	oracle := NewRowOracle(skipBegin, skipEnd, skipI, lonTrim.N, latTrim.N)

	return Result{Lon: lonTrim, Lat: latTrim, Oracle: oracle}
}
