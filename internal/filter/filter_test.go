package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Example 4 from spec: ni=4, nj=2, lon1=0, lon2=30, lonInc=10; window
// lon in [10,20] trims to columns 1 and 2 of each row, new ni=2.
func TestApplyTrimsColumns(t *testing.T) {
	w := Window{LonMin: 10, LonMax: 20}
	res := Apply(w, 0, 30, 10, 4, 0, 10, 10, 2)

	assert.EqualValues(t, 10, res.Lon.Corner1)
	assert.EqualValues(t, 20, res.Lon.Corner2)
	assert.Equal(t, 2, res.Lon.N)
	assert.Equal(t, 0, res.Lat.Skip.Front+res.Lat.Skip.Back)
	assert.Equal(t, 2, res.Lat.N)

	var accepted []bool
	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			accepted = append(accepted, res.Oracle.Accept())
		}
	}
	assert.Equal(t, []bool{false, true, true, false, false, true, true, false}, accepted)
}

func TestApplyFullWindowAcceptsEverything(t *testing.T) {
	w := Window{} // unset both axes
	res := Apply(w, 0, 30, 10, 4, 0, 10, 10, 2)

	require.Equal(t, 4, res.Lon.N)
	require.Equal(t, 2, res.Lat.N)

	for i := 0; i < 8; i++ {
		assert.True(t, res.Oracle.Accept(), "sample %d should be accepted when window is unset", i)
	}
}

func TestAxisTrimDescendingAxis(t *testing.T) {
	// lat1=10 (north) descending to lat2=0 (south), latInc=-5.
	// window lat in [2,8] should trim front (lat1=10 > hi=8) and
	// back (lat2=0 < lo=2).
	skip := AxisTrim(10, 0, -5, 2, 8, false)
	assert.Equal(t, 1, skip.Front)
	assert.Equal(t, 1, skip.Back)
}
