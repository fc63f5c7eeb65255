package hifitime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hifitime "github.com/mkolopanis/hifitime"
)

func TestGetNumLeapSecondsBeforeTable(t *testing.T) {
	e, err := hifitime.FromTAISeconds(0)
	require.NoError(t, err)
	assert.Equal(t, 0, hifitime.GetNumLeapSeconds(e))
}

func TestGetNumLeapSecondsAtKnownBoundaries(t *testing.T) {
	cases := []struct {
		descr          string
		taiSeconds     float64
		expectedCount  int
	}{
		{"FirstLeapSecond1972", 2_272_060_800.0, 10},
		{"SecondLeapSecond1972Jul", 2_287_785_600.0, 11},
		{"Leap2017", 3_692_217_600.0, 37},
	}
	for _, tc := range cases {
		t.Run(tc.descr, func(t *testing.T) {
			e, err := hifitime.FromTAISeconds(tc.taiSeconds)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCount, hifitime.GetNumLeapSeconds(e))
		})
	}
}

func TestJulyAndJanuaryYearTables(t *testing.T) {
	assert.Contains(t, hifitime.JulyYears[:], int32(1972))
	assert.Contains(t, hifitime.JanuaryYears[:], int32(1972))
	assert.NotContains(t, hifitime.JulyYears[:], int32(2000))
}
