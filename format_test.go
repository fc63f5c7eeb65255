package hifitime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hifitime "github.com/mkolopanis/hifitime"
)

func TestEpochStringOmitsFractionWhenZero(t *testing.T) {
	e, err := hifitime.FromGregorianUTC(2022, 5, 20, 17, 57, 43, 0)
	require.NoError(t, err)
	assert.Equal(t, "2022-05-20T17:57:43Z", e.String())
}

func TestEpochStringIncludesFractionWhenNonZero(t *testing.T) {
	e, err := hifitime.FromGregorianUTC(2022, 5, 20, 17, 57, 43, 500_000_000)
	require.NoError(t, err)
	assert.Equal(t, "2022-05-20T17:57:43.500000000Z", e.String())
}

func TestEpochFormatTagsNonUTCScales(t *testing.T) {
	e, err := hifitime.FromGregorianUTC(2022, 5, 20, 17, 57, 43, 0)
	require.NoError(t, err)
	assert.Contains(t, e.Format(hifitime.TAI), "TAI")
	assert.Contains(t, e.Format(hifitime.TT), "TT")
}

func TestEpochFormatGPSTAndUnixAreNumeric(t *testing.T) {
	e, err := hifitime.FromGregorianUTC(2022, 5, 20, 17, 57, 43, 0)
	require.NoError(t, err)
	assert.Contains(t, e.Format(hifitime.GPST), "GPST")
	assert.Contains(t, e.Format(hifitime.Unix), "UNIX")
}

func TestStrftimeBasicSpecifiers(t *testing.T) {
	e, err := hifitime.FromGregorianUTC(2022, 5, 20, 17, 57, 43, 0)
	require.NoError(t, err)
	got := e.Strftime("%Y-%m-%d %H:%M:%S")
	assert.Equal(t, "2022-05-20 17:57:43", got)
}

func TestStrftimeWeekday(t *testing.T) {
	// 2022-05-20 was a Friday.
	e, err := hifitime.FromGregorianUTC(2022, 5, 20, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Friday", e.Strftime("%A"))
	assert.Equal(t, "Fri", e.Strftime("%a"))
}

func TestStrftimePanicsOnUnknownSpecifier(t *testing.T) {
	e, err := hifitime.FromGregorianUTC(2022, 5, 20, 17, 57, 43, 0)
	require.NoError(t, err)
	assert.Panics(t, func() {
		e.Strftime("%Q")
	})
}

func TestStrftimeEscapedPercent(t *testing.T) {
	e, err := hifitime.FromGregorianUTC(2022, 5, 20, 17, 57, 43, 0)
	require.NoError(t, err)
	assert.Equal(t, "100%", e.Strftime("100%%"))
}
