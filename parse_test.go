package hifitime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hifitime "github.com/mkolopanis/hifitime"
)

func TestParseISO8601DefaultsToUTC(t *testing.T) {
	e, err := hifitime.ParseISO8601("2022-05-20T17:57:43")
	require.NoError(t, err)
	want, err := hifitime.FromGregorianUTC(2022, 5, 20, 17, 57, 43, 0)
	require.NoError(t, err)
	assert.True(t, e.Equal(want))
}

func TestParseISO8601AcceptsSpaceSeparator(t *testing.T) {
	e, err := hifitime.ParseISO8601("2022-05-20 17:57:43")
	require.NoError(t, err)
	want, err := hifitime.FromGregorianUTC(2022, 5, 20, 17, 57, 43, 0)
	require.NoError(t, err)
	assert.True(t, e.Equal(want))
}

func TestParseISO8601FractionalSecondsPadding(t *testing.T) {
	e, err := hifitime.ParseISO8601("2022-05-20T17:57:43.5")
	require.NoError(t, err)
	want, err := hifitime.FromGregorianUTC(2022, 5, 20, 17, 57, 43, 500_000_000)
	require.NoError(t, err)
	assert.True(t, e.Equal(want))
}

func TestParseISO8601WithExplicitScale(t *testing.T) {
	e, err := hifitime.ParseISO8601("2022-05-20T17:57:43 TAI")
	require.NoError(t, err)
	want, err := hifitime.FromGregorianTAI(2022, 5, 20, 17, 57, 43, 0)
	require.NoError(t, err)
	assert.True(t, e.Equal(want))
}

func TestParseISO8601RejectsGarbage(t *testing.T) {
	_, err := hifitime.ParseISO8601("not a date")
	assert.Error(t, err)
}

func TestParseCompactSeconds(t *testing.T) {
	e, err := hifitime.ParseCompact("SEC 2272060800.0 TAI")
	require.NoError(t, err)
	want, err := hifitime.FromTAISeconds(2_272_060_800.0)
	require.NoError(t, err)
	assert.True(t, e.Equal(want))
}

func TestParseCompactMJD(t *testing.T) {
	e, err := hifitime.ParseCompact("MJD 59000.0 TAI")
	require.NoError(t, err)
	want, err := hifitime.FromMJDTAIDays(59_000.0)
	require.NoError(t, err)
	assert.True(t, e.Equal(want))
}

func TestParseCompactRejectsUnsupportedScaleForFormat(t *testing.T) {
	_, err := hifitime.ParseCompact("MJD 59000.0 GPST")
	assert.Error(t, err)
}

func TestParseCompactRejectsMalformedInput(t *testing.T) {
	_, err := hifitime.ParseCompact("garbage")
	assert.Error(t, err)
}
