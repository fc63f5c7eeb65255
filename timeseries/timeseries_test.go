package timeseries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hifitime "github.com/mkolopanis/hifitime"
	"github.com/mkolopanis/hifitime/timeseries"
)

func mustEpoch(t *testing.T, seconds float64) hifitime.Epoch {
	t.Helper()
	e, err := hifitime.FromTAISeconds(seconds)
	require.NoError(t, err)
	return e
}

func TestSeriesYieldsExpectedCount(t *testing.T) {
	start := mustEpoch(t, 0)
	end := mustEpoch(t, 3_600)
	s, err := timeseries.New(start, end, hifitime.Minutes(15))
	require.NoError(t, err)

	all := s.All()
	assert.Len(t, all, 4)
	assert.True(t, all[0].Equal(start))
}

func TestSeriesNeverYieldsEnd(t *testing.T) {
	start := mustEpoch(t, 0)
	end := mustEpoch(t, 100)
	s, err := timeseries.New(start, end, hifitime.Seconds(50))
	require.NoError(t, err)

	for {
		e, ok := s.Next()
		if !ok {
			break
		}
		assert.True(t, e.Before(end))
	}
}

func TestSeriesReset(t *testing.T) {
	start := mustEpoch(t, 0)
	end := mustEpoch(t, 10)
	s, err := timeseries.New(start, end, hifitime.Seconds(5))
	require.NoError(t, err)

	first := s.All()
	s.Reset()
	second := s.All()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]))
	}
}

func TestSeriesRejectsInvalidRange(t *testing.T) {
	start := mustEpoch(t, 100)
	end := mustEpoch(t, 0)
	_, err := timeseries.New(start, end, hifitime.Seconds(1))
	assert.ErrorIs(t, err, timeseries.ErrInvalidRange)
}

func TestSeriesRejectsNonPositiveStep(t *testing.T) {
	start := mustEpoch(t, 0)
	end := mustEpoch(t, 100)
	_, err := timeseries.New(start, end, hifitime.Zero)
	assert.ErrorIs(t, err, timeseries.ErrInvalidStep)

	_, err = timeseries.New(start, end, hifitime.Seconds(-1))
	assert.ErrorIs(t, err, timeseries.ErrInvalidStep)
}
