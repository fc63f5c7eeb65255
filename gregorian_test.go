package hifitime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	hifitime "github.com/mkolopanis/hifitime"
)

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		descr string
		year  int32
		exp   bool
	}{
		{"Y1700NotDivisibleBy400", 1700, false},
		{"Y1800NotDivisibleBy400", 1800, false},
		{"Y1900NotDivisibleBy400", 1900, false},
		{"Y2000DivisibleBy400", 2000, true},
		{"Y2004DivisibleBy4", 2004, true},
		{"Y2021NotLeap", 2021, false},
	}
	for _, tc := range cases {
		t.Run(tc.descr, func(t *testing.T) {
			assert.Equal(t, tc.exp, hifitime.IsLeapYear(tc.year))
		})
	}
}

func TestLeapYearsPer400YearBlock(t *testing.T) {
	count := 0
	for y := int32(1600); y < 2000; y++ {
		if hifitime.IsLeapYear(y) {
			count++
		}
	}
	assert.Equal(t, 97, count)
}

func TestIsGregorianValidRejectsOutOfRangeFields(t *testing.T) {
	cases := []struct {
		descr                              string
		year                               int32
		month, day, hour, minute, second   uint8
		nanos                              uint32
		exp                                bool
	}{
		{"ValidOrdinaryDate", 2022, 5, 20, 17, 57, 43, 0, true},
		{"MonthZero", 2022, 0, 20, 17, 57, 43, 0, false},
		{"MonthThirteen", 2022, 13, 20, 17, 57, 43, 0, false},
		{"DayZero", 2022, 5, 0, 17, 57, 43, 0, false},
		{"FebruaryTwentyNineNonLeapYear", 2021, 2, 29, 0, 0, 0, 0, false},
		{"FebruaryTwentyNineLeapYear", 2020, 2, 29, 0, 0, 0, 0, true},
		{"SecondSixtyOrdinaryMinute", 2022, 5, 20, 17, 57, 60, 0, false},
		{"SecondSixtyOnAnnouncedLeapSecond", 1972, 6, 30, 23, 59, 60, 0, true},
		{"NanosOverflow", 2022, 5, 20, 17, 57, 43, 1_000_000_000, false},
	}
	for _, tc := range cases {
		t.Run(tc.descr, func(t *testing.T) {
			got := hifitime.IsGregorianValid(tc.year, tc.month, tc.day, tc.hour, tc.minute, tc.second, tc.nanos)
			assert.Equal(t, tc.exp, got)
		})
	}
}
