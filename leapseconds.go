package hifitime

// leapSeconds is the IETF leap-second table: TAI seconds since 1900-01-01
// (J1900) at which a UTC leap second takes effect. The first entry folds in
// the 10 seconds of historical TAI-UTC skew accumulated before 1972; every
// entry after that adds exactly one more second.
//
// https://www.ietf.org/timezones/data/leap-seconds.list
var leapSeconds = [...]float64{
	2_272_060_800.0, // 10 # 1 Jan 1972
	2_287_785_600.0, // 11 # 1 Jul 1972
	2_303_683_200.0, // 12 # 1 Jan 1973
	2_335_219_200.0, // 13 # 1 Jan 1974
	2_366_755_200.0, // 14 # 1 Jan 1975
	2_398_291_200.0, // 15 # 1 Jan 1976
	2_429_913_600.0, // 16 # 1 Jan 1977
	2_461_449_600.0, // 17 # 1 Jan 1978
	2_492_985_600.0, // 18 # 1 Jan 1979
	2_524_521_600.0, // 19 # 1 Jan 1980
	2_571_782_400.0, // 20 # 1 Jul 1981
	2_603_318_400.0, // 21 # 1 Jul 1982
	2_634_854_400.0, // 22 # 1 Jul 1983
	2_698_012_800.0, // 23 # 1 Jul 1985
	2_776_982_400.0, // 24 # 1 Jan 1988
	2_840_140_800.0, // 25 # 1 Jan 1990
	2_871_676_800.0, // 26 # 1 Jan 1991
	2_918_937_600.0, // 27 # 1 Jul 1992
	2_950_473_600.0, // 28 # 1 Jul 1993
	2_982_009_600.0, // 29 # 1 Jul 1994
	3_029_443_200.0, // 30 # 1 Jan 1996
	3_076_704_000.0, // 31 # 1 Jul 1997
	3_124_137_600.0, // 32 # 1 Jan 1999
	3_345_062_400.0, // 33 # 1 Jan 2006
	3_439_756_800.0, // 34 # 1 Jan 2009
	3_550_089_600.0, // 35 # 1 Jul 2012
	3_644_697_600.0, // 36 # 1 Jul 2015
	3_692_217_600.0, // 37 # 1 Jan 2017
}

// JanuaryYears and JulyYears list the years in which a January-1 or July-1
// leap second actually occurred, used by IsGregorianValid to decide whether
// a literal second value of 60 is acceptable for a given date.
var (
	JanuaryYears = [...]int32{
		1972, 1973, 1974, 1975, 1976, 1977, 1978, 1979, 1980, 1988, 1990, 1991,
		1996, 1999, 2006, 2009, 2017,
	}
	JulyYears = [...]int32{
		1972, 1981, 1982, 1983, 1985, 1992, 1993, 1994, 1997, 2012, 2015,
	}
)

func isYearInTable(table []int32, year int32) bool {
	for _, y := range table {
		if y == year {
			return true
		}
	}
	return false
}

// GetNumLeapSeconds returns the accumulated TAI-UTC offset, in whole
// seconds, at the given Epoch. It scans the sorted leapSeconds table and
// returns 0 before the first entry, 10 from the first entry up to (but not
// including) the second, 11 from the second onward up to the third, and so
// on.
func GetNumLeapSeconds(e Epoch) int {
	taiSeconds := e.tai.InSeconds()
	count := 0
	for _, ts := range leapSeconds {
		if taiSeconds >= ts {
			if count == 0 {
				count = 10
			} else {
				count++
			}
		} else {
			break
		}
	}
	return count
}
