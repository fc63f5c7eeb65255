package hifitime

import "math"

// Constants from the original design, §3.5, kept in the same units.
const (
	// J1900OffsetDays is the MJD of 1900-01-01.
	J1900OffsetDays = 15_020.0
	// J2000OffsetDays is the MJD of 2000-01-01 at noon.
	J2000OffsetDays = 51_544.5
	// MJDOffsetDays is JD minus MJD.
	MJDOffsetDays = 2_400_000.5
	// ETEpochSeconds is J2000 TAI expressed in seconds since J1900.
	ETEpochSeconds = 3_155_716_800
	// TTOffsetSeconds is TT minus TAI.
	TTOffsetSeconds = 32.184
	// ETOffsetMicroseconds is ET minus TAI at J2000, in microseconds.
	ETOffsetMicroseconds = 32_184_935
	// SecondsGPSTAIOffset is the GPST epoch in TAI-seconds-since-J1900:
	// 80 Julian years + 4 days + 19 leap seconds.
	SecondsGPSTAIOffset = 80*31_557_600 + 4*86_400 + 19
	// UnixRefTAINanoseconds is the UNIX epoch in TAI-nanoseconds-since-J1900.
	UnixRefTAINanoseconds uint64 = 2_208_988_800_000_000_000
)

var (
	ttOffsetDuration  = Milliseconds(TTOffsetSeconds * 1_000)
	etEpochDuration    = Seconds(ETEpochSeconds)
	etOffsetDuration   = Microseconds(ETOffsetMicroseconds)
	gpstOffsetDuration = Seconds(SecondsGPSTAIOffset)
	unixRefDuration    = FromParts(0, UnixRefTAINanoseconds)
	j1900OffsetDur     = Days(J1900OffsetDays)
	mjdOffsetDur        = Days(MJDOffsetDays)
)

// Epoch is a named instant: internally one Duration measured from the TAI
// reference (1900-01-01T00:00:00 TAI, "J1900"). Every other scale is a pure
// function of that Duration.
type Epoch struct {
	tai Duration
}

// FromTAIDuration wraps a Duration already measured from J1900 TAI.
func FromTAIDuration(d Duration) Epoch { return Epoch{tai: d} }

// FromTAIParts builds an Epoch from centuries/nanoseconds since J1900 TAI.
func FromTAIParts(centuries int16, nanoseconds uint64) Epoch {
	return Epoch{tai: FromParts(centuries, nanoseconds)}
}

// FromTAISeconds builds an Epoch from TAI seconds since J1900.
func FromTAISeconds(seconds float64) (Epoch, error) {
	d, err := FromF64(seconds, UnitSecond)
	if err != nil {
		return Epoch{}, err
	}
	return Epoch{tai: d}, nil
}

// FromTAIDays builds an Epoch from TAI days since J1900.
func FromTAIDays(days float64) (Epoch, error) {
	d, err := FromF64(days, UnitDay)
	if err != nil {
		return Epoch{}, err
	}
	return Epoch{tai: d}, nil
}

// leapAdjustedTAI treats seconds-since-J1900 as if it were already TAI,
// looks up the leap count at that instant, and adds it back in. Because leap
// seconds are sparse relative to any query, the self-reference is stable:
// the table entries are months apart, far more widely spaced than the few
// tens of seconds separating TAI from UTC.
func leapAdjustedTAI(asIfTAI Duration) Duration {
	cnt := GetNumLeapSeconds(Epoch{tai: asIfTAI})
	return asIfTAI.Add(Seconds(float64(cnt)))
}

// FromUTCSeconds builds an Epoch from UTC seconds since J1900.
func FromUTCSeconds(seconds float64) (Epoch, error) {
	d, err := FromF64(seconds, UnitSecond)
	if err != nil {
		return Epoch{}, err
	}
	return Epoch{tai: leapAdjustedTAI(d)}, nil
}

// FromUTCDays builds an Epoch from UTC days since J1900.
func FromUTCDays(days float64) (Epoch, error) {
	d, err := FromF64(days, UnitDay)
	if err != nil {
		return Epoch{}, err
	}
	return Epoch{tai: leapAdjustedTAI(d)}, nil
}

// FromTTSeconds builds an Epoch from Terrestrial Time seconds since J1900.
func FromTTSeconds(seconds float64) (Epoch, error) {
	d, err := FromF64(seconds, UnitSecond)
	if err != nil {
		return Epoch{}, err
	}
	return Epoch{tai: d.Sub(ttOffsetDuration)}, nil
}

// FromETSeconds builds an Epoch from SPICE Ephemeris Time seconds past the
// J2000 reference.
func FromETSeconds(seconds float64) (Epoch, error) {
	d, err := FromF64(seconds, UnitSecond)
	if err != nil {
		return Epoch{}, err
	}
	return Epoch{tai: d.Add(etEpochDuration).Sub(etOffsetDuration)}, nil
}

// innerGRad computes the mean anomaly term shared by the TDB forward and
// inverse conversions.
func innerGRad(ttCenturiesJ2K float64) float64 {
	g := (math.Pi / 180.0) * (357.528 + 35_999.050*ttCenturiesJ2K)
	return g + 0.0167*math.Sin(g)
}

// FromTDBSeconds builds an Epoch from Barycentric Dynamical Time seconds
// past J2000.
func FromTDBSeconds(seconds float64) (Epoch, error) {
	d, err := FromF64(seconds, UnitSecond)
	if err != nil {
		return Epoch{}, err
	}
	ttDuration := d.Sub(ttOffsetDuration)
	// The TDB value past J2000 stands in for TT when computing T.
	ttCenturiesJ2K := d.InUnit(UnitCentury)
	inner := innerGRad(ttCenturiesJ2K)
	delta := 0.001_658 * math.Sin(inner)
	tai := ttDuration.Add(etEpochDuration).Sub(Seconds(delta))
	return Epoch{tai: tai}, nil
}

// FromGPSTSeconds builds an Epoch from GPS Time seconds since the GPST
// epoch (1980-01-06 00:00:00 UTC).
func FromGPSTSeconds(seconds float64) (Epoch, error) {
	d, err := FromF64(seconds, UnitSecond)
	if err != nil {
		return Epoch{}, err
	}
	return Epoch{tai: d.Add(gpstOffsetDuration)}, nil
}

// FromGPSTNanoseconds builds an Epoch from nanoseconds since the GPST
// epoch, exactly: every k below NsPerCentury round-trips through
// AsGPSTNanoseconds without loss. A larger k still builds the exact Epoch,
// but AsGPSTNanoseconds reports ErrOverflow for it.
func FromGPSTNanoseconds(ns uint64) Epoch {
	centuries := int16(ns / NsPerCentury)
	rem := ns % NsPerCentury
	return Epoch{tai: FromParts(centuries, rem).Add(gpstOffsetDuration)}
}

// FromUnixSeconds builds an Epoch from UNIX seconds (UTC).
func FromUnixSeconds(seconds float64) (Epoch, error) {
	d, err := FromF64(seconds, UnitSecond)
	if err != nil {
		return Epoch{}, err
	}
	utcAsIfTAI := d.Add(unixRefDuration)
	return Epoch{tai: leapAdjustedTAI(utcAsIfTAI)}, nil
}

// FromMJDTAIDays builds an Epoch from a Modified Julian Date in TAI days.
func FromMJDTAIDays(mjdDays float64) (Epoch, error) { return FromTAIDays(mjdDays - J1900OffsetDays) }

// FromMJDUTCDays builds an Epoch from a Modified Julian Date in UTC days.
func FromMJDUTCDays(mjdDays float64) (Epoch, error) { return FromUTCDays(mjdDays - J1900OffsetDays) }

// FromJDTAIDays builds an Epoch from a Julian Date in TAI days.
func FromJDTAIDays(jdDays float64) (Epoch, error) {
	return FromTAIDays(jdDays - J1900OffsetDays - MJDOffsetDays)
}

// FromJDUTCDays builds an Epoch from a Julian Date in UTC days.
func FromJDUTCDays(jdDays float64) (Epoch, error) {
	return FromUTCDays(jdDays - J1900OffsetDays - MJDOffsetDays)
}

// FromGregorian builds an Epoch from calendar fields interpreted in the
// given scale. second may be 60 to encode a leap second, per
// IsGregorianValid; the Carry error is returned for any other out-of-range
// field.
func FromGregorian(year int32, month, day, hour, minute, second uint8, nanos uint32, scale TimeScale) (Epoch, error) {
	if !IsGregorianValid(year, month, day, hour, minute, second, nanos) {
		return Epoch{}, ErrCarry
	}

	total := Days(float64(365 * iabs32(year-1900)))
	if year < 1900 {
		total = total.Neg()
	}
	for y := int32(1900); y < year; y++ {
		if IsLeapYear(y) {
			total = total.Add(Days(1))
		}
	}
	for m := uint8(1); m < month; m++ {
		total = total.Add(Days(float64(usualDaysPerMonth[m])))
	}
	if IsLeapYear(year) && month > February {
		total = total.Add(Days(1))
	}
	total = total.Add(Days(float64(day - 1)))
	total = total.Add(Hours(float64(hour)))
	total = total.Add(Minutes(float64(minute)))
	total = total.Add(Seconds(float64(second)))
	total = total.Add(Nanoseconds(float64(nanos)))
	leapLookup := total
	if second == 60 {
		// The whole ambiguity of leap seconds: two distinct UTC instants
		// (23:59:60 and the following 00:00:00) land one second apart in
		// TAI. This folds the literal :60 back onto the preceding second's
		// count, while the UTC leap count below is taken at the following
		// 00:00:00, so :60 ends up one TAI second after :59.
		total = total.Sub(Seconds(1))
	}

	switch scale {
	case TAI:
		return Epoch{tai: total}, nil
	case TT:
		return Epoch{tai: total.Sub(ttOffsetDuration)}, nil
	case ET:
		return Epoch{tai: total.Add(etEpochDuration).Sub(etOffsetDuration)}, nil
	case UTC:
		cnt := GetNumLeapSeconds(Epoch{tai: leapLookup})
		return Epoch{tai: total.Add(Seconds(float64(cnt)))}, nil
	default:
		// TDB, GPST, and UNIX calendar fields are ambiguous (TDB needs the
		// periodic correction resolved first; GPST and UNIX are not in
		// common calendar use) and so are not accepted here, matching the
		// scales the original Gregorian constructor supports.
		return Epoch{}, &ParseError{Kind: ParseKindUnsupportedScale, Text: scale.String()}
	}
}

func iabs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// FromGregorianTAI is a convenience wrapper for FromGregorian(..., TAI).
func FromGregorianTAI(year int32, month, day, hour, minute, second uint8, nanos uint32) (Epoch, error) {
	return FromGregorian(year, month, day, hour, minute, second, nanos, TAI)
}

// FromGregorianUTC is a convenience wrapper for FromGregorian(..., UTC).
func FromGregorianUTC(year int32, month, day, hour, minute, second uint8, nanos uint32) (Epoch, error) {
	return FromGregorian(year, month, day, hour, minute, second, nanos, UTC)
}

// FromGregorianTAIHMS omits the nanoseconds field.
func FromGregorianTAIHMS(year int32, month, day, hour, minute, second uint8) (Epoch, error) {
	return FromGregorianTAI(year, month, day, hour, minute, second, 0)
}

// FromGregorianUTCHMS omits the nanoseconds field.
func FromGregorianUTCHMS(year int32, month, day, hour, minute, second uint8) (Epoch, error) {
	return FromGregorianUTC(year, month, day, hour, minute, second, 0)
}

// --- accessors ---

// AsTAIDuration returns the Duration since J1900 TAI.
func (e Epoch) AsTAIDuration() Duration { return e.tai }
func (e Epoch) AsTAISeconds() float64   { return e.tai.InSeconds() }
func (e Epoch) AsTAIDays() float64      { return e.tai.InDays() }

// AsUTCDuration returns the Duration since J1900 UTC. It inverts
// FromUTCSeconds: the leap count is looked up again at the UTC value itself.
func (e Epoch) AsUTCDuration() Duration {
	cnt := GetNumLeapSeconds(e)
	cnt = GetNumLeapSeconds(Epoch{tai: e.tai.Sub(Seconds(float64(cnt)))})
	return e.tai.Sub(Seconds(float64(cnt)))
}
func (e Epoch) AsUTCSeconds() float64 { return e.AsUTCDuration().InSeconds() }
func (e Epoch) AsUTCDays() float64    { return e.AsUTCDuration().InDays() }

// AsTTDuration returns the Duration since J1900 in Terrestrial Time.
func (e Epoch) AsTTDuration() Duration { return e.tai.Add(ttOffsetDuration) }
func (e Epoch) AsTTSeconds() float64   { return e.AsTTDuration().InSeconds() }
func (e Epoch) AsTTDays() float64      { return e.AsTTDuration().InDays() }

// AsTTCenturiesJ2K returns the number of TT centuries past J2000.
func (e Epoch) AsTTCenturiesJ2K() float64 {
	return e.AsTTDuration().Sub(etEpochDuration).InUnit(UnitCentury)
}

// AsETDuration returns the Duration since the J2000 reference in Ephemeris
// Time.
func (e Epoch) AsETDuration() Duration {
	return e.tai.Add(etOffsetDuration).Sub(etEpochDuration)
}
func (e Epoch) AsETSeconds() float64 { return e.AsETDuration().InSeconds() }
func (e Epoch) AsETDays() float64    { return e.AsETDuration().InDays() }

// AsTDBDuration returns the Duration since the J2000 reference in
// Barycentric Dynamical Time, including the periodic relativistic
// correction.
func (e Epoch) AsTDBDuration() Duration {
	inner := innerGRad(e.AsTTCenturiesJ2K())
	delta := Seconds(0.001_658 * math.Sin(inner))
	return e.AsTTDuration().Sub(etEpochDuration).Add(delta)
}
func (e Epoch) AsTDBSeconds() float64 { return e.AsTDBDuration().InSeconds() }
func (e Epoch) AsTDBDays() float64    { return e.AsTDBDuration().InDays() }

// AsGPSTDuration returns the Duration since the GPST epoch.
func (e Epoch) AsGPSTDuration() Duration { return e.tai.Sub(gpstOffsetDuration) }
func (e Epoch) AsGPSTSeconds() float64    { return e.AsGPSTDuration().InSeconds() }
func (e Epoch) AsGPSTDays() float64       { return e.AsGPSTDuration().InDays() }

// AsGPSTNanoseconds returns the whole nanoseconds since the GPST epoch. It
// returns ErrOverflow if one century or more has elapsed since the GPST
// epoch, or if e is before it, since the uint64 nanoseconds field alone cannot span the full
// representable range.
func (e Epoch) AsGPSTNanoseconds() (uint64, error) {
	d := e.AsGPSTDuration()
	if d.Centuries() != 0 {
		return 0, ErrOverflow
	}
	return d.NanosecondsPart(), nil
}

// AsUnixDuration returns the Duration since the UNIX epoch (UTC).
func (e Epoch) AsUnixDuration() Duration { return e.AsUTCDuration().Sub(unixRefDuration) }
func (e Epoch) AsUnixSeconds() float64    { return e.AsUnixDuration().InSeconds() }
func (e Epoch) AsUnixMilliseconds() float64 { return e.AsUnixDuration().InMilliseconds() }
func (e Epoch) AsUnixDays() float64       { return e.AsUnixDuration().InDays() }

// AsMJDTAIDays returns the Modified Julian Date in TAI days.
func (e Epoch) AsMJDTAIDays() float64       { return e.AsMJDTAIDuration().InDays() }
func (e Epoch) AsMJDTAIDuration() Duration  { return e.tai.Add(j1900OffsetDur) }
func (e Epoch) AsMJDUTCDays() float64       { return e.AsMJDUTCDuration().InDays() }
func (e Epoch) AsMJDUTCDuration() Duration  { return e.AsUTCDuration().Add(j1900OffsetDur) }

// AsJDTAIDays returns the Julian Date in TAI days.
func (e Epoch) AsJDTAIDays() float64      { return e.AsJDTAIDuration().InDays() }
func (e Epoch) AsJDTAIDuration() Duration { return e.AsMJDTAIDuration().Add(mjdOffsetDur) }
func (e Epoch) AsJDUTCDays() float64      { return e.AsJDUTCDuration().InDays() }
func (e Epoch) AsJDUTCDuration() Duration { return e.AsMJDUTCDuration().Add(mjdOffsetDur) }

// AsJDETDays returns the Ephemeris Time JDE, consistent with the NAIF
// convention that ET seconds 0.0 (the J2000 reference) is JDE 2,451,545.0.
func (e Epoch) AsJDETDays() float64 {
	return e.AsTTDuration().Add(j1900OffsetDur).Add(mjdOffsetDur).Add(Microseconds(935)).InDays()
}

// AsJDTDBDays returns the Barycentric Dynamical Time JDE.
func (e Epoch) AsJDTDBDays() float64 {
	inner := innerGRad(e.AsTTCenturiesJ2K())
	delta := Seconds(0.001_658 * math.Sin(inner))
	return e.AsTTDuration().Add(j1900OffsetDur).Add(mjdOffsetDur).Add(delta).InDays()
}

// AsGregorian decomposes e into calendar fields in the given scale.
func (e Epoch) AsGregorian(scale TimeScale) (year int32, month, day, hour, minute, second uint8, nanos uint32) {
	var seconds float64
	switch scale {
	case TAI:
		seconds = e.AsTAISeconds()
	case UTC:
		seconds = e.AsUTCSeconds()
	case TT:
		seconds = e.AsTTSeconds()
	case ET:
		seconds = e.AsETDuration().Add(etEpochDuration).InSeconds()
	case TDB:
		seconds = e.AsTDBDuration().Add(etEpochDuration).InSeconds()
	case GPST:
		// The GPST epoch, 1980-01-06T00:00:00, is 29,224 days after J1900.
		seconds = e.AsGPSTDuration().Add(Days(29_224)).InSeconds()
	case Unix:
		seconds = e.AsUnixDuration().Add(unixRefDuration).InSeconds()
	default:
		seconds = e.AsTAISeconds()
	}
	return computeGregorian(seconds)
}

// AsGregorianUTC is a convenience wrapper for AsGregorian(UTC).
func (e Epoch) AsGregorianUTC() (year int32, month, day, hour, minute, second uint8, nanos uint32) {
	return e.AsGregorian(UTC)
}

// AsGregorianTAI is a convenience wrapper for AsGregorian(TAI).
func (e Epoch) AsGregorianTAI() (year int32, month, day, hour, minute, second uint8, nanos uint32) {
	return e.AsGregorian(TAI)
}

// --- operators ---

// Sub returns the signed Duration between two epochs.
func (e Epoch) Sub(o Epoch) Duration { return e.tai.Sub(o.tai) }

// Add returns e offset forward by d.
func (e Epoch) Add(d Duration) Epoch { return Epoch{tai: e.tai.Add(d)} }

// SubDuration returns e offset backward by d.
func (e Epoch) SubDuration(d Duration) Epoch { return Epoch{tai: e.tai.Sub(d)} }

func (e Epoch) Cmp(o Epoch) int    { return e.tai.Cmp(o.tai) }
func (e Epoch) Equal(o Epoch) bool { return e.tai.Equal(o.tai) }
func (e Epoch) Before(o Epoch) bool { return e.tai.Before(o.tai) }
func (e Epoch) After(o Epoch) bool  { return e.tai.After(o.tai) }

// Floor, Ceil, and Round delegate to the underlying TAI Duration, so they
// snap to whole-unit boundaries of TAI-since-J1900 (which also correspond to
// whole-unit boundaries of the calendar, modulo leap seconds hidden inside
// the UTC accessors).
func (e Epoch) Floor(step Duration) Epoch { return Epoch{tai: e.tai.Floor(step)} }
func (e Epoch) Ceil(step Duration) Epoch  { return Epoch{tai: e.tai.Ceil(step)} }
func (e Epoch) Round(step Duration) Epoch { return Epoch{tai: e.tai.Round(step)} }
