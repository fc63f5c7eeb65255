/* Package hifitime provides nanosecond-exact time for high-fidelity
astrodynamics and GNSS work: a fixed-point Duration type, an Epoch anchored
to TAI, and conversions between TAI, UTC, TT, TDB, ET, GPST, and UNIX time,
plus the Gregorian, Julian, and Modified Julian calendars.

Durations are stored as a whole number of centuries plus a sub-century
remainder in nanoseconds, never as a float64 count of seconds, so that
additions, subtractions, and conversions between units never accumulate
rounding error. Epochs are a single such Duration measured from
1900-01-01T00:00:00 TAI ("J1900"); every other time scale this package
understands is a pure function of that one Duration.

UTC is not a fixed offset from TAI. The offset grows by one second at each
IETF-announced leap second, so converting between TAI and UTC requires the
leap-second table in leapseconds.go, and any calendar date of 23:59:60 is
accepted only on the specific year-end or mid-year boundaries where IERS
actually inserted one.

## FAQ

1) Why a fixed-point Duration instead of stdlib's time.Duration?

stdlib's time.Duration is an int64 count of nanoseconds, which overflows at
about 292 years. Orbit determination and GNSS processing routinely need to
represent offsets from J1900 spanning centuries with no loss of precision
at the nanosecond end, which a single int64 cannot do.

2) Why is TAI the internal representation rather than UTC?

TAI is a pure count of SI seconds with no leap-second discontinuities. Every
other scale this package knows about is either a constant offset from TAI
(GPST, TT, ET) or a simple periodic correction (TDB) or the one scale that
is genuinely irregular (UTC, via the leap-second table). Keeping TAI as the
single source of truth means the irregularity only has to be handled once,
at the UTC boundary, instead of infecting every conversion.

3) Is the package safe for concurrent use?

Yes. Duration and Epoch are immutable value types, and the leap-second
table is a package-level constant built once and never mutated, so no
locking is required anywhere in this package.

4) Why is the leap-second table fixed at compile time instead of
   runtime-extensible like some other TAI/UTC libraries?

This was weighed as a design question and decided in favor of a fixed
table; see DESIGN.md. A compiled table is simpler
and avoids the synchronization and validation concerns of a mutable table,
at the cost of needing a new release of this module whenever IERS announces
another leap second.

5) Why does second == 60 round-trip lossily through the Gregorian
   accessors?

Two distinct UTC instants -- the leap second itself and the following
00:00:00 -- are exactly one TAI second apart, and the inverse Gregorian
computation has no way to recover which of the two a given TAI duration
came from. The Gregorian constructors place :60 one TAI second after :59 on
the way in; the accessors never produce :60 on the way out, and show the
leap second itself as the following 00:00:00. This is a
documented, deliberate asymmetry, not a bug.
*/
package hifitime
