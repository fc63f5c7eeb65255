package hifitime

import (
	"fmt"
	"math"
	"math/big"
)

// DaysPerCentury is the exact number of days in one century as used
// throughout this package: 365.25 days/year * 100 years.
const DaysPerCentury = 36525

// NsPerCentury is the exact number of nanoseconds in one century. It fits in
// a uint64 (max ~1.8e19) with room to spare.
const NsPerCentury uint64 = uint64(DaysPerCentury) * 86400 * 1_000_000_000

var nsPerCenturyBig = new(big.Int).SetUint64(NsPerCentury)

// Unit is a closed set of time granularities used to build and project
// Durations, mirroring the role of the teacher library's Second/Minute/Hour
// constants but as a proper enum rather than bare ints so FromF64 can switch
// on it exhaustively.
type Unit int

const (
	UnitNanosecond Unit = iota
	UnitMicrosecond
	UnitMillisecond
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitCentury
)

// nsFactor returns the number of nanoseconds in one instance of u.
func nsFactor(u Unit) uint64 {
	switch u {
	case UnitNanosecond:
		return 1
	case UnitMicrosecond:
		return 1_000
	case UnitMillisecond:
		return 1_000_000
	case UnitSecond:
		return 1_000_000_000
	case UnitMinute:
		return 60 * 1_000_000_000
	case UnitHour:
		return 3_600 * 1_000_000_000
	case UnitDay:
		return 86_400 * 1_000_000_000
	case UnitWeek:
		return 7 * 86_400 * 1_000_000_000
	case UnitCentury:
		return NsPerCentury
	default:
		panic(fmt.Sprintf("hifitime: unknown Unit %d", int(u)))
	}
}

// Duration is a signed interval with sub-nanosecond-free, exact
// representation: a whole number of centuries plus a sub-century remainder in
// nanoseconds. nanoseconds is always kept in [0, NsPerCentury), even when the
// overall interval is negative, so comparison and hashing can work directly
// on the (centuries, nanoseconds) pair.
type Duration struct {
	centuries   int16
	nanoseconds uint64
}

// Zero is the additive identity.
var Zero = Duration{}

// FromParts builds a Duration directly from its normalized representation.
// Callers must already satisfy 0 <= nanoseconds < NsPerCentury; every other
// constructor and every arithmetic operation re-normalizes for you, but this
// one trusts its caller the way FromTaiParts trusts the caller in the Rust
// original it's ported from.
func FromParts(centuries int16, nanoseconds uint64) Duration {
	return Duration{centuries: centuries, nanoseconds: nanoseconds}
}

// Centuries returns the whole-century part of the normalized representation.
func (d Duration) Centuries() int16 { return d.centuries }

// NanosecondsPart returns the sub-century remainder, always in
// [0, NsPerCentury).
func (d Duration) NanosecondsPart() uint64 { return d.nanoseconds }

func totalNs(d Duration) *big.Int {
	t := big.NewInt(int64(d.centuries))
	t.Mul(t, nsPerCenturyBig)
	t.Add(t, new(big.Int).SetUint64(d.nanoseconds))
	return t
}

// fromTotalNsSaturating re-splits a total nanosecond count into the
// (centuries, nanoseconds) representation, saturating to the representable
// bound (and zeroing the sub-century remainder on the saturated side) if the
// century count overflows int16. big.Int's DivMod performs Euclidean
// division, so the remainder it produces is already in [0, NsPerCentury),
// matching the normalization invariant for free.
func fromTotalNsSaturating(total *big.Int) Duration {
	c, ns := new(big.Int), new(big.Int)
	c.DivMod(total, nsPerCenturyBig, ns)
	if !c.IsInt64() {
		if c.Sign() < 0 {
			return Duration{centuries: math.MinInt16}
		}
		return Duration{centuries: math.MaxInt16}
	}
	ci := c.Int64()
	if ci > math.MaxInt16 {
		return Duration{centuries: math.MaxInt16}
	}
	if ci < math.MinInt16 {
		return Duration{centuries: math.MinInt16}
	}
	return Duration{centuries: int16(ci), nanoseconds: ns.Uint64()}
}

// bigIntFromFloat rounds f to the nearest integer, ties away from zero.
func bigIntFromFloat(f *big.Float) *big.Int {
	half := big.NewFloat(0.5)
	if f.Sign() < 0 {
		half = big.NewFloat(-0.5)
	}
	rounded := new(big.Float).Add(f, half)
	i, _ := rounded.Int(nil)
	return i
}

// FromF64 builds a Duration equal to value expressed in unit, e.g.
// FromF64(1.5, UnitHour) is one and a half hours. NaN and infinite values are
// rejected with ErrNonFinite.
func FromF64(value float64, unit Unit) (Duration, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero, ErrNonFinite
	}
	total := new(big.Float).SetPrec(128).SetFloat64(value)
	factor := new(big.Float).SetPrec(128).SetUint64(nsFactor(unit))
	total.Mul(total, factor)
	return fromTotalNsSaturating(bigIntFromFloat(total)), nil
}

func mustFromF64(value float64, unit Unit) Duration {
	d, err := FromF64(value, unit)
	if err != nil {
		panic(fmt.Sprintf("hifitime: %v", err))
	}
	return d
}

// Nanoseconds, Microseconds, ... are unit factories for literal-constant call
// sites, following the teacher library's convention of plain unit-named
// helpers. They panic on non-finite input; use FromF64 directly when the
// value comes from outside the program.
func Nanoseconds(v float64) Duration  { return mustFromF64(v, UnitNanosecond) }
func Microseconds(v float64) Duration { return mustFromF64(v, UnitMicrosecond) }
func Milliseconds(v float64) Duration { return mustFromF64(v, UnitMillisecond) }
func Seconds(v float64) Duration      { return mustFromF64(v, UnitSecond) }
func Minutes(v float64) Duration      { return mustFromF64(v, UnitMinute) }
func Hours(v float64) Duration        { return mustFromF64(v, UnitHour) }
func Days(v float64) Duration         { return mustFromF64(v, UnitDay) }
func Weeks(v float64) Duration        { return mustFromF64(v, UnitWeek) }
func Centuries(v float64) Duration    { return mustFromF64(v, UnitCentury) }

// Add returns d+o, saturating at the representable bound instead of
// overflowing or wrapping.
func (d Duration) Add(o Duration) Duration {
	nsSum := d.nanoseconds + o.nanoseconds // each < NsPerCentury, sum fits in uint64
	carry := nsSum / NsPerCentury
	c64 := int64(d.centuries) + int64(o.centuries) + int64(carry)
	nanoseconds := nsSum - carry*NsPerCentury
	if c64 > math.MaxInt16 {
		return Duration{centuries: math.MaxInt16}
	}
	if c64 < math.MinInt16 {
		return Duration{centuries: math.MinInt16}
	}
	return Duration{centuries: int16(c64), nanoseconds: nanoseconds}
}

// Neg returns -d, saturating if d is the one value (MinInt16 centuries, zero
// nanoseconds) whose negation would overflow.
func (d Duration) Neg() Duration {
	if d.nanoseconds == 0 {
		c := -int64(d.centuries)
		if c > math.MaxInt16 {
			return Duration{centuries: math.MaxInt16}
		}
		return Duration{centuries: int16(c)}
	}
	c := -int64(d.centuries) - 1
	ns := NsPerCentury - d.nanoseconds
	if c < math.MinInt16 {
		return Duration{centuries: math.MinInt16}
	}
	return Duration{centuries: int16(c), nanoseconds: ns}
}

// Sub returns d-o, saturating at the representable bound.
func (d Duration) Sub(o Duration) Duration {
	return d.Add(o.Neg())
}

// MulInt64 returns d*n, computed without intermediate overflow via
// math/big (Go has no native 128-bit integer), saturating at the
// representable bound.
func (d Duration) MulInt64(n int64) Duration {
	total := totalNs(d)
	total.Mul(total, big.NewInt(n))
	return fromTotalNsSaturating(total)
}

// MulF64 returns d*n, rejecting non-finite n with ErrNonFinite and
// saturating the result at the representable bound.
func (d Duration) MulF64(n float64) (Duration, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Zero, ErrNonFinite
	}
	total := new(big.Float).SetPrec(128).SetInt(totalNs(d))
	total.Mul(total, new(big.Float).SetPrec(128).SetFloat64(n))
	return fromTotalNsSaturating(bigIntFromFloat(total)), nil
}

// DivInt64 returns d/n using Euclidean division on the total nanosecond
// count; n must be non-zero.
func (d Duration) DivInt64(n int64) Duration {
	total := totalNs(d)
	total.Div(total, big.NewInt(n))
	return fromTotalNsSaturating(total)
}

// DivDuration returns the ratio d/o as a float64.
func (d Duration) DivDuration(o Duration) float64 {
	ta := new(big.Float).SetPrec(128).SetInt(totalNs(d))
	tb := new(big.Float).SetPrec(128).SetInt(totalNs(o))
	f, _ := new(big.Float).Quo(ta, tb).Float64()
	return f
}

// InUnit returns d expressed as a float64 count of unit.
func (d Duration) InUnit(unit Unit) float64 {
	total := new(big.Float).SetPrec(128).SetInt(totalNs(d))
	factor := new(big.Float).SetPrec(128).SetUint64(nsFactor(unit))
	f, _ := new(big.Float).Quo(total, factor).Float64()
	return f
}

func (d Duration) InNanoseconds() float64  { return d.InUnit(UnitNanosecond) }
func (d Duration) InMicroseconds() float64 { return d.InUnit(UnitMicrosecond) }
func (d Duration) InMilliseconds() float64 { return d.InUnit(UnitMillisecond) }
func (d Duration) InSeconds() float64      { return d.InUnit(UnitSecond) }
func (d Duration) InMinutes() float64      { return d.InUnit(UnitMinute) }
func (d Duration) InHours() float64        { return d.InUnit(UnitHour) }
func (d Duration) InDays() float64         { return d.InUnit(UnitDay) }
func (d Duration) InWeeks() float64        { return d.InUnit(UnitWeek) }
func (d Duration) InCenturies() float64    { return d.InUnit(UnitCentury) }

func (d Duration) isPositive() bool {
	return d.centuries > 0 || (d.centuries == 0 && d.nanoseconds > 0)
}

// Floor returns the largest multiple of step that is <= d. step must be a
// positive Duration.
func (d Duration) Floor(step Duration) Duration {
	if !step.isPositive() {
		panic("hifitime: Duration.Floor: step must be positive")
	}
	total := totalNs(d)
	stepTotal := totalNs(step)
	rem := new(big.Int)
	new(big.Int).DivMod(total, stepTotal, rem)
	return fromTotalNsSaturating(new(big.Int).Sub(total, rem))
}

// Ceil returns the smallest multiple of step that is >= d. step must be a
// positive Duration.
func (d Duration) Ceil(step Duration) Duration {
	if !step.isPositive() {
		panic("hifitime: Duration.Ceil: step must be positive")
	}
	total := totalNs(d)
	stepTotal := totalNs(step)
	rem := new(big.Int)
	new(big.Int).DivMod(total, stepTotal, rem)
	if rem.Sign() == 0 {
		return d
	}
	floor := new(big.Int).Sub(total, rem)
	return fromTotalNsSaturating(floor.Add(floor, stepTotal))
}

// Round returns the nearest multiple of step to d, rounding ties up (toward
// Ceil). step must be a positive Duration.
func (d Duration) Round(step Duration) Duration {
	if !step.isPositive() {
		panic("hifitime: Duration.Round: step must be positive")
	}
	total := totalNs(d)
	stepTotal := totalNs(step)
	rem := new(big.Int)
	floorTotal := new(big.Int)
	floorTotal.DivMod(total, stepTotal, rem)
	if rem.Sign() == 0 {
		return d
	}
	twiceRem := new(big.Int).Lsh(rem, 1)
	floor := new(big.Int).Sub(total, rem)
	if twiceRem.Cmp(stepTotal) < 0 {
		return fromTotalNsSaturating(floor)
	}
	return fromTotalNsSaturating(floor.Add(floor, stepTotal))
}

// Cmp returns -1, 0, or +1 as d is less than, equal to, or greater than o.
// Comparison is lexicographic on (centuries, nanoseconds), which is valid
// precisely because both operands are normalized.
func (d Duration) Cmp(o Duration) int {
	if d.centuries != o.centuries {
		if d.centuries < o.centuries {
			return -1
		}
		return 1
	}
	if d.nanoseconds != o.nanoseconds {
		if d.nanoseconds < o.nanoseconds {
			return -1
		}
		return 1
	}
	return 0
}

func (d Duration) Equal(o Duration) bool  { return d.Cmp(o) == 0 }
func (d Duration) Before(o Duration) bool { return d.Cmp(o) < 0 }
func (d Duration) After(o Duration) bool  { return d.Cmp(o) > 0 }

// Decompose breaks d into a sign and a cascading set of non-negative
// remainders: days, hours, minutes, seconds, milliseconds, microseconds, and
// nanoseconds. sign is -1 or +1; zero is +1 by convention.
func (d Duration) Decompose() (sign int, days, hours, minutes, seconds, milliseconds, microseconds, nanoseconds int64) {
	total := totalNs(d)
	sign = 1
	if total.Sign() < 0 {
		sign = -1
		total = new(big.Int).Neg(total)
	}

	step := func(factor uint64) int64 {
		f := new(big.Int).SetUint64(factor)
		q, r := new(big.Int), new(big.Int)
		q.DivMod(total, f, r)
		total = r
		return q.Int64()
	}

	days = step(nsFactor(UnitDay))
	hours = step(nsFactor(UnitHour))
	minutes = step(nsFactor(UnitMinute))
	seconds = step(nsFactor(UnitSecond))
	milliseconds = step(nsFactor(UnitMillisecond))
	microseconds = step(nsFactor(UnitMicrosecond))
	nanoseconds = total.Int64()
	return
}
