package hifitime

import (
	"math"
	"strconv"
	"strings"
)

// ParseISO8601 parses an instant of the form
// "YYYY-MM-DDThh:mm:ss[.fff...][ SCALE]", where the date/time separator may
// be either "T" or a single space, the fractional-seconds part has 1-9
// digits and is right-padded with zeros to nanosecond resolution, and a
// trailing scale tag (e.g. "TAI", "TDB") defaults to UTC when absent.
func ParseISO8601(s string) (Epoch, error) {
	orig := s
	s = strings.TrimSpace(s)

	scale := UTC
	if idx := strings.LastIndexByte(s, ' '); idx >= 0 {
		tag := s[idx+1:]
		if parsed, err := ParseTimeScale(tag); err == nil {
			scale = parsed
			s = s[:idx]
		}
	}

	idx := strings.IndexByte(s, 'T')
	if idx < 0 {
		idx = strings.IndexByte(s, ' ')
	}
	if idx < 0 {
		return Epoch{}, &ParseError{Kind: ParseKindISO8601, Text: orig}
	}
	datePart, timePart := s[:idx], s[idx+1:]

	dateFields := strings.Split(datePart, "-")
	if len(dateFields) != 3 {
		return Epoch{}, &ParseError{Kind: ParseKindISO8601, Text: orig}
	}
	year, err := strconv.Atoi(dateFields[0])
	if err != nil {
		return Epoch{}, &ParseError{Kind: ParseKindInteger, Text: dateFields[0]}
	}
	month, err := strconv.Atoi(dateFields[1])
	if err != nil {
		return Epoch{}, &ParseError{Kind: ParseKindInteger, Text: dateFields[1]}
	}
	day, err := strconv.Atoi(dateFields[2])
	if err != nil {
		return Epoch{}, &ParseError{Kind: ParseKindInteger, Text: dateFields[2]}
	}

	secondsPart := timePart
	nanos := 0
	if dot := strings.IndexByte(timePart, '.'); dot >= 0 {
		secondsPart = timePart[:dot]
		frac := timePart[dot+1:]
		if len(frac) == 0 || len(frac) > 9 {
			return Epoch{}, &ParseError{Kind: ParseKindISO8601, Text: orig}
		}
		frac = frac + strings.Repeat("0", 9-len(frac))
		n, err := strconv.Atoi(frac)
		if err != nil {
			return Epoch{}, &ParseError{Kind: ParseKindInteger, Text: frac}
		}
		nanos = n
	}

	timeFields := strings.Split(secondsPart, ":")
	if len(timeFields) != 3 {
		return Epoch{}, &ParseError{Kind: ParseKindISO8601, Text: orig}
	}
	hour, err := strconv.Atoi(timeFields[0])
	if err != nil {
		return Epoch{}, &ParseError{Kind: ParseKindInteger, Text: timeFields[0]}
	}
	minute, err := strconv.Atoi(timeFields[1])
	if err != nil {
		return Epoch{}, &ParseError{Kind: ParseKindInteger, Text: timeFields[1]}
	}
	second, err := strconv.Atoi(timeFields[2])
	if err != nil {
		return Epoch{}, &ParseError{Kind: ParseKindInteger, Text: timeFields[2]}
	}

	if year < -32768 || year > 32767 || month < 0 || month > 255 ||
		day < 0 || day > 255 || hour < 0 || hour > 255 ||
		minute < 0 || minute > 255 || second < 0 || second > 255 {
		return Epoch{}, &ParseError{Kind: ParseKindISO8601, Text: orig}
	}

	return FromGregorian(int32(year), uint8(month), uint8(day), uint8(hour), uint8(minute), uint8(second), uint32(nanos), scale)
}

// ParseCompact parses the form "<FORMAT> <value> <SCALE>" where FORMAT is
// one of "JD", "MJD", or "SEC". Supported scales depend on the format: JD
// accepts TAI/UTC/TDB/ET; MJD accepts TAI/UTC; SEC accepts all seven
// TAI/UTC/TT/TDB/ET/GPST/Unix scales.
func ParseCompact(s string) (Epoch, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Epoch{}, &ParseError{Kind: ParseKindUnknownFormat, Text: s}
	}
	format, valueStr, scaleStr := strings.ToUpper(fields[0]), fields[1], fields[2]

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return Epoch{}, &ParseError{Kind: ParseKindInteger, Text: valueStr}
	}

	scale, err := ParseTimeScale(scaleStr)
	if err != nil {
		return Epoch{}, err
	}

	switch format {
	case "JD":
		switch scale {
		case TAI:
			return FromJDTAIDays(value)
		case UTC:
			return FromJDUTCDays(value)
		case TDB:
			return jdTDBToEpoch(value), nil
		case ET:
			return jdETToEpoch(value), nil
		default:
			return Epoch{}, &ParseError{Kind: ParseKindUnsupportedScale, Text: scaleStr}
		}
	case "MJD":
		switch scale {
		case TAI:
			return FromMJDTAIDays(value)
		case UTC:
			return FromMJDUTCDays(value)
		default:
			return Epoch{}, &ParseError{Kind: ParseKindUnsupportedScale, Text: scaleStr}
		}
	case "SEC":
		switch scale {
		case TAI:
			return FromTAISeconds(value)
		case UTC:
			return FromUTCSeconds(value)
		case TT:
			return FromTTSeconds(value)
		case TDB:
			return FromTDBSeconds(value)
		case ET:
			return FromETSeconds(value)
		case GPST:
			return FromGPSTSeconds(value)
		case Unix:
			return FromUnixSeconds(value)
		default:
			return Epoch{}, &ParseError{Kind: ParseKindUnsupportedScale, Text: scaleStr}
		}
	default:
		return Epoch{}, &ParseError{Kind: ParseKindUnknownFormat, Text: format}
	}
}

// jdTDBToEpoch and jdETToEpoch invert AsJDTDBDays/AsJDETDays. AsJDETDays
// adds a constant 935 µs on top of TT, which jdETToEpoch removes exactly.
// AsJDTDBDays adds a periodic correction of up to about 1.7 ms, which
// jdTDBToEpoch evaluates treating the given date as TT, the same
// approximation FromTDBSeconds makes.
func jdTDBToEpoch(jd float64) Epoch {
	ttDays := jd - J1900OffsetDays - MJDOffsetDays
	ttDuration := Days(ttDays)
	ttCenturiesJ2K := ttDuration.Sub(etEpochDuration).InUnit(UnitCentury)
	inner := innerGRad(ttCenturiesJ2K)
	delta := 0.001_658 * math.Sin(inner)
	return Epoch{tai: ttDuration.Sub(ttOffsetDuration).Sub(Seconds(delta))}
}

func jdETToEpoch(jd float64) Epoch {
	ttDays := jd - J1900OffsetDays - MJDOffsetDays - 935.0/86_400_000_000.0
	ttDuration := Days(ttDays)
	return Epoch{tai: ttDuration.Sub(ttOffsetDuration)}
}
