package hifitime

import (
	"fmt"
	"strings"
)

// weekdayNames and monthNames back the %A/%a and %B/%b specifiers of Format.
// Index 0 of weekdayNames is Sunday, matching the 0=Sunday day-of-week
// returned by weekdayFromCivil below.
var (
	weekdayNames = [...]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
	weekdayNamesAbbrev = [...]string{
		"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
	}
	monthNamesFull = [...]string{
		"", "January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	monthNamesAbbrev = [...]string{
		"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	daysBeforeNonLeapMonth = [...]int{
		0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334,
	}
)

// weekdayFromCivil returns the day of week (0=Sunday) of a Gregorian date,
// via Zeller-congruence-equivalent days-from-civil-epoch arithmetic.
func weekdayFromCivil(year int32, month, day uint8) int {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400
	var mp int64
	if int64(month) > 2 {
		mp = int64(month) - 3
	} else {
		mp = int64(month) + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	z := era*146097 + doe - 719468 // days since 1970-01-01 (Howard Hinnant's days_from_civil)
	return int(((z%7+7)%7 + 4) % 7) // 1970-01-01 was a Thursday (4); 0=Sunday
}

// String renders e as an ISO-8601 instant in UTC, e.g.
// "2022-05-20T17:57:43Z" or, when e carries a sub-second remainder,
// "2022-05-20T17:57:43.123456789Z".
func (e Epoch) String() string {
	year, month, day, hour, minute, second, nanos := e.AsGregorianUTC()
	base := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", year, month, day, hour, minute, second)
	if nanos == 0 {
		return base + "Z"
	}
	return fmt.Sprintf("%s.%09dZ", base, nanos)
}

// Format renders e as an ISO-8601 instant in the given scale, tagged with
// the scale's name rather than "Z" for every scale but UTC. TAI, TT, TDB,
// and ET use the calendar tag; GPST renders as the integer count of
// nanoseconds since the GPST epoch and UNIX as the count of seconds since the
// UNIX epoch, each followed by the scale name, since neither is
// conventionally expressed as a calendar date.
func (e Epoch) Format(scale TimeScale) string {
	switch scale {
	case UTC:
		return e.String()
	case GPST:
		return totalNs(e.AsGPSTDuration()).String() + " GPST"
	case Unix:
		return fmt.Sprintf("%.9f UNIX", e.AsUnixSeconds())
	default:
		year, month, day, hour, minute, second, nanos := e.AsGregorian(scale)
		base := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", year, month, day, hour, minute, second)
		if nanos == 0 {
			return fmt.Sprintf("%s %s", base, scale)
		}
		return fmt.Sprintf("%s.%09d %s", base, nanos, scale)
	}
}

// Strftime renders e (interpreted in UTC) using the traditional strftime
// specifier set. Strftime panics if an unknown specifier is used, matching
// the calling convention of the teacher library's strftime-style formatter.
//
// Supported specifiers: %a %A %w %d %b %B %m %y %Y %H %I %p %M %S %f %F %z
// %j %U %%.
func (e Epoch) Strftime(layout string) string {
	year, month, day, hour, minute, second, nanos := e.AsGregorianUTC()
	wd := weekdayFromCivil(year, month, day)

	doy := daysBeforeNonLeapMonth[month]
	if IsLeapYear(year) && month > 2 {
		doy++
	}
	doy += int(day)
	woy := doy / 7

	f := []rune(layout)
	var b strings.Builder
	b.Grow(len(f) + 10)
	var last rune
	for i := 0; i < len(f); i++ {
		next := f[i]
		if next == '%' {
			if last == '%' {
				b.WriteRune('%')
				last = 0
				continue
			}
			last = next
			continue
		}
		if last == '%' {
			switch next {
			case 'a':
				b.WriteString(weekdayNamesAbbrev[wd])
			case 'A':
				b.WriteString(weekdayNames[wd])
			case 'w':
				fmt.Fprintf(&b, "%d", wd)
			case 'd':
				fmt.Fprintf(&b, "%02d", day)
			case 'b':
				b.WriteString(monthNamesAbbrev[month])
			case 'B':
				b.WriteString(monthNamesFull[month])
			case 'm':
				fmt.Fprintf(&b, "%02d", month)
			case 'y':
				y := fmt.Sprintf("%04d", year)
				b.WriteString(y[len(y)-2:])
			case 'Y':
				fmt.Fprintf(&b, "%04d", year)
			case 'H':
				fmt.Fprintf(&b, "%02d", hour)
			case 'I':
				h := hour
				if h > 12 {
					h -= 12
				}
				fmt.Fprintf(&b, "%02d", h)
			case 'p':
				if hour >= 12 {
					b.WriteString("PM")
				} else {
					b.WriteString("AM")
				}
			case 'M':
				fmt.Fprintf(&b, "%02d", minute)
			case 'S':
				fmt.Fprintf(&b, "%02d", second)
			case 'f':
				fmt.Fprintf(&b, "%06d", nanos/1_000)
			case 'F':
				fmt.Fprintf(&b, "%09d", nanos)
			case 'z':
				b.WriteRune('Z')
			case 'j':
				fmt.Fprintf(&b, "%03d", doy)
			case 'U':
				fmt.Fprintf(&b, "%02d", woy)
			default:
				panic(fmt.Sprintf("hifitime: Strftime: invalid format specifier %%%c", next))
			}
		} else {
			b.WriteRune(next)
		}
		last = next
	}
	return b.String()
}
