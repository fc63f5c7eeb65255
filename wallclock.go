package hifitime

import "time"

// Now returns the current instant as read from the host OS clock, which
// reports UNIX time (UTC, with leap seconds smeared away by the OS as they
// always are). ErrSystemTime is returned if the OS clock reports a zero
// time, which on every platform Go supports cannot happen from time.Now()
// itself; the check lives in the unexported fromWallClock, which takes the
// clock reading as a parameter.
func Now() (Epoch, error) {
	return fromWallClock(time.Now())
}

func fromWallClock(t time.Time) (Epoch, error) {
	if t.IsZero() {
		return Epoch{}, ErrSystemTime
	}
	seconds := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return FromUnixSeconds(seconds)
}
