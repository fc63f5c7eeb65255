// Package timeseries provides a lazy, restartable stepper over a range of
// Epochs. It is the plain-stepping counterpart of the discrete/extrema
// search routines used elsewhere in astrodynamics tooling: where those
// routines bisect down to a transition, Series only ever walks forward at a
// fixed cadence, with no evaluation function and no convergence criterion.
package timeseries

import (
	"errors"

	hifitime "github.com/mkolopanis/hifitime"
)

var (
	// ErrInvalidRange is returned when start is not strictly before end.
	ErrInvalidRange = errors.New("timeseries: start must be before end")

	// ErrInvalidStep is returned when step is not a positive Duration.
	ErrInvalidStep = errors.New("timeseries: step must be positive")
)

// Series produces the finite sequence start, start+step, start+2*step, ...
// for as long as the result stays strictly before end. It has no side
// effects and holds no resources; Reset rewinds it to start for reuse.
type Series struct {
	start, end hifitime.Epoch
	step       hifitime.Duration
	cursor     hifitime.Epoch
	exhausted  bool
}

// New builds a Series over [start, end) stepping by step. It returns
// ErrInvalidRange if start is not strictly before end, and ErrInvalidStep if
// step is not positive.
func New(start, end hifitime.Epoch, step hifitime.Duration) (*Series, error) {
	if !start.Before(end) {
		return nil, ErrInvalidRange
	}
	if !step.After(hifitime.Zero) {
		return nil, ErrInvalidStep
	}
	return &Series{start: start, end: end, step: step, cursor: start}, nil
}

// Next returns the next Epoch in the sequence and true, or the zero Epoch
// and false once the sequence is exhausted.
func (s *Series) Next() (hifitime.Epoch, bool) {
	if s.exhausted || !s.cursor.Before(s.end) {
		s.exhausted = true
		return hifitime.Epoch{}, false
	}
	next := s.cursor
	s.cursor = s.cursor.Add(s.step)
	return next, true
}

// Reset rewinds the sequence back to start, so Next begins yielding from
// the beginning again.
func (s *Series) Reset() {
	s.cursor = s.start
	s.exhausted = false
}

// All drains the remaining sequence into a slice and leaves the Series
// exhausted. Call Reset first to collect the full sequence from a Series
// that has already been partially consumed.
func (s *Series) All() []hifitime.Epoch {
	var out []hifitime.Epoch
	for {
		e, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}
