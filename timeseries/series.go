// Package timeseries provides the observation sequence consumed by the forecasters.
package timeseries

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

// ErrOutOfRange is matched by every IndexError.
var ErrOutOfRange = errors.New("index out of range")

// IndexError reports an access n positions from the end of a series of
// length Len that falls outside the series.
type IndexError struct {
	Offset int // Requested offset from the end (1 is the last element)
	Len    int // Length of the series at the time of access
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("offset %d from end out of range for series of length %d", e.Offset, e.Len)
}

// Is reports whether target is ErrOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Series represents an ordered sequence of observations, oldest first.
type Series struct {
	Values []float64
	Name   string
}

// New creates a new time series from values. The slice is not copied.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// FromValues creates a time series from integer or floating point values,
// converting each to float64.
func FromValues[T constraints.Integer | constraints.Float](values []T) *Series {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return &Series{Values: out}
}

// Len returns the length of the series.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Values)
}

// Last returns the most recent observation.
func (s *Series) Last() (float64, error) {
	return s.FromEnd(1)
}

// FromEnd returns the observation n positions before the end, so FromEnd(1)
// is the last element and FromEnd(Len()) the first.
func (s *Series) FromEnd(n int) (float64, error) {
	l := s.Len()
	if n < 1 || n > l {
		return 0, &IndexError{Offset: n, Len: l}
	}
	return s.Values[l-n], nil
}

// Suffix returns the last n observations as a series sharing storage with s.
// If the series is shorter than n the whole series is returned. The result
// must be treated as read-only.
func (s *Series) Suffix(n int) *Series {
	if s == nil {
		return &Series{Values: []float64{}}
	}
	l := len(s.Values)
	if n < 0 {
		n = 0
	}
	if n > l {
		n = l
	}
	return &Series{
		Values: s.Values[l-n : l : l],
		Name:   s.Name,
	}
}

// Prefix returns the first n observations as a series sharing storage with s.
// The result must be treated as read-only.
func (s *Series) Prefix(n int) *Series {
	if s == nil {
		return &Series{Values: []float64{}}
	}
	l := len(s.Values)
	if n < 0 {
		n = 0
	}
	if n > l {
		n = l
	}
	return &Series{
		Values: s.Values[:n:n],
		Name:   s.Name,
	}
}

// Mean calculates the arithmetic mean of the series. It returns NaN for an
// empty series.
func (s *Series) Mean() float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	return stat.Mean(s.Values, nil)
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, s.Len())
	if s != nil {
		copy(values, s.Values)
	}
	return &Series{
		Values: values,
		Name:   s.nameOrEmpty(),
	}
}

func (s *Series) nameOrEmpty() string {
	if s == nil {
		return ""
	}
	return s.Name
}
