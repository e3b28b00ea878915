package baseline

import (
	"errors"
	"fmt"
)

// Default windows used when Params.N is zero.
const (
	DefaultSeasonalPeriod = 7
	DefaultMeanWindow     = 3
	DefaultDriftWindow    = 3
)

var (
	// ErrInsufficientHistory is returned when a series is shorter than the
	// offset a method needs. Errors wrapping it also match
	// timeseries.ErrOutOfRange.
	ErrInsufficientHistory = errors.New("insufficient history")

	// ErrInvalidWindow is returned for a negative window or period.
	ErrInvalidWindow = errors.New("window must be a positive integer")

	// ErrDegenerateWindow is returned by Drift for a window of 1, where the
	// slope has no steps to average over.
	ErrDegenerateWindow = errors.New("drift window must be at least 2")

	// ErrUnknownMethod is returned by Lookup for an unregistered method name.
	ErrUnknownMethod = errors.New("unknown forecast method")
)

// Params holds the per-call parameters shared by every method.
type Params struct {
	// N is the seasonal period for SeasonalNaive and the window for Mean and
	// Drift. Zero selects the method default. Naive ignores it.
	N int

	// Extra carries caller parameters meant for other methods. No method
	// reads it, so a single Params value can be passed to any of them.
	Extra map[string]any
}

// DefaultParams returns the default parameters for method m.
func DefaultParams(m Method) Params {
	switch m {
	case MethodSeasonalNaive:
		return Params{N: DefaultSeasonalPeriod}
	case MethodMean:
		return Params{N: DefaultMeanWindow}
	case MethodDrift:
		return Params{N: DefaultDriftWindow}
	default:
		return Params{}
	}
}

// window resolves p.N against def.
func (p Params) window(def int) (int, error) {
	n := p.N
	if n == 0 {
		n = def
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidWindow, n)
	}
	return n, nil
}
