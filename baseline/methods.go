package baseline

import (
	"fmt"

	"github.com/sartorproj/gobaseline/timeseries"
)

// Naive forecasts the next point as the last observed value.
//
// An empty series returns an error matching ErrInsufficientHistory.
func Naive(s *timeseries.Series, _ Params) (Forecast, error) {
	last, err := s.Last()
	if err != nil {
		return Undefined(), insufficient(MethodNaive, err)
	}
	return Defined(last), nil
}

// SeasonalNaive forecasts the next point as the value observed n points
// before the end of the series, where n is the seasonal period counted in
// observations (default 7, one week of daily data).
//
// A series shorter than n returns an error matching ErrInsufficientHistory.
func SeasonalNaive(s *timeseries.Series, p Params) (Forecast, error) {
	n, err := p.window(DefaultSeasonalPeriod)
	if err != nil {
		return Undefined(), err
	}
	v, err := s.FromEnd(n)
	if err != nil {
		return Undefined(), insufficient(MethodSeasonalNaive, err)
	}
	return Defined(v), nil
}

// Mean forecasts the next point as the arithmetic mean of the last n
// observations (default 3).
//
// Until n points have been observed the forecast is Undefined and the error
// is nil; a partial window is never averaged.
func Mean(s *timeseries.Series, p Params) (Forecast, error) {
	n, err := p.window(DefaultMeanWindow)
	if err != nil {
		return Undefined(), err
	}
	if s.Len() < n {
		return Undefined(), nil
	}
	return Defined(s.Suffix(n).Mean()), nil
}

// Drift forecasts the next point by extending the line through the first and
// last observations of the trailing window of size n (default 3) by one step:
//
//	slope = (y[len-1] - y[len-n]) / (n - 1)
//	forecast = y[len-1] + slope
//
// A window of 1 returns ErrDegenerateWindow. A series shorter than n returns
// an error matching ErrInsufficientHistory.
func Drift(s *timeseries.Series, p Params) (Forecast, error) {
	n, err := p.window(DefaultDriftWindow)
	if err != nil {
		return Undefined(), err
	}
	if n == 1 {
		return Undefined(), ErrDegenerateWindow
	}
	start, err := s.FromEnd(n)
	if err != nil {
		return Undefined(), insufficient(MethodDrift, err)
	}
	end, err := s.Last()
	if err != nil {
		return Undefined(), insufficient(MethodDrift, err)
	}
	slope := (end - start) / float64(n-1)
	return Defined(end + slope), nil
}

// NaiveOf is Naive over a plain slice.
func NaiveOf(data []float64) (Forecast, error) {
	return Naive(timeseries.New(data), Params{})
}

// SeasonalNaiveOf is SeasonalNaive over a plain slice with period n.
func SeasonalNaiveOf(data []float64, n int) (Forecast, error) {
	return SeasonalNaive(timeseries.New(data), Params{N: n})
}

// MeanOf is Mean over a plain slice with window n.
func MeanOf(data []float64, n int) (Forecast, error) {
	return Mean(timeseries.New(data), Params{N: n})
}

// DriftOf is Drift over a plain slice with window n.
func DriftOf(data []float64, n int) (Forecast, error) {
	return Drift(timeseries.New(data), Params{N: n})
}

func insufficient(m Method, err error) error {
	return fmt.Errorf("%s: %w: %w", m, ErrInsufficientHistory, err)
}
