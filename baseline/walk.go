package baseline

import (
	"errors"

	"github.com/sartorproj/gobaseline/timeseries"
)

// Walk produces the in-sample one-step forecasts of a method over s. Entry i
// is the forecast of observation i made from the i observations before it,
// so the result has the same length as s and entry 0 is always Undefined.
//
// Prefixes too short for the method yield Undefined entries. Any other error,
// such as an invalid window, aborts the walk.
func Walk(s *timeseries.Series, name Method, p Params) ([]Forecast, error) {
	fn, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	out := make([]Forecast, s.Len())
	for i := range out {
		f, err := fn(s.Prefix(i), p)
		if err != nil {
			if errors.Is(err, ErrInsufficientHistory) {
				out[i] = Undefined()
				continue
			}
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// CountDefined returns the number of defined forecasts in fs.
func CountDefined(fs []Forecast) int {
	n := 0
	for _, f := range fs {
		if f.IsDefined() {
			n++
		}
	}
	return n
}
