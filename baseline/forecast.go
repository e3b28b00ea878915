// Package baseline implements one-step-ahead forecasting baselines.
package baseline

import (
	"math"
	"strconv"
)

// Forecast is a point prediction for the observation following the end of a
// series. The zero value is undefined.
type Forecast struct {
	value   float64
	defined bool
}

// Defined returns a forecast holding v.
func Defined(v float64) Forecast {
	return Forecast{value: v, defined: true}
}

// Undefined returns a forecast signalling that there is not enough history
// to compute one.
func Undefined() Forecast {
	return Forecast{}
}

// Value returns the forecast value and whether it is defined.
func (f Forecast) Value() (float64, bool) {
	return f.value, f.defined
}

// IsDefined reports whether the forecast holds a value.
func (f Forecast) IsDefined() bool {
	return f.defined
}

// Float returns the forecast value, or NaN when the forecast is undefined.
func (f Forecast) Float() float64 {
	if !f.defined {
		return math.NaN()
	}
	return f.value
}

func (f Forecast) String() string {
	if !f.defined {
		return "undefined"
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}
