package baseline

import (
	"fmt"

	"github.com/sartorproj/gobaseline/timeseries"
)

// Method names a forecasting baseline.
type Method string

const (
	MethodNaive         Method = "naive"
	MethodSeasonalNaive Method = "seasonal_naive"
	MethodMean          Method = "mean"
	MethodDrift         Method = "drift"
)

// Func is the signature shared by every baseline.
type Func func(s *timeseries.Series, p Params) (Forecast, error)

var registry = map[Method]Func{
	MethodNaive:         Naive,
	MethodSeasonalNaive: SeasonalNaive,
	MethodMean:          Mean,
	MethodDrift:         Drift,
}

// Methods returns the available methods in a fixed order.
func Methods() []Method {
	return []Method{MethodNaive, MethodSeasonalNaive, MethodMean, MethodDrift}
}

// Lookup returns the function registered under name.
func Lookup(name Method) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return fn, nil
}

// ForecastWith runs the method registered under name.
func ForecastWith(name Method, s *timeseries.Series, p Params) (Forecast, error) {
	fn, err := Lookup(name)
	if err != nil {
		return Undefined(), err
	}
	return fn(s, p)
}
