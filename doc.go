// Package gobaseline provides one-step-ahead forecasting baselines.
//
// The baselines are the simple methods from "Forecasting: Principles and
// Practice" that more elaborate models are usually measured against. Each
// one reads the history of a series and predicts the next point.
//
// # Methods
//
//   - Naive: repeat the last observation
//   - Seasonal naive: repeat the observation one season ago
//   - Mean: average the last n observations
//   - Drift: extend the trend over the last n observations by one step
//
// # Quick Start
//
//	series := timeseries.New(values)
//	f, err := baseline.SeasonalNaive(series, baseline.Params{N: 7})
//	if v, ok := f.Value(); ok {
//	    fmt.Println(v)
//	}
//
// Select a method by name:
//
//	f, err := baseline.ForecastWith(baseline.MethodDrift, series, baseline.Params{})
//
// # Packages
//
//   - baseline: the forecasting methods, the Forecast result type and dispatch by name
//   - timeseries: the observation sequence type
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package gobaseline
