// Package baseline implements one-step-ahead forecasting baselines.
//
// Each method reads a timeseries.Series and returns a single Forecast for
// the observation that follows its last point. The methods follow
// "Forecasting: Principles and Practice" (Hyndman & Athanasopoulos):
//
//   - Naive: the last observed value
//   - SeasonalNaive: the value one seasonal period (n observations) ago
//   - Mean: the mean of the last n observations
//   - Drift: the last value plus the average step over the last n observations
//
// # Basic Usage
//
//	series := timeseries.New([]float64{2, 4, 6, 8, 10})
//	f, err := baseline.Drift(series, baseline.Params{N: 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, _ := f.Value() // 12
//
// # Uniform Calling Convention
//
// Every method has the Func signature and takes a Params value. Methods
// ignore Params.Extra, and Naive ignores Params.N, so a caller can hold one
// Params value and select the method by name:
//
//	p := baseline.Params{N: 7, Extra: map[string]any{"alpha": 0.3}}
//	for _, m := range baseline.Methods() {
//	    f, err := baseline.ForecastWith(m, series, p)
//	    ...
//	}
//
// # Insufficient History
//
// Naive, SeasonalNaive and Drift return an error matching both
// ErrInsufficientHistory and timeseries.ErrOutOfRange when the series is too
// short. Mean instead returns an Undefined forecast with a nil error, so a
// loop over growing history can skip early points without error handling.
// Drift with a window of 1 returns ErrDegenerateWindow.
//
// # Walking History
//
// Walk computes the forecast each method would have made at every point of
// a series, marking points with too little history as Undefined:
//
//	fs, err := baseline.Walk(series, baseline.MethodMean, baseline.Params{})
//
// All functions are pure and safe for concurrent use.
package baseline
