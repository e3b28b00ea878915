// Package timeseries provides the observation sequence used by the baseline
// forecasters.
//
// A Series holds observations ordered oldest to newest. Forecasters only
// read a Series; nothing in this module mutates one.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// Integer data is converted to float64:
//
//	series := timeseries.FromValues([]int{3, 5, 8})
//
// # Access From the End
//
// Forecasters address observations relative to the most recent one:
//
//	last, err := series.Last()      // same as FromEnd(1)
//	first, err := series.FromEnd(series.Len())
//	recent := series.Suffix(3)      // last three values, read-only view
//
// Out-of-range access returns an *IndexError that matches ErrOutOfRange:
//
//	if _, err := series.FromEnd(10); errors.Is(err, timeseries.ErrOutOfRange) {
//	    // not enough history
//	}
package timeseries
