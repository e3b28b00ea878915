// Package main demonstrates the baseline forecasters on small built-in series.
// Based on: Forecasting: Principles and Practice (https://otexts.com/fpp3/simple-methods.html)
package main

import (
	"errors"

	"github.com/sartorproj/gobaseline/baseline"
	"github.com/sartorproj/gobaseline/internal/logging"
	"github.com/sartorproj/gobaseline/timeseries"
)

// Dataset defines a series to forecast
type Dataset struct {
	Name   string    // Display name
	Values []float64 // Observations, oldest first
	Period int       // Seasonal period (0 = default)
	Window int       // Mean and drift window (0 = default)
}

var datasets = []Dataset{
	{
		Name:   "Daily visitors",
		Values: []float64{120, 135, 150, 148, 160, 210, 230, 125, 140, 152, 151, 166, 215, 238},
		Period: 7,
	},
	{
		Name:   "Quarterly beer",
		Values: []float64{443, 410, 420, 532, 433, 421, 410, 512, 449, 381, 423, 531},
		Period: 4,
		Window: 4,
	},
	{
		Name:   "Annual eggs",
		Values: []float64{276.8, 315.4, 314.2, 321.0, 270.3, 268.5, 230.7, 198.1, 190.8},
		Window: 5,
	},
	{
		Name:   "Short history",
		Values: []float64{10, 11},
	},
}

func main() {
	log := logging.New(logging.DefaultConfig())

	for _, ds := range datasets {
		forecastDataset(log.With("series", ds.Name), ds)
	}
}

// forecastDataset logs the next-point forecast of every method and how much
// of the history each method could have forecast.
func forecastDataset(log *logging.Logger, ds Dataset) {
	series := timeseries.New(ds.Values)
	series.Name = ds.Name
	log.Info("loaded series", "observations", series.Len(), "mean", series.Mean())

	for _, m := range baseline.Methods() {
		p := paramsFor(m, ds)

		f, err := baseline.ForecastWith(m, series, p)
		switch {
		case errors.Is(err, baseline.ErrInsufficientHistory):
			log.Warn("not enough history", "method", string(m), "window", p.N, "error", err)
			continue
		case err != nil:
			log.Error("forecast failed", "method", string(m), "error", err)
			continue
		}

		walk, err := baseline.Walk(series, m, p)
		if err != nil {
			log.Error("walk failed", "method", string(m), "error", err)
			continue
		}

		log.Info("forecast",
			"method", string(m),
			"window", p.N,
			"next", f.String(),
			"in_sample", baseline.CountDefined(walk),
		)
	}
}

func paramsFor(m baseline.Method, ds Dataset) baseline.Params {
	p := baseline.DefaultParams(m)
	switch m {
	case baseline.MethodSeasonalNaive:
		if ds.Period > 0 {
			p.N = ds.Period
		}
	case baseline.MethodMean, baseline.MethodDrift:
		if ds.Window > 0 {
			p.N = ds.Window
		}
	}
	return p
}
