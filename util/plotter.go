package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"chronos/models/forecast"
)

// RenderTemperatureChart writes an HTML line chart of the matched peak
// temperatures for the given days. Days without forecast data produce
// a gap in the line rather than a zero reading.
func RenderTemperatureChart(w io.Writer, days []string, summaries []forecast.Summary) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Chronos - Pronóstico",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Temperatura máxima por día",
		}),
	)

	items := make([]opts.LineData, 0, len(summaries))
	for _, summary := range summaries {
		if summary.MaxTemp == nil {
			items = append(items, opts.LineData{Value: nil})
			continue
		}
		items = append(items, opts.LineData{Value: *summary.MaxTemp})
	}

	line.SetXAxis(days).AddSeries("Máxima (°C)", items,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{c}°C",
		}),
	)

	return line.Render(w)
}
