package report

import (
	"fmt"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ChartRenderer renders the donations-by-area bar chart to a PNG file.
type ChartRenderer struct {
	path string
}

func NewChartRenderer(path string) *ChartRenderer {
	return &ChartRenderer{path: path}
}

// Path returns the file the chart is written to.
func (r *ChartRenderer) Path() string {
	return r.path
}

func (r *ChartRenderer) Render(bars []Bar) error {
	values := make([]chart.Value, 0, len(bars))
	for _, bar := range bars {
		values = append(values, chart.Value{
			Label: bar.Area,
			Value: float64(bar.Total),
		})
	}

	graph := chart.BarChart{
		Title:    "Total Items Donated by Area",
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Bars:     values,
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
