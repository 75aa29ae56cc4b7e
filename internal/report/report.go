// Package report produces the summary statistics and histogram figures
// that accompany a scoring run.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when there is nothing to summarize or plot.
var ErrNoData = errors.New("report: no data")

// Summary describes a sample of values.
type Summary struct {
	N         int
	Min       float64
	Max       float64
	Mean      float64
	Mode      float64
	ModeCount int
}

// Summarize computes the Summary of vals. Ties for the mode are broken
// arbitrarily.
func Summarize(vals []float64) (Summary, error) {
	if len(vals) == 0 {
		return Summary{}, ErrNoData
	}
	mode, count := stat.Mode(vals, nil)
	return Summary{
		N:         len(vals),
		Min:       floats.Min(vals),
		Max:       floats.Max(vals),
		Mean:      stat.Mean(vals, nil),
		Mode:      mode,
		ModeCount: int(count),
	}, nil
}

// Floats converts integer samples for Summarize and Histogram.
func Floats(in []int) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

// Histogram draws a bins-bin histogram of vals and saves it to path. The
// image format follows the file extension (.png, .svg, .pdf).
func Histogram(path, title, xlabel string, vals []float64, bins int) error {
	if len(vals) == 0 {
		return ErrNoData
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return fmt.Errorf("histogram %s: %w", path, err)
	}
	p.Add(h)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("histogram %s: %w", path, err)
	}
	return nil
}
