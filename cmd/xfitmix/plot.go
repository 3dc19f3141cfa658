package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mpraski/normix"
)

// plotFit saves a normalized histogram of x with the density of fit drawn over it.
func plotFit(path string, x []float64, bins int, fit normix.Params) error {
	p := plot.New()
	p.Title.Text = "Histogram of Simulated Data"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "density"

	hist, err := plotter.NewHist(plotter.Values(x), bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	hist.Normalize(1)
	p.Add(hist)

	density := plotter.NewFunction(fit.Prob)
	density.Samples = 500
	density.Width = vg.Points(2)
	p.Add(density)

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}

	return nil
}

// trialPath returns path for the first trial and path with the trial number
// inserted before the extension for later ones.
func trialPath(path string, trial int) string {
	if trial == 1 {
		return path
	}

	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), trial, ext)
}
