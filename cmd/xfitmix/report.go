package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/bmizerany/perks/quantile"

	"github.com/mpraski/normix"
)

const (
	fmtR = "%8.4f"
	fmtS = "%8s"
)

func printHeader(w io.Writer, nobs, niter int) {
	fmt.Fprintf(w, "#obs: %d \n#iter_em: %d\n\n", nobs, niter)
}

// printTable writes the guessed, true, fitted and difference rows of one trial.
// truth is nil when the sample was not simulated; its rows are then omitted.
func printTable(w io.Writer, guess normix.Params, truth *normix.Params, fit normix.Params) {
	var b strings.Builder
	for _, s := range []string{"", "p1", "p2", "m1", "m2", "sd1", "sd2"} {
		fmt.Fprintf(&b, fmtS, s)
	}
	fmt.Fprintln(w, b.String())

	printRow(w, "Guessed:", row(guess))
	if truth != nil {
		printRow(w, "True:", row(*truth))
	}
	printRow(w, "Fitted:", row(fit))
	if truth != nil {
		var (
			f = row(fit)
			t = row(*truth)
			d = make([]float64, len(f))
		)
		for i := range f {
			d[i] = f[i] - t[i]
		}
		printRow(w, "Diff:", d)
	}
	fmt.Fprintln(w)
}

// row returns the printed columns of p: p1, p2, m1, m2, sd1, sd2.
func row(p normix.Params) []float64 {
	return []float64{p.P1, p.P2(), p.Mean1, p.Mean2, p.SD1, p.SD2}
}

func printRow(w io.Writer, label string, values []float64) {
	var b strings.Builder
	for _, v := range values {
		fmt.Fprintf(&b, fmtR, v)
	}
	fmt.Fprintf(w, fmtS+" %s\n", label, b.String())
}

// logSample reports summary statistics of a sample at debug level.
func logSample(log *slog.Logger, trial int, x []float64) {
	var (
		s = stats.Sample{Xs: x}
		q = quantile.NewTargeted(0.05, 0.95)
	)

	for _, v := range x {
		q.Insert(v)
	}

	log.Debug("sample",
		"trial", trial,
		"n", len(x),
		"mean", s.Mean(),
		"sd", s.StdDev(),
		"p05", q.Query(0.05),
		"p95", q.Query(0.95))
}
