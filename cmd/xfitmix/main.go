// xfitmix simulates samples from a two-component normal mixture, fits them
// with EM and prints the guessed, true and fitted parameters of every trial.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/mpraski/normix"
	"github.com/mpraski/normix/internal/config"
	"github.com/mpraski/normix/internal/logger"
)

const kmeansIterations = 100

func main() {
	start := time.Now()

	fs := config.Flags()
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg.LogLevel, os.Stderr)

	if err := run(cfg, os.Stdout, log); err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("time elapsed (s): %6.3f\n", time.Since(start).Seconds())
}

func run(cfg *config.Config, w io.Writer, log *slog.Logger) error {
	var (
		src    = rand.NewPCG(cfg.Sample.Seed, cfg.Sample.Seed)
		truth  = cfg.Truth.Params()
		trials = cfg.Fit.Trials
		x      []float64
	)

	e, err := normix.EM(cfg.Fit.Iterations, cfg.Fit.Workers)
	if err != nil {
		return fmt.Errorf("failed to create estimator: %w", err)
	}
	e = e.WithTolerance(cfg.Fit.Tolerance)

	if cfg.Sample.Input != "" {
		x, err = normix.NewImporter().Import(cfg.Sample.Input, cfg.Sample.Column)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", cfg.Sample.Input, err)
		}

		if trials > 1 {
			log.Warn("imported sample is fitted once", "trials", trials)
			trials = 1
		}

		printHeader(w, len(x), cfg.Fit.Iterations)
	} else {
		printHeader(w, cfg.Sample.Size, cfg.Fit.Iterations)
	}

	for trial := 1; trial <= trials; trial++ {
		started := time.Now()

		if cfg.Sample.Input == "" {
			if x, err = normix.Simulate(cfg.Sample.Size, truth, src); err != nil {
				return fmt.Errorf("failed to simulate sample: %w", err)
			}
		}

		logSample(log, trial, x)

		guess := cfg.Guess.Params()
		if cfg.Fit.Init == "kmeans" {
			if guess, err = normix.KMeansGuess(x, kmeansIterations, src); err != nil {
				return fmt.Errorf("failed to derive initial guess: %w", err)
			}
		}

		fit, err := e.Fit(x, guess)
		if err != nil {
			return fmt.Errorf("failed to fit trial %d: %w", trial, err)
		}

		log.Info("fit complete",
			"trial", trial,
			"iterations", e.Iterations(),
			"loglik", normix.LogLikelihood(x, fit),
			"finite", fit.IsFinite(),
			"elapsed", time.Since(started))

		if cfg.Sample.Input == "" {
			printTable(w, guess, &truth, fit)
		} else {
			printTable(w, guess, nil, fit)
		}

		if cfg.Plot.Enabled {
			path := trialPath(cfg.Plot.Path, trial)
			if err := plotFit(path, x, cfg.Plot.Bins, fit); err != nil {
				return err
			}
			log.Info("plot saved", "trial", trial, "path", path)
		}
	}

	return nil
}
