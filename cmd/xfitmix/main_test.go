package main

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpraski/normix"
	"github.com/mpraski/normix/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	cfg, err := config.Load(nil)
	require.NoError(t, err)

	cfg.Sample.Size = 2000
	cfg.Fit.Trials = 2

	return cfg
}

func TestPrintTable(t *testing.T) {
	var (
		buf   bytes.Buffer
		guess = normix.Params{P1: 0.5, Mean1: 0, Mean2: 0, SD1: 1, SD2: 3}
		truth = normix.Params{P1: 0.3, Mean1: 0, Mean2: 5, SD1: 1, SD2: 1.5}
		fit   = normix.Params{P1: 0.31, Mean1: 0.02, Mean2: 5.01, SD1: 0.99, SD2: 1.49}
	)

	printTable(&buf, guess, &truth, fit)

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "              p1      p2      m1      m2     sd1     sd2", lines[0])
	assert.Equal(t, "Guessed:   0.5000  0.5000  0.0000  0.0000  1.0000  3.0000", lines[1])
	assert.Equal(t, "   True:   0.3000  0.7000  0.0000  5.0000  1.0000  1.5000", lines[2])
	assert.Equal(t, " Fitted:   0.3100  0.6900  0.0200  5.0100  0.9900  1.4900", lines[3])
	assert.Equal(t, "   Diff:   0.0100 -0.0100  0.0200  0.0100 -0.0100 -0.0100", lines[4])
}

func TestPrintTableWithoutTruth(t *testing.T) {
	var buf bytes.Buffer

	printTable(&buf, normix.Params{P1: 0.5, SD1: 1, SD2: 1}, nil, normix.Params{P1: 0.5, SD1: 1, SD2: 1})

	assert.Contains(t, buf.String(), "Fitted:")
	assert.NotContains(t, buf.String(), "True:")
	assert.NotContains(t, buf.String(), "Diff:")
}

func TestPrintHeader(t *testing.T) {
	var buf bytes.Buffer

	printHeader(&buf, 10000, 30)
	assert.Equal(t, "#obs: 10000 \n#iter_em: 30\n\n", buf.String())
}

func TestTrialPath(t *testing.T) {
	assert.Equal(t, "out/fit.png", trialPath("out/fit.png", 1))
	assert.Equal(t, "out/fit-2.png", trialPath("out/fit.png", 2))
	assert.Equal(t, "fit-3", trialPath("fit", 3))
}

func TestRunSimulatedTrials(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, run(testConfig(t), &buf, discardLogger()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "#obs: 2000 \n#iter_em: 30\n\n"))
	assert.Equal(t, 2, strings.Count(out, "Fitted:"))
	assert.Equal(t, 2, strings.Count(out, "True:"))
}

func TestRunKMeansInit(t *testing.T) {
	var buf bytes.Buffer

	cfg := testConfig(t)
	cfg.Fit.Init = "kmeans"
	cfg.Fit.Trials = 1

	require.NoError(t, run(cfg, &buf, discardLogger()))
	assert.Equal(t, 1, strings.Count(buf.String(), "Guessed:"))
}

func TestRunImportedSample(t *testing.T) {
	var (
		buf  bytes.Buffer
		path = filepath.Join(t.TempDir(), "sample.csv")
		data strings.Builder
	)

	x, err := normix.Simulate(500, normix.Params{P1: 0.4, Mean1: -2, Mean2: 2, SD1: 1, SD2: 1}, rand.NewPCG(5, 5))
	require.NoError(t, err)

	data.WriteString("value\n")
	for _, v := range x {
		data.WriteString(strconv.FormatFloat(v, 'g', -1, 64) + "\n")
	}
	require.NoError(t, os.WriteFile(path, []byte(data.String()), 0o600))

	cfg := testConfig(t)
	cfg.Sample.Input = path

	require.NoError(t, run(cfg, &buf, discardLogger()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "#obs: 500 \n"))
	assert.Equal(t, 1, strings.Count(out, "Fitted:"))
	assert.NotContains(t, out, "True:")
}

func TestRunWritesPlot(t *testing.T) {
	var (
		buf bytes.Buffer
		dir = t.TempDir()
	)

	cfg := testConfig(t)
	cfg.Plot.Enabled = true
	cfg.Plot.Path = filepath.Join(dir, "fit.png")

	require.NoError(t, run(cfg, &buf, discardLogger()))

	assert.FileExists(t, filepath.Join(dir, "fit.png"))
	assert.FileExists(t, filepath.Join(dir, "fit-2.png"))
}

func TestRunMissingInput(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sample.Input = filepath.Join(t.TempDir(), "missing.csv")

	assert.Error(t, run(cfg, io.Discard, discardLogger()))
}
