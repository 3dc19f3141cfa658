package config

import "github.com/mpraski/normix"

// Config holds all settings of the xfitmix driver.
type Config struct {
	LogLevel string       `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Sample   SampleConfig `mapstructure:"sample"`
	Truth    ParamsConfig `mapstructure:"truth"`
	Guess    ParamsConfig `mapstructure:"guess"`
	Fit      FitConfig    `mapstructure:"fit"`
	Plot     PlotConfig   `mapstructure:"plot"`
}

// SampleConfig describes where the data comes from: simulated from Truth, or read from Input.
type SampleConfig struct {
	Size   int    `mapstructure:"size" validate:"gte=1"`
	Seed   uint64 `mapstructure:"seed"`
	Input  string `mapstructure:"input"`
	Column int    `mapstructure:"column" validate:"gte=0"`
}

// ParamsConfig is a mixture given in configuration.
type ParamsConfig struct {
	P1    float64 `mapstructure:"p1" validate:"gte=0,lte=1"`
	Mean1 float64 `mapstructure:"mean1"`
	Mean2 float64 `mapstructure:"mean2"`
	SD1   float64 `mapstructure:"sd1" validate:"gt=0"`
	SD2   float64 `mapstructure:"sd2" validate:"gt=0"`
}

// FitConfig controls the EM runs.
type FitConfig struct {
	Trials     int     `mapstructure:"trials" validate:"gte=1"`
	Iterations int     `mapstructure:"iterations" validate:"gte=0"`
	Workers    int     `mapstructure:"workers" validate:"gte=0"`
	Tolerance  float64 `mapstructure:"tolerance" validate:"gte=0"`
	Init       string  `mapstructure:"init" validate:"oneof=fixed kmeans"`
}

// PlotConfig controls the optional histogram output.
type PlotConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required_if=Enabled true"`
	Bins    int    `mapstructure:"bins" validate:"gte=1"`
}

func (p ParamsConfig) Params() normix.Params {
	return normix.Params{
		P1:    p.P1,
		Mean1: p.Mean1,
		Mean2: p.Mean2,
		SD1:   p.SD1,
		SD2:   p.SD2,
	}
}
