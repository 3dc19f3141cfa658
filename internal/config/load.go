package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load, e.g. XFITMIX_FIT_ITERATIONS.
const EnvPrefix = "XFITMIX"

// defaults reproduce the reference experiment: 10^4 observations from
// (0.3, 0, 5, 1, 1.5), three fits of 30 iterations from (0.5, 0, 0, 1, 3).
var defaults = map[string]any{
	"log_level":      "info",
	"sample.size":    10000,
	"sample.seed":    uint64(42),
	"sample.input":   "",
	"sample.column":  0,
	"truth.p1":       0.3,
	"truth.mean1":    0.0,
	"truth.mean2":    5.0,
	"truth.sd1":      1.0,
	"truth.sd2":      1.5,
	"guess.p1":       0.5,
	"guess.mean1":    0.0,
	"guess.mean2":    0.0,
	"guess.sd1":      1.0,
	"guess.sd2":      3.0,
	"fit.trials":     3,
	"fit.iterations": 30,
	"fit.workers":    0,
	"fit.tolerance":  0.0,
	"fit.init":       "fixed",
	"plot.enabled":   false,
	"plot.path":      "xfitmix.png",
	"plot.bins":      30,
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"size":       "sample.size",
	"seed":       "sample.seed",
	"input":      "sample.input",
	"column":     "sample.column",
	"trials":     "fit.trials",
	"iterations": "fit.iterations",
	"workers":    "fit.workers",
	"tolerance":  "fit.tolerance",
	"init":       "fit.init",
	"plot":       "plot.enabled",
	"plot-path":  "plot.path",
}

// Flags returns the command-line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("xfitmix", pflag.ContinueOnError)

	fs.String("config", "", "path to a configuration file (default ./xfitmix.yaml if present)")
	fs.String("log-level", defaults["log_level"].(string), "log level: debug, info, warn or error")
	fs.Int("size", defaults["sample.size"].(int), "number of simulated observations")
	fs.Uint64("seed", defaults["sample.seed"].(uint64), "random seed")
	fs.String("input", "", "CSV file to fit instead of simulated data")
	fs.Int("column", 0, "zero-based CSV column holding the sample")
	fs.Int("trials", defaults["fit.trials"].(int), "number of simulate-and-fit trials")
	fs.Int("iterations", defaults["fit.iterations"].(int), "number of EM iterations")
	fs.Int("workers", 0, "goroutines per EM sweep (0 picks from the sample size)")
	fs.Float64("tolerance", 0, "stop EM early once no parameter moves by this much (0 disables)")
	fs.String("init", defaults["fit.init"].(string), "initial guess: fixed or kmeans")
	fs.Bool("plot", false, "write a histogram of each sample with the fitted density")
	fs.String("plot-path", defaults["plot.path"].(string), "histogram output file")

	return fs
}

// Load builds the configuration from defaults, an optional config file, XFITMIX_ environment
// variables and the given flags, in increasing order of precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	var file string

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}

		if f := fs.Lookup("config"); f != nil {
			file = f.Value.String()
		}
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("xfitmix")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
