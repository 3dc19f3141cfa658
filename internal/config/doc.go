// Package config loads the settings of the xfitmix driver: the simulated
// mixture, the initial guess, EM options and plotting. Values come from
// built-in defaults, an optional YAML file, XFITMIX_ environment variables
// and command-line flags, and are validated before use.
package config
