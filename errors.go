package normix

import "errors"

var (
	ErrEmptySet           = errors.New("Empty sample")
	ErrInvalidSize        = errors.New("Sample size cannot be less than 1")
	ErrZeroIterations     = errors.New("Number of iterations cannot be less than 1")
	ErrNegativeIterations = errors.New("Number of iterations cannot be negative")
	ErrZeroWorkers        = errors.New("Number of workers cannot be negative")
	ErrInvalidWeight      = errors.New("Mixing weight must lie in [0, 1]")
	ErrInvalidDeviation   = errors.New("Standard deviation must be positive")
	ErrInvalidRange       = errors.New("Column index cannot be negative")
)
