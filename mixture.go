// Package normix fits two-component univariate Gaussian mixtures with the
// EM algorithm and simulates data from known mixtures.
package normix

import (
	"fmt"
	"math"
)

// Params holds the parameters of a two-component normal mixture. The weight of
// the second component is implicitly 1 - P1.
type Params struct {
	P1           float64
	Mean1, Mean2 float64
	SD1, SD2     float64
}

// Estimator fits the parameters of a two-component mixture to a sample.
type Estimator interface {
	// Fit runs EM on x starting from init. x is never modified.
	Fit(x []float64, init Params) (Params, error)

	// Iterations reports how many iterations the last call to Fit performed.
	Iterations() int

	// WithTolerance enables early stopping once no parameter moves by tol or more
	// within one iteration. A tolerance of 0 always runs every iteration.
	WithTolerance(tol float64) Estimator
}

// Validate reports whether p is a usable set of mixture parameters.
func (p Params) Validate() error {
	if !(p.P1 >= 0 && p.P1 <= 1) {
		return fmt.Errorf("%w: p1 = %v", ErrInvalidWeight, p.P1)
	}

	if !(p.SD1 > 0) {
		return fmt.Errorf("%w: sd1 = %v", ErrInvalidDeviation, p.SD1)
	}

	if !(p.SD2 > 0) {
		return fmt.Errorf("%w: sd2 = %v", ErrInvalidDeviation, p.SD2)
	}

	return nil
}

// P2 returns the weight of the second component.
func (p Params) P2() float64 {
	return 1 - p.P1
}

// Swap returns the same mixture with the component labels exchanged.
func (p Params) Swap() Params {
	return Params{
		P1:    1 - p.P1,
		Mean1: p.Mean2,
		Mean2: p.Mean1,
		SD1:   p.SD2,
		SD2:   p.SD1,
	}
}

// Sorted returns the labelling of p in which the first component has the smaller mean.
func (p Params) Sorted() Params {
	if p.Mean1 > p.Mean2 {
		return p.Swap()
	}

	return p
}

// IsFinite reports whether none of the parameters is NaN or infinite.
func (p Params) IsFinite() bool {
	for _, v := range p.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Values returns the parameters in (p1, mean1, mean2, sd1, sd2) order.
func (p Params) Values() []float64 {
	return []float64{p.P1, p.Mean1, p.Mean2, p.SD1, p.SD2}
}
