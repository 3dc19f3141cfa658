package normix

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// DefaultIterations is the number of EM iterations run when the caller has no preference.
const DefaultIterations = 100

type emEstimator struct {
	iterations int
	workers    int
	tolerance  float64

	// Iterations performed by the last fit.
	performed int

	// Responsibilities of the current iteration, reused across iterations.
	w1, w2 []float64

	// Per-range partial sums of the current sweep.
	s []partialSums

	// Fits are serialized because the scratch buffers are shared.
	mu sync.Mutex
}

type partialSums struct {
	w1, w2   float64
	wx1, wx2 float64
	d1, d2   float64
}

// EM returns an Estimator running the given number of iterations, sweeping the sample with
// the given number of goroutines. Zero workers picks a count suited to the sample size.
func EM(iterations, workers int) (Estimator, error) {
	if iterations < 0 {
		return nil, ErrNegativeIterations
	}

	if workers < 0 {
		return nil, ErrZeroWorkers
	}

	return &emEstimator{
		iterations: iterations,
		workers:    workers,
	}, nil
}

// Fit runs exactly niter EM iterations on x starting from init. NaN and Inf values caused
// by a component losing all responsibility mass are propagated to the result.
func Fit(x []float64, init Params, niter int) (Params, error) {
	e, err := EM(niter, 1)
	if err != nil {
		return Params{}, err
	}

	return e.Fit(x, init)
}

func (c *emEstimator) WithTolerance(tol float64) Estimator {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tol < 0 {
		tol = 0
	}

	c.tolerance = tol

	return c
}

func (c *emEstimator) Iterations() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.performed
}

func (c *emEstimator) Fit(x []float64, init Params) (Params, error) {
	if len(x) == 0 {
		return Params{}, ErrEmptySet
	}

	if err := init.Validate(); err != nil {
		return Params{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.performed = 0

	if c.iterations == 0 {
		return init, nil
	}

	var (
		p    = init
		next Params
		sw   = newSweeper(len(x), numWorkers(len(x), c.workers))
	)

	c.w1 = make([]float64, len(x))
	c.w2 = make([]float64, len(x))
	c.s = make([]partialSums, len(sw.r))

	sw.start()
	defer sw.stop()

	for i := 0; i < c.iterations; i++ {
		next = c.step(sw, x, p)
		c.performed++

		if c.tolerance > 0 && maxChange(p, next) < c.tolerance {
			p = next
			break
		}

		p = next
	}

	c.w1 = nil
	c.w2 = nil
	c.s = nil

	return p, nil
}

// step performs one EM iteration. Every sweep reads p only, and the new tuple is
// assembled after both sweeps have finished.
func (c *emEstimator) step(sw *sweeper, x []float64, p Params) Params {
	n1, n2 := p.components()

	sw.run(func(r rangeJob) {
		var (
			xs = x[r.a:r.b]
			w1 = c.w1[r.a:r.b]
			w2 = c.w2[r.a:r.b]
		)

		responsibilities(xs, w1, w2, p.P1, n1, n2)

		c.s[r.k] = partialSums{
			w1:  floats.Sum(w1),
			w2:  floats.Sum(w2),
			wx1: floats.Dot(w1, xs),
			wx2: floats.Dot(w2, xs),
		}
	})

	var t partialSums
	for _, s := range c.s {
		t.w1 += s.w1
		t.w2 += s.w2
		t.wx1 += s.wx1
		t.wx2 += s.wx2
	}

	var (
		m1 = t.wx1 / t.w1
		m2 = t.wx2 / t.w2
	)

	// Deviations are taken around the updated means.
	sw.run(func(r rangeJob) {
		c.s[r.k].d1 = weightedSquaredDeviation(c.w1[r.a:r.b], x[r.a:r.b], m1)
		c.s[r.k].d2 = weightedSquaredDeviation(c.w2[r.a:r.b], x[r.a:r.b], m2)
	})

	for _, s := range c.s {
		t.d1 += s.d1
		t.d2 += s.d2
	}

	return Params{
		P1:    t.w1 / float64(len(x)),
		Mean1: m1,
		Mean2: m2,
		SD1:   math.Sqrt(t.d1 / t.w1),
		SD2:   math.Sqrt(t.d2 / t.w2),
	}
}
