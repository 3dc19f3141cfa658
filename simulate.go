package normix

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Simulate draws n independent observations from the mixture p. Each observation first picks
// its component, the first with probability p.P1, then draws from that component's normal
// distribution. Randomness comes from src; a nil src uses the global source.
func Simulate(n int, p Params, src rand.Source) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	var (
		label = distuv.Bernoulli{P: 1 - p.P1, Src: src}
		n1    = distuv.Normal{Mu: p.Mean1, Sigma: p.SD1, Src: src}
		n2    = distuv.Normal{Mu: p.Mean2, Sigma: p.SD2, Src: src}
		x     = make([]float64, n)
	)

	for i := range x {
		if label.Rand() == 0 {
			x[i] = n1.Rand()
		} else {
			x[i] = n2.Rand()
		}
	}

	return x, nil
}
