package normix

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

func (p Params) components() (distuv.Normal, distuv.Normal) {
	return distuv.Normal{Mu: p.Mean1, Sigma: p.SD1}, distuv.Normal{Mu: p.Mean2, Sigma: p.SD2}
}

// Prob returns the mixture density at x.
func (p Params) Prob(x float64) float64 {
	n1, n2 := p.components()
	return p.P1*n1.Prob(x) + (1-p.P1)*n2.Prob(x)
}

// LogLikelihood returns the log-likelihood of the sample x under p.
func LogLikelihood(x []float64, p Params) float64 {
	var (
		n1, n2 = p.components()
		l      float64
	)

	for _, v := range x {
		l += math.Log(p.P1*n1.Prob(v) + (1-p.P1)*n2.Prob(v))
	}

	return l
}

// Responsibilities performs a single E-step and returns, for every observation,
// the posterior probabilities of belonging to the first and second component.
// Observations with zero density under both components get NaN weights.
func Responsibilities(x []float64, p Params) (w1, w2 []float64) {
	w1 = make([]float64, len(x))
	w2 = make([]float64, len(x))

	n1, n2 := p.components()
	responsibilities(x, w1, w2, p.P1, n1, n2)

	return w1, w2
}

func responsibilities(x, w1, w2 []float64, p1 float64, n1, n2 distuv.Normal) {
	var r1, r2 float64

	for i := range x {
		r1 = p1 * n1.Prob(x[i])
		r2 = (1 - p1) * n2.Prob(x[i])
		w1[i] = r1 / (r1 + r2)
		w2[i] = r2 / (r1 + r2)
	}
}
