package normix

import "math"

// weightedSquaredDeviation returns the sum of w[i] * (x[i] - m)^2.
func weightedSquaredDeviation(w, x []float64, m float64) float64 {
	var s float64
	for i := range x {
		s += w[i] * (x[i] - m) * (x[i] - m)
	}
	return s
}

// maxChange returns the largest absolute difference between corresponding parameters of a and b.
func maxChange(a, b Params) float64 {
	var (
		u = a.Values()
		v = b.Values()
		m float64
	)
	for i := range u {
		if d := math.Abs(u[i] - v[i]); d > m || math.IsNaN(d) {
			m = d
		}
	}
	return m
}
