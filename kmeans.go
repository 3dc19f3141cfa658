package normix

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
)

// rounds without new membership changes after which k-means stops
const changesThreshold = 2

type kmeansGuesser struct {
	iterations int

	// Variables keeping count of changes of points' membership every iteration. Used as a stopping condition.
	changes, oldchanges, counter, threshold int

	rnd *rand.Rand

	// Mapping from sample points to clusters' numbers.
	a []int

	// Mapping from clusters' numbers to their means
	m [2]float64

	// Sample
	d []float64
}

// KMeansGuess derives an initial guess for EM from a two-centroid k-means clustering of x.
// Each cluster becomes one component: its share of the sample is the weight, its mean and
// population standard deviation are the component's. The result is sorted by mean.
func KMeansGuess(x []float64, iterations int, src rand.Source) (Params, error) {
	if len(x) == 0 {
		return Params{}, ErrEmptySet
	}

	if iterations < 1 {
		return Params{}, ErrZeroIterations
	}

	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	c := &kmeansGuesser{
		iterations: iterations,
		threshold:  changesThreshold,
		rnd:        rand.New(src),
		a:          make([]int, len(x)),
		d:          x,
	}

	c.initializeMeansWithData()

	for i := range c.a {
		c.a[i] = -1
	}

	for i := 0; i < c.iterations && c.notConverged(); i++ {
		c.run()
	}

	return c.params(), nil
}

// k-means++ seeding of the two centroids
func (c *kmeansGuesser) initializeMeansWithData() {
	var (
		k    int
		s, t float64
		d    = make([]float64, len(c.d))
	)

	c.m[0] = c.d[c.rnd.IntN(len(c.d))]

	for j := 0; j < len(c.d); j++ {
		d[j] = (c.m[0] - c.d[j]) * (c.m[0] - c.d[j])
		s += d[j]
	}

	t = c.rnd.Float64() * s
	for s = d[0]; s < t && k < len(d)-1; s += d[k] {
		k++
	}

	c.m[1] = c.d[k]
}

func (c *kmeansGuesser) run() {
	var (
		n      int
		sum    [2]float64
		counts [2]int
	)

	for i, v := range c.d {
		n = 0
		if math.Abs(v-c.m[1]) < math.Abs(v-c.m[0]) {
			n = 1
		}

		if c.a[i] != n {
			c.changes++
		}

		c.a[i] = n
		sum[n] += v
		counts[n]++
	}

	for j := range c.m {
		if counts[j] > 0 {
			c.m[j] = sum[j] / float64(counts[j])
		}
	}
}

func (c *kmeansGuesser) notConverged() bool {
	if c.counter == c.threshold {
		return false
	}

	if c.changes == c.oldchanges {
		c.counter++
	}

	c.oldchanges = c.changes

	return true
}

func (c *kmeansGuesser) params() Params {
	var b [2][]float64

	for i, v := range c.d {
		b[c.a[i]] = append(b[c.a[i]], v)
	}

	// A sample without spread leaves one cluster empty; both components then describe the whole sample.
	if len(b[0]) == 0 || len(b[1]) == 0 {
		m, s := stat.PopMeanStdDev(c.d, nil)
		if s == 0 {
			s = 1
		}

		return Params{P1: 0.5, Mean1: m, Mean2: m, SD1: s, SD2: s}
	}

	var (
		m [2]float64
		s [2]float64
	)

	for j := range b {
		m[j], s[j] = stat.PopMeanStdDev(b[j], nil)
		if s[j] == 0 {
			s[j] = 1
		}
	}

	return Params{
		P1:    float64(len(b[0])) / float64(len(c.d)),
		Mean1: m[0],
		Mean2: m[1],
		SD1:   s[0],
		SD2:   s[1],
	}.Sorted()
}
