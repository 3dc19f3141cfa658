package normix

import (
	"runtime"
	"sync"
)

// struct denoting start and end indices of the sample portion swept by a worker, and the slot k its partial sums go to
type rangeJob struct {
	a, b, k int
}

// splitRange divides [0, l) into at most s contiguous ranges. The last range absorbs the remainder.
func splitRange(l, s int) []rangeJob {
	if s > l {
		s = l
	}

	if s < 1 {
		s = 1
	}

	var (
		f = l / s
		r = make([]rangeJob, s)
		b int
	)

	for i := 0; i < s; i++ {
		if i == s-1 {
			b = l
		} else {
			b = (i + 1) * f
		}

		r[i] = rangeJob{
			a: i * f,
			b: b,
			k: i,
		}
	}

	return r
}

/* sweeper runs one function over every range of the sample using a fixed set of worker goroutines.
 * Each call to run blocks until all ranges are done, so consecutive sweeps never overlap. */
type sweeper struct {
	r []rangeJob
	j chan rangeJob
	w sync.WaitGroup
	f func(rangeJob)

	// Running workers, joined by stop.
	g sync.WaitGroup
}

func newSweeper(l, workers int) *sweeper {
	return &sweeper{
		r: splitRange(l, workers),
	}
}

func (s *sweeper) start() {
	if len(s.r) == 1 {
		return
	}

	s.j = make(chan rangeJob, len(s.r))

	s.g.Add(len(s.r))

	for i := 0; i < len(s.r); i++ {
		go s.worker(s.j)
	}
}

func (s *sweeper) stop() {
	if s.j != nil {
		close(s.j)
		s.g.Wait()
		s.j = nil
	}
}

func (s *sweeper) run(f func(rangeJob)) {
	if s.j == nil {
		for _, r := range s.r {
			f(r)
		}

		return
	}

	s.f = f
	s.w.Add(len(s.r))

	for _, r := range s.r {
		s.j <- r
	}

	s.w.Wait()
}

func (s *sweeper) worker(j <-chan rangeJob) {
	defer s.g.Done()

	for r := range j {
		s.f(r)
		s.w.Done()
	}
}

// numWorkers picks the number of goroutines used to sweep a sample of size l.
// An explicit request is honoured up to l, otherwise the count grows with the sample.
func numWorkers(l, workers int) int {
	var b int

	if l < 5000 {
		b = 1
	} else if l < 50000 {
		b = 2
	} else if l < 500000 {
		b = 4
	} else {
		b = 8
	}

	if m := runtime.GOMAXPROCS(0); b > m {
		b = m
	}

	if workers == 0 {
		return b
	}

	if workers < l {
		return workers
	}

	return l
}
