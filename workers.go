package mdtransform

import "runtime"

// Worker count bounds for batch processing.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps automatic sizing; parsing is CPU-bound.
	MaxWorkers = 32
)

// ResolveWorkers determines how many messages to process in parallel.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs in
// containers).
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
