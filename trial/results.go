package trial

import (
	"sync"
	"time"
)

// Results is a concurrency-safe, unordered collection of elapsed times.
// Each trial appends once; the mean is read after all trials have joined.
type Results struct {
	mu      sync.Mutex
	elapsed []time.Duration
}

// Add appends one trial's elapsed time.
func (r *Results) Add(d time.Duration) {
	r.mu.Lock()
	r.elapsed = append(r.elapsed, d)
	r.mu.Unlock()
}

// Len returns the number of recorded trials.
func (r *Results) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.elapsed)
}

// Durations returns a copy of the recorded times in insertion order.
func (r *Results) Durations() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.elapsed...)
}

// Mean returns Σ tᵢ / T, or 0 when nothing was recorded.
func (r *Results) Mean() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.elapsed) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range r.elapsed {
		sum += d
	}
	return sum / time.Duration(len(r.elapsed))
}

// MeanSeconds returns the mean in seconds computed in float64, matching a
// sum of per-trial seconds divided by the trial count.
func (r *Results) MeanSeconds() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return MeanSeconds(r.elapsed)
}

// MeanSeconds averages ds in seconds; it returns 0 for an empty slice.
func MeanSeconds(ds []time.Duration) float64 {
	if len(ds) == 0 {
		return 0
	}
	var sum float64
	for _, d := range ds {
		sum += d.Seconds()
	}
	return sum / float64(len(ds))
}
