package benchmark

import (
	"math"
	"sort"
	"time"
)

// Summary holds the aggregated timing statistics for one benchmarked use
// case. Min/max/percentiles are rounded to whole milliseconds; mean and
// standard deviation keep fractional precision.
type Summary struct {
	UseCase    string  `json:"use_case"`
	Iterations int     `json:"iterations"`
	MinMs      int64   `json:"min_ms"`
	MaxMs      int64   `json:"max_ms"`
	MeanMs     float64 `json:"mean_ms"`
	P50Ms      int64   `json:"p50_ms"`
	P95Ms      int64   `json:"p95_ms"`
	StdDevMs   float64 `json:"std_dev_ms"`
}

// summarize reduces raw duration samples into a Summary using nearest-rank
// percentiles and population standard deviation. Both are load-bearing
// choices: substituting interpolated percentiles or sample variance would
// silently change reported results.
func summarize(useCase string, samples []time.Duration) Summary {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mean := 0.0
	for _, s := range samples {
		mean += float64(s)
	}
	mean /= float64(len(samples))

	variance := 0.0
	for _, s := range samples {
		d := float64(s) - mean
		variance += d * d
	}
	variance /= float64(len(samples))

	return Summary{
		UseCase:    useCase,
		Iterations: len(samples),
		MinMs:      toMillis(sorted[0]),
		MaxMs:      toMillis(sorted[len(sorted)-1]),
		MeanMs:     mean / float64(time.Millisecond),
		P50Ms:      toMillis(percentile(sorted, 0.50)),
		P95Ms:      toMillis(percentile(sorted, 0.95)),
		StdDevMs:   math.Sqrt(variance) / float64(time.Millisecond),
	}
}

// percentile indexes into the ascending samples via ceil(p*N)-1, clamped to
// the valid range. Nearest-rank, no interpolation.
func percentile(sorted []time.Duration, p float64) time.Duration {
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// toMillis converts a duration to whole milliseconds, rounding to nearest.
func toMillis(d time.Duration) int64 {
	return int64(math.Round(float64(d) / float64(time.Millisecond)))
}
