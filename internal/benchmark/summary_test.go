package benchmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeKnownSamples(t *testing.T) {
	samples := []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
		40 * time.Millisecond,
		50 * time.Millisecond,
	}

	s := summarize("UC2.GetOrderDetails", samples)

	assert.Equal(t, "UC2.GetOrderDetails", s.UseCase)
	assert.Equal(t, 5, s.Iterations)
	assert.Equal(t, int64(10), s.MinMs)
	assert.Equal(t, int64(50), s.MaxMs)
	assert.Equal(t, int64(30), s.P50Ms)
	assert.Equal(t, int64(50), s.P95Ms)
	assert.Equal(t, 30.0, s.MeanMs)
	// Population stddev of {10,20,30,40,50} is sqrt(200).
	assert.InDelta(t, 14.1421356, s.StdDevMs, 1e-6)
}

func TestSummarizeUnsortedInputAndSingleSample(t *testing.T) {
	s := summarize("x", []time.Duration{30 * time.Millisecond, 10 * time.Millisecond, 20 * time.Millisecond})
	assert.Equal(t, int64(10), s.MinMs)
	assert.Equal(t, int64(30), s.MaxMs)
	assert.Equal(t, int64(20), s.P50Ms)

	single := summarize("y", []time.Duration{7 * time.Millisecond})
	assert.Equal(t, int64(7), single.MinMs)
	assert.Equal(t, int64(7), single.MaxMs)
	assert.Equal(t, int64(7), single.P50Ms)
	assert.Equal(t, int64(7), single.P95Ms)
	assert.Equal(t, 0.0, single.StdDevMs)
}

func TestPercentileNearestRank(t *testing.T) {
	sorted := []time.Duration{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	tests := []struct {
		p    float64
		want time.Duration
	}{
		{p: 0.50, want: 5},
		{p: 0.90, want: 9},
		{p: 0.95, want: 10},
		{p: 1.00, want: 10},
		{p: 0.01, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, percentile(sorted, tt.p), "p=%v", tt.p)
	}
}

func TestToMillisRoundsToNearest(t *testing.T) {
	assert.Equal(t, int64(1), toMillis(1400*time.Microsecond))
	assert.Equal(t, int64(2), toMillis(1500*time.Microsecond))
	assert.Equal(t, int64(2), toMillis(1600*time.Microsecond))
	assert.Equal(t, int64(0), toMillis(400*time.Microsecond))
}
