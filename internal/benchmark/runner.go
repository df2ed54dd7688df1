// Package benchmark drives repeated execution of the use cases and reduces
// raw wall-clock samples into statistical summaries.
package benchmark

import (
	"context"
	"fmt"
	"time"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/usecase"
)

// Iteration bounds for a single benchmark invocation.
const (
	MinIterations = 1
	MaxIterations = 200
)

// Run executes fn once untimed as a warmup, then exactly iterations times
// sequentially, timing each call with the monotonic clock, and summarizes
// the samples.
//
// Iterations run strictly sequentially so each sample is an uncontended
// per-call latency. Any failing call aborts the run immediately; partial
// samples are never summarized, on the premise that timing data from a run
// containing errors is not trustworthy. Context cancellation propagates into
// the in-flight call and stops remaining iterations.
func Run(ctx context.Context, useCase string, iterations int, fn func(context.Context) error) (Summary, error) {
	if iterations < MinIterations || iterations > MaxIterations {
		return Summary{}, fmt.Errorf("%w: iterations must be %d..%d", usecase.ErrInvalidInput, MinIterations, MaxIterations)
	}

	// Warmup: excludes cold-start cost (connection establishment, plan
	// caching) from the measured samples.
	if err := fn(ctx); err != nil {
		return Summary{}, fmt.Errorf("%s warmup: %w", useCase, err)
	}

	samples := make([]time.Duration, 0, iterations)
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Summary{}, fmt.Errorf("%s aborted after %d iterations: %w", useCase, i, err)
		}

		start := time.Now()
		if err := fn(ctx); err != nil {
			return Summary{}, fmt.Errorf("%s iteration %d: %w", useCase, i+1, err)
		}
		samples = append(samples, time.Since(start))
	}

	return summarize(useCase, samples), nil
}
