package cachescope

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// TrimmedMean sorts the samples ascending, keeps the lowest
// TrimKeepFraction of them, and returns the arithmetic mean of the
// survivors. The slow tail is dropped one-sidedly: preemption and
// interrupts only ever inflate a latency sample, never deflate it.
// Returns NaN when the input is empty or nothing survives trimming.
func TrimmedMean(samples []float64) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	keep := int(float64(len(sorted)) * TrimKeepFraction)
	if keep == 0 {
		return math.NaN()
	}
	mean, err := stats.Mean(stats.Float64Data(sorted[:keep]))
	if err != nil {
		return math.NaN()
	}
	return mean
}
