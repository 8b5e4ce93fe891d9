package cachescope

import (
	"math"
	"testing"
)

func TestTrimmedMeanDropsSlowTail(t *testing.T) {
	// One scheduling spike among five clean samples must not move the
	// mean: the top 20% is dropped before averaging.
	got := TrimmedMean([]float64{10, 10, 10, 10, 100})
	if got != 10 {
		t.Errorf("TrimmedMean() = %v, want 10", got)
	}
}

func TestTrimmedMeanKeepCount(t *testing.T) {
	// Ten samples keep the lowest eight: mean of 1..8 is 4.5.
	samples := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := TrimmedMean(samples); got != 4.5 {
		t.Errorf("TrimmedMean() = %v, want 4.5", got)
	}
}

func TestTrimmedMeanEmpty(t *testing.T) {
	if got := TrimmedMean(nil); !math.IsNaN(got) {
		t.Errorf("TrimmedMean(nil) = %v, want NaN", got)
	}
}

func TestTrimmedMeanOverTrimmed(t *testing.T) {
	// A single sample trims to an empty set.
	if got := TrimmedMean([]float64{42}); !math.IsNaN(got) {
		t.Errorf("TrimmedMean(single) = %v, want NaN", got)
	}
}

func TestTrimmedMeanOrderIrrelevant(t *testing.T) {
	a := TrimmedMean([]float64{10, 100, 10, 10, 10})
	b := TrimmedMean([]float64{100, 10, 10, 10, 10})
	if a != b {
		t.Errorf("sample order changed the result: %v vs %v", a, b)
	}
}

func TestTrimmedMeanLeavesInputUntouched(t *testing.T) {
	samples := []float64{3, 1, 2}
	TrimmedMean(samples)
	if samples[0] != 3 || samples[1] != 1 || samples[2] != 2 {
		t.Errorf("input mutated: %v", samples)
	}
}
