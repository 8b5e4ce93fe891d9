package cachescope

import (
	"fmt"
	"io"
	"math/rand"
)

// SampleFunc receives one normalized latency sample: nanoseconds per
// active position for the grid cell at (lengthIdx, strideIdx).
type SampleFunc func(lengthIdx, strideIdx int, nsPerPos float64)

// SweepConfig carries the knobs for one sweep pass. Strides and Lengths
// are policy and belong to the caller; Mask and Align default to
// DefaultMask and DefaultAlign when zero. Rand drives the cycle shuffle
// and must be supplied so runs are reproducible under a fixed seed.
type SweepConfig struct {
	Strides []int      // element strides, column axis of the grid
	Lengths []int      // working-set lengths in elements, row axis
	Mask    int32      // successor encoding mask
	Align   int        // region alignment in bytes
	Rand    *rand.Rand // shuffle source for cycle construction
}

// Sweep runs one full measurement pass over the (length, stride) grid.
// For each cell it allocates a fresh aligned region, embeds a cycle,
// walks it untimed to warm caches and TLB, walks it again timed, and
// hands the normalized sample to onSample. Cells whose cycle would be
// too short to mean anything (active positions <= MinActivePositions)
// are skipped without a callback.
//
// A single checksum accumulator is threaded through every traversal in
// the pass and flushed to a discard sink at the end. It carries no
// result; it only keeps the traversals observable.
func Sweep(cfg *SweepConfig, onSample SampleFunc) error {
	if cfg == nil {
		return NewInvalidArgError("Sweep", "config must not be nil")
	}
	if onSample == nil {
		return NewInvalidArgError("Sweep", "sample callback must not be nil")
	}
	mask := cfg.Mask
	if mask == 0 {
		mask = DefaultMask
	}
	align := cfg.Align
	if align == 0 {
		align = DefaultAlign
	}

	var checksum int32

	for i, length := range cfg.Lengths {
		for j, stride := range cfg.Strides {
			if stride <= 0 {
				return NewInvalidArgError("Sweep",
					fmt.Sprintf("stride %d at index %d must be positive", stride, j))
			}
			active := length / stride
			if active <= MinActivePositions {
				continue
			}

			region, err := AllocRegion(length, align)
			if err != nil {
				return err
			}
			cells := region.Int32()

			if err := BuildCycle(cells, active, stride, mask, cfg.Rand); err != nil {
				region.Release()
				return err
			}

			Traverse(WarmupRounds*active, cells, mask, &checksum)
			elapsed := MeasureTraversal(TimedRounds*active, cells, mask, &checksum)

			onSample(i, j, float64(elapsed.Nanoseconds())/float64(active))

			region.Release()
		}
	}

	fmt.Fprint(io.Discard, checksum)
	return nil
}
