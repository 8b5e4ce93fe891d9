package cachescope

import (
	"fmt"
	"math"
	"math/rand"
)

// BuildCycle embeds a random single-cycle successor chain in cells.
// The chain covers the active positions at flat offsets 0, stride,
// 2*stride, ... (active-1)*stride. Each visited cell stores the flat
// offset of its successor XOR-ed with mask, so the stored values carry
// no pattern a next-address predictor can learn.
//
// Following the stored relation from offset 0 exactly active times
// visits every active position once and returns to offset 0. That is
// the property Traverse relies on.
func BuildCycle(cells []int32, active, stride int, mask int32, rng *rand.Rand) error {
	if rng == nil {
		return ErrNoRand
	}
	if active < 1 {
		return NewInvalidArgError("BuildCycle", "active position count must be at least 1")
	}
	if stride < 1 {
		return NewInvalidArgError("BuildCycle", "stride must be at least 1")
	}
	last := (active - 1) * stride
	if last >= len(cells) {
		return NewInvalidArgError("BuildCycle",
			fmt.Sprintf("cycle needs %d cells, region has %d", last+1, len(cells)))
	}
	if last > math.MaxInt32 {
		return NewInvalidArgError("BuildCycle", "flat offsets exceed 32-bit cell range")
	}

	// Visit order over the active indices. Index 0 is excluded from the
	// shuffle and appended as the closing link, so the walk both starts
	// and ends at offset 0. active == 1 degenerates to a self-loop.
	order := make([]int, active-1, active)
	for i := range order {
		order[i] = i + 1
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	order = append(order, 0)

	cur := 0
	for _, next := range order {
		cells[cur*stride] = int32(next*stride) ^ mask
		cur = next
	}
	return nil
}
