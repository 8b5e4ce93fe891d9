package cachescope

// CapacityBoundary scans the smallest-stride column in increasing length
// order for the first relative latency jump above CapacityJumpThreshold
// and returns the length index immediately before that jump: the last
// working set that still fit the cache. The second return is false when
// no qualifying jump exists across the whole sweep.
//
// NaN cells never satisfy the comparison, so skipped or starved cells
// cannot fake a boundary.
func (t *Table) CapacityBoundary() (int, bool) {
	if len(t.Strides) == 0 {
		return 0, false
	}
	for i := 1; i < len(t.Cells); i++ {
		if t.Cells[i][0] > t.Cells[i-1][0]*CapacityJumpThreshold {
			return i - 1, true
		}
	}
	return 0, false
}

// LineBoundary scans the length row immediately after the capacity
// boundary in increasing stride order and returns the first stride index
// whose latency jumps above LineJumpThreshold relative to its neighbor.
// Only that single row is inspected; at the row just past capacity every
// stride misses the cache, which isolates the line-crossing cost from the
// capacity effect. The second return is false when capacityIdx is not a
// detected boundary, when no row follows it, or when no qualifying jump
// exists.
func (t *Table) LineBoundary(capacityIdx int) (int, bool) {
	row := capacityIdx + 1
	if capacityIdx < 0 || row >= len(t.Cells) {
		return 0, false
	}
	cells := t.Cells[row]
	for i := 1; i < len(cells); i++ {
		if cells[i] > cells[i-1]*LineJumpThreshold {
			return i, true
		}
	}
	return 0, false
}
