package cachescope

import (
	"fmt"
	"math"
	"testing"
)

// flatTable builds a rows x cols grid filled with a constant latency.
func flatTable(rows, cols int, v float64) *Table {
	t := &Table{
		Strides: make([]int, cols),
		Lengths: make([]int, rows),
		Cells:   make([][]float64, rows),
	}
	for j := range t.Strides {
		t.Strides[j] = 1 << j
	}
	for i := range t.Lengths {
		t.Lengths[i] = 256 << i
	}
	for i := range t.Cells {
		t.Cells[i] = make([]float64, cols)
		for j := range t.Cells[i] {
			t.Cells[i][j] = v
		}
	}
	return t
}

func TestCapacityBoundaryJump(t *testing.T) {
	for _, k := range []int{1, 3, 5} {
		t.Run(fmt.Sprintf("jump_at_%d", k), func(t *testing.T) {
			tbl := flatTable(6, 4, 10)
			for i := k; i < 6; i++ {
				tbl.Cells[i][0] = 15 // 50% over the plateau
			}

			idx, ok := tbl.CapacityBoundary()
			if !ok {
				t.Fatal("CapacityBoundary() found nothing")
			}
			if idx != k-1 {
				t.Errorf("CapacityBoundary() = %d, want %d", idx, k-1)
			}
		})
	}
}

func TestCapacityBoundarySlowDriftNotFound(t *testing.T) {
	// Each step grows 10%, always under the 20% trigger.
	tbl := flatTable(8, 3, 0)
	v := 10.0
	for i := range tbl.Cells {
		for j := range tbl.Cells[i] {
			tbl.Cells[i][j] = v
		}
		v *= 1.1
	}

	if idx, ok := tbl.CapacityBoundary(); ok {
		t.Errorf("CapacityBoundary() = %d on slow drift, want not found", idx)
	}
}

func TestCapacityBoundaryBelowThresholdNotFound(t *testing.T) {
	// A 19% jump stays under the trigger.
	tbl := flatTable(4, 2, 10)
	tbl.Cells[2][0] = 11.9
	tbl.Cells[3][0] = 11.9

	if idx, ok := tbl.CapacityBoundary(); ok {
		t.Errorf("CapacityBoundary() = %d on sub-threshold jump, want not found", idx)
	}
}

func TestCapacityBoundaryIgnoresOtherColumns(t *testing.T) {
	// Only the smallest-stride column drives capacity detection.
	tbl := flatTable(4, 3, 10)
	tbl.Cells[2][1] = 50
	tbl.Cells[2][2] = 50

	if idx, ok := tbl.CapacityBoundary(); ok {
		t.Errorf("CapacityBoundary() = %d from a non-first column, want not found", idx)
	}
}

func TestLineBoundaryJump(t *testing.T) {
	for _, m := range []int{1, 2, 4} {
		t.Run(fmt.Sprintf("jump_at_%d", m), func(t *testing.T) {
			tbl := flatTable(4, 6, 10)
			// Capacity boundary at row 1, inspected row is 2.
			for j := m; j < 6; j++ {
				tbl.Cells[2][j] = 11.5 // 15% over the plateau
			}

			idx, ok := tbl.LineBoundary(1)
			if !ok {
				t.Fatal("LineBoundary() found nothing")
			}
			if idx != m {
				t.Errorf("LineBoundary() = %d, want %d", idx, m)
			}
		})
	}
}

func TestLineBoundaryFlatRowNotFound(t *testing.T) {
	tbl := flatTable(4, 6, 10)
	if idx, ok := tbl.LineBoundary(1); ok {
		t.Errorf("LineBoundary() = %d on flat row, want not found", idx)
	}
}

func TestLineBoundarySubThresholdNotFound(t *testing.T) {
	// A 9% step stays under the 10% trigger.
	tbl := flatTable(4, 4, 10)
	tbl.Cells[2][2] = 10.9
	tbl.Cells[2][3] = 10.9

	if idx, ok := tbl.LineBoundary(1); ok {
		t.Errorf("LineBoundary() = %d on sub-threshold step, want not found", idx)
	}
}

func TestLineBoundaryBounds(t *testing.T) {
	tbl := flatTable(4, 4, 10)

	// Capacity missing entirely.
	if _, ok := tbl.LineBoundary(-1); ok {
		t.Error("LineBoundary(-1) should not find a boundary")
	}
	// Capacity at the last row leaves no row to inspect.
	if _, ok := tbl.LineBoundary(3); ok {
		t.Error("LineBoundary(last) should not find a boundary")
	}
}

func TestBoundariesTolerateNaN(t *testing.T) {
	tbl := flatTable(5, 4, 10)
	for i := range tbl.Cells {
		tbl.Cells[i][0] = math.NaN()
	}

	if idx, ok := tbl.CapacityBoundary(); ok {
		t.Errorf("CapacityBoundary() = %d over NaN column, want not found", idx)
	}

	tbl2 := flatTable(5, 4, 10)
	tbl2.Cells[2][1] = math.NaN()
	tbl2.Cells[2][2] = math.NaN()
	if idx, ok := tbl2.LineBoundary(1); ok {
		t.Errorf("LineBoundary() = %d across NaN cells, want not found", idx)
	}
}

func TestBoundariesEmptyTable(t *testing.T) {
	tbl := &Table{}
	if _, ok := tbl.CapacityBoundary(); ok {
		t.Error("CapacityBoundary() on empty table should not find a boundary")
	}
	if _, ok := tbl.LineBoundary(0); ok {
		t.Error("LineBoundary() on empty table should not find a boundary")
	}
}
