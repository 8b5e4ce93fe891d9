package cachescope

import (
	"math"
	"testing"
)

func TestCollectorReducesToTable(t *testing.T) {
	c := NewCollector([]int{1, 2}, []int{256, 512})

	// Five trials for one cell, one of them a scheduling spike.
	for _, v := range []float64{10, 10, 10, 10, 100} {
		c.Add(0, 0, v)
	}
	c.Add(1, 1, 7)
	c.Add(1, 1, 7)
	c.Add(1, 1, 7)
	c.Add(1, 1, 7)
	c.Add(1, 1, 7)

	tbl := c.Table()

	if got := tbl.Cells[0][0]; got != 10 {
		t.Errorf("Cells[0][0] = %v, want 10", got)
	}
	if got := tbl.Cells[1][1]; got != 7 {
		t.Errorf("Cells[1][1] = %v, want 7", got)
	}
	// Untouched cells carry the NaN sentinel.
	if got := tbl.Cells[0][1]; !math.IsNaN(got) {
		t.Errorf("Cells[0][1] = %v, want NaN", got)
	}
	if got := tbl.Cells[1][0]; !math.IsNaN(got) {
		t.Errorf("Cells[1][0] = %v, want NaN", got)
	}
}

func TestCollectorTableDimensions(t *testing.T) {
	strides := []int{1, 4, 16}
	lengths := []int{256, 1024}
	tbl := NewCollector(strides, lengths).Table()

	if len(tbl.Cells) != len(lengths) {
		t.Fatalf("table has %d rows, want %d", len(tbl.Cells), len(lengths))
	}
	for i, row := range tbl.Cells {
		if len(row) != len(strides) {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), len(strides))
		}
	}
	for j, s := range tbl.Strides {
		if s != strides[j] {
			t.Errorf("Strides[%d] = %d, want %d", j, s, strides[j])
		}
	}
	for i, l := range tbl.Lengths {
		if l != lengths[i] {
			t.Errorf("Lengths[%d] = %d, want %d", i, l, lengths[i])
		}
	}
}

func TestCollectorCopiesAxes(t *testing.T) {
	strides := []int{1, 2}
	lengths := []int{256, 512}
	c := NewCollector(strides, lengths)

	strides[0] = 999
	lengths[0] = 999

	tbl := c.Table()
	if tbl.Strides[0] != 1 {
		t.Errorf("Strides[0] = %d, caller mutation leaked in", tbl.Strides[0])
	}
	if tbl.Lengths[0] != 256 {
		t.Errorf("Lengths[0] = %d, caller mutation leaked in", tbl.Lengths[0])
	}
}

func TestCollectorSamplesAccessor(t *testing.T) {
	c := NewCollector([]int{1}, []int{256})
	if got := c.Samples(0, 0); len(got) != 0 {
		t.Fatalf("fresh cell holds %d samples, want 0", len(got))
	}
	c.Add(0, 0, 3.5)
	got := c.Samples(0, 0)
	if len(got) != 1 || got[0] != 3.5 {
		t.Errorf("Samples(0,0) = %v, want [3.5]", got)
	}
}
