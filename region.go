package cachescope

import (
	"unsafe"

	"github.com/ncw/directio"
)

// Region is a contiguous, alignment-controlled arena of 4-byte cells.
// The probe embeds its pointer cycle in a Region so that the placement
// of the working set relative to page and line boundaries is repeatable
// between sweeps.
type Region struct {
	buf      []byte // aligned window into the backing allocation
	backing  []byte // full allocation, kept so the GC sees it
	cells    int
	align    int
	released bool
}

// AllocRegion allocates a region of the given number of int32 cells whose
// first cell sits on an align-byte boundary. Align must be a positive power
// of two; DefaultAlign gives page alignment via direct I/O block allocation.
//
// Example:
//
//	r, err := cachescope.AllocRegion(1<<17, cachescope.DefaultAlign)
//	if err != nil {
//	    return err
//	}
//	defer r.Release()
func AllocRegion(cells, align int) (*Region, error) {
	if cells <= 0 {
		return nil, ErrRegionCells
	}
	if align <= 0 || align&(align-1) != 0 {
		return nil, ErrRegionAlign
	}

	size := cells * CellBytes

	if align == directio.AlignSize {
		// Page-aligned fast path: the direct I/O allocator hands back a
		// block already aligned to AlignSize.
		buf := directio.AlignedBlock(size)
		return &Region{buf: buf, backing: buf, cells: cells, align: align}, nil
	}

	// General path: over-allocate and slice forward to the boundary.
	raw := make([]byte, size+align)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) & uintptr(align-1)); rem != 0 {
		off = align - rem
	}
	return &Region{
		buf:     raw[off : off+size : off+size],
		backing: raw,
		cells:   cells,
		align:   align,
	}, nil
}

// Int32 returns an int32 slice view of the region.
// The slice can be used directly for reading and writing cells.
//
// Example:
//
//	cells := r.Int32()
//	cells[0] = 42 // Direct access
func (r *Region) Int32() []int32 {
	if r == nil || r.released || len(r.buf) == 0 {
		return nil
	}
	return (*[1 << 28]int32)(unsafe.Pointer(&r.buf[0]))[:r.cells:r.cells]
}

// Byte returns a byte slice view covering the entire region.
func (r *Region) Byte() []byte {
	if r == nil || r.released {
		return nil
	}
	return r.buf
}

// Cells returns the number of int32 cells in the region.
func (r *Region) Cells() int {
	return r.cells
}

// Size returns the size in bytes of the region
func (r *Region) Size() int {
	return r.cells * CellBytes
}

// Align returns the alignment in bytes the region was allocated with.
func (r *Region) Align() int {
	return r.align
}

// Release drops the region's backing memory.
// It is an error to release a region twice.
func (r *Region) Release() error {
	if r.released {
		return ErrRegionReleased
	}
	r.released = true
	r.buf = nil
	r.backing = nil
	return nil
}
