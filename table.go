package pumpkins

import (
	"errors"
	"fmt"

	"github.com/Alextopher/pumpkins/bitvec"
)

// ErrGridSize flags construction with a grid size below 1.
var ErrGridSize = errors.New("pumpkins: grid size must be at least 1")

// Table is the precomputed lookup table for one grid size: for every
// square valid in the grid it stores the next-larger adjacency list,
// the four next-smaller sub-squares, and the square's occupancy bitmap.
//
// All storage is flat arrays indexed by the perfect square hash
// (Square.Index); invalid index slots (squares poking over the grid
// edge) stay empty. A Table is immutable after Build and may be shared
// read-only by any number of patches and concurrent readers.
type Table struct {
	n int

	// next-larger adjacency: for square index i the neighbors are
	// larger[largerOff[i]:largerOff[i+1]].
	largerOff []int
	larger    []Square

	// next-smaller quads as dense indexes, -1 when absent (Size == 1
	// squares and invalid slots).
	smaller []int32

	// occupancy bitmaps, one stride-word region per square index.
	stride  int
	bitmaps []uint64
}

// Build precomputes the lookup table for an n×n grid. Cost is cubic in
// n for the adjacency entries plus the bitmap slab; grids in practice
// are small (n ≤ 100 or so) and the table is built once per size.
func Build(n int) (*Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrGridSize, n)
	}

	count := n * n * n
	t := &Table{
		n:         n,
		largerOff: make([]int, count+1),
		smaller:   make([]int32, count*4),
		stride:    bitvec.Words(n * n),
	}
	t.bitmaps = make([]uint64, count*t.stride)
	for i := range t.smaller {
		t.smaller[i] = -1
	}

	// Walk square indexes in increasing order so the adjacency prefix
	// offsets can be filled in one pass: index = x + y·n + (size−1)·n².
	for size := 1; size <= n; size++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				sq := Square{X: x, Y: y, Size: size}
				idx := sq.Index(n)
				t.largerOff[idx] = len(t.larger)
				if x+size > n || y+size > n {
					continue // not a valid square, slot stays empty
				}

				t.larger = append(t.larger, sq.NextLarger(n)...)

				if subs, ok := sq.NextSmaller(); ok {
					for i, sub := range subs {
						t.smaller[idx*4+i] = int32(sub.Index(n))
					}
				}

				base := idx * t.stride
				words := bitvec.Vector(t.bitmaps[base : base+t.stride])
				for cy := y; cy < y+size; cy++ {
					for cx := x; cx < x+size; cx++ {
						words.Set(cy*n + cx)
					}
				}
			}
		}
	}
	t.largerOff[count] = len(t.larger)

	tracer().Infof("lookup table built n=%d slots=%d adjacency=%d bitmap-words=%d",
		n, count, len(t.larger), len(t.bitmaps))
	return t, nil
}

// Size returns the grid size the table was built for.
func (t *Table) Size() int { return t.n }

// Larger returns the next-larger squares for the square at the given
// dense index. The returned slice aliases the table and must not be
// modified.
func (t *Table) Larger(idx int) []Square {
	return t.larger[t.largerOff[idx]:t.largerOff[idx+1]]
}

// Smaller returns the four next-smaller sub-squares for the square at
// the given dense index, or false when the square has side 1.
func (t *Table) Smaller(idx int) ([4]Square, bool) {
	if t.smaller[idx*4] < 0 {
		return [4]Square{}, false
	}
	var subs [4]Square
	for i := range subs {
		subs[i] = SquareAt(int(t.smaller[idx*4+i]), t.n)
	}
	return subs, true
}

// bitmap returns the occupancy bitmap for the square at the given
// dense index, as a view into the table's slab.
func (t *Table) bitmap(idx int) bitvec.Vector {
	base := idx * t.stride
	return bitvec.Vector(t.bitmaps[base : base+t.stride])
}
