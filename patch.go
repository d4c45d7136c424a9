package pumpkins

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Alextopher/pumpkins/bitvec"
)

var (
	// ErrTableMismatch flags a patch constructed against a lookup table
	// built for a different grid size.
	ErrTableMismatch = errors.New("pumpkins: lookup table built for a different grid size")

	// ErrOutOfRange flags cell coordinates outside the grid.
	ErrOutOfRange = errors.New("pumpkins: cell out of range")

	// ErrReplanted flags planting a cell that is already planted.
	ErrReplanted = errors.New("pumpkins: cell already planted")
)

// ID tags every cell of one merged region. It derives from the region's
// top-left anchor as y·n+x+1; 0 means the cell is unplanted.
type ID uint32

// Patch is one mutable grid instance: the occupancy bitmap of planted
// cells and the per-cell region identities, kept in both row-major and
// column-major order so that boundary checks scan contiguous memory in
// either orientation.
//
// A Patch is not safe for concurrent mutation; callers needing that
// must serialize externally. The lookup table is only ever read.
type Patch struct {
	occupied bitvec.Vector
	ids      []ID
	idsT     []ID // column-major mirror of ids
	n        int
	table    *Table

	// merge-search scratch, reused across insertions
	visited bitvec.Vector
	stack   []Square
}

// NewPatch creates an empty patch over an n×n grid, sharing the given
// lookup table. The table must have been built for the same n.
func NewPatch(n int, table *Table) (*Patch, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrGridSize, n)
	}
	if table == nil || table.Size() != n {
		return nil, ErrTableMismatch
	}
	return &Patch{
		occupied: bitvec.New(n * n),
		ids:      make([]ID, n*n),
		idsT:     make([]ID, n*n),
		n:        n,
		table:    table,
		visited:  bitvec.New(n * n * n),
	}, nil
}

// NewPatchWithTable creates a patch together with its own lookup table.
// When several patches share a grid size, build the table once and use
// NewPatch instead.
func NewPatchWithTable(n int) (*Patch, error) {
	table, err := Build(n)
	if err != nil {
		return nil, err
	}
	return NewPatch(n, table)
}

// Size returns the grid size.
func (p *Patch) Size() int { return p.n }

func (p *Patch) cell(x, y int) int { return y*p.n + x }

// Get returns the identity of the region containing (x,y), or false if
// the cell is unplanted.
func (p *Patch) Get(x, y int) (ID, bool) {
	id := p.ids[p.cell(x, y)]
	return id, id != 0
}

// Contains reports whether cell (x,y) is planted.
func (p *Patch) Contains(x, y int) bool {
	return p.occupied.Test(p.cell(x, y))
}

// checkBoundary guards against fusing with a region that already spans
// one of the candidate square's edges. For each edge the run of cells
// just inside the square is compared pairwise against the adjacent run
// just outside; any pair sharing a non-empty identity rejects the
// square. North/south runs scan ids, east/west runs scan the
// column-major mirror, so all four are contiguous scans.
func (p *Patch) checkBoundary(sq Square) bool {
	tracer().Debugf("boundary check for %v", sq)

	// north is +y
	if sq.Y+sq.Size < p.n {
		inside := p.run(p.ids, sq.Y+sq.Size-1, sq.X, sq.Size)
		outside := p.run(p.ids, sq.Y+sq.Size, sq.X, sq.Size)
		if sharedIdentity(inside, outside) {
			tracer().Debugf("%v rejected at north edge", sq)
			return false
		}
	}

	// south is -y
	if sq.Y > 0 {
		inside := p.run(p.ids, sq.Y, sq.X, sq.Size)
		outside := p.run(p.ids, sq.Y-1, sq.X, sq.Size)
		if sharedIdentity(inside, outside) {
			tracer().Debugf("%v rejected at south edge", sq)
			return false
		}
	}

	// east is +x, scans the transposed ids
	if sq.X+sq.Size < p.n {
		inside := p.run(p.idsT, sq.X+sq.Size-1, sq.Y, sq.Size)
		outside := p.run(p.idsT, sq.X+sq.Size, sq.Y, sq.Size)
		if sharedIdentity(inside, outside) {
			tracer().Debugf("%v rejected at east edge", sq)
			return false
		}
	}

	// west is -x, scans the transposed ids
	if sq.X > 0 {
		inside := p.run(p.idsT, sq.X, sq.Y, sq.Size)
		outside := p.run(p.idsT, sq.X-1, sq.Y, sq.Size)
		if sharedIdentity(inside, outside) {
			tracer().Debugf("%v rejected at west edge", sq)
			return false
		}
	}

	return true
}

// run returns size cells of one grid line: in row-major storage, line
// is a row and from a starting column; in the column-major mirror the
// roles swap.
func (p *Patch) run(ids []ID, line, from, size int) []ID {
	start := line*p.n + from
	return ids[start : start+size]
}

func sharedIdentity(inside, outside []ID) bool {
	for i := range inside {
		if outside[i] != 0 && inside[i] == outside[i] {
			return true
		}
	}
	return false
}

// Insert plants cell (x,y) and returns the largest square that became
// a legal merge through it. The search walks the implicit graph of
// squares reachable from the unit square at (x,y) through the lookup
// table's next-larger relation, visiting each square at most once. A
// popped square becomes the new record-holder only if it is entirely
// planted, strictly larger than the current record, and passes the
// boundary check; strict comparison keeps equal-size squares from
// overwriting each other.
//
// The returned square usually covers (x,y), but not always: the
// next-larger relation follows square anchors, so the search can land
// on an existing fully-planted region beside the cell. The cell is
// planted either way and carries no identity until a later merge
// covers it.
func (p *Patch) Insert(x, y int) (Square, error) {
	if x < 0 || x >= p.n || y < 0 || y >= p.n {
		return Square{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x, y)
	}
	c := p.cell(x, y)
	if p.occupied.Test(c) {
		return Square{}, fmt.Errorf("%w: (%d,%d)", ErrReplanted, x, y)
	}
	p.occupied.Set(c)

	start := Square{X: x, Y: y, Size: 1}
	largest := start

	p.visited.Reset()
	p.visited.Set(start.Index(p.n))
	p.stack = append(p.stack[:0], start)

	for len(p.stack) > 0 {
		sq := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		idx := sq.Index(p.n)

		for _, next := range p.table.Larger(idx) {
			nidx := next.Index(p.n)
			if p.visited.Test(nidx) {
				continue
			}
			p.visited.Set(nidx)
			p.stack = append(p.stack, next)
		}

		if sq.Size > largest.Size && p.occupied.Covers(p.table.bitmap(idx)) && p.checkBoundary(sq) {
			largest = sq
		}
	}

	if !largest.Contains(x, y) {
		tracer().Debugf("merge %v leaves (%d,%d) without an identity", largest, x, y)
	}
	p.claim(largest)
	return largest, nil
}

// claim writes the region identity over the square's footprint, in both
// orientations. Cells of previously merged sub-regions are overwritten.
func (p *Patch) claim(sq Square) {
	id := ID(sq.Y*p.n + sq.X + 1)
	for y := sq.Y; y < sq.Y+sq.Size; y++ {
		for x := sq.X; x < sq.X+sq.Size; x++ {
			p.ids[y*p.n+x] = id
			p.idsT[x*p.n+y] = id
		}
	}
}

// Render prints the identity grid with the y axis inverted (row n−1
// first); 0 denotes an unplanted cell.
func (p *Patch) Render() string {
	var sb strings.Builder
	for y := p.n - 1; y >= 0; y-- {
		for x := 0; x < p.n; x++ {
			fmt.Fprintf(&sb, "%3d ", p.ids[p.cell(x, y)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
