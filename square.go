package pumpkins

import (
	"fmt"

	"github.com/Alextopher/pumpkins/bitvec"
)

// Square is an axis-aligned Size×Size block anchored at its top-left
// cell, covering the half-open cell range [X,X+Size) × [Y,Y+Size).
// Two squares are equal iff all three fields match.
type Square struct {
	X, Y, Size int
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d,%d)x%d", sq.X, sq.Y, sq.Size)
}

// Contains reports whether cell (cx,cy) lies within the square.
func (sq Square) Contains(cx, cy int) bool {
	return sq.X <= cx && cx < sq.X+sq.Size && sq.Y <= cy && cy < sq.Y+sq.Size
}

// Bitmap returns the square's occupancy bitmap over an n×n grid, with
// cell (cx,cy) at bit cy*n+cx.
func (sq Square) Bitmap(n int) bitvec.Vector {
	bm := bitvec.New(n * n)
	for cy := sq.Y; cy < sq.Y+sq.Size; cy++ {
		for cx := sq.X; cx < sq.X+sq.Size; cx++ {
			bm.Set(cy*n + cx)
		}
	}
	return bm
}

// NextLarger returns the squares of side Size+1 that cover this
// square's anchor cell and fit in an n×n grid. The anchor of each
// result lies in [max(0,X−Size), min(X, n−Size−1)] per axis, so there
// are at most (Size+1)² of them; none when Size == n.
func (sq Square) NextLarger(n int) []Square {
	if sq.Size == n {
		return nil
	}

	minX := max(0, sq.X-sq.Size)
	maxX := min(sq.X, n-sq.Size-1)
	minY := max(0, sq.Y-sq.Size)
	maxY := min(sq.Y, n-sq.Size-1)

	squares := make([]Square, 0, (maxX-minX+1)*(maxY-minY+1))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			larger := Square{X: x, Y: y, Size: sq.Size + 1}
			assert(larger.Contains(sq.X, sq.Y), "next-larger square misses its anchor")
			squares = append(squares, larger)
		}
	}
	return squares
}

// NextSmaller returns the four squares of side Size−1 touching this
// square's top-left corner, or false when Size == 1.
func (sq Square) NextSmaller() ([4]Square, bool) {
	if sq.Size == 1 {
		return [4]Square{}, false
	}
	s := sq.Size - 1
	return [4]Square{
		{X: sq.X, Y: sq.Y, Size: s},
		{X: sq.X + 1, Y: sq.Y, Size: s},
		{X: sq.X, Y: sq.Y + 1, Size: s},
		{X: sq.X + 1, Y: sq.Y + 1, Size: s},
	}, true
}

// Index is a perfect hash mapping every square valid in an n×n grid to
// a dense integer in [0,n³). SquareAt is its inverse.
func (sq Square) Index(n int) int {
	return sq.X + sq.Y*n + (sq.Size-1)*n*n
}

// SquareAt recovers the square with the given dense index in an n×n
// grid.
func SquareAt(idx, n int) Square {
	return Square{
		X:    idx % n,
		Y:    (idx / n) % n,
		Size: idx/(n*n) + 1,
	}
}
