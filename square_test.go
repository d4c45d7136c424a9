package pumpkins

import (
	"reflect"
	"testing"
)

func TestSquareContains(t *testing.T) {
	sq := Square{X: 0, Y: 0, Size: 3}
	if !sq.Contains(1, 1) {
		t.Fatalf("%v should contain (1, 1)", sq)
	}
	if !sq.Contains(2, 2) {
		t.Fatalf("%v should contain (2, 2)", sq)
	}
	if sq.Contains(0, 3) {
		t.Fatalf("%v should not contain (0, 3)", sq)
	}
	if !sq.Contains(2, 1) {
		t.Fatalf("%v should contain (2, 1)", sq)
	}

	sq = Square{X: 5, Y: 5, Size: 5}
	if !sq.Contains(5, 5) {
		t.Fatalf("%v should contain (5, 5)", sq)
	}
	if !sq.Contains(9, 9) {
		t.Fatalf("%v should contain (9, 9)", sq)
	}
	if sq.Contains(10, 9) {
		t.Fatalf("%v should not contain (10, 9)", sq)
	}
}

func TestSquareContainsMatchesRange(t *testing.T) {
	const n = 6
	forEachValidSquare(n, func(sq Square) {
		for cy := 0; cy < n; cy++ {
			for cx := 0; cx < n; cx++ {
				want := sq.X <= cx && cx < sq.X+sq.Size && sq.Y <= cy && cy < sq.Y+sq.Size
				if got := sq.Contains(cx, cy); got != want {
					t.Fatalf("%v.Contains(%d,%d) = %v, want %v", sq, cx, cy, got, want)
				}
			}
		}
	})
}

func TestSquareIndexRoundTrip(t *testing.T) {
	for n := 1; n <= 8; n++ {
		seen := make([]bool, n*n*n)
		forEachValidSquare(n, func(sq Square) {
			idx := sq.Index(n)
			if idx < 0 || idx >= n*n*n {
				t.Fatalf("n=%d: index %d for %v out of [0,%d)", n, idx, sq, n*n*n)
			}
			if seen[idx] {
				t.Fatalf("n=%d: index %d for %v is not unique", n, idx, sq)
			}
			seen[idx] = true
			if got := SquareAt(idx, n); got != sq {
				t.Fatalf("n=%d: round trip of %v gave %v", n, sq, got)
			}
		})
	}
}

func TestNextLargerMatchesBruteForce(t *testing.T) {
	for n := 1; n <= 6; n++ {
		forEachValidSquare(n, func(sq Square) {
			var want []Square
			grown := sq.Size + 1
			for y := 0; y+grown <= n; y++ {
				for x := 0; x+grown <= n; x++ {
					larger := Square{X: x, Y: y, Size: grown}
					if larger.Contains(sq.X, sq.Y) {
						want = append(want, larger)
					}
				}
			}
			got := sq.NextLarger(n)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("n=%d: NextLarger(%v) = %v, want %v", n, sq, got, want)
			}
		})
	}
}

func TestNextLargerAtFullSize(t *testing.T) {
	sq := Square{X: 0, Y: 0, Size: 4}
	if got := sq.NextLarger(4); got != nil {
		t.Fatalf("a full-grid square has no larger squares, got %v", got)
	}
}

func TestNextSmaller(t *testing.T) {
	if _, ok := (Square{X: 2, Y: 3, Size: 1}).NextSmaller(); ok {
		t.Fatalf("a unit square has no smaller squares")
	}

	subs, ok := (Square{X: 1, Y: 2, Size: 3}).NextSmaller()
	if !ok {
		t.Fatalf("expected sub-squares for a size-3 square")
	}
	want := [4]Square{
		{X: 1, Y: 2, Size: 2},
		{X: 2, Y: 2, Size: 2},
		{X: 1, Y: 3, Size: 2},
		{X: 2, Y: 3, Size: 2},
	}
	if subs != want {
		t.Fatalf("NextSmaller = %v, want %v", subs, want)
	}
}

func TestSquareBitmap(t *testing.T) {
	const n = 5
	forEachValidSquare(n, func(sq Square) {
		bm := sq.Bitmap(n)
		for cy := 0; cy < n; cy++ {
			for cx := 0; cx < n; cx++ {
				if bm.Test(cy*n+cx) != sq.Contains(cx, cy) {
					t.Fatalf("bitmap of %v disagrees with Contains at (%d,%d)", sq, cx, cy)
				}
			}
		}
		if bm.Count() != sq.Size*sq.Size {
			t.Fatalf("bitmap of %v has %d bits set, want %d", sq, bm.Count(), sq.Size*sq.Size)
		}
	})
}

// forEachValidSquare visits every square that fits in an n×n grid.
func forEachValidSquare(n int, visit func(Square)) {
	for size := 1; size <= n; size++ {
		for y := 0; y+size <= n; y++ {
			for x := 0; x+size <= n; x++ {
				visit(Square{X: x, Y: y, Size: size})
			}
		}
	}
}
