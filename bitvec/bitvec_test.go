package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		bits int
		want int
	}{
		{"zero bits need no words", 0, 0},
		{"one bit needs one word", 1, 1},
		{"a full word stays one word", 64, 1},
		{"one past a word boundary rolls over", 65, 2},
		{"a 10x10 grid fits two words", 100, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.bits))
		})
	}
}

func TestSetAndTest(t *testing.T) {
	v := New(130)
	require.Len(t, v, 3)

	for _, i := range []int{0, 1, 63, 64, 129} {
		assert.False(t, v.Test(i), "bit %d should start clear", i)
		v.Set(i)
		assert.True(t, v.Test(i), "bit %d should be set", i)
	}
	assert.Equal(t, 5, v.Count())
	assert.False(t, v.Test(2))
	assert.False(t, v.Test(128))
}

func TestReset(t *testing.T) {
	v := New(100)
	for i := 0; i < 100; i += 7 {
		v.Set(i)
	}
	require.NotZero(t, v.Count())

	v.Reset()
	assert.Zero(t, v.Count())
	require.Len(t, v, Words(100), "reset must keep capacity")
}

func TestCovers(t *testing.T) {
	occ := New(128)
	sub := New(128)

	assert.True(t, occ.Covers(sub), "empty set is covered by anything")

	sub.Set(3)
	sub.Set(77)
	assert.False(t, occ.Covers(sub))

	occ.Set(3)
	assert.False(t, occ.Covers(sub), "partial overlap is not coverage")

	occ.Set(77)
	assert.True(t, occ.Covers(sub))

	occ.Set(50)
	assert.True(t, occ.Covers(sub), "extra bits in the receiver are fine")
	assert.False(t, sub.Covers(occ))
}

func TestCoversShorterSub(t *testing.T) {
	occ := New(256)
	sub := New(64)
	sub.Set(13)
	occ.Set(13)
	assert.True(t, occ.Covers(sub))
}
