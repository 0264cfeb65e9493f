package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goban-local/types"
)

type xy [2]int

func newBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := New(size)
	require.NoError(t, err)
	return b
}

func at(b *Board, x, y int) int {
	return y*b.size + x
}

// play places stones alternately starting with the color to move.
func play(t *testing.T, b *Board, moves ...xy) {
	t.Helper()
	for _, m := range moves {
		require.NoError(t, b.Place(at(b, m[0], m[1])), "move %v", m)
	}
}

// fixture builds a position directly, bypassing move application.
func fixture(t *testing.T, size int, black, white []xy) *Board {
	t.Helper()
	b := newBoard(t, size)
	for _, s := range black {
		b.points[at(b, s[0], s[1])].stone = types.Black
	}
	for _, s := range white {
		b.points[at(b, s[0], s[1])].stone = types.White
	}
	return b
}

func stoneAt(b *Board, x, y int) types.Color {
	return b.points[at(b, x, y)].stone
}
