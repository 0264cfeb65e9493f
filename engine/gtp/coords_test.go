package gtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goban-local/types"
)

func TestPosToGTP(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "A1"},
		{3, 3, "D4"},
		{7, 0, "H1"},
		{8, 0, "J1"},
		{18, 18, "T19"},
		{24, 24, "Z25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, posToGTP(tt.x, tt.y))
	}
}

func TestGTPToPos(t *testing.T) {
	tests := []struct {
		vertex string
		x, y   int
	}{
		{"A1", 0, 0},
		{"d4", 3, 3},
		{"J1", 8, 0},
		{"T19", 18, 18},
		{"pass", -1, -1},
	}
	for _, tt := range tests {
		x, y, err := gtpToPos(tt.vertex, 19)
		require.NoError(t, err, tt.vertex)
		assert.Equal(t, tt.x, x, tt.vertex)
		assert.Equal(t, tt.y, y, tt.vertex)
	}
}

func TestGTPToPosInvalid(t *testing.T) {
	for _, vertex := range []string{"", "A", "I5", "A0", "A20", "U1", "1A", "AA"} {
		_, _, err := gtpToPos(vertex, 19)
		assert.Error(t, err, vertex)
	}
}

func TestRoundTrip(t *testing.T) {
	for x := 0; x < MaxBoardSize; x++ {
		for y := 0; y < MaxBoardSize; y++ {
			gx, gy, err := gtpToPos(posToGTP(x, y), MaxBoardSize)
			require.NoError(t, err)
			require.Equal(t, x, gx)
			require.Equal(t, y, gy)
		}
	}
}

func TestGTPToColor(t *testing.T) {
	for in, want := range map[string]types.Color{"b": types.Black, "BLACK": types.Black, "w": types.White, "White": types.White} {
		got, err := gtpToColor(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := gtpToColor("red")
	assert.Error(t, err)
}
