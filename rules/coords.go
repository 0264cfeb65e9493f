package rules

import (
	"fmt"

	"goban-local/types"
)

// Neighbor is an orthogonally adjacent point and the stone on it.
type Neighbor struct {
	X, Y  int
	Color types.Color
}

// buildAdjacency precomputes the on-board neighbors of every index.
// Order is up (y+1), right (x+1), down (y-1), left (x-1); edges are clipped.
func buildAdjacency(size int) [][]int {
	adj := make([][]int, size*size)
	for i := range adj {
		x, y := i%size, i/size
		n := make([]int, 0, 4)
		if y < size-1 {
			n = append(n, i+size)
		}
		if x < size-1 {
			n = append(n, i+1)
		}
		if y > 0 {
			n = append(n, i-size)
		}
		if x > 0 {
			n = append(n, i-1)
		}
		adj[i] = n
	}
	return adj
}

func (b *Board) onBoard(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// CoordinatesFromIndex maps a linear index to its (x, y) position.
func (b *Board) CoordinatesFromIndex(index int) (types.BoardPos, error) {
	if index < 0 || index >= len(b.points) {
		return types.BoardPos{}, fmt.Errorf("[coordinatesFromIndex] %d: %w", index, ErrInvalidIndex)
	}
	return types.BoardPos{X: index % b.size, Y: index / b.size}, nil
}

// IndexOf maps (x, y) to its linear index.
func (b *Board) IndexOf(x, y int) (int, error) {
	if !b.onBoard(x, y) {
		return -1, fmt.Errorf("[indexOf] (%d, %d): %w", x, y, ErrInvalidIndex)
	}
	return y*b.size + x, nil
}

// IntersectionAt returns the intersection at (x, y).
func (b *Board) IntersectionAt(x, y int) (Intersection, error) {
	i, err := b.IndexOf(x, y)
	if err != nil {
		return Intersection{}, fmt.Errorf("[intersectionAt]: %w", err)
	}
	return b.intersection(i), nil
}

// NeighborsOf returns the up-to-four points adjacent to (x, y) with their
// current stones.
func (b *Board) NeighborsOf(x, y int) ([]Neighbor, error) {
	i, err := b.IndexOf(x, y)
	if err != nil {
		return nil, fmt.Errorf("[neighborsOf]: %w", err)
	}
	result := make([]Neighbor, 0, len(b.adj[i]))
	for _, n := range b.adj[i] {
		result = append(result, Neighbor{X: n % b.size, Y: n / b.size, Color: b.points[n].stone})
	}
	return result, nil
}
