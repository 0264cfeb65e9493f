// Package rules implements the Go rules engine: stone placement, captures,
// suicide detection and the one-move ko restriction.
//
// A Board is not safe for concurrent use; callers sharing one must serialize
// access themselves.
package rules

import (
	"fmt"

	"goban-local/types"
)

// Intersection is the public view of one grid cell.
type Intersection struct {
	Stone types.Color
	Hoshi bool
	// Ko is set on the single point that may not be retaken this move.
	Ko bool
	// PendingKo marks a point that becomes the ko point if the capturing
	// color retakes immediately.
	PendingKo bool
	// Forbidden is the color for which playing here is currently illegal.
	Forbidden types.Color
	// WasForbidden is the last color this point was forbidden for.
	WasForbidden types.Color
}

// point is the internal cell record. Ko lives on the board, not the point.
type point struct {
	stone        types.Color
	hoshi        bool
	pendingKo    bool
	forbidden    types.Color
	wasForbidden types.Color
}

// Board is a square Go board together with turn, prisoner and history state.
type Board struct {
	size       int
	points     []point
	adj        [][]int // orthogonal neighbors per index: up, right, down, left
	ko         int     // index of the ko point, -1 if none
	playing    types.Color
	lastPlayed int
	prisoners  map[types.Color]int
	history    []int
}

// New creates an empty size x size board with its star points marked.
func New(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("new board of size %d: %w", size, ErrInvalidSize)
	}
	b := &Board{
		size: size,
		adj:  buildAdjacency(size),
	}
	b.reset()
	return b, nil
}

// reset returns the board to its freshly constructed state.
func (b *Board) reset() {
	b.points = make([]point, b.size*b.size)
	for _, i := range hoshiPoints(b.size) {
		b.points[i].hoshi = true
	}
	b.ko = -1
	b.playing = types.Black
	b.lastPlayed = -1
	b.prisoners = map[types.Color]int{types.Black: 0, types.White: 0}
	b.history = nil
}

// hoshiPoints returns the star point indices for a board of side n: the four
// points gap lines in from each corner and, on odd boards, the side midpoints
// and the center.
func hoshiPoints(n int) []int {
	gap := 2
	if n >= 10 {
		gap = 3
	}
	lo, hi, mid := gap, n-gap-1, n/2
	candidates := [][2]int{{lo, lo}, {hi, lo}, {lo, hi}, {hi, hi}}
	if n%2 == 1 {
		candidates = append(candidates, [2]int{lo, mid}, [2]int{hi, mid}, [2]int{mid, hi}, [2]int{mid, lo}, [2]int{mid, mid})
	}

	seen := make(map[int]bool)
	var result []int
	for _, c := range candidates {
		x, y := c[0], c[1]
		if x < 0 || x >= n || y < 0 || y >= n {
			continue
		}
		i := y*n + x
		if seen[i] {
			continue
		}
		seen[i] = true
		result = append(result, i)
	}
	return result
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.points = append([]point(nil), b.points...)
	c.history = append([]int(nil), b.history...)
	c.prisoners = make(map[types.Color]int, len(b.prisoners))
	for k, v := range b.prisoners {
		c.prisoners[k] = v
	}
	return &c
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// PlayingColor returns the color to move next.
func (b *Board) PlayingColor() types.Color {
	return b.playing
}

// LastPlayedIndex returns the index of the last placed stone, or -1.
func (b *Board) LastPlayedIndex() int {
	return b.lastPlayed
}

// Prisoners returns how many stones the given color has captured.
func (b *Board) Prisoners(color types.Color) int {
	return b.prisoners[color]
}

// PrisonerCounts returns a copy of the prisoner tally of both colors.
func (b *Board) PrisonerCounts() map[types.Color]int {
	return map[types.Color]int{
		types.Black: b.prisoners[types.Black],
		types.White: b.prisoners[types.White],
	}
}

// History returns the played indices in order.
func (b *Board) History() []int {
	return append([]int(nil), b.history...)
}

// KoPoint returns the current ko point, if any.
func (b *Board) KoPoint() (int, bool) {
	return b.ko, b.ko >= 0
}

// Intersections returns a copy of every intersection in row-major order.
func (b *Board) Intersections() []Intersection {
	result := make([]Intersection, len(b.points))
	for i := range b.points {
		result[i] = b.intersection(i)
	}
	return result
}

func (b *Board) intersection(i int) Intersection {
	p := b.points[i]
	return Intersection{
		Stone:        p.stone,
		Hoshi:        p.hoshi,
		Ko:           b.ko == i,
		PendingKo:    p.pendingKo,
		Forbidden:    p.forbidden,
		WasForbidden: p.wasForbidden,
	}
}

// State returns a snapshot of the board for collaborators.
func (b *Board) State() *types.BoardState {
	state := types.NewBoardState(b.size)
	for i, p := range b.points {
		x, y := i%b.size, i/b.size
		state.Board[y][x] = int(p.stone)
		state.Forbidden[y][x] = int(p.forbidden)
	}
	state.MoveNumber = len(b.history)
	state.PlayerToMove = int(b.playing)
	state.Prisoners = b.PrisonerCounts()
	if b.lastPlayed >= 0 {
		state.LastMove = types.BoardPos{X: b.lastPlayed % b.size, Y: b.lastPlayed / b.size}
	}
	if b.ko >= 0 {
		state.Ko = &types.BoardPos{X: b.ko % b.size, Y: b.ko / b.size}
	}
	return state
}
