// Package types contains shared data structures for goban-local.
package types

// Color is the color of a stone, or Empty for an unoccupied point.
// The numeric values match the 0=empty, 1=black, 2=white convention used by BoardState.
type Color int

const (
	Empty Color = iota
	Black
	White
)

// Opposite returns the other player's color. Empty has no opposite.
func (c Color) Opposite() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// BoardPos represents a position on the board.
type BoardPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BoardState is a read-only snapshot of a board handed to collaborators.
// Grids are indexed as Board[y][x] with y=0 being the first row of the board
// (index = y*size + x); cells hold Color values as ints.
type BoardState struct {
	MoveNumber   int           `json:"move_number"`
	PlayerToMove int           `json:"player_to_move"` // 1=black, 2=white
	Board        [][]int       `json:"board"`
	Forbidden    [][]int       `json:"forbidden"` // color that may not play here, 0 if none
	Prisoners    map[Color]int `json:"prisoners"`
	LastMove     BoardPos      `json:"last_move"` // -1, -1 before the first move
	Ko           *BoardPos     `json:"ko,omitempty"`
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// At returns the color of the stone at (x, y), or Empty when the point is
// empty or outside the board.
func (b *BoardState) At(x, y int) Color {
	if y < 0 || y >= b.Height() || x < 0 || x >= b.Width() {
		return Empty
	}
	return Color(b.Board[y][x])
}

// NewBoardState creates a new empty board of the given size.
func NewBoardState(size int) *BoardState {
	return &BoardState{
		MoveNumber:   0,
		PlayerToMove: int(Black), // Black plays first
		Board:        makeGrid(size),
		Forbidden:    makeGrid(size),
		Prisoners:    map[Color]int{Black: 0, White: 0},
		LastMove:     BoardPos{X: -1, Y: -1},
	}
}

// Copy returns a deep copy of the snapshot.
func (b *BoardState) Copy() *BoardState {
	c := *b
	c.Board = copyGrid(b.Board)
	c.Forbidden = copyGrid(b.Forbidden)
	c.Prisoners = make(map[Color]int, len(b.Prisoners))
	for k, v := range b.Prisoners {
		c.Prisoners[k] = v
	}
	if b.Ko != nil {
		ko := *b.Ko
		c.Ko = &ko
	}
	return &c
}

func makeGrid(size int) [][]int {
	grid := make([][]int, size)
	for i := range grid {
		grid[i] = make([]int, size)
	}
	return grid
}

func copyGrid(src [][]int) [][]int {
	dst := make([][]int, len(src))
	for i := range src {
		dst[i] = make([]int, len(src[i]))
		copy(dst[i], src[i])
	}
	return dst
}
