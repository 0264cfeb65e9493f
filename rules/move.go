package rules

import (
	"fmt"

	"goban-local/types"
)

// Place puts a stone of the color to move on index and resolves captures,
// forbidden points and ko. A failed placement leaves the board untouched.
func (b *Board) Place(index int) error {
	if index < 0 || index >= len(b.points) {
		return fmt.Errorf("[place] %d: %w", index, ErrInvalidIndex)
	}
	p := &b.points[index]
	if p.stone != types.Empty {
		return fmt.Errorf("[place] %d: %w", index, ErrOccupiedPoint)
	}
	if p.forbidden == b.playing {
		return fmt.Errorf("[place] %d for %s: %w", index, b.playing, ErrForbiddenMove)
	}

	p.stone = b.playing
	p.pendingKo = false
	p.forbidden = types.Empty
	if b.ko == index {
		b.ko = -1
	}

	b.playing = b.playing.Opposite()
	b.lastPlayed = index
	b.history = append(b.history, index)
	b.update()
	return nil
}

// ApplyMove returns the board that results from placing a stone on index,
// leaving b unchanged.
func ApplyMove(b *Board, index int) (*Board, error) {
	next := b.Clone()
	if err := next.Place(index); err != nil {
		return nil, err
	}
	return next, nil
}

// update runs the post-move pass for the stone just placed on lastPlayed.
// b.playing already holds the opponent of the mover.
func (b *Board) update() {
	played := b.lastPlayed
	mover := b.playing.Opposite()

	// Opponent chains next to the move that are out of liberties.
	var captured []int
	for _, n := range b.adj[played] {
		if b.points[n].stone == b.playing {
			captured = append(captured, b.captureGroup(n, b.playing, nil, nil)...)
		}
	}
	captured = distinct(captured)
	b.prisoners[mover] += len(captured)

	// Evaluated before the captured stones are lifted.
	var forbidden []int
	for _, n := range b.adj[played] {
		if f, ok := b.checkForbidden(n, b.points[n].stone, b.playing, nil); ok {
			forbidden = append(forbidden, f)
		}
	}

	for _, c := range captured {
		b.points[c].stone = types.Empty
		if len(captured) == 1 {
			b.markForbidden(c, b.playing)
		}
	}
	for _, f := range forbidden {
		b.markForbidden(f, b.playing)
	}

	b.reconcile()
}

func (b *Board) markForbidden(i int, color types.Color) {
	b.points[i].forbidden = color
	b.points[i].wasForbidden = color
}

// Undo takes back the last move. The board is rebuilt by replaying the
// remaining history from an empty position, so each undo costs O(moves)
// placements; there is no incremental reversal of captures or markers.
// Undo on an empty history leaves the board in its initial state.
func (b *Board) Undo() {
	moves := b.history
	if len(moves) > 0 {
		moves = moves[:len(moves)-1]
	}
	moves = append([]int(nil), moves...)

	b.reset()
	if err := b.replay(moves); err != nil {
		// Every move in history was legal when first played and replay is deterministic.
		panic(fmt.Errorf("undo: %w", err))
	}
}

// Replay builds a board of the given size by playing moves in order.
func Replay(size int, moves []int) (*Board, error) {
	b, err := New(size)
	if err != nil {
		return nil, err
	}
	if err := b.replay(moves); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) replay(moves []int) error {
	for n, index := range moves {
		if err := b.Place(index); err != nil {
			return fmt.Errorf("replay move %d: %w", n+1, err)
		}
	}
	return nil
}
