// Package engine defines the interface collaborators use to drive a game.
package engine

import (
	"errors"

	"goban-local/types"
)

// ErrNoHistory is returned by Undo when no move has been played.
var ErrNoHistory = errors.New("no move to undo")

// GameEngine defines the interface for playing a game of Go.
type GameEngine interface {
	// Reset starts a new game on an empty board of the given size.
	Reset(size int) error

	// GetBoardState returns a snapshot of the current board.
	GetBoardState() *types.BoardState

	// PlayMove plays a stone for the color to move at the given coordinates.
	// Returns an error if the move is illegal.
	PlayMove(x, y int) error

	// Undo takes back the last move. Returns ErrNoHistory on an empty board.
	Undo() error

	// OnMove registers a callback for when a move is played.
	// boardState is a copy owned by the callback.
	OnMove(func(x, y int, color types.Color, boardState *types.BoardState))

	// Close releases the engine.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BoardSize int // side length, 2-25
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize: 19,
	}
}
