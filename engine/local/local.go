// Package local provides a GameEngine that runs the rules in process.
package local

import (
	"fmt"
	"log/slog"
	"sync"

	"goban-local/engine"
	"goban-local/rules"
	"goban-local/types"
)

// Engine implements engine.GameEngine on top of a rules.Board.
type Engine struct {
	board  *rules.Board
	logger *slog.Logger

	moveCallback func(x, y int, color types.Color, boardState *types.BoardState)

	mu sync.Mutex
}

var _ engine.GameEngine = (*Engine)(nil)

// NewEngine creates an engine with an empty board sized by cfg.
func NewEngine(cfg engine.GameConfig, logger *slog.Logger) (*Engine, error) {
	board, err := rules.New(cfg.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return &Engine{
		board:  board,
		logger: logger.With(slog.String("component", "local-engine")),
	}, nil
}

// Reset replaces the board with an empty one of the given size.
func (e *Engine) Reset(size int) error {
	board, err := rules.New(size)
	if err != nil {
		return fmt.Errorf("failed to reset board: %w", err)
	}

	e.mu.Lock()
	e.board = board
	e.mu.Unlock()

	e.logger.Info("new game", slog.Int("size", size))
	return nil
}

// GetBoardState returns a snapshot of the current board.
func (e *Engine) GetBoardState() *types.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.State()
}

// PlayMove plays a stone for the color to move at (x, y).
func (e *Engine) PlayMove(x, y int) error {
	e.mu.Lock()

	index, err := e.board.IndexOf(x, y)
	if err != nil {
		e.mu.Unlock()
		return fmt.Errorf("illegal move: %w", err)
	}

	color := e.board.PlayingColor()
	if err := e.board.Place(index); err != nil {
		e.mu.Unlock()
		e.logger.Debug("move rejected",
			slog.String("color", color.String()), slog.Int("x", x), slog.Int("y", y), slog.Any("err", err))
		return fmt.Errorf("illegal move: %w", err)
	}

	boardState := e.board.State()
	callback := e.moveCallback
	e.mu.Unlock()

	e.logger.Debug("move played",
		slog.String("color", color.String()), slog.Int("x", x), slog.Int("y", y),
		slog.Int("move", boardState.MoveNumber))

	// Notify callback outside the lock so it may call back into the engine.
	if callback != nil {
		callback(x, y, color, boardState)
	}
	return nil
}

// Undo takes back the last move by replaying the rest of the game.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.board.History()) == 0 {
		return engine.ErrNoHistory
	}
	e.board.Undo()

	e.logger.Debug("move undone", slog.Int("moves", len(e.board.History())))
	return nil
}

// OnMove registers a callback for when a move is played.
func (e *Engine) OnMove(callback func(x, y int, color types.Color, boardState *types.BoardState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveCallback = callback
}

// Close drops the registered callback.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveCallback = nil
}
