package rules

import "errors"

var (
	ErrInvalidSize   = errors.New("invalid board size")
	ErrInvalidIndex  = errors.New("invalid index value")
	ErrOccupiedPoint = errors.New("intersection is already filled")
	ErrForbiddenMove = errors.New("move is forbidden")
)
