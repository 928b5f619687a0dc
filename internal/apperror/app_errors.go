package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrOutOfRange   = errors.New("coordinate is out of range")
	ErrGameFinished = errors.New("game is already finished")
)
