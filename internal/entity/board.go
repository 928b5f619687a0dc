package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusEmpty   = "empty"
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDrawn   = "drawn"

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

const (
	// BoardSize is the number of columns and rows.
	BoardSize = 3
	// CellsCount is the number of addressable cells.
	CellsCount = BoardSize * BoardSize

	emptyPlaceholder = " "
)

// Cell addresses one position on the board.
type Cell struct {
	Column int
	Row    int
}

func (that Cell) inRange() bool {
	return that.Column >= 0 && that.Column < BoardSize && that.Row >= 0 && that.Row < BoardSize
}

// InvalidMoveError is returned by ApplyMove for out-of-range or occupied cells.
// It matches apperror.ErrInvalidMove and its cause with errors.Is.
type InvalidMoveError struct {
	Column int
	Row    int
	Cause  error
}

func (that *InvalidMoveError) Error() string {
	return fmt.Sprintf("The position (%d, %d) is not a valid move position.", that.Column, that.Row)
}

func (that *InvalidMoveError) Unwrap() []error {
	return []error{apperror.ErrInvalidMove, that.Cause}
}

// Board holds the cells of one game and whose turn it is.
type Board struct {
	cells         map[Cell]string
	currentPlayer string
}

func NewBoard() *Board {
	board := &Board{}
	board.Reset()

	return board
}

// Reset - clears the board for a new game, X moves first.
func (that *Board) Reset() {
	that.cells = make(map[Cell]string, CellsCount)
	that.currentPlayer = PlayerX
}

// ApplyMove - places the current player's mark at (column, row) and passes the turn.
func (that *Board) ApplyMove(column, row int) error {
	if that.cells == nil {
		that.Reset()
	}

	cell := Cell{Column: column, Row: row}

	if !cell.inRange() {
		return &InvalidMoveError{Column: column, Row: row, Cause: apperror.ErrOutOfRange}
	}

	if that.cells[cell] != EmptyCell {
		return &InvalidMoveError{Column: column, Row: row, Cause: apperror.ErrCellOccupied}
	}

	that.cells[cell] = that.currentPlayer
	that.currentPlayer = toggleMark(that.currentPlayer)

	return nil
}

// Winner - returns the mark holding a full column or row, or EmptyCell.
// Columns are checked before rows and the last line found wins. Diagonals do not count.
func (that *Board) Winner() string {
	result := EmptyCell

	for column := range BoardSize {
		if mark := that.lineMark(func(i int) Cell { return Cell{Column: column, Row: i} }); mark != EmptyCell {
			result = mark
		}
	}

	for row := range BoardSize {
		if mark := that.lineMark(func(i int) Cell { return Cell{Column: i, Row: row} }); mark != EmptyCell {
			result = mark
		}
	}

	return result
}

// lineMark returns the shared mark of the three cells produced by at, or EmptyCell.
func (that *Board) lineMark(at func(i int) Cell) string {
	first := that.cells[at(0)]
	if first == EmptyCell {
		return EmptyCell
	}

	for i := 1; i < BoardSize; i++ {
		if that.cells[at(i)] != first {
			return EmptyCell
		}
	}

	return first
}

// Render - returns the board as three text rows, each terminated by a newline.
func (that *Board) Render() string {
	var sb strings.Builder
	sb.Grow(CellsCount + BoardSize)

	for row := range BoardSize {
		for column := range BoardSize {
			if mark := that.cells[Cell{Column: column, Row: row}]; mark != EmptyCell {
				sb.WriteString(mark)
			} else {
				sb.WriteString(emptyPlaceholder)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Board) String() string {
	return that.Render()
}

// Status - reports where the board is in its lifecycle.
func (that *Board) Status() string {
	switch {
	case that.Winner() != EmptyCell:
		return StatusWon
	case that.IsFull():
		return StatusDrawn
	case that.Filled() == 0:
		return StatusEmpty
	default:
		return StatusOngoing
	}
}

func (that *Board) IsFinished() bool {
	status := that.Status()
	return status == StatusWon || status == StatusDrawn
}

func (that *Board) CurrentPlayer() string {
	return that.currentPlayer
}

// At returns the mark at (column, row), EmptyCell for empty or out-of-range cells.
func (that *Board) At(column, row int) string {
	return that.cells[Cell{Column: column, Row: row}]
}

func (that *Board) Filled() int {
	return len(that.cells)
}

func (that *Board) IsFull() bool {
	return that.Filled() == CellsCount
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
