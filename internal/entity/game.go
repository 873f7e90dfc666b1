package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
)

// Mark is the content of a single board cell.
type Mark string

const (
	EmptyCell  Mark = ""
	PlayerMark Mark = "O"
	AgentMark  Mark = "X"
)

const (
	BoardSize = 9
	RowSize   = 3
)

// WinCombos lists the 8 winning lines: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds 9 cells in row-major order.
type Board [BoardSize]Mark

// Winner returns the mark filling a winning line, or EmptyCell.
func (that Board) Winner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) IsEmptyCell(cell int) bool {
	return cell >= 0 && cell < BoardSize && that[cell] == EmptyCell
}

// Place returns a copy of the board with mark written into cell.
// Marked cells are never overwritten.
func (that Board) Place(mark Mark, cell int) (Board, error) {
	if cell < 0 || cell >= BoardSize {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that[cell] != EmptyCell {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return that, nil
}

// Marks counts the non-empty cells.
func (that Board) Marks() int {
	count := 0
	for _, cell := range that {
		if cell != EmptyCell {
			count++
		}
	}

	return count
}

// Matrix encodes the board for the move service: player -1, agent 1, empty 0.
func (that Board) Matrix() [RowSize][RowSize]int {
	var matrix [RowSize][RowSize]int

	for i, cell := range that {
		switch cell {
		case PlayerMark:
			matrix[i/RowSize][i%RowSize] = -1
		case AgentMark:
			matrix[i/RowSize][i%RowSize] = 1
		}
	}

	return matrix
}

// Move is a [row, column] pair as returned by the move service.
type Move struct {
	Row int
	Col int
}

func (that Move) Index() int {
	return that.Row*RowSize + that.Col
}

func (that Move) Valid() bool {
	return that.Row >= 0 && that.Row < RowSize && that.Col >= 0 && that.Col < RowSize
}

func (that Move) String() string {
	return fmt.Sprintf("[%d, %d]", that.Row, that.Col)
}
