package game

import (
	"errors"
	"fmt"
	"strings"
)

// Cells is the number of cells on the board.
const Cells = 9

// NoMove is the cell index returned when a board has no empty cell left.
const NoMove = -1

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrUnknownMark = errors.New("unknown mark")
)

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// Opponent returns the mark of the other player. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "."
}

// ParseMark converts "x", "o" or "none" (case-insensitive) into a Mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "o":
		return O, nil
	case "", "none", ".":
		return Empty, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownMark, s)
}

// Lines lists the eight winning triples: rows, then columns, then diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major. Boards are values: assigning one
// copies it.
type Board [Cells]Mark

// CheckWin returns the mark owning a complete line, or Empty if there is none.
func (b Board) CheckWin() Mark {
	for _, line := range Lines {
		a := b[line[0]]
		if a != Empty && a == b[line[1]] && a == b[line[2]] {
			return a
		}
	}
	return Empty
}

// IsFull reports whether no empty cell is left.
func (b Board) IsFull() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// LegalMoves returns the indices of the empty cells in ascending order.
func (b Board) LegalMoves() []int {
	moves := make([]int, 0, Cells)
	for i, m := range b {
		if m == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// Play puts mark on cell. Unlike a direct assignment it checks that the cell
// exists and is still empty.
func (b *Board) Play(cell int, mark Mark) error {
	if cell < 0 || cell >= Cells {
		return fmt.Errorf("%w: cell %d out of range", ErrInvalidMove, cell)
	}
	if b[cell] != Empty {
		return fmt.Errorf("%w: cell %d is occupied by %s", ErrInvalidMove, cell, b[cell])
	}
	if mark == Empty {
		return fmt.Errorf("%w: cannot play an empty mark", ErrInvalidMove)
	}
	b[cell] = mark
	return nil
}

// String renders the board with the cell indices of each row on the right.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("-----\n")
	for i, m := range b {
		sb.WriteString(m.String())
		if (i+1)%3 == 0 {
			fmt.Fprintf(&sb, "    %d %d %d\n", i-2, i-1, i)
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString("-----\n")
	return sb.String()
}
