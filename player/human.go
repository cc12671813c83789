package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tictactoe/game"
)

var ErrInputClosed = errors.New("input closed")

// Human reads moves from a line-based console.
type Human struct {
	in  *bufio.Reader
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// FindMove prompts until a line names an empty cell.
func (h *Human) FindMove(board game.Board, mark game.Mark) (int, error) {
	for {
		fmt.Fprint(h.out, "Enter a move (0-8): ")
		line, err := h.in.ReadString('\n')
		if errors.Is(err, io.EOF) && line == "" {
			return game.NoMove, ErrInputClosed
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return game.NoMove, fmt.Errorf("reading move: %w", err)
		}

		cell, ok := parseMove(line, board)
		if !ok {
			fmt.Fprintln(h.out, "Invalid move!")
			continue
		}
		return cell, nil
	}
}

// parseMove reads the leading integer of line and checks it against board.
func parseMove(line string, board game.Board) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return game.NoMove, false
	}
	cell, err := strconv.Atoi(fields[0])
	if err != nil || cell < 0 || cell >= game.Cells || board[cell] != game.Empty {
		return game.NoMove, false
	}
	return cell, true
}
