package player

import (
	"fmt"
	"io"

	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/searcher"
)

// Computer plays the move picked by Monte Carlo rollouts.
type Computer struct {
	mcts   *searcher.MonteCarlo
	rounds int
	out    io.Writer
}

// NewComputer uses the default number of rounds when rounds is not positive.
func NewComputer(mcts *searcher.MonteCarlo, rounds int, out io.Writer) *Computer {
	if rounds <= 0 {
		rounds = meta.ROUNDS
	}
	return &Computer{
		mcts:   mcts,
		rounds: rounds,
		out:    out,
	}
}

func (c *Computer) FindMove(board game.Board, mark game.Mark) (int, error) {
	cell, err := c.mcts.SelectMove(board, mark, c.rounds)
	if err != nil {
		return cell, err
	}
	fmt.Fprintf(c.out, "Computer plays: %d\n", cell)
	return cell, nil
}
