package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tictactoe/game"
	"tictactoe/player"
	"tictactoe/searcher"
)

// Engine owns the board of one game and asks each side's agent for moves.
type Engine struct {
	ID     string
	Board  game.Board
	Agents map[game.Mark]player.Agent
	out    io.Writer
}

func LocalEngine(x, o player.Agent, out io.Writer) *Engine {
	if x == nil || o == nil {
		panic("need an agent for each player")
	}
	return &Engine{
		ID:     uuid.NewString(),
		Agents: map[game.Mark]player.Agent{game.X: x, game.O: o},
		out:    out,
	}
}

// Run plays the game to the end, X moving first, and returns the winner.
// Empty means a cat's game.
func (e *Engine) Run() (game.Mark, error) {
	logger := log.With().Str("game", e.ID).Logger()
	logger.Info().Msg("game started")

	mover := game.X
	winner := e.Board.CheckWin()
	for turn := 1; winner == game.Empty && !e.Board.IsFull(); turn++ {
		fmt.Fprint(e.out, e.Board)

		cell, err := e.Agents[mover].FindMove(e.Board, mover)
		if errors.Is(err, searcher.ErrNoLegalMove) {
			break
		}
		if err != nil {
			return game.Empty, fmt.Errorf("turn %d for %s: %w", turn, mover, err)
		}
		if err := e.Board.Play(cell, mover); err != nil {
			panic(fmt.Sprintf("agent for %s returned an illegal move: %v", mover, err))
		}
		logger.Debug().Int("turn", turn).Stringer("player", mover).Int("cell", cell).Msg("move played")

		mover = mover.Opponent()
		winner = e.Board.CheckWin()
	}

	fmt.Fprint(e.out, e.Board)
	if winner == game.Empty {
		fmt.Fprintln(e.out, "Cat's game.")
	} else {
		fmt.Fprintf(e.out, "%s wins!\n", winner)
	}

	logger.Info().Stringer("winner", winner).Msg("game over")
	return winner, nil
}
