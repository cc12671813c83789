package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tictactoe/game"
	"tictactoe/player"
	"tictactoe/searcher"
)

// scripted plays a fixed list of cells.
type scripted struct {
	moves []int
}

func (s *scripted) FindMove(board game.Board, mark game.Mark) (int, error) {
	cell := s.moves[0]
	s.moves = s.moves[1:]
	return cell, nil
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("X wins the top row", func(t *testing.T) {
		var out bytes.Buffer
		e := LocalEngine(&scripted{moves: []int{0, 1, 2}}, &scripted{moves: []int{3, 4}}, &out)

		winner, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.X, winner)
		require.Equal(t, game.Board{game.X, game.X, game.X, game.O, game.O}, e.Board)
		require.True(t, strings.HasSuffix(out.String(), "X wins!\n"))
		// Printed before each of the five turns and once at the end
		require.Equal(t, 12, strings.Count(out.String(), "-----\n"))
	})

	t.Run("cat's game", func(t *testing.T) {
		var out bytes.Buffer
		x := &scripted{moves: []int{0, 2, 3, 7, 8}}
		o := &scripted{moves: []int{1, 4, 5, 6}}
		e := LocalEngine(x, o, &out)

		winner, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Empty, winner)
		require.True(t, e.Board.IsFull())
		require.True(t, strings.HasSuffix(out.String(), "Cat's game.\n"))
	})

	t.Run("illegal move from an agent panics", func(t *testing.T) {
		e := LocalEngine(&scripted{moves: []int{4}}, &scripted{moves: []int{4}}, &bytes.Buffer{})
		require.Panics(t, func() { e.Run() })
	})

	t.Run("human input closing ends the game with an error", func(t *testing.T) {
		var out bytes.Buffer
		human := player.NewHuman(strings.NewReader("4\n"), &out)
		computer := player.NewComputer(searcher.NewMonteCarlo(searcher.WithSeed(1)), 200, &out)
		e := LocalEngine(human, computer, &out)

		_, err := e.Run()

		require.ErrorIs(t, err, player.ErrInputClosed)
		require.Equal(t, game.X, e.Board[4])
	})

	t.Run("computer against computer finishes", func(t *testing.T) {
		var out bytes.Buffer
		mcts := searcher.NewMonteCarlo(searcher.WithSeed(8), searcher.WithGoroutines(2))
		e := LocalEngine(player.NewComputer(mcts, 2000, &out), player.NewComputer(mcts, 2000, &out), &out)

		winner, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, e.Board.CheckWin(), winner)
		if winner == game.Empty {
			require.True(t, e.Board.IsFull())
		}
		require.Contains(t, out.String(), "Computer plays: ")
	})

	t.Run("each game gets its own id", func(t *testing.T) {
		a := LocalEngine(&scripted{}, &scripted{}, &bytes.Buffer{})
		b := LocalEngine(&scripted{}, &scripted{}, &bytes.Buffer{})
		require.NotEqual(t, a.ID, b.ID)
	})
}
