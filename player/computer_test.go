package player

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"tictactoe/game"
	"tictactoe/searcher"
)

func TestComputerFindMove(t *testing.T) {
	t.Run("announces the winning move", func(t *testing.T) {
		var out bytes.Buffer
		c := NewComputer(searcher.NewMonteCarlo(searcher.WithSeed(1)), 1000, &out)

		got, err := c.FindMove(game.Board{game.O, game.O, game.Empty, game.X, game.X}, game.O)

		require.NoError(t, err)
		require.Equal(t, 2, got)
		require.Equal(t, "Computer plays: 2\n", out.String())
	})

	t.Run("full board", func(t *testing.T) {
		var out bytes.Buffer
		c := NewComputer(searcher.NewMonteCarlo(), 10, &out)
		full := game.Board{game.X, game.O, game.X, game.X, game.O, game.O, game.O, game.X, game.X}

		got, err := c.FindMove(full, game.X)

		require.ErrorIs(t, err, searcher.ErrNoLegalMove)
		require.Equal(t, game.NoMove, got)
		require.Empty(t, out.String())
	})
}
