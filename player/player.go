package player

import "tictactoe/game"

// Agent chooses moves for one side of the game.
type Agent interface {
	// FindMove returns the cell to play for mark on board
	FindMove(board game.Board, mark game.Mark) (int, error)
}
