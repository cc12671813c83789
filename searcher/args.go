package searcher

import (
	"tictactoe/meta"
	"tictactoe/metrics"
)

// Weights are the points a rollout adds to its first move's score.
// Loss is expected to stay well below Win.
type Weights struct {
	Win  int
	Loss int
	Draw int
}

func DefaultWeights() Weights {
	return Weights{
		Win:  meta.WIN_POINTS,
		Loss: meta.LOSS_POINTS,
		Draw: meta.DRAW_POINTS,
	}
}

func (w Weights) points(outcome metrics.Outcome) int {
	switch outcome {
	case metrics.Win:
		return w.Win
	case metrics.Loss:
		return w.Loss
	}
	return w.Draw
}
