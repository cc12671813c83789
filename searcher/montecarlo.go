package searcher

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/metrics"
)

var (
	ErrNoLegalMove   = errors.New("no legal move: board is full")
	ErrGameOver      = errors.New("board already has a winner")
	ErrInvalidPlayer = errors.New("perspective must be X or O")
	ErrInvalidRounds = errors.New("rounds must be positive")
)

// Rand is the random source consumed by rollouts and tie-breaks.
type Rand interface {
	Intn(n int) int
}

type Option func(m *MonteCarlo)

// MonteCarlo scores moves by playing random games to the end. It keeps one
// random source per worker, so a single MonteCarlo must not run two searches
// at the same time.
type MonteCarlo struct {
	goroutines int
	weights    Weights
	newRand    func(worker int) Rand
	rands      []Rand // one per worker, plus one for tie-breaks
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(m *MonteCarlo) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithWeights(weights Weights) Option {
	return func(m *MonteCarlo) {
		m.weights = weights
	}
}

// WithSeed makes every search reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MonteCarlo) {
		m.newRand = seeded(seed)
	}
}

func WithRandFactory(newRand func(worker int) Rand) Option {
	return func(m *MonteCarlo) {
		if newRand != nil {
			m.newRand = newRand
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *MonteCarlo) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMonteCarlo(options ...Option) *MonteCarlo {
	m := &MonteCarlo{ // Default values
		goroutines: meta.GO_ROUTINES,
		weights:    DefaultWeights(),
		newRand:    seeded(uint64(time.Now().UnixNano()) + uint64(os.Getpid())),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}

	m.rands = make([]Rand, m.goroutines+1)
	for i := range m.rands {
		m.rands[i] = m.newRand(i)
	}
	return m
}

func seeded(seed uint64) func(worker int) Rand {
	return func(worker int) Rand {
		return rand.New(rand.NewSource(seed + uint64(worker)))
	}
}

// Evaluate plays rounds random games from board, with perspective to move
// first, and credits each game's outcome to the cell it opened with.
func (m *MonteCarlo) Evaluate(board game.Board, perspective game.Mark, rounds int) (ScoreVector, error) {
	var scores ScoreVector
	if perspective != game.X && perspective != game.O {
		return scores, ErrInvalidPlayer
	}
	if rounds < 1 {
		return scores, ErrInvalidRounds
	}

	open := false
	for cell, mark := range board {
		if mark == game.Empty {
			scores[cell].Eligible = true
			open = true
		}
	}
	if !open {
		return scores, ErrNoLegalMove
	}
	if board.CheckWin() != game.Empty {
		return scores, ErrGameOver
	}

	m.metrics.Start(m.goroutines, rounds)

	// Each worker owns a partial sum, merged once all of them are done
	partials := make([][game.Cells]int, m.goroutines)
	var wg sync.WaitGroup
	for w := 0; w < m.goroutines; w++ {
		share := rounds / m.goroutines
		if w < rounds%m.goroutines {
			share++
		}
		if share == 0 {
			continue
		}

		wg.Add(1)
		go func(w, share int) {
			defer wg.Done()

			for i := 0; i < share; i++ {
				first, outcome := rollout(board, perspective, m.rands[w])
				partials[w][first] += m.weights.points(outcome)
				m.metrics.AddRollout(outcome)
			}
		}(w, share)
	}
	wg.Wait()

	for _, partial := range partials {
		for cell, points := range partial {
			scores[cell].Value += points
		}
	}

	metric := m.metrics.Complete()
	log.Debug().
		Int("rounds", rounds).
		Int("goroutines", m.goroutines).
		Int("wins", metric.Wins).
		Int("losses", metric.Losses).
		Int("draws", metric.Draws).
		Dur("duration", metric.Duration).
		Msg("rollouts complete")

	return scores, nil
}

// SelectMove returns the cell with the highest score, choosing at random
// among ties.
func (m *MonteCarlo) SelectMove(board game.Board, perspective game.Mark, rounds int) (int, error) {
	scores, err := m.Evaluate(board, perspective, rounds)
	if err != nil {
		return game.NoMove, err
	}

	_, candidates := scores.Best()
	if len(candidates) == 0 {
		panic("eligible cells but no candidates")
	}

	log.Info().Stringer("scores", scores).Ints("candidates", candidates).Msgf("best AI move(s) for %s", perspective)

	return candidates[m.rands[m.goroutines].Intn(len(candidates))], nil
}

// rollout plays one random game on a copy of board and returns the first
// cell played with the outcome for perspective. The board must have an
// empty cell and no winner.
func rollout(board game.Board, perspective game.Mark, r Rand) (int, metrics.Outcome) {
	mover := perspective
	first := game.NoMove

	winner := board.CheckWin()
	for winner == game.Empty {
		moves := board.LegalMoves()
		if len(moves) == 0 { // Cat's game
			break
		}
		cell := moves[r.Intn(len(moves))]
		board[cell] = mover
		if first == game.NoMove {
			first = cell
		}
		mover = mover.Opponent()
		winner = board.CheckWin()
	}

	switch winner {
	case game.Empty:
		return first, metrics.Draw
	case perspective:
		return first, metrics.Win
	}
	return first, metrics.Loss
}
