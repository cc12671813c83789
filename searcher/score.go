package searcher

import (
	"strconv"
	"strings"

	"tictactoe/game"
)

// Score is the accumulated value of one cell. Occupied cells are not
// eligible and never take part in the comparison.
type Score struct {
	Value    int
	Eligible bool
}

// ScoreVector holds one Score per board cell.
type ScoreVector [game.Cells]Score

// Best returns the highest eligible score and every cell reaching it, in
// ascending order. candidates is empty when no cell is eligible.
func (v ScoreVector) Best() (best int, candidates []int) {
	found := false
	for _, s := range v {
		if s.Eligible && (!found || s.Value > best) {
			best = s.Value
			found = true
		}
	}
	for cell, s := range v {
		if s.Eligible && s.Value == best {
			candidates = append(candidates, cell)
		}
	}
	return best, candidates
}

func (v ScoreVector) String() string {
	var sb strings.Builder
	sb.WriteString("[scores:")
	for _, s := range v {
		sb.WriteByte(' ')
		if !s.Eligible {
			sb.WriteString("--")
			continue
		}
		sb.WriteString(strconv.Itoa(s.Value))
	}
	sb.WriteByte(']')
	return sb.String()
}
