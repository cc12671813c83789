// meta/meta.go
package meta

// ROUNDS defines the number of random games played per computer move.
const ROUNDS = 30000

// GO_ROUTINES defines the number of goroutines sharing the rounds of one move.
const GO_ROUTINES = 1

// WIN_POINTS is added to a first move whose rollout was won.
const WIN_POINTS = 1

// LOSS_POINTS is added to a first move whose rollout was lost.
// -1 doesn't work so well, -5 works well, -10 better.
const LOSS_POINTS = -10

// DRAW_POINTS is added to a first move whose rollout ended in a cat's game.
const DRAW_POINTS = 0
