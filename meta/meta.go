// meta/meta.go
package meta

import "time"

// TimeBudget is the search time per move. The match runner kills a bot after
// two seconds, so this leaves room for process start and file I/O.
const TimeBudget = 1700 * time.Millisecond

// MINIMAX_DEPTH caps alpha-beta iterative deepening, in plies.
const MINIMAX_DEPTH = 8

// MAXN_DEPTH caps MaxN iterative deepening, in full turns.
const MAXN_DEPTH = 3

// ROLLOUT_TURNS is the number of simulated turns in an MCTS rollout.
const ROLLOUT_TURNS = 10

// MAX_TURNS ends a local match that never runs out of board.
const MAX_TURNS = 300

// SEED is the default pseudo-random seed for tie-breaking and rollouts.
const SEED = 1
