package searcher

import (
	"golang.org/x/exp/rand"

	"territory/game"
)

// node is one player's decision inside a simulated turn. Players act one at a
// time on the node's own state copy; the turn resolves when the last pending
// player has moved.
type node struct {
	parent   *node
	action   game.Action // Move that led here from parent
	state    *game.GameState
	player   int   // Player to act, -1 when terminal
	pending  []int // Players acting after player in this turn
	untried  []game.Action
	children []*node
	rewards  []float64 // Reward sums indexed by player
	visits   float64
}

func newNode(parent *node, action game.Action, state *game.GameState, pending []int, self int, rng *rand.Rand) *node {
	n := &node{
		parent:  parent,
		action:  action,
		state:   state,
		player:  -1,
		rewards: make([]float64, len(state.Players)),
	}

	if len(pending) == 0 { // Every player has moved
		if parent != nil {
			state.Advance()
		}
		if parent != nil && gameOver(state, self) {
			return n
		}
		pending = turnOrder(state, self)
		if len(pending) == 0 {
			return n
		}
	}

	n.player = pending[0]
	n.pending = pending[1:]
	n.untried = state.LegalMoves(n.player)
	rng.Shuffle(len(n.untried), func(i, j int) {
		n.untried[i], n.untried[j] = n.untried[j], n.untried[i]
	})
	return n
}

func gameOver(gs *game.GameState, self int) bool {
	return !gs.Players[self].Live() || gs.LiveCount() <= 1
}

func (n *node) terminal() bool { return n.player < 0 }

func (n *node) expandable() bool { return len(n.untried) > 0 }

// expand adds the child for one untried move.
func (n *node) expand(self int, rng *rand.Rand) *node {
	move := n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	state := n.state.Copy()
	state.ApplyMove(move)
	child := newNode(n, move, state, n.pending, self, rng)
	n.children = append(n.children, child)
	return child
}

// pickChild selects by UCT from the acting player's point of view.
func (n *node) pickChild(exploration float64) *node {
	if n.visits == 0 {
		panic("node has children but no visits")
	}

	policy := newUCT(exploration, n.visits)
	var best *node
	bestScore := 0.0
	for _, child := range n.children {
		if child.visits == 0 {
			return child
		}
		score := policy.evaluate(child.rewards[n.player], child.visits)
		if best == nil || score > bestScore {
			best, bestScore = child, score
		}
	}
	return best
}

func (n *node) backup(rewards []float64) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		for i, r := range rewards {
			cur.rewards[i] += r
		}
	}
}

// bestChild favors the highest average reward for player, then visits.
func (n *node) bestChild(player int) *node {
	var best *node
	bestAverage := 0.0
	for _, child := range n.children {
		if child.visits == 0 {
			continue
		}
		average := child.rewards[player] / child.visits
		if best == nil || average > bestAverage || (average == bestAverage && child.visits > best.visits) {
			best, bestAverage = child, average
		}
	}
	return best
}
