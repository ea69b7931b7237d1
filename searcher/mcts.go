package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"territory/game"
)

// MCTS is UCT search with random rollouts. It runs until the deadline or the
// episode cap, whichever comes first.
type MCTS struct {
	config
	rng *rand.Rand
}

func NewMCTS(options ...Option) *MCTS {
	c := newConfig(0, game.EvaluateTerritory, options)
	return &MCTS{
		config: c,
		rng:    rand.New(rand.NewSource(c.seed)),
	}
}

func (m *MCTS) Name() string { return "mcts" }

func (m *MCTS) BestMove(root *game.GameState, player int, deadline time.Time) game.Action {
	m.metrics.Start(m.Name())
	if !root.Players[player].Live() {
		return fallback(root, player)
	}
	if m.episodes <= 0 && deadline.IsZero() {
		panic("Must specify search episodes or a deadline")
	}

	tree := m.search(root, player, newClock(deadline))
	best := tree.bestChild(player)
	if best == nil {
		return fallback(root, player)
	}
	return best.action
}

// search grows a tree from a private copy of root. Every completed episode
// passes through exactly one root child.
func (m *MCTS) search(root *game.GameState, self int, c clock) *node {
	tree := newNode(nil, game.Action{}, root.Copy(), nil, self, m.rng)
	for i := 0; m.episodes <= 0 || i < m.episodes; i++ {
		if c.expired() {
			m.metrics.SetTimedOut()
			break
		}
		m.simulate(tree, self)
		m.metrics.AddEpisode()
	}
	return tree
}

func (m *MCTS) simulate(tree *node, self int) {
	n := tree
	for !n.terminal() && !n.expandable() {
		n = n.pickChild(m.exploration)
	}
	if n.expandable() {
		n = n.expand(self, m.rng)
	}
	m.metrics.AddNode()
	n.backup(m.rollout(n, self))
}

// rollout finishes the node's turn and plays random legal moves for up to
// cutoff further turns.
func (m *MCTS) rollout(n *node, self int) []float64 {
	state := n.state.Copy()
	if !n.terminal() {
		m.playRandom(state, append([]int{n.player}, n.pending...))
		state.Advance()
	}

	for turn := 0; turn < m.cutoff && !gameOver(state, self); turn++ {
		m.playRandom(state, turnOrder(state, -1))
		state.Advance()
	}
	if gameOver(state, self) {
		m.metrics.AddFullPlayout()
	}

	live := make([]bool, len(state.Players))
	for i, p := range state.Players {
		live[i] = p.Live()
	}
	return rewards(game.ScoreAll(state, m.evaluate), live)
}

func (m *MCTS) playRandom(gs *game.GameState, players []int) {
	for _, id := range players {
		moves := gs.LegalMoves(id)
		gs.ApplyMove(moves[m.rng.Intn(len(moves))])
	}
}
