package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"montecarlo/game"
)

// UCT runs Monte Carlo tree search with UCB1 selection. Unlike Flat, its
// statistics are keyed by position and shared across iterations, so value
// estimates deep in the game feed back into move choices near the root.
// Both statistics tables are scoped to a single Search call.
type UCT struct {
	model    game.Model
	settings settings
}

// NewUCT returns a UCT searcher over model.
func NewUCT(model game.Model, options ...Option) *UCT {
	return &UCT{model: model, settings: newSettings(options)}
}

// table holds the per-call statistics: samples and accumulated normalized
// scores per visited position.
type table struct {
	samples map[game.StateHash]float64
	scores  map[game.StateHash]float64
}

func newTable() *table {
	return &table{
		samples: make(map[game.StateHash]float64),
		scores:  make(map[game.StateHash]float64),
	}
}

// pathNode records one step of the visited prefix of an iteration: the
// position reached and the side that moved into it.
type pathNode struct {
	state game.StateHash
	side  game.Side
}

func (u *UCT) Search(s game.State, side game.Side) (float64, game.Move, error) {
	if _, over := u.model.Terminal(s); over {
		return 0, nil, ErrNoMoves
	}
	moves := u.model.LegalMoves(s)
	if len(moves) == 0 {
		return 0, nil, ErrNoMoves
	}

	rng := u.settings.rng()
	stats := newTable()
	for i := 0; i < u.settings.iterations; i++ {
		u.simulate(s, side, stats, rng)
	}

	// Final selection over the true root's children by mean score. A child
	// the search never reached scores near zero instead of dividing by zero.
	best, bestScore := moves[0], math.Inf(-1)
	for _, move := range moves {
		hash := u.model.Apply(s, move, side).Hash()
		divisor := stats.samples[hash]
		if divisor == 0 {
			divisor = unsampledDivisor
		}
		if score := stats.scores[hash] / divisor; score > bestScore {
			best, bestScore = move, score
		}
	}

	hash := u.model.Apply(s, best, side).Hash()
	confidence := 0.0
	if stats.samples[hash] > 0 {
		confidence = stats.scores[hash] / stats.samples[hash]
	}
	return confidence, best, nil
}

// simulate runs one iteration: descend by UCB1 while every child of the
// current position already has statistics, fall back to uniform random once
// an unexplored child exists, and back the terminal result up along the
// visited prefix of the walk.
func (u *UCT) simulate(s game.State, side game.Side, stats *table, rng *rand.Rand) {
	var path []pathNode
	inTree := true
	var result game.Result

	for {
		moves := u.model.LegalMoves(s)
		if len(moves) == 0 {
			result = game.Draw
			break
		}

		children := make([]game.State, len(moves))
		allSampled := true
		total := 0.0
		for i, move := range moves {
			children[i] = u.model.Apply(s, move, side)
			n := stats.samples[children[i].Hash()]
			if n == 0 {
				allSampled = false
			}
			total += n
		}

		var next game.State
		if allSampled {
			c2LnN := CSquared * math.Log(total)
			bestScore := math.Inf(-1)
			for _, child := range children {
				hash := child.Hash()
				if score := ucb1(stats.scores[hash], stats.samples[hash], c2LnN); score > bestScore {
					next, bestScore = child, score
				}
			}
		} else {
			next = children[rng.Intn(len(children))]
		}

		// Only the path from the root through the first fresh position is
		// credited during backup; later rollout moves are not tracked.
		if inTree {
			path = append(path, pathNode{state: next.Hash(), side: side})
			if _, seen := stats.samples[next.Hash()]; !seen {
				inTree = false
			}
		}

		s = next
		side = side.Opponent()

		if r, over := u.model.Terminal(s); over {
			result = r
			break
		}
	}

	for _, node := range path {
		stats.samples[node.state]++
		stats.scores[node.state] += normalize(result, node.side)
	}
}

// normalize maps a terminal result into [0,1] from the point of view of the
// side that moved into a position: 1 for a win, 0.5 for a draw, 0 for a
// loss. It is computed fresh per path entry from the original result.
func normalize(result game.Result, side game.Side) float64 {
	return float64(int(result)*int(side))/2 + 0.5
}
