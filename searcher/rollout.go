package searcher

import (
	"fmt"

	"golang.org/x/exp/rand"

	"montecarlo/game"
)

// Sampler plays single simulated games to a terminal result, choosing moves
// uniformly at random or through an external policy.
type Sampler struct {
	model  game.Model
	rng    *rand.Rand
	policy game.Evaluator // nil for uniform rollouts
}

// NewSampler returns a sampler drawing uniform random moves from rng.
func NewSampler(model game.Model, rng *rand.Rand) *Sampler {
	return &Sampler{model: model, rng: rng}
}

// NewGuidedSampler returns a sampler that asks policy for every move choice.
func NewGuidedSampler(model game.Model, rng *rand.Rand, policy game.Evaluator) *Sampler {
	return &Sampler{model: model, rng: rng, policy: policy}
}

// Sample plays one game from s with side to move until a terminal state and
// returns the terminal result together with the first move of the
// trajectory. A terminal input returns a nil move; a position with no legal
// moves counts as a draw.
func (sa *Sampler) Sample(s game.State, side game.Side) (game.Result, game.Move, error) {
	if result, over := sa.model.Terminal(s); over {
		return result, nil, nil
	}

	var first game.Move
	for depth := 0; ; depth++ {
		moves := sa.model.LegalMoves(s)
		if len(moves) == 0 {
			return game.Draw, first, nil
		}

		move, err := sa.pick(s, side, moves)
		if err != nil {
			return game.Draw, nil, err
		}
		if depth == 0 {
			first = move
		}

		s = sa.model.Apply(s, move, side)
		side = side.Opponent()

		if result, over := sa.model.Terminal(s); over {
			return result, first, nil
		}
	}
}

func (sa *Sampler) pick(s game.State, side game.Side, moves []game.Move) (game.Move, error) {
	if sa.policy == nil {
		return moves[sa.rng.Intn(len(moves))], nil
	}

	dist, err := sa.policy.Evaluate(s, side)
	if err != nil {
		return nil, fmt.Errorf("evaluate policy: %w", err)
	}
	if len(dist) != sa.model.MoveSpaceSize() {
		return nil, fmt.Errorf("policy returned %d entries, want %d", len(dist), sa.model.MoveSpaceSize())
	}

	// The policy indicates one move in observed usage, but a full
	// probability vector is tolerated: the strongest entry wins.
	index, best := -1, 0.0
	for i, p := range dist {
		if p > best {
			index, best = i, p
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("policy indicated no move")
	}

	move, err := sa.model.DecodeMove(index)
	if err != nil {
		return nil, fmt.Errorf("decode policy move %d: %w", index, err)
	}
	for _, legal := range moves {
		if legal == move {
			return move, nil
		}
	}
	return nil, fmt.Errorf("policy selected illegal move %v", move)
}
