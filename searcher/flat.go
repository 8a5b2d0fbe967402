package searcher

import "montecarlo/game"

// Flat estimates root moves by independent uniform (or policy-guided)
// rollouts, crediting every playout to the first move of its trajectory.
// Statistics live for a single Search call.
type Flat struct {
	model    game.Model
	settings settings
}

// NewFlat returns a flat Monte Carlo searcher over model.
func NewFlat(model game.Model, options ...Option) *Flat {
	return &Flat{model: model, settings: newSettings(options)}
}

func (f *Flat) Search(s game.State, side game.Side) (float64, game.Move, error) {
	if _, over := f.model.Terminal(s); over {
		return 0, nil, ErrNoMoves
	}
	if len(f.model.LegalMoves(s)) == 0 {
		return 0, nil, ErrNoMoves
	}

	rng := f.settings.rng()
	sampler := &Sampler{model: f.model, rng: rng, policy: f.settings.policy}

	wins := make(map[game.Move]int)
	samples := make(map[game.Move]int)
	var order []game.Move // first-encountered order, for deterministic ties

	for i := 0; i < f.settings.iterations; i++ {
		result, move, err := sampler.Sample(s, side)
		if err != nil {
			return 0, nil, err
		}
		if _, seen := samples[move]; !seen {
			order = append(order, move)
		}
		if game.Side(result) == side {
			wins[move]++
		}
		samples[move]++
	}

	move := selectFlat(order, wins, samples)
	return float64(wins[move]) / float64(samples[move]), move, nil
}

// selectFlat picks the move with the best observed win rate. When no move
// ever won, it falls back to the least-sampled move so an uninvestigated
// move is not starved by a run of losses.
func selectFlat(order []game.Move, wins, samples map[game.Move]int) game.Move {
	allLost := true
	for _, n := range wins {
		if n > 0 {
			allLost = false
			break
		}
	}

	best := order[0]
	if allLost {
		for _, move := range order[1:] {
			if samples[move] < samples[best] {
				best = move
			}
		}
		return best
	}

	bestRate := float64(wins[best]) / float64(samples[best])
	for _, move := range order[1:] {
		if rate := float64(wins[move]) / float64(samples[move]); rate > bestRate {
			best, bestRate = move, rate
		}
	}
	return best
}
