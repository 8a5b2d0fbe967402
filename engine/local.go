package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"montecarlo/experiments/metrics"
	"montecarlo/game"
	"montecarlo/searcher/agent"
)

// MaxTurns bounds runaway games; well above the longest game any sane model
// should produce.
const MaxTurns = 1000

// Engine drives two agents from a starting position to a terminal result.
type Engine struct {
	model game.Model
	state game.State
	side  game.Side
	plus  agent.Agent
	minus agent.Agent
}

// Local returns an engine playing plus against minus from start, with the
// plus player to move first.
func Local(model game.Model, start game.State, plus, minus agent.Agent) *Engine {
	return &Engine{
		model: model,
		state: start,
		side:  game.Plus,
		plus:  plus,
		minus: minus,
	}
}

// State returns the current position.
func (e *Engine) State() game.State {
	return e.state
}

// Run executes the game loop until a terminal result and returns it along
// with per-move records.
func (e *Engine) Run() (game.Result, []metrics.MoveRecord, error) {
	log.Info().Msgf("%s is starting", e.side)

	var records []metrics.MoveRecord
	for step := 1; step <= MaxTurns; step++ {
		if result, over := e.model.Terminal(e.state); over {
			return result, records, nil
		}
		legal := e.model.LegalMoves(e.state)
		if len(legal) == 0 {
			// Stalemate counts as a draw, same as in the searches.
			return game.Draw, records, nil
		}

		start := time.Now()
		move, err := e.current().FindMove(e.state, e.side)
		if err != nil {
			return game.Draw, records, fmt.Errorf("find move for %s: %w", e.side, err)
		}
		if !contains(legal, move) {
			return game.Draw, records, fmt.Errorf("agent for %s returned illegal move %v", e.side, move)
		}

		records = append(records, metrics.MoveRecord{
			Step:     step,
			Side:     e.side.String(),
			Move:     move.String(),
			Duration: time.Since(start),
		})
		log.Debug().Msgf("step %d: %s plays %s", step, e.side, move)

		e.state = e.model.Apply(e.state, move, e.side)
		e.side = e.side.Opponent()
	}

	return game.Draw, records, fmt.Errorf("no terminal result after %d turns", MaxTurns)
}

func (e *Engine) current() agent.Agent {
	if e.side == game.Plus {
		return e.plus
	}
	return e.minus
}

func contains(moves []game.Move, move game.Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}
