package agent

import (
	"montecarlo/game"
	"montecarlo/searcher"
)

type evaluationAgent struct {
	searcher searcher.Searcher
}

// NewEvaluationAgent returns an agent for actual game play: it searches and
// commits to the strongest move.
func NewEvaluationAgent(s searcher.Searcher) Agent {
	return evaluationAgent{searcher: s}
}

func (a evaluationAgent) FindMove(s game.State, side game.Side) (game.Move, error) {
	_, move, err := a.searcher.Search(s, side)
	return move, err
}
