package agent

import (
	"montecarlo/game"
	"montecarlo/searcher"
)

// Example is one supervised training sample: the chosen move as a one-hot
// target over the model's move space, plus the search's confidence in it.
type Example struct {
	Confidence float64
	Policy     []float64
}

// TrainingAgent chooses moves like an evaluation agent and can emit the
// choice in label-vector form for self-play training data.
type TrainingAgent struct {
	model    game.Model
	searcher searcher.Searcher
}

func NewTrainingAgent(model game.Model, s searcher.Searcher) *TrainingAgent {
	return &TrainingAgent{model: model, searcher: s}
}

func (a *TrainingAgent) FindMove(s game.State, side game.Side) (game.Move, error) {
	_, move, err := a.searcher.Search(s, side)
	return move, err
}

// Label searches the position and returns both the chosen move and its
// training example.
func (a *TrainingAgent) Label(s game.State, side game.Side) (game.Move, Example, error) {
	confidence, move, err := a.searcher.Search(s, side)
	if err != nil {
		return nil, Example{}, err
	}
	policy, err := searcher.Label(a.model, move)
	if err != nil {
		return nil, Example{}, err
	}
	return move, Example{Confidence: confidence, Policy: policy}, nil
}
