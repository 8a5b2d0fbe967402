package searcher

import (
	"fmt"

	"montecarlo/game"
)

// Label encodes a chosen move as a one-hot training target over the model's
// flat move space. The vector width always comes from the model, never from
// a fixed constant.
func Label(model game.Model, move game.Move) ([]float64, error) {
	index := model.EncodeMove(move)
	if index < 0 || index >= model.MoveSpaceSize() {
		return nil, fmt.Errorf("move %v encodes to %d, outside move space of %d", move, index, model.MoveSpaceSize())
	}
	label := make([]float64, model.MoveSpaceSize())
	label[index] = 1
	return label, nil
}
