package searcher

import (
	"fmt"

	"montecarlo/game"
)

// mockMove and mockState script tiny games for unit tests: states and moves
// are plain ids wired together by a transition table.
type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return fmt.Sprintf("m%d", m.id)
}

type mockState struct {
	id int
}

func (s mockState) Hash() game.StateHash {
	return game.StateHash(s.id)
}

type mockModel struct {
	moves     map[int][]game.Move // state id -> legal moves
	next      map[[2]int]int      // (state id, move id) -> next state id
	terminal  map[int]game.Result // state id -> terminal result
	moveSpace int
}

func (m mockModel) Terminal(s game.State) (game.Result, bool) {
	result, over := m.terminal[s.(mockState).id]
	return result, over
}

func (m mockModel) LegalMoves(s game.State) []game.Move {
	return m.moves[s.(mockState).id]
}

func (m mockModel) Apply(s game.State, mv game.Move, side game.Side) game.State {
	return mockState{id: m.next[[2]int{s.(mockState).id, mv.(mockMove).id}]}
}

func (m mockModel) EncodeMove(mv game.Move) int {
	return mv.(mockMove).id
}

func (m mockModel) DecodeMove(index int) (game.Move, error) {
	if index < 0 || index >= m.moveSpace {
		return nil, fmt.Errorf("move index %d out of range", index)
	}
	return mockMove{id: index}, nil
}

func (m mockModel) MoveSpaceSize() int {
	return m.moveSpace
}

type mockEvaluator struct {
	dist []float64
	err  error
}

func (e mockEvaluator) Evaluate(s game.State, side game.Side) ([]float64, error) {
	return e.dist, e.err
}
