package agent

import "montecarlo/game"

// Agent turns a position into a move choice. It is the seam between game
// orchestration and the underlying search strategy.
type Agent interface {
	FindMove(s game.State, side game.Side) (game.Move, error)
}
