package game

import "fmt"

// Side identifies one of the two players: Plus (+1) or Minus (-1). The same
// values denote which player a terminal result favors.
type Side int

const (
	Plus  Side = 1
	Minus Side = -1
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return -s
}

func (s Side) String() string {
	if s == Plus {
		return "plus"
	}
	return "minus"
}

// Result is the outcome of a finished game: PlusWin, MinusWin or Draw.
// It is only produced at terminal states.
type Result int

const (
	PlusWin  Result = 1
	MinusWin Result = -1
	Draw     Result = 0
)

func (r Result) String() string {
	switch r {
	case PlusWin:
		return "plus wins"
	case MinusWin:
		return "minus wins"
	default:
		return "draw"
	}
}

// StateHash is a 64-bit value hash of a position. Equal positions must hash
// equal so per-state statistics can be shared between transpositions.
type StateHash uint64

// State is an opaque, immutable board position. Implementations must hash by
// value, not identity.
type State interface {
	Hash() StateHash
}

// Move identifies a legal transition between two positions. Implementations
// must be comparable so moves can key statistics tables.
type Move interface {
	fmt.Stringer
}

// Model captures the rules of a two-player zero-sum perfect-information game.
// The search engine never constructs or mutates positions itself - every
// transition goes through Apply.
type Model interface {
	// Terminal reports the result of a decided position. The boolean is
	// false while the game is still in progress.
	Terminal(s State) (Result, bool)
	// LegalMoves enumerates the moves available to the side to play.
	LegalMoves(s State) []Move
	// Apply plays m for side on s and returns the resulting position.
	Apply(s State, m Move, side Side) State
	// EncodeMove maps a move onto a flat index in [0, MoveSpaceSize).
	EncodeMove(m Move) int
	// DecodeMove inverts EncodeMove.
	DecodeMove(index int) (Move, error)
	// MoveSpaceSize is the width of the encoded move space, and of any
	// policy or label vector exchanged with an Evaluator.
	MoveSpaceSize() int
}

// Evaluator supplies an external move distribution for policy-guided
// rollouts, e.g. a trained network. The returned vector must have exactly
// MoveSpaceSize entries; the sampler follows its strongest entry.
type Evaluator interface {
	Evaluate(s State, side Side) ([]float64, error)
}
