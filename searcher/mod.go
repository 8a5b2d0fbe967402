package searcher

import (
	"errors"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"montecarlo/game"
)

// CSquared is the squared exploration constant in the UCB1 bonus term.
const CSquared = 2.0

// unsampledDivisor stands in for a zero sample count during final move
// selection, so unexplored children rank near zero instead of dividing by
// zero.
const unsampledDivisor = 1e4

// ErrNoMoves is returned when a search is asked to choose a move on a
// position that is already decided or has no legal moves. Callers are
// expected to check terminality before searching.
var ErrNoMoves = errors.New("searcher: no move to select on a finished position")

// Searcher chooses a move for the side to play, together with a confidence
// score in [0,1] estimating the win rate of the chosen move.
type Searcher interface {
	Search(s game.State, side game.Side) (confidence float64, move game.Move, err error)
}

type settings struct {
	iterations int
	seed       uint64
	policy     game.Evaluator
}

type Option func(*settings)

// WithIterations sets the number of simulations per search call. This is the
// sole work bound: there is no timeout or cancellation.
func WithIterations(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.iterations = n
		}
	}
}

// WithSeed fixes the random source so repeated searches on the same position
// reproduce the same choice.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

// WithPolicy switches rollouts from uniform random to policy-guided move
// selection.
func WithPolicy(policy game.Evaluator) Option {
	return func(s *settings) {
		if policy != nil {
			s.policy = policy
		}
	}
}

func newSettings(options []Option) settings {
	s := settings{
		iterations: 1000,
	}
	for _, option := range options {
		option(&s)
	}
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}
	return s
}

func (s settings) rng() *rand.Rand {
	return rand.New(rand.NewSource(s.seed))
}

// ucb1 scores a child during selection: empirical mean plus an exploration
// bonus that shrinks as the child accumulates samples. c2LnN is
// CSquared * ln(total sibling samples).
func ucb1(score, samples, c2LnN float64) float64 {
	return score/samples + math.Sqrt(c2LnN/samples)
}
