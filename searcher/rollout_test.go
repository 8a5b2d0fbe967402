package searcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"montecarlo/game"
)

func TestSamplerSample(t *testing.T) {
	t.Run("returning immediately on a terminal state", func(t *testing.T) {
		model := mockModel{
			terminal: map[int]game.Result{0: game.PlusWin},
		}
		sampler := NewSampler(model, rand.New(rand.NewSource(1)))

		result, move, err := sampler.Sample(mockState{id: 0}, game.Plus)

		require.NoError(t, err)
		require.Equal(t, game.PlusWin, result, "Sampler should report the terminal result")
		require.Nil(t, move, "Sampler should not generate a move at a terminal state")
	})

	t.Run("treating a stalemate as a draw without playing on", func(t *testing.T) {
		model := mockModel{
			moves:    map[int][]game.Move{},
			terminal: map[int]game.Result{},
		}
		sampler := NewSampler(model, rand.New(rand.NewSource(1)))

		result, move, err := sampler.Sample(mockState{id: 0}, game.Plus)

		require.NoError(t, err)
		require.Equal(t, game.Draw, result, "A state with no legal moves should be a draw")
		require.Nil(t, move, "No move exists to return")
	})

	t.Run("propagating the first move of the trajectory", func(t *testing.T) {
		// A forced chain: s0 -m0-> s1 -m1-> s2 where s2 is won by minus.
		model := mockModel{
			moves: map[int][]game.Move{
				0: {mockMove{id: 0}},
				1: {mockMove{id: 1}},
			},
			next: map[[2]int]int{
				{0, 0}: 1,
				{1, 1}: 2,
			},
			terminal: map[int]game.Result{2: game.MinusWin},
		}
		sampler := NewSampler(model, rand.New(rand.NewSource(1)))

		result, move, err := sampler.Sample(mockState{id: 0}, game.Plus)

		require.NoError(t, err)
		require.Equal(t, game.MinusWin, result, "Sampler should play to the terminal result")
		require.Equal(t, mockMove{id: 0}, move, "Sampler should return the move made at the root, not at the leaf")
	})

	t.Run("reproducing rollouts from the same seed", func(t *testing.T) {
		model := branchingModel()

		first, firstMove, err := NewSampler(model, rand.New(rand.NewSource(42))).Sample(mockState{id: 0}, game.Plus)
		require.NoError(t, err)
		second, secondMove, err := NewSampler(model, rand.New(rand.NewSource(42))).Sample(mockState{id: 0}, game.Plus)
		require.NoError(t, err)

		require.Equal(t, first, second, "Same seed should replay the same result")
		require.Equal(t, firstMove, secondMove, "Same seed should replay the same first move")
	})
}

func TestSamplerGuided(t *testing.T) {
	model := mockModel{
		moves: map[int][]game.Move{
			0: {mockMove{id: 0}, mockMove{id: 1}},
		},
		next: map[[2]int]int{
			{0, 0}: 1,
			{0, 1}: 2,
		},
		terminal:  map[int]game.Result{1: game.PlusWin, 2: game.MinusWin},
		moveSpace: 3,
	}

	t.Run("following the indicated move", func(t *testing.T) {
		policy := mockEvaluator{dist: []float64{0, 1, 0}}
		sampler := NewGuidedSampler(model, rand.New(rand.NewSource(1)), policy)

		result, move, err := sampler.Sample(mockState{id: 0}, game.Plus)

		require.NoError(t, err)
		require.Equal(t, mockMove{id: 1}, move, "Sampler should decode and play the policy's move")
		require.Equal(t, game.MinusWin, result)
	})

	t.Run("tolerating a full probability vector", func(t *testing.T) {
		policy := mockEvaluator{dist: []float64{0.7, 0.3, 0}}
		sampler := NewGuidedSampler(model, rand.New(rand.NewSource(1)), policy)

		_, move, err := sampler.Sample(mockState{id: 0}, game.Plus)

		require.NoError(t, err)
		require.Equal(t, mockMove{id: 0}, move, "Sampler should follow the strongest entry")
	})

	t.Run("rejecting a distribution of the wrong width", func(t *testing.T) {
		policy := mockEvaluator{dist: []float64{1, 0}}
		sampler := NewGuidedSampler(model, rand.New(rand.NewSource(1)), policy)

		_, _, err := sampler.Sample(mockState{id: 0}, game.Plus)

		require.ErrorContains(t, err, "want 3", "Sampler should fail loudly on a malformed policy")
	})

	t.Run("rejecting a distribution indicating no move", func(t *testing.T) {
		policy := mockEvaluator{dist: []float64{0, 0, 0}}
		sampler := NewGuidedSampler(model, rand.New(rand.NewSource(1)), policy)

		_, _, err := sampler.Sample(mockState{id: 0}, game.Plus)

		require.ErrorContains(t, err, "indicated no move")
	})

	t.Run("rejecting an indicated move outside the legal set", func(t *testing.T) {
		policy := mockEvaluator{dist: []float64{0, 0, 1}}
		sampler := NewGuidedSampler(model, rand.New(rand.NewSource(1)), policy)

		_, _, err := sampler.Sample(mockState{id: 0}, game.Plus)

		require.ErrorContains(t, err, "illegal move")
	})

	t.Run("propagating evaluator failures", func(t *testing.T) {
		wantErr := errors.New("inference backend down")
		sampler := NewGuidedSampler(model, rand.New(rand.NewSource(1)), mockEvaluator{err: wantErr})

		_, _, err := sampler.Sample(mockState{id: 0}, game.Plus)

		require.ErrorIs(t, err, wantErr)
	})
}

// branchingModel is a two-ply game with real branching so seeded rollouts
// exercise the random choice path.
func branchingModel() mockModel {
	return mockModel{
		moves: map[int][]game.Move{
			0: {mockMove{id: 0}, mockMove{id: 1}},
			1: {mockMove{id: 0}, mockMove{id: 1}},
		},
		next: map[[2]int]int{
			{0, 0}: 1,
			{0, 1}: 2,
			{1, 0}: 3,
			{1, 1}: 2,
		},
		terminal: map[int]game.Result{
			2: game.MinusWin,
			3: game.PlusWin,
		},
		moveSpace: 2,
	}
}
