package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"montecarlo/engine"
	"montecarlo/experiments/metrics"
	"montecarlo/game"
	"montecarlo/searcher"
	"montecarlo/searcher/agent"
	"montecarlo/store"
	"montecarlo/tictactoe"
)

type config struct {
	games      int
	iterations int
	seed       uint64
}

var profile = termenv.ColorProfile()

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config{games: 10, iterations: 2000, seed: 1}

	runMatchup(cfg)
	runTrainingExport(cfg)
}

// runMatchup plays UCT (plus) against flat Monte Carlo (minus) on
// tic-tac-toe and records the results.
func runMatchup(cfg config) {
	model := tictactoe.Model{}

	writer, err := metrics.NewWriter("experiments/matchup")
	if err != nil {
		log.Fatal().Err(err).Msg("create metrics writer")
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	fmt.Printf("Running %d games of UCT vs flat Monte Carlo...\n", cfg.games)
	for i := 0; i < cfg.games; i++ {
		seed := cfg.seed + uint64(i)
		plus := agent.NewEvaluationAgent(searcher.NewUCT(model,
			searcher.WithIterations(cfg.iterations), searcher.WithSeed(seed)))
		minus := agent.NewEvaluationAgent(searcher.NewFlat(model,
			searcher.WithIterations(cfg.iterations), searcher.WithSeed(seed)))

		e := engine.Local(model, tictactoe.Empty(), plus, minus)
		start := time.Now()
		result, moves, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Msgf("game %d failed", i+1)
		}

		for j := range moves {
			moves[j].Game = i + 1
		}
		moveRecords = append(moveRecords, moves...)
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:        i + 1,
			Plus:      "uct",
			Minus:     "flat",
			Result:    result.String(),
			Moves:     len(moves),
			StartTime: start,
			Duration:  time.Since(start),
		})

		log.Info().Msgf("game %d over: %s in %d moves", i+1, result, len(moves))
		fmt.Println(render(e.State().(tictactoe.Board)))
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Fatal().Err(err).Msg("write move records")
	}
	fmt.Printf("Wrote records to %s\n", writer.Dir())
}

// runTrainingExport plays one self-play game with a training agent on both
// sides and exports the labeled positions as a parquet batch.
func runTrainingExport(cfg config) {
	model := tictactoe.Model{}
	trainer := agent.NewTrainingAgent(model, searcher.NewUCT(model,
		searcher.WithIterations(cfg.iterations), searcher.WithSeed(cfg.seed)))

	gameID := fmt.Sprintf("selfplay_%d", time.Now().UnixNano())
	var rows []store.TrainingRow

	state := game.State(tictactoe.Empty())
	side := game.Plus
	for step := 1; ; step++ {
		if _, over := model.Terminal(state); over {
			break
		}
		move, example, err := trainer.Label(state, side)
		if err != nil {
			log.Fatal().Err(err).Msg("label position")
		}

		rows = append(rows, store.TrainingRow{
			GameID:     gameID,
			Step:       int32(step),
			Side:       int32(side),
			State:      snapshot(state.(tictactoe.Board)),
			Policy:     toFloat32(example.Policy),
			Confidence: float32(example.Confidence),
			Source:     "selfplay",
		})

		state = model.Apply(state, move, side)
		side = side.Opponent()
	}

	path, err := store.WriteBatchParquet("training", rows)
	if err != nil {
		log.Fatal().Err(err).Msg("write training batch")
	}
	fmt.Printf("Wrote %d training rows to %s\n", len(rows), path)
}

func snapshot(b tictactoe.Board) []byte {
	var cells [9]int8
	for i := range cells {
		cells[i] = b.Cell(i)
	}
	raw, _ := json.Marshal(cells)
	return raw
}

func toFloat32(values []float64) []float32 {
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out
}

func render(b tictactoe.Board) string {
	var out string
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			switch b.Cell(row*3 + col) {
			case 1:
				out += termenv.String("X").Foreground(profile.Color("10")).String()
			case -1:
				out += termenv.String("O").Foreground(profile.Color("9")).String()
			default:
				out += "."
			}
		}
		out += "\n"
	}
	return out
}
