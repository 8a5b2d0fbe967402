package metrics

import "time"

// MoveRecord captures one move of a self-play game.
type MoveRecord struct {
	Game     int
	Step     int
	Side     string
	Move     string
	Duration time.Duration
}

// GameRecord captures the outcome of one self-play game.
type GameRecord struct {
	ID        int
	Plus      string // agent description for the plus player
	Minus     string // agent description for the minus player
	Result    string
	Moves     int
	StartTime time.Time
	Duration  time.Duration
}
