package tictactoe

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"montecarlo/game"
)

// Board is a 3x3 position. Cell values are +1 (plus player), -1 (minus
// player) or 0 (empty), stored row-major. Board is a value type: copies are
// independent and equal positions compare and hash equal.
type Board struct {
	cells [9]int8
}

// Empty returns the starting position.
func Empty() Board {
	return Board{}
}

// New builds a board from row-major cell values. It panics on values outside
// {-1, 0, +1}; this is a test and demo convenience, not a rules check.
func New(cells [9]int8) Board {
	for _, c := range cells {
		if c < -1 || c > 1 {
			panic(fmt.Sprintf("invalid cell value %d", c))
		}
	}
	return Board{cells: cells}
}

// Cell returns the contents of the given square.
func (b Board) Cell(index int) int8 {
	return b.cells[index]
}

func (b Board) Hash() game.StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, b.cells[:])
	return game.StateHash(hasher.Sum64())
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			switch b.cells[row*3+col] {
			case 1:
				sb.WriteByte('X')
			case -1:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		if row < 2 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Square is a move: the flat index of the cell to claim.
type Square int

func (sq Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(int(sq)%3), int(sq)/3+1)
}

// lines are the eight winning triples.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Model implements game.Model for 3x3 tic-tac-toe.
type Model struct{}

func (Model) Terminal(s game.State) (game.Result, bool) {
	b := s.(Board)
	for _, line := range lines {
		sum := int(b.cells[line[0]]) + int(b.cells[line[1]]) + int(b.cells[line[2]])
		switch sum {
		case 3:
			return game.PlusWin, true
		case -3:
			return game.MinusWin, true
		}
	}
	for _, c := range b.cells {
		if c == 0 {
			return 0, false
		}
	}
	return game.Draw, true
}

func (Model) LegalMoves(s game.State) []game.Move {
	b := s.(Board)
	var moves []game.Move
	for i, c := range b.cells {
		if c == 0 {
			moves = append(moves, Square(i))
		}
	}
	return moves
}

func (Model) Apply(s game.State, m game.Move, side game.Side) game.State {
	b := s.(Board)
	b.cells[m.(Square)] = int8(side)
	return b
}

func (Model) EncodeMove(m game.Move) int {
	return int(m.(Square))
}

func (Model) DecodeMove(index int) (game.Move, error) {
	if index < 0 || index > 8 {
		return nil, fmt.Errorf("square index %d out of range", index)
	}
	return Square(index), nil
}

func (Model) MoveSpaceSize() int {
	return 9
}
