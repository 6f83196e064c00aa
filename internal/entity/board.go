package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 3

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWin        Outcome = "win"
	OutcomeDraw       Outcome = "draw"
)

// GameResult is derived from the board on demand and never stored.
type GameResult struct {
	Outcome Outcome `json:"outcome"`
	Winner  Mark    `json:"winner,omitempty"`
}

func (that GameResult) IsInProgress() bool {
	return that.Outcome == OutcomeInProgress
}

func (that GameResult) String() string {
	switch that.Outcome {
	case OutcomeWin:
		return string(that.Winner) + " wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "in progress"
	}
}

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

func (that Move) inRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

var (
	ErrInvalidBoard = errors.New("invalid board layout")

	// WinCombos lists every line in the order Evaluate scans them:
	// rows, columns, main diagonal, anti-diagonal.
	WinCombos = [][3]Move{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
)

// Board is a row-major 3x3 grid. The zero value is an empty board.
type Board [BoardSize][BoardSize]Mark

func NewBoard() Board {
	return Board{}
}

// ParseBoard reads nine cells in row-major order. X and O are marks, '.', '-'
// and '_' are empty cells; whitespace, '|' and '/' are ignored.
func ParseBoard(layout string) (Board, error) {
	var board Board

	cell := 0
	for _, r := range layout {
		var mark Mark

		switch r {
		case ' ', '\t', '\n', '\r', '|', '/':
			continue
		case 'X', 'x':
			mark = PlayerX
		case 'O', 'o':
			mark = PlayerO
		case '.', '-', '_':
			mark = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q", ErrInvalidBoard, r)
		}

		if cell >= BoardSize*BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrInvalidBoard, BoardSize*BoardSize)
		}

		board[cell/BoardSize][cell%BoardSize] = mark
		cell++
	}

	if cell != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, cell, BoardSize*BoardSize)
	}

	return board, nil
}

// LegalMoves returns the empty cells in row-major order. Search tie-breaks depend on this order.
func (that *Board) LegalMoves() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Apply places player on the target cell. The board is left untouched on error.
func (that *Board) Apply(move Move, player Mark) error {
	if !move.inRange() {
		return fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, move)
	}

	if player != PlayerX && player != PlayerO {
		return fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidMove, player)
	}

	if that[move.Row][move.Col] != EmptyCell {
		return fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, move)
	}

	that[move.Row][move.Col] = player

	return nil
}

// Undo clears a cell set by the matching Apply.
func (that *Board) Undo(move Move) {
	if !move.inRange() {
		return
	}

	that[move.Row][move.Col] = EmptyCell
}

func (that *Board) Evaluate() GameResult {
	for _, combo := range WinCombos {
		a := that[combo[0].Row][combo[0].Col]
		b := that[combo[1].Row][combo[1].Col]
		c := that[combo[2].Row][combo[2].Col]
		if a != EmptyCell && a == b && b == c {
			return GameResult{Outcome: OutcomeWin, Winner: a}
		}
	}

	// the game will continue until all the squares are full
	if that.IsFull() {
		return GameResult{Outcome: OutcomeDraw}
	}

	return GameResult{Outcome: OutcomeInProgress}
}

func (that *Board) IsFull() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Turn returns the side to move, derived from the parity of occupied cells. X moves first.
func (that *Board) Turn() Mark {
	var x, o int
	for row := range BoardSize {
		for col := range BoardSize {
			switch that[row][col] {
			case PlayerX:
				x++
			case PlayerO:
				o++
			}
		}
	}

	if x > o {
		return PlayerO
	}

	return PlayerX
}

func (that *Board) String() string {
	var sb strings.Builder

	for row := range BoardSize {
		if row > 0 {
			sb.WriteString("\n-+-+-\n")
		}

		for col := range BoardSize {
			if col > 0 {
				sb.WriteByte('|')
			}

			if that[row][col] == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(that[row][col]))
			}
		}
	}

	return sb.String()
}
