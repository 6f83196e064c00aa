package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

func ParseDifficulty(value string) (Difficulty, error) {
	switch difficulty := Difficulty(strings.ToLower(strings.TrimSpace(value))); difficulty {
	case DifficultyEasy, DifficultyHard:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

// Game is one session between a human and the computer. It lives until the next restart.
type Game struct {
	ID         string     `json:"id"`
	Board      Board      `json:"board"`
	Difficulty Difficulty `json:"difficulty"`
	Players    []*Player  `json:"players,omitempty"`
}

func NewGame(id string, difficulty Difficulty) *Game {
	return &Game{
		ID:         id,
		Board:      NewBoard(),
		Difficulty: difficulty,
		Players: []*Player{
			{Name: "human", Mark: PlayerX},
			{Name: "computer", Mark: PlayerO, Bot: true},
		},
	}
}

// Result is recomputed from the board on every call.
func (that *Game) Result() GameResult {
	return that.Board.Evaluate()
}

func (that *Game) IsFinished() bool {
	return !that.Result().IsInProgress()
}

func (that *Game) Turn() Mark {
	return that.Board.Turn()
}

// Bot returns the computer's seat, or nil when the game has none.
func (that *Game) Bot() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) MakeTurn(playerMark Mark, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn() != playerMark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Apply(move, playerMark); err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	return nil
}
