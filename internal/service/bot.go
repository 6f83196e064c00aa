package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn chooses a move for the computer according to the game difficulty and plays it.
func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	botPlayer := game.Bot()
	if botPlayer == nil {
		return entity.Move{}, ErrBotNotFound
	}

	var (
		move entity.Move
		err  error
	)

	switch game.Difficulty {
	case entity.DifficultyEasy:
		move, err = RandomMove(game.Board)
	case entity.DifficultyHard:
		move, err = BestMove(game.Board)
	default:
		err = fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, game.Difficulty)
	}

	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to choose a move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn", "game_id", game.ID, "difficulty", game.Difficulty, "move", move.String())

	return move, nil
}
